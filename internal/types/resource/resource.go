package resource

// Type defines the closed set of resource variants managed by the datastore.
type Type int

// not using iota intentionally, since the values end up in persisted log
// output and must stay stable across releases.
const (
	Unknown            Type = 0
	Dataset            Type = 1
	Selection          Type = 2
	ImageAlignment     Type = 3
	PipelineExperiment Type = 4
	Chip               Type = 5
	DatasetInfo        Type = 6
	Features           Type = 7
	Image              Type = 8
	All                Type = 9
)

var Map = map[string]Type{
	"unknown":            Unknown,
	"dataset":            Dataset,
	"selection":          Selection,
	"imagealignment":     ImageAlignment,
	"pipelineexperiment": PipelineExperiment,
	"chip":               Chip,
	"datasetinfo":        DatasetInfo,
	"features":           Features,
	"image":              Image,
	"*":                  All,
}

func (t Type) String() string {
	return [...]string{
		"unknown",
		"dataset",
		"selection",
		"imagealignment",
		"pipelineexperiment",
		"chip",
		"datasetinfo",
		"features",
		"image",
		"*",
	}[t]
}

// Prefix returns the public id prefix for the variant.
func (t Type) Prefix() string {
	switch t {
	case Dataset:
		return "ds"
	case Selection:
		return "sel"
	case ImageAlignment:
		return "imal"
	case PipelineExperiment:
		return "pexp"
	case Chip:
		return "chip"
	case DatasetInfo:
		return "dsi"
	case Features:
		return "feat"
	}
	return ""
}

// Collection returns the document store collection that holds records of the
// variant. Image has no collection; image blobs live in the blob store only.
func (t Type) Collection() string {
	switch t {
	case Dataset:
		return "dataset"
	case Selection:
		return "selection"
	case ImageAlignment:
		return "imagealignment"
	case PipelineExperiment:
		return "pipelineexperiment"
	case Chip:
		return "chip"
	case DatasetInfo:
		return "datasetinfo"
	case Features:
		return "features"
	}
	return ""
}
