package action

// Type defines a type for the actions that can be performed on resources.
type Type int

// not using iota intentionally, since the values end up in log output and
// per-endpoint configuration.
const (
	Unknown Type = 0
	List    Type = 1
	Create  Type = 2
	Update  Type = 3
	Read    Type = 4
	Delete  Type = 5
	All     Type = 6
)

var Map = map[string]Type{
	"unknown": Unknown,
	"list":    List,
	"create":  Create,
	"update":  Update,
	"read":    Read,
	"delete":  Delete,
	"*":       All,
}

func (a Type) String() string {
	return [...]string{
		"unknown",
		"list",
		"create",
		"update",
		"read",
		"delete",
		"*",
	}[a]
}
