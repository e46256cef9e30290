package errors

// Kind specifies the kind of error (unknown, parameter, integrity, etc).
type Kind uint32

const (
	Other Kind = iota
	Parameter
	Integrity
	Search
	State
	External
)

func (e Kind) String() string {
	return [...]string{
		"unknown",
		"parameter violation",
		"integrity violation",
		"search issue",
		"state violation",
		"external system issue",
	}[e]
}
