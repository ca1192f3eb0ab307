package constraint

// Kind tags the constraint variants. The zero value is KindNone.
type Kind string

const (
	KindNone  Kind = ""
	KindMin   Kind = "MIN"
	KindMax   Kind = "MAX"
	KindRange Kind = "RANGE"
	KindRegex Kind = "REGEX"
)

// ParseKind maps a wire tag to a Kind. Tags are case-sensitive; anything
// unrecognized maps to KindNone.
func ParseKind(raw string) Kind {
	switch Kind(raw) {
	case KindMin, KindMax, KindRange, KindRegex:
		return Kind(raw)
	default:
		return KindNone
	}
}

// Known reports whether k is one of the four constraint kinds.
func (k Kind) Known() bool {
	return ParseKind(string(k)) != KindNone
}

func (k Kind) String() string {
	if k == KindNone {
		return "NONE"
	}
	return string(k)
}
