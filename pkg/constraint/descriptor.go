package constraint

// Descriptor is a constraint definition. The set of implementations is closed:
// Min, Max, Range, Regex and None. A nil Descriptor means no constraint.
type Descriptor interface {
	Kind() Kind
	descriptor()
}

// None imposes no constraint. Unknown or incomplete wire specs decode to it.
type None struct{}

// Min requires a number greater than or equal to Min.
type Min struct {
	Min float64
}

// Max requires a number less than or equal to Max.
type Max struct {
	Max float64
}

// Range requires a number within [Min, Max].
type Range struct {
	Min float64
	Max float64
}

// Regex requires the whole value to match Pattern. Pattern is kept as source
// text and compiled on every evaluation.
type Regex struct {
	Pattern string
}

func (None) Kind() Kind  { return KindNone }
func (Min) Kind() Kind   { return KindMin }
func (Max) Kind() Kind   { return KindMax }
func (Range) Kind() Kind { return KindRange }
func (Regex) Kind() Kind { return KindRegex }

func (None) descriptor()  {}
func (Min) descriptor()   {}
func (Max) descriptor()   {}
func (Range) descriptor() {}
func (Regex) descriptor() {}
