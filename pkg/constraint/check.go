package constraint

import (
	"errors"
	"fmt"
	"math"
	"regexp"

	"github.com/goliatone/go-constraints/pkg/message"
)

var (
	// ErrUnsatisfiable reports a descriptor no value can satisfy.
	ErrUnsatisfiable = errors.New("constraint: unsatisfiable")
	// ErrInvalidPattern reports a REGEX pattern that does not compile.
	// Evaluate treats such descriptors as always valid.
	ErrInvalidPattern = errors.New("constraint: invalid pattern")
	// ErrInvalidBound reports a NaN or infinite bound.
	ErrInvalidBound = errors.New("constraint: invalid bound")
)

// Check reports descriptors that evaluate in surprising ways: patterns that
// fail to compile, ranges whose minimum exceeds their maximum and bounds that
// are not finite. It does not affect Evaluate, which stays total.
func Check(d Descriptor) error {
	switch c := d.(type) {
	case nil, None:
		return nil
	case Min:
		return checkBound("min", c.Min)
	case Max:
		return checkBound("max", c.Max)
	case Range:
		if err := checkBound("min", c.Min); err != nil {
			return err
		}
		if err := checkBound("max", c.Max); err != nil {
			return err
		}
		if c.Min > c.Max {
			return fmt.Errorf("%w: min %s is greater than max %s", ErrUnsatisfiable, message.Stringify(c.Min), message.Stringify(c.Max))
		}
		return nil
	case Regex:
		if _, err := regexp.Compile(c.Pattern); err != nil {
			return fmt.Errorf("%w: %w", ErrInvalidPattern, err)
		}
		return nil
	default:
		return nil
	}
}

func checkBound(name string, v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return fmt.Errorf("%w: %s is %v", ErrInvalidBound, name, v)
	}
	return nil
}
