package form

import "github.com/goliatone/go-constraints/pkg/constraint"

// Field names used by key-manager application configuration forms.
const (
	FieldAppTokenExpiry     = "appToken"
	FieldUserTokenExpiry    = "userToken"
	FieldRefreshTokenExpiry = "refreshToken"
	FieldIDTokenExpiry      = "idToken"
)

// TokenExpiryLimits are the maximum token lifetimes, in seconds, an
// administrator allows applications to request. Zero disables the constraint
// for that token.
type TokenExpiryLimits struct {
	Application float64 `json:"appToken,omitempty" yaml:"appToken,omitempty"`
	User        float64 `json:"userToken,omitempty" yaml:"userToken,omitempty"`
	Refresh     float64 `json:"refreshToken,omitempty" yaml:"refreshToken,omitempty"`
	ID          float64 `json:"idToken,omitempty" yaml:"idToken,omitempty"`
}

// KeyManagerTokenExpiry builds the MAX constraints a developer portal applies
// to token expiry inputs. These checks are advisory; the key manager and the
// identity provider enforce the same limits server-side.
func KeyManagerTokenExpiry(limits TokenExpiryLimits) *Set {
	entries := []struct {
		name  string
		label string
		max   float64
	}{
		{FieldAppTokenExpiry, "Maximum Application Access Token Expiry Time", limits.Application},
		{FieldUserTokenExpiry, "Maximum User Access Token Expiry Time", limits.User},
		{FieldRefreshTokenExpiry, "Maximum Refresh Token Expiry Time", limits.Refresh},
		{FieldIDTokenExpiry, "Maximum ID Token Expiry Time", limits.ID},
	}

	fields := make([]Field, 0, len(entries))
	for _, entry := range entries {
		if entry.max <= 0 {
			continue
		}
		fields = append(fields, Field{
			Name:       entry.name,
			Label:      entry.label,
			Constraint: constraint.Max{Max: entry.max},
		})
	}

	// Names are fixed and unique.
	set, _ := NewSet(fields...)
	return set
}
