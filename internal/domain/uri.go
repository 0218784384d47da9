package domain

import (
	"errors"
	"fmt"
	"net/url"
)

// ErrNotAbsoluteURI is returned by ParseURI for text without a scheme.
var ErrNotAbsoluteURI = errors.New("not an absolute URI")

// URI is an absolute URI kept in the exact textual form it was given.
// Equality is literal: scheme case and trailing slashes are significant.
type URI struct {
	raw string
}

// ParseURI validates that raw is an absolute URI.
func ParseURI(raw string) (URI, error) {
	u, err := url.Parse(raw)
	if err != nil {
		return URI{}, fmt.Errorf("parsing uri %q: %w", raw, err)
	}
	if !u.IsAbs() {
		return URI{}, fmt.Errorf("uri %q: %w", raw, ErrNotAbsoluteURI)
	}
	return URI{raw: raw}, nil
}

// MustParseURI is ParseURI for literals known to be valid.
func MustParseURI(raw string) URI {
	u, err := ParseURI(raw)
	if err != nil {
		panic(err)
	}
	return u
}

func (u URI) String() string { return u.raw }
