// Package issuetest lets tests of issue providers assert on produced issues.
package issuetest

import (
	"github.com/stretchr/testify/require"

	"github.com/issuecheck/issuecheck/internal/domain"
	"github.com/issuecheck/issuecheck/internal/domain/check"
)

type helper interface {
	Helper()
}

// Check fails t with the first mismatching field of actual.
func Check(t require.TestingT, actual, expected *domain.Issue) {
	if h, ok := t.(helper); ok {
		h.Helper()
	}
	require.NoError(t, check.Check(actual, expected))
}

// CheckBuilder fails t unless actual equals the issue expected describes.
func CheckBuilder(t require.TestingT, actual *domain.Issue, expected *domain.IssueBuilder) {
	if h, ok := t.(helper); ok {
		h.Helper()
	}
	require.NoError(t, check.CheckBuilder(actual, expected))
}

// CheckFields fails t unless actual matches expected field by field.
func CheckFields(t require.TestingT, actual *domain.Issue, expected check.Expected) {
	if h, ok := t.(helper); ok {
		h.Helper()
	}
	require.NoError(t, check.CheckFields(actual, &expected))
}
