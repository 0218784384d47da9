package domain_test

import (
	"testing"

	"github.com/issuecheck/issuecheck/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestComputePassRate(t *testing.T) {
	assert.Equal(t, 100, domain.ComputePassRate(0, 0))
	assert.Equal(t, 0, domain.ComputePassRate(0, 4))
	assert.Equal(t, 67, domain.ComputePassRate(2, 3))
	assert.Equal(t, 100, domain.ComputePassRate(5, 5))
}

func TestRunReport_Tally(t *testing.T) {
	r := &domain.RunReport{Results: []domain.CaseResult{
		{Name: "a", Passed: true},
		{Name: "b", Passed: false, Field: "Line"},
		{Name: "c", Passed: true},
		{Name: "d", Passed: true},
	}}
	r.Tally()

	assert.Equal(t, 3, r.Passed)
	assert.Equal(t, 1, r.Failed)
	assert.Equal(t, 75, r.PassRate)

	failures := r.Failures()
	if assert.Len(t, failures, 1) {
		assert.Equal(t, "b", failures[0].Name)
	}

	entry := r.Entry()
	assert.Equal(t, 75, entry.PassRate)
	assert.Equal(t, 1, entry.Failed)
}
