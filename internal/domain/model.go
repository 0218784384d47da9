package domain

import (
	"math"
	"time"
)

// Case pairs an issue produced by a parser with the issue it is expected
// to equal.
type Case struct {
	Name     string
	File     string
	Actual   *Issue
	Expected *Issue
}

// CaseResult is the outcome of checking one case.
type CaseResult struct {
	Name     string `json:"name"`
	File     string `json:"file"`
	Passed   bool   `json:"passed"`
	Field    string `json:"field,omitempty"`
	Expected string `json:"expected,omitempty"`
	Actual   string `json:"actual,omitempty"`
	Message  string `json:"message,omitempty"`

	// Issue is the actual issue, kept for debug dumps.
	Issue *Issue `json:"-"`
}

// RunReport holds the results of checking every discovered case.
type RunReport struct {
	ProjectPath string       `json:"project_path"`
	Timestamp   time.Time    `json:"timestamp"`
	CommitHash  string       `json:"commit_hash,omitempty"`
	Files       []string     `json:"files"`
	Results     []CaseResult `json:"results"`
	Passed      int          `json:"passed"`
	Failed      int          `json:"failed"`
	PassRate    int          `json:"pass_rate"`
}

// Tally fills Passed, Failed and PassRate from Results.
func (r *RunReport) Tally() {
	r.Passed, r.Failed = 0, 0
	for _, res := range r.Results {
		if res.Passed {
			r.Passed++
		} else {
			r.Failed++
		}
	}
	r.PassRate = ComputePassRate(r.Passed, len(r.Results))
}

// Failures returns the failed results in run order.
func (r *RunReport) Failures() []CaseResult {
	var out []CaseResult
	for _, res := range r.Results {
		if !res.Passed {
			out = append(out, res)
		}
	}
	return out
}

// ComputePassRate returns passed/total as a rounded percentage. An empty
// run passes fully.
func ComputePassRate(passed, total int) int {
	if total == 0 {
		return 100
	}
	return int(math.Round(float64(passed) * 100 / float64(total)))
}

// RunEntry is the summary of a run kept in history.
type RunEntry struct {
	Timestamp  time.Time `json:"timestamp"`
	CommitHash string    `json:"commit_hash,omitempty"`
	Passed     int       `json:"passed"`
	Failed     int       `json:"failed"`
	PassRate   int       `json:"pass_rate"`
}

// Entry summarizes the report for history.
func (r *RunReport) Entry() RunEntry {
	return RunEntry{
		Timestamp:  r.Timestamp,
		CommitHash: r.CommitHash,
		Passed:     r.Passed,
		Failed:     r.Failed,
		PassRate:   r.PassRate,
	}
}
