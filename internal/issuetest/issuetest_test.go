package issuetest_test

import (
	"fmt"
	"testing"

	"github.com/issuecheck/issuecheck/internal/domain"
	"github.com/issuecheck/issuecheck/internal/domain/check"
	"github.com/issuecheck/issuecheck/internal/issuetest"
	"github.com/stretchr/testify/assert"
)

// recorder captures failures instead of stopping the test.
type recorder struct {
	messages []string
	failed   bool
}

func (r *recorder) Errorf(format string, args ...interface{}) {
	r.messages = append(r.messages, fmt.Sprintf(format, args...))
}

func (r *recorder) FailNow() { r.failed = true }

func issueAt(line int) *domain.IssueBuilder {
	return domain.NewIssueBuilder("CS0219", "Variable assigned but never used.", "Cake.Issues.MsBuild", "MSBuild").
		InFileLine(`src\Foo.cs`, line)
}

func TestCheck_Equal(t *testing.T) {
	issuetest.Check(t, issueAt(12).Create(), issueAt(12).Create())
	issuetest.CheckBuilder(t, issueAt(12).Create(), issueAt(12))
	issuetest.CheckFields(t, issueAt(12).Create(), check.ExpectedFrom(issueAt(12).Create()))
}

func TestCheck_FailsOnMismatch(t *testing.T) {
	rec := &recorder{}
	issuetest.Check(rec, issueAt(10).Create(), issueAt(11).Create())

	assert.True(t, rec.failed)
	assert.Len(t, rec.messages, 1)
	assert.Contains(t, rec.messages[0], "Expected issue.Line to be '11' but was '10'.")
}

func TestCheckBuilder_FailsOnNil(t *testing.T) {
	rec := &recorder{}
	issuetest.CheckBuilder(rec, nil, issueAt(1))

	assert.True(t, rec.failed)
	assert.Contains(t, rec.messages[0], "actual must not be nil")
}
