package application_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/issuecheck/issuecheck/internal/adapters/outbound/casefile"
	"github.com/issuecheck/issuecheck/internal/adapters/outbound/config"
	"github.com/issuecheck/issuecheck/internal/adapters/outbound/gitinfo"
	"github.com/issuecheck/issuecheck/internal/adapters/outbound/history"
	"github.com/issuecheck/issuecheck/internal/application"
	"github.com/issuecheck/issuecheck/internal/domain"
	"github.com/issuecheck/issuecheck/internal/domain/check"
	"github.com/issuecheck/issuecheck/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	passingProject = "../../testdata/projects/passing"
	failingProject = "../../testdata/projects/failing"
)

func newService() *application.VerifyService {
	return application.NewVerifyService(
		config.New(),
		casefile.New(),
		gitinfo.New(),
		history.New(),
		logger.Discard(),
	)
}

func TestVerify_PassingProject(t *testing.T) {
	report, err := newService().Verify(passingProject)
	require.NoError(t, err)

	assert.Equal(t, []string{"testdata/issues/msbuild/warnings.yaml"}, report.Files)
	assert.Len(t, report.Results, 2)
	assert.Equal(t, 2, report.Passed)
	assert.Zero(t, report.Failed)
	assert.Equal(t, 100, report.PassRate)
	assert.False(t, report.Timestamp.IsZero())
	for _, res := range report.Results {
		assert.Equal(t, "testdata/issues/msbuild/warnings.yaml", res.File)
	}
}

func TestVerify_FailingProject(t *testing.T) {
	report, err := newService().Verify(failingProject)
	require.NoError(t, err)

	assert.Equal(t, []string{"cases/eslint.yaml"}, report.Files, "wip files are excluded")
	assert.Equal(t, 1, report.Passed)
	assert.Equal(t, 1, report.Failed)
	assert.Equal(t, 50, report.PassRate)

	failures := report.Failures()
	require.Len(t, failures, 1)
	f := failures[0]
	assert.Equal(t, "wrong line", f.Name)
	assert.Equal(t, check.FieldLine, f.Field)
	assert.Equal(t, "11", f.Expected)
	assert.Equal(t, "10", f.Actual)
	assert.Equal(t, "Expected issue.Line to be '11' but was '10'.", f.Message)
	assert.NotNil(t, f.Issue)
}

func TestVerifyFile_SingleFile(t *testing.T) {
	report, err := newService().VerifyFile(failingProject, "cases/eslint.yaml")
	require.NoError(t, err)
	assert.Len(t, report.Results, 2)
}

func TestVerifyFile_BrokenFile(t *testing.T) {
	_, err := newService().VerifyFile(failingProject, "cases/ignored.wip.yaml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "loading cases")
	assert.Contains(t, err.Error(), "file_link")
}

func TestVerify_RecordsHistory(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, ".issuecheck.yaml", "cases: [\"*.yaml\"]\nrecord_history: true\n")
	writeFile(t, dir, "one.yaml", `
cases:
  - name: same
    actual: {identifier: a, message_text: m}
    expected: {identifier: a, message_text: m}
`)

	svc := newService()
	_, err := svc.Verify(dir)
	require.NoError(t, err)
	_, err = svc.Verify(dir)
	require.NoError(t, err)

	entries, err := history.New().Load(dir)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, 100, entries[1].PassRate)
}

func TestVerify_ConfigError(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, ".issuecheck.yaml", "min_pass_rate: 500\n")

	_, err := newService().Verify(dir)
	assert.ErrorContains(t, err, "loading config")
}

func TestVerify_StampsCommitHash(t *testing.T) {
	svc := application.NewVerifyService(
		stubConfig{}, stubCases{}, stubGit{hash: "deadbeef"}, nil, logger.Discard(),
	)
	report, err := svc.Verify(".")
	require.NoError(t, err)
	assert.Equal(t, "deadbeef", report.CommitHash)
	assert.Empty(t, report.Results)
	assert.Equal(t, 100, report.PassRate)
}

func TestVerify_DiscoverError(t *testing.T) {
	svc := application.NewVerifyService(
		stubConfig{}, stubCases{err: errors.New("boom")}, nil, nil, logger.Discard(),
	)
	_, err := svc.Verify(".")
	assert.ErrorContains(t, err, "discovering case files: boom")
}

func TestRunCase_InvalidArgument(t *testing.T) {
	res := application.RunCase(domain.Case{Name: "nil expected", Actual: domain.NewIssueBuilder("a", "m", "t", "n").Create()})
	assert.False(t, res.Passed)
	assert.Empty(t, res.Field)
	assert.Equal(t, "expected must not be nil", res.Message)
}

type stubConfig struct{}

func (stubConfig) Load(string) (domain.ProjectConfig, error) {
	return domain.DefaultConfig(), nil
}

type stubCases struct{ err error }

func (s stubCases) Discover(string, domain.ProjectConfig) ([]string, error) {
	return nil, s.err
}

func (stubCases) Load(string) ([]domain.Case, error) {
	return nil, nil
}

type stubGit struct{ hash string }

func (stubGit) IsGitRepo(string) bool { return true }

func (g stubGit) CommitHash(string) (string, error) {
	return g.hash, nil
}

func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0644))
}
