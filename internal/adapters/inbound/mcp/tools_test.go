package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"testing"

	mcplib "github.com/mark3labs/mcp-go/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/issuecheck/issuecheck/internal/domain"
)

const fixtures = "../../../../testdata/projects"

func callTool(t *testing.T, h func(context.Context, mcplib.CallToolRequest) (*mcplib.CallToolResult, error), args map[string]any) (*mcplib.CallToolResult, string) {
	t.Helper()
	req := mcplib.CallToolRequest{}
	req.Params.Arguments = args
	res, err := h(context.Background(), req)
	require.NoError(t, err)
	require.NotNil(t, res)
	require.Len(t, res.Content, 1)
	text, ok := res.Content[0].(mcplib.TextContent)
	require.True(t, ok)
	return res, text.Text
}

const semiIssue = `{
  "provider_type": "Cake.Issues.EsLint",
  "provider_name": "ESLint",
  "identifier": "semi",
  "affected_file_relative_path": "web/app.js",
  "line": %d,
  "message_text": "Missing semicolon."
}`

func issueJSON(line int) string {
	return fmt.Sprintf(semiIssue, line)
}

func TestCheckIssue_Passes(t *testing.T) {
	res, text := callTool(t, handleCheckIssue(), map[string]any{
		"actual":   issueJSON(10),
		"expected": issueJSON(10),
	})
	assert.False(t, res.IsError)

	var got CheckResult
	require.NoError(t, json.Unmarshal([]byte(text), &got))
	assert.True(t, got.Passed)
	assert.Empty(t, got.Field)
}

func TestCheckIssue_ReportsFirstMismatch(t *testing.T) {
	_, text := callTool(t, handleCheckIssue(), map[string]any{
		"actual":   issueJSON(10),
		"expected": issueJSON(11),
	})

	var got CheckResult
	require.NoError(t, json.Unmarshal([]byte(text), &got))
	assert.False(t, got.Passed)
	assert.Equal(t, "Line", got.Field)
	assert.Equal(t, "11", got.Expected)
	assert.Equal(t, "10", got.Actual)
	assert.Equal(t, "Expected issue.Line to be '11' but was '10'.", got.Message)
}

func TestCheckIssue_InvalidArguments(t *testing.T) {
	res, text := callTool(t, handleCheckIssue(), map[string]any{
		"actual": issueJSON(10),
	})
	assert.True(t, res.IsError)
	assert.Contains(t, text, "expected")

	res, text = callTool(t, handleCheckIssue(), map[string]any{
		"actual":   "{not json",
		"expected": issueJSON(10),
	})
	assert.True(t, res.IsError)
	assert.Contains(t, text, "actual: invalid JSON")

	res, text = callTool(t, handleCheckIssue(), map[string]any{
		"actual":   `{"identifier": "x", "message_text": "m", "provider_type": "p", "provider_name": "n", "rule_url": "no-scheme"}`,
		"expected": issueJSON(10),
	})
	assert.True(t, res.IsError)
	assert.Contains(t, text, "rule_url")
}

func TestCheckIssue_RejectsUnknownKeys(t *testing.T) {
	res, text := callTool(t, handleCheckIssue(), map[string]any{
		"actual":   `{"identifier": "semi", "message_text": "m", "lne": 10}`,
		"expected": issueJSON(10),
	})
	assert.True(t, res.IsError)
	assert.Contains(t, text, "actual: invalid JSON")
	assert.Contains(t, text, `unknown field "lne"`)
}

func TestVerify_RunsProjectCases(t *testing.T) {
	res, text := callTool(t, handleVerify(fixtures+"/failing"), map[string]any{})
	assert.False(t, res.IsError)

	var report domain.RunReport
	require.NoError(t, json.Unmarshal([]byte(text), &report))
	assert.Equal(t, 1, report.Passed)
	assert.Equal(t, 1, report.Failed)
	assert.Equal(t, 50, report.PassRate)
	require.Len(t, report.Failures(), 1)
	assert.Equal(t, "Line", report.Failures()[0].Field)
}

func TestVerify_SingleCaseFile(t *testing.T) {
	res, text := callTool(t, handleVerify(fixtures+"/passing"), map[string]any{
		"case": "testdata/issues/msbuild/warnings.yaml",
	})
	assert.False(t, res.IsError)

	var report domain.RunReport
	require.NoError(t, json.Unmarshal([]byte(text), &report))
	assert.Equal(t, 100, report.PassRate)
	assert.Equal(t, 0, report.Failed)
}

func TestVerify_MissingCaseFile(t *testing.T) {
	res, text := callTool(t, handleVerify(fixtures+"/passing"), map[string]any{
		"case": "nope.yaml",
	})
	assert.True(t, res.IsError)
	assert.Contains(t, text, "verify failed")
}
