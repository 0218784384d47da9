package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"path/filepath"
	"strings"

	mcplib "github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/issuecheck/issuecheck/internal/adapters/outbound/casefile"
	"github.com/issuecheck/issuecheck/internal/adapters/outbound/config"
	"github.com/issuecheck/issuecheck/internal/adapters/outbound/gitinfo"
	"github.com/issuecheck/issuecheck/internal/adapters/outbound/history"
	"github.com/issuecheck/issuecheck/internal/application"
	"github.com/issuecheck/issuecheck/internal/domain"
	"github.com/issuecheck/issuecheck/internal/domain/check"
	"github.com/issuecheck/issuecheck/internal/logger"
)

// CheckResult is the payload of the issuecheck_check_issue tool.
type CheckResult struct {
	Passed   bool   `json:"passed"`
	Field    string `json:"field,omitempty"`
	Expected string `json:"expected,omitempty"`
	Actual   string `json:"actual,omitempty"`
	Message  string `json:"message,omitempty"`
}

func registerTools(s *server.MCPServer, projectPath string) {
	s.AddTool(
		mcplib.NewTool("issuecheck_check_issue",
			mcplib.WithDescription("Compare an actual issue against an expected issue and return the first mismatching field"),
			mcplib.WithString("actual",
				mcplib.Required(),
				mcplib.Description("Actual issue as a JSON object with snake_case keys (provider_type, identifier, line, ...)"),
			),
			mcplib.WithString("expected",
				mcplib.Required(),
				mcplib.Description("Expected issue as a JSON object with the same keys"),
			),
		),
		handleCheckIssue(),
	)

	s.AddTool(
		mcplib.NewTool("issuecheck_verify",
			mcplib.WithDescription("Run the project's case files and return the run report as JSON"),
			mcplib.WithString("case", mcplib.Description("Run a single case file (relative to the project root)")),
		),
		handleVerify(projectPath),
	)
}

func newVerifyService() *application.VerifyService {
	return application.NewVerifyService(
		config.New(),
		casefile.New(),
		gitinfo.New(),
		history.New(),
		logger.Discard(),
	)
}

func handleCheckIssue() server.ToolHandlerFunc {
	return func(_ context.Context, request mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		actual, err := issueArgument(request, "actual")
		if err != nil {
			return errorResult(err.Error()), nil
		}
		expected, err := issueArgument(request, "expected")
		if err != nil {
			return errorResult(err.Error()), nil
		}

		result := CheckResult{Passed: true}
		if err := check.Check(actual, expected); err != nil {
			result.Passed = false
			result.Message = err.Error()
			if m, ok := check.AsMismatch(err); ok {
				result.Field = m.Field
				result.Expected = m.Expected
				result.Actual = m.Actual
			}
		}
		return jsonResult(result)
	}
}

func handleVerify(projectPath string) server.ToolHandlerFunc {
	return func(_ context.Context, request mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		absPath, err := filepath.Abs(projectPath)
		if err != nil {
			return errorResult(fmt.Sprintf("resolving path: %v", err)), nil
		}

		svc := newVerifyService()
		var report *domain.RunReport
		if caseFile := request.GetString("case", ""); caseFile != "" {
			report, err = svc.VerifyFile(absPath, caseFile)
		} else {
			report, err = svc.Verify(absPath)
		}
		if err != nil {
			return errorResult(fmt.Sprintf("verify failed: %v", err)), nil
		}
		return jsonResult(report)
	}
}

func issueArgument(request mcplib.CallToolRequest, name string) (*domain.Issue, error) {
	raw, err := request.RequireString(name)
	if err != nil {
		return nil, err
	}

	// Unknown keys are rejected, as they are in case files.
	var doc casefile.IssueDocument
	dec := json.NewDecoder(strings.NewReader(raw))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("%s: invalid JSON: %w", name, err)
	}

	issue, err := doc.ToIssue()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	return issue, nil
}

// jsonResult marshals v to indented JSON and returns it as a text content result.
func jsonResult(v interface{}) (*mcplib.CallToolResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshaling result: %w", err)
	}
	return &mcplib.CallToolResult{
		Content: []mcplib.Content{mcplib.NewTextContent(string(data))},
	}, nil
}

func errorResult(msg string) *mcplib.CallToolResult {
	return &mcplib.CallToolResult{
		Content: []mcplib.Content{mcplib.NewTextContent(msg)},
		IsError: true,
	}
}
