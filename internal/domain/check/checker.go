package check

import (
	"github.com/issuecheck/issuecheck/internal/domain"
)

// Field names as they appear in mismatch messages.
const (
	FieldProviderType             = "ProviderType"
	FieldProviderName             = "ProviderName"
	FieldRun                      = "Run"
	FieldIdentifier               = "Identifier"
	FieldProjectFileRelativePath  = "ProjectFileRelativePath"
	FieldProjectName              = "ProjectName"
	FieldAffectedFileRelativePath = "AffectedFileRelativePath"
	FieldLine                     = "Line"
	FieldEndLine                  = "EndLine"
	FieldColumn                   = "Column"
	FieldEndColumn                = "EndColumn"
	FieldFileLink                 = "FileLink"
	FieldMessageText              = "MessageText"
	FieldMessageHtml              = "MessageHtml"
	FieldMessageMarkdown          = "MessageMarkdown"
	FieldPriority                 = "Priority"
	FieldPriorityName             = "PriorityName"
	FieldRule                     = "Rule"
	FieldRuleURL                  = "RuleUrl"
)

// Fields lists every checked field in comparison order. The order follows
// the declared layout of the issue record; when several fields differ, the
// first one in this list is the one reported.
var Fields = []string{
	FieldProviderType,
	FieldProviderName,
	FieldRun,
	FieldIdentifier,
	FieldProjectFileRelativePath,
	FieldProjectName,
	FieldAffectedFileRelativePath,
	FieldLine,
	FieldEndLine,
	FieldColumn,
	FieldEndColumn,
	FieldFileLink,
	FieldMessageText,
	FieldMessageHtml,
	FieldMessageMarkdown,
	FieldPriority,
	FieldPriorityName,
	FieldRule,
	FieldRuleURL,
}

// Expected is the set of values an issue is checked against. The two path
// fields are raw text; they are normalized before comparison.
type Expected struct {
	ProviderType             string
	ProviderName             string
	Run                      string
	Identifier               string
	ProjectFileRelativePath  domain.Optional[string]
	ProjectName              domain.Optional[string]
	AffectedFileRelativePath domain.Optional[string]
	Line                     domain.Optional[int]
	EndLine                  domain.Optional[int]
	Column                   domain.Optional[int]
	EndColumn                domain.Optional[int]
	FileLink                 domain.Optional[domain.URI]
	MessageText              string
	MessageHtml              string
	MessageMarkdown          string
	Priority                 domain.Optional[int]
	PriorityName             domain.Optional[string]
	Rule                     domain.Optional[string]
	RuleURL                  domain.Optional[domain.URI]
}

// ExpectedFrom unpacks an issue into expected values.
func ExpectedFrom(issue *domain.Issue) Expected {
	return Expected{
		ProviderType:             issue.ProviderType(),
		ProviderName:             issue.ProviderName(),
		Run:                      issue.Run(),
		Identifier:               issue.Identifier(),
		ProjectFileRelativePath:  pathText(issue.ProjectFileRelativePath()),
		ProjectName:              issue.ProjectName(),
		AffectedFileRelativePath: pathText(issue.AffectedFileRelativePath()),
		Line:                     issue.Line(),
		EndLine:                  issue.EndLine(),
		Column:                   issue.Column(),
		EndColumn:                issue.EndColumn(),
		FileLink:                 issue.FileLink(),
		MessageText:              issue.MessageText(),
		MessageHtml:              issue.MessageHtml(),
		MessageMarkdown:          issue.MessageMarkdown(),
		Priority:                 issue.Priority(),
		PriorityName:             issue.PriorityName(),
		Rule:                     issue.Rule(),
		RuleURL:                  issue.RuleURL(),
	}
}

// CheckBuilder checks actual against the issue expected describes.
func CheckBuilder(actual *domain.Issue, expected *domain.IssueBuilder) error {
	if actual == nil {
		return &InvalidArgumentError{Param: "actual"}
	}
	if expected == nil {
		return &InvalidArgumentError{Param: "expected"}
	}
	return Check(actual, expected.Create())
}

// Check checks every field of actual against the same field of expected.
func Check(actual, expected *domain.Issue) error {
	if actual == nil {
		return &InvalidArgumentError{Param: "actual"}
	}
	if expected == nil {
		return &InvalidArgumentError{Param: "expected"}
	}
	e := ExpectedFrom(expected)
	return CheckFields(actual, &e)
}

// CheckFields compares actual against expected field by field and returns a
// *MismatchError for the first field that differs. Comparison stops there.
func CheckFields(actual *domain.Issue, expected *Expected) error {
	if actual == nil {
		return &InvalidArgumentError{Param: "actual"}
	}
	if expected == nil {
		return &InvalidArgumentError{Param: "expected"}
	}

	for _, field := range Fields {
		if err := checkField(field, actual, expected); err != nil {
			return err
		}
	}
	return nil
}

func checkField(field string, a *domain.Issue, e *Expected) error {
	switch field {
	case FieldProviderType:
		return checkText(field, a.ProviderType(), e.ProviderType)
	case FieldProviderName:
		return checkText(field, a.ProviderName(), e.ProviderName)
	case FieldRun:
		return checkText(field, a.Run(), e.Run)
	case FieldIdentifier:
		return checkText(field, a.Identifier(), e.Identifier)
	case FieldProjectFileRelativePath:
		return checkPath(field, a.ProjectFileRelativePath(), e.ProjectFileRelativePath)
	case FieldProjectName:
		return checkOptional(field, a.ProjectName(), e.ProjectName)
	case FieldAffectedFileRelativePath:
		return checkPath(field, a.AffectedFileRelativePath(), e.AffectedFileRelativePath)
	case FieldLine:
		return checkOptional(field, a.Line(), e.Line)
	case FieldEndLine:
		return checkOptional(field, a.EndLine(), e.EndLine)
	case FieldColumn:
		return checkOptional(field, a.Column(), e.Column)
	case FieldEndColumn:
		return checkOptional(field, a.EndColumn(), e.EndColumn)
	case FieldFileLink:
		return checkOptional(field, a.FileLink(), e.FileLink)
	case FieldMessageText:
		return checkText(field, a.MessageText(), e.MessageText)
	case FieldMessageHtml:
		return checkText(field, a.MessageHtml(), e.MessageHtml)
	case FieldMessageMarkdown:
		return checkText(field, a.MessageMarkdown(), e.MessageMarkdown)
	case FieldPriority:
		return checkOptional(field, a.Priority(), e.Priority)
	case FieldPriorityName:
		return checkOptional(field, a.PriorityName(), e.PriorityName)
	case FieldRule:
		return checkOptional(field, a.Rule(), e.Rule)
	case FieldRuleURL:
		return checkOptional(field, a.RuleURL(), e.RuleURL)
	}
	panic("check: unknown field " + field)
}

func checkText(field, actual, expected string) error {
	if actual != expected {
		return textMismatch(field, expected, actual)
	}
	return nil
}

// checkOptional applies to optional integers, optional text and URIs alike:
// both absent is equal, one absent is a mismatch, otherwise values (for
// URIs, their literal text) must be equal.
func checkOptional[T comparable](field string, actual, expected domain.Optional[T]) error {
	if !actual.Equal(expected) {
		return mismatch(field, expected, actual)
	}
	return nil
}

// checkPath compares a path the issue may or may not have against raw
// expected text. An absent path must be expected as absent; a present path
// must match the normalized expected text and must be relative.
func checkPath(field string, actual domain.Optional[domain.FilePath], expected domain.Optional[string]) error {
	path, ok := actual.Get()
	if !ok {
		if expected.IsSet() {
			return textMismatch(field, expected.String(), "null")
		}
		return nil
	}

	raw, ok := expected.Get()
	if !ok || domain.NewFilePath(raw).String() != path.String() {
		return textMismatch(field, expected.String(), path.String())
	}

	if !path.IsRelative() {
		return notRelative(field, path.String())
	}
	return nil
}

func pathText(p domain.Optional[domain.FilePath]) domain.Optional[string] {
	path, ok := p.Get()
	if !ok {
		return domain.None[string]()
	}
	return domain.Some(path.String())
}
