package casefile

import (
	"fmt"

	"github.com/issuecheck/issuecheck/internal/domain"
)

// IssueDocument is the serialized form of an issue in case files and MCP
// requests. Missing keys and explicit nulls both mean the field is absent.
type IssueDocument struct {
	ProviderType             string  `yaml:"provider_type"               json:"provider_type"`
	ProviderName             string  `yaml:"provider_name"               json:"provider_name"`
	Run                      string  `yaml:"run"                         json:"run"`
	Identifier               string  `yaml:"identifier"                  json:"identifier"`
	ProjectFileRelativePath  *string `yaml:"project_file_relative_path"  json:"project_file_relative_path"`
	ProjectName              *string `yaml:"project_name"                json:"project_name"`
	AffectedFileRelativePath *string `yaml:"affected_file_relative_path" json:"affected_file_relative_path"`
	Line                     *int    `yaml:"line"                        json:"line"`
	EndLine                  *int    `yaml:"end_line"                    json:"end_line"`
	Column                   *int    `yaml:"column"                      json:"column"`
	EndColumn                *int    `yaml:"end_column"                  json:"end_column"`
	FileLink                 *string `yaml:"file_link"                   json:"file_link"`
	MessageText              string  `yaml:"message_text"                json:"message_text"`
	// MessageHtml and MessageMarkdown default to MessageText when absent.
	MessageHtml     *string `yaml:"message_html"     json:"message_html"`
	MessageMarkdown *string `yaml:"message_markdown" json:"message_markdown"`
	Priority        *int    `yaml:"priority"         json:"priority"`
	PriorityName    *string `yaml:"priority_name"    json:"priority_name"`
	Rule            *string `yaml:"rule"             json:"rule"`
	RuleURL         *string `yaml:"rule_url"         json:"rule_url"`
}

// ToIssue builds the issue the document describes.
func (d IssueDocument) ToIssue() (*domain.Issue, error) {
	fileLink, err := optionalURI("file_link", d.FileLink)
	if err != nil {
		return nil, err
	}
	ruleURL, err := optionalURI("rule_url", d.RuleURL)
	if err != nil {
		return nil, err
	}

	b := domain.NewIssueBuilder(d.Identifier, d.MessageText, d.ProviderType, d.ProviderName).
		ForRun(d.Run).
		InProjectFile(deref(d.ProjectFileRelativePath)).
		WithProjectName(domain.FromPtr(d.ProjectName)).
		InFileRange(deref(d.AffectedFileRelativePath),
			domain.FromPtr(d.Line), domain.FromPtr(d.EndLine),
			domain.FromPtr(d.Column), domain.FromPtr(d.EndColumn)).
		WithOptionalFileLink(fileLink).
		WithOptionalPriority(domain.FromPtr(d.Priority), domain.FromPtr(d.PriorityName)).
		WithOptionalRule(domain.FromPtr(d.Rule), ruleURL)

	if d.MessageHtml != nil {
		b.WithMessageInHtmlFormat(*d.MessageHtml)
	}
	if d.MessageMarkdown != nil {
		b.WithMessageInMarkdownFormat(*d.MessageMarkdown)
	}

	return b.Create(), nil
}

// FromIssue serializes an issue.
func FromIssue(issue *domain.Issue) IssueDocument {
	html, markdown := issue.MessageHtml(), issue.MessageMarkdown()
	return IssueDocument{
		ProviderType:             issue.ProviderType(),
		ProviderName:             issue.ProviderName(),
		Run:                      issue.Run(),
		Identifier:               issue.Identifier(),
		ProjectFileRelativePath:  pathPtr(issue.ProjectFileRelativePath()),
		ProjectName:              issue.ProjectName().Ptr(),
		AffectedFileRelativePath: pathPtr(issue.AffectedFileRelativePath()),
		Line:                     issue.Line().Ptr(),
		EndLine:                  issue.EndLine().Ptr(),
		Column:                   issue.Column().Ptr(),
		EndColumn:                issue.EndColumn().Ptr(),
		FileLink:                 uriPtr(issue.FileLink()),
		MessageText:              issue.MessageText(),
		MessageHtml:              &html,
		MessageMarkdown:          &markdown,
		Priority:                 issue.Priority().Ptr(),
		PriorityName:             issue.PriorityName().Ptr(),
		Rule:                     issue.Rule().Ptr(),
		RuleURL:                  uriPtr(issue.RuleURL()),
	}
}

func optionalURI(field string, raw *string) (domain.Optional[domain.URI], error) {
	if raw == nil {
		return domain.None[domain.URI](), nil
	}
	u, err := domain.ParseURI(*raw)
	if err != nil {
		return domain.None[domain.URI](), fmt.Errorf("%s: %w", field, err)
	}
	return domain.Some(u), nil
}

func pathPtr(p domain.Optional[domain.FilePath]) *string {
	path, ok := p.Get()
	if !ok {
		return nil
	}
	s := path.String()
	return &s
}

func uriPtr(u domain.Optional[domain.URI]) *string {
	uri, ok := u.Get()
	if !ok {
		return nil
	}
	s := uri.String()
	return &s
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
