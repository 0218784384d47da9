package tui

import (
	"fmt"
	"strings"

	"github.com/davecgh/go-spew/spew"
	"github.com/fatih/camelcase"
	"github.com/issuecheck/issuecheck/internal/adapters/outbound/casefile"
	"github.com/issuecheck/issuecheck/internal/domain"
)

var dumper = spew.ConfigState{
	Indent:                  "  ",
	DisablePointerAddresses: true,
	DisableCapacities:       true,
	SortKeys:                true,
}

// RenderFailure renders one failed case with the mismatching field, the
// expected and actual values, and optionally a dump of the actual issue.
func RenderFailure(res domain.CaseResult, opts Options) string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("\n  %s %s  %s\n",
		failStyle.Render("●"), titleStyle.Render(res.Name), fileStyle.Render(res.File)))

	if res.Field != "" {
		b.WriteString(fmt.Sprintf("    %s\n", fieldStyle.Render(FieldLabel(res.Field))))
		b.WriteString(fmt.Sprintf("    %s %s\n", dimStyle.Render("expected"), quote(res.Expected)))
		b.WriteString(fmt.Sprintf("    %s   %s\n", dimStyle.Render("actual"), quote(res.Actual)))
	}
	b.WriteString("    " + dimStyle.Render(res.Message) + "\n")

	if opts.Dump && res.Issue != nil {
		dump := dumper.Sdump(casefile.FromIssue(res.Issue))
		for _, line := range strings.Split(strings.TrimRight(dump, "\n"), "\n") {
			b.WriteString("    " + faintStyle.Render(line) + "\n")
		}
	}

	return b.String()
}

// FieldLabel turns a field name such as ProjectFileRelativePath into
// "Project File Relative Path".
func FieldLabel(field string) string {
	return strings.Join(camelcase.Split(field), " ")
}

func quote(v string) string {
	if v == "null" {
		return warnStyle.Render(v)
	}
	return "'" + v + "'"
}
