package domain

// Issue is one finding reported by a static-analysis or build tool.
// It is immutable; construct it with IssueBuilder.
type Issue struct {
	providerType             string
	providerName             string
	run                      string
	identifier               string
	projectFileRelativePath  Optional[FilePath]
	projectName              Optional[string]
	affectedFileRelativePath Optional[FilePath]
	line                     Optional[int]
	endLine                  Optional[int]
	column                   Optional[int]
	endColumn                Optional[int]
	fileLink                 Optional[URI]
	messageText              string
	messageHtml              string
	messageMarkdown          string
	priority                 Optional[int]
	priorityName             Optional[string]
	rule                     Optional[string]
	ruleURL                  Optional[URI]
}

func (i *Issue) ProviderType() string { return i.providerType }
func (i *Issue) ProviderName() string { return i.providerName }

// Run is the name of the run which reported the issue.
func (i *Issue) Run() string        { return i.run }
func (i *Issue) Identifier() string { return i.identifier }

func (i *Issue) ProjectFileRelativePath() Optional[FilePath] { return i.projectFileRelativePath }
func (i *Issue) ProjectName() Optional[string]               { return i.projectName }
func (i *Issue) AffectedFileRelativePath() Optional[FilePath] {
	return i.affectedFileRelativePath
}

func (i *Issue) Line() Optional[int]      { return i.line }
func (i *Issue) EndLine() Optional[int]   { return i.endLine }
func (i *Issue) Column() Optional[int]    { return i.column }
func (i *Issue) EndColumn() Optional[int] { return i.endColumn }
func (i *Issue) FileLink() Optional[URI]  { return i.fileLink }

func (i *Issue) MessageText() string     { return i.messageText }
func (i *Issue) MessageHtml() string     { return i.messageHtml }
func (i *Issue) MessageMarkdown() string { return i.messageMarkdown }

func (i *Issue) Priority() Optional[int]        { return i.priority }
func (i *Issue) PriorityName() Optional[string] { return i.priorityName }
func (i *Issue) Rule() Optional[string]         { return i.rule }
func (i *Issue) RuleURL() Optional[URI]         { return i.ruleURL }
