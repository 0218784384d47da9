package domain

// IssueBuilder assembles an Issue. Each setter returns the builder so calls
// can be chained; Create takes a snapshot, so a builder can be reused.
type IssueBuilder struct {
	issue Issue
}

// NewIssueBuilder starts an issue with its required identifying fields.
// The plain text message is also used as HTML and Markdown message until
// overridden.
func NewIssueBuilder(identifier, messageText, providerType, providerName string) *IssueBuilder {
	return &IssueBuilder{issue: Issue{
		identifier:      identifier,
		messageText:     messageText,
		messageHtml:     messageText,
		messageMarkdown: messageText,
		providerType:    providerType,
		providerName:    providerName,
	}}
}

// ForRun sets the name of the run which reported the issue.
func (b *IssueBuilder) ForRun(run string) *IssueBuilder {
	b.issue.run = run
	return b
}

// InProjectFile sets the project file. Blank text clears it.
func (b *IssueBuilder) InProjectFile(projectFileRelativePath string) *IssueBuilder {
	b.issue.projectFileRelativePath = optionalPath(projectFileRelativePath)
	return b
}

// InProject sets the project file and project name. An empty name is kept
// as an empty string, not as absence.
func (b *IssueBuilder) InProject(projectFileRelativePath, projectName string) *IssueBuilder {
	b.issue.projectFileRelativePath = optionalPath(projectFileRelativePath)
	b.issue.projectName = Some(projectName)
	return b
}

// WithProjectName sets or clears the project name.
func (b *IssueBuilder) WithProjectName(projectName Optional[string]) *IssueBuilder {
	b.issue.projectName = projectName
	return b
}

func (b *IssueBuilder) InFile(filePath string) *IssueBuilder {
	b.issue.affectedFileRelativePath = optionalPath(filePath)
	return b
}

func (b *IssueBuilder) InFileLine(filePath string, line int) *IssueBuilder {
	b.InFile(filePath)
	b.issue.line = Some(line)
	return b
}

func (b *IssueBuilder) InFileLineColumn(filePath string, line, column int) *IssueBuilder {
	b.InFileLine(filePath, line)
	b.issue.column = Some(column)
	return b
}

// InFileRange sets a file location; absent bounds stay absent.
func (b *IssueBuilder) InFileRange(filePath string, line, endLine, column, endColumn Optional[int]) *IssueBuilder {
	b.InFile(filePath)
	b.issue.line = line
	b.issue.endLine = endLine
	b.issue.column = column
	b.issue.endColumn = endColumn
	return b
}

func (b *IssueBuilder) WithFileLink(link URI) *IssueBuilder {
	b.issue.fileLink = Some(link)
	return b
}

// WithOptionalFileLink sets or clears the file link.
func (b *IssueBuilder) WithOptionalFileLink(link Optional[URI]) *IssueBuilder {
	b.issue.fileLink = link
	return b
}

func (b *IssueBuilder) WithMessageInHtmlFormat(messageHtml string) *IssueBuilder {
	b.issue.messageHtml = messageHtml
	return b
}

func (b *IssueBuilder) WithMessageInMarkdownFormat(messageMarkdown string) *IssueBuilder {
	b.issue.messageMarkdown = messageMarkdown
	return b
}

func (b *IssueBuilder) WithPriority(priority int) *IssueBuilder {
	b.issue.priority = Some(priority)
	return b
}

func (b *IssueBuilder) WithPriorityName(priorityName string) *IssueBuilder {
	b.issue.priorityName = Some(priorityName)
	return b
}

// WithOptionalPriority sets or clears priority and priority name independently.
func (b *IssueBuilder) WithOptionalPriority(priority Optional[int], priorityName Optional[string]) *IssueBuilder {
	b.issue.priority = priority
	b.issue.priorityName = priorityName
	return b
}

func (b *IssueBuilder) OfRule(rule string) *IssueBuilder {
	b.issue.rule = Some(rule)
	return b
}

func (b *IssueBuilder) OfRuleWithURL(rule string, ruleURL URI) *IssueBuilder {
	b.issue.rule = Some(rule)
	b.issue.ruleURL = Some(ruleURL)
	return b
}

// WithOptionalRule sets or clears rule and rule URL independently.
func (b *IssueBuilder) WithOptionalRule(rule Optional[string], ruleURL Optional[URI]) *IssueBuilder {
	b.issue.rule = rule
	b.issue.ruleURL = ruleURL
	return b
}

// Create returns a copy of the issue built so far.
func (b *IssueBuilder) Create() *Issue {
	issue := b.issue
	return &issue
}

// optionalPath treats blank text as no path.
func optionalPath(raw string) Optional[FilePath] {
	p := NewFilePath(raw)
	if p.String() == "" {
		return None[FilePath]()
	}
	return Some(p)
}
