// Package formatter renders findings for the terminal: a rustc-style
// header, the offending source lines with an underline, detail notes and
// a preview of the fix when one is attached.
package formatter

import (
	"bytes"
	"fmt"
	"strings"
	"text/template"
	"unicode"

	"github.com/fatih/color"
	"github.com/reef-lang/reeflint/internal"
	"github.com/reef-lang/reeflint/internal/fixer"
	tt "github.com/reef-lang/reeflint/internal/types"
)

const tabWidth = 8

var (
	errorStyle   = color.New(color.FgRed, color.Bold)
	warningStyle = color.New(color.FgHiYellow, color.Bold)
	ruleStyle    = color.New(color.FgYellow, color.Bold)
	fileStyle    = color.New(color.FgCyan, color.Bold)
	lineStyle    = color.New(color.FgHiBlue, color.Bold)
	messageStyle = color.New(color.FgRed, color.Bold)
	fixStyle     = color.New(color.FgGreen, color.Bold)
)

const findingTemplate = `{{header .Rule .Severity .MaxLineNumWidth .Filename .StartLine .StartColumn}}
{{snippet .SnippetLines .StartLine .EndLine .MaxLineNumWidth .CommonIndent .Padding}}{{underlineAndMessage .Message .Padding .StartLine .EndLine .StartColumn .EndColumn .SnippetLines .CommonIndent}}
{{- range .Details}}
{{detail . $.Padding}}
{{- end}}
{{fix .FixLines .Padding .MaxLineNumWidth .StartLine}}`

// GenerateFormattedFindings renders findings one after another,
// separated by blank lines.
func GenerateFormattedFindings(findings []tt.Finding, snippet *internal.SourceCode) string {
	var builder strings.Builder
	for _, f := range findings {
		builder.WriteString(buildFinding(f, snippet))
		builder.WriteString("\n")
	}
	return builder.String()
}

type findingData struct {
	Severity        string
	Rule            string
	Filename        string
	Padding         string
	StartLine       int
	StartColumn     int
	EndLine         int
	EndColumn       int
	MaxLineNumWidth int
	Message         string
	Details         []string
	SnippetLines    []string
	FixLines        []string
	CommonIndent    string
}

func buildFinding(f tt.Finding, snippet *internal.SourceCode) string {
	startLine := f.PrimaryRange.Start.Line
	endLine := f.PrimaryRange.End.Line
	maxLineNumWidth := calculateMaxLineNumWidth(endLine)
	padding := strings.Repeat(" ", maxLineNumWidth+1)

	var commonIndent string
	if startLine >= 1 && endLine <= len(snippet.Lines) && startLine <= endLine {
		commonIndent = findCommonIndent(snippet.Lines[startLine-1 : endLine])
	}

	data := findingData{
		Severity:        f.Severity.String(),
		Rule:            f.Rule,
		Filename:        f.Filename,
		StartLine:       startLine,
		StartColumn:     f.PrimaryRange.Start.Col,
		EndLine:         endLine,
		EndColumn:       f.PrimaryRange.End.Col,
		Message:         f.Message,
		Details:         f.Details,
		MaxLineNumWidth: maxLineNumWidth,
		Padding:         padding,
		CommonIndent:    commonIndent,
		SnippetLines:    snippet.Lines,
		FixLines:        fixPreview(f, snippet),
	}

	funcMap := template.FuncMap{
		"header":              header,
		"snippet":             codeSnippet,
		"underlineAndMessage": underlineAndMessage,
		"detail":              detail,
		"fix":                 fixSection,
	}

	tmpl := template.Must(template.New("finding").Funcs(funcMap).Parse(findingTemplate))

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return fmt.Sprintf("Error formatting finding: %v\n", err)
	}
	return buf.String()
}

// fixPreview applies the finding's edits to the whole source and returns
// the rewritten lines covering the finding's range. Edits never insert
// newlines, so the region keeps its start line and any line-count change
// in the result happens inside it.
func fixPreview(f tt.Finding, snippet *internal.SourceCode) []string {
	if len(f.Edits) == 0 {
		return nil
	}
	src := strings.Join(snippet.Lines, "\n")
	fixed, err := fixer.Apply([]byte(src), f.Edits)
	if err != nil {
		return nil
	}
	fixedLines := strings.Split(string(fixed), "\n")
	delta := len(fixedLines) - len(snippet.Lines)

	start := f.PrimaryRange.Start.Line
	end := f.PrimaryRange.End.Line + delta
	if start < 1 || end > len(fixedLines) || start > end {
		return nil
	}
	return fixedLines[start-1 : end]
}

// template helpers

func header(rule, severity string, maxLineNumWidth int, filename string, startLine, startColumn int) string {
	var out string
	switch severity {
	case "error":
		out = errorStyle.Sprint("error: ")
	default:
		out = warningStyle.Sprint("warning: ")
	}
	out += ruleStyle.Sprintf("%s\n", rule)

	padding := strings.Repeat(" ", maxLineNumWidth)
	out += lineStyle.Sprintf("%s--> ", padding)
	out += fileStyle.Sprintf("%s:%d:%d", filename, startLine, startColumn)
	return out
}

func codeSnippet(snippetLines []string, startLine, endLine, maxLineNumWidth int, commonIndent, padding string) string {
	out := lineStyle.Sprintf("%s|\n", padding)
	for i := startLine; i <= endLine; i++ {
		if i < 1 || i > len(snippetLines) {
			continue
		}
		line := strings.TrimPrefix(snippetLines[i-1], commonIndent)
		lineNum := fmt.Sprintf("%*d", maxLineNumWidth, i)
		out += lineStyle.Sprintf("%s | ", lineNum)
		out += fmt.Sprintf("%s\n", line)
	}
	return out
}

func underlineAndMessage(message, padding string, startLine, endLine, startColumn, endColumn int, snippetLines []string, commonIndent string) string {
	out := lineStyle.Sprintf("%s| ", padding)

	if !isValidLineRange(startLine, endLine, snippetLines) {
		out += messageStyle.Sprintf("%s\n", message)
		return out
	}

	commonIndentWidth := calculateVisualColumn(commonIndent, len(commonIndent)+1)

	underlineStart := calculateVisualColumn(snippetLines[startLine-1], startColumn) - commonIndentWidth
	if underlineStart < 0 {
		underlineStart = 0
	}

	// the range is half-open, so the underline stops one short of End
	underlineEnd := calculateVisualColumn(snippetLines[endLine-1], endColumn) - commonIndentWidth
	underlineLength := underlineEnd - underlineStart
	if underlineLength < 1 {
		underlineLength = 1
	}

	out += strings.Repeat(" ", underlineStart)
	out += messageStyle.Sprintf("%s\n", strings.Repeat("~", underlineLength))

	out += lineStyle.Sprintf("%s= ", padding)
	out += messageStyle.Sprintf("%s\n", message)
	return out
}

func detail(text, padding string) string {
	return lineStyle.Sprintf("%s= ", padding) + fmt.Sprintf("note: %s", text)
}

func fixSection(fixLines []string, padding string, maxLineNumWidth, startLine int) string {
	if len(fixLines) == 0 {
		return ""
	}
	out := fixStyle.Sprint("Fix:\n")
	out += lineStyle.Sprintf("%s|\n", padding)
	for i, line := range fixLines {
		lineNum := fmt.Sprintf("%*d", maxLineNumWidth, startLine+i)
		out += lineStyle.Sprintf("%s | ", lineNum)
		out += fmt.Sprintf("%s\n", line)
	}
	out += lineStyle.Sprintf("%s|\n", padding)
	return out
}

func isValidLineRange(startLine, endLine int, snippetLines []string) bool {
	return startLine > 0 &&
		endLine > 0 &&
		startLine <= endLine &&
		startLine <= len(snippetLines) &&
		endLine <= len(snippetLines)
}

func calculateMaxLineNumWidth(endLine int) int {
	return len(fmt.Sprintf("%d", endLine))
}

// calculateVisualColumn converts a 1-based rune column into a visual
// column, expanding tabs.
func calculateVisualColumn(line string, column int) int {
	if column < 0 {
		return 0
	}
	visualColumn := 0
	runeIndex := 1
	for _, ch := range line {
		if runeIndex == column {
			break
		}
		if ch == '\t' {
			visualColumn += tabWidth - (visualColumn % tabWidth)
		} else {
			visualColumn++
		}
		runeIndex++
	}
	return visualColumn
}

// findCommonIndent finds the indent shared by all non-empty lines.
func findCommonIndent(lines []string) string {
	var first []rune
	for _, line := range lines {
		trimmed := strings.TrimLeftFunc(line, unicode.IsSpace)
		if trimmed != "" {
			first = []rune(line[:len(line)-len(trimmed)])
			break
		}
	}
	if len(first) == 0 {
		return ""
	}

	for _, line := range lines {
		trimmed := strings.TrimLeftFunc(line, unicode.IsSpace)
		if trimmed == "" {
			continue
		}
		current := []rune(line[:len(line)-len(trimmed)])
		first = commonPrefix(first, current)
		if len(first) == 0 {
			break
		}
	}
	return string(first)
}

func commonPrefix(a, b []rune) []rune {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	for i := 0; i < n; i++ {
		if a[i] != b[i] {
			return a[:i]
		}
	}
	return a[:n]
}
