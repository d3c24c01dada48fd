// Package types holds the finding and edit records shared between the
// analysis core, the fixer, the formatter, and the CLI.
package types

import (
	"fmt"
	"strings"

	"github.com/reef-lang/reeflint/internal/ast"
)

// Severity controls how a rule's findings are reported.
type Severity int

const (
	SeverityError Severity = iota
	SeverityWarning
	SeverityOff
)

func (s Severity) String() string {
	switch s {
	case SeverityError:
		return "error"
	case SeverityWarning:
		return "warning"
	case SeverityOff:
		return "off"
	}
	return fmt.Sprintf("severity(%d)", int(s))
}

// UnmarshalYAML accepts "error", "warning" and "off".
func (s *Severity) UnmarshalYAML(unmarshal func(any) error) error {
	var raw string
	if err := unmarshal(&raw); err != nil {
		return err
	}
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "error":
		*s = SeverityError
	case "warning", "warn":
		*s = SeverityWarning
	case "off", "none":
		*s = SeverityOff
	default:
		return fmt.Errorf("unknown severity %q", raw)
	}
	return nil
}

// ConfigRule is the per-rule configuration block.
type ConfigRule struct {
	Severity Severity `yaml:"severity"`
}

// EditKind discriminates the three edit operations.
type EditKind int

const (
	EditRemove EditKind = iota
	EditInsert
	EditReplace
)

func (k EditKind) String() string {
	switch k {
	case EditRemove:
		return "remove"
	case EditInsert:
		return "insert"
	case EditReplace:
		return "replace"
	}
	return fmt.Sprintf("edit(%d)", int(k))
}

// Edit is one atomic text operation on a half-open source range.
// An insert has an empty Range positioned at the insertion point.
type Edit struct {
	Kind  EditKind
	Range ast.Range
	Text  string
}

// Finding is one reported simplification opportunity. Edits are pairwise
// disjoint and contained within the expression the finding is about; a
// finding with no edits is valid and means no safe fix could be computed.
type Finding struct {
	Rule         string
	Filename     string
	Severity     Severity
	Message      string
	Details      []string
	PrimaryRange ast.Range
	Edits        []Edit
}
