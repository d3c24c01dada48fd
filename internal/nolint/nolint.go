// Package nolint recognizes `--nolint` comments and suppresses findings
// inside the line ranges they cover.
package nolint

import (
	"fmt"
	"strings"

	"github.com/reef-lang/reeflint/internal/ast"
)

const nolintPrefix = "nolint"

// Manager holds the nolint scopes of one source file.
type Manager struct {
	scopes []nolintScope
}

// nolintScope is a line range where nolint applies. An empty rule set
// means all rules.
type nolintScope struct {
	rules     map[string]struct{}
	startLine int
	endLine   int
}

// ParseComments scans the module's comments for nolint directives and
// returns a Manager. Malformed directives are ignored.
func ParseComments(m *ast.Module) *Manager {
	mgr := &Manager{}
	for _, c := range m.Comments {
		ns, err := parseComment(c, m)
		if err != nil {
			continue
		}
		mgr.scopes = append(mgr.scopes, ns)
	}
	return mgr
}

// parseComment parses a single directive and determines its scope.
//
// An inline directive (sharing a line with a declaration) covers that
// line. A standalone directive directly above a declaration covers the
// whole declaration; any other standalone directive covers its own line
// and the next.
func parseComment(c ast.Comment, m *ast.Module) (nolintScope, error) {
	var ns nolintScope
	text := c.Text

	if !strings.HasPrefix(text, nolintPrefix) {
		return ns, fmt.Errorf("not a nolint comment")
	}

	rest := text[len(nolintPrefix):]

	// Either a colon-separated rule list follows, or nothing: a bare
	// directive applies to all rules. Anything else ("nolinter") is a
	// plain comment.
	if rest != "" && rest[0] != ':' {
		return ns, fmt.Errorf("not a nolint comment")
	}
	if rest != "" {
		rest = strings.TrimSpace(rest[1:])
		if rest == "" {
			return ns, fmt.Errorf("no rules after colon")
		}
	}
	ns.rules = parseRuleNames(rest)

	line := c.Loc.Start.Line
	for i := range m.Decls {
		loc := m.Decls[i].Loc
		if loc.Start.Line <= line && line <= loc.End.Line {
			ns.startLine = line
			ns.endLine = line
			return ns, nil
		}
	}
	for i := range m.Decls {
		if m.Decls[i].Loc.Start.Line == line+1 {
			ns.startLine = line
			ns.endLine = m.Decls[i].Loc.End.Line
			return ns, nil
		}
	}

	ns.startLine = line
	ns.endLine = line + 1
	return ns, nil
}

func parseRuleNames(text string) map[string]struct{} {
	rules := make(map[string]struct{})
	if text == "" {
		return rules
	}
	for _, rule := range strings.Split(text, ",") {
		rule = strings.TrimSpace(rule)
		if rule != "" {
			rules[rule] = struct{}{}
		}
	}
	return rules
}

// IsNolint reports whether a finding of ruleName at the given line is
// suppressed.
func (m *Manager) IsNolint(line int, ruleName string) bool {
	for _, ns := range m.scopes {
		if line < ns.startLine || line > ns.endLine {
			continue
		}
		if len(ns.rules) == 0 {
			return true
		}
		if _, ok := ns.rules[ruleName]; ok {
			return true
		}
	}
	return false
}
