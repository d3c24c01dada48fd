package internal

import (
	"fmt"
	"os"
	"sort"

	"github.com/reef-lang/reeflint/internal/ast"
	"github.com/reef-lang/reeflint/internal/equiv"
	"github.com/reef-lang/reeflint/internal/nolint"
	"github.com/reef-lang/reeflint/internal/parser"
	"github.com/reef-lang/reeflint/internal/resolve"
	"github.com/reef-lang/reeflint/internal/simplify"
	tt "github.com/reef-lang/reeflint/internal/types"
)

// Engine drives one analysis pass: parse, resolve names, run the
// simplification checkers and filter the findings through suppression
// and severity configuration.
type Engine struct {
	ignoredRules map[string]bool
	severities   map[string]tt.Severity
	oracle       equiv.Oracle
}

// NewEngine creates an engine with the given per-rule configuration.
// Rules configured SeverityOff are dropped entirely; unconfigured rules
// report at SeverityWarning.
func NewEngine(rules map[string]tt.ConfigRule) *Engine {
	e := &Engine{
		ignoredRules: make(map[string]bool),
		severities:   make(map[string]tt.Severity),
		oracle:       equiv.Structural{},
	}
	for name, rule := range rules {
		if rule.Severity == tt.SeverityOff {
			e.IgnoreRule(name)
			continue
		}
		e.severities[name] = rule.Severity
	}
	return e
}

// IgnoreRule drops all findings of the named rule.
func (e *Engine) IgnoreRule(rule string) {
	e.ignoredRules[rule] = true
}

// Run analyzes one file on disk.
func (e *Engine) Run(filename string) ([]tt.Finding, error) {
	src, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", filename, err)
	}
	return e.RunSource(filename, src)
}

// RunSource analyzes source held in memory. Findings come back sorted
// by position, with filename and configured severity stamped on each.
func (e *Engine) RunSource(filename string, src []byte) ([]tt.Finding, error) {
	mod, err := parser.ParseModule(filename, src)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", filename, err)
	}
	return e.RunModule(filename, mod), nil
}

// RunModule analyzes an already-parsed module.
func (e *Engine) RunModule(filename string, mod *ast.Module) []tt.Finding {
	cx := &simplify.Context{
		Resolver: resolve.Build(mod),
		Oracle:   e.oracle,
	}
	nolintMgr := nolint.ParseComments(mod)

	findings := simplify.Analyze(mod, cx)
	kept := make([]tt.Finding, 0, len(findings))
	for _, f := range findings {
		if e.ignoredRules[f.Rule] {
			continue
		}
		if nolintMgr.IsNolint(f.PrimaryRange.Start.Line, f.Rule) {
			continue
		}
		f.Filename = filename
		f.Severity = e.severityFor(f.Rule)
		kept = append(kept, f)
	}

	sort.SliceStable(kept, func(i, j int) bool {
		a, b := kept[i].PrimaryRange.Start, kept[j].PrimaryRange.Start
		if a.Line != b.Line {
			return a.Line < b.Line
		}
		return a.Col < b.Col
	})
	return kept
}

func (e *Engine) severityFor(rule string) tt.Severity {
	if sev, ok := e.severities[rule]; ok {
		return sev
	}
	return tt.SeverityWarning
}
