package fixer

import (
	"fmt"
	"os"

	tt "github.com/reef-lang/reeflint/internal/types"
)

// Analyzer re-runs the analysis between fix passes.
type Analyzer interface {
	RunSource(filename string, src []byte) ([]tt.Finding, error)
}

// maxPasses bounds the fix loop. Every fix strictly shrinks or
// simplifies the tree, so the loop terminates on its own; the bound is
// against checker bugs.
const maxPasses = 1000

type Fixer struct {
	analyzer Analyzer
	dryRun   bool
}

func New(analyzer Analyzer, dryRun bool) *Fixer {
	return &Fixer{analyzer: analyzer, dryRun: dryRun}
}

// Fix repeatedly applies the first fixable finding and re-analyzes
// until no finding carries edits. Applying one fix at a time keeps
// every edit computed against the tree it was reported on, so
// overlapping follow-up findings never see stale positions. Returns the
// number of fixes applied.
func (f *Fixer) Fix(filename string) (int, error) {
	src, err := os.ReadFile(filename)
	if err != nil {
		return 0, fmt.Errorf("failed to read file: %w", err)
	}

	fixed, applied, err := f.FixSource(filename, src)
	if err != nil {
		return applied, err
	}
	if applied == 0 || f.dryRun {
		return applied, nil
	}

	if err := os.WriteFile(filename, fixed, 0o644); err != nil {
		return applied, fmt.Errorf("failed to write file: %w", err)
	}
	return applied, nil
}

// FixSource runs the fix loop against in-memory source.
func (f *Fixer) FixSource(filename string, src []byte) ([]byte, int, error) {
	applied := 0
	for pass := 0; pass < maxPasses; pass++ {
		findings, err := f.analyzer.RunSource(filename, src)
		if err != nil {
			return src, applied, err
		}

		fixable := firstFixable(findings)
		if fixable == nil {
			return src, applied, nil
		}
		if f.dryRun {
			fmt.Printf("Would fix %s at line %d: %s\n",
				filename, fixable.PrimaryRange.Start.Line, fixable.Message)
			return src, applied, nil
		}

		src, err = Apply(src, fixable.Edits)
		if err != nil {
			return src, applied, fmt.Errorf("applying fix for %s: %w", fixable.Rule, err)
		}
		applied++
	}
	return src, applied, fmt.Errorf("fix loop did not settle after %d passes", maxPasses)
}

func firstFixable(findings []tt.Finding) *tt.Finding {
	for i := range findings {
		if len(findings[i].Edits) > 0 {
			return &findings[i]
		}
	}
	return nil
}
