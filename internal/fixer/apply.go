// Package fixer applies the edits attached to findings. Edits carry
// line/column ranges; the fixer converts them to byte offsets against
// the actual source and splices, so it is the only component that ever
// touches source text.
package fixer

import (
	"fmt"
	"sort"
	"unicode/utf8"

	"github.com/reef-lang/reeflint/internal/ast"
	tt "github.com/reef-lang/reeflint/internal/types"
)

// Apply splices the edits into src and returns the result. Edits may
// arrive in any order but must not overlap; columns count runes, not
// bytes.
func Apply(src []byte, edits []tt.Edit) ([]byte, error) {
	if len(edits) == 0 {
		return src, nil
	}

	lineStarts := indexLines(src)

	type span struct {
		start, end int
		text       string
	}
	spans := make([]span, 0, len(edits))
	for _, e := range edits {
		start, err := byteOffset(src, lineStarts, e.Range.Start)
		if err != nil {
			return nil, err
		}
		end, err := byteOffset(src, lineStarts, e.Range.End)
		if err != nil {
			return nil, err
		}
		if end < start {
			return nil, fmt.Errorf("inverted edit range %v", e.Range)
		}
		text := e.Text
		if e.Kind == tt.EditRemove {
			text = ""
		}
		spans = append(spans, span{start: start, end: end, text: text})
	}

	sort.Slice(spans, func(i, j int) bool {
		if spans[i].start != spans[j].start {
			return spans[i].start < spans[j].start
		}
		return spans[i].end < spans[j].end
	})
	for i := 1; i < len(spans); i++ {
		if spans[i].start < spans[i-1].end {
			return nil, fmt.Errorf("overlapping edits at byte %d", spans[i].start)
		}
	}

	var out []byte
	prev := 0
	for _, s := range spans {
		out = append(out, src[prev:s.start]...)
		out = append(out, s.text...)
		prev = s.end
	}
	out = append(out, src[prev:]...)
	return out, nil
}

// indexLines returns the byte offset of the start of each line,
// 1-indexed (lineStarts[0] is unused).
func indexLines(src []byte) []int {
	starts := []int{0, 0}
	for i, b := range src {
		if b == '\n' {
			starts = append(starts, i+1)
		}
	}
	return starts
}

func byteOffset(src []byte, lineStarts []int, pos ast.Position) (int, error) {
	if pos.Line < 1 || pos.Line >= len(lineStarts) {
		return 0, fmt.Errorf("line %d out of range", pos.Line)
	}
	off := lineStarts[pos.Line]
	for col := 1; col < pos.Col; col++ {
		if off >= len(src) || src[off] == '\n' {
			return 0, fmt.Errorf("column %d out of range on line %d", pos.Col, pos.Line)
		}
		_, size := utf8.DecodeRune(src[off:])
		off += size
	}
	return off, nil
}
