package internal

import (
	"os"
	"strings"
)

// SourceCode stores the content of a source file split into lines, for
// snippet rendering.
type SourceCode struct {
	Lines []string
}

// ReadSourceCode reads a file and returns it as a SourceCode.
func ReadSourceCode(filename string) (*SourceCode, error) {
	content, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}
	return SourceFromBytes(content), nil
}

// SourceFromBytes wraps in-memory source.
func SourceFromBytes(content []byte) *SourceCode {
	return &SourceCode{Lines: strings.Split(string(content), "\n")}
}
