package kernelgen

import (
	"fmt"
	"strings"

	"gonum.org/v1/gonum/mat"
)

// indentUnit is the indentation step applied per open block.
const indentUnit = "    "

// DataType represents the precision of numerical data
type DataType int

const (
	Float32 DataType = iota + 1
	Float64
	INT32
	INT64
)

// Config holds configuration for creating a Builder
type Config struct {
	FloatType DataType
	IntType   DataType
}

// Builder accumulates generated kernel source line by line. It tracks the
// current indentation depth and the stack of open blocks, so unbalanced
// nesting is reported instead of silently producing mis-indented code.
type Builder struct {
	// Type configuration
	FloatType DataType
	IntType   DataType

	// Static data to embed
	staticMatrices map[string]mat.Matrix
	matrixNames    []string

	// Generated code
	sb          strings.Builder
	indentLevel int
	openBlocks  []string // opening line of each unclosed block, innermost last
}

// New creates a Builder. Zero-valued Config fields default to Float64 and
// INT64.
func New(cfg Config) *Builder {
	floatType := cfg.FloatType
	if floatType == 0 {
		floatType = Float64
	}
	intType := cfg.IntType
	if intType == 0 {
		intType = INT64
	}

	return &Builder{
		FloatType:      floatType,
		IntType:        intType,
		staticMatrices: make(map[string]mat.Matrix),
	}
}

// AddLine appends a single line of code at the current indentation depth.
func (b *Builder) AddLine(code string) {
	for i := 0; i < b.indentLevel; i++ {
		b.sb.WriteString(indentUnit)
	}
	b.sb.WriteString(code)
	b.sb.WriteString("\n")
}

// AddLineOpen appends a line that begins a block (for example "if(...){")
// and indents everything after it one level deeper. Close the block with
// CloseBlock or CloseFunction.
func (b *Builder) AddLineOpen(code string) {
	b.AddLine(code)
	b.openBlocks = append(b.openBlocks, code)
	b.indentLevel++
}

// AddLines appends multiple lines of code at the current indentation depth.
func (b *Builder) AddLines(lines []string) {
	for _, line := range lines {
		b.AddLine(line)
	}
}

// AddLinesOpen appends multiple lines and then indents one level, so a
// block header spanning several lines (a long function signature, say) is
// emitted at one depth with the body indented below it.
func (b *Builder) AddLinesOpen(lines []string) {
	b.AddLines(lines)
	opener := ""
	if len(lines) > 0 {
		opener = lines[len(lines)-1]
	}
	b.openBlocks = append(b.openBlocks, opener)
	b.indentLevel++
}

// CloseBlock ends the innermost open block: unindents one level and emits
// the closing brace at the enclosing depth.
func (b *Builder) CloseBlock() error {
	if len(b.openBlocks) == 0 {
		return fmt.Errorf("block underflow: CloseBlock called with no open block")
	}
	b.closeWith("}")
	return nil
}

// CloseFunction ends the innermost open block and appends a blank line,
// marking the end of a top-level definition.
func (b *Builder) CloseFunction() error {
	if len(b.openBlocks) == 0 {
		return fmt.Errorf("block underflow: CloseFunction called with no open block")
	}
	b.closeWith("}\n")
	return nil
}

// closeWith pops the opener stack and emits the closer at the shallower
// depth. Callers have already checked the stack is non-empty.
func (b *Builder) closeWith(closer string) {
	b.openBlocks = b.openBlocks[:len(b.openBlocks)-1]
	b.indentLevel--
	b.AddLine(closer)
}

// IndentLevel returns the current indentation depth.
func (b *Builder) IndentLevel() int {
	return b.indentLevel
}

// Source returns the accumulated kernel source. It fails if any block is
// still open, identifying the innermost unclosed opener.
func (b *Builder) Source() (string, error) {
	if n := len(b.openBlocks); n > 0 {
		return "", fmt.Errorf("%d unclosed block(s) at end of generation, innermost opened by %q",
			n, b.openBlocks[n-1])
	}
	return b.sb.String(), nil
}
