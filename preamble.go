package kernelgen

import (
	"fmt"
	"strings"

	"gonum.org/v1/gonum/mat"
)

// AddStaticMatrix registers a matrix to embed as constant data in the
// generated source. Matrices are emitted by AddStaticMatrices in
// registration order; re-registering a name replaces its matrix.
func (b *Builder) AddStaticMatrix(name string, m mat.Matrix) {
	if _, exists := b.staticMatrices[name]; !exists {
		b.matrixNames = append(b.matrixNames, name)
	}
	b.staticMatrices[name] = m
}

// AddTypedefs emits the precision typedefs and constants configured for
// this Builder. Generated constructs refer to the floating point type as
// T, so this normally opens the kernel preamble.
func (b *Builder) AddTypedefs() {
	floatTypeStr := "double"
	floatSuffix := ""
	if b.FloatType == Float32 {
		floatTypeStr = "float"
		floatSuffix = "f"
	}

	intTypeStr := "long"
	if b.IntType == INT32 {
		intTypeStr = "int"
	}

	b.AddLine("typedef " + floatTypeStr + " T;")
	b.AddLine("typedef " + intTypeStr + " int_t;")
	b.AddLine("#define REAL_ZERO 0.0" + floatSuffix)
	b.AddLine("#define REAL_ONE 1.0" + floatSuffix)
	b.AddLine("")
}

// AddStaticMatrices emits every registered matrix as a constant C array
// initialization, in registration order.
func (b *Builder) AddStaticMatrices() {
	if len(b.matrixNames) == 0 {
		return
	}
	b.AddLine("// Static matrices")
	for _, name := range b.matrixNames {
		b.addStaticMatrix(name, b.staticMatrices[name])
	}
	b.AddLine("")
}

// addStaticMatrix formats a single matrix as a static C array.
func (b *Builder) addStaticMatrix(name string, m mat.Matrix) {
	rows, cols := m.Dims()

	typeStr := "double"
	if b.FloatType == Float32 {
		typeStr = "float"
	}

	b.AddLineOpen(fmt.Sprintf("const %s %s[%d][%d] = {", typeStr, name, rows, cols))
	for i := 0; i < rows; i++ {
		var row strings.Builder
		row.WriteString("{")
		for j := 0; j < cols; j++ {
			if j > 0 {
				row.WriteString(", ")
			}
			val := m.At(i, j)
			if b.FloatType == Float32 {
				row.WriteString(fmt.Sprintf("%.7ef", val))
			} else {
				row.WriteString(fmt.Sprintf("%.15e", val))
			}
		}
		row.WriteString("}")
		if i < rows-1 {
			row.WriteString(",")
		}
		b.AddLine(row.String())
	}
	b.closeWith("};")
}
