package kernelgen

import "fmt"

// PrintShared emits a debug dump of a shared-memory variable: a barrier,
// then a serial section in which one thread prints each of count
// nrow-by-ncol matrices held in varName via the printMat device helper.
// Intended for error checking generated kernels, not production output.
func (b *Builder) PrintShared(varName string, nrow, ncol, count int) {
	content := fmt.Sprintf("for (int i = 0; i < %d; i++) {printf(\"%s[%%d]\\n\", i);printMat<T,%d,%d>(&%s[%d*i], %d);}",
		count, varName, nrow, ncol, varName, nrow*ncol, nrow)
	b.Barrier(false)
	b.SerialSection(false)
	b.AddLine(content)
	b.closeWith("}")
}
