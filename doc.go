// Package kernelgen generates CUDA C++ kernel source for grid-parallel
// numerical kernels.
//
// A Builder accumulates source text line by line, tracking indentation and
// open blocks, and provides the recurring kernel constructs on top of that:
// serial sections, strided parallel loops, barriers, staged shared-memory
// copies, and multi-way selectors in either branching or branch-free form.
//
// Basic usage:
//
//	b := kernelgen.New(kernelgen.Config{FloatType: kernelgen.Float64})
//	b.AddLineOpen("__global__ void kernel(const T *d_q, T *d_out){")
//	if err := b.ParallelLoop("ind", "36", false, false); err != nil {
//	    log.Fatal(err)
//	}
//	b.AddLine("d_out[ind] = d_q[ind];")
//	b.CloseBlock()
//	b.CloseFunction()
//	source, err := b.Source()
//
// The Builder only produces text; compiling or running the generated kernel
// is left to the caller.
package kernelgen
