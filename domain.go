package kernelgen

import "fmt"

// SerialSection opens a conditional whose body runs on exactly one
// participant of the execution domain: thread rank 0 of the cooperative
// group when useThreadGroup is set, otherwise the (0,0) thread of the
// block. Close the section with CloseBlock after the serial code has been
// added.
func (b *Builder) SerialSection(useThreadGroup bool) {
	if useThreadGroup {
		b.AddLineOpen("if(tgrp.thread_rank() == 0){")
	} else {
		b.AddLineOpen("if(threadIdx.x == 0 && threadIdx.y == 0){")
	}
}

// ParallelLoop opens a strided for loop partitioning 0..tripCount
// (exclusive) across the execution domain: the loop variable starts at the
// participant's linear rank and advances by the domain population, so the
// loop is correct for any trip count relative to the population. The
// domain is the thread block by default, the cooperative group when
// useThreadGroup is set, or the grid of blocks when blockLevel is set.
// tripCount is a C expression. Close the loop with CloseBlock.
//
// A block-level thread-group loop is not a supported configuration; it is
// reported as an error and nothing is emitted.
func (b *Builder) ParallelLoop(varName, tripCount string, useThreadGroup, blockLevel bool) error {
	var code string
	switch {
	case blockLevel && useThreadGroup:
		return fmt.Errorf("parallel loop %q: block-level thread group loops are not supported", varName)
	case blockLevel:
		code = "for(int " + varName + " = blockIdx.x + blockIdx.y*gridDim.x; " +
			varName + " < " + tripCount + "; " + varName + " += gridDim.x*gridDim.y){"
	case useThreadGroup:
		code = "for(int " + varName + " = tgrp.thread_rank(); " +
			varName + " < " + tripCount + "; " + varName + " += tgrp.size()){"
	default:
		code = "for(int " + varName + " = threadIdx.x + threadIdx.y*blockDim.x; " +
			varName + " < " + tripCount + "; " + varName + " += blockDim.x*blockDim.y){"
	}
	b.AddLineOpen(code)
	return nil
}

// Barrier emits a synchronization statement: no participant proceeds past
// it until every participant in the execution domain has reached it.
func (b *Builder) Barrier(useThreadGroup bool) {
	if useThreadGroup {
		b.AddLine("tgrp.sync();")
	} else {
		b.AddLine("__syncthreads();")
	}
}
