package kernelgen

import "fmt"

// StageBuffer names one array staged between global and shared memory.
// Stride and Count are C expressions: Stride is the per-outer-index offset
// into the global array, Count the number of elements to copy. The direct
// (single-timing) copy variants ignore Stride.
type StageBuffer struct {
	Name   string
	Stride string
	Count  string
}

// maxStageBuffers bounds the number of arrays one staged copy handles.
const maxStageBuffers = 3

// LoadShared emits a staged load: for each buffer, a base pointer into
// global memory offset by the outer index k, then a parallel copy loop
// into the shared array s_<name>. A single barrier follows the last copy,
// so subsequent code may assume every load has completed.
func (b *Builder) LoadShared(bufs []StageBuffer, useThreadGroup bool) error {
	if len(bufs) == 0 || len(bufs) > maxStageBuffers {
		return fmt.Errorf("staged load: need between 1 and %d buffers, got %d", maxStageBuffers, len(bufs))
	}
	b.AddLine("// load to shared mem")
	for _, buf := range bufs {
		b.AddLine("const T *d_" + buf.Name + "_k = &d_" + buf.Name + "[k*" + buf.Stride + "];")
		if err := b.ParallelLoop("ind", buf.Count, useThreadGroup, false); err != nil {
			return err
		}
		b.AddLine("s_" + buf.Name + "[ind] = d_" + buf.Name + "_k[ind];")
		if err := b.CloseBlock(); err != nil {
			return err
		}
	}
	b.Barrier(useThreadGroup)
	return nil
}

// StoreGlobal emits the mirror staged store: a parallel copy loop from
// loadFrom back to the global array d_<storeTo>, offset by the outer index
// k, followed by a barrier. An empty loadFrom defaults to "s_<storeTo>".
func (b *Builder) StoreGlobal(storeTo, stride, count, loadFrom string, useThreadGroup bool) error {
	if loadFrom == "" {
		loadFrom = "s_" + storeTo
	}
	b.AddLine("// save down to global")
	b.AddLine("T *d_" + storeTo + "_k = &d_" + storeTo + "[k*" + stride + "];")
	if err := b.ParallelLoop("ind", count, useThreadGroup, false); err != nil {
		return err
	}
	b.AddLine("d_" + storeTo + "_k[ind] = " + loadFrom + "[ind];")
	if err := b.CloseBlock(); err != nil {
		return err
	}
	b.Barrier(useThreadGroup)
	return nil
}

// LoadSharedDirect is the single-timing load variant: element-indexed
// copies straight from d_<name> with no per-outer-index base pointer.
// Buffer strides are ignored.
func (b *Builder) LoadSharedDirect(bufs []StageBuffer, useThreadGroup bool) error {
	if len(bufs) == 0 || len(bufs) > maxStageBuffers {
		return fmt.Errorf("staged load: need between 1 and %d buffers, got %d", maxStageBuffers, len(bufs))
	}
	b.AddLine("// load to shared mem")
	for _, buf := range bufs {
		if err := b.ParallelLoop("ind", buf.Count, useThreadGroup, false); err != nil {
			return err
		}
		b.AddLine("s_" + buf.Name + "[ind] = d_" + buf.Name + "[ind];")
		if err := b.CloseBlock(); err != nil {
			return err
		}
	}
	b.Barrier(useThreadGroup)
	return nil
}

// StoreGlobalDirect is the single-timing store variant: element-indexed
// copies straight into d_<storeTo>, then a barrier. An empty loadFrom
// defaults to "s_<storeTo>".
func (b *Builder) StoreGlobalDirect(storeTo, count, loadFrom string, useThreadGroup bool) error {
	if loadFrom == "" {
		loadFrom = "s_" + storeTo
	}
	b.AddLine("// save down to global")
	if err := b.ParallelLoop("ind", count, useThreadGroup, false); err != nil {
		return err
	}
	b.AddLine("d_" + storeTo + "[ind] = " + loadFrom + "[ind];")
	if err := b.CloseBlock(); err != nil {
		return err
	}
	b.Barrier(useThreadGroup)
	return nil
}
