package kernelgen

import (
	"strings"
	"testing"
)

// ============================================================================
// Section 1: Serial Section and Barrier Tests
// ============================================================================

// Test 1.1: Serial section opens on exactly one thread and balances
func TestSerialSection(t *testing.T) {
	t.Run("BlockMode", func(t *testing.T) {
		b := New(Config{})
		b.SerialSection(false)
		mustClose(t, b)

		source := mustSource(t, b)
		expected := "if(threadIdx.x == 0 && threadIdx.y == 0){\n}\n"
		if source != expected {
			t.Errorf("Expected %q, got %q", expected, source)
		}
		if b.IndentLevel() != 0 {
			t.Errorf("Expected depth 0, got %d", b.IndentLevel())
		}
	})

	t.Run("ThreadGroupMode", func(t *testing.T) {
		b := New(Config{})
		b.SerialSection(true)
		mustClose(t, b)

		source := mustSource(t, b)
		expected := "if(tgrp.thread_rank() == 0){\n}\n"
		if source != expected {
			t.Errorf("Expected %q, got %q", expected, source)
		}
	})
}

// Test 1.2: Barrier statements per mode
func TestBarrier(t *testing.T) {
	b := New(Config{})
	b.Barrier(false)
	b.Barrier(true)

	source := mustSource(t, b)
	expected := "__syncthreads();\ntgrp.sync();\n"
	if source != expected {
		t.Errorf("Expected %q, got %q", expected, source)
	}
}

// ============================================================================
// Section 2: Parallel Loop Tests
// ============================================================================

// Test 2.1: Loop headers for the three execution domains
func TestParallelLoop_Headers(t *testing.T) {
	testCases := []struct {
		name           string
		useThreadGroup bool
		blockLevel     bool
		expected       string
	}{
		{
			"thread_in_block", false, false,
			"for(int ind = threadIdx.x + threadIdx.y*blockDim.x; ind < 36; ind += blockDim.x*blockDim.y){",
		},
		{
			"thread_group", true, false,
			"for(int ind = tgrp.thread_rank(); ind < 36; ind += tgrp.size()){",
		},
		{
			"block_in_grid", false, true,
			"for(int ind = blockIdx.x + blockIdx.y*gridDim.x; ind < 36; ind += gridDim.x*gridDim.y){",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			b := New(Config{})
			if err := b.ParallelLoop("ind", "36", tc.useThreadGroup, tc.blockLevel); err != nil {
				t.Fatalf("ParallelLoop failed: %v", err)
			}
			mustClose(t, b)

			source := mustSource(t, b)
			expected := tc.expected + "\n}\n"
			if source != expected {
				t.Errorf("Expected %q, got %q", expected, source)
			}
		})
	}
}

// Test 2.2: Trip count is any C expression
func TestParallelLoop_ExpressionTripCount(t *testing.T) {
	b := New(Config{})
	if err := b.ParallelLoop("i", "6*N_DOF", false, false); err != nil {
		t.Fatalf("ParallelLoop failed: %v", err)
	}
	mustClose(t, b)

	source := mustSource(t, b)
	if !strings.Contains(source, "i < 6*N_DOF;") {
		t.Errorf("Expected trip count expression in header, got %q", source)
	}
}

// Test 2.3: Block-level thread group loop is a configuration error
func TestParallelLoop_UnsupportedConfiguration(t *testing.T) {
	b := New(Config{})
	err := b.ParallelLoop("ind", "36", true, true)
	if err == nil {
		t.Fatal("Expected configuration error, got nil")
	}
	if !strings.Contains(err.Error(), "not supported") {
		t.Errorf("Expected descriptive error, got %q", err.Error())
	}

	// Nothing may be emitted and no block may be opened for the failed call
	source := mustSource(t, b)
	if source != "" {
		t.Errorf("Expected no output after configuration error, got %q", source)
	}
	if b.IndentLevel() != 0 {
		t.Errorf("Expected depth 0 after configuration error, got %d", b.IndentLevel())
	}
}

// Test 2.4: Strided coverage - each index visited exactly once for any
// population P and trip count T
func TestParallelLoop_StridedCoverage(t *testing.T) {
	populations := []int{1, 2, 3, 7, 32, 256}
	tripCounts := []int{0, 1, 5, 36, 100}

	for _, p := range populations {
		for _, trips := range tripCounts {
			visits := make([]int, trips)
			// Each participant starts at its rank and strides by the
			// population, exactly the emitted loop's schedule.
			for rank := 0; rank < p; rank++ {
				for ind := rank; ind < trips; ind += p {
					visits[ind]++
				}
			}
			for ind, count := range visits {
				if count != 1 {
					t.Fatalf("P=%d T=%d: index %d visited %d times, expected 1",
						p, trips, ind, count)
				}
			}
		}
	}
}
