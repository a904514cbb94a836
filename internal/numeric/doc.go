// Package numeric provides the elementwise array operations consumed by
// the canvas and plot layers.
//
// Operations are exposed through the [Ops] interface with two backends:
//
//   - Slice: plain per-element loops
//   - Parallel: chunked execution across worker goroutines for large inputs
//
// Both backends produce identical numeric results; the parallel backend is
// purely a throughput optimization. Select one explicitly at construction
// or use [AutoSelect].
package numeric
