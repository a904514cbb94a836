// Package canvas implements a character-grid pixel canvas for terminal
// plotting.
//
// A [Canvas] composes an affine [Geometry] (logical coordinates to pixel
// space) with a [Cells] pixel-packing policy that maps sub-character
// pixels to glyphs:
//
//   - [BrailleCells]: 2x4 dots per character, Unicode Braille patterns
//   - [BlockCells]: 2x2 quadrants per character, block element glyphs
//
// Lines are rasterized with an 8x supersampled Bresenham walk: both
// endpoints are mapped to pixel space, scaled up, walked at the fine
// resolution and collapsed back down, which smooths shallow slopes that
// plain Bresenham renders as broken stair-steps on a coarse grid.
//
// A canvas is single-owner mutable state: draw with Line, Lines or Pixel,
// then read the result with Render. Callers drawing from multiple
// goroutines must serialize access themselves.
package canvas
