// Package plot assembles line plots on top of the canvas package.
//
// A [Lineplot] collects datasets in several shapes (y-only, x/y pairs,
// functions sampled over a range), auto-scales the canvas to the data
// bounds, draws every series with a cycling color, and frames the result
// with an optional border, title and axis labels.
package plot
