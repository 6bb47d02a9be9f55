// Package annotations defines declarative annotation models: labels,
// label sets, and titles.
//
// Annotations describe text placed on or around the plot area. Like
// glyphs, they are data-only: the figure's renderer decides how to paint
// them. Coordinates can be interpreted in data units (projected through
// the figure's ranges) or screen units (raw pixels relative to the plot
// area), selected per coordinate.
package annotations
