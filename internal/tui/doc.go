// Package tui provides terminal user interface components for
// slippi-launcher, currently the interactive gecko code picker used by
// "codes pick".
package tui
