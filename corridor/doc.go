// Package corridor rasterises L-shaped corridors between two cells.
//
// A corridor is a horizontal run followed by a vertical run, or the reverse.
// CarveL picks the orientation with one coin flip from the run's source;
// Path and Line are pure and draw nothing.
//
// Carving only ever opens cells, so carving the same corridor twice leaves
// the grid exactly as carving it once.
package corridor
