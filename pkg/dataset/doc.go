// Package dataset defines the in-memory table model shared by the store,
// cleaning, analysis, and validation layers: typed cell values with an
// explicit missing sentinel, homogeneous columns, and a column-major
// table with deep-copy and row-filtering primitives.
package dataset
