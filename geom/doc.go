// Package geom provides the 2D geometry primitives used by the compositor:
// axis-aligned rectangles, oriented (tilted) rectangles, and a small family
// of affine transformation matrices classified by shape.
//
// Pixel-space rectangles use unsigned integer coordinates; continuous
// geometry (points, matrices, tilted rectangles) uses float64.
package geom
