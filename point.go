package singlelink

import (
	"fmt"

	"gonum.org/v1/gonum/spatial/r2"
)

// Point is a labeled 2D coordinate. Points are values: moving one between
// clusters copies it.
type Point struct {
	ID int
	X  float64
	Y  float64
}

// Vec returns the coordinates of p as a gonum vector.
func (p Point) Vec() r2.Vec {
	return r2.Vec{X: p.X, Y: p.Y}
}

// String formats p as it appears in a cluster report: id[x,y].
func (p Point) String() string {
	return fmt.Sprintf("%d[%g,%g]", p.ID, p.X, p.Y)
}
