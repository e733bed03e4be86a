package singlelink

import (
	"math"

	"gonum.org/v1/gonum/spatial/r2"
)

// PointDistance computes the Euclidean distance between p and q as
// sqrt(dx² + dy²). For whole-number coordinates the sum is exact, so pairs
// at the same squared distance compare equal.
func PointDistance(p, q Point) float64 {
	return math.Sqrt(r2.Norm2(r2.Sub(p.Vec(), q.Vec())))
}

// ClusterDistance computes the single-linkage distance between a and b: the
// minimum PointDistance over every pair with one point from each cluster.
// Both clusters must be non-nil and non-empty; ClusterDistance panics
// otherwise.
func ClusterDistance(a, b *Cluster) float64 {
	if a == nil || b == nil {
		panic("singlelink: ClusterDistance on nil cluster")
	}
	if len(a.points) == 0 || len(b.points) == 0 {
		panic("singlelink: ClusterDistance on empty cluster")
	}

	minDist := math.Inf(1)
	for _, p := range a.points {
		for _, q := range b.points {
			if d := PointDistance(p, q); d < minDist {
				minDist = d
			}
		}
	}
	return minDist
}
