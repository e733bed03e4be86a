package singlelink

import (
	"fmt"
	"math"
)

// FindNeighbours returns the indices i < j of the two clusters in col with
// the smallest single-linkage distance, and that distance.
//
// Pairs are scanned in increasing (i, j) order and only a strictly smaller
// distance replaces the running minimum, so the first pair in that order
// wins ties. Every call rescans all pairs: O(k²) cluster distances for k
// clusters. Panics if col holds fewer than two clusters.
func FindNeighbours(col *Collection) (i, j int, dist float64) {
	if col == nil {
		panic("singlelink: FindNeighbours on nil collection")
	}
	k := col.Len()
	if k < 2 {
		panic(fmt.Sprintf("singlelink: FindNeighbours needs at least 2 clusters, got %d", k))
	}

	dist = math.Inf(1)
	i, j = 0, 1
	for a := 0; a < k; a++ {
		for b := a + 1; b < k; b++ {
			if d := ClusterDistance(col.clusters[a], col.clusters[b]); d < dist {
				dist = d
				i, j = a, b
			}
		}
	}
	return i, j, dist
}
