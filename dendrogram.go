package singlelink

import (
	"fmt"
	"slices"
)

// Dendrogram converts a merge history into a single-linkage dendrogram in
// scipy format. merges must come from reducing a collection of n clusters.
// Returns [][4]float64 rows: [left, right, distance, mergedSize]. Leaves
// keep their original collection index; new node IDs start at n and
// increment, the same numbering scipy's linkage output uses.
func Dendrogram(merges []Merge, n int) [][4]float64 {
	if len(merges) == 0 {
		return nil
	}
	if len(merges) > n-1 {
		panic(fmt.Sprintf("singlelink: %d merges cannot come from %d clusters", len(merges), n))
	}

	// nodes[k] is the dendrogram node currently sitting at collection index k.
	nodes := make([]int, n)
	for k := range nodes {
		nodes[k] = k
	}
	nextLabel := n

	result := make([][4]float64, 0, len(merges))
	for _, m := range merges {
		left := nodes[m.Left]
		right := nodes[m.Right]
		result = append(result, [4]float64{float64(left), float64(right), m.Distance, float64(m.Size)})

		// The merged cluster stays at Left; Right is compacted away exactly
		// as Collection.Remove does it.
		nodes[m.Left] = nextLabel
		nodes = slices.Delete(nodes, m.Right, m.Right+1)
		nextLabel++
	}

	return result
}
