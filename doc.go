// Package singlelink implements agglomerative hierarchical clustering of 2D
// points by single linkage (nearest neighbour).
//
// Every point starts in its own cluster. The two clusters whose closest
// points are nearest to each other are merged, repeatedly, until the
// requested number of clusters remains.
//
// Basic usage:
//
//	cfg := singlelink.DefaultConfig()
//	cfg.TargetClusters = 3
//	result, err := singlelink.ClusterPoints(points, cfg)
//	// result.Clusters.At(i) is the i-th remaining cluster
//	// result.Merges lists every merge in order
//
// Input files in the "count=N" / "<id> <x> <y>" format are read with
// [LoadFile], and a reduced collection is rendered with [Write].
//
// # Cost
//
// [FindNeighbours] rescans every pair of clusters on each merge and
// [ClusterDistance] compares every pair of points, so a full reduction of k
// points costs between O(k³) and O(k⁴) point distances. There is no
// distance caching or spatial index; the package targets small and
// moderate offline datasets.
package singlelink
