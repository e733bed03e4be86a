package singlelink

import "fmt"

// Collection is an ordered sequence of clusters. It owns every cluster it
// holds: removing a cluster releases its storage.
type Collection struct {
	clusters []*Cluster
}

// NewCollection creates an empty collection with room for capacity
// clusters.
func NewCollection(capacity int) *Collection {
	return &Collection{clusters: make([]*Cluster, 0, capacity)}
}

// NewSingletons creates a collection holding one single-point cluster per
// point, in the order given.
func NewSingletons(points []Point) (*Collection, error) {
	col := NewCollection(len(points))
	for _, p := range points {
		c := NewCluster(1)
		if err := c.Append(p); err != nil {
			col.Clear()
			return nil, err
		}
		col.Add(c)
	}
	return col, nil
}

// Len returns the number of clusters in col.
func (col *Collection) Len() int { return len(col.clusters) }

// At returns the cluster at index i.
func (col *Collection) At(i int) *Cluster {
	col.checkIndex("At", i)
	return col.clusters[i]
}

// Add appends c to the end of col. Panics if c is nil.
func (col *Collection) Add(c *Cluster) {
	if c == nil {
		panic("singlelink: Add of nil cluster")
	}
	col.clusters = append(col.clusters, c)
}

// Remove clears the cluster at idx and shifts every later cluster one
// position left, preserving their relative order. It returns the new
// length. Panics if idx is out of range.
func (col *Collection) Remove(idx int) int {
	col.checkIndex("Remove", idx)

	col.clusters[idx].Clear()
	last := len(col.clusters) - 1
	copy(col.clusters[idx:], col.clusters[idx+1:])
	col.clusters[last] = nil
	col.clusters = col.clusters[:last]
	return last
}

// Clear releases every cluster and empties col.
func (col *Collection) Clear() {
	for i, c := range col.clusters {
		c.Clear()
		col.clusters[i] = nil
	}
	col.clusters = col.clusters[:0]
}

// PointCount returns the total number of points across all clusters.
func (col *Collection) PointCount() int {
	n := 0
	for _, c := range col.clusters {
		n += c.Size()
	}
	return n
}

func (col *Collection) checkIndex(op string, i int) {
	if i < 0 || i >= len(col.clusters) {
		panic(fmt.Sprintf("singlelink: %s index %d out of range [0, %d)", op, i, len(col.clusters)))
	}
}
