package singlelink

import (
	"cmp"
	"errors"
	"fmt"
	"math"
	"slices"
)

// ClusterChunk is the number of slots a Cluster grows by when an append
// finds it full.
const ClusterChunk = 10

// MaxClusterCapacity is the largest capacity a Cluster will grow to.
const MaxClusterCapacity = math.MaxInt32

// ErrAllocation is returned when a Cluster cannot grow its storage.
var ErrAllocation = errors.New("singlelink: cluster storage growth failed")

// Cluster is an ordered, growable collection of points. Capacity is managed
// explicitly: a full cluster grows by ClusterChunk slots, never by the
// runtime's append policy, and never shrinks except through Clear.
type Cluster struct {
	points []Point
	// maxCap bounds growth; Resize past it fails with ErrAllocation.
	maxCap int
}

// NewCluster creates an empty cluster with room for capacity points.
// A capacity of 0 reserves no storage. Panics if capacity is negative.
func NewCluster(capacity int) *Cluster {
	return newClusterWithLimit(capacity, MaxClusterCapacity)
}

func newClusterWithLimit(capacity, maxCap int) *Cluster {
	if capacity < 0 {
		panic(fmt.Sprintf("singlelink: NewCluster capacity must be >= 0, got %d", capacity))
	}
	c := &Cluster{maxCap: maxCap}
	if capacity > 0 {
		c.points = make([]Point, 0, capacity)
	}
	return c
}

// Size returns the number of points in c.
func (c *Cluster) Size() int { return len(c.points) }

// Cap returns the number of points c can hold without growing.
func (c *Cluster) Cap() int { return cap(c.points) }

// Point returns the i-th point of c.
func (c *Cluster) Point(i int) Point { return c.points[i] }

// Points returns a copy of the points in c, in storage order.
func (c *Cluster) Points() []Point {
	return slices.Clone(c.points)
}

// IDs returns the ids of the points in c, in storage order.
func (c *Cluster) IDs() []int {
	ids := make([]int, len(c.points))
	for i, p := range c.points {
		ids[i] = p.ID
	}
	return ids
}

// Clear releases the storage of c and resets it to an empty cluster with
// zero capacity. Clearing an empty cluster is a no-op.
func (c *Cluster) Clear() {
	c.points = nil
}

// Resize grows the capacity of c to newCap, preserving its contents.
// It does nothing if c already has at least newCap slots. On failure c is
// left unchanged.
func (c *Cluster) Resize(newCap int) error {
	if newCap < 0 {
		panic(fmt.Sprintf("singlelink: Resize capacity must be >= 0, got %d", newCap))
	}
	if cap(c.points) >= newCap {
		return nil
	}
	if newCap > c.limit() {
		return fmt.Errorf("%w: capacity %d exceeds limit %d", ErrAllocation, newCap, c.limit())
	}

	grown := make([]Point, len(c.points), newCap)
	copy(grown, c.points)
	c.points = grown
	return nil
}

// Append adds p at the end of c, growing c by ClusterChunk slots if it is
// full. On failure c is left unchanged.
func (c *Cluster) Append(p Point) error {
	if len(c.points) >= cap(c.points) {
		if err := c.Resize(cap(c.points) + ClusterChunk); err != nil {
			return err
		}
	}
	c.points = append(c.points, p)
	return nil
}

// SortByID orders the points of c by ascending id.
func (c *Cluster) SortByID() {
	slices.SortFunc(c.points, func(a, b Point) int {
		return cmp.Compare(a.ID, b.ID)
	})
}

// Merge appends every point of other to c and sorts c by id. other is only
// read, never modified; the caller decides what happens to it afterwards.
//
// The capacity needed for the whole merge is reserved up front, in
// ClusterChunk steps, so a failed merge leaves c exactly as it was and a
// successful one ends with the capacity point-by-point appends would give.
func (c *Cluster) Merge(other *Cluster) error {
	if other == nil {
		panic("singlelink: Merge with nil cluster")
	}

	need := len(c.points) + len(other.points)
	if need > cap(c.points) {
		missing := need - cap(c.points)
		chunks := (missing + ClusterChunk - 1) / ClusterChunk
		if err := c.Resize(cap(c.points) + chunks*ClusterChunk); err != nil {
			return err
		}
	}

	for _, p := range other.points {
		if err := c.Append(p); err != nil {
			return err
		}
	}
	c.SortByID()
	return nil
}

func (c *Cluster) limit() int {
	if c.maxCap <= 0 {
		return MaxClusterCapacity
	}
	return c.maxCap
}
