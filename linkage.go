package singlelink

import (
	"fmt"

	"go.uber.org/zap"
	"gonum.org/v1/gonum/floats"
)

// Config controls the reduction loop.
// Start with [DefaultConfig] and override the fields you need.
type Config struct {
	// TargetClusters is the number of clusters to stop at. If the input
	// already has this many clusters or fewer, nothing is merged.
	// Must be >= 1. Default: 1.
	TargetClusters int

	// Logger receives one debug entry per merge and an info summary when
	// the loop finishes. Default: a no-op logger.
	Logger *zap.Logger
}

// Merge records one step of the reduction loop.
type Merge struct {
	// Left and Right are the collection indices of the merged clusters at
	// the time of the merge, Left < Right. Right is removed afterwards.
	Left  int
	Right int

	// Distance is the single-linkage distance between the two clusters.
	Distance float64

	// Size is the number of points in the merged cluster.
	Size int
}

// Result contains the output of the reduction loop.
type Result struct {
	// Clusters is the reduced collection. It is the collection passed to
	// Reduce, modified in place.
	Clusters *Collection

	// Merges lists every merge in the order it was performed.
	Merges []Merge

	// SingleLinkageTree is the merge history in scipy format: each row is
	// [left, right, distance, size]. Leaves are the clusters at their
	// original collection indices; merged nodes are numbered from the
	// original collection length.
	SingleLinkageTree [][4]float64
}

// Heights returns the linkage distance of every merge, in merge order.
func (r *Result) Heights() []float64 {
	h := make([]float64, len(r.Merges))
	for i, m := range r.Merges {
		h[i] = m.Distance
	}
	return h
}

// DefaultConfig returns a Config that reduces to a single cluster.
func DefaultConfig() Config {
	return Config{
		TargetClusters: 1,
		Logger:         zap.NewNop(),
	}
}

// applyDefaults fills in zero-valued config fields with their defaults.
func applyDefaults(cfg *Config) {
	if cfg.TargetClusters == 0 {
		cfg.TargetClusters = 1
	}
	if cfg.Logger == nil {
		cfg.Logger = zap.NewNop()
	}
}

// validateConfig checks that cfg fields are valid and returns a descriptive error if not.
func validateConfig(cfg *Config) error {
	if cfg.TargetClusters < 1 {
		return fmt.Errorf("singlelink: TargetClusters must be >= 1, got %d", cfg.TargetClusters)
	}
	return nil
}

// ClusterPoints builds one singleton cluster per point and reduces them to
// cfg.TargetClusters clusters.
func ClusterPoints(points []Point, cfg Config) (*Result, error) {
	applyDefaults(&cfg)
	if err := validateConfig(&cfg); err != nil {
		return nil, err
	}

	col, err := NewSingletons(points)
	if err != nil {
		return nil, err
	}
	return Reduce(col, cfg)
}

// Reduce merges the two nearest clusters of col, by single linkage, until
// col holds cfg.TargetClusters clusters. Each step merges the cluster at the
// higher index into the one at the lower index and removes the former, so
// exactly max(0, col.Len()-cfg.TargetClusters) merges are performed.
//
// If a merge cannot grow its cluster, Reduce returns an error wrapping
// ErrAllocation and col is left as it was before that step.
func Reduce(col *Collection, cfg Config) (*Result, error) {
	if col == nil {
		panic("singlelink: Reduce on nil collection")
	}
	applyDefaults(&cfg)
	if err := validateConfig(&cfg); err != nil {
		return nil, err
	}

	log := cfg.Logger
	n := col.Len()
	merges := make([]Merge, 0, max(0, n-cfg.TargetClusters))

	for step := 0; col.Len() > cfg.TargetClusters; step++ {
		i, j, d := FindNeighbours(col)
		if err := col.At(i).Merge(col.At(j)); err != nil {
			return nil, fmt.Errorf("singlelink: merge step %d (clusters %d and %d): %w", step, i, j, err)
		}
		col.Remove(j)

		m := Merge{Left: i, Right: j, Distance: d, Size: col.At(i).Size()}
		merges = append(merges, m)
		log.Debug("merged clusters",
			zap.Int("step", step),
			zap.Int("left", m.Left),
			zap.Int("right", m.Right),
			zap.Float64("distance", m.Distance),
			zap.Int("size", m.Size),
			zap.Int("remaining", col.Len()),
		)
	}

	r := &Result{
		Clusters:          col,
		Merges:            merges,
		SingleLinkageTree: Dendrogram(merges, n),
	}

	fields := []zap.Field{
		zap.Int("loaded", n),
		zap.Int("clusters", col.Len()),
		zap.Int("merges", len(merges)),
	}
	if heights := r.Heights(); len(heights) > 0 {
		fields = append(fields,
			zap.Float64("min_distance", floats.Min(heights)),
			zap.Float64("max_distance", floats.Max(heights)),
		)
	}
	log.Info("reduction finished", fields...)

	return r, nil
}
