package singlelink

import (
	"slices"
	"testing"
)

func TestEdgeCase_SinglePoint(t *testing.T) {
	result, err := ClusterPoints([]Point{{ID: 1, X: 2, Y: 3}}, DefaultConfig())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Clusters.Len() != 1 {
		t.Fatalf("expected 1 cluster, got %d", result.Clusters.Len())
	}
	if len(result.Merges) != 0 {
		t.Errorf("expected no merges, got %d", len(result.Merges))
	}
}

func TestEdgeCase_NoPoints(t *testing.T) {
	result, err := ClusterPoints(nil, DefaultConfig())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Clusters.Len() != 0 {
		t.Errorf("expected no clusters, got %d", result.Clusters.Len())
	}
}

func TestEdgeCase_AllIdenticalPoints(t *testing.T) {
	pts := make([]Point, 10)
	for i := range pts {
		pts[i] = Point{ID: 9 - i, X: 5, Y: 5}
	}
	cfg := DefaultConfig()
	cfg.TargetClusters = 2
	result, err := ClusterPoints(pts, cfg)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Every distance is 0, so each step merges clusters 0 and 1.
	for i, m := range result.Merges {
		if m.Left != 0 || m.Right != 1 || m.Distance != 0 {
			t.Errorf("merge %d = %+v, want (0, 1) at distance 0", i, m)
		}
	}
	if got, want := result.Clusters.At(0).IDs(), []int{1, 2, 3, 4, 5, 6, 7, 8, 9}; !slices.Equal(got, want) {
		t.Errorf("first cluster ids = %v, want %v", got, want)
	}
	if got := result.Clusters.At(1).IDs(); !slices.Equal(got, []int{0}) {
		t.Errorf("second cluster ids = %v, want [0]", got)
	}
}

func TestEdgeCase_Collinear(t *testing.T) {
	// Gaps 1, 2, 3, 4: reducing to 2 clusters cuts the widest gap.
	pts := []Point{{ID: 0, X: 0}, {ID: 1, X: 1}, {ID: 2, X: 3}, {ID: 3, X: 6}, {ID: 4, X: 10}}
	cfg := DefaultConfig()
	cfg.TargetClusters = 2
	result, err := ClusterPoints(pts, cfg)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := result.Clusters.At(0).IDs(); !slices.Equal(got, []int{0, 1, 2, 3}) {
		t.Errorf("first cluster ids = %v, want [0 1 2 3]", got)
	}
	if got := result.Clusters.At(1).IDs(); !slices.Equal(got, []int{4}) {
		t.Errorf("second cluster ids = %v, want [4]", got)
	}
}

func TestEdgeCase_CornersOfRange(t *testing.T) {
	pts := []Point{
		{ID: 0, X: MinCoordinate, Y: MinCoordinate},
		{ID: 1, X: MaxCoordinate, Y: MaxCoordinate},
		{ID: 2, X: MinCoordinate, Y: MaxCoordinate},
	}
	result, err := ClusterPoints(pts, DefaultConfig())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// (0,0)-(0,1000) and (1000,1000)-(0,1000) tie at 1000; (0, 2) is
	// scanned before (1, 2).
	if m := result.Merges[0]; m.Left != 0 || m.Right != 2 {
		t.Errorf("first merge = (%d, %d), want (0, 2)", m.Left, m.Right)
	}
	if result.Clusters.PointCount() != 3 {
		t.Errorf("expected 3 points, got %d", result.Clusters.PointCount())
	}
}
