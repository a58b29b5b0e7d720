package nsga3_test

import (
	"testing"

	"github.com/ashwinyue/optirustic-go/optimizer/nsga3"
	"github.com/ashwinyue/optirustic-go/optimizer/refpoint"
)

func TestAdaptReferencePointsAddsNeighboursForCrowdedPoints(t *testing.T) {
	points := []refpoint.Point{
		{0.2, 0.2, 0.6},
		{0.5, 0.3, 0.2},
	}
	rho := map[int]int{0: 3, 1: 1}

	adapted := nsga3.AdaptReferencePoints(points, rho, len(points))
	if len(adapted) <= len(points) {
		t.Errorf("expected new reference points around the crowded point 0, got %d (started with %d)", len(adapted), len(points))
	}
	for _, p := range adapted[:len(points)] {
		found := false
		for _, orig := range points {
			if pointsEqual(p, orig) {
				found = true
			}
		}
		if !found {
			t.Errorf("original reference points should be preserved unchanged")
		}
	}
}

func TestAdaptReferencePointsPrunesUnusedWhenAllOriginalSingle(t *testing.T) {
	points := []refpoint.Point{
		{0.2, 0.2, 0.6},
		{0.5, 0.3, 0.2},
		// Added by an earlier adaptation round.
		{0.3, 0.3, 0.4},
	}
	const numOriginal = 2
	// Every original point has rho == 1: the newly added, never-selected
	// (rho == 0) point should be removed.
	rho := map[int]int{0: 1, 1: 1, 2: 0}
	adapted := nsga3.AdaptReferencePoints(points, rho, numOriginal)
	if len(adapted) != numOriginal {
		t.Errorf("expected no new points to survive when every original is singly represented, got %d", len(adapted))
	}
}

func pointsEqual(a, b refpoint.Point) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
