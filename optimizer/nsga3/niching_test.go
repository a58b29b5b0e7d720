package nsga3_test

import (
	"testing"

	"golang.org/x/exp/rand"

	"github.com/ashwinyue/optirustic-go/optimizer"
	"github.com/ashwinyue/optirustic-go/optimizer/nsga3"
	"github.com/ashwinyue/optirustic-go/optimizer/refpoint"
)

func associatedFixture(t *testing.T) (ind1, ind2, ind3 *optimizer.Individual) {
	t.Helper()
	p := threeObjectiveProblem(t)
	ind1 = fixedIndividual(t, p, 1, 0, 0)
	ind2 = fixedIndividual(t, p, 0.9, 0.1, 0)
	ind3 = fixedIndividual(t, p, 0, 0, 1)

	ideal := nsga3.NewIdealPoint(3)
	all := []*optimizer.Individual{ind1, ind2, ind3}
	nsga3.Normalise(all, ideal)

	refs := []refpoint.Point{{1, 0, 0}, {0, 0, 1}}
	if err := nsga3.Associate(all, refs); err != nil {
		t.Fatalf("Associate: %v", err)
	}
	return ind1, ind2, ind3
}

func TestRhoCountsTalliesAssociations(t *testing.T) {
	ind1, ind2, ind3 := associatedFixture(t)
	rho := nsga3.RhoCounts(2, []*optimizer.Individual{ind1, ind2, ind3})
	if rho[0] != 2 {
		t.Errorf("rho[0] (ind1, ind2 both near reference 0) = %d, want 2", rho[0])
	}
	if rho[1] != 1 {
		t.Errorf("rho[1] (ind3 near reference 1) = %d, want 1", rho[1])
	}
}

func TestNichePrefersUnderrepresentedReferencePoint(t *testing.T) {
	ind1, ind2, ind3 := associatedFixture(t)
	rho := map[int]int{0: 0, 1: 5}
	potential := []*optimizer.Individual{ind1, ind2, ind3}

	rng := rand.New(rand.NewSource(1))
	selected, err := nsga3.Niche(rng, potential, 1, rho)
	if err != nil {
		t.Fatalf("Niche: %v", err)
	}
	if len(selected) != 1 {
		t.Fatalf("Niche(1) returned %d individuals", len(selected))
	}
	if selected[0] != ind1 {
		t.Errorf("expected the closest candidate of the under-represented reference point to be chosen")
	}
}

func TestNicheErrorsWhenNotEnoughCandidates(t *testing.T) {
	ind1, _, _ := associatedFixture(t)
	rho := map[int]int{0: 0, 1: 0}
	rng := rand.New(rand.NewSource(1))
	if _, err := nsga3.Niche(rng, []*optimizer.Individual{ind1}, 5, rho); err == nil {
		t.Errorf("expected an error when requesting more niched individuals than are available")
	}
}

func TestNicheErrorsOnEmptyRhoMap(t *testing.T) {
	ind1, _, _ := associatedFixture(t)
	rng := rand.New(rand.NewSource(1))
	if _, err := nsga3.Niche(rng, []*optimizer.Individual{ind1}, 1, map[int]int{}); err == nil {
		t.Errorf("expected an error for an empty rho map")
	}
}
