package relset_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/allen/relset"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// allRels enumerates every basic relation in canonical order.
var allRels = []relset.Rel{
	relset.Before, relset.After, relset.During, relset.Contains,
	relset.Overlaps, relset.OverlappedBy, relset.Meets, relset.MetBy,
	relset.Starts, relset.StartedBy, relset.Finishes, relset.FinishedBy,
	relset.Equals,
}

// TestRel_String verifies the canonical human-readable names,
// including the two-word forms.
func TestRel_String(t *testing.T) {
	assert.Equal(t, "before", relset.Before.String())
	assert.Equal(t, "overlapped by", relset.OverlappedBy.String())
	assert.Equal(t, "met by", relset.MetBy.String())
	assert.Equal(t, "started by", relset.StartedBy.String())
	assert.Equal(t, "finished by", relset.FinishedBy.String())
	assert.Equal(t, "equals", relset.Equals.String())
}

// TestParseRel_RoundTrip checks that every canonical name parses back
// to its Rel and that anything else yields ErrUnknownRelation.
func TestParseRel_RoundTrip(t *testing.T) {
	for _, r := range allRels {
		got, err := relset.ParseRel(r.String())
		require.NoError(t, err, "name %q must parse", r)
		assert.Equal(t, r, got, "round trip for %q", r)
	}

	_, err := relset.ParseRel("overlappedBy") // camel case is not canonical
	assert.ErrorIs(t, err, relset.ErrUnknownRelation)
	_, err = relset.ParseRel("")
	assert.ErrorIs(t, err, relset.ErrUnknownRelation)
}

// TestRel_Inverse verifies the six inverse pairs and the Equals fixed point.
func TestRel_Inverse(t *testing.T) {
	pairs := map[relset.Rel]relset.Rel{
		relset.Before:   relset.After,
		relset.During:   relset.Contains,
		relset.Overlaps: relset.OverlappedBy,
		relset.Meets:    relset.MetBy,
		relset.Starts:   relset.StartedBy,
		relset.Finishes: relset.FinishedBy,
	}
	for r, inv := range pairs {
		assert.Equal(t, inv, r.Inverse(), "%v inverse", r)
		assert.Equal(t, r, inv.Inverse(), "%v inverse", inv)
	}
	assert.Equal(t, relset.Equals, relset.Equals.Inverse())
}

// TestSet_BasicOps covers Of, Has, Union, Intersect, SubsetOf,
// ProperSubsetOf, Len, and IsEmpty on small hand-built sets.
func TestSet_BasicOps(t *testing.T) {
	s := relset.Of(relset.Before, relset.Meets)

	assert.True(t, s.Has(relset.Before))
	assert.True(t, s.Has(relset.Meets))
	assert.False(t, s.Has(relset.After))
	assert.Equal(t, 2, s.Len())
	assert.False(t, s.IsEmpty())
	assert.True(t, relset.Empty.IsEmpty())

	u := s.Union(relset.OnlyAfter)
	assert.Equal(t, relset.Of(relset.Before, relset.Meets, relset.After), u)

	assert.Equal(t, s, u.Intersect(s))
	assert.Equal(t, relset.Empty, s.Intersect(relset.OnlyAfter))

	assert.True(t, s.SubsetOf(u))
	assert.True(t, s.SubsetOf(s))
	assert.True(t, s.ProperSubsetOf(u))
	assert.False(t, s.ProperSubsetOf(s))
	assert.False(t, u.SubsetOf(s))
	assert.True(t, relset.Empty.SubsetOf(relset.Empty))
	assert.False(t, relset.Empty.ProperSubsetOf(relset.Empty))
}

// TestSet_Inverse_Involution checks inverse(inverse(S)) = S over the
// entire 13-bit domain, plus the three fixed points named by the laws.
func TestSet_Inverse_Involution(t *testing.T) {
	for m := relset.Set(0); m <= relset.All; m++ {
		require.Equal(t, m, m.Inverse().Inverse(), "involution broken for %v", m)
	}

	assert.Equal(t, relset.Empty, relset.Empty.Inverse())
	assert.Equal(t, relset.All, relset.All.Inverse())
	assert.Equal(t, relset.OnlyEquals, relset.OnlyEquals.Inverse())
}

// TestSet_Inverse_Pointwise verifies the lifted inverse agrees with the
// per-relation inverse for every singleton.
func TestSet_Inverse_Pointwise(t *testing.T) {
	for _, r := range allRels {
		assert.Equal(t, relset.Of(r.Inverse()), relset.Of(r).Inverse(), "singleton %v", r)
	}
}

// TestCompose_Identity checks compose(S,{equals}) = compose({equals},S) = S
// over the entire 13-bit domain.
func TestCompose_Identity(t *testing.T) {
	for m := relset.Set(0); m <= relset.All; m++ {
		require.Equal(t, m, m.Compose(relset.OnlyEquals), "right identity for %v", m)
		require.Equal(t, m, relset.OnlyEquals.Compose(m), "left identity for %v", m)
	}
}

// TestCompose_Empty checks that Empty annihilates composition on both sides.
func TestCompose_Empty(t *testing.T) {
	for _, r := range allRels {
		s := relset.Of(r)
		assert.Equal(t, relset.Empty, s.Compose(relset.Empty))
		assert.Equal(t, relset.Empty, relset.Empty.Compose(s))
	}
	assert.Equal(t, relset.Empty, relset.All.Compose(relset.Empty))
	assert.Equal(t, relset.Empty, relset.Empty.Compose(relset.All))
}

// TestCompose_InverseLaw checks inverse(compose(S1,S2)) =
// compose(inverse(S2), inverse(S1)) over all 169 singleton pairs —
// this exercises every cell of the composition table — and over a
// deterministic sample of composite sets.
func TestCompose_InverseLaw(t *testing.T) {
	for _, a := range allRels {
		for _, b := range allRels {
			s1, s2 := relset.Of(a), relset.Of(b)
			want := s2.Inverse().Compose(s1.Inverse())
			require.Equal(t, want, s1.Compose(s2).Inverse(),
				"inverse law broken at cell (%v, %v)", a, b)
		}
	}

	rnd := rand.New(rand.NewSource(7))
	for i := 0; i < 500; i++ {
		s1 := relset.Set(rnd.Intn(int(relset.All) + 1))
		s2 := relset.Set(rnd.Intn(int(relset.All) + 1))
		want := s2.Inverse().Compose(s1.Inverse())
		require.Equal(t, want, s1.Compose(s2).Inverse(), "composite %v, %v", s1, s2)
	}
}

// TestCompose_Distributivity checks compose(S1∪S2,T) =
// compose(S1,T) ∪ compose(S2,T) on a deterministic sample.
func TestCompose_Distributivity(t *testing.T) {
	rnd := rand.New(rand.NewSource(11))
	for i := 0; i < 500; i++ {
		s1 := relset.Set(rnd.Intn(int(relset.All) + 1))
		s2 := relset.Set(rnd.Intn(int(relset.All) + 1))
		tt := relset.Set(rnd.Intn(int(relset.All) + 1))
		want := s1.Compose(tt).Union(s2.Compose(tt))
		require.Equal(t, want, s1.Union(s2).Compose(tt), "left arg %v ∪ %v over %v", s1, s2, tt)

		// Right-argument distributivity follows from the same cell
		// union; check it on the same sample.
		want = tt.Compose(s1).Union(tt.Compose(s2))
		require.Equal(t, want, tt.Compose(s1.Union(s2)), "right arg %v over %v ∪ %v", tt, s1, s2)
	}
}

// TestCompose_CorrectedCells pins the three table cells that differ
// from the classically published table to the nine-relation set.
func TestCompose_CorrectedCells(t *testing.T) {
	nine := relset.Of(
		relset.Overlaps, relset.OverlappedBy, relset.During, relset.Contains,
		relset.Equals, relset.Starts, relset.StartedBy, relset.Finishes,
		relset.FinishedBy,
	)
	require.Equal(t, 9, nine.Len())

	assert.Equal(t, nine, relset.OnlyContains.Compose(relset.OnlyDuring), "contains ∘ during")
	assert.Equal(t, nine, relset.OnlyOverlaps.Compose(relset.OnlyOverlappedBy), "overlaps ∘ overlapped by")
	assert.Equal(t, nine, relset.OnlyOverlappedBy.Compose(relset.OnlyOverlaps), "overlapped by ∘ overlaps")
}

// TestCompose_KnownCells spot-checks a handful of hand-audited
// table cells away from the corrected ones.
func TestCompose_KnownCells(t *testing.T) {
	assert.Equal(t, relset.OnlyBefore, relset.OnlyBefore.Compose(relset.OnlyBefore))
	assert.Equal(t, relset.All, relset.OnlyBefore.Compose(relset.OnlyAfter))
	assert.Equal(t,
		relset.Of(relset.Before, relset.Overlaps, relset.Meets, relset.During, relset.Starts),
		relset.OnlyBefore.Compose(relset.OnlyDuring))
	assert.Equal(t,
		relset.Of(relset.Finishes, relset.FinishedBy, relset.Equals),
		relset.OnlyMeets.Compose(relset.OnlyMetBy))
	assert.Equal(t,
		relset.Of(relset.Starts, relset.StartedBy, relset.Equals),
		relset.OnlyMetBy.Compose(relset.OnlyMeets))
	assert.Equal(t, relset.OnlyBefore, relset.OnlyStarts.Compose(relset.OnlyMeets))
	assert.Equal(t, relset.OnlyMeets, relset.OnlyMeets.Compose(relset.OnlyStartedBy))
	assert.Equal(t, relset.All, relset.OnlyDuring.Compose(relset.OnlyContains))
}

// TestCompose_EarlyExitMatchesUnion verifies the All short-circuit
// returns the same result as the plain cell union.
func TestCompose_EarlyExitMatchesUnion(t *testing.T) {
	// All ∘ All must be All, reached long before all 169 cells.
	assert.Equal(t, relset.All, relset.All.Compose(relset.All))
	// A pair known to hit All via a single cell.
	assert.Equal(t, relset.All, relset.OnlyDuring.Union(relset.OnlyBefore).Compose(relset.All))
}

// TestSet_NamesAndString verifies canonical ordering of Names and the
// rendered form of String.
func TestSet_NamesAndString(t *testing.T) {
	s := relset.Of(relset.Meets, relset.Before, relset.Equals)

	assert.Equal(t, []string{"before", "meets", "equals"}, s.Names())
	assert.Equal(t, "{before, meets, equals}", s.String())
	assert.Equal(t, "{}", relset.Empty.String())

	assert.Equal(t, []relset.Rel{relset.Before, relset.Meets, relset.Equals}, s.Rels())
}
