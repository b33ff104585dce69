// SPDX-License-Identifier: MIT
// Package: relset
//
// Purpose:
//   - The 13×13 composition (transitivity) table over basic relations.
//   - compositionTable[a][b] is the set of relations c admitting some
//     configuration with (X a Y) ∧ (Y b Z) ∧ (X c Z).
//
// Contract:
//   - Row/column order is the canonical Rel order; reordering Rel
//     without rebuilding this table corrupts every composition.
//   - Three cells differ from the classically published table, which
//     under-reports them: Contains∘During, Overlaps∘OverlappedBy and
//     OverlappedBy∘Overlaps all admit the full nine-relation
//     "concurrent" set (everything except before/after/meets/metBy).
//
// Verification:
//   - The algebra tests check the involution, identity, annihilator
//     and inverse-of-composition laws over the whole table; a change
//     that breaks a cell fails those tests before any network test.

package relset

// Short aliases keep the table rows legible; used only by this file.
const (
	bf = OnlyBefore
	af = OnlyAfter
	du = OnlyDuring
	co = OnlyContains
	ov = OnlyOverlaps
	ob = OnlyOverlappedBy
	me = OnlyMeets
	mb = OnlyMetBy
	st = OnlyStarts
	sb = OnlyStartedBy
	fn = OnlyFinishes
	fb = OnlyFinishedBy
	eq = OnlyEquals

	// concur is the nine-relation set shared by the three corrected
	// cells: every relation that lets the two outer intervals share
	// at least one inner instant.
	concur = du | co | ov | ob | st | sb | fn | fb | eq
)

// compositionTable is indexed [a][b] with a = relation X→Y and
// b = relation Y→Z; columns follow the canonical Rel order
// (before, after, during, contains, overlaps, overlappedBy, meets,
// metBy, starts, startedBy, finishes, finishedBy, equals).
var compositionTable = [numRels][numRels]Set{
	Before: {
		bf, All, bf | ov | me | du | st, bf, bf, bf | ov | me | du | st,
		bf, bf | ov | me | du | st, bf, bf, bf | ov | me | du | st, bf, bf,
	},
	After: {
		All, af, af | ob | mb | du | fn, af, af | ob | mb | du | fn, af,
		af | ob | mb | du | fn, af, af | ob | mb | du | fn, af, af, af, af,
	},
	During: {
		bf, af, du, All, bf | ov | me | du | st, af | ob | mb | du | fn,
		bf, af, du, af | ob | mb | du | fn, du, bf | ov | me | du | st, du,
	},
	Contains: {
		bf | ov | me | co | fb, af | ob | mb | co | sb, concur, co,
		ov | co | fb, ob | co | sb, ov | co | fb, ob | co | sb,
		ov | co | fb, co, ob | co | sb, co, co,
	},
	Overlaps: {
		bf, af | ob | mb | co | sb, ov | du | st, bf | ov | me | co | fb,
		bf | ov | me, concur, bf, ob | co | sb,
		ov, ov | co | fb, ov | du | st, bf | ov | me, ov,
	},
	OverlappedBy: {
		bf | ov | me | co | fb, af, ob | du | fn, af | ob | mb | co | sb,
		concur, af | ob | mb, ov | co | fb, af,
		ob | du | fn, af | ob | mb, ob, ob | co | sb, ob,
	},
	Meets: {
		bf, af | ob | mb | co | sb, ov | du | st, bf, bf, ov | du | st,
		bf, fn | fb | eq, me, me, ov | du | st, bf, me,
	},
	MetBy: {
		bf | ov | me | co | fb, af, ob | du | fn, af, ob | du | fn, af,
		st | sb | eq, af, ob | du | fn, af, mb, mb, mb,
	},
	Starts: {
		bf, af, du, bf | ov | me | co | fb, bf | ov | me, ob | du | fn,
		bf, mb, st, st | sb | eq, du, bf | ov | me, st,
	},
	StartedBy: {
		bf | ov | me | co | fb, af, ob | du | fn, co, ov | co | fb, ob,
		ov | co | fb, mb, st | sb | eq, sb, ob, co, sb,
	},
	Finishes: {
		bf, af, du, af | ob | mb | co | sb, ov | du | st, af | ob | mb,
		me, af, du, af | ob | mb, fn, fn | fb | eq, fn,
	},
	FinishedBy: {
		bf, af | ob | mb | co | sb, ov | du | st, co, ov, ob | co | sb,
		me, ob | co | sb, ov, co, fn | fb | eq, fb, fb,
	},
	Equals: {
		bf, af, du, co, ov, ob, me, mb, st, sb, fn, fb, eq,
	},
}
