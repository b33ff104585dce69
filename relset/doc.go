// Package relset implements the thirteen basic qualitative relations
// between temporal intervals and compact sets of them.
//
// The relset package provides:
//
//   - Rel, the enumeration of the 13 basic relations (Before … Equals),
//     in a stable order that doubles as the bit layout of a Set.
//   - Set, a 13-bit mask over Rel with boolean-algebra operations,
//     a pointwise Inverse, and table-driven Compose.
//   - The 13×13 composition table encoding which relations between
//     X and Z are admitted by (X a Y) ∧ (Y b Z), including the three
//     corrections to the classically published table.
//
// All Set operations are total: there are no error paths on the 13-bit
// domain. A Set is one uint16, so sets are cheap to copy, compare, and
// store densely in matrices.
//
// See the network package for the constraint-propagation layer built
// on top of these primitives.
package relset
