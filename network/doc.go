// Package network provides a qualitative temporal constraint network
// over interval nodes, with path-consistency propagation.
//
// A Network holds nodes identified by any comparable type, a dense
// matrix of admissible relation sets between every ordered pair, and
// the list of user-asserted constraints. Asserting a constraint
// immediately propagates its consequences: for every triangle (i,k,j)
// the entry M[i][j] is tightened to a subset of
// M[i][k] ⊗ M[k][j] until a fixed point is reached, or until some
// entry empties — a contradiction, which latches the network as
// inconsistent until the offending constraint is removed.
//
// Guarantees after every public operation returns:
//
//   - The diagonal is pinned to {equals}.
//   - M[j][i] is always the pointwise inverse of M[i][j].
//   - While the network is consistent, the matrix is at a propagation
//     fixed point, so queries read fully tightened relation sets
//     without any explicit "solve" call. Once a contradiction is
//     latched, entries stay partially tightened and later assertions
//     are not propagated until a removal triggers a rebuild.
//
// Path consistency is sound but incomplete over the full algebra: a
// true verdict means no triangle is contradictory, not that a global
// interpretation necessarily exists.
//
// A Network is not safe for concurrent use: no mutation may race with
// another mutation or with a read. Callers wanting concurrency must
// serialise access externally or shard by network. No operation
// blocks or performs I/O (the optional logger is a no-op by default).
package network
