// SPDX-License-Identifier: MIT
// Package: network
//
// Purpose:
//   - Worklist-driven path-consistency propagation to a fixed point.
//   - FIFO discipline over ordered index pairs with an O(1) presence
//     cache; deterministic visitation for reproducible traces.
//
// Contract:
//   - Callers seed only edges whose entries just changed; both
//     directions of a changed edge must be seeded.
//   - On the first emptied entry the sticky inconsistency flag is set
//     and the matrix is left partially tightened; it must not be
//     trusted until a rebuild clears the flag.
//   - The fixed point is order-independent (set intersection is
//     monotone and confluent); FIFO is the reference order only.

package network

import "github.com/katalvlaran/allen/relset"

// edge is one ordered pair of internal node indices on the worklist.
type edge struct {
	i, j int
}

// enqueue appends (i,j) to the worklist unless already present.
// Complexity: O(1).
func (nw *Network[ID]) enqueue(i, j int) {
	pos := i*nw.m.stride + j
	if nw.presence[pos] {
		return
	}
	nw.presence[pos] = true
	nw.queue = append(nw.queue, edge{i, j})
}

// propagate tightens the matrix to a path-consistent fixed point,
// starting from the seed edges. Returns false — after latching the
// sticky flag — as soon as any entry empties.
//
// The queue and presence buffers persist on the Network between runs;
// both are left drained (presence all-false, queue length zero) on
// every exit path.
// Complexity: O(n³) compositions worst case, each ≤169 cell lookups.
func (nw *Network[ID]) propagate(seeds ...edge) bool {
	if want := nw.m.stride * nw.m.stride; len(nw.presence) != want {
		nw.presence = make([]bool, want)
	}
	nw.queue = nw.queue[:0]
	for _, s := range seeds {
		nw.enqueue(s.i, s.j)
	}

	for head := 0; head < len(nw.queue); head++ {
		e := nw.queue[head]
		nw.presence[e.i*nw.m.stride+e.j] = false

		if !nw.relaxAround(e.i, e.j) {
			nw.inconsistent = true
			// Drop the undrained tail so stale presence bits cannot
			// suppress enqueues in a later run.
			for _, rest := range nw.queue[head+1:] {
				nw.presence[rest.i*nw.m.stride+rest.j] = false
			}
			nw.queue = nw.queue[:0]

			return false
		}
	}
	nw.queue = nw.queue[:0]

	return true
}

// relaxAround propagates a changed entry (i,j) through every triangle
// it participates in: for each k, the entries (k,j) and (i,k) are
// intersected with the composition through the changed edge. Each
// strict tightening updates the mirror entry and re-enqueues both
// directions. Returns false on the first emptied entry.
// Complexity: O(n) compositions.
func (nw *Network[ID]) relaxAround(i, j int) bool {
	n := len(nw.nodes)
	for k := 0; k < n; k++ {
		// M[i][j] is re-read each round. The only steps that write it
		// (k == i below, k == j in the second step) compose with the
		// {equals} diagonal and so leave it unchanged.
		mij := nw.m.at(i, j)

		// Tighten M[k][j] against M[k][i] ⊗ M[i][j].
		cur := nw.m.at(k, j)
		tightened := cur.Intersect(nw.m.at(k, i).Compose(mij))
		if tightened.IsEmpty() {
			return false
		}
		if tightened.ProperSubsetOf(cur) {
			nw.tighten(k, j, cur, tightened)
		}

		// Tighten M[i][k] against M[i][j] ⊗ M[j][k].
		mij = nw.m.at(i, j)
		cur = nw.m.at(i, k)
		tightened = cur.Intersect(mij.Compose(nw.m.at(j, k)))
		if tightened.IsEmpty() {
			return false
		}
		if tightened.ProperSubsetOf(cur) {
			nw.tighten(i, k, cur, tightened)
		}
	}

	return true
}

// tighten commits a strict update of entry (i,j): writes the new set,
// mirrors its inverse to (j,i), fires the observation hook, and
// re-enqueues both directions for further propagation.
// Complexity: O(1).
func (nw *Network[ID]) tighten(i, j int, old, tightened relset.Set) {
	nw.m.set(i, j, tightened)
	nw.m.set(j, i, tightened.Inverse())
	if nw.onTighten != nil {
		nw.onTighten(i, j, old, tightened)
	}
	nw.enqueue(i, j)
	nw.enqueue(j, i)
}
