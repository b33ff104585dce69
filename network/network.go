// Package network — the Network container and its public facade:
// node registration, constraint assertion and removal, consistency
// verdict, and read-only queries.
package network

import (
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"github.com/katalvlaran/allen/relset"
)

// Network is a temporal constraint network over intervals identified
// by ID. The zero value is not usable; construct with New.
//
// All mutating and reading methods must be externally serialised; see
// the package documentation for the concurrency contract.
type Network[ID comparable] struct {
	index map[ID]int // identifier → dense internal index
	nodes []Node[ID] // dense by internal index

	m           relMatrix        // tightened admissible sets
	constraints []Constraint[ID] // user assertions, insertion order

	inconsistent bool // sticky: some entry emptied during propagation

	// Worklist state, retained across propagation runs to avoid
	// re-allocation; see propagate.go.
	queue    []edge
	presence []bool // stride×stride worklist membership cache

	logger    zerolog.Logger
	onTighten TightenFunc
}

// New constructs an empty Network with the given options.
// Complexity: O(capacity²) for the matrix reservation.
func New[ID comparable](opts ...Option) *Network[ID] {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return &Network[ID]{
		index:     make(map[ID]int, o.capacity),
		nodes:     make([]Node[ID], 0, o.capacity),
		m:         newRelMatrix(o.capacity),
		logger:    o.logger,
		onTighten: o.onTighten,
	}
}

// AddNode registers a new interval under id and grows the matrix by
// one row and column (new off-diagonal entries admit every relation).
// Returns false, with no state change, if id is already registered.
// Complexity: amortised O(n).
func (nw *Network[ID]) AddNode(id ID) bool {
	if _, dup := nw.index[id]; dup {
		return false
	}

	idx := len(nw.nodes)
	nw.index[id] = idx
	nw.nodes = append(nw.nodes, Node[ID]{ID: id, Index: idx})
	nw.m.grow()

	nw.logger.Debug().Interface("id", id).Int("index", idx).Msg("node registered")

	return true
}

// AddConstraint asserts that the relation from from to to lies within
// rels, then propagates the consequences to a fixed point.
//
// Returns false, with no state change, when:
//   - either endpoint is unregistered, or from == to (the diagonal is
//     pinned to {equals} and cannot carry user constraints);
//   - rels is empty or carries bits outside the 13-relation domain;
//   - the unordered pair {from,to} already carries an asserted
//     constraint (in either direction).
//
// Returns true on successful assertion even when propagation detects a
// contradiction; the verdict is observable via PathConsistency.
// Complexity: O(n³) compositions worst case.
func (nw *Network[ID]) AddConstraint(from, to ID, rels relset.Set) bool {
	i, ok := nw.index[from]
	if !ok {
		return false
	}
	j, ok := nw.index[to]
	if !ok || i == j {
		return false
	}
	if rels.IsEmpty() || !rels.SubsetOf(relset.All) {
		return false
	}
	if nw.asserted(i, j) {
		return false
	}

	nw.constraints = append(nw.constraints, Constraint[ID]{From: from, To: to, Rels: rels})
	nw.m.set(i, j, rels)
	nw.m.set(j, i, rels.Inverse())

	nw.logger.Debug().
		Interface("from", from).Interface("to", to).Str("rels", rels.String()).
		Msg("constraint asserted")

	// A latched contradiction makes further tightening meaningless;
	// the assertion is recorded and replayed on the next rebuild.
	if nw.inconsistent {
		return true
	}

	consistent := nw.propagate(edge{i, j}, edge{j, i})
	nw.logger.Debug().Bool("consistent", consistent).Msg("propagation finished")

	return true
}

// asserted reports whether the unordered index pair {i,j} already
// carries a user constraint.
func (nw *Network[ID]) asserted(i, j int) bool {
	for _, c := range nw.constraints {
		ci, cj := nw.index[c.From], nw.index[c.To]
		if (ci == i && cj == j) || (ci == j && cj == i) {
			return true
		}
	}

	return false
}

// RemoveConstraint withdraws the constraint asserted on the unordered
// pair {from,to}. Tightening is lossy, so the matrix is rebuilt from
// scratch: all entries reset, every remaining assertion re-applied,
// the sticky inconsistency flag cleared, and propagation re-run to a
// fresh fixed point.
//
// Returns true if such a constraint existed and was removed, false
// otherwise (no state change). Removal may or may not restore
// consistency; PathConsistency reports the re-derived verdict.
// Complexity: O(n³) compositions (full re-propagation).
func (nw *Network[ID]) RemoveConstraint(from, to ID) bool {
	at := -1
	for idx, c := range nw.constraints {
		if (c.From == from && c.To == to) || (c.From == to && c.To == from) {
			at = idx
			break
		}
	}
	if at < 0 {
		return false
	}

	nw.constraints = append(nw.constraints[:at], nw.constraints[at+1:]...)
	nw.logger.Debug().Interface("from", from).Interface("to", to).Msg("constraint removed")

	nw.rebuild()

	return true
}

// rebuild resets the matrix, replays every asserted constraint, clears
// the sticky flag, and re-runs propagation seeded with all asserted
// edges. Called after any lossy mutation (currently: removal).
func (nw *Network[ID]) rebuild() {
	nw.m.reset()
	nw.inconsistent = false

	seeds := make([]edge, 0, 2*len(nw.constraints))
	for _, c := range nw.constraints {
		i, j := nw.index[c.From], nw.index[c.To]
		nw.m.set(i, j, c.Rels)
		nw.m.set(j, i, c.Rels.Inverse())
		seeds = append(seeds, edge{i, j}, edge{j, i})
	}
	if len(seeds) == 0 {
		return
	}

	consistent := nw.propagate(seeds...)
	nw.logger.Debug().Bool("consistent", consistent).Msg("rebuild finished")
}

// PathConsistency reports the current consistency verdict.
//
// Every mutation already propagates to a fixed point, so this call
// performs no work: false while a contradiction is latched, true
// otherwise (vacuously true with no constraints). Idempotent.
// Complexity: O(1).
func (nw *Network[ID]) PathConsistency() bool {
	return !nw.inconsistent
}

// Node returns the registered node for id.
// Complexity: O(1).
func (nw *Network[ID]) Node(id ID) (Node[ID], bool) {
	idx, ok := nw.index[id]
	if !ok {
		var zero Node[ID]
		return zero, false
	}

	return nw.nodes[idx], true
}

// Nodes returns a copy of all registered nodes in registration order.
// Complexity: O(n).
func (nw *Network[ID]) Nodes() []Node[ID] {
	out := make([]Node[ID], len(nw.nodes))
	copy(out, nw.nodes)

	return out
}

// Constraints returns a copy of all asserted constraints in assertion
// order.
// Complexity: O(c).
func (nw *Network[ID]) Constraints() []Constraint[ID] {
	out := make([]Constraint[ID], len(nw.constraints))
	copy(out, nw.constraints)

	return out
}

// NodeCount returns the number of registered nodes.
func (nw *Network[ID]) NodeCount() int { return len(nw.nodes) }

// ConstraintCount returns the number of asserted constraints.
func (nw *Network[ID]) ConstraintCount() int { return len(nw.constraints) }

// Relations returns the tightened admissible relation set from from to
// to, or (Empty,false) if either identifier is unregistered.
//
// On an inconsistent network the returned set reflects the partially
// tightened state at the moment the contradiction surfaced and must
// not be trusted until consistency is restored.
// Complexity: O(1).
func (nw *Network[ID]) Relations(from, to ID) (relset.Set, bool) {
	i, ok := nw.index[from]
	if !ok {
		return relset.Empty, false
	}
	j, ok := nw.index[to]
	if !ok {
		return relset.Empty, false
	}

	return nw.m.at(i, j), true
}

// Matrix returns a deep [n][n] snapshot of the tightened matrix,
// indexed by internal node indices. Mutating the snapshot does not
// affect the network.
// Complexity: O(n²).
func (nw *Network[ID]) Matrix() [][]relset.Set {
	return nw.m.snapshot()
}

// Clone returns an independent deep copy of the network: same nodes,
// constraints, matrix state, sticky flag, logger, and hook. Propagation
// state is not shared.
// Complexity: O(stride²).
func (nw *Network[ID]) Clone() *Network[ID] {
	index := make(map[ID]int, len(nw.index))
	for id, idx := range nw.index {
		index[id] = idx
	}
	nodes := make([]Node[ID], len(nw.nodes))
	copy(nodes, nw.nodes)
	constraints := make([]Constraint[ID], len(nw.constraints))
	copy(constraints, nw.constraints)

	return &Network[ID]{
		index:        index,
		nodes:        nodes,
		m:            nw.m.clone(),
		constraints:  constraints,
		inconsistent: nw.inconsistent,
		logger:       nw.logger,
		onTighten:    nw.onTighten,
	}
}

// String renders a deterministic dump of the network: node count,
// constraint count, verdict, then every ordered off-diagonal entry in
// index order. Intended for debugging and test traces.
func (nw *Network[ID]) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "network: %d nodes, %d constraints, consistent=%t\n",
		len(nw.nodes), len(nw.constraints), !nw.inconsistent)
	for i := 0; i < len(nw.nodes); i++ {
		for j := 0; j < len(nw.nodes); j++ {
			if i == j {
				continue
			}
			fmt.Fprintf(&sb, "  %v → %v: %v\n", nw.nodes[i].ID, nw.nodes[j].ID, nw.m.at(i, j))
		}
	}

	return sb.String()
}
