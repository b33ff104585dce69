// SPDX-License-Identifier: MIT
// Package: network
//
// Purpose:
//   - Flat row-major storage for the n×n matrix of relation sets.
//   - Growth by capacity doubling so AddNode stays amortised O(n).
//
// Contract:
//   - The stride (allocated side) only grows; cells are addressed as
//     cells[i*stride+j] regardless of the logical size n.
//   - Off-diagonal cells start at All, the diagonal is pinned to
//     {equals}; callers maintain the symmetry invariant on writes.

package network

import "github.com/katalvlaran/allen/relset"

// relMatrix is the dense constraint matrix over internal node indices.
type relMatrix struct {
	n      int          // logical side (registered nodes)
	stride int          // allocated side, n <= stride
	cells  []relset.Set // flat row-major storage, len == stride*stride
}

// newRelMatrix allocates an empty matrix with room for capacity nodes.
// Complexity: O(capacity²).
func newRelMatrix(capacity int) relMatrix {
	if capacity < defaultStride {
		capacity = defaultStride
	}

	return relMatrix{
		n:      0,
		stride: capacity,
		cells:  make([]relset.Set, capacity*capacity),
	}
}

// at reads entry (i,j). Bounds are guaranteed by the registry;
// internal indices never leave 0..n-1.
// Complexity: O(1).
func (m *relMatrix) at(i, j int) relset.Set {
	return m.cells[i*m.stride+j]
}

// set writes entry (i,j).
// Complexity: O(1).
func (m *relMatrix) set(i, j int, s relset.Set) {
	m.cells[i*m.stride+j] = s
}

// grow appends one node: row and column n gain All off-diagonal
// entries and an {equals} diagonal entry. When the logical size hits
// the stride, capacity doubles first and live rows are re-packed.
// Complexity: amortised O(n); O(n²) on a doubling step.
func (m *relMatrix) grow() {
	if m.n == m.stride {
		next := m.stride * 2
		cells := make([]relset.Set, next*next)
		for i := 0; i < m.n; i++ {
			copy(cells[i*next:i*next+m.n], m.cells[i*m.stride:i*m.stride+m.n])
		}
		m.stride = next
		m.cells = cells
	}

	idx := m.n
	for i := 0; i < idx; i++ {
		m.set(i, idx, relset.All)
		m.set(idx, i, relset.All)
	}
	m.set(idx, idx, relset.OnlyEquals)
	m.n++
}

// reset restores the unconstrained state for the current size: every
// off-diagonal entry All, every diagonal entry {equals}. Used by the
// constraint-removal rebuild.
// Complexity: O(n²).
func (m *relMatrix) reset() {
	for i := 0; i < m.n; i++ {
		row := m.cells[i*m.stride : i*m.stride+m.n]
		for j := range row {
			row[j] = relset.All
		}
		row[i] = relset.OnlyEquals
	}
}

// snapshot returns a deep [n][n] copy of the live cells.
// Complexity: O(n²).
func (m *relMatrix) snapshot() [][]relset.Set {
	out := make([][]relset.Set, m.n)
	for i := 0; i < m.n; i++ {
		row := make([]relset.Set, m.n)
		copy(row, m.cells[i*m.stride:i*m.stride+m.n])
		out[i] = row
	}

	return out
}

// clone returns an independent copy of the matrix.
// Complexity: O(stride²).
func (m *relMatrix) clone() relMatrix {
	cells := make([]relset.Set, len(m.cells))
	copy(cells, m.cells)

	return relMatrix{n: m.n, stride: m.stride, cells: cells}
}
