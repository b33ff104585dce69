// Package allen is an in-memory reasoner for qualitative temporal
// relationships between intervals, after Allen's interval algebra.
//
// 🕰 What is allen?
//
//	A small, focused library that brings together:
//
//	  • Relation sets: the 13 basic interval relations as 13-bit masks,
//	    with union/intersection, inverse, and table-driven composition
//	  • Constraint networks: nodes + admissible-relation edges over any
//	    comparable identifier type
//	  • Path consistency: a worklist propagator that tightens every
//	    triangle to a fixed point and detects contradictions
//
// ✨ Why choose allen?
//
//   - Predictable            — deterministic FIFO propagation, stable enumeration order
//   - Compact                — a relation set is one uint16; the network is one flat matrix
//   - Honest about limits    — path consistency, not full consistency; no metric time
//   - Pure Go                — no cgo, a deliberately small dependency surface
//
// Under the hood, everything is organized under two subpackages:
//
//	relset/  — Rel & Set types, inverse, and the 13×13 composition table
//	network/ — node registry, constraint matrix & the propagation engine
//
// Quick ASCII example:
//
//	    A ──starts──▶ B
//	    A ──contains─▶ C        ⇒  B {contains} C
//
//	three intervals, two asserted constraints, one derived edge.
//
// Dive into the package docs and examples for full usage patterns.
//
//	go get github.com/katalvlaran/allen
package allen
