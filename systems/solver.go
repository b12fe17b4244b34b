package systems

import (
	"math"

	"github.com/calder-hay/plenia/components"
)

// FieldSolver recomputes every particle's Fields from the creature's
// current positions. A step runs three phases in strict order:
//
//  1. reset: each particle starts from the self-term baseline (both
//     kernels evaluated at zero input) with zero gradients,
//  2. pairwise: every unordered particle pair contributes potential to
//     both members and equal-and-opposite gradients,
//  3. growth: the growth kernel of the fully accumulated potential
//     corrects the energy gradient.
//
// Phase 3 must not start until phase 2 has finished for the whole
// creature; Solve enforces that barrier. A solver is not safe for
// concurrent use, but creatures are independent domains, so distinct
// creatures may use distinct solvers in parallel.
type FieldSolver struct {
	pool *workerPool

	// Inputs for the phase currently being dispatched to workers.
	params    components.Params
	positions []components.Position

	fields []components.Fields

	// Per-chunk scatter buffers for the pairwise phase. Indexed by chunk,
	// not by worker, so the merge order is fixed no matter which worker
	// picks up which chunk.
	deltas [][]components.Fields
	rows   []rowRange
}

// NewFieldSolver creates a solver with one worker per CPU.
func NewFieldSolver() *FieldSolver {
	s := &FieldSolver{}
	s.pool = newWorkerPool(s)
	return s
}

// Close stops the solver's worker pool.
func (s *FieldSolver) Close() {
	s.pool.stop()
}

// Solve runs one full field computation and returns the per-particle
// field states, indexed like positions. The returned slice is reused by
// the next call; callers that keep it across steps must copy.
//
// Below parallelThreshold particles everything runs on the calling
// goroutine; above it, each phase is chunked across the worker pool with
// a full barrier between phases. Both paths are individually
// deterministic. They can differ in the last bits because floating-point
// summation order differs between the serial pass and the chunk merge.
func (s *FieldSolver) Solve(params components.Params, positions []components.Position) []components.Fields {
	n := len(positions)
	if cap(s.fields) < n {
		s.fields = make([]components.Fields, n)
	}
	s.fields = s.fields[:n]
	s.params = params
	s.positions = positions

	if n < parallelThreshold {
		s.resetRange(0, n)
		s.accumulatePairs(0, n, s.fields)
		s.growRange(0, n)
		return s.fields
	}

	s.pool.runPhase(phaseReset, evenChunks(n, s.pool.numWorkers))
	s.solvePairwiseParallel(n)
	s.pool.runPhase(phaseGrow, evenChunks(n, s.pool.numWorkers))
	return s.fields
}

// solvePairwiseParallel scatters pairwise contributions into per-chunk
// delta buffers and merges them into fields in chunk order.
func (s *FieldSolver) solvePairwiseParallel(n int) {
	s.rows = pairChunks(n, s.pool.numWorkers, s.rows[:0])

	for len(s.deltas) < len(s.rows) {
		s.deltas = append(s.deltas, nil)
	}
	s.deltas = s.deltas[:len(s.rows)]
	for c := range s.deltas {
		if cap(s.deltas[c]) < n {
			s.deltas[c] = make([]components.Fields, n)
		}
		s.deltas[c] = s.deltas[c][:n]
		clear(s.deltas[c])
	}

	s.pool.runPhase(phasePairwise, s.rows)

	// Deterministic merge: chunk order, then particle order.
	for c := range s.deltas {
		for i := range s.fields {
			d := &s.deltas[c][i]
			f := &s.fields[i]
			f.RVal += d.RVal
			f.RGrad.X += d.RGrad.X
			f.RGrad.Y += d.RGrad.Y
			f.UVal += d.UVal
			f.UGrad.X += d.UGrad.X
			f.UGrad.Y += d.UGrad.Y
		}
	}
}

// resetRange initializes fields for particles [start, end). Each particle
// starts from its own self-term: the kernels evaluated at zero input, not
// zero. Downstream magnitudes (growth input, display radius) depend on
// this baseline.
func (s *FieldSolver) resetRange(start, end int) {
	rBase, _ := Repulsion(0, s.params.CRep)
	uBase, _ := Radial(0, s.params.MuK, s.params.SigmaK, s.params.WK)
	for i := start; i < end; i++ {
		s.fields[i] = components.Fields{RVal: rBase, UVal: uBase}
	}
}

// accumulatePairs processes rows [rowStart, rowEnd): for each row i, all
// pairs (i, j) with j > i. Contributions scatter into dst, which is either
// the fields slice itself (serial path) or a zeroed delta buffer.
//
// Coincident particles (r == 0) have no defined direction: the pair still
// contributes its potential values, which are well defined at zero
// distance, but no gradient contribution.
func (s *FieldSolver) accumulatePairs(rowStart, rowEnd int, dst []components.Fields) {
	p := s.params
	for i := rowStart; i < rowEnd; i++ {
		pi := s.positions[i]
		fi := &dst[i]
		for j := i + 1; j < len(s.positions); j++ {
			pj := s.positions[j]
			dx := pi.X - pj.X
			dy := pi.Y - pj.Y
			r := float32(math.Sqrt(float64(dx*dx + dy*dy)))

			var ux, uy float32
			if r > 0 {
				ux = dx / r
				uy = dy / r
			}

			fj := &dst[j]

			if r < RepulsionCutoff {
				rv, dr := Repulsion(r, p.CRep)
				fi.RVal += rv
				fj.RVal += rv
				fi.RGrad.X += ux * dr
				fi.RGrad.Y += uy * dr
				fj.RGrad.X -= ux * dr
				fj.RGrad.Y -= uy * dr
			}

			k, dk := Radial(r, p.MuK, p.SigmaK, p.WK)
			fi.UVal += k
			fj.UVal += k
			fi.UGrad.X += ux * dk
			fi.UGrad.Y += uy * dk
			fj.UGrad.X -= ux * dk
			fj.UGrad.Y -= uy * dk
		}
	}
}

// growRange applies the growth correction for particles [start, end).
// Requires the pairwise phase to be complete for the entire creature:
// each particle's final UVal must include every pair it participates in.
func (s *FieldSolver) growRange(start, end int) {
	p := s.params
	for i := start; i < end; i++ {
		f := &s.fields[i]
		_, dg := Radial(f.UVal, p.MuG, p.SigmaG, 1.0)
		f.EGrad.X = f.RGrad.X - dg*f.UGrad.X
		f.EGrad.Y = f.RGrad.Y - dg*f.UGrad.Y
	}
}
