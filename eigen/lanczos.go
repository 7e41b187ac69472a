// SPDX-License-Identifier: MIT
// Package: eigen
//
// File: lanczos.go
// Role: Truncated solver: thick-restart Lanczos with full reorthogonalization
//       over a Krylov subspace of size searchBreadth, plus deflation rounds
//       that recover repeated eigenvalues.
// Behavior highlights:
//   - Only matrix-vector products touch the input, so a *matrix.CSR costs O(nnz) per step.
//   - A restart keeps the wanted Ritz vectors and about half of the rest, then
//     continues from the residual direction. Clustered spectra (long paths,
//     cycles) converge without losing the Krylov information gathered so far.
//   - A single start vector sees one copy of each eigenvalue. Converged Ritz
//     vectors are therefore locked and the search repeats on their orthogonal
//     complement until no new value enters the top count.
//   - Invariant subspaces (breakdown) are continued with a fresh random direction,
//     so when searchBreadth reaches the searched dimension the result is exact.
//   - The start vector comes from a PCG stream seeded with Seed: equal seeds
//     give bit-identical results.
//   - When the restart budget runs out on a matrix of at most DenseFallbackMaxN
//     rows, the Dense solver answers instead.
// AI-Hints:
//   - searchBreadth ≈ 10·count converges in a handful of restarts for Laplacians.

package eigen

import (
	"errors"
	"fmt"
	"math"
	"math/rand/v2"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

const (
	opLanczos = "Lanczos.TopEigenvalues"

	// DefaultLanczosTol is the relative Ritz residual accepted as converged.
	DefaultLanczosTol = 1e-10

	// DefaultLanczosRestarts caps the number of thick restarts per round.
	DefaultLanczosRestarts = 300

	// DefaultDenseFallbackMaxN is the largest order handed to Dense when the
	// restart budget is exhausted.
	DefaultDenseFallbackMaxN = 2000

	// breakdownTol marks an invariant Krylov subspace.
	breakdownTol = 1e-12

	// entryTol is the relative margin a value from a deflation round must
	// clear to displace one already selected.
	entryTol = 1e-9

	// randomVectorTries bounds attempts to draw a direction outside the basis.
	randomVectorTries = 8

	// seedStream decorrelates the two PCG words derived from one seed.
	seedStream = 0x9e3779b97f4a7c15
)

// Lanczos is the default truncated eigensolver.
type Lanczos struct {
	// Tol is the relative residual |β·s_last| ≤ Tol·max(1,|θ|). Zero means DefaultLanczosTol.
	Tol float64
	// MaxRestarts caps thick restarts per round. Zero means DefaultLanczosRestarts.
	MaxRestarts int
	// DenseFallbackMaxN is the largest n solved densely after the restart
	// budget runs out. Zero means DefaultDenseFallbackMaxN, negative disables.
	DenseFallbackMaxN int
	// Seed drives the random start and continuation vectors.
	Seed uint64
}

// NewLanczos returns a Lanczos solver with default tolerances and the given seed.
func NewLanczos(seed uint64) Lanczos {
	return Lanczos{
		Tol:               DefaultLanczosTol,
		MaxRestarts:       DefaultLanczosRestarts,
		DenseFallbackMaxN: DefaultDenseFallbackMaxN,
		Seed:              seed,
	}
}

// mulVecer is satisfied by *matrix.CSR.
type mulVecer interface {
	MulVecTo(dst, x []float64) error
}

// operator returns dst = A·x for any symmetric matrix, with a sparse fast path.
func operator(m mat.Symmetric) func(dst, x []float64) error {
	if sp, ok := m.(mulVecer); ok {
		return sp.MulVecTo
	}
	return func(dst, x []float64) error {
		mat.NewVecDense(len(dst), dst).MulVec(m, mat.NewVecDense(len(x), x))
		return nil
	}
}

// TopEigenvalues implements Solver.
//
// Implementation:
//   - Stage 1: Validate; resolve tolerances.
//   - Stage 2: Round 0 runs thick-restart Lanczos on A and locks the count
//     converged Ritz pairs.
//   - Stage 3: Each further round searches the complement of the locked
//     vectors; it stops once nothing it finds beats the current top count,
//     or once the complement was searched exhaustively.
//   - Stage 4: Return the count largest |θ| of all locked values, ascending.
//
// Errors:
//   - ErrNilMatrix, ErrInvalidCount, ErrNoConvergence (only when the dense
//     fallback is disabled or n is above DenseFallbackMaxN).
//
// Complexity:
//   - Per pass O(k·nnz + k²·n + k³) time, O(k·n) memory.
func (s Lanczos) TopEigenvalues(m mat.Symmetric, count, searchBreadth int) ([]float64, error) {
	n, err := validateRequest(opLanczos, m, count)
	if err != nil {
		return nil, err
	}
	tol := s.Tol
	if tol <= 0 {
		tol = DefaultLanczosTol
	}
	restarts := s.MaxRestarts
	if restarts <= 0 {
		restarts = DefaultLanczosRestarts
	}

	rng := rand.New(rand.NewPCG(s.Seed, s.Seed^seedStream))
	apply := operator(m)

	var (
		vals   []float64
		locked [][]float64
	)
	for round := 0; round <= count; round++ {
		dim := n - len(locked)
		if dim == 0 {
			break
		}
		want := min(count, dim)
		k := ClampSearchBreadth(searchBreadth, want, dim)

		found, vecs, err := thickRestart(apply, n, want, k, locked, rng, tol, restarts)
		if err != nil {
			if errors.Is(err, ErrNoConvergence) && s.fallback(n) {
				return Dense{}.TopEigenvalues(m, count, searchBreadth)
			}
			return nil, err
		}

		enters := round == 0 || displaces(vals, found, count)
		vals = append(vals, found...)
		locked = append(locked, vecs...)
		if k == dim || !enters {
			break
		}
	}

	return selectLargestMagnitude(vals, count), nil
}

// fallback reports whether an order-n matrix may be handed to Dense.
func (s Lanczos) fallback(n int) bool {
	limit := s.DenseFallbackMaxN
	if limit == 0 {
		limit = DefaultDenseFallbackMaxN
	}
	return n <= limit
}

// displaces reports whether some value in found would replace one of the
// count largest-magnitude entries of vals.
func displaces(vals, found []float64, count int) bool {
	if len(vals) < count {
		return len(found) > 0
	}
	top := selectLargestMagnitude(vals, count)
	floor := math.Inf(1)
	for _, v := range top {
		floor = math.Min(floor, math.Abs(v))
	}
	for _, v := range found {
		if math.Abs(v) > floor+entryTol*math.Max(1, floor) {
			return true
		}
	}
	return false
}

// thickRestart computes the count largest-magnitude eigenpairs of A restricted
// to the orthogonal complement of locked, using a basis of k vectors.
//
// The projected matrix T = Vᵀ·A·V is assembled from the Gram-Schmidt
// coefficients of every new column, so the arrowhead left by a restart needs
// no special casing. After a restart the kept Ritz vectors occupy the leading
// columns with T diagonal there; column keep is the normalized residual.
func thickRestart(
	apply func(dst, x []float64) error,
	n, count, k int,
	locked [][]float64,
	rng *rand.Rand,
	tol float64,
	restarts int,
) ([]float64, [][]float64, error) {
	dim := n - len(locked)

	basis := make([][]float64, k)
	scratch := make([][]float64, k)
	h := make([][]float64, k) // h[j][i] = v_i·A·v_j for i ≤ j
	for i := range basis {
		basis[i] = make([]float64, n)
		scratch[i] = make([]float64, n)
		h[i] = make([]float64, k)
	}
	if !fillOrthogonal(rng, basis[0], locked, nil) {
		return nil, nil, fmt.Errorf("%s: no start vector outside %d locked: %w", opLanczos, len(locked), ErrNoConvergence)
	}

	w := make([]float64, n)
	t := mat.NewSymDense(k, nil)
	keep := 0
	var resid, worst float64
	for pass := 0; pass <= restarts; pass++ {
		for j := keep; j < k; j++ {
			col := h[j]
			clear(col)
			if err := apply(w, basis[j]); err != nil {
				return nil, nil, fmt.Errorf("%s: %w", opLanczos, err)
			}
			orthogonalize(w, locked, basis[:j+1], col)
			resid = floats.Norm(w, 2)

			if j == k-1 {
				break
			}
			if resid < breakdownTol {
				if !fillOrthogonal(rng, basis[j+1], locked, basis[:j+1]) {
					return nil, nil, fmt.Errorf("%s: no direction outside a %d-dim basis: %w", opLanczos, j+1, ErrNoConvergence)
				}
				continue
			}
			copy(basis[j+1], w)
			floats.Scale(1/resid, basis[j+1])
		}
		if resid < breakdownTol {
			resid = 0
		}

		for j := 0; j < k; j++ {
			for i := 0; i <= j; i++ {
				t.SetSym(i, j, h[j][i])
			}
		}
		theta, vecs, err := ritz(t)
		if err != nil {
			return nil, nil, err
		}
		wanted := largestMagnitudeIndices(theta, count)

		worst = 0
		for _, idx := range wanted {
			res := math.Abs(resid*vecs.At(k-1, idx)) / math.Max(1, math.Abs(theta[idx]))
			worst = math.Max(worst, res)
		}
		if worst <= tol || k == dim {
			vals := make([]float64, len(wanted))
			out := make([][]float64, len(wanted))
			for i, idx := range wanted {
				vals[i] = theta[idx]
				out[i] = make([]float64, n)
				combine(out[i], basis, vecs, idx)
			}
			return vals, out, nil
		}

		// Thick restart: Ritz vectors y_i = V·s_i first, then r/‖r‖.
		keep = min(k-1, count+(k-count)/2)
		kept := largestMagnitudeIndices(theta, keep)
		for i, idx := range kept {
			combine(scratch[i], basis, vecs, idx)
		}
		if resid > 0 {
			copy(scratch[keep], w)
			floats.Scale(1/resid, scratch[keep])
		} else if !fillOrthogonal(rng, scratch[keep], locked, scratch[:keep]) {
			return nil, nil, fmt.Errorf("%s: no direction outside a %d-dim basis: %w", opLanczos, keep, ErrNoConvergence)
		}
		basis, scratch = scratch, basis
		for i := range h {
			clear(h[i])
		}
		for i, idx := range kept {
			h[i][i] = theta[idx]
		}
	}

	return nil, nil, fmt.Errorf("%s: residual %.3g after %d restarts: %w", opLanczos, worst, restarts, ErrNoConvergence)
}

// ritz returns the eigenvalues (ascending) and eigenvectors of the projected
// matrix t.
func ritz(t mat.Symmetric) ([]float64, *mat.Dense, error) {
	var es mat.EigenSym
	if ok := es.Factorize(t, true); !ok {
		return nil, nil, fmt.Errorf("%s: projected factorization failed: %w", opLanczos, ErrNoConvergence)
	}
	var vecs mat.Dense
	es.VectorsTo(&vecs)

	return es.Values(nil), &vecs, nil
}

// combine writes dst = Σ_j vecs[j,col]·basis[j].
func combine(dst []float64, basis [][]float64, vecs *mat.Dense, col int) {
	clear(dst)
	for j, q := range basis {
		floats.AddScaled(dst, vecs.At(j, col), q)
	}
}

// largestMagnitudeIndices returns the indices of the k entries of largest |v|
// (ties prefer the larger value).
func largestMagnitudeIndices(v []float64, k int) []int {
	idx := make([]int, len(v))
	for i := range idx {
		idx[i] = i
	}
	for i := 0; i < k; i++ {
		best := i
		for j := i + 1; j < len(idx); j++ {
			a, b := v[idx[j]], v[idx[best]]
			if math.Abs(a) > math.Abs(b) || (math.Abs(a) == math.Abs(b) && a > b) {
				best = j
			}
		}
		idx[i], idx[best] = idx[best], idx[i]
	}

	return idx[:k]
}

// orthogonalize removes the components of w along every locked and basis
// vector. Coefficients against basis are added to h when it is non-nil.
// Two Gram-Schmidt passes keep the basis orthogonal to working precision.
func orthogonalize(w []float64, locked, basis [][]float64, h []float64) {
	for pass := 0; pass < 2; pass++ {
		for _, q := range locked {
			floats.AddScaled(w, -floats.Dot(w, q), q)
		}
		for i, q := range basis {
			c := floats.Dot(w, q)
			floats.AddScaled(w, -c, q)
			if h != nil {
				h[i] += c
			}
		}
	}
}

// fillOrthogonal writes into dst a random unit vector orthogonal to locked
// and basis. Reports false if no such direction was found.
func fillOrthogonal(rng *rand.Rand, dst []float64, locked, basis [][]float64) bool {
	for try := 0; try < randomVectorTries; try++ {
		for i := range dst {
			dst[i] = rng.NormFloat64()
		}
		orthogonalize(dst, locked, basis, nil)
		if nrm := floats.Norm(dst, 2); nrm > breakdownTol*math.Sqrt(float64(len(dst))) {
			floats.Scale(1/nrm, dst)
			return true
		}
	}

	return false
}
