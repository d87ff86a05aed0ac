package subdiv

import (
	"math"
	"sort"
	"time"
)

// solverPrecision is the tolerance on the width-sum constraint.
const solverPrecision = 0.01

// WidthSolver chooses an ordered set of lot widths whose sum equals a
// block's dominant-edge length. Every width lies in [MinWidth, MaxWidth];
// the objective maximizes covered length while penalizing per-lot
// deviation from TargetWidth, weighted by PenaltyWeight.
type WidthSolver struct {
	MinWidth      float64
	MaxWidth      float64
	TargetWidth   float64
	PenaltyWeight float64
	Budget        time.Duration // cooperative deadline; zero means unbounded
}

// Solve returns the optimal widths for the given length, or nil when
// the inputs are degenerate or no feasible lot count exists. Callers
// fall back to UniformWidths on nil.
//
// Degenerate inputs (non-positive length, non-positive or inverted
// width bounds, length shorter than the minimum width) short-circuit
// to nil; a target outside [MinWidth, MaxWidth] is corrected to the
// midpoint of the bounds.
func (s WidthSolver) Solve(totalLength float64) []float64 {
	if totalLength <= 0 || s.MinWidth <= 0 || totalLength < s.MinWidth || s.MinWidth > s.MaxWidth {
		return nil
	}
	target := s.TargetWidth
	if target < s.MinWidth || target > s.MaxWidth {
		target = (s.MinWidth + s.MaxWidth) / 2
	}

	var deadline time.Time
	if s.Budget > 0 {
		deadline = time.Now().Add(s.Budget)
	}

	// Feasible lot counts: every count n with min <= totalLength/n <= max.
	minCount := int(math.Ceil(totalLength/s.MaxWidth - 1e-9))
	if minCount < 1 {
		minCount = 1
	}
	maxCount := int(math.Floor(totalLength/s.MinWidth + 1e-9))
	if maxCount < minCount {
		return nil
	}

	// For a fixed count the width sum is pinned to totalLength, so equal
	// widths minimize the aggregate deviation penalty; the search reduces
	// to picking the best count. Counts are visited nearest-to-ideal
	// first so an expired budget still leaves the most promising
	// candidate as the best found so far.
	counts := countsByProximity(minCount, maxCount, totalLength/target)

	bestScore := math.Inf(-1)
	var best []float64
	for _, n := range counts {
		if best != nil && !deadline.IsZero() && time.Now().After(deadline) {
			break
		}
		w := totalLength / float64(n)
		score := totalLength - s.PenaltyWeight*float64(n)*math.Abs(w-target)
		if score > bestScore+1e-9 {
			bestScore = score
			best = uniformSlice(n, w)
		}
	}
	return best
}

// UniformWidths is the deterministic fallback division: the lot count
// nearest totalLength/target (at least one), all lots equal width.
func UniformWidths(totalLength, target float64) []float64 {
	if totalLength <= 0 {
		return nil
	}
	n := 1
	if target > 0 {
		n = int(math.Round(totalLength / target))
		if n < 1 {
			n = 1
		}
	}
	return uniformSlice(n, totalLength/float64(n))
}

// countsByProximity lists the integers in [lo, hi] ordered by distance
// to ideal, preferring the smaller count on ties.
func countsByProximity(lo, hi int, ideal float64) []int {
	counts := make([]int, 0, hi-lo+1)
	for n := lo; n <= hi; n++ {
		counts = append(counts, n)
	}
	sort.SliceStable(counts, func(i, j int) bool {
		di := math.Abs(float64(counts[i]) - ideal)
		dj := math.Abs(float64(counts[j]) - ideal)
		if di != dj {
			return di < dj
		}
		return counts[i] < counts[j]
	})
	return counts
}

func uniformSlice(n int, w float64) []float64 {
	widths := make([]float64, n)
	for i := range widths {
		widths[i] = w
	}
	return widths
}
