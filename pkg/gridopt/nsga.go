package gridopt

import (
	"math"
	"runtime"
	"sort"
	"sync"
)

// evaluateAll computes fitness for every individual across a bounded
// worker pool. Evaluation is pure, each worker writes only its own
// index, and results land in input order, so the outcome is identical
// to a serial pass.
func (o *Optimizer) evaluateAll(pop []Individual) {
	workers := o.cfg.Workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	if workers > len(pop) {
		workers = len(pop)
	}
	if workers <= 1 {
		for i := range pop {
			o.evaluate(&pop[i])
		}
		return
	}

	idx := make(chan int)
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range idx {
				o.evaluate(&pop[i])
			}
		}()
	}
	for i := range pop {
		idx <- i
	}
	close(idx)
	wg.Wait()
}

// dominates reports whether a Pareto-dominates b: at least as good in
// both objectives and strictly better in one.
func dominates(a, b Individual) bool {
	if a.Area < b.Area || a.Fragments > b.Fragments {
		return false
	}
	return a.Area > b.Area || a.Fragments < b.Fragments
}

// selectNext performs NSGA-II environmental selection: fast
// non-dominated sorting into fronts, crowding distance within each
// front, and truncation of the last admitted front by crowding.
// Ranks and crowding distances are left assigned on the survivors for
// use by tournament selection.
func (o *Optimizer) selectNext(pool []Individual, n int) []Individual {
	fronts := sortNonDominated(pool)

	next := make([]Individual, 0, n)
	for _, front := range fronts {
		assignCrowding(pool, front)
		if len(next)+len(front) <= n {
			for _, i := range front {
				next = append(next, pool[i])
			}
			continue
		}
		// Partial front: keep the most spread-out individuals. Sort is
		// stable over the index order so ties resolve deterministically.
		sort.SliceStable(front, func(a, b int) bool {
			return pool[front[a]].crowding > pool[front[b]].crowding
		})
		for _, i := range front[:n-len(next)] {
			next = append(next, pool[i])
		}
		break
	}
	return next
}

// sortNonDominated partitions the pool into Pareto fronts and stamps
// each individual's rank. Fronts hold indices into pool.
func sortNonDominated(pool []Individual) [][]int {
	n := len(pool)
	dominatedBy := make([][]int, n) // indices each individual dominates
	domCount := make([]int, n)      // how many dominate this individual

	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if dominates(pool[i], pool[j]) {
				dominatedBy[i] = append(dominatedBy[i], j)
				domCount[j]++
			} else if dominates(pool[j], pool[i]) {
				dominatedBy[j] = append(dominatedBy[j], i)
				domCount[i]++
			}
		}
	}

	var fronts [][]int
	var current []int
	for i := 0; i < n; i++ {
		if domCount[i] == 0 {
			pool[i].rank = 0
			current = append(current, i)
		}
	}
	for rank := 0; len(current) > 0; rank++ {
		fronts = append(fronts, current)
		var next []int
		for _, i := range current {
			for _, j := range dominatedBy[i] {
				domCount[j]--
				if domCount[j] == 0 {
					pool[j].rank = rank + 1
					next = append(next, j)
				}
			}
		}
		current = next
	}
	return fronts
}

// assignCrowding computes crowding distances for one front. Objective
// extremes get infinite distance so they always survive truncation.
func assignCrowding(pool []Individual, front []int) {
	for _, i := range front {
		pool[i].crowding = 0
	}
	if len(front) <= 2 {
		for _, i := range front {
			pool[i].crowding = math.Inf(1)
		}
		return
	}

	byObjective := func(value func(Individual) float64) {
		idx := append([]int(nil), front...)
		sort.SliceStable(idx, func(a, b int) bool {
			return value(pool[idx[a]]) < value(pool[idx[b]])
		})
		lo := value(pool[idx[0]])
		hi := value(pool[idx[len(idx)-1]])
		pool[idx[0]].crowding = math.Inf(1)
		pool[idx[len(idx)-1]].crowding = math.Inf(1)
		if hi-lo < 1e-12 {
			return
		}
		for k := 1; k < len(idx)-1; k++ {
			d := (value(pool[idx[k+1]]) - value(pool[idx[k-1]])) / (hi - lo)
			pool[idx[k]].crowding += d
		}
	}
	byObjective(func(ind Individual) float64 { return ind.Area })
	byObjective(func(ind Individual) float64 { return float64(ind.Fragments) })
}

// makeOffspring produces a full offspring population by crowded binary
// tournament, simulated-binary crossover, and polynomial mutation.
// All randomness is drawn from the optimizer's own RNG on the calling
// goroutine, so a fixed seed replays the exact sequence.
func (o *Optimizer) makeOffspring(pop []Individual) []Individual {
	offspring := make([]Individual, 0, o.cfg.PopulationSize)
	for len(offspring) < o.cfg.PopulationSize {
		p1 := o.tournament(pop)
		p2 := o.tournament(pop)

		c1, c2 := p1, p2
		if o.rng.Float64() < o.cfg.CrossoverProb {
			c1.Spacing, c2.Spacing = o.sbx(p1.Spacing, p2.Spacing, o.cfg.SpacingMin, o.cfg.SpacingMax)
			if !o.angleFixed {
				c1.Angle, c2.Angle = o.sbx(p1.Angle, p2.Angle, o.cfg.AngleMin, o.cfg.AngleMax)
			}
		}
		for _, child := range []*Individual{&c1, &c2} {
			if o.rng.Float64() < o.cfg.MutationProb {
				child.Spacing = o.polynomialMutate(child.Spacing, o.cfg.SpacingMin, o.cfg.SpacingMax)
			}
			if !o.angleFixed && o.rng.Float64() < o.cfg.MutationProb {
				child.Angle = o.polynomialMutate(child.Angle, o.cfg.AngleMin, o.cfg.AngleMax)
			}
		}

		offspring = append(offspring, c1)
		if len(offspring) < o.cfg.PopulationSize {
			offspring = append(offspring, c2)
		}
	}
	return offspring
}

// tournament picks the better of two random individuals: lower rank
// wins, ties go to the larger crowding distance, remaining ties to the
// first pick.
func (o *Optimizer) tournament(pop []Individual) Individual {
	a := pop[o.rng.Intn(len(pop))]
	b := pop[o.rng.Intn(len(pop))]
	if b.rank < a.rank || (b.rank == a.rank && b.crowding > a.crowding) {
		return b
	}
	return a
}

// sbx applies bounded simulated-binary crossover to one gene pair.
func (o *Optimizer) sbx(p1, p2, lo, hi float64) (float64, float64) {
	if math.Abs(p1-p2) < 1e-14 || hi-lo < 1e-12 {
		return p1, p2
	}
	u := o.rng.Float64()
	var beta float64
	if u <= 0.5 {
		beta = math.Pow(2*u, 1/(o.cfg.Eta+1))
	} else {
		beta = math.Pow(1/(2*(1-u)), 1/(o.cfg.Eta+1))
	}
	mean := 0.5 * (p1 + p2)
	spread := 0.5 * beta * math.Abs(p2-p1)
	return clamp(mean-spread, lo, hi), clamp(mean+spread, lo, hi)
}

// polynomialMutate applies bounded polynomial mutation to one gene.
func (o *Optimizer) polynomialMutate(x, lo, hi float64) float64 {
	if hi-lo < 1e-12 {
		return x
	}
	u := o.rng.Float64()
	var delta float64
	if u < 0.5 {
		delta = math.Pow(2*u, 1/(o.cfg.Eta+1)) - 1
	} else {
		delta = 1 - math.Pow(2*(1-u), 1/(o.cfg.Eta+1))
	}
	return clamp(x+delta*(hi-lo), lo, hi)
}

func clamp(x, lo, hi float64) float64 {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}
