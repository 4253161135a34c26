package autoarima

// Strategy controls how the candidate order space is explored. The
// differencing orders are fixed by the stationarity tests before a strategy
// runs; strategies only explore the AR and MA orders.
type Strategy interface {
	search(s *searcher)
}

// Stepwise explores orders with a stepwise neighborhood search. It starts
// from a handful of common orders and repeatedly moves to the best
// single-step neighbor until no neighbor improves the criterion. Orders of
// magnitude fewer fits than Grid, usually the same winner.
type Stepwise struct{}

type orderSpec struct {
	p, q, sp, sq int
}

func (st *Stepwise) search(s *searcher) {
	start := []orderSpec{
		{0, 0, 0, 0},
		{1, 0, 0, 0},
		{0, 1, 0, 0},
		{1, 1, 0, 0},
		{2, 2, 0, 0},
	}
	if s.cfg.Seasonal {
		start = []orderSpec{
			{0, 0, 0, 0},
			{1, 0, 1, 0},
			{0, 1, 0, 1},
			{1, 1, 1, 1},
			{2, 2, 1, 1},
		}
	}

	bestSpec := orderSpec{}
	found := false
	for _, spec := range start {
		if s.try(spec.p, spec.q, spec.sp, spec.sq) {
			bestSpec = spec
			found = true
		}
	}
	if !found && s.best == nil {
		return
	}

	improved := true
	for improved {
		improved = false

		neighbors := []orderSpec{
			{bestSpec.p + 1, bestSpec.q, bestSpec.sp, bestSpec.sq},
			{bestSpec.p - 1, bestSpec.q, bestSpec.sp, bestSpec.sq},
			{bestSpec.p, bestSpec.q + 1, bestSpec.sp, bestSpec.sq},
			{bestSpec.p, bestSpec.q - 1, bestSpec.sp, bestSpec.sq},
			{bestSpec.p + 1, bestSpec.q + 1, bestSpec.sp, bestSpec.sq},
			{bestSpec.p - 1, bestSpec.q - 1, bestSpec.sp, bestSpec.sq},
		}
		if s.cfg.Seasonal {
			neighbors = append(neighbors,
				orderSpec{bestSpec.p, bestSpec.q, bestSpec.sp + 1, bestSpec.sq},
				orderSpec{bestSpec.p, bestSpec.q, bestSpec.sp - 1, bestSpec.sq},
				orderSpec{bestSpec.p, bestSpec.q, bestSpec.sp, bestSpec.sq + 1},
				orderSpec{bestSpec.p, bestSpec.q, bestSpec.sp, bestSpec.sq - 1},
			)
		}

		for _, spec := range neighbors {
			if s.try(spec.p, spec.q, spec.sp, spec.sq) {
				bestSpec = spec
				improved = true
			}
		}
	}
}

// Grid explores every order combination up to the configured maxima. Orders
// that fail to fit are skipped. Exhaustive and slow; intended for small
// maxima or for validating a Stepwise result.
type Grid struct{}

func (g *Grid) search(s *searcher) {
	maxSP, maxSQ := 0, 0
	if s.cfg.Seasonal {
		maxSP = s.cfg.MaxSP
		maxSQ = s.cfg.MaxSQ
	}

	for p := 0; p <= s.cfg.MaxP; p++ {
		for q := 0; q <= s.cfg.MaxQ; q++ {
			for sp := 0; sp <= maxSP; sp++ {
				for sq := 0; sq <= maxSQ; sq++ {
					s.try(p, q, sp, sq)
				}
			}
		}
	}
}
