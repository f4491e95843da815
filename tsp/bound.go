// Package tsp - lower bounds on the optimal tour length.
//
// The bounds are diagnostics: they tell how far a heuristic tour can at most
// be from optimal, without solving the instance exactly.
//
//   - MinimumSpanningTree: Prim's MST on the complete graph, O(N²).
//   - OneTreeBound: Held–Karp 1-tree bound with subgradient ascent on the
//     Lagrange multipliers π. For every π,
//     L(π) = cost_c'(T(π)) − 2·Σπ_i with c'_ij = c_ij + π_i + π_j
//     is a valid lower bound; the ascent only tightens it.
//
// Determinism: no RNG; Prim and root-edge selection break ties by index.
package tsp

import "math"

// BoundConfig controls the subgradient loop of OneTreeBound.
type BoundConfig struct {
	// MaxIter is the number of subgradient iterations (≥ 1).
	MaxIter int
	// Alpha ∈ (0, 2) scales the step.
	Alpha float64
	// UB is the length of a known tour. When finite and positive the step is
	// α·(UB − L)/‖s‖², otherwise α/(1+k).
	UB float64
	// Root is the distinguished vertex of the 1-tree.
	Root int
}

// DefaultBoundConfig returns 64 iterations, α = 1, no incumbent, root 0.
func DefaultBoundConfig() BoundConfig {
	return BoundConfig{MaxIter: 64, Alpha: 1, UB: math.Inf(1)}
}

// MinimumSpanningTree returns the MST parent vector (parent[root] == -1,
// rooted at 0) and the total weight.
//
// Complexity: O(N²) time, O(N) space.
func MinimumSpanningTree(dist *DistanceMatrix) (parents []int, weight float64, err error) {
	var n = dist.Size()
	if n == 0 {
		return nil, 0, ErrEmptyPointSet
	}

	var (
		inTree = make([]bool, n)
		key    = make([]float64, n)
		it, v  int
		u      int
	)
	parents = make([]int, n)
	for v = 0; v < n; v++ {
		key[v] = math.Inf(1)
		parents[v] = -1
	}
	key[0] = 0

	for it = 0; it < n; it++ {
		u = -1
		for v = 0; v < n; v++ {
			if !inTree[v] && (u == -1 || key[v] < key[u]) {
				u = v
			}
		}
		inTree[u] = true
		if parents[u] >= 0 {
			weight += dist.At(u, parents[u])
		}
		for v = 0; v < n; v++ {
			if !inTree[v] && dist.At(u, v) < key[v] {
				key[v] = dist.At(u, v)
				parents[v] = u
			}
		}
	}

	return parents, round4(weight), nil
}

// OneTreeBound returns the best Held–Karp 1-tree bound found within
// cfg.MaxIter subgradient iterations, rounded down to 4 decimal digits so it
// never exceeds the true bound.
//
// Errors: ErrTooFewPoints for N < 3, ErrStartOutOfRange for a bad root.
//
// Complexity: O(MaxIter · N²) time, O(N) space.
func OneTreeBound(dist *DistanceMatrix, cfg BoundConfig) (float64, error) {
	var n = dist.Size()
	if n < 3 {
		return 0, ErrTooFewPoints
	}
	if cfg.Root < 0 || cfg.Root >= n {
		return 0, ErrStartOutOfRange
	}
	if cfg.MaxIter <= 0 {
		cfg.MaxIter = 1
	}
	if !(cfg.Alpha > 0 && cfg.Alpha < 2) {
		cfg.Alpha = 1
	}

	e := oneTree{
		dist:   dist,
		n:      n,
		root:   cfg.Root,
		pi:     make([]float64, n),
		deg:    make([]int, n),
		inTree: make([]bool, n),
		parent: make([]int, n),
		key:    make([]float64, n),
	}
	haveUB := cfg.UB > 0 && !math.IsInf(cfg.UB, 0)

	var (
		best  = math.Inf(-1)
		k, i  int
		sumPi float64
		bound float64
		norm2 float64
		step  float64
		s     int
	)
	for k = 0; k < cfg.MaxIter; k++ {
		sumPi = 0
		for i = 0; i < n; i++ {
			sumPi += e.pi[i]
		}
		bound = e.build() - 2*sumPi
		if bound > best {
			best = bound
		}

		norm2 = 0
		for i = 0; i < n; i++ {
			s = e.deg[i] - 2
			norm2 += float64(s * s)
		}
		if norm2 == 0 {
			break // the 1-tree is a tour: the bound is tight
		}

		if haveUB {
			step = cfg.Alpha * math.Max(cfg.UB-bound, 0) / norm2
		} else {
			step = cfg.Alpha / (1 + float64(k))
		}
		if step == 0 {
			break
		}
		for i = 0; i < n; i++ {
			e.pi[i] += step * float64(e.deg[i]-2)
		}
	}

	return math.Floor(best*roundScale) / roundScale, nil
}

// oneTree holds the working arrays reused across subgradient iterations.
type oneTree struct {
	dist   *DistanceMatrix
	n      int
	root   int
	pi     []float64
	deg    []int
	inTree []bool
	parent []int
	key    []float64
}

// reduced returns c'_uv = c_uv + π_u + π_v.
func (e *oneTree) reduced(u, v int) float64 {
	return e.dist.At(u, v) + e.pi[u] + e.pi[v]
}

// build constructs a minimum 1-tree on reduced costs (MST over V∖{root}
// plus the two cheapest root edges), fills e.deg and returns its reduced cost.
func (e *oneTree) build() float64 {
	var (
		v, u, best, it int
		c, total       float64
	)
	for v = 0; v < e.n; v++ {
		e.deg[v] = 0
		e.inTree[v] = false
		e.parent[v] = -1
		e.key[v] = math.Inf(1)
	}
	start := 0
	if start == e.root {
		start = 1
	}
	e.key[start] = 0

	for it = 0; it < e.n-1; it++ {
		best = -1
		for v = 0; v < e.n; v++ {
			if v == e.root || e.inTree[v] {
				continue
			}
			if best == -1 || e.key[v] < e.key[best] {
				best = v
			}
		}
		e.inTree[best] = true
		if u = e.parent[best]; u != -1 {
			total += e.reduced(best, u)
			e.deg[best]++
			e.deg[u]++
		}
		for v = 0; v < e.n; v++ {
			if v == e.root || e.inTree[v] {
				continue
			}
			if c = e.reduced(best, v); c < e.key[v] {
				e.key[v] = c
				e.parent[v] = best
			}
		}
	}

	var (
		m1, m2     = math.Inf(1), math.Inf(1)
		m1To, m2To = -1, -1
	)
	for v = 0; v < e.n; v++ {
		if v == e.root {
			continue
		}
		c = e.reduced(e.root, v)
		if c < m1 {
			m2, m2To = m1, m1To
			m1, m1To = c, v
		} else if c < m2 {
			m2, m2To = c, v
		}
	}
	total += m1 + m2
	e.deg[e.root] += 2
	e.deg[m1To]++
	e.deg[m2To]++

	return total
}
