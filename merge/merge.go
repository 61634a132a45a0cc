package merge

import (
	"math"

	"github.com/tsawler/pdf2dxf/model"
)

// keyScale quantizes coordinates to 1e-6 units for node identity
const keyScale = 1e6

// Options holds the merge tolerances
type Options struct {
	// Snap rounds endpoints to the nearest multiple of Snap; <= 0 disables snapping
	Snap float64

	// AngleTolDeg is the largest turn allowed when continuing through a branch node
	AngleTolDeg float64

	// MinLen drops segments shorter than this after snapping
	MinLen float64
}

// DefaultOptions returns snap 0.25, a 2 degree angle tolerance and 0.05 minimum length
func DefaultOptions() Options {
	return Options{
		Snap:        0.25,
		AngleTolDeg: 2.0,
		MinLen:      0.05,
	}
}

// pointKey is a quantized point used for node lookup and deduplication
type pointKey struct {
	x, y int64
}

func keyOf(p model.Point) pointKey {
	return pointKey{
		x: int64(math.Round(p.X * keyScale)),
		y: int64(math.Round(p.Y * keyScale)),
	}
}

func (k pointKey) less(o pointKey) bool {
	if k.x != o.x {
		return k.x < o.x
	}
	return k.y < o.y
}

// edgeKey identifies an undirected segment
type edgeKey struct {
	lo, hi pointKey
}

func undirected(a, b pointKey) edgeKey {
	if b.less(a) {
		a, b = b, a
	}
	return edgeKey{lo: a, hi: b}
}

type node struct {
	pt    model.Point
	edges []int // incident edge ids in insertion order
}

type edge struct {
	a, b int // node indices
}

// graph is the snapped segment graph for one merge invocation
type graph struct {
	nodes []node
	index map[pointKey]int
	edges []edge
	used  []bool
}

func newGraph(capacity int) *graph {
	return &graph{
		index: make(map[pointKey]int, capacity),
		edges: make([]edge, 0, capacity),
	}
}

func (g *graph) addNode(p model.Point) int {
	k := keyOf(p)
	if i, ok := g.index[k]; ok {
		return i
	}
	g.nodes = append(g.nodes, node{pt: p})
	g.index[k] = len(g.nodes) - 1
	return len(g.nodes) - 1
}

func (g *graph) addEdge(a, b model.Point) {
	ai := g.addNode(a)
	bi := g.addNode(b)
	id := len(g.edges)
	g.edges = append(g.edges, edge{a: ai, b: bi})
	g.nodes[ai].edges = append(g.nodes[ai].edges, id)
	g.nodes[bi].edges = append(g.nodes[bi].edges, id)
}

func (g *graph) other(eid, from int) int {
	e := g.edges[eid]
	if e.a == from {
		return e.b
	}
	return e.a
}

// vecFrom returns the direction of edge eid leaving node from
func (g *graph) vecFrom(eid, from int) model.Point {
	to := g.other(eid, from)
	return g.nodes[to].pt.Sub(g.nodes[from].pt)
}

func (g *graph) unused(n int) []int {
	var out []int
	for _, eid := range g.nodes[n].edges {
		if !g.used[eid] {
			out = append(out, eid)
		}
	}
	return out
}

// CleanupAndMergeLines snaps, filters and deduplicates segs, then extracts
// maximal polylines from the resulting graph. Layers of the input are
// ignored and the output polylines carry no layer; see ByLayer.
func CleanupAndMergeLines(segs []model.Segment, opts Options) []model.Polyline {
	g := build(segs, opts)
	if len(g.edges) == 0 {
		return nil
	}
	g.used = make([]bool, len(g.edges))
	minScore := math.Cos(opts.AngleTolDeg * math.Pi / 180)

	var starts []int
	for i, n := range g.nodes {
		if len(n.edges) != 2 {
			starts = append(starts, i)
		}
	}
	if len(starts) == 0 {
		for i := range g.nodes {
			starts = append(starts, i)
		}
	}

	var out []model.Polyline
	extract := func(start int) {
		for _, eid := range g.nodes[start].edges {
			if g.used[eid] {
				continue
			}
			pts := g.walk(start, eid, minScore)
			if len(pts) >= 2 {
				out = append(out, model.Polyline{Points: pts})
			}
		}
	}
	for _, start := range starts {
		extract(start)
	}

	// Closed loops disconnected from every start node are still unused
	for i := range g.nodes {
		extract(i)
	}
	return out
}

// walk follows edges from start beginning with eid until the path ends or
// the best continuation at a branch turns more than the tolerance.
func (g *graph) walk(start, eid int, minScore float64) []model.Point {
	pts := []model.Point{g.nodes[start].pt}
	cur := start

	for {
		g.used[eid] = true
		next := g.other(eid, cur)
		pts = append(pts, g.nodes[next].pt)

		candidates := g.unused(next)
		if len(candidates) == 0 {
			break
		}
		if len(candidates) == 1 {
			cur, eid = next, candidates[0]
			continue
		}

		incoming := g.vecFrom(eid, next)
		best, bestScore := -1, -1.0
		for _, cand := range candidates {
			score := collinearity(incoming, g.vecFrom(cand, next))
			if score > bestScore {
				best, bestScore = cand, score
			}
		}
		if bestScore < minScore {
			break
		}
		cur, eid = next, best
	}
	return pts
}

// build applies snapping, the length filter and undirected deduplication
func build(segs []model.Segment, opts Options) *graph {
	g := newGraph(len(segs))
	seen := make(map[edgeKey]struct{}, len(segs))
	minLen2 := opts.MinLen * opts.MinLen

	for _, s := range segs {
		a := snapPoint(s.Start(), opts.Snap)
		b := snapPoint(s.End(), opts.Snap)
		d := a.Sub(b)
		if d.X*d.X+d.Y*d.Y < minLen2 {
			continue
		}

		ka, kb := keyOf(a), keyOf(b)
		if ka == kb {
			continue
		}
		k := undirected(ka, kb)
		if _, dup := seen[k]; dup {
			continue
		}
		seen[k] = struct{}{}
		g.addEdge(a, b)
	}
	return g
}

func snapPoint(p model.Point, snap float64) model.Point {
	if snap <= 0 {
		return p
	}
	return model.Point{
		X: math.Round(p.X/snap) * snap,
		Y: math.Round(p.Y/snap) * snap,
	}
}

// collinearity is the absolute cosine between two directions; zero vectors score 0
func collinearity(v1, v2 model.Point) float64 {
	l1, l2 := v1.Len(), v2.Len()
	if l1 == 0 || l2 == 0 {
		return 0
	}
	return math.Abs((v1.X*v2.X + v1.Y*v2.Y) / (l1 * l2))
}
