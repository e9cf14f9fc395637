// Package triangulate turns a point cloud into a weighted, acyclic,
// seed-protected directed graph via Delaunay triangulation.
//
// No triangulation library appears anywhere in the reference corpus (the
// closest relatives are the teacher's own graph-layout code, which
// consumes an already-built graph rather than deriving one from geometry),
// so this package hand-rolls the standard incremental Bowyer–Watson
// algorithm — see DESIGN.md for why this is the one hand-written numerical
// core in an otherwise dependency-heavy module.
package triangulate

import (
	"math"
	"strconv"

	"github.com/bugra/fakedatagen/pkg/dag"
	"github.com/bugra/fakedatagen/pkg/geometry"
)

// ColorSeed and ColorNonSeed are the DOT color attribute values assigned to
// seed and non-seed nodes respectively, per spec.md §4.2.
const (
	ColorSeed    = "red"
	ColorNonSeed = "black"
)

// triangle holds indices into the augmented point slice (original points
// plus three synthetic super-triangle vertices appended at the end).
type triangle struct{ a, b, c int }

func (t triangle) hasVertex(v int) bool { return t.a == v || t.b == v || t.c == v }

type edgeKey struct{ u, v int }

// Build computes the Delaunay triangulation of points and derives the
// weighted directed graph spec.md §4.2 describes: every triangle edge is
// emitted once, oriented from its lower-indexed endpoint to its
// higher-indexed endpoint, with edges landing on a seed node (index <
// nSeeds) dropped so seeds remain pure sources. Node IDs are the point's
// decimal index; triangulate.Build does not perform the post-pruning
// identifier renaming (pipeline does that with dag.Relabel).
func Build(points []geometry.Point, nSeeds int) (*dag.Graph, error) {
	g := dag.New()
	for i, p := range points {
		color := ColorNonSeed
		if i < nSeeds {
			color = ColorSeed
		}
		if err := g.AddNode(dag.Node{ID: nodeID(i), Meta: dag.Metadata{"x": p.X, "y": p.Y, "color": color}}); err != nil {
			return nil, err
		}
	}

	if len(points) < 3 {
		return g, nil
	}

	tris := triangulate(points)

	seen := map[edgeKey]bool{}
	for _, tr := range tris {
		for _, pair := range [][2]int{{tr.a, tr.b}, {tr.b, tr.c}, {tr.a, tr.c}} {
			u, v := pair[0], pair[1]
			if u > v {
				u, v = v, u
			}
			if v < nSeeds {
				continue // target would be a seed: drop, per spec.md §4.2
			}
			if u == v {
				continue
			}
			key := edgeKey{u, v}
			if seen[key] {
				continue
			}
			seen[key] = true

			weight := euclidean(points[u], points[v])
			if err := g.AddEdge(dag.Edge{From: nodeID(u), To: nodeID(v), Weight: weight}); err != nil {
				return nil, err
			}
		}
	}

	return g, nil
}

func nodeID(i int) string { return strconv.Itoa(i) }

func euclidean(a, b geometry.Point) float64 {
	dx, dy := a.X-b.X, a.Y-b.Y
	return math.Sqrt(dx*dx + dy*dy)
}

// triangulate runs incremental Bowyer–Watson over points and returns the
// final triangle list with every super-triangle vertex removed.
func triangulate(points []geometry.Point) []triangle {
	n := len(points)
	pts := make([]geometry.Point, n, n+3)
	copy(pts, points)
	pts = append(pts, superTriangle(points)...)
	superA, superB, superC := n, n+1, n+2

	tris := []triangle{{superA, superB, superC}}

	for i := 0; i < n; i++ {
		tris = insertPoint(tris, pts, i)
	}

	final := tris[:0]
	for _, tr := range tris {
		if tr.hasVertex(superA) || tr.hasVertex(superB) || tr.hasVertex(superC) {
			continue
		}
		final = append(final, tr)
	}
	return final
}

// insertPoint adds point i to the triangulation, removing every triangle
// whose circumcircle contains it and re-triangulating the resulting
// polygonal hole by fanning out from i.
func insertPoint(tris []triangle, pts []geometry.Point, i int) []triangle {
	var bad []triangle
	var good []triangle
	for _, tr := range tris {
		if inCircumcircle(pts[tr.a], pts[tr.b], pts[tr.c], pts[i]) {
			bad = append(bad, tr)
		} else {
			good = append(good, tr)
		}
	}

	boundary := polygonBoundary(bad)

	for _, e := range boundary {
		good = append(good, triangle{e.u, e.v, i})
	}
	return good
}

// polygonBoundary returns the edges of bad that are not shared by two
// triangles in bad — the boundary of the cavity left by removing them.
func polygonBoundary(bad []triangle) []edgeKey {
	count := map[edgeKey]int{}
	order := map[edgeKey][2]int{}
	for _, tr := range bad {
		for _, pair := range [][2]int{{tr.a, tr.b}, {tr.b, tr.c}, {tr.c, tr.a}} {
			u, v := pair[0], pair[1]
			key := u
			other := v
			if u > v {
				key, other = v, u
			}
			ek := edgeKey{key, other}
			count[ek]++
			order[ek] = [2]int{u, v}
		}
	}
	var boundary []edgeKey
	for ek, c := range count {
		if c == 1 {
			uv := order[ek]
			boundary = append(boundary, edgeKey{uv[0], uv[1]})
		}
	}
	return boundary
}

// inCircumcircle reports whether d lies strictly inside the circumcircle of
// triangle (a,b,c), using the standard determinant test.
func inCircumcircle(a, b, c, d geometry.Point) bool {
	ax, ay := a.X-d.X, a.Y-d.Y
	bx, by := b.X-d.X, b.Y-d.Y
	cx, cy := c.X-d.X, c.Y-d.Y

	det := (ax*ax+ay*ay)*(bx*cy-cx*by) -
		(bx*bx+by*by)*(ax*cy-cx*ay) +
		(cx*cx+cy*cy)*(ax*by-bx*ay)

	if orientation(a, b, c) > 0 {
		return det > 0
	}
	return det < 0
}

// orientation returns >0 when a,b,c are counter-clockwise, <0 clockwise, 0
// collinear.
func orientation(a, b, c geometry.Point) float64 {
	return (b.X-a.X)*(c.Y-a.Y) - (b.Y-a.Y)*(c.X-a.X)
}

// superTriangle returns three points forming a triangle that strictly
// encloses every point in points.
func superTriangle(points []geometry.Point) []geometry.Point {
	minX, minY := math.MaxFloat64, math.MaxFloat64
	maxX, maxY := -math.MaxFloat64, -math.MaxFloat64
	for _, p := range points {
		minX, maxX = math.Min(minX, p.X), math.Max(maxX, p.X)
		minY, maxY = math.Min(minY, p.Y), math.Max(maxY, p.Y)
	}
	dx, dy := maxX-minX, maxY-minY
	deltaMax := math.Max(dx, dy)
	if deltaMax == 0 {
		deltaMax = 1
	}
	midX, midY := (minX+maxX)/2, (minY+maxY)/2

	return []geometry.Point{
		{X: midX - 20*deltaMax, Y: midY - deltaMax},
		{X: midX, Y: midY + 20*deltaMax},
		{X: midX + 20*deltaMax, Y: midY - deltaMax},
	}
}
