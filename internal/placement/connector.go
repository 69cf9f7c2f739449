package placement

import (
	"github.com/alexanderramin/compactgantt/internal/domain"
	"github.com/alexanderramin/compactgantt/internal/geom"
)

// Link is a connector routed as one straight line.
type Link struct {
	Connector domain.Connector
	From      geom.Point
	To        geom.Point
}

// Connect routes each connector between the primary segments of its
// endpoints. An id that matches no task is a ReferenceError; an endpoint
// that exists but was not drawn leaves the connector out.
func Connect(conns []domain.Connector, shapes []TaskShape) ([]Link, error) {
	byID := make(map[int]TaskShape, len(shapes))
	for _, s := range shapes {
		byID[s.Task.ID] = s
	}

	var links []Link
	for _, c := range conns {
		from, ok := byID[c.FromID]
		if !ok {
			return nil, &domain.ReferenceError{Entity: "connector", Field: "from_id", ID: c.FromID}
		}
		to, ok := byID[c.ToID]
		if !ok {
			return nil, &domain.ReferenceError{Entity: "connector", Field: "to_id", ID: c.ToID}
		}
		a, okA := from.Primary()
		b, okB := to.Primary()
		if !okA || !okB {
			continue
		}
		p1, p2 := facingEdges(a.Rect, b.Rect)
		links = append(links, Link{Connector: c, From: p1, To: p2})
	}
	return links, nil
}

// facingEdges joins the edges of a and b that face each other. Shapes that
// overlap horizontally are joined top to bottom at their centres.
func facingEdges(a, b geom.Rect) (geom.Point, geom.Point) {
	ca, cb := a.Center(), b.Center()
	switch {
	case a.Right() <= b.Left():
		return geom.Point{X: a.Right(), Y: ca.Y}, geom.Point{X: b.Left(), Y: cb.Y}
	case b.Right() <= a.Left():
		return geom.Point{X: a.Left(), Y: ca.Y}, geom.Point{X: b.Right(), Y: cb.Y}
	case a.Bottom() <= b.Top():
		return geom.Point{X: ca.X, Y: a.Bottom()}, geom.Point{X: cb.X, Y: b.Top()}
	case b.Bottom() <= a.Top():
		return geom.Point{X: ca.X, Y: a.Top()}, geom.Point{X: cb.X, Y: b.Bottom()}
	default:
		return ca, cb
	}
}
