package polyline

import (
	"encoding/json"
	"fmt"
)

// debugPolyline is the JSON shape used by DebugJSON and ParseDebugJSON.
// Vertexes are [x, y, bulge] triples.
type debugPolyline struct {
	IsClosed bool         `json:"isClosed"`
	Vertexes [][3]float64 `json:"vertexes"`
}

// DebugJSON renders the polyline as an indented JSON document, useful for
// dumping geometry out of tests and tools.
func (p *Polyline) DebugJSON() (string, error) {
	d := debugPolyline{
		IsClosed: p.closed,
		Vertexes: make([][3]float64, 0, len(p.vertexes)),
	}
	for _, v := range p.vertexes {
		d.Vertexes = append(d.Vertexes, [3]float64{v.X, v.Y, v.Bulge})
	}
	b, err := json.MarshalIndent(d, "", "    ")
	if err != nil {
		return "", fmt.Errorf("marshal polyline: %w", err)
	}
	return string(b), nil
}

// ParseDebugJSON parses a polyline from the DebugJSON format.
func ParseDebugJSON(data []byte) (*Polyline, error) {
	var d debugPolyline
	if err := json.Unmarshal(data, &d); err != nil {
		return nil, fmt.Errorf("parse polyline: %w", err)
	}
	p := &Polyline{closed: d.IsClosed, vertexes: make([]Vertex, 0, len(d.Vertexes))}
	for _, v := range d.Vertexes {
		p.vertexes = append(p.vertexes, Vertex{X: v[0], Y: v[1], Bulge: v[2]})
	}
	return p, nil
}
