// SPDX-License-Identifier: MIT
// Package graphio reads graph collections from YAML and writes embedding
// tables as CSV.
//
// Collection document:
//
//	graphs:
//	  - name: triangle
//	    nodes: 3
//	    edges: [[0, 1], [1, 2], [2, 0]]
//	  - name: weighted-pair
//	    nodes: 2
//	    weighted: true
//	    edges: [[0, 1, 0.5]]
//
// Nodes are the indices 0..nodes-1, which is the canonical order the spectral
// embedder expects. An edge is [u, v] or, on weighted graphs, [u, v, w].
package graphio

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"

	"gonum.org/v1/gonum/mat"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/lvspectra/core"
)

var (
	// ErrBadDocument indicates a structurally invalid collection document.
	ErrBadDocument = errors.New("graphio: bad document")

	// ErrBadEdge indicates an edge entry with the wrong arity or a node
	// index outside [0, nodes).
	ErrBadEdge = errors.New("graphio: bad edge")
)

// GraphSpec is the on-disk form of one graph.
type GraphSpec struct {
	Name     string      `yaml:"name,omitempty"`
	Nodes    int         `yaml:"nodes"`
	Weighted bool        `yaml:"weighted,omitempty"`
	Loops    bool        `yaml:"loops,omitempty"`
	Edges    [][]float64 `yaml:"edges,flow"`
}

// Document is the on-disk form of a collection.
type Document struct {
	Graphs []GraphSpec `yaml:"graphs"`
}

// Collection is a decoded document: Graphs[i] is named Names[i].
type Collection struct {
	Names  []string
	Graphs []*core.Graph
}

// Decode parses a YAML collection from r.
func Decode(r io.Reader) (*Collection, error) {
	var doc Document
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return &Collection{}, nil
		}
		return nil, fmt.Errorf("Decode: %v: %w", err, ErrBadDocument)
	}

	out := &Collection{
		Names:  make([]string, len(doc.Graphs)),
		Graphs: make([]*core.Graph, len(doc.Graphs)),
	}
	for i, spec := range doc.Graphs {
		g, err := spec.Build()
		if err != nil {
			return nil, fmt.Errorf("Decode: graph %d: %w", i, err)
		}
		out.Graphs[i] = g
		out.Names[i] = spec.Name
		if out.Names[i] == "" {
			out.Names[i] = strconv.Itoa(i)
		}
	}

	return out, nil
}

// Load decodes the collection stored at path.
func Load(path string) (*Collection, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return Decode(f)
}

// Build materializes s as a core.Graph with vertices "0".."nodes-1".
func (s GraphSpec) Build() (*core.Graph, error) {
	if s.Nodes < 0 {
		return nil, fmt.Errorf("nodes=%d: %w", s.Nodes, ErrBadDocument)
	}
	var opts []core.GraphOption
	if s.Weighted {
		opts = append(opts, core.WithWeighted())
	}
	if s.Loops {
		opts = append(opts, core.WithLoops())
	}
	g := core.NewGraph(opts...)
	for i := 0; i < s.Nodes; i++ {
		if err := g.AddVertex(strconv.Itoa(i)); err != nil {
			return nil, err
		}
	}

	for j, e := range s.Edges {
		if len(e) != 2 && len(e) != 3 {
			return nil, fmt.Errorf("edge %d: %d fields: %w", j, len(e), ErrBadEdge)
		}
		u, err := nodeIndex(e[0], s.Nodes)
		if err != nil {
			return nil, fmt.Errorf("edge %d: %w", j, err)
		}
		v, err := nodeIndex(e[1], s.Nodes)
		if err != nil {
			return nil, fmt.Errorf("edge %d: %w", j, err)
		}
		var w float64
		if len(e) == 3 {
			w = e[2]
		}
		if _, err = g.AddEdge(strconv.Itoa(u), strconv.Itoa(v), w); err != nil {
			return nil, fmt.Errorf("edge %d (%d,%d): %w", j, u, v, err)
		}
	}

	return g, nil
}

func nodeIndex(x float64, n int) (int, error) {
	if x != math.Trunc(x) || x < 0 || x >= float64(n) {
		return 0, fmt.Errorf("node %v not in [0,%d): %w", x, n, ErrBadEdge)
	}
	return int(x), nil
}

// SpecOf converts a canonical graph back into its on-disk form.
func SpecOf(name string, g *core.Graph) (GraphSpec, error) {
	if _, err := g.CanonicalOrder(); err != nil {
		return GraphSpec{}, err
	}
	spec := GraphSpec{
		Name:     name,
		Nodes:    g.VertexCount(),
		Weighted: g.Weighted(),
		Loops:    g.Looped(),
	}
	for _, e := range g.Edges() {
		u, _ := strconv.Atoi(e.From)
		v, _ := strconv.Atoi(e.To)
		edge := []float64{float64(u), float64(v)}
		if spec.Weighted {
			edge = append(edge, e.Weight)
		}
		spec.Edges = append(spec.Edges, edge)
	}

	return spec, nil
}

// Encode writes c as a YAML collection document.
func Encode(w io.Writer, c *Collection) error {
	doc := Document{Graphs: make([]GraphSpec, len(c.Graphs))}
	for i, g := range c.Graphs {
		name := ""
		if i < len(c.Names) {
			name = c.Names[i]
		}
		spec, err := SpecOf(name, g)
		if err != nil {
			return fmt.Errorf("Encode: graph %d: %w", i, err)
		}
		doc.Graphs[i] = spec
	}
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return err
	}

	return enc.Close()
}

// WriteCSV writes one row per table row: the row name followed by its
// values. The header is "graph,f0,f1,...". Missing names fall back to the
// row index.
func WriteCSV(w io.Writer, names []string, table mat.Matrix) error {
	rows, cols := table.Dims()
	cw := csv.NewWriter(w)

	header := make([]string, cols+1)
	header[0] = "graph"
	for j := 0; j < cols; j++ {
		header[j+1] = "f" + strconv.Itoa(j)
	}
	if err := cw.Write(header); err != nil {
		return err
	}

	record := make([]string, cols+1)
	for i := 0; i < rows; i++ {
		record[0] = strconv.Itoa(i)
		if i < len(names) && names[i] != "" {
			record[0] = names[i]
		}
		for j := 0; j < cols; j++ {
			record[j+1] = strconv.FormatFloat(table.At(i, j), 'g', -1, 64)
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}
	cw.Flush()

	return cw.Error()
}
