// Package render draws a solved flow network with Graphviz.
//
// Edges are labeled "flow/capacity". The source is filled green, the sink
// red; saturated edges are bold and min-cut edges dashed red.
package render

import (
	"bytes"
	"context"
	"fmt"

	"github.com/goccy/go-graphviz"

	"github.com/katalvlaran/densflow/flow"
	"github.com/katalvlaran/densflow/network"
)

// Options configures DOT output.
type Options struct {
	// HideIdle drops edges that carry no flow.
	HideIdle bool
	// Cut, when non-nil, highlights its crossing edges.
	Cut *flow.Cut
}

// ToDOT converts net with its current flow to Graphviz DOT text.
// Vertices and edges are emitted in increasing index order.
func ToDOT(net *network.Network, source, sink network.Vertex, opts Options) string {
	cut := make(map[[2]int]bool)
	if opts.Cut != nil {
		for _, e := range opts.Cut.Edges {
			cut[[2]int{e.From, e.To}] = true
		}
	}

	var buf bytes.Buffer
	buf.WriteString("digraph G {\n")
	buf.WriteString("  rankdir=LR;\n")
	buf.WriteString("  node [shape=circle, style=filled, fillcolor=white, fontsize=14];\n")
	buf.WriteString("\n")

	n := net.Size()
	for v := 0; v < n; v++ {
		switch v {
		case source:
			fmt.Fprintf(&buf, "  %d [fillcolor=palegreen, xlabel=\"source\"];\n", v)
		case sink:
			fmt.Fprintf(&buf, "  %d [fillcolor=salmon, xlabel=\"sink\"];\n", v)
		default:
			fmt.Fprintf(&buf, "  %d;\n", v)
		}
	}

	buf.WriteString("\n")
	for u := 0; u < n; u++ {
		for v := 0; v < n; v++ {
			c := net.Capacity(u, v)
			if c <= 0 || u == v {
				continue
			}
			f := max(net.Flow(u, v), 0)
			if opts.HideIdle && f == 0 {
				continue
			}
			attrs := fmt.Sprintf("label=\"%d/%d\"", f, c)
			if f == c {
				attrs += ", penwidth=2.5"
			}
			if cut[[2]int{u, v}] {
				attrs += ", style=dashed, color=red"
			}
			fmt.Fprintf(&buf, "  %d -> %d [%s];\n", u, v, attrs)
		}
	}

	buf.WriteString("}\n")
	return buf.String()
}

// SVG renders DOT text to SVG.
func SVG(ctx context.Context, dot string) ([]byte, error) {
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("render: init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("render: parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, graphviz.SVG, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return buf.Bytes(), nil
}
