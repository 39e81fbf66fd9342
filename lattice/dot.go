package lattice

import (
	"fmt"
	"io"

	"github.com/emirpasic/gods/sets/hashset"
)

// Dot writes the lattice as a Graphviz graph for debugging. The best
// path (as established by Backward) is highlighted; unknown nodes off
// the best path are suppressed to keep the graph readable.
func (la *Lattice) Dot(w io.Writer) {
	best := hashset.New()
	for _, ref := range la.output {
		best.Add(ref)
	}
	onBest := func(ref int32) bool { return best.Contains(ref) }
	hidden := func(ref int32) bool {
		return la.node(ref).Class == Unknown && !onBest(ref)
	}

	type edge struct {
		from, to int32
	}
	var edges []edge
	for i := 1; i < len(la.list); i++ {
		for _, tref := range la.list[i] {
			if hidden(tref) {
				continue
			}
			start := int(la.node(tref).Start)
			if start >= len(la.list) {
				continue
			}
			for _, pref := range la.list[start] {
				if hidden(pref) {
					continue
				}
				edges = append(edges, edge{from: pref, to: tref})
			}
		}
	}

	fmt.Fprintln(w, "graph lattice {")
	fmt.Fprintln(w, "dpi=48;")
	fmt.Fprintln(w, "graph [style=filled, splines=true, overlap=false, fontsize=30, rankdir=LR]")
	fmt.Fprintln(w, "edge [fontname=Helvetica, fontcolor=red, color=\"#606060\"]")
	fmt.Fprintln(w, "node [shape=box, style=filled, fillcolor=\"#e8e8f0\", fontname=Helvetica]")

	for i, bucket := range la.list {
		for _, ref := range bucket {
			n := la.node(ref)
			if hidden(ref) {
				continue
			}
			surface := n.Surface
			if n.IsBosEos() {
				if i == 0 {
					surface = "BOS"
				} else {
					surface = "EOS"
				}
			}
			if onBest(ref) {
				fmt.Fprintf(w, "  \"%d\" [label=\"%s\\n%d\",shape=ellipse, peripheries=2];\n",
					ref, surface, n.Weight)
			} else if n.Class != Unknown {
				fmt.Fprintf(w, "  \"%d\" [label=\"%s\\n%d\"];\n", ref, surface, n.Weight)
			}
		}
	}

	for _, e := range edges {
		from, to := la.node(e.from), la.node(e.to)
		var connCost int16
		if from.Class != User && to.Class != User {
			connCost = la.dic.Connection.At(int(from.Right), int(to.Left))
		}
		if onBest(e.from) && onBest(e.to) {
			fmt.Fprintf(w, "  \"%d\" -- \"%d\" [label=\"%d\", style=bold, color=blue, fontcolor=blue];\n",
				e.from, e.to, connCost)
		} else {
			fmt.Fprintf(w, "  \"%d\" -- \"%d\" [label=\"%d\"];\n", e.from, e.to, connCost)
		}
	}
	fmt.Fprintln(w, "}")
}
