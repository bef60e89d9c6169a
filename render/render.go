// Package render turns schedules and conflict graphs into presentation
// artifacts, LaTeX tables and Graphviz DOT. It only ever consumes the
// engine's values, nothing here feeds back into classification.
package render

import (
	"fmt"
	"sort"
	"strings"

	"github.com/elliotcourant/schedules"
	"github.com/pkg/errors"
	"gonum.org/v1/gonum/graph"
	"gonum.org/v1/gonum/graph/encoding/dot"
	"gonum.org/v1/gonum/graph/simple"
)

// TeX renders a single action as a LaTeX math atom. Panics on an operation
// outside the four known kinds, malformed actions are rejected here, not
// discovered later.
func TeX(a schedules.Action) string {
	switch a.Op {
	case schedules.ReadOperation:
		return fmt.Sprintf("$R_{%d}(%s)$", a.Transaction, a.Object)
	case schedules.WriteOperation:
		return fmt.Sprintf("$W_{%d}(%s)$", a.Transaction, a.Object)
	case schedules.CommitOperation:
		return fmt.Sprintf("$\\text{Commit}_{%d}$", a.Transaction)
	case schedules.AbortOperation:
		return fmt.Sprintf("$\\text{Abort}_{%d}$", a.Transaction)
	default:
		panic(errors.Errorf("invalid operation %d", a.Op))
	}
}

// Table renders a schedule as a LaTeX tabular with one column per
// transaction, columns sorted by transaction id, one row per action.
func Table(s schedules.Schedule) string {
	ids := s.TransactionIDs()
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	column := make(map[uint64]int, len(ids))
	headers := make([]string, len(ids))
	for i, id := range ids {
		column[id] = i
		headers[i] = fmt.Sprintf("$T_%d$", id)
	}

	var b strings.Builder
	b.WriteString(`\begin{tabular}{|`)
	b.WriteString(strings.Repeat("c|", len(ids)))
	b.WriteString("}\n\\hline\n")
	b.WriteString(strings.Join(headers, "&"))
	b.WriteString("\\\\\\hline\n")
	for _, a := range s {
		index := column[a.Transaction]
		b.WriteString(strings.Repeat("&", index))
		b.WriteString(TeX(a))
		b.WriteString(strings.Repeat("&", len(ids)-1-index))
		b.WriteString("\\\\\\hline\n")
	}
	b.WriteString("\\end{tabular}\n")
	return b.String()
}

type texNode struct {
	graph.Node
}

func (n texNode) DOTID() string {
	return fmt.Sprintf("T%d", n.ID())
}

// DOT renders a conflict graph in Graphviz format with T1 style node names,
// ready for dot(1) or any other Graphviz consumer.
func DOT(g *simple.DirectedGraph) ([]byte, error) {
	relabeled := simple.NewDirectedGraph()
	nodes := g.Nodes()
	for nodes.Next() {
		relabeled.AddNode(texNode{nodes.Node()})
	}
	edges := g.Edges()
	for edges.Next() {
		edge := edges.Edge()
		relabeled.SetEdge(relabeled.NewEdge(
			relabeled.Node(edge.From().ID()),
			relabeled.Node(edge.To().ID()),
		))
	}

	marshaled, err := dot.Marshal(relabeled, "conflicts", "", "  ")
	return marshaled, errors.Wrap(err, "failed to marshal the conflict graph")
}
