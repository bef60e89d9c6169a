package schedules

import (
	"gonum.org/v1/gonum/graph/simple"
	"gonum.org/v1/gonum/graph/topo"
)

// ConflictGraph builds the directed graph of ordering constraints between the
// transactions of a schedule. Aborted transactions are removed first. Nodes
// are transaction ids and there is an edge a -> b whenever some action of a
// precedes an action of b on the same object, a and b are different
// transactions, and at least one of the two actions is a write.
//
// The graph is built fresh on every call and is owned by the caller, nothing
// is cached or shared. Schedules are teaching scale, so the pairwise O(n^2)
// scan is fine.
func ConflictGraph(schedule Schedule) *simple.DirectedGraph {
	schedule = schedule.DropAborts()

	g := simple.NewDirectedGraph()
	for _, id := range schedule.TransactionIDs() {
		g.AddNode(simple.Node(id))
	}

	for i, a := range schedule {
		for _, b := range schedule[i+1:] {
			sameObject := a.Object == b.Object
			differentTransaction := a.Transaction != b.Transaction
			conflict := a.Op == WriteOperation || b.Op == WriteOperation
			if sameObject && differentTransaction && conflict {
				from := simple.Node(a.Transaction)
				to := simple.Node(b.Transaction)
				g.SetEdge(g.NewEdge(from, to))
			}
		}
	}
	return g
}

// ConflictSerializable reports whether the schedule's conflict graph is
// acyclic. A cycle means no serial order of the transactions preserves every
// conflict, so the schedule is not conflict serializable.
func ConflictSerializable(schedule Schedule) bool {
	return len(topo.DirectedCyclesIn(ConflictGraph(schedule))) == 0
}
