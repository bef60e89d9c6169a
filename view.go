package schedules

import (
	"github.com/elliotcourant/schedules/z"
	"github.com/pkg/errors"
)

// viewGraph maps each numbered read to the most recently numbered write of
// the same object preceding it. A read of an object nothing has written yet
// has no entry. Since every read observes at most one write, the whole graph
// fits in a single map and two view graphs agree exactly when the maps are
// equal.
func viewGraph(schedule Schedule) map[NumberedAction]NumberedAction {
	edges := make(map[NumberedAction]NumberedAction)
	lastWritten := make(map[string]NumberedAction)
	for _, na := range schedule.Number() {
		switch na.Action.Op {
		case WriteOperation:
			lastWritten[na.Action.Object] = na
		case ReadOperation:
			if write, ok := lastWritten[na.Action.Object]; ok {
				edges[na] = write
			}
		case CommitOperation, AbortOperation:
			// Terminations neither read nor write.
		default:
			panic(errors.Errorf("invalid operation %d", na.Action.Op))
		}
	}
	return edges
}

// ViewEquivalent reports whether two schedules over the identical set of
// transaction ids are observationally equivalent: after removing aborted
// transactions from both they must agree on the first reads of every object,
// on which write every read observes, and on the final writer of every
// object.
//
// Calling this with schedules over different transaction id sets is a
// contract breach and panics rather than returning a wrong answer.
func ViewEquivalent(s1, s2 Schedule) bool {
	z.AssertTruef(sameIDSet(s1.TransactionIDs(), s2.TransactionIDs()),
		"schedules must range over the same transactions: [%s] vs [%s]", s1, s2)

	s1, s2 = s1.DropAborts(), s2.DropAborts()

	if !firstReadsEqual(s1.firstReads(), s2.firstReads()) {
		return false
	}
	if !viewGraphsEqual(viewGraph(s1), viewGraph(s2)) {
		return false
	}
	if !lastWritersEqual(s1.lastWriters(), s2.lastWriters()) {
		return false
	}
	return true
}

func sameIDSet(a, b []uint64) bool {
	if len(a) != len(b) {
		return false
	}
	set := make(map[uint64]struct{}, len(a))
	for _, id := range a {
		set[id] = struct{}{}
	}
	for _, id := range b {
		if _, ok := set[id]; !ok {
			return false
		}
	}
	return true
}

func firstReadsEqual(a, b map[string][]uint64) bool {
	if len(a) != len(b) {
		return false
	}
	for object, readers := range a {
		others, ok := b[object]
		if !ok || len(others) != len(readers) {
			return false
		}
		for i := range readers {
			if readers[i] != others[i] {
				return false
			}
		}
	}
	return true
}

func viewGraphsEqual(a, b map[NumberedAction]NumberedAction) bool {
	if len(a) != len(b) {
		return false
	}
	for read, write := range a {
		if other, ok := b[read]; !ok || other != write {
			return false
		}
	}
	return true
}

func lastWritersEqual(a, b map[string]uint64) bool {
	if len(a) != len(b) {
		return false
	}
	for object, writer := range a {
		if other, ok := b[object]; !ok || other != writer {
			return false
		}
	}
	return true
}
