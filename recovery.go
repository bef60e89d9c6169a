package schedules

import (
	"github.com/pkg/errors"
)

// The three recovery properties below share the same shape: close every open
// transaction with a synthetic commit, then make one pass over the schedule
// keeping a per object history of writers and the set of committed
// transactions, all local to the call. An abort removes the aborting
// transaction from every object's writer history so later lookups no longer
// observe it. Read-from dependencies already recorded against the aborting
// transaction are never retracted.

// Recoverable reports whether every transaction commits only after every
// transaction whose writes it read has committed.
func Recoverable(schedule Schedule) bool {
	schedule = schedule.AddCommits()

	writtenBy := make(map[string][]uint64)           // object -> writer history
	readFrom := make(map[uint64]map[uint64]struct{}) // reader -> writers observed
	committed := make(map[uint64]struct{})

	for _, a := range schedule {
		switch a.Op {
		case WriteOperation:
			writtenBy[a.Object] = append(writtenBy[a.Object], a.Transaction)
		case ReadOperation:
			if writers := writtenBy[a.Object]; len(writers) > 0 {
				if last := writers[len(writers)-1]; last != a.Transaction {
					if readFrom[a.Transaction] == nil {
						readFrom[a.Transaction] = make(map[uint64]struct{})
					}
					readFrom[a.Transaction][last] = struct{}{}
				}
			}
		case CommitOperation:
			for writer := range readFrom[a.Transaction] {
				if _, ok := committed[writer]; !ok {
					return false
				}
			}
			committed[a.Transaction] = struct{}{}
		case AbortOperation:
			purgeWriter(writtenBy, a.Transaction)
		default:
			panic(errors.Errorf("invalid operation %d", a.Op))
		}
	}
	return true
}

// AvoidsCascadingAborts reports whether every read in the schedule observes
// only committed writes. Unlike Recoverable, which tolerates a dirty read as
// long as commits land in the right order, this fails the moment a
// transaction reads another transaction's uncommitted write.
func AvoidsCascadingAborts(schedule Schedule) bool {
	schedule = schedule.AddCommits()

	lastWrite := make(map[string][]uint64)
	committed := make(map[uint64]struct{})

	for _, a := range schedule {
		switch a.Op {
		case WriteOperation:
			lastWrite[a.Object] = append(lastWrite[a.Object], a.Transaction)
		case ReadOperation:
			if writers := lastWrite[a.Object]; len(writers) > 0 {
				last := writers[len(writers)-1]
				if _, ok := committed[last]; !ok && last != a.Transaction {
					return false
				}
			}
		case CommitOperation:
			committed[a.Transaction] = struct{}{}
		case AbortOperation:
			purgeWriter(lastWrite, a.Transaction)
		default:
			panic(errors.Errorf("invalid operation %d", a.Op))
		}
	}
	return true
}

// Strict reports whether no transaction ever reads or overwrites another
// transaction's uncommitted write.
func Strict(schedule Schedule) bool {
	schedule = schedule.AddCommits()

	lastWrite := make(map[string][]uint64)
	committed := make(map[uint64]struct{})

	for _, a := range schedule {
		switch a.Op {
		case ReadOperation, WriteOperation:
			if writers := lastWrite[a.Object]; len(writers) > 0 {
				last := writers[len(writers)-1]
				if _, ok := committed[last]; !ok && last != a.Transaction {
					return false
				}
			}
			if a.Op == WriteOperation {
				lastWrite[a.Object] = append(lastWrite[a.Object], a.Transaction)
			}
		case CommitOperation:
			committed[a.Transaction] = struct{}{}
		case AbortOperation:
			purgeWriter(lastWrite, a.Transaction)
		default:
			panic(errors.Errorf("invalid operation %d", a.Op))
		}
	}
	return true
}

// purgeWriter removes txn from every object's writer history.
func purgeWriter(writtenBy map[string][]uint64, txn uint64) {
	for object, writers := range writtenBy {
		kept := make([]uint64, 0, len(writers))
		for _, writer := range writers {
			if writer != txn {
				kept = append(kept, writer)
			}
		}
		writtenBy[object] = kept
	}
}
