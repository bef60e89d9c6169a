package schedules

import (
	"encoding/binary"
	"strings"

	"github.com/OneOfOne/xxhash"
	"github.com/pkg/errors"
)

type (
	// Schedule is one total interleaving of the operations of possibly many
	// transactions. Schedules are never mutated in place, every derived view
	// below returns a fresh slice.
	Schedule []Action

	// NumberedAction pairs an action with its zero based position among its
	// own transaction's actions. The pair disambiguates a transaction that
	// touches the same object more than once.
	NumberedAction struct {
		Index  int
		Action Action
	}
)

func (s Schedule) String() string {
	parts := make([]string, len(s))
	for i, a := range s {
		parts[i] = a.String()
	}
	return strings.Join(parts, ", ")
}

// Digest returns a 64 bit digest of the whole schedule, stable across calls
// and processes. Used as the classification cache key.
func (s Schedule) Digest() uint64 {
	digest := xxhash.New64()
	buf := make([]byte, 8)
	for _, a := range s {
		binary.BigEndian.PutUint64(buf, a.Fingerprint())
		_, _ = digest.Write(buf)
	}
	return digest.Sum64()
}

// TransactionIDs returns the unique transaction ids in the schedule, in the
// order each id first appears.
func (s Schedule) TransactionIDs() []uint64 {
	seen := make(map[uint64]struct{}, len(s))
	ids := make([]uint64, 0, len(s))
	for _, a := range s {
		if _, ok := seen[a.Transaction]; !ok {
			seen[a.Transaction] = struct{}{}
			ids = append(ids, a.Transaction)
		}
	}
	return ids
}

// Transactions partitions the schedule into one sub-schedule per transaction,
// preserving the global order within each partition. Partitions are ordered
// by the first appearance of their transaction id.
func (s Schedule) Transactions() []Schedule {
	ids := s.TransactionIDs()
	index := make(map[uint64]int, len(ids))
	for i, id := range ids {
		index[id] = i
	}

	partitions := make([]Schedule, len(ids))
	for _, a := range s {
		i := index[a.Transaction]
		partitions[i] = append(partitions[i], a)
	}
	return partitions
}

// DropAborts removes every action belonging to a transaction that aborts
// anywhere in the schedule, not just the actions after the abort.
func (s Schedule) DropAborts() Schedule {
	aborted := make(map[uint64]struct{})
	for _, a := range s {
		if a.Op == AbortOperation {
			aborted[a.Transaction] = struct{}{}
		}
	}

	kept := make(Schedule, 0, len(s))
	for _, a := range s {
		if _, ok := aborted[a.Transaction]; !ok {
			kept = append(kept, a)
		}
	}
	return kept
}

// AddCommits appends a synthetic commit for every transaction that has no
// commit or abort of its own, in first appearance order. Recovery analyses
// use this to give every transaction a determinate termination.
func (s Schedule) AddCommits() Schedule {
	ended := make(map[uint64]struct{})
	for _, a := range s {
		if a.Op == CommitOperation || a.Op == AbortOperation {
			ended[a.Transaction] = struct{}{}
		}
	}

	extended := make(Schedule, len(s), len(s)+len(ended))
	copy(extended, s)
	for _, id := range s.TransactionIDs() {
		if _, ok := ended[id]; !ok {
			extended = append(extended, Commit(id))
		}
	}
	return extended
}

// Number enumerates each action by its position within its own transaction,
// starting at zero, keeping the global order.
func (s Schedule) Number() []NumberedAction {
	next := make(map[uint64]int, len(s))
	numbered := make([]NumberedAction, len(s))
	for i, a := range s {
		numbered[i] = NumberedAction{
			Index:  next[a.Transaction],
			Action: a,
		}
		next[a.Transaction]++
	}
	return numbered
}

// firstReads maps each object to the transaction ids that perform a first
// read of it, a read with no earlier write to the object anywhere in the
// schedule, in order. Objects never read this way are absent.
func (s Schedule) firstReads() map[string][]uint64 {
	reads := make(map[string][]uint64)
	written := make(map[string]struct{})
	for _, a := range s {
		switch a.Op {
		case ReadOperation:
			if _, ok := written[a.Object]; !ok {
				reads[a.Object] = append(reads[a.Object], a.Transaction)
			}
		case WriteOperation:
			written[a.Object] = struct{}{}
		case CommitOperation, AbortOperation:
			// Terminations touch no object.
		default:
			panic(errors.Errorf("invalid operation %d", a.Op))
		}
	}
	return reads
}

// lastWriters maps each object to the transaction id performing the last
// write to it. Objects never written are absent.
func (s Schedule) lastWriters() map[string]uint64 {
	writers := make(map[string]uint64)
	for _, a := range s {
		if a.Op == WriteOperation {
			writers[a.Object] = a.Transaction
		}
	}
	return writers
}
