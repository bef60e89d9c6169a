package schedules

import (
	"github.com/pkg/errors"
)

// ViewSerializable reports whether the schedule is view equivalent to some
// serial schedule over the same transactions. Aborted transactions are
// ignored.
//
// Conflict serializability implies view serializability, so that cheap check
// runs first. A schedule that is not conflict serializable can only be view
// serializable if some transaction performs a blind write, a write to an
// object it has not itself read, so the absence of blind writes settles the
// answer without searching. Only when both shortcuts fail does this fall back
// to testing every permutation of the transactions, which is factorial in the
// transaction count and fine at teaching scale.
func ViewSerializable(schedule Schedule) bool {
	schedule = schedule.DropAborts()

	if ConflictSerializable(schedule) {
		return true
	}

	if !hasBlindWrite(schedule) {
		return false
	}

	// TODO (elliotcourant) prune permutations that already disagree with the
	//  original on the first read of some object.
	return anyPermutation(schedule.Transactions(), func(partitions []Schedule) bool {
		return ViewEquivalent(concat(partitions), schedule)
	})
}

func hasBlindWrite(schedule Schedule) bool {
	for _, transaction := range schedule.Transactions() {
		objectsRead := make(map[string]struct{})
		for _, a := range transaction {
			switch a.Op {
			case WriteOperation:
				if _, ok := objectsRead[a.Object]; !ok {
					return true
				}
			case ReadOperation:
				objectsRead[a.Object] = struct{}{}
			case CommitOperation, AbortOperation:
				// Terminations touch no object.
			default:
				panic(errors.Errorf("invalid operation %d", a.Op))
			}
		}
	}
	return false
}

func concat(partitions []Schedule) Schedule {
	total := 0
	for _, p := range partitions {
		total += len(p)
	}
	flat := make(Schedule, 0, total)
	for _, p := range partitions {
		flat = append(flat, p...)
	}
	return flat
}

// anyPermutation reports whether fn holds for some permutation of partitions.
// The slice is permuted in place and restored between calls, fn must not hold
// on to its argument.
func anyPermutation(partitions []Schedule, fn func([]Schedule) bool) bool {
	var permute func(k int) bool
	permute = func(k int) bool {
		if k == len(partitions) {
			return fn(partitions)
		}
		for i := k; i < len(partitions); i++ {
			partitions[k], partitions[i] = partitions[i], partitions[k]
			if permute(k + 1) {
				return true
			}
			partitions[k], partitions[i] = partitions[i], partitions[k]
		}
		return false
	}
	return permute(0)
}
