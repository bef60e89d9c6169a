package schedules

import (
	"encoding/binary"
	"fmt"

	"github.com/dgryski/go-farm"
	"github.com/pkg/errors"
)

// Operation is the closed set of things a transaction can do within a
// schedule. The zero value is deliberately not a valid operation so that an
// uninitialized action is caught the first time anything looks at it.
type Operation uint8

const (
	// ReadOperation reads a single object.
	ReadOperation Operation = iota + 1
	// WriteOperation writes a single object.
	WriteOperation
	// CommitOperation ends a transaction, keeping its writes.
	CommitOperation
	// AbortOperation ends a transaction, rolling its writes back.
	AbortOperation
)

type (
	// Action is one step of a schedule: an operation tagged with the
	// transaction performing it and, for reads and writes, the object acted
	// on. Actions are plain comparable values, equality and map keys are
	// structural.
	Action struct {
		Op          Operation
		Transaction uint64
		Object      string
	}
)

// Read builds a read of object by transaction txn.
func Read(txn uint64, object string) Action {
	return Action{
		Op:          ReadOperation,
		Transaction: txn,
		Object:      object,
	}
}

// Write builds a write of object by transaction txn.
func Write(txn uint64, object string) Action {
	return Action{
		Op:          WriteOperation,
		Transaction: txn,
		Object:      object,
	}
}

// Commit builds a commit of transaction txn.
func Commit(txn uint64) Action {
	return Action{
		Op:          CommitOperation,
		Transaction: txn,
	}
}

// Abort builds an abort of transaction txn.
func Abort(txn uint64) Action {
	return Action{
		Op:          AbortOperation,
		Transaction: txn,
	}
}

// String renders the action in the notation used throughout concurrency
// control literature, R_1(A), W_2(X), Commit_1, Abort_2. Panics on an
// operation outside the four known kinds.
func (a Action) String() string {
	switch a.Op {
	case ReadOperation:
		return fmt.Sprintf("R_%d(%s)", a.Transaction, a.Object)
	case WriteOperation:
		return fmt.Sprintf("W_%d(%s)", a.Transaction, a.Object)
	case CommitOperation:
		return fmt.Sprintf("Commit_%d", a.Transaction)
	case AbortOperation:
		return fmt.Sprintf("Abort_%d", a.Transaction)
	default:
		panic(errors.Errorf("invalid operation %d", a.Op))
	}
}

// Fingerprint returns a structural 64 bit hash of the action. Two actions
// have the same fingerprint exactly when they compare equal, modulo hash
// collisions over the object name.
func (a Action) Fingerprint() uint64 {
	buf := make([]byte, 9+len(a.Object))
	buf[0] = byte(a.Op)
	binary.BigEndian.PutUint64(buf[1:9], a.Transaction)
	copy(buf[9:], a.Object)
	return farm.Fingerprint64(buf)
}
