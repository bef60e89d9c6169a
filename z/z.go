package z

import (
	"github.com/pkg/errors"
)

// AssertTrue panics when the condition does not hold. Used for contract
// breaches that must never be converted into a wrong answer.
func AssertTrue(b bool) {
	if !b {
		panic(errors.Errorf("assert failed"))
	}
}

// AssertTruef is AssertTrue with a formatted explanation.
func AssertTruef(b bool, format string, args ...interface{}) {
	if !b {
		panic(errors.Errorf(format, args...))
	}
}
