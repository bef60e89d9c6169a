package schedules

import (
	"strings"

	"github.com/dgraph-io/ristretto"
	"github.com/pkg/errors"
)

type (
	// Properties is the full characterization of one schedule against the
	// five correctness criteria.
	Properties struct {
		ViewSerializable      bool
		ConflictSerializable  bool
		Recoverable           bool
		AvoidsCascadingAborts bool
		Strict                bool
	}

	// Classifier characterizes schedules, optionally memoizing results by
	// schedule digest. Memoization only ever skips recomputation, cached and
	// fresh answers are always identical, and a Classifier is safe for
	// concurrent use.
	Classifier struct {
		cache *ristretto.Cache
	}
)

// Characterize runs all five predicates against the schedule directly.
func Characterize(schedule Schedule) Properties {
	return Properties{
		ViewSerializable:      ViewSerializable(schedule),
		ConflictSerializable:  ConflictSerializable(schedule),
		Recoverable:           Recoverable(schedule),
		AvoidsCascadingAborts: AvoidsCascadingAborts(schedule),
		Strict:                Strict(schedule),
	}
}

// String renders the properties as T/F flags in the order view serializable,
// conflict serializable, recoverable, avoids cascading aborts, strict.
func (p Properties) String() string {
	flags := []bool{
		p.ViewSerializable,
		p.ConflictSerializable,
		p.Recoverable,
		p.AvoidsCascadingAborts,
		p.Strict,
	}
	parts := make([]string, len(flags))
	for i, flag := range flags {
		if flag {
			parts[i] = "T"
		} else {
			parts[i] = "F"
		}
	}
	return strings.Join(parts, " ")
}

// NewClassifier builds a classifier with the provided options.
func NewClassifier(opts Options) (*Classifier, error) {
	classifier := &Classifier{}
	if opts.CacheSize > 0 {
		cache, err := ristretto.NewCache(&ristretto.Config{
			NumCounters: opts.CacheSize * 10,
			MaxCost:     opts.CacheSize,
			BufferItems: 64,
		})
		if err != nil {
			return nil, errors.Wrap(err, "failed to create the classification cache")
		}
		classifier.cache = cache
	}
	return classifier, nil
}

// Classify characterizes a schedule, returning a memoized result when one is
// available for the schedule's digest.
func (c *Classifier) Classify(schedule Schedule) Properties {
	if c.cache == nil {
		return Characterize(schedule)
	}

	digest := schedule.Digest()
	if cached, ok := c.cache.Get(digest); ok {
		return cached.(Properties)
	}

	properties := Characterize(schedule)
	c.cache.Set(digest, properties, 1)
	return properties
}
