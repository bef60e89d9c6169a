package schedules

type (
	// Options configure a Classifier.
	Options struct {
		// CacheSize is the maximum number of schedules whose classification
		// results are memoized. Zero disables the cache entirely, every call
		// then recomputes from scratch.
		CacheSize int64
	}
)

// DefaultOptions memoize a modest number of schedules, plenty for the
// exercise sheet sizes this engine targets.
var DefaultOptions = Options{
	CacheSize: 1024,
}
