package sorting

import (
	"errors"
	"fmt"
	"math"

	"golang.org/x/text/language"

	"github.com/katalvlaran/playersort/metrics"
	"github.com/katalvlaran/playersort/player"
)

// Sentinel errors returned by Sort and the strategy helpers.
var (
	// ErrAllocation is returned when the working copy, the merge buffers or
	// bucket growth would exceed the configured memory limit.
	ErrAllocation = errors.New("sorting: allocation exceeds memory limit")

	// ErrUnsupportedAlgorithm is returned for an unknown Algorithm value.
	ErrUnsupportedAlgorithm = errors.New("sorting: unsupported algorithm")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("sorting: invalid option supplied")
)

// Algorithm selects a sorting strategy.
type Algorithm int

const (
	// Exchange is the quadratic bubble sort.
	Exchange Algorithm = iota + 1

	// Merge is the top-down merge sort.
	Merge

	// Bucket is the first-letter distribution sort.
	Bucket
)

// Algorithms lists the supported strategies in menu order.
var Algorithms = []Algorithm{Exchange, Merge, Bucket}

// String returns the short lower-case name of a.
func (a Algorithm) String() string {
	switch a {
	case Exchange:
		return "exchange"
	case Merge:
		return "merge"
	case Bucket:
		return "bucket"
	default:
		return fmt.Sprintf("Algorithm(%d)", int(a))
	}
}

// Title returns the display name used in reports, e.g. "MERGE SORT".
func (a Algorithm) Title() string {
	switch a {
	case Exchange:
		return "BUBBLE SORT"
	case Merge:
		return "MERGE SORT"
	case Bucket:
		return "BUCKET SORT"
	default:
		return "UNKNOWN"
	}
}

// Slug returns the identifier used in output file names, e.g. "merge_sort".
func (a Algorithm) Slug() string {
	switch a {
	case Exchange:
		return "bubble_sort"
	case Merge:
		return "merge_sort"
	case Bucket:
		return "bucket_sort"
	default:
		return "unknown"
	}
}

// Valid reports whether a names a supported strategy.
func (a Algorithm) Valid() bool { return a >= Exchange && a <= Bucket }

// ParseAlgorithm accepts a strategy name ("exchange", "bubble", "merge",
// "bucket") or its menu number ("1".."3").
func ParseAlgorithm(s string) (Algorithm, error) {
	switch s {
	case "1", "exchange", "bubble":
		return Exchange, nil
	case "2", "merge":
		return Merge, nil
	case "3", "bucket":
		return Bucket, nil
	}

	return 0, fmt.Errorf("%w: %q", ErrUnsupportedAlgorithm, s)
}

// Defaults.
const (
	// DefaultBucketCapacity is the initial capacity of every bucket.
	DefaultBucketCapacity = 10
)

// DefaultLanguage is the collation locale used when none is given.
var DefaultLanguage = language.BrazilianPortuguese

// Options configures Sort.
type Options struct {
	// Language selects the collation table.
	Language language.Tag

	// BucketCapacity is the initial per-bucket capacity for Bucket. Must be ≥ 1.
	BucketCapacity int

	// MemoryLimit caps the estimated working memory of a run, in bytes.
	// Zero disables the cap.
	MemoryLimit int64

	// internal error recorded during option parsing
	err error
}

// Option configures Sort via functional arguments.
type Option func(*Options)

// DefaultOptions returns Options with pt-BR collation, bucket capacity 10
// and no memory limit.
func DefaultOptions() Options {
	return Options{
		Language:       DefaultLanguage,
		BucketCapacity: DefaultBucketCapacity,
		MemoryLimit:    0,
	}
}

// WithLanguage sets the collation language.
func WithLanguage(tag language.Tag) Option {
	return func(o *Options) {
		o.Language = tag
	}
}

// WithLocale parses a BCP 47 tag such as "pt-BR" and sets it as the collation language.
// An unparsable tag is reported as ErrOptionViolation.
func WithLocale(s string) Option {
	return func(o *Options) {
		tag, err := language.Parse(s)
		if err != nil {
			o.err = fmt.Errorf("%w: locale %q: %v", ErrOptionViolation, s, err)
			return
		}
		o.Language = tag
	}
}

// WithBucketCapacity sets the initial capacity of every bucket.
//
//	c ≥ 1: use c
//	c < 1: invalid option → ErrOptionViolation
func WithBucketCapacity(c int) Option {
	return func(o *Options) {
		if c < 1 {
			o.err = fmt.Errorf("%w: BucketCapacity must be positive (%d)", ErrOptionViolation, c)
			return
		}
		o.BucketCapacity = c
	}
}

// WithMemoryLimit caps the estimated working memory of a run.
//
//	n > 0: limit to n bytes
//	n == 0: explicit no limit
//	n < 0: invalid option → ErrOptionViolation
func WithMemoryLimit(n int64) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: MemoryLimit cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.MemoryLimit = n
	}
}

// budget returns the memory limit in bytes, or +Inf when there is none.
func (o Options) budget() float64 {
	if o.MemoryLimit == 0 {
		return math.Inf(1)
	}

	return float64(o.MemoryLimit)
}

// Result holds the sorted clone and the metrics of the run that produced it.
type Result struct {
	Records []player.Record
	Report  metrics.Report
}
