package progress

import (
	"math"

	"github.com/safedep/gauge/core/template"
)

// DefaultFuzzyFormat is the format string used by NewFuzzy.
const DefaultFuzzyFormat = "Status: [$(bar)] $(status)"

// Bucket is one coarse status level of a fuzzy bar.
type Bucket struct {
	Message string
	Color   Color
}

// DefaultBuckets returns the status levels used by NewFuzzy. The last bucket
// is reserved for overflow.
func DefaultBuckets() []Bucket {
	return []Bucket{
		{Message: "Little Progress", Color: "blue"},
		{Message: "Halfway there", Color: "yellow"},
		{Message: "Nearly Done", Color: "green"},
		{Message: "Overflow!", Color: "red"},
	}
}

// NewFuzzy builds a bar that reports coarse status buckets instead of an
// exact percentage. Only $(bar), $(status) and $(current) are recognised in
// its format string.
//
// With n buckets, overflow selects the last one and any other value selects
// floor(progress*(n-1)) clamped to [0, n-2].
func NewFuzzy(max float64, opts ...Option) (*Bar, error) {
	base := []Option{
		WithFormat(DefaultFuzzyFormat),
		WithBuckets(DefaultBuckets()...),
	}
	base = append(base, opts...)
	base = append(base, withOperations(template.OpBar, template.OpStatus, template.OpCurrent))

	return New(max, base...)
}

// bucketIndex returns the bucket selected for the current value.
func (b *Bar) bucketIndex() int {
	n := len(b.buckets)
	if n == 1 {
		return 0
	}
	if b.current > b.max {
		return n - 1
	}

	idx := int(math.Floor(b.Progress() * float64(n-1)))
	if idx < 0 {
		return 0
	}
	if idx > n-2 {
		return n - 2
	}
	return idx
}

func (b *Bar) renderBucket() string {
	bucket := b.buckets[b.bucketIndex()]
	if bucket.Color == "" || bucket.Message == "" {
		return bucket.Message
	}
	return b.output.Colorize(bucket.Message, bucket.Color)
}
