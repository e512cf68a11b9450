package datagen

import (
	"hash/fnv"
	"math"
	"time"

	"github.com/brianvoe/gofakeit/v7"
)

// Sequence is one deterministic stream of pseudo-random draws. Every table
// builder owns its own Sequence, derived from the master seed plus a fixed
// per-table salt, so adding or reordering tables never shifts the values of
// the others.
//
// The first failed draw latches: later draws return zero values and Err
// reports the original failure. Builders stay free of per-draw error
// plumbing and dataset assembly checks Err once per table.
type Sequence struct {
	faker *gofakeit.Faker
	err   error
}

// newSequence derives a stream seed from the master seed and a salt.
func newSequence(seed int64, salt string) *Sequence {
	h := fnv.New64a()
	h.Write([]byte(salt))
	return &Sequence{faker: gofakeit.New(h.Sum64() ^ uint64(seed))}
}

// Err returns the first draw failure, if any.
func (s *Sequence) Err() error { return s.err }

func (s *Sequence) fail(err error) {
	if s.err == nil {
		s.err = err
	}
}

// IntBetween returns an integer uniformly drawn from [min, max] inclusive.
func (s *Sequence) IntBetween(min, max int) int {
	if s.err != nil {
		return 0
	}
	if max < min {
		s.fail(configErrorf("int_between", "max %d < min %d", max, min))
		return 0
	}
	return s.faker.Number(min, max)
}

// FloatBetween returns a float uniformly drawn from [min, max].
func (s *Sequence) FloatBetween(min, max float64) float64 {
	if s.err != nil {
		return 0
	}
	if max < min {
		s.fail(configErrorf("float_between", "max %v < min %v", max, min))
		return 0
	}
	return s.faker.Float64Range(min, max)
}

// Bool returns a fair coin flip.
func (s *Sequence) Bool() bool {
	if s.err != nil {
		return false
	}
	return s.faker.Bool()
}

// Pick returns one uniformly chosen element of options.
func (s *Sequence) Pick(options []string) string {
	if s.err != nil {
		return ""
	}
	if len(options) == 0 {
		s.fail(configErrorf("pick", "empty choice set"))
		return ""
	}
	return s.faker.RandomString(options)
}

// Sample returns k distinct elements of options, drawn without replacement.
func (s *Sequence) Sample(options []string, k int) []string {
	if s.err != nil {
		return nil
	}
	if k > len(options) {
		s.fail(configErrorf("sample", "k=%d exceeds %d candidates", k, len(options)))
		return nil
	}
	shuffled := make([]string, len(options))
	copy(shuffled, options)
	s.faker.ShuffleStrings(shuffled)
	return shuffled[:k]
}

// Date returns a date uniformly distributed over the whole-day range
// [start, end] inclusive. The time of day is always midnight UTC.
func (s *Sequence) Date(start, end time.Time) time.Time {
	if s.err != nil {
		return time.Time{}
	}
	if end.Before(start) {
		s.fail(configErrorf("date", "end %s before start %s",
			end.Format("2006-01-02"), start.Format("2006-01-02")))
		return time.Time{}
	}
	days := int(end.Sub(start).Hours() / 24)
	return start.AddDate(0, 0, s.faker.Number(0, days))
}

// Timestamp returns a timestamp uniformly distributed over the
// second-granularity range [start, end] inclusive.
func (s *Sequence) Timestamp(start, end time.Time) time.Time {
	if s.err != nil {
		return time.Time{}
	}
	if end.Before(start) {
		s.fail(configErrorf("timestamp", "end %s before start %s",
			end.Format(time.RFC3339), start.Format(time.RFC3339)))
		return time.Time{}
	}
	seconds := int(end.Sub(start) / time.Second)
	return start.Add(time.Duration(s.faker.Number(0, seconds)) * time.Second)
}

// Round1 truncates a float draw to one decimal place.
func Round1(v float64) float64 { return math.Round(v*10) / 10 }

// Round2 truncates a float draw to two decimal places.
func Round2(v float64) float64 { return math.Round(v*100) / 100 }

// Name returns a fake full name.
func (s *Sequence) Name() string {
	if s.err != nil {
		return ""
	}
	return s.faker.Name()
}

// Email returns a fake email address.
func (s *Sequence) Email() string {
	if s.err != nil {
		return ""
	}
	return s.faker.Email()
}

// Phone returns a fake formatted phone number.
func (s *Sequence) Phone() string {
	if s.err != nil {
		return ""
	}
	return s.faker.PhoneFormatted()
}

// Word returns a single fake word.
func (s *Sequence) Word() string {
	if s.err != nil {
		return ""
	}
	return s.faker.Word()
}

// Sentence returns a short fake sentence.
func (s *Sequence) Sentence() string {
	if s.err != nil {
		return ""
	}
	return s.faker.Sentence(8)
}

// Paragraph returns a short fake paragraph.
func (s *Sequence) Paragraph() string {
	if s.err != nil {
		return ""
	}
	return s.faker.Paragraph(1, 3, 8, " ")
}
