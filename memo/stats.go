package memo

import "github.com/rs/zerolog"

type Stats struct {
	Entries int
	Hits    int
	Misses  int
	Writes  int
}

// HitRate is the share of lookups that found a record.
func (s Stats) HitRate() float64 {
	if s.Hits+s.Misses == 0 {
		return 0
	}
	return float64(s.Hits) / float64(s.Hits+s.Misses)
}

type reporter interface {
	Stats() Stats
}

// Report logs the statistics of a table at debug level. Tables without
// statistics are skipped.
func Report(logger zerolog.Logger, name string, table any) {
	r, ok := table.(reporter)
	if !ok {
		return
	}
	s := r.Stats()
	logger.Debug().
		Str("table", name).
		Int("entries", s.Entries).
		Int("hits", s.Hits).
		Int("misses", s.Misses).
		Int("writes", s.Writes).
		Float64("hit_rate", s.HitRate()).
		Msg("memo table")
}
