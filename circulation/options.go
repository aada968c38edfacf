package circulation

import (
	"time"

	"github.com/openshelf/library-circulation-go/journal"
)

// Option configures a Desk.
type Option func(*Desk)

// WithLogger sets a logger for circulation activity. Without it the desk is silent.
func WithLogger(logger Logger) Option {
	return func(d *Desk) {
		d.logger = logger
	}
}

// WithJournal sets the activity journal that receives every successful state change.
func WithJournal(j *journal.Journal) Option {
	return func(d *Desk) {
		d.journal = j
	}
}

// WithClock sets the time source used to stamp operations. Defaults to time.Now.
// Tests inject a fixed clock to make fine computation deterministic.
func WithClock(clock func() time.Time) Option {
	return func(d *Desk) {
		d.clock = clock
	}
}
