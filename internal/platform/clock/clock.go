package clock

import "time"

// Clock abstracts time to keep usecases deterministic in tests.
// All timestamps in the work log are UTC.
type Clock interface {
	Now() time.Time
}

type SystemClock struct{}

func (SystemClock) Now() time.Time {
	return time.Now().UTC()
}
