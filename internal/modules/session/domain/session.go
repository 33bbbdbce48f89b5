package domain

import "time"

// Session is one tracked activity interval. Start and End are UNIX
// timestamps in UTC seconds. End is nil while the session is running;
// the store holds at most one running session at a time.
type Session struct {
	Tag   string `json:"tag"`
	Start int64  `json:"start"`
	End   *int64 `json:"end"`
}

func (s Session) Active() bool {
	return s.End == nil
}

// Duration reports the completed length of the session.
// A running session has no duration yet.
func (s Session) Duration() (time.Duration, bool) {
	if s.End == nil {
		return 0, false
	}
	return time.Duration(*s.End-s.Start) * time.Second, true
}

// Elapsed is the running time of the session as of now.
func (s Session) Elapsed(now time.Time) time.Duration {
	end := now.Unix()
	if s.End != nil {
		end = *s.End
	}
	return time.Duration(end-s.Start) * time.Second
}

// ActiveIndex locates the unique running session, if any.
func ActiveIndex(sessions []Session) (int, bool) {
	for i, s := range sessions {
		if s.Active() {
			return i, true
		}
	}
	return -1, false
}
