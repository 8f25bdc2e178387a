package chillerlog

import "time"

func SetClock(s Service, now func() time.Time) {
	s.(*service).now = now
}
