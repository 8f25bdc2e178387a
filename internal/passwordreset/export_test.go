package passwordreset

import "time"

func SetClock(s Service, now func() time.Time) {
	s.(*service).now = now
}

// SendMailInline makes mail dispatch synchronous so tests can assert on it.
func SendMailInline(s Service) {
	s.(*service).dispatch = func(f func()) { f() }
}
