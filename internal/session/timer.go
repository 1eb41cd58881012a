package session

import "time"

// Stopwatch counts whole seconds of wall-clock time for a session. It runs
// from construction until Stop, whatever state the session is in.
type Stopwatch struct {
	seconds int
	running bool
}

func NewStopwatch() *Stopwatch {
	return &Stopwatch{running: true}
}

func (s *Stopwatch) Tick() {
	if s.running {
		s.seconds++
	}
}

func (s *Stopwatch) Stop()        { s.running = false }
func (s *Stopwatch) Elapsed() int { return s.seconds }

func (s *Stopwatch) Reset() {
	s.seconds = 0
	s.running = true
}

// Countdown is the per-question timer. A zero limit disables it (untimed
// quiz). Reset rearms it at the full limit when a new question starts.
type Countdown struct {
	limit     int
	remaining int
	running   bool
}

func NewCountdown(limit int) *Countdown {
	c := &Countdown{limit: limit}
	c.Reset()
	return c
}

func (c *Countdown) Disabled() bool { return c.limit <= 0 }

// Tick advances the countdown by one second and reports whether it just
// reached zero.
func (c *Countdown) Tick() bool {
	if c.Disabled() || !c.running || c.remaining <= 0 {
		return false
	}
	c.remaining--
	if c.remaining == 0 {
		c.running = false
		return true
	}
	return false
}

func (c *Countdown) Remaining() int { return c.remaining }
func (c *Countdown) Stop()          { c.running = false }

func (c *Countdown) Reset() {
	c.remaining = c.limit
	c.running = !c.Disabled()
}

// Runner owns the wall-clock ticker that drives a session's timers. Tests
// call Session.Tick directly instead.
type Runner struct {
	session  *Session
	interval time.Duration
	stop     chan struct{}
	done     chan struct{}
	started  bool
}

func NewRunner(s *Session) *Runner {
	return &Runner{
		session:  s,
		interval: time.Second,
		stop:     make(chan struct{}),
		done:     make(chan struct{}),
	}
}

func (r *Runner) Start() {
	if r.started {
		return
	}
	r.started = true
	go func() {
		defer close(r.done)
		ticker := time.NewTicker(r.interval)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				r.session.Tick()
				if r.session.State() == StateFinished {
					return
				}
			case <-r.stop:
				return
			}
		}
	}()
}

// Stop halts the ticker and waits for the driving goroutine to exit. It is
// safe to call repeatedly, or without a prior Start.
func (r *Runner) Stop() {
	select {
	case <-r.stop:
	default:
		close(r.stop)
	}
	if r.started {
		<-r.done
	}
}
