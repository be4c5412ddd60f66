package countdown

import (
	"fmt"
	"sync"
	"time"
)

// Countdown decrements once per tick and calls onZero exactly once when it
// reaches zero, unless stopped first.
type Countdown struct {
	mu        sync.Mutex
	remaining int
	tick      time.Duration
	timer     *time.Timer
	onZero    func()
	done      bool
}

func Start(seconds int, tick time.Duration, onZero func()) *Countdown {
	c := &Countdown{
		remaining: seconds,
		tick:      tick,
		onZero:    onZero,
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if seconds <= 0 {
		c.remaining = 0
		c.timer = time.AfterFunc(0, c.fire)
		return c
	}
	c.timer = time.AfterFunc(tick, c.step)
	return c
}

func (c *Countdown) step() {
	c.mu.Lock()
	if c.done {
		c.mu.Unlock()
		return
	}
	c.remaining--
	if c.remaining > 0 {
		c.timer = time.AfterFunc(c.tick, c.step)
		c.mu.Unlock()
		return
	}
	c.mu.Unlock()
	c.fire()
}

func (c *Countdown) fire() {
	c.mu.Lock()
	if c.done {
		c.mu.Unlock()
		return
	}
	c.done = true
	c.remaining = 0
	c.mu.Unlock()

	if c.onZero != nil {
		c.onZero()
	}
}

// Stop cancels the countdown. It returns false if onZero already ran or the
// countdown was stopped before.
func (c *Countdown) Stop() bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.done {
		return false
	}
	c.done = true
	c.timer.Stop()
	return true
}

func (c *Countdown) Remaining() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.remaining
}

// Format renders seconds as MM:SS.
func Format(seconds int) string {
	if seconds < 0 {
		seconds = 0
	}
	return fmt.Sprintf("%02d:%02d", seconds/60, seconds%60)
}
