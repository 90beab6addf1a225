package components

import (
	"sort"
	"time"

	"github.com/yohamta/donburi"
)

// Timer is a one-shot callback scheduled on a ClockData.
type Timer struct {
	deadline time.Duration
	seq      uint64
	fn       func()
	done     bool
}

// Stop cancels the timer. It returns false if the timer already fired or
// was stopped.
func (t *Timer) Stop() bool {
	if t == nil || t.done {
		return false
	}
	t.done = true
	return true
}

// Pending reports whether the timer is still waiting to fire.
func (t *Timer) Pending() bool {
	return t != nil && !t.done
}

// ClockData is the simulation clock. It only moves when Advance is called,
// once per tick.
type ClockData struct {
	Now   time.Duration
	Ticks int

	timers []*Timer
	seq    uint64
}

// AfterFunc runs fn on the first Advance that reaches now+d. Timers due on
// the same Advance fire in deadline order, then in the order they were
// scheduled.
func (c *ClockData) AfterFunc(d time.Duration, fn func()) *Timer {
	if d < 0 {
		d = 0
	}
	c.seq++
	t := &Timer{deadline: c.Now + d, seq: c.seq, fn: fn}
	c.timers = append(c.timers, t)
	return t
}

// Advance moves the clock forward by dt and fires due timers. Timers
// scheduled from a callback wait for the next Advance.
func (c *ClockData) Advance(dt time.Duration) {
	c.Now += dt
	c.Ticks++

	var due []*Timer
	keep := c.timers[:0]
	for _, t := range c.timers {
		switch {
		case t.done:
		case t.deadline <= c.Now:
			due = append(due, t)
		default:
			keep = append(keep, t)
		}
	}
	for i := len(keep); i < len(c.timers); i++ {
		c.timers[i] = nil
	}
	c.timers = keep

	sort.Slice(due, func(i, j int) bool {
		if due[i].deadline != due[j].deadline {
			return due[i].deadline < due[j].deadline
		}
		return due[i].seq < due[j].seq
	})
	for _, t := range due {
		if t.done {
			continue
		}
		t.done = true
		t.fn()
	}
}

// Pending returns the number of timers waiting to fire.
func (c *ClockData) Pending() int {
	n := 0
	for _, t := range c.timers {
		if !t.done {
			n++
		}
	}
	return n
}

var Clock = donburi.NewComponentType[ClockData]()
