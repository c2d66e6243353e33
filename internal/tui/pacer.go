package tui

import "time"

// maxLagFrames is how far behind schedule the pacer may fall before it
// stops catching up and restarts the schedule from now.
const maxLagFrames = 10

// pacer keeps frames on a fixed schedule. A late frame shortens the next
// wait, or drops it entirely when the frame overran the interval.
type pacer struct {
	interval time.Duration
	next     time.Time
}

func newPacer(interval time.Duration) *pacer {
	if interval <= 0 {
		interval = 10 * time.Millisecond
	}
	return &pacer{interval: interval}
}

// wait returns how long to sleep before the next frame.
func (p *pacer) wait(now time.Time) time.Duration {
	if p.next.IsZero() {
		p.next = now
	}
	p.next = p.next.Add(p.interval)
	d := p.next.Sub(now)
	if d >= 0 {
		return d
	}
	if -d > maxLagFrames*p.interval {
		p.next = now
	}
	return 0
}
