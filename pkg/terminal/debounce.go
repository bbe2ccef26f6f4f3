package terminal

import (
	"sync"
)

// Debouncer turns noisy samples of a momentary input into single presses
type Debouncer struct {
	sync.Mutex

	samples int
	count   int
	latched bool
}

// NewDebouncer returns a debouncer that reports a press after samples
// consecutive pressed samples
func NewDebouncer(samples int) *Debouncer {
	if samples <= 0 {
		samples = 1
	}
	return &Debouncer{samples: samples}
}

// Sample feeds one reading and returns true exactly once per press
func (d *Debouncer) Sample(pressed bool) bool {
	d.Lock()
	defer d.Unlock()

	if !pressed {
		d.count = 0
		d.latched = false
		return false
	}

	if d.latched {
		return false
	}

	d.count++
	if d.count >= d.samples {
		d.latched = true
		return true
	}
	return false
}
