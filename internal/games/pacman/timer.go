package pacman

// Timer counts seconds toward Target while Running.
type Timer struct {
	Running bool
	Elapsed float64
	Target  float64
}

// Update advances a running timer. When Elapsed reaches Target the timer
// stops, Elapsed resets to 0 and Update reports true.
func (t *Timer) Update(dt float64) bool {
	if !t.Running {
		return false
	}
	t.Elapsed += dt
	if t.Elapsed >= t.Target {
		t.Elapsed = 0
		t.Running = false
		return true
	}
	return false
}

// Restart starts the timer from zero.
func (t *Timer) Restart() {
	t.Running = true
	t.Elapsed = 0
}

// Stop halts the timer and clears Elapsed.
func (t *Timer) Stop() {
	t.Running = false
	t.Elapsed = 0
}

// Progress returns Elapsed/Target, or 0 when Target is not positive.
func (t Timer) Progress() float64 {
	if t.Target <= 0 {
		return 0
	}
	return t.Elapsed / t.Target
}
