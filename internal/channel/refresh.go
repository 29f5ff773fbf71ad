package channel

// RefreshSignal is a monotonically increasing invalidation counter scoped to
// one channel-view lifetime. Bumping it changes the controller's request key,
// which re-runs the full fetch sequence and invalidates every response still
// in flight for the previous key.
type RefreshSignal struct {
	n int
}

// Bump increments the counter and returns the new value.
func (s *RefreshSignal) Bump() int {
	s.n++
	return s.n
}

// Current returns the counter without incrementing it.
func (s *RefreshSignal) Current() int {
	return s.n
}
