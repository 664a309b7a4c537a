// internal/queue/policy.go
package queue

// minutesPerVisitor is the assumed service time per person in line. The
// wait estimate is simply length times this constant; there is no
// service-rate measurement or historical smoothing behind it.
const minutesPerVisitor = 5

// Policy turns arrival events into new queue states. It is isolated here
// so a calibrated model could replace the fixed constant without touching
// storage or transport code.
type Policy struct{}

// Advance applies one arrival: length grows by one and the wait estimate
// is recomputed from the new length.
func (Policy) Advance(s State) State {
	s.Length++
	s.WaitMinutes = s.Length * minutesPerVisitor
	return s
}

// WaitFor reports the estimated wait for a given queue length.
func (Policy) WaitFor(length int) int {
	return length * minutesPerVisitor
}
