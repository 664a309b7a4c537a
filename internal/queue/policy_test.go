// internal/queue/policy_test.go
package queue

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"pgregory.net/rapid"
)

func TestPolicyAdvance(t *testing.T) {
	var p Policy

	s := p.Advance(State{})
	assert.Equal(t, 1, s.Length)
	assert.Equal(t, 5, s.WaitMinutes)

	s = p.Advance(s)
	assert.Equal(t, 2, s.Length)
	assert.Equal(t, 10, s.WaitMinutes)
}

func TestPolicyAdvanceNTimes(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		n := rapid.IntRange(0, 10000).Draw(t, "n")

		var p Policy
		s := State{}
		for i := 0; i < n; i++ {
			s = p.Advance(s)
		}

		if s.Length != n {
			t.Fatalf("after %d arrivals length = %d", n, s.Length)
		}
		if s.WaitMinutes != 5*n {
			t.Fatalf("after %d arrivals wait = %d", n, s.WaitMinutes)
		}
	})
}

func TestPolicyWaitFor(t *testing.T) {
	var p Policy
	assert.Equal(t, 0, p.WaitFor(0))
	assert.Equal(t, 15, p.WaitFor(3))
	assert.Equal(t, 2500, p.WaitFor(500))
}
