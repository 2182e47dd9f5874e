package core

import (
	"testing"
	"time"
)

type fakeClock struct{ t time.Time }

func (c *fakeClock) now() time.Time { return c.t }

func (c *fakeClock) advance(d time.Duration) { c.t = c.t.Add(d) }

func newTestStep(tps int) (*FixedStep, *fakeClock) {
	clock := &fakeClock{t: time.Unix(1000, 0)}
	fs := NewFixedStep(tps)
	fs.now = clock.now
	return fs, clock
}

func TestFixedStepFirstCallSteps(t *testing.T) {
	fs, _ := newTestStep(10)
	if !fs.ShouldStep() {
		t.Fatal("first call should step immediately")
	}
	if fs.ShouldStep() {
		t.Fatal("no time elapsed, second call should wait")
	}
}

func TestFixedStepPacing(t *testing.T) {
	fs, clock := newTestStep(10)
	fs.ShouldStep()

	clock.advance(50 * time.Millisecond)
	if fs.ShouldStep() {
		t.Fatal("half a tick should not step")
	}
	clock.advance(50 * time.Millisecond)
	if !fs.ShouldStep() {
		t.Fatal("a full tick should step")
	}
}

func TestFixedStepCapsBacklog(t *testing.T) {
	fs, clock := newTestStep(10)
	fs.ShouldStep()
	clock.advance(10 * time.Second)
	steps := 0
	for fs.ShouldStep() {
		steps++
		if steps > 10 {
			break
		}
	}
	if steps != 4 {
		t.Fatalf("stall produced %d catch-up steps, want 4", steps)
	}
}

func TestSetTPSDefaults(t *testing.T) {
	fs := NewFixedStep(0)
	if fs.TPS() != 60 {
		t.Fatalf("TPS = %d, want 60", fs.TPS())
	}
	fs.SetTPS(25)
	if fs.TPS() != 25 {
		t.Fatalf("TPS = %d, want 25", fs.TPS())
	}
}
