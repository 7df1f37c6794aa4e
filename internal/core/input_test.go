package core

import (
	"sync"
	"testing"
)

func TestEdgeDetectorHeldKey(t *testing.T) {
	d := NewEdgeDetector()
	held := NewInputFrame()
	held.Set(ActionFlap)

	// A held key for 10 consecutive frames produces exactly one edge
	edges := 0
	for i := 0; i < 10; i++ {
		if d.Rising(held)[ActionFlap] {
			edges++
		}
	}
	if edges != 1 {
		t.Errorf("Held key produced %d edges, expected 1", edges)
	}

	// Release then press again produces a new edge
	d.Rising(NewInputFrame())
	if !d.Rising(held)[ActionFlap] {
		t.Error("Re-pressing after release should produce an edge")
	}
}

func TestEdgeDetectorIndependentKeys(t *testing.T) {
	d := NewEdgeDetector()

	f1 := NewInputFrame()
	f1.Set(ActionFlap)
	d.Rising(f1)

	f2 := NewInputFrame()
	f2.Set(ActionFlap)
	f2.Set(ActionExit)
	edges := d.Rising(f2)

	if edges[ActionFlap] {
		t.Error("Flap is still held and must not re-trigger")
	}
	if !edges[ActionExit] {
		t.Error("Exit went down this frame and should trigger")
	}
}

func TestEdgeDetectorReset(t *testing.T) {
	d := NewEdgeDetector()
	held := NewInputFrame()
	held.Set(ActionStart)
	d.Rising(held)

	d.Reset()
	if !d.Rising(held)[ActionStart] {
		t.Error("After Reset a held key should count as a fresh press")
	}
}

func TestClickMailboxOverwrite(t *testing.T) {
	m := NewClickMailbox()

	if _, ok := m.Drain(); ok {
		t.Fatal("Empty mailbox should not yield a click")
	}

	m.Post(1, 2)
	m.Post(3, 4)

	c, ok := m.Drain()
	if !ok {
		t.Fatal("Expected a pending click")
	}
	if c.X != 3 || c.Y != 4 {
		t.Errorf("Drain() = %+v, expected the latest click {3 4}", c)
	}

	if _, ok := m.Drain(); ok {
		t.Error("Click must be consumed by a single Drain")
	}
}

func TestClickMailboxConcurrentPost(t *testing.T) {
	m := NewClickMailbox()

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				m.Post(float64(i), float64(j))
			}
		}(i)
	}
	wg.Wait()

	if _, ok := m.Drain(); !ok {
		t.Error("Expected one pending click after concurrent posts")
	}
	if _, ok := m.Drain(); ok {
		t.Error("Mailbox holds at most one click")
	}
}

func TestInputFrameCloneAndClear(t *testing.T) {
	f := NewInputFrame()
	f.Set(ActionFlap)
	f.Click = &Click{X: 5, Y: 6}

	clone := f.Clone()
	f.Clear()

	if f.Has(ActionFlap) || f.Click != nil {
		t.Error("Clear should drop actions and click")
	}
	if !clone.Has(ActionFlap) || clone.Click == nil || clone.Click.X != 5 {
		t.Error("Clone should be independent of the original")
	}
}

func TestActionString(t *testing.T) {
	if ActionFlap.String() != "Flap" || Action(99).String() != "Unknown" {
		t.Error("Unexpected action names")
	}
}
