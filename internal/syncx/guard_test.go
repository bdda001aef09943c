package syncx

import (
	"sync"
	"testing"
)

func TestGuardGetSet(t *testing.T) {
	g := NewGuard(12) // frames processed

	if got := g.Get(); got != 12 {
		t.Errorf("Get() = %d, want 12", got)
	}

	g.Set(240)
	if got := g.Get(); got != 240 {
		t.Errorf("Get() after Set = %d, want 240", got)
	}
}

func TestGuardSwap(t *testing.T) {
	g := NewGuard("Active")

	old := g.Swap("Drowsy")
	if old != "Active" {
		t.Errorf("Swap returned %q, want %q", old, "Active")
	}
	if got := g.Get(); got != "Drowsy" {
		t.Errorf("Get() after Swap = %q, want %q", got, "Drowsy")
	}
}

func TestGuardRead(t *testing.T) {
	g := NewGuard([]float64{0.31, 0.29, 0.12}) // recent EAR samples

	result := g.Read(func(v []float64) any {
		return len(v)
	})

	if result != 3 {
		t.Errorf("Read() = %v, want 3", result)
	}
}

func TestGuardWrite(t *testing.T) {
	type snapshot struct{ faceCount int }
	g := NewGuard(snapshot{})

	g.Write(func(s *snapshot) {
		s.faceCount = 1
	})

	if got := g.Get().faceCount; got != 1 {
		t.Errorf("Get().faceCount = %d, want 1", got)
	}
}

func TestGuardUpdate(t *testing.T) {
	g := NewGuard(10)

	result := g.Update(func(v *int) any {
		old := *v
		*v = 20
		return old
	})

	if result != 10 {
		t.Errorf("Update returned %v, want 10", result)
	}
	if got := g.Get(); got != 20 {
		t.Errorf("Get() = %d, want 20", got)
	}
}

func TestGuardConcurrentSafety(t *testing.T) {
	// Frame loop writes while WebSocket handlers read.
	g := NewGuard(0)
	var wg sync.WaitGroup

	for i := 0; i < 100; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			g.Write(func(v *int) {
				*v++
			})
		}()
	}

	for i := 0; i < 100; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = g.Get()
		}()
	}

	wg.Wait()

	if got := g.Get(); got != 100 {
		t.Errorf("Get() = %d, want 100", got)
	}
}

func TestGuardWithStruct(t *testing.T) {
	type state struct {
		status          string
		inactiveSeconds float64
	}

	g := NewGuard(state{status: "Active"})

	g.Write(func(s *state) {
		s.status = "Not Awake"
		s.inactiveSeconds = 11.5
	})

	got := g.Get()
	if got.status != "Not Awake" || got.inactiveSeconds != 11.5 {
		t.Errorf("Get() = %+v, want {Not Awake, 11.5}", got)
	}
}
