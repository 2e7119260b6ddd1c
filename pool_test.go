package proofdoc

import (
	"runtime"
	"testing"
)

func TestNewRendererPoolClampsSize(t *testing.T) {
	tests := []struct {
		name string
		n    int
		want int
	}{
		{"zero", 0, 1},
		{"negative", -3, 1},
		{"positive", 4, 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewRendererPool(tt.n)
			if got := p.Size(); got != tt.want {
				t.Errorf("Size() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestPoolAcquireRelease(t *testing.T) {
	p := NewRendererPool(2)

	r1, err := p.Acquire()
	if err != nil {
		t.Fatalf("Acquire() error = %v", err)
	}
	if r1 == nil {
		t.Fatal("Acquire() returned nil renderer")
	}

	r2, err := p.Acquire()
	if err != nil {
		t.Fatalf("Acquire() error = %v", err)
	}
	if r1 == r2 {
		t.Error("second Acquire() returned the same renderer while first is held")
	}

	p.Release(r1)
	r3, err := p.Acquire()
	if err != nil {
		t.Fatalf("Acquire() after Release error = %v", err)
	}
	if r3 != r1 {
		t.Error("Acquire() should reuse the released renderer")
	}

	p.Release(r2)
	p.Release(r3)
}

func TestPoolReleaseNil(t *testing.T) {
	p := NewRendererPool(1)
	// Must not panic or occupy a slot.
	p.Release(nil)

	r, err := p.Acquire()
	if err != nil {
		t.Fatalf("Acquire() error = %v", err)
	}
	if r == nil {
		t.Fatal("Acquire() returned nil renderer")
	}
}

func TestPoolLazyCreation(t *testing.T) {
	p := NewRendererPool(4)
	if p.created != 0 {
		t.Errorf("created = %d before first Acquire, want 0", p.created)
	}

	r, err := p.Acquire()
	if err != nil {
		t.Fatalf("Acquire() error = %v", err)
	}
	if p.created != 1 {
		t.Errorf("created = %d after one Acquire, want 1", p.created)
	}
	p.Release(r)
}

func TestResolvePoolSize(t *testing.T) {
	if got := ResolvePoolSize(3); got != 3 {
		t.Errorf("ResolvePoolSize(3) = %d, want explicit value", got)
	}

	got := ResolvePoolSize(0)
	if got < MinPoolSize || got > MaxPoolSize {
		t.Errorf("ResolvePoolSize(0) = %d, want within [%d, %d]", got, MinPoolSize, MaxPoolSize)
	}

	want := runtime.GOMAXPROCS(0) / 2
	if want < MinPoolSize {
		want = MinPoolSize
	}
	if want > MaxPoolSize {
		want = MaxPoolSize
	}
	if got != want {
		t.Errorf("ResolvePoolSize(0) = %d, want %d for GOMAXPROCS=%d", got, want, runtime.GOMAXPROCS(0))
	}
}
