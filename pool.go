package proofdoc

import (
	"runtime"
	"sync"
)

// Pool sizing constants.
const (
	// MinPoolSize ensures at least one render slot is available.
	MinPoolSize = 1

	// MaxPoolSize caps concurrent browser processes to limit memory
	// (~200MB each).
	MaxPoolSize = 8

	// cpuDivisor leaves headroom for Chrome child processes.
	cpuDivisor = 2
)

// RendererPool bounds how many renders run at once for batch
// workloads. Renderers hold no shared browser state (each render
// launches and tears down its own instance), so the pool is purely an
// admission cap on concurrent Chrome processes. Renderers are created
// lazily on first acquire.
type RendererPool struct {
	size    int
	opts    []Option
	sem     chan *Renderer
	mu      sync.Mutex
	created int
}

// NewRendererPool creates a pool with capacity for n renderers, each
// constructed with opts.
func NewRendererPool(n int, opts ...Option) *RendererPool {
	if n < 1 {
		n = 1
	}

	return &RendererPool{
		size: n,
		opts: opts,
		sem:  make(chan *Renderer, n),
	}
}

// Acquire gets a renderer from the pool, creating one if needed.
// Blocks if all renderers are in use.
func (p *RendererPool) Acquire() (*Renderer, error) {
	// Try to get an existing renderer (non-blocking)
	select {
	case r := <-p.sem:
		return r, nil
	default:
	}

	// Check if we can create a new renderer
	p.mu.Lock()
	if p.created < p.size {
		p.created++
		p.mu.Unlock()

		r, err := NewRenderer(p.opts...)
		if err != nil {
			p.mu.Lock()
			p.created--
			p.mu.Unlock()
			return nil, err
		}
		return r, nil
	}
	p.mu.Unlock()

	// All renderers created, wait for one to be released
	return <-p.sem, nil
}

// Release returns a renderer to the pool.
func (p *RendererPool) Release(r *Renderer) {
	if r == nil {
		return
	}
	p.sem <- r
}

// Size returns the pool capacity.
func (p *RendererPool) Size() int {
	return p.size
}

// ResolvePoolSize determines the pool size to use.
// Priority: explicit workers > GOMAXPROCS-based calculation.
// Exported for use by servers and CLIs.
func ResolvePoolSize(workers int) int {
	// Explicit value takes priority
	if workers > 0 {
		return workers
	}

	// Auto-calculate based on GOMAXPROCS (adjusted by automaxprocs in containers)
	available := runtime.GOMAXPROCS(0)
	n := available / cpuDivisor

	if n < MinPoolSize {
		return MinPoolSize
	}
	if n > MaxPoolSize {
		return MaxPoolSize
	}
	return n
}
