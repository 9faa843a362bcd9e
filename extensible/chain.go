package extensible

import "sync"

// Chain is the ordered list of interceptors installed at one planner hook
// point. Run invokes them in installation order, so every interceptor always
// observes the effects of all interceptors installed before it. Interceptors
// are only ever appended; there is no uninstall.
type Chain[A any] struct {
	mu    sync.RWMutex
	hooks []func(A)
}

// Install appends h to the chain.
func (c *Chain[A]) Install(h func(A)) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.hooks = append(c.hooks, h)
}

// Run invokes every installed interceptor with args.
func (c *Chain[A]) Run(args A) {
	c.mu.RLock()
	hooks := c.hooks
	c.mu.RUnlock()

	for _, h := range hooks {
		h(args)
	}
}

// Len returns the number of installed interceptors.
func (c *Chain[A]) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.hooks)
}
