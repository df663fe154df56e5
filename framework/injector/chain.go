package injector

// InjectionChain records the ordered sequence of abstractions visited during
// a single top-level Make() call, including every binding hop and every
// nested constructor dependency. It exists only for the duration of that
// call and is the sole cycle-detection mechanism.
//
// The chain is a value type: Add returns a new chain and never mutates the
// receiver, so a nested resolution can extend the chain without affecting
// its caller's copy.
type InjectionChain struct {
	chain []string
	seen  map[string]struct{}
}

// NewInjectionChain returns an empty chain.
func NewInjectionChain() InjectionChain {
	return InjectionChain{}
}

// Contains reports whether abstract has already been visited.
func (c InjectionChain) Contains(abstract string) bool {
	_, ok := c.seen[abstract]
	return ok
}

// Add returns a new chain with abstract appended.
// Callers must check Contains first; Add does not enforce uniqueness itself.
func (c InjectionChain) Add(abstract string) InjectionChain {
	chain := make([]string, len(c.chain), len(c.chain)+1)
	copy(chain, c.chain)
	chain = append(chain, abstract)

	seen := make(map[string]struct{}, len(c.seen)+1)
	for k := range c.seen {
		seen[k] = struct{}{}
	}
	seen[abstract] = struct{}{}

	return InjectionChain{chain: chain, seen: seen}
}

// Class returns the last abstraction added to the chain. After a completed
// binding chase this is the concrete class to instantiate.
func (c InjectionChain) Class() string {
	if len(c.chain) == 0 {
		return ""
	}
	return c.chain[len(c.chain)-1]
}

// Resolutions returns a copy of the visited abstractions, in order.
func (c InjectionChain) Resolutions() []string {
	out := make([]string, len(c.chain))
	copy(out, c.chain)
	return out
}

// Len returns the number of abstractions visited so far.
func (c InjectionChain) Len() int { return len(c.chain) }
