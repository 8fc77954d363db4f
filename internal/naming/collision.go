package naming

import "sync"

// Claims tracks which item owns which name within a single run, on top of
// whatever the host already holds. A name can be claimed (taken by an owner)
// or vacated (explicitly freed, e.g. the old name of a renamed item). All
// methods are goroutine-safe.
type Claims struct {
	mu      sync.Mutex
	owners  map[string]string // name → owner item ID
	vacated map[string]bool
}

// NewClaims creates an empty tracker.
func NewClaims() *Claims {
	return &Claims{
		owners:  make(map[string]string),
		vacated: make(map[string]bool),
	}
}

// Claim records owner as the holder of name. It returns false, and changes
// nothing, when another owner already holds name. Claiming a name the owner
// already holds is a no-op that returns true.
func (c *Claims) Claim(owner, name string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if cur, ok := c.owners[name]; ok && cur != owner {
		return false
	}
	c.owners[name] = owner
	delete(c.vacated, name)
	return true
}

// Vacate marks name as free, whether it was claimed in this run or held by
// the host before it.
func (c *Claims) Vacate(name string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	delete(c.owners, name)
	c.vacated[name] = true
}

// Lookup reports what the run knows about name: claimed is true when an
// owner holds it, vacated is true when it was freed. Both false means the
// run has no opinion and the host decides.
func (c *Claims) Lookup(name string) (owner string, claimed, vacated bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if o, ok := c.owners[name]; ok {
		return o, true, false
	}
	return "", false, c.vacated[name]
}

// Len returns the number of names currently claimed.
func (c *Claims) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.owners)
}
