package host

import (
	"context"
	"sync"

	"github.com/backmassage/batchrename/internal/naming"
)

// Preview runs an operation without touching the namespace. Renames are
// recorded as claims layered over the inner host, so later Exists calls in
// the same run see the names earlier items would have taken and freed.
type Preview struct {
	inner  naming.Host
	claims *naming.Claims

	mu    sync.Mutex
	names map[string]string // ID → previewed name
}

// NewPreview wraps inner.
func NewPreview(inner naming.Host) *Preview {
	return &Preview{inner: inner, claims: naming.NewClaims(), names: make(map[string]string)}
}

func (p *Preview) Selection(ctx context.Context) ([]naming.Item, error) {
	items, err := p.inner.Selection(ctx)
	if err != nil {
		return nil, err
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	for i, it := range items {
		if name, ok := p.names[it.ID]; ok {
			items[i].Name = name
		}
	}
	return items, nil
}

func (p *Preview) Exists(ctx context.Context, name string) (bool, error) {
	_, claimed, vacated := p.claims.Lookup(name)
	switch {
	case claimed:
		return true, nil
	case vacated:
		return false, nil
	}
	return p.inner.Exists(ctx, name)
}

func (p *Preview) Rename(ctx context.Context, item naming.Item, newName string) error {
	if v, ok := p.inner.(Validator); ok {
		if err := v.ValidateName(newName); err != nil {
			return err
		}
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	old := item.Name
	if cur, ok := p.names[item.ID]; ok {
		old = cur
	}
	if newName == old {
		return nil
	}

	owner, claimed, vacated := p.claims.Lookup(newName)
	if claimed && owner != item.ID {
		return rejected("%q would already be taken", newName)
	}
	if !claimed && !vacated {
		taken, err := p.inner.Exists(ctx, newName)
		if err != nil {
			return err
		}
		if taken {
			return rejected("%q already exists", newName)
		}
	}

	p.claims.Claim(item.ID, newName)
	p.claims.Vacate(old)
	p.names[item.ID] = newName
	return nil
}

func (p *Preview) Warn(msg string) { p.inner.Warn(msg) }

// Planned returns the number of renames recorded so far.
func (p *Preview) Planned() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.names)
}
