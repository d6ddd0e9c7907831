package provider

import (
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/Railly/tinte-sub004/internal/logger"
	tinteerrors "github.com/Railly/tinte-sub004/pkg/errors"
)

// ErrRegistryFrozen is returned by Register once Freeze has been called.
var ErrRegistryFrozen = errors.New("provider registry is frozen")

// Registry resolves providers by id. It is populated once at startup and
// frozen; lookups are safe for concurrent use.
type Registry struct {
	mu        sync.RWMutex
	providers map[string]Provider
	metadata  map[string]Metadata
	frozen    bool
	logger    *logger.Logger
}

// NewRegistry returns an empty registry.
func NewRegistry(log *logger.Logger) *Registry {
	return &Registry{
		providers: make(map[string]Provider),
		metadata:  make(map[string]Metadata),
		logger:    log,
	}
}

// Register adds p to the registry.
func (r *Registry) Register(p Provider) error {
	if p == nil {
		return fmt.Errorf("provider is nil")
	}

	meta := p.Metadata()
	if err := meta.Validate(); err != nil {
		r.logWarn(meta.ID, err)
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if r.frozen {
		r.logWarn(meta.ID, ErrRegistryFrozen)
		return ErrRegistryFrozen
	}
	if _, exists := r.providers[meta.ID]; exists {
		err := fmt.Errorf("provider '%s' already registered", meta.ID)
		r.logWarn(meta.ID, err)
		return err
	}

	r.providers[meta.ID] = p
	r.metadata[meta.ID] = meta
	return nil
}

// Freeze makes the registry read-only.
func (r *Registry) Freeze() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.frozen = true
}

// Frozen reports whether Freeze has been called.
func (r *Registry) Frozen() bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.frozen
}

// Get retrieves a provider by id.
func (r *Registry) Get(id string) (Provider, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.providers[id]
	if !ok {
		return nil, tinteerrors.NewUnknownProviderError(id)
	}
	return p, nil
}

// List returns the registered descriptors sorted by id.
func (r *Registry) List() []Metadata {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]Metadata, 0, len(r.metadata))
	for _, meta := range r.metadata {
		out = append(out, meta)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// IDs returns the registered provider ids in sorted order.
func (r *Registry) IDs() []string {
	list := r.List()
	ids := make([]string, 0, len(list))
	for _, meta := range list {
		ids = append(ids, meta.ID)
	}
	return ids
}

func (r *Registry) logWarn(id string, err error) {
	if r.logger == nil {
		return
	}
	r.logger.ForTarget(id, "").With("error", err.Error()).Warn("provider registration rejected")
}
