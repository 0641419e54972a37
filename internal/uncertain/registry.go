package uncertain

import (
	"fmt"
	"sync"
	"sync/atomic"
)

// VarID identifies an atomic uncertain variable. ID 0 is reserved; the first
// registered variable receives ID 1.
type VarID uint64

// VarRegistry stores the original standard deviation of every atomic variable
// ever registered. Derived values hold partial derivatives keyed by VarID and
// resolve them here when computing their own standard deviation.
//
// Registration and lookup are safe for concurrent use. Entries are never
// removed except by Reset, and a registry grows for the life of the process;
// there is no eviction policy.
type VarRegistry struct {
	nextID atomic.Uint64
	mu     sync.RWMutex
	sigmas map[VarID]float64
}

// NewVarRegistry creates an empty registry. Most callers use the package
// default via New; isolated registries exist so tests do not have to share
// global state.
func NewVarRegistry() *VarRegistry {
	r := &VarRegistry{sigmas: make(map[VarID]float64)}
	r.nextID.Store(1)
	return r
}

// Register allocates the next ID and stores stddev as the variable's original
// deviation. The caller must have validated stddev >= 0.
func (r *VarRegistry) Register(stddev float64) VarID {
	id := VarID(r.nextID.Add(1) - 1)
	r.mu.Lock()
	r.sigmas[id] = stddev
	r.mu.Unlock()
	return id
}

// Lookup returns the original standard deviation stored for id. An unknown ID
// means a derivative map references a variable this registry never issued (or
// that Reset cleared while values were still alive) — a bookkeeping bug in the
// caller, not a recoverable condition.
func (r *VarRegistry) Lookup(id VarID) (float64, error) {
	r.mu.RLock()
	sigma, ok := r.sigmas[id]
	r.mu.RUnlock()
	if !ok {
		return 0, fmt.Errorf("%w: id %d", ErrUnknownVariable, id)
	}
	return sigma, nil
}

// Len reports the number of registered variables.
func (r *VarRegistry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.sigmas)
}

// Reset clears all entries and restarts ID allocation from 1. Test use only:
// any Value created before the reset still carries the old IDs, which will
// collide with newly issued ones.
func (r *VarRegistry) Reset() {
	r.mu.Lock()
	r.sigmas = make(map[VarID]float64)
	r.mu.Unlock()
	r.nextID.Store(1)
}

var (
	defaultRegistry     *VarRegistry
	defaultRegistryOnce sync.Once
)

// Default returns the process-wide registry used by New and Const.
func Default() *VarRegistry {
	defaultRegistryOnce.Do(func() {
		defaultRegistry = NewVarRegistry()
	})
	return defaultRegistry
}
