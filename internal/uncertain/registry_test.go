package uncertain

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVarRegistry(t *testing.T) {
	t.Run("IDs start at one and increase", func(t *testing.T) {
		reg := NewVarRegistry()
		first := reg.Register(0.1)
		second := reg.Register(0.2)

		assert.Equal(t, VarID(1), first)
		assert.Equal(t, VarID(2), second)
		assert.Equal(t, 2, reg.Len())
	})

	t.Run("Lookup returns stored deviation", func(t *testing.T) {
		reg := NewVarRegistry()
		id := reg.Register(0.25)

		sigma, err := reg.Lookup(id)
		require.NoError(t, err)
		assert.Equal(t, 0.25, sigma)
	})

	t.Run("Lookup of unknown ID fails", func(t *testing.T) {
		reg := NewVarRegistry()

		_, err := reg.Lookup(VarID(42))
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrUnknownVariable)
	})

	t.Run("Reset clears entries and restarts allocation", func(t *testing.T) {
		reg := NewVarRegistry()
		reg.Register(0.1)
		reg.Register(0.2)
		reg.Reset()

		assert.Equal(t, 0, reg.Len())
		assert.Equal(t, VarID(1), reg.Register(0.3))
	})

	t.Run("Concurrent registration loses no entries", func(t *testing.T) {
		reg := NewVarRegistry()
		const goroutines = 16
		const perGoroutine = 200

		var wg sync.WaitGroup
		ids := make([][]VarID, goroutines)
		for g := 0; g < goroutines; g++ {
			wg.Add(1)
			go func(g int) {
				defer wg.Done()
				ids[g] = make([]VarID, 0, perGoroutine)
				for i := 0; i < perGoroutine; i++ {
					ids[g] = append(ids[g], reg.Register(0.5))
				}
			}(g)
		}
		wg.Wait()

		assert.Equal(t, goroutines*perGoroutine, reg.Len())

		seen := make(map[VarID]bool)
		for _, batch := range ids {
			for _, id := range batch {
				assert.False(t, seen[id], "duplicate id %d", id)
				seen[id] = true

				sigma, err := reg.Lookup(id)
				require.NoError(t, err)
				assert.Equal(t, 0.5, sigma)
			}
		}
	})

	t.Run("Default registry is a singleton", func(t *testing.T) {
		assert.Same(t, Default(), Default())
	})
}
