package ordering

import (
	"context"
	"sync"
	"testing"

	"brewflow/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStoreUnseenSessionIsNil(t *testing.T) {
	store := NewMemorySessionStore()
	session, err := store.Load(context.Background(), "nope")
	require.NoError(t, err)
	assert.Nil(t, session)
}

func TestMemoryStoreRoundTrip(t *testing.T) {
	store := NewMemorySessionStore()
	ctx := context.Background()

	session := models.NewSession("s1")
	require.NoError(t, session.Cart.AddLine(models.LineItem{
		VariationID: "v1", ItemName: "Soda", Label: "Can", Quantity: 2, UnitPrice: 299,
	}))
	require.NoError(t, store.Save(ctx, session))

	loaded, err := store.Load(ctx, "s1")
	require.NoError(t, err)
	require.NotNil(t, loaded)
	assert.Equal(t, int64(598), loaded.Cart.Total())

	require.NoError(t, store.Delete(ctx, "s1"))
	loaded, err = store.Load(ctx, "s1")
	require.NoError(t, err)
	assert.Nil(t, loaded)
}

func TestMemoryStoreConcurrentAccess(t *testing.T) {
	store := NewMemorySessionStore()
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			id := string(rune('a' + n%26))
			assert.NoError(t, store.Save(ctx, models.NewSession(id)))
			_, err := store.Load(ctx, id)
			assert.NoError(t, err)
		}(i)
	}
	wg.Wait()
}

func TestSessionLocksHandOutStableMutexes(t *testing.T) {
	var locks sessionLocks
	a := locks.acquire("s1")
	b := locks.acquire("s1")
	c := locks.acquire("s2")

	assert.Same(t, a, b)
	assert.NotSame(t, a, c)
}
