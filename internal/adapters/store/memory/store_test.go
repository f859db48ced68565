package memory

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStoreSetGetRemove(t *testing.T) {
	t.Parallel()

	store := NewStore(nil)
	value := "1.0"

	require.NoError(t, store.SetString(context.Background(), "k", &value))
	got, err := store.GetString(context.Background(), "k")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "1.0", *got)

	require.NoError(t, store.SetString(context.Background(), "k", nil))
	got, err = store.GetString(context.Background(), "k")
	require.NoError(t, err)
	assert.Nil(t, got)
	assert.Equal(t, 2, store.Writes())
}

func TestStoreSeedIsCopied(t *testing.T) {
	t.Parallel()

	seed := map[string]string{"k": "v"}
	store := NewStore(seed)
	seed["k"] = "changed"

	assert.Equal(t, map[string]string{"k": "v"}, store.Values())
}

func TestStoreInjectedErrors(t *testing.T) {
	t.Parallel()

	store := NewStore(nil)
	store.SetErr = errors.New("disk full")
	store.FlushErr = errors.New("sync failed")

	assert.EqualError(t, store.SetString(context.Background(), "k", nil), "disk full")
	assert.EqualError(t, store.Flush(context.Background()), "sync failed")
	assert.Zero(t, store.Writes())
	assert.Zero(t, store.Flushes())
}

func TestStoreHonoursCancelledContext(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewStore(nil).GetString(ctx, "k")
	assert.ErrorIs(t, err, context.Canceled)
}
