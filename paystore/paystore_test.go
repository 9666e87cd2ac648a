package paystore

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStorePutGetDelete(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	record := PaymentRecord{
		Id:                "sess-1",
		BookingId:         "abc123",
		InstallmentNumber: 2,
		Amount:            2000,
		Status:            SessionInitiated,
		CreatedAt:         time.Now(),
	}

	require.NoError(t, store.Put(ctx, record))

	got, err := store.Get(ctx, "sess-1")
	require.NoError(t, err)
	assert.Equal(t, record, got)

	record.Status = SessionCaptured
	require.NoError(t, store.Put(ctx, record))
	got, err = store.Get(ctx, "sess-1")
	require.NoError(t, err)
	assert.Equal(t, SessionCaptured, got.Status)

	require.NoError(t, store.Delete(ctx, "sess-1"))
	_, err = store.Get(ctx, "sess-1")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMemoryStoreMissingRecord(t *testing.T) {
	store := NewMemoryStore()

	_, err := store.Get(context.Background(), "no-such-session")
	assert.ErrorIs(t, err, ErrNotFound)

	// deleting a missing record is not an error
	assert.NoError(t, store.Delete(context.Background(), "no-such-session"))
}

func TestMemoryStoreConcurrentAccess(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			record := PaymentRecord{Id: "shared", InstallmentNumber: n, Status: SessionInitiated}
			_ = store.Put(ctx, record)
			_, _ = store.Get(ctx, "shared")
		}(i)
	}
	wg.Wait()

	got, err := store.Get(ctx, "shared")
	require.NoError(t, err)
	assert.Equal(t, "shared", got.Id)
}
