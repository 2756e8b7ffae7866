package store

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"merchant-dashboard/internal/models"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := New(filepath.Join(t.TempDir(), "test.bolt"))
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func TestEntryKey_IsOrderIndependent(t *testing.T) {
	a := EntryKey("transactions", map[string]string{"page": "0", "merchantId": "MCH-1"})
	b := EntryKey("transactions", map[string]string{"merchantId": "MCH-1", "page": "0"})

	assert.Equal(t, a, b)
	assert.Equal(t, "transactions|merchantId=MCH-1|page=0", a)
	assert.Equal(t, "merchants", EntryKey("merchants", nil))
}

func TestCache_LoadMissing(t *testing.T) {
	cache := NewCache[models.Merchant](newTestStore(t))

	snapshot, err := cache.Load("merchants", map[string]string{})

	require.NoError(t, err)
	assert.Nil(t, snapshot)
}

func TestCache_SaveAndLoad(t *testing.T) {
	cache := NewCache[models.Transaction](newTestStore(t))
	key := models.DefaultTransactionKey("MCH-00009")
	page := models.Page[models.Transaction]{
		Records: []models.Transaction{
			{TxnID: 1, Amount: decimal.RequireFromString("10.00"), Currency: "USD", Status: "completed"},
		},
		TotalCount: 31,
		Size:       10,
	}
	fetchedAt := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	saved := models.NewSnapshot(page, key.Params(), 4, fetchedAt)

	require.NoError(t, cache.Save("transactions", saved))

	loaded, err := cache.Load("transactions", key.Params())
	require.NoError(t, err)
	require.NotNil(t, loaded)
	assert.Equal(t, 1, loaded.Len())
	assert.True(t, decimal.RequireFromString("10").Equal(loaded.Records[0].Amount))
	assert.Equal(t, 31, loaded.TotalCount)
	assert.Equal(t, uint64(4), loaded.Sequence)
	assert.True(t, fetchedAt.Equal(loaded.FetchedAt))

	other, err := cache.Load("transactions", key.WithPage(1).Params())
	require.NoError(t, err)
	assert.Nil(t, other)
}

func TestStore_PutSkipsIdenticalPayload(t *testing.T) {
	s := newTestStore(t)

	written, err := s.put("k", []byte(`{"a":1}`))
	require.NoError(t, err)
	assert.True(t, written)

	written, err = s.put("k", []byte(`{"a":1}`))
	require.NoError(t, err)
	assert.False(t, written)

	keys, err := s.Keys()
	require.NoError(t, err)
	assert.Equal(t, []string{"k"}, keys)
}

func TestStore_ClosedOperations(t *testing.T) {
	s, err := New(filepath.Join(t.TempDir(), "closed.bolt"))
	require.NoError(t, err)
	require.NoError(t, s.Ping())
	require.NoError(t, s.Close())
	require.NoError(t, s.Close())

	assert.ErrorIs(t, s.Ping(), ErrClosed)
	_, err = NewCache[models.Merchant](s).Load("merchants", nil)
	assert.ErrorIs(t, err, ErrClosed)
}

func TestStore_ReopenKeepsData(t *testing.T) {
	path := filepath.Join(t.TempDir(), "reopen.bolt")
	s, err := New(path)
	require.NoError(t, err)
	snap := models.NewSnapshot(models.Page[models.Merchant]{Records: []models.Merchant{{MerchantID: 9, MerchantName: "ABC Store"}}}, map[string]string{}, 1, time.Now())
	require.NoError(t, NewCache[models.Merchant](s).Save("merchants", snap))
	require.NoError(t, s.Close())

	reopened, err := New(path)
	require.NoError(t, err)
	defer reopened.Close()

	loaded, err := NewCache[models.Merchant](reopened).Load("merchants", map[string]string{})
	require.NoError(t, err)
	require.NotNil(t, loaded)
	assert.Equal(t, "ABC Store", loaded.Records[0].MerchantName)
}
