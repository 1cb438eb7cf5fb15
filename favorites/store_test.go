package favorites

import (
	"encoding/json"
	"errors"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/divisapp/divisa/config"
	"github.com/divisapp/divisa/types"
)

type memoryKV struct {
	values map[string][]byte
}

func newMemoryKV() *memoryKV {
	return &memoryKV{values: make(map[string][]byte)}
}

func (kv *memoryKV) GetKey(key string, src interface{}) error {
	val, ok := kv.values[key]
	if !ok {
		return errors.New("key not found")
	}

	return json.Unmarshal(val, src)
}

func (kv *memoryKV) SetKey(key string, value interface{}, expiration time.Duration) error {
	buf, err := json.Marshal(value)
	if err != nil {
		return err
	}

	kv.values[key] = buf

	return nil
}

func TestMain(m *testing.M) {
	config.NewLoggerService()
	os.Exit(m.Run())
}

func usd() types.Currency {
	return types.Currency{Identifier: "USD", Name: "US Dollar", Category: types.CategoryFiat}
}

func btc() types.Currency {
	return types.Currency{Identifier: "BTC", Name: "Bitcoin", Category: types.CategoryCrypto}
}

func TestListEmptyWhenStorageAbsent(t *testing.T) {
	store := NewStore(newMemoryKV())

	list := store.List("UID001", types.CategoryFiat)

	assert.NotNil(t, list)
	assert.Len(t, list, 0)
}

func TestListEmptyWhenStorageUnparsable(t *testing.T) {
	kv := newMemoryKV()
	kv.values["divisa:favorites:UID001:fiat"] = []byte("{broken json")

	store := NewStore(kv)

	assert.Len(t, store.List("UID001", types.CategoryFiat), 0)
}

func TestToggleRoundTrip(t *testing.T) {
	store := NewStore(newMemoryKV())

	assert.False(t, store.IsFavorite("UID001", types.CategoryFiat, usd()))

	store.Toggle("UID001", types.CategoryFiat, usd())
	assert.True(t, store.IsFavorite("UID001", types.CategoryFiat, usd()))
	assert.Len(t, store.List("UID001", types.CategoryFiat), 1)

	store.Toggle("UID001", types.CategoryFiat, usd())
	assert.False(t, store.IsFavorite("UID001", types.CategoryFiat, usd()))
	assert.Len(t, store.List("UID001", types.CategoryFiat), 0)
}

func TestToggleEmptyIdentifierIsNoop(t *testing.T) {
	store := NewStore(newMemoryKV())

	store.Toggle("UID001", types.CategoryFiat, types.Currency{Name: "Nameless"})

	assert.Len(t, store.List("UID001", types.CategoryFiat), 0)
}

func TestToggleKeepsInsertionOrder(t *testing.T) {
	store := NewStore(newMemoryKV())

	store.Toggle("UID001", types.CategoryFiat, types.Currency{Identifier: "EUR", Name: "Euro"})
	store.Toggle("UID001", types.CategoryFiat, types.Currency{Identifier: "ARS", Name: "Argentine Peso"})

	list := store.List("UID001", types.CategoryFiat)

	assert.Equal(t, "EUR", list[0].Identifier)
	assert.Equal(t, "ARS", list[1].Identifier)
}

func TestCrossCategoryIdentifiersAreIndependent(t *testing.T) {
	store := NewStore(newMemoryKV())

	store.Toggle("UID001", types.CategoryFiat, types.Currency{Identifier: "BTC", Name: "Fiat BTC"})

	assert.True(t, store.IsFavorite("UID001", types.CategoryFiat, types.Currency{Identifier: "BTC"}))
	assert.False(t, store.IsFavorite("UID001", types.CategoryCrypto, types.Currency{Identifier: "BTC"}))
}

func TestCombinedMergesFiatAndCrypto(t *testing.T) {
	store := NewStore(newMemoryKV())

	store.Toggle("UID001", types.CategoryFiat, usd())
	store.Toggle("UID001", types.CategoryCrypto, btc())

	combined := store.Combined("UID001")

	assert.Len(t, combined, 2)
	assert.Equal(t, "USD", combined[0].Identifier)
	assert.Equal(t, "BTC", combined[1].Identifier)
}

func TestToggleNotifiesSubscribers(t *testing.T) {
	store := NewStore(newMemoryKV())

	ch := store.Subscribe()
	defer store.Unsubscribe(ch)

	store.Toggle("UID001", types.CategoryFiat, usd())

	select {
	case list := <-ch:
		assert.Len(t, list, 1)
		assert.Equal(t, "USD", list[0].Identifier)
	case <-time.After(time.Second):
		t.Fatal("expected a favorites notification")
	}
}
