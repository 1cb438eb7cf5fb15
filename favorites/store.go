package favorites

import (
	"sync"
	"time"

	"github.com/emirpasic/gods/maps/linkedhashmap"

	"github.com/divisapp/divisa/config"
	"github.com/divisapp/divisa/types"
)

// KV is the slice of the cache service the store needs. Lists are stored as
// JSON arrays under per-member, per-category keys.
type KV interface {
	GetKey(key string, src interface{}) error
	SetKey(key string, value interface{}, expiration time.Duration) error
}

type Store struct {
	kv KV

	mu          sync.Mutex
	subscribers map[chan []types.Currency]struct{}
}

func NewStore(kv KV) *Store {
	return &Store{
		kv:          kv,
		subscribers: make(map[chan []types.Currency]struct{}),
	}
}

// NewRedisStore wires the store to the shared cache service.
func NewRedisStore() *Store {
	return NewStore(config.Redis)
}

func storageKey(uid string, category types.Category) string {
	return "divisa:favorites:" + uid + ":" + category
}

// List returns the stored favorites for one category. A missing or
// unparsable value is treated as "no favorites", never as an error.
func (s *Store) List(uid string, category types.Category) []types.Currency {
	var list []types.Currency

	if err := s.kv.GetKey(storageKey(uid, category), &list); err != nil {
		return []types.Currency{}
	}

	if list == nil {
		return []types.Currency{}
	}

	return list
}

// Combined returns the merged fiat+crypto favorites list.
func (s *Store) Combined(uid string) []types.Currency {
	combined := s.List(uid, types.CategoryFiat)

	return append(combined, s.List(uid, types.CategoryCrypto)...)
}

// IsFavorite matches strictly by identifier equality within the category.
func (s *Store) IsFavorite(uid string, category types.Category, item types.Currency) bool {
	for _, favorite := range s.List(uid, category) {
		if favorite.Identifier == item.Identifier {
			return true
		}
	}

	return false
}

// Toggle removes the entry when its identifier is already present, otherwise
// appends a snapshot of the item. The updated list is persisted and the
// combined list is published to all subscribers. An item with an empty
// identifier is a no-op.
func (s *Store) Toggle(uid string, category types.Category, item types.Currency) {
	if item.Identifier == "" {
		return
	}

	s.mu.Lock()

	// Insertion order is the favorite order and identifiers are unique
	// within a category, which is exactly a linked hash map.
	ordered := linkedhashmap.New()
	for _, favorite := range s.List(uid, category) {
		ordered.Put(favorite.Identifier, favorite)
	}

	if _, found := ordered.Get(item.Identifier); found {
		ordered.Remove(item.Identifier)
	} else {
		snapshot := item
		snapshot.Category = category
		ordered.Put(item.Identifier, snapshot)
	}

	list := make([]types.Currency, 0, ordered.Size())
	ordered.Each(func(key interface{}, value interface{}) {
		list = append(list, value.(types.Currency))
	})

	if err := s.kv.SetKey(storageKey(uid, category), list, 0); err != nil {
		config.Logger.Errorf("Failed to persist favorites for %s: %v", uid, err)
	}

	s.mu.Unlock()

	s.publish(s.Combined(uid))
}

// Subscribe registers a change-notification channel. Every toggle re-emits
// the full combined list; consumers re-derive per-item favorite status
// themselves since the emitted list carries no category mapping.
func (s *Store) Subscribe() chan []types.Currency {
	ch := make(chan []types.Currency, 1)

	s.mu.Lock()
	s.subscribers[ch] = struct{}{}
	s.mu.Unlock()

	return ch
}

func (s *Store) Unsubscribe(ch chan []types.Currency) {
	s.mu.Lock()
	delete(s.subscribers, ch)
	s.mu.Unlock()
}

func (s *Store) publish(list []types.Currency) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for ch := range s.subscribers {
		select {
		case ch <- list:
		default:
		}
	}
}
