package store

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	"github.com/google/uuid"

	"quicklip/internal/domain"
	"quicklip/internal/eventbus"
	"quicklip/internal/storage"
)

// clipboardKey is the fixed key the whole item collection lives under.
const clipboardKey = "quicklip_v1"

// ItemStore is the persistent CRUD repository for stored snippets. The
// persisted record is loaded once, lazily, and cached for the process
// lifetime; every mutation writes the full record back before returning.
//
// There is no mutual exclusion between concurrent mutators: two overlapping
// writes both land in the cache but only the last one survives a restart.
// Acceptable for a single-user tool driven from one UI loop.
type ItemStore struct {
	backend storage.Backend
	bus     eventbus.EventBus
	cache   *domain.Clipboard
}

// New creates an item store on top of the given backend. The bus may be nil
// in tests; mutation events are then skipped.
func New(backend storage.Backend, bus eventbus.EventBus) *ItemStore {
	return &ItemStore{backend: backend, bus: bus}
}

// initCache loads the persisted record on first use. A missing record is
// treated as an empty collection, never an error.
func (s *ItemStore) initCache(ctx context.Context) error {
	if s.cache != nil {
		return nil
	}

	data, ok, err := s.backend.Get(ctx, clipboardKey)
	if err != nil {
		return fmt.Errorf("failed to load clipboard record: %w", err)
	}

	cache := &domain.Clipboard{Items: []domain.StoredItem{}}
	if ok {
		if err := json.Unmarshal(data, cache); err != nil {
			return fmt.Errorf("failed to decode clipboard record: %w", err)
		}
		if cache.Items == nil {
			cache.Items = []domain.StoredItem{}
		}
	}

	s.cache = cache
	return nil
}

// persist writes the full cached collection back to the backend.
func (s *ItemStore) persist(ctx context.Context) error {
	data, err := json.Marshal(s.cache)
	if err != nil {
		return fmt.Errorf("failed to encode clipboard record: %w", err)
	}
	return s.backend.Set(ctx, clipboardKey, data)
}

func (s *ItemStore) publish(event eventbus.DomainEvent) {
	if s.bus != nil {
		s.bus.Publish(event)
	}
}

// GetAll returns every stored item in insertion order.
func (s *ItemStore) GetAll(ctx context.Context) ([]domain.StoredItem, error) {
	if err := s.initCache(ctx); err != nil {
		return nil, err
	}
	return s.cache.Items, nil
}

// Add appends a new item with a fresh id and persists the collection.
// On a write failure the cache keeps the new item; the cache is the source
// of truth once Add returns, durable or not.
func (s *ItemStore) Add(ctx context.Context, value string, tags []string) (domain.StoredItem, error) {
	if err := s.initCache(ctx); err != nil {
		return domain.StoredItem{}, err
	}

	if tags == nil {
		tags = []string{}
	}
	item := domain.StoredItem{
		ID:    uuid.NewString(),
		Value: value,
		Tags:  tags,
	}
	s.cache.Items = append(s.cache.Items, item)

	err := s.persist(ctx)
	if err != nil {
		log.Printf("Failed to persist item add: %v", err)
	}
	s.publish(eventbus.ItemAddedEvent{Item: item})
	return item, err
}

// Update replaces the value and tags of the item with the given id, keeping
// its id and position. An empty value or an unknown id is a silent no-op.
// At most one item is touched even if duplicate ids exist.
func (s *ItemStore) Update(ctx context.Context, id, value string, tags []string) error {
	if err := s.initCache(ctx); err != nil {
		return err
	}

	if value == "" {
		return nil
	}

	for i := range s.cache.Items {
		if s.cache.Items[i].ID != id {
			continue
		}
		s.cache.Items[i].Value = value
		s.cache.Items[i].Tags = tags

		err := s.persist(ctx)
		if err != nil {
			log.Printf("Failed to persist item update: %v", err)
		}
		s.publish(eventbus.ItemUpdatedEvent{Item: s.cache.Items[i]})
		return err
	}

	return nil
}

// Delete removes every item with the given id and persists the filtered
// collection. Unknown ids are a silent no-op (the collection is still
// rewritten, matching the full-record write policy of all mutators).
func (s *ItemStore) Delete(ctx context.Context, id string) error {
	if err := s.initCache(ctx); err != nil {
		return err
	}

	filtered := make([]domain.StoredItem, 0, len(s.cache.Items))
	for _, item := range s.cache.Items {
		if item.ID != id {
			filtered = append(filtered, item)
		}
	}
	s.cache.Items = filtered

	err := s.persist(ctx)
	if err != nil {
		log.Printf("Failed to persist item delete: %v", err)
	}
	s.publish(eventbus.ItemDeletedEvent{ID: id})
	return err
}
