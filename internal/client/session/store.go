package session

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/dmitrijs2005/dutch/internal/client/models"
	"github.com/dmitrijs2005/dutch/internal/client/repositories/metadata"
)

// StorageKey is the metadata key under which the session record is kept.
const StorageKey = "dutch_auth"

// Store persists the session record. Absence of a record means logged out.
type Store interface {
	Load(ctx context.Context) (models.Session, bool, error)
	Save(ctx context.Context, s models.Session) error
	Delete(ctx context.Context) error
}

// MetadataStore keeps the session as JSON in the metadata repository.
type MetadataStore struct {
	repo metadata.Repository
}

var _ Store = (*MetadataStore)(nil)

func NewMetadataStore(repo metadata.Repository) *MetadataStore {
	return &MetadataStore{repo: repo}
}

func (m *MetadataStore) Load(ctx context.Context) (models.Session, bool, error) {
	raw, ok, err := m.repo.Get(ctx, StorageKey)
	if err != nil || !ok {
		return models.Session{}, false, err
	}
	var s models.Session
	if err := json.Unmarshal(raw, &s); err != nil {
		return models.Session{}, false, fmt.Errorf("decode session record: %w", err)
	}
	return s, true, nil
}

func (m *MetadataStore) Save(ctx context.Context, s models.Session) error {
	raw, err := json.Marshal(s)
	if err != nil {
		return fmt.Errorf("encode session record: %w", err)
	}
	return m.repo.Set(ctx, StorageKey, raw)
}

func (m *MetadataStore) Delete(ctx context.Context) error {
	return m.repo.Delete(ctx, StorageKey)
}
