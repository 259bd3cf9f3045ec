package repository

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	models "green-saas/app/models/postgresql"

	"github.com/dgraph-io/badger/v4"
	"github.com/google/uuid"
)

var ErrSessionNotFound = errors.New("session not found")

// SessionRepository stores sessions keyed by id. Entries expire on their own
// through badger's TTL.
type SessionRepository interface {
	Save(ctx context.Context, s models.Session) error
	Get(ctx context.Context, id uuid.UUID) (*models.Session, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type sessionRepository struct {
	db *badger.DB
}

func NewSessionRepository(db *badger.DB) SessionRepository {
	return &sessionRepository{db: db}
}

func sessionKey(id uuid.UUID) []byte {
	return []byte("session:" + id.String())
}

func (r *sessionRepository) Save(ctx context.Context, s models.Session) error {
	ttl := time.Until(s.ExpiresAt)
	if ttl <= 0 {
		return errors.New("session already expired")
	}

	data, err := json.Marshal(s)
	if err != nil {
		return err
	}

	return r.db.Update(func(txn *badger.Txn) error {
		e := badger.NewEntry(sessionKey(s.ID), data).WithTTL(ttl)
		return txn.SetEntry(e)
	})
}

func (r *sessionRepository) Get(ctx context.Context, id uuid.UUID) (*models.Session, error) {
	var s models.Session
	err := r.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(sessionKey(id))
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			return json.Unmarshal(val, &s)
		})
	})
	if errors.Is(err, badger.ErrKeyNotFound) {
		return nil, ErrSessionNotFound
	}
	if err != nil {
		return nil, err
	}
	if time.Now().After(s.ExpiresAt) {
		return nil, ErrSessionNotFound
	}
	return &s, nil
}

func (r *sessionRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.Update(func(txn *badger.Txn) error {
		return txn.Delete(sessionKey(id))
	})
}
