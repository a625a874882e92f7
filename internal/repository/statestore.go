package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"micoach/coaching-app/internal/domain"
)

// StateStore persists the four role-keyed records as JSON blobs through a
// KeyValueStore. Loads are soft: an absent key or an unparseable blob yields
// (nil, nil) — the record is simply treated as not there. Saves propagate
// encode and write errors to the caller.
type StateStore struct {
	kv KeyValueStore
}

// NewStateStore wraps a key-value adapter.
func NewStateStore(kv KeyValueStore) *StateStore {
	return &StateStore{kv: kv}
}

func (s *StateStore) load(ctx context.Context, key string, out any) (bool, error) {
	data, err := s.kv.Get(ctx, key)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return false, nil
		}
		return false, err
	}
	if err := json.Unmarshal(data, out); err != nil {
		// Stored blob present but unparseable: recover as absent.
		return false, nil
	}
	return true, nil
}

func (s *StateStore) save(ctx context.Context, key string, record any) error {
	data, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("encode %s: %w", key, err)
	}
	if err := s.kv.Set(ctx, key, data); err != nil {
		return fmt.Errorf("write %s: %w", key, err)
	}
	return nil
}

func (s *StateStore) LoadUser(ctx context.Context) (*domain.User, error) {
	var user domain.User
	ok, err := s.load(ctx, KeyCurrentUser, &user)
	if err != nil || !ok {
		return nil, err
	}
	return &user, nil
}

func (s *StateStore) SaveUser(ctx context.Context, user *domain.User) error {
	return s.save(ctx, KeyCurrentUser, user)
}

func (s *StateStore) LoadAssessment(ctx context.Context) (*domain.Assessment, error) {
	var assessment domain.Assessment
	ok, err := s.load(ctx, KeyCurrentAssessment, &assessment)
	if err != nil || !ok {
		return nil, err
	}
	return &assessment, nil
}

func (s *StateStore) SaveAssessment(ctx context.Context, assessment *domain.Assessment) error {
	return s.save(ctx, KeyCurrentAssessment, assessment)
}

func (s *StateStore) LoadPlan(ctx context.Context) (*domain.Plan, error) {
	var plan domain.Plan
	ok, err := s.load(ctx, KeyCurrentPlan, &plan)
	if err != nil || !ok {
		return nil, err
	}
	return &plan, nil
}

func (s *StateStore) SavePlan(ctx context.Context, plan *domain.Plan) error {
	return s.save(ctx, KeyCurrentPlan, plan)
}

func (s *StateStore) LoadProgress(ctx context.Context) (*domain.Progress, error) {
	var progress domain.Progress
	ok, err := s.load(ctx, KeyCurrentProgress, &progress)
	if err != nil || !ok {
		return nil, err
	}
	return &progress, nil
}

func (s *StateStore) SaveProgress(ctx context.Context, progress *domain.Progress) error {
	return s.save(ctx, KeyCurrentProgress, progress)
}

// PurgeAll removes every role-keyed blob. Used by the full reset path.
func (s *StateStore) PurgeAll(ctx context.Context) error {
	for _, key := range StateKeys {
		if err := s.kv.Remove(ctx, key); err != nil {
			return fmt.Errorf("remove %s: %w", key, err)
		}
	}
	return nil
}
