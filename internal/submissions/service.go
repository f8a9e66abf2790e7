package submissions

import (
	"context"
	"fmt"
)

// DemoID is the synthetic identifier returned when no store is configured.
// The public submission flow never hard-fails just because the API runs
// without a database.
const DemoID = "demo"

// Store is the subset of the store adapter the submission service writes through.
type Store interface {
	Available() bool
	InsertOne(ctx context.Context, col string, doc interface{}) (string, error)
}

// Service persists validated lead-capture payloads. The store-absent and
// store-error cases are distinct by design: absent means demo success, an
// insert failure on a live store is surfaced to the caller.
type Service struct {
	store Store
}

func NewService(st Store) *Service {
	return &Service{store: st}
}

func (s *Service) SubmitInquiry(ctx context.Context, in *Inquiry) (string, error) {
	return s.submit(ctx, CollectionInquiry, in)
}

func (s *Service) SubmitJobapplication(ctx context.Context, app *Jobapplication) (string, error) {
	return s.submit(ctx, CollectionJobapplication, app)
}

func (s *Service) submit(ctx context.Context, col string, doc interface{}) (string, error) {
	if !s.store.Available() {
		return DemoID, nil
	}
	id, err := s.store.InsertOne(ctx, col, doc)
	if err != nil {
		return "", fmt.Errorf("insert %s: %w", col, err)
	}
	return id, nil
}
