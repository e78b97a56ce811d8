package mocks

import (
	"context"

	"github.com/cookieter/cookieter-api/internal/store"
)

// MockRequestStore implements store.RequestStore for testing
type MockRequestStore struct {
	CreateFn          func(ctx context.Context, doc store.Document) (string, error)
	ListByRequesterFn func(ctx context.Context, email string) ([]store.Document, error)
	ListByDonorFoodFn func(ctx context.Context, donorEmail, foodID string) ([]store.Document, error)
	DeleteFn          func(ctx context.Context, id string) (int64, error)
	FulfillFn         func(ctx context.Context, requestID, foodID string) (store.UpdateCounts, error)

	// Default values used when functions aren't explicitly defined
	ID      string
	Docs    []store.Document
	Counts  store.UpdateCounts
	Deleted int64
	Err     error
}

// Create implements the store.RequestStore interface
func (m *MockRequestStore) Create(ctx context.Context, doc store.Document) (string, error) {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, doc)
	}
	return m.ID, m.Err
}

// ListByRequester implements the store.RequestStore interface
func (m *MockRequestStore) ListByRequester(ctx context.Context, email string) ([]store.Document, error) {
	if m.ListByRequesterFn != nil {
		return m.ListByRequesterFn(ctx, email)
	}
	return m.Docs, m.Err
}

// ListByDonorFood implements the store.RequestStore interface
func (m *MockRequestStore) ListByDonorFood(ctx context.Context, donorEmail, foodID string) ([]store.Document, error) {
	if m.ListByDonorFoodFn != nil {
		return m.ListByDonorFoodFn(ctx, donorEmail, foodID)
	}
	return m.Docs, m.Err
}

// Delete implements the store.RequestStore interface
func (m *MockRequestStore) Delete(ctx context.Context, id string) (int64, error) {
	if m.DeleteFn != nil {
		return m.DeleteFn(ctx, id)
	}
	return m.Deleted, m.Err
}

// Fulfill implements the store.RequestStore interface
func (m *MockRequestStore) Fulfill(ctx context.Context, requestID, foodID string) (store.UpdateCounts, error) {
	if m.FulfillFn != nil {
		return m.FulfillFn(ctx, requestID, foodID)
	}
	return m.Counts, m.Err
}
