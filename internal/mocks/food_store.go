package mocks

import (
	"context"

	"github.com/cookieter/cookieter-api/internal/store"
)

// MockFoodStore implements store.FoodStore for testing
type MockFoodStore struct {
	CreateFn      func(ctx context.Context, doc store.Document) (string, error)
	ListFn        func(ctx context.Context, q store.FoodQuery) ([]store.Document, error)
	ListAllFn     func(ctx context.Context) ([]store.Document, error)
	GetByIDFn     func(ctx context.Context, id string) (store.Document, error)
	ListByDonorFn func(ctx context.Context, email string) ([]store.Document, error)
	UpdateFn      func(ctx context.Context, id string, fields store.Document) (store.UpdateCounts, error)
	DeleteFn      func(ctx context.Context, id string) (int64, error)

	// Default values used when functions aren't explicitly defined
	ID      string
	Docs    []store.Document
	Doc     store.Document
	Counts  store.UpdateCounts
	Deleted int64
	Err     error
}

// Create implements the store.FoodStore interface
func (m *MockFoodStore) Create(ctx context.Context, doc store.Document) (string, error) {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, doc)
	}
	return m.ID, m.Err
}

// List implements the store.FoodStore interface
func (m *MockFoodStore) List(ctx context.Context, q store.FoodQuery) ([]store.Document, error) {
	if m.ListFn != nil {
		return m.ListFn(ctx, q)
	}
	return m.Docs, m.Err
}

// ListAll implements the store.FoodStore interface
func (m *MockFoodStore) ListAll(ctx context.Context) ([]store.Document, error) {
	if m.ListAllFn != nil {
		return m.ListAllFn(ctx)
	}
	return m.Docs, m.Err
}

// GetByID implements the store.FoodStore interface
func (m *MockFoodStore) GetByID(ctx context.Context, id string) (store.Document, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}
	return m.Doc, m.Err
}

// ListByDonor implements the store.FoodStore interface
func (m *MockFoodStore) ListByDonor(ctx context.Context, email string) ([]store.Document, error) {
	if m.ListByDonorFn != nil {
		return m.ListByDonorFn(ctx, email)
	}
	return m.Docs, m.Err
}

// Update implements the store.FoodStore interface
func (m *MockFoodStore) Update(ctx context.Context, id string, fields store.Document) (store.UpdateCounts, error) {
	if m.UpdateFn != nil {
		return m.UpdateFn(ctx, id, fields)
	}
	return m.Counts, m.Err
}

// Delete implements the store.FoodStore interface
func (m *MockFoodStore) Delete(ctx context.Context, id string) (int64, error) {
	if m.DeleteFn != nil {
		return m.DeleteFn(ctx, id)
	}
	return m.Deleted, m.Err
}
