package sellers

import (
	"context"
	"sort"
	"sync"

	"github.com/bissquit/auctionhub/internal/domain"
)

// Repository defines the interface for seller application storage.
type Repository interface {
	Create(ctx context.Context, app *domain.SellerApplication) error
	Get(ctx context.Context, id string) (*domain.SellerApplication, error)
	List(ctx context.Context, filter ListFilter) ([]domain.SellerApplication, error)
	Update(ctx context.Context, app *domain.SellerApplication) error
}

// ListFilter represents filter criteria for listing applications.
type ListFilter struct {
	Status      *domain.ApplicationStatus
	SubmittedBy string
}

// MemoryRepository keeps applications in process memory.
type MemoryRepository struct {
	mu   sync.RWMutex
	apps map[string]domain.SellerApplication
}

// NewMemoryRepository creates an empty repository.
func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{apps: make(map[string]domain.SellerApplication)}
}

// Create stores a new application.
func (r *MemoryRepository) Create(_ context.Context, app *domain.SellerApplication) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.apps[app.ID] = *app
	return nil
}

// Get returns a copy of the application with id.
func (r *MemoryRepository) Get(_ context.Context, id string) (*domain.SellerApplication, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	app, ok := r.apps[id]
	if !ok {
		return nil, ErrApplicationNotFound
	}
	return &app, nil
}

// List returns applications matching filter, newest first.
func (r *MemoryRepository) List(_ context.Context, filter ListFilter) ([]domain.SellerApplication, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]domain.SellerApplication, 0, len(r.apps))
	for _, app := range r.apps {
		if filter.Status != nil && app.Status != *filter.Status {
			continue
		}
		if filter.SubmittedBy != "" && app.SubmittedBy != filter.SubmittedBy {
			continue
		}
		out = append(out, app)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].SubmittedAt.Equal(out[j].SubmittedAt) {
			return out[i].ID < out[j].ID
		}
		return out[i].SubmittedAt.After(out[j].SubmittedAt)
	})
	return out, nil
}

// Update replaces a stored application.
func (r *MemoryRepository) Update(_ context.Context, app *domain.SellerApplication) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.apps[app.ID]; !ok {
		return ErrApplicationNotFound
	}
	r.apps[app.ID] = *app
	return nil
}
