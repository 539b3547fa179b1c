// Package memory keeps the activity log in process memory for deployments
// without PostgreSQL.
package memory

import (
	"cmp"
	"context"
	"fmt"
	"net/http"
	"slices"
	"sync"

	"github.com/SscSPs/storefront/internal/apperrors"
	"github.com/SscSPs/storefront/internal/core/domain"
	portsrepo "github.com/SscSPs/storefront/internal/core/ports/repositories"
	"github.com/SscSPs/storefront/internal/utils/pagination"
)

const (
	defaultLimit = 20
	// maxEntriesPerCustomer bounds memory use; the oldest entries are dropped.
	maxEntriesPerCustomer = 200
)

// ActivityRepository is a goroutine-safe in-memory activity log.
type ActivityRepository struct {
	mu      sync.RWMutex
	entries map[string][]domain.ActivityEntry // newest first
}

// NewActivityRepository creates an empty log.
func NewActivityRepository() *ActivityRepository {
	return &ActivityRepository{entries: make(map[string][]domain.ActivityEntry)}
}

var _ portsrepo.ActivityRepositoryFacade = (*ActivityRepository)(nil)

func newerFirst(a, b domain.ActivityEntry) int {
	if c := b.CreatedAt.Compare(a.CreatedAt); c != 0 {
		return c
	}
	return cmp.Compare(b.ID, a.ID)
}

func (r *ActivityRepository) SaveActivity(_ context.Context, entry domain.ActivityEntry) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	existing := r.entries[entry.CustomerID]
	list := make([]domain.ActivityEntry, 0, len(existing)+1)
	list = append(list, existing...)
	list = append(list, entry)
	slices.SortStableFunc(list, newerFirst)
	if len(list) > maxEntriesPerCustomer {
		list = list[:maxEntriesPerCustomer]
	}
	r.entries[entry.CustomerID] = list
	return nil
}

func (r *ActivityRepository) ListActivity(_ context.Context, customerID string, limit int, nextToken *string) ([]domain.ActivityEntry, *string, error) {
	if limit <= 0 {
		limit = defaultLimit
	}

	r.mu.RLock()
	list := r.entries[customerID]
	r.mu.RUnlock()

	start := 0
	if nextToken != nil && *nextToken != "" {
		createdAt, id, err := pagination.DecodeToken(*nextToken)
		if err != nil {
			return nil, nil, apperrors.NewAppError(http.StatusBadRequest, "invalid next_token", fmt.Errorf("%w: %v", apperrors.ErrValidation, err))
		}
		cursor := domain.ActivityEntry{ID: id, CreatedAt: createdAt}
		start = len(list)
		for i, e := range list {
			if newerFirst(cursor, e) < 0 {
				start = i
				break
			}
		}
	}

	end := min(start+limit, len(list))
	page := slices.Clone(list[start:end])
	if page == nil {
		page = []domain.ActivityEntry{}
	}

	var next *string
	if end < len(list) {
		last := page[len(page)-1]
		token := pagination.EncodeToken(last.CreatedAt, last.ID)
		next = &token
	}
	return page, next, nil
}

func (r *ActivityRepository) ListActivityBySubscription(_ context.Context, customerID, subscriptionID string, limit int) ([]domain.ActivityEntry, error) {
	if limit <= 0 {
		limit = defaultLimit
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	out := []domain.ActivityEntry{}
	for _, e := range r.entries[customerID] {
		if e.SubscriptionID != subscriptionID {
			continue
		}
		out = append(out, e)
		if len(out) == limit {
			break
		}
	}
	return out, nil
}
