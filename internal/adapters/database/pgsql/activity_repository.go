package pgsql

import (
	"context"
	"fmt"
	"net/http"
	"strconv"

	"github.com/SscSPs/storefront/internal/apperrors"
	"github.com/SscSPs/storefront/internal/core/domain"
	portsrepo "github.com/SscSPs/storefront/internal/core/ports/repositories"
	"github.com/SscSPs/storefront/internal/models"
	"github.com/SscSPs/storefront/internal/utils/mapping"
	"github.com/SscSPs/storefront/internal/utils/pagination"
	"github.com/jackc/pgx/v5"
)

const defaultActivityLimit = 20

const (
	activityTable = "activity_log"

	selectActivityFields = `activity_id, customer_id, subscription_id, action, outcome, message, created_at`

	insertActivityQuery = `INSERT INTO ` + activityTable + ` (` + selectActivityFields + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`

	listActivityBaseQuery = `SELECT ` + selectActivityFields + `
		FROM ` + activityTable + `
		WHERE customer_id = $1`

	activityOrderBy = ` ORDER BY created_at DESC, activity_id DESC`

	listActivityBySubscriptionQuery = listActivityBaseQuery + ` AND subscription_id = $2` + activityOrderBy + ` LIMIT $3`
)

// PgxActivityRepository stores the customer activity log in PostgreSQL.
type PgxActivityRepository struct {
	BaseRepository
}

// NewActivityRepository creates the pgx backed activity repository.
func NewActivityRepository(pool DBPool) *PgxActivityRepository {
	return &PgxActivityRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var (
	_ portsrepo.ActivityRepositoryFacade = (*PgxActivityRepository)(nil)
	_ portsrepo.HealthChecker            = (*PgxActivityRepository)(nil)
)

// SaveActivity inserts an entry.
func (r *PgxActivityRepository) SaveActivity(ctx context.Context, entry domain.ActivityEntry) error {
	m := mapping.ToModelActivityEntry(entry)
	_, err := r.Pool.Exec(ctx, insertActivityQuery,
		m.ActivityID,
		m.CustomerID,
		m.SubscriptionID,
		m.Action,
		m.Outcome,
		m.Message,
		m.CreatedAt,
	)
	if err != nil {
		return apperrors.NewAppError(http.StatusInternalServerError, "failed to save activity entry", err)
	}
	return nil
}

// ListActivity pages through a customer's activity newest first using a
// (created_at, activity_id) cursor.
func (r *PgxActivityRepository) ListActivity(ctx context.Context, customerID string, limit int, nextToken *string) ([]domain.ActivityEntry, *string, error) {
	if limit <= 0 {
		limit = defaultActivityLimit
	}
	// One extra row tells whether another page exists.
	fetchLimit := limit + 1

	args := []any{customerID}
	query := listActivityBaseQuery
	if nextToken != nil && *nextToken != "" {
		lastCreatedAt, lastID, err := pagination.DecodeToken(*nextToken)
		if err != nil {
			return nil, nil, apperrors.NewAppError(http.StatusBadRequest, "invalid next_token", fmt.Errorf("%w: %v", apperrors.ErrValidation, err))
		}
		query += ` AND (created_at, activity_id) < ($2, $3)`
		args = append(args, lastCreatedAt, lastID)
	}
	query += activityOrderBy + ` LIMIT $` + strconv.Itoa(len(args)+1)
	args = append(args, fetchLimit)

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, nil, apperrors.NewAppError(http.StatusInternalServerError, "failed to query activity for customer "+customerID, err)
	}
	results, err := scanActivityRows(rows)
	if err != nil {
		return nil, nil, err
	}

	var nextTokenVal *string
	if len(results) > limit {
		last := results[limit-1]
		token := pagination.EncodeToken(last.CreatedAt, last.ActivityID)
		nextTokenVal = &token
		results = results[:limit]
	}

	return mapping.ToDomainActivityEntrySlice(results), nextTokenVal, nil
}

// ListActivityBySubscription returns the latest entries for one subscription.
func (r *PgxActivityRepository) ListActivityBySubscription(ctx context.Context, customerID, subscriptionID string, limit int) ([]domain.ActivityEntry, error) {
	if limit <= 0 {
		limit = defaultActivityLimit
	}
	rows, err := r.Pool.Query(ctx, listActivityBySubscriptionQuery, customerID, subscriptionID, limit)
	if err != nil {
		return nil, apperrors.NewAppError(http.StatusInternalServerError, "failed to query activity for subscription "+subscriptionID, err)
	}
	results, err := scanActivityRows(rows)
	if err != nil {
		return nil, err
	}
	return mapping.ToDomainActivityEntrySlice(results), nil
}

func scanActivityRows(rows pgx.Rows) ([]models.ActivityEntry, error) {
	defer rows.Close()

	var results []models.ActivityEntry
	for rows.Next() {
		var m models.ActivityEntry
		if err := rows.Scan(
			&m.ActivityID,
			&m.CustomerID,
			&m.SubscriptionID,
			&m.Action,
			&m.Outcome,
			&m.Message,
			&m.CreatedAt,
		); err != nil {
			return nil, apperrors.NewAppError(http.StatusInternalServerError, "failed to scan activity row", err)
		}
		results = append(results, m)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(http.StatusInternalServerError, "error iterating activity rows", err)
	}
	return results, nil
}
