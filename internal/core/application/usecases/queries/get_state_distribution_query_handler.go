package queries

import (
	"context"
	"slices"

	"workorders/internal/core/domain/model/state"
	"workorders/internal/core/domain/services"

	"gorm.io/gorm"
)

// GetStateDistributionQueryHandler reads the raw state column, bypassing the
// normalization the store applies to aggregates.
type GetStateDistributionQueryHandler struct {
	db     *gorm.DB
	policy services.AccessPolicy
}

func NewGetStateDistributionQueryHandler(db *gorm.DB) GetStateDistributionQueryHandler {
	return GetStateDistributionQueryHandler{
		db:     db,
		policy: services.NewAccessPolicy(),
	}
}

// Handle returns one entry per stored label, sorted by the rank of its
// canonical state and then by label.
func (h GetStateDistributionQueryHandler) Handle(
	ctx context.Context,
	query GetStateDistributionQuery,
) ([]GetStateDistributionQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}
	if err := h.policy.CanInspectStates(query.caller); err != nil {
		return nil, err
	}

	distribution := make([]GetStateDistributionQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			state,
			COUNT(*)
		FROM work_orders
		GROUP BY state
		ORDER BY state
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var entry GetStateDistributionQueryResponse
		if err = rows.Scan(&entry.Label, &entry.Count); err != nil {
			return nil, err
		}

		entry.Legacy = state.IsLegacy(entry.Label)
		if canonical := state.Normalize(entry.Label); canonical.IsValid() {
			entry.Canonical = canonical
		}
		distribution = append(distribution, entry)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	sortByRank(distribution)
	return distribution, nil
}

func sortByRank(distribution []GetStateDistributionQueryResponse) {
	slices.SortStableFunc(distribution, func(a, b GetStateDistributionQueryResponse) int {
		return a.Canonical.Rank() - b.Canonical.Rank()
	})
}
