package workorderrepo

import (
	"context"
	"errors"
	"strings"
	"time"

	"workorders/internal/core/domain/model/identity"
	"workorders/internal/core/domain/model/state"
	"workorders/internal/core/domain/model/workorder"
	"workorders/internal/pkg/errs"

	"github.com/lib/pq"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// columnLockNamespace is the first key of the advisory locks taken per state
// column; the second key is the state rank.
const columnLockNamespace = 0x574f

// GormWorkOrderRepository implements ports.WorkOrderRepository using GORM.
// The *gorm.DB it holds is either the root connection or an open
// transaction handed out by the unit of work. The connection is expected to
// be opened with TranslateError enabled.
type GormWorkOrderRepository struct {
	db  *gorm.DB
	now func() time.Time
}

// NewGormWorkOrderRepository creates a new GORM work-order repository.
func NewGormWorkOrderRepository(db *gorm.DB) *GormWorkOrderRepository {
	return &GormWorkOrderRepository{
		db:  db,
		now: func() time.Time { return time.Now().UTC() },
	}
}

// Add inserts a new work order and stores the generated id back on it.
func (r *GormWorkOrderRepository) Add(ctx context.Context, wo *workorder.WorkOrder) error {
	if err := wo.Validate(); err != nil {
		return err
	}

	now := r.now()
	dto := fromDomain(wo)
	dto.ID = 0
	dto.CreatedAt = now
	dto.UpdatedAt = now

	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return errs.NewConflictErrorWithCause("number", dto.Number, err)
		}
		return err
	}

	wo.MarkPersisted(dto.ID, dto.CreatedAt, dto.UpdatedAt)
	return nil
}

// Update writes every column except id and created_at.
func (r *GormWorkOrderRepository) Update(ctx context.Context, wo *workorder.WorkOrder) error {
	if err := wo.Validate(); err != nil {
		return err
	}

	dto := fromDomain(wo)
	dto.UpdatedAt = r.now()

	result := r.db.WithContext(ctx).
		Model(&WorkOrderDTO{}).
		Where("id = ?", dto.ID).
		Select("*").
		Omit("id", "created_at").
		Updates(&dto)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrDuplicatedKey) {
			return errs.NewConflictErrorWithCause("number", dto.Number, result.Error)
		}
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("work order", dto.ID)
	}

	wo.MarkPersisted(dto.ID, wo.CreatedAt(), dto.UpdatedAt)
	return nil
}

// Get retrieves a work order by id.
func (r *GormWorkOrderRepository) Get(ctx context.Context, id int64) (*workorder.WorkOrder, error) {
	return r.get(r.db.WithContext(ctx), id)
}

// GetForUpdate retrieves a work order and holds its row lock.
func (r *GormWorkOrderRepository) GetForUpdate(ctx context.Context, id int64) (*workorder.WorkOrder, error) {
	return r.get(r.db.WithContext(ctx).Clauses(clause.Locking{Strength: clause.LockingStrengthUpdate}), id)
}

func (r *GormWorkOrderRepository) get(db *gorm.DB, id int64) (*workorder.WorkOrder, error) {
	var dto WorkOrderDTO
	if err := db.First(&dto, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("work order", id)
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetManyForUpdate locks the rows in id order so that concurrent batches
// acquire them in the same sequence.
func (r *GormWorkOrderRepository) GetManyForUpdate(ctx context.Context, ids []int64) ([]*workorder.WorkOrder, error) {
	if len(ids) == 0 {
		return []*workorder.WorkOrder{}, nil
	}

	// Bound as one bigint[] parameter.
	idArray, err := pq.Array(ids).Value()
	if err != nil {
		return nil, err
	}

	var dtos []WorkOrderDTO
	err = r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: clause.LockingStrengthUpdate}).
		Where("id = ANY(?::bigint[])", idArray).
		Order("id").
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	return toDomainList(dtos)
}

// List returns the board in display order.
func (r *GormWorkOrderRepository) List(ctx context.Context, technicians ...string) ([]*workorder.WorkOrder, error) {
	query := r.db.WithContext(ctx).Model(&WorkOrderDTO{})

	if len(technicians) > 0 {
		keys := make([]string, 0, len(technicians))
		for _, name := range technicians {
			keys = append(keys, identity.NameKey(name))
		}
		query = query.Where("technician_key IN ?", keys)
	}

	var dtos []WorkOrderDTO
	if err := query.Order(boardOrder()).Find(&dtos).Error; err != nil {
		return nil, err
	}

	return toDomainList(dtos)
}

// boardOrder ranks rows by canonical state (legacy labels share the rank of
// their canonical state), then by manual order, then newest first.
func boardOrder() clause.OrderBy {
	var sql strings.Builder
	vars := make([]any, 0, 16)

	sql.WriteString("CASE state")
	for _, s := range state.All() {
		for _, label := range s.Labels() {
			sql.WriteString(" WHEN ? THEN ?")
			vars = append(vars, label, s.Rank())
		}
	}
	sql.WriteString(" ELSE ? END, sort_order ASC, created_at DESC, id DESC")
	vars = append(vars, len(state.All())+1)

	return clause.OrderBy{Expression: clause.Expr{SQL: sql.String(), Vars: vars, WithoutParentheses: true}}
}

// NumberExists reports whether number is already taken.
func (r *GormWorkOrderRepository) NumberExists(ctx context.Context, number workorder.Number) (bool, error) {
	if err := number.Validate(); err != nil {
		return false, err
	}

	var count int64
	err := r.db.WithContext(ctx).Model(&WorkOrderDTO{}).Where("number = ?", number.String()).Count(&count).Error
	if err != nil {
		return false, err
	}

	return count > 0, nil
}

// Delete removes a work order unconditionally.
func (r *GormWorkOrderRepository) Delete(ctx context.Context, id int64) (bool, error) {
	result := r.db.WithContext(ctx).Where("id = ?", id).Delete(&WorkOrderDTO{})
	if result.Error != nil {
		return false, result.Error
	}

	return result.RowsAffected > 0, nil
}

// LockColumn takes a transaction scoped advisory lock for the state column.
// Outside a transaction the lock is released as soon as the statement ends.
func (r *GormWorkOrderRepository) LockColumn(ctx context.Context, s state.State) error {
	if err := s.Validate(); err != nil {
		return err
	}

	return r.db.WithContext(ctx).Exec("SELECT pg_advisory_xact_lock(?, ?)", columnLockNamespace, s.Rank()).Error
}

// MaxOrder returns the highest order in the column, or 0 when it is empty.
func (r *GormWorkOrderRepository) MaxOrder(ctx context.Context, s state.State) (int, error) {
	var highest int
	err := r.db.WithContext(ctx).
		Model(&WorkOrderDTO{}).
		Select("COALESCE(MAX(sort_order), 0)").
		Where("state IN ?", s.Labels()).
		Scan(&highest).Error
	if err != nil {
		return 0, err
	}

	return highest, nil
}

// ApplyPositions writes the order and state of each position.
func (r *GormWorkOrderRepository) ApplyPositions(ctx context.Context, positions []workorder.Position) error {
	now := r.now()
	for _, p := range positions {
		if err := p.State.Validate(); err != nil {
			return err
		}

		result := r.db.WithContext(ctx).
			Model(&WorkOrderDTO{}).
			Where("id = ?", p.ID).
			Updates(map[string]any{
				"sort_order": p.Order,
				"state":      string(p.State),
				"updated_at": now,
			})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return errs.NewObjectNotFoundError("work order", p.ID)
		}
	}

	return nil
}

// ReplaceLegacyState relabels rows stored with a legacy label. Rows keep
// their order since legacy rows already sort inside the canonical column.
func (r *GormWorkOrderRepository) ReplaceLegacyState(
	ctx context.Context,
	legacy string,
	canonical state.State,
) (int64, error) {
	if err := canonical.Validate(); err != nil {
		return 0, err
	}
	if state.Normalize(legacy) != canonical || !state.IsLegacy(legacy) {
		return 0, errs.NewValueIsInvalidError("legacy state " + legacy)
	}

	result := r.db.WithContext(ctx).
		Model(&WorkOrderDTO{}).
		Where("state = ?", legacy).
		Updates(map[string]any{"state": string(canonical), "updated_at": r.now()})
	if result.Error != nil {
		return 0, result.Error
	}

	return result.RowsAffected, nil
}
