package userdir

import (
	"context"
	"errors"
	"strings"

	"workorders/internal/core/domain/model/identity"
	"workorders/internal/core/ports"
	"workorders/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormTechnicianDirectory implements ports.TechnicianDirectory using GORM.
type GormTechnicianDirectory struct {
	db *gorm.DB
}

// NewGormTechnicianDirectory creates a directory reading from db.
func NewGormTechnicianDirectory(db *gorm.DB) *GormTechnicianDirectory {
	return &GormTechnicianDirectory{db: db}
}

// FindByNameOrLogin matches name against the display name or the username,
// ignoring case and collapsing runs of whitespace the way identity.NameKey does.
func (d *GormTechnicianDirectory) FindByNameOrLogin(ctx context.Context, name string) (ports.Account, error) {
	name = strings.Join(strings.Fields(name), " ")
	if name == "" {
		return ports.Account{}, errs.NewValueIsRequiredError("technician")
	}

	var dto UserDTO
	err := d.db.WithContext(ctx).
		Where(`LOWER(regexp_replace(TRIM(name), '\s+', ' ', 'g')) = LOWER(?) OR LOWER(username) = LOWER(?)`, name, name).
		Order("id").
		First(&dto).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ports.Account{}, errs.NewObjectNotFoundError("technician", name)
		}
		return ports.Account{}, err
	}

	return toAccount(dto)
}

// ListTechnicians returns non-admin accounts ordered by name.
func (d *GormTechnicianDirectory) ListTechnicians(ctx context.Context) ([]ports.Account, error) {
	var dtos []UserDTO
	err := d.db.WithContext(ctx).
		Where("LOWER(role) <> ?", string(identity.Admin)).
		Order("name").
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	accounts := make([]ports.Account, 0, len(dtos))
	for _, dto := range dtos {
		account, accErr := toAccount(dto)
		if accErr != nil {
			return nil, accErr
		}
		accounts = append(accounts, account)
	}

	return accounts, nil
}
