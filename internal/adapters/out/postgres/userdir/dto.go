// Package userdir reads technician accounts from the users table. The table
// belongs to the authentication system; this package never writes to it.
package userdir

import (
	"workorders/internal/core/domain/model/identity"
	"workorders/internal/core/ports"
)

// UserDTO maps the columns of the users table this service reads.
type UserDTO struct {
	ID       int64  `gorm:"primaryKey"`
	Name     string `gorm:"size:255"`
	Username string `gorm:"size:255;uniqueIndex"`
	Role     string `gorm:"size:32;not null"`
}

// TableName overrides GORM's default naming convention.
func (UserDTO) TableName() string {
	return "users"
}

func toAccount(dto UserDTO) (ports.Account, error) {
	role, err := identity.ParseRole(dto.Role)
	if err != nil {
		return ports.Account{}, err
	}

	return ports.Account{Name: dto.Name, Login: dto.Username, Role: role}, nil
}
