// Package workorderrepo persists work-order aggregates with GORM.
// This file holds the table mapping and the conversion between the
// aggregate and its row.
package workorderrepo

import (
	"time"

	"workorders/internal/core/domain/model/identity"
	"workorders/internal/core/domain/model/workorder"
)

// WorkOrderDTO is the row shape of the work_orders table. The state column
// may still hold legacy labels written by older clients; they are normalized
// when rows are converted back to aggregates.
type WorkOrderDTO struct {
	ID            int64  `gorm:"primaryKey;autoIncrement"`
	Number        string `gorm:"type:char(6);not null;uniqueIndex"`
	State         string `gorm:"size:32;not null;index:idx_work_orders_column,priority:1"`
	SortOrder     int    `gorm:"column:sort_order;not null;default:0;index:idx_work_orders_column,priority:2"`
	Technician    string `gorm:"size:255;not null"`
	TechnicianKey string `gorm:"size:255;not null;index"`

	Device                string `gorm:"not null"`
	Municipality          string `gorm:"not null"`
	Notes                 string `gorm:"type:text"`
	CustomerName          string
	CustomerEmail         string
	CustomerTaxID         string `gorm:"column:customer_tax_id"`
	DataProtectionConsent bool   `gorm:"not null;default:false"`

	TechnicianNotes string `gorm:"type:text"`

	Report    string   `gorm:"type:text"`
	Photos    []string `gorm:"type:jsonb;serializer:json"`
	Signature string   `gorm:"type:text"`

	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

// TableName overrides GORM's default naming convention.
func (WorkOrderDTO) TableName() string {
	return "work_orders"
}

func fromDomain(wo *workorder.WorkOrder) WorkOrderDTO {
	details := wo.Details()
	photos := wo.Photos()
	if photos == nil {
		photos = []string{}
	}

	return WorkOrderDTO{
		ID:                    wo.ID(),
		Number:                wo.Number().String(),
		State:                 string(wo.State()),
		SortOrder:             wo.Order(),
		Technician:            wo.Technician(),
		TechnicianKey:         identity.NameKey(wo.Technician()),
		Device:                details.Device,
		Municipality:          details.Municipality,
		Notes:                 details.Notes,
		CustomerName:          details.CustomerName,
		CustomerEmail:         details.CustomerEmail,
		CustomerTaxID:         details.CustomerTaxID,
		DataProtectionConsent: details.DataProtectionConsent,
		TechnicianNotes:       wo.TechnicianNotes(),
		Report:                wo.Report(),
		Photos:                photos,
		Signature:             wo.Signature(),
		CreatedAt:             wo.CreatedAt(),
		UpdatedAt:             wo.UpdatedAt(),
	}
}

func toDomain(dto WorkOrderDTO) (*workorder.WorkOrder, error) {
	return workorder.RestoreWorkOrder(workorder.Snapshot{
		ID:         dto.ID,
		Number:     dto.Number,
		State:      dto.State,
		Order:      dto.SortOrder,
		Technician: dto.Technician,
		Details: workorder.Details{
			Device:                dto.Device,
			Municipality:          dto.Municipality,
			Notes:                 dto.Notes,
			CustomerName:          dto.CustomerName,
			CustomerEmail:         dto.CustomerEmail,
			CustomerTaxID:         dto.CustomerTaxID,
			DataProtectionConsent: dto.DataProtectionConsent,
		},
		TechnicianNotes: dto.TechnicianNotes,
		Report:          dto.Report,
		Photos:          dto.Photos,
		Signature:       dto.Signature,
		CreatedAt:       dto.CreatedAt,
		UpdatedAt:       dto.UpdatedAt,
	})
}

func toDomainList(dtos []WorkOrderDTO) ([]*workorder.WorkOrder, error) {
	result := make([]*workorder.WorkOrder, 0, len(dtos))
	for _, dto := range dtos {
		wo, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		result = append(result, wo)
	}
	return result, nil
}
