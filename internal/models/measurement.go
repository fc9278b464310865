package models

import "gorm.io/datatypes"

// MeasurementTemplate defines the standard set of measurement fields a
// garment type requires (e.g. a SHIRT template lists chest, sleeve, collar).
type MeasurementTemplate struct {
	BaseModel
	Name                 string               `gorm:"not null" json:"name"`
	Description          string               `json:"description"`
	MeasurementType      MeasurementType      `gorm:"type:varchar(20);not null" json:"measurement_type"`
	StandardMeasurements datatypes.JSONMap    `gorm:"default:'{}'" json:"standard_measurements"`
	Records              []CustomerMeasurement `gorm:"foreignKey:TemplateID" json:"-"`
}

// CustomerMeasurement is one customer's recorded values for a template.
// The owning user must have role CUSTOMER; the service layer enforces this
// at creation time.
type CustomerMeasurement struct {
	BaseModel
	CustomerID   string            `gorm:"type:uuid;not null;index" json:"customer_id"`
	TemplateID   string            `gorm:"type:uuid;not null;index" json:"template_id"`
	Measurements datatypes.JSONMap `gorm:"default:'{}'" json:"measurements"`
	Notes        string            `json:"notes"`

	Customer *User                `gorm:"foreignKey:CustomerID" json:"customer,omitempty"`
	Template *MeasurementTemplate `gorm:"foreignKey:TemplateID" json:"template,omitempty"`
}
