package model

import (
	"time"

	"github.com/google/uuid"
)

// RiderModel mirrors the 'riders' table. Position columns are nullable: a rider
// has no coordinates until the app sends the first location ping.
type RiderModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Email       string    `gorm:"type:varchar(255);unique;not null"`
	Name        string    `gorm:"type:varchar(100)"`
	Phone       string    `gorm:"type:varchar(32)"`
	Latitude    *float64  `gorm:"type:double precision"`
	Longitude   *float64  `gorm:"type:double precision"`
	Status      string    `gorm:"type:varchar(16);not null;default:'inactive';index"`
	IsVerified  bool      `gorm:"not null;default:false"`
	DeviceToken *string   `gorm:"type:varchar(512)"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
	DeletedAt   *time.Time `gorm:"index"`

	OperatingAreas []RiderOperatingAreaModel `gorm:"foreignKey:RiderID"`
}

// TableName explicitly sets the table name for GORM.
func (RiderModel) TableName() string {
	return "riders"
}

// RiderOperatingAreaModel mirrors the 'rider_operating_areas' join table.
// Landmarks are stored lowercase.
type RiderOperatingAreaModel struct {
	RiderID   uuid.UUID `gorm:"type:uuid;primaryKey"`
	Landmark  string    `gorm:"type:varchar(100);primaryKey;index"`
	CreatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (RiderOperatingAreaModel) TableName() string {
	return "rider_operating_areas"
}
