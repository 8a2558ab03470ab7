package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// DeliveryModel mirrors the 'deliveries' table. The confirmation code carries a
// partial unique index over non-delivered rows, so active codes never collide
// while historical ones may repeat.
type DeliveryModel struct {
	ID               uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Code             int        `gorm:"not null;uniqueIndex:idx_deliveries_active_code,where:is_delivered = false"`
	UserID           uuid.UUID  `gorm:"type:uuid;not null;index"`
	RiderID          *uuid.UUID `gorm:"type:uuid;index"`
	PackageName      string     `gorm:"type:varchar(255);not null"`
	Phone            string     `gorm:"type:varchar(32);not null"`
	PickupLocation   string     `gorm:"type:text;not null"`
	DeliveryLocation string     `gorm:"type:text;not null"`
	PickupLatitude   *float64   `gorm:"type:double precision"`
	PickupLongitude  *float64   `gorm:"type:double precision"`
	DropoffLatitude  *float64   `gorm:"type:double precision"`
	DropoffLongitude *float64   `gorm:"type:double precision"`
	EstimatedPrice   float64    `gorm:"not null"`
	ImageURL         string     `gorm:"type:text"`
	Landmark         string     `gorm:"type:varchar(100);not null;index"`
	IsPickedUp       bool       `gorm:"not null;default:false"`
	IsDelivered      bool       `gorm:"not null;default:false"`
	Status           string     `gorm:"type:varchar(16);not null;default:'placed'"`
	CreatedAt        time.Time
	UpdatedAt        time.Time
	DeletedAt        gorm.DeletedAt `gorm:"index"`

	User  *UserModel  `gorm:"foreignKey:UserID"`
	Rider *RiderModel `gorm:"foreignKey:RiderID"`
}

// TableName explicitly sets the table name for GORM.
func (DeliveryModel) TableName() string {
	return "deliveries"
}
