package db_models

import "github.com/shopspring/decimal"

type Orphanage struct {
	BaseModel
	Name           string          `gorm:"size:255;not null"`
	Latitude       decimal.Decimal `gorm:"type:decimal(10,7);not null"`
	Longitude      decimal.Decimal `gorm:"type:decimal(10,7);not null"`
	About          string          `gorm:"type:text;not null"`
	Instructions   string          `gorm:"type:text;not null"`
	OpeningHours   string          `gorm:"size:255;not null"`
	OpenOnWeekends bool            `gorm:"not null;default:false"`

	Images []Image `gorm:"foreignKey:OrphanageID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
}
