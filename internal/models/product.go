package models

import "time"

// Product is a storefront catalog entry. Ids are assigned sequentially by
// the catalog service, not by the database, so two concurrent adds can
// collide; that matches the original service and is accepted.
type Product struct {
	ID          uint64    `gorm:"primaryKey;autoIncrement:false" json:"id"`
	Name        string    `gorm:"size:255;not null" json:"name"`
	Image       string    `gorm:"size:512;not null" json:"image"`
	Description string    `gorm:"type:text" json:"description"`
	Date        time.Time `gorm:"autoCreateTime" json:"date"`
}

// TableName overrides the table name for Product
func (Product) TableName() string {
	return "products"
}
