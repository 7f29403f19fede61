package services

import (
	"gorm.io/gorm"

	"github.com/salonsuite/salon-api/internal/models"
)

// NextProductID returns one greater than the current maximum product id,
// or 1 for an empty catalog. Read-max-then-write is not atomic; two
// concurrent adds can be assigned the same id. Accepted limitation.
func NextProductID(db *gorm.DB) (uint64, error) {
	var max uint64
	err := db.Model(&models.Product{}).
		Select("COALESCE(MAX(id), 0)").
		Scan(&max).Error
	if err != nil {
		return 0, err
	}
	return max + 1, nil
}

// AddProduct creates a catalog entry with the next sequential id.
func AddProduct(db *gorm.DB, name, image, description string) (*models.Product, error) {
	id, err := NextProductID(db)
	if err != nil {
		return nil, err
	}

	p := models.Product{
		ID:          id,
		Name:        name,
		Image:       image,
		Description: description,
	}
	if err := db.Create(&p).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

// RemoveProduct deletes the product with the given id. Deleting an id that
// does not exist is a no-op, not an error.
func RemoveProduct(db *gorm.DB, id uint64) error {
	return db.Where("id = ?", id).Delete(&models.Product{}).Error
}

// ListProducts returns the whole catalog in id order.
func ListProducts(db *gorm.DB) ([]models.Product, error) {
	products := []models.Product{}
	if err := db.Order("id asc").Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}
