// profile.go
//
// User lookups and the treatment-record update. The admin lookup path
// matches on any of email, username or phone and is deliberately
// unauthenticated (back-office use); the token path matches by id only.

package services

import (
	"errors"

	"gorm.io/gorm"
	"gorm.io/hints"

	"github.com/salonsuite/salon-api/internal/models"
)

// ErrUserNotFound is returned when a lookup resolves to no user.
var ErrUserNotFound = errors.New("User not found.")

// UserByID fetches a user by primary key.
func UserByID(db *gorm.DB, id string) (*models.User, error) {
	var u models.User
	if err := db.Where("id = ?", id).First(&u).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return &u, nil
}

// UserByLogin matches the login identifier against email or username.
func UserByLogin(db *gorm.DB, input string) (*models.User, error) {
	var u models.User
	err := db.Where("email = ? OR username = ?", input, input).First(&u).Error
	if err != nil {
		return nil, err
	}
	return &u, nil
}

// UserByAnyIdentifier matches email, username or phone, first hit wins.
func UserByAnyIdentifier(db *gorm.DB, input string) (*models.User, error) {
	tx := db
	// MySQL tends to pick a full scan for the three-way OR.
	if db.Dialector.Name() == "mysql" {
		tx = tx.Clauses(hints.UseIndex("idx_users_email", "idx_users_username", "idx_users_phone"))
	}

	var u models.User
	err := tx.Where("email = ? OR username = ? OR phone = ?", input, input, input).First(&u).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return &u, nil
}

// UpdateTreatmentRecord overwrites the questionnaire and the two free-text
// notes wholesale and marks the first login done. A username that matches
// nothing updates nothing and is still a success; the caller cannot tell.
func UpdateTreatmentRecord(db *gorm.DB, username string, answers models.TreatmentAnswers, treatmentInfo, productInfo string) error {
	return db.Model(&models.User{}).
		Where("username = ?", username).
		Updates(map[string]interface{}{
			"treatments":       answers,
			"treatment_info":   treatmentInfo,
			"product_info":     productInfo,
			"first_login_done": true,
		}).Error
}

// SetTreatmentType writes the treatment type for a username. Like
// UpdateTreatmentRecord, a miss is silent.
func SetTreatmentType(db *gorm.DB, username, treatmentType string) error {
	return db.Model(&models.User{}).
		Where("username = ?", username).
		Update("treatment_type", treatmentType).Error
}
