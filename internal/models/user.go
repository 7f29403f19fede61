package models

import (
	"database/sql/driver"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/schema"
)

// Treatment type values. Booking a treatment flips a user from Diagnosis
// to Treatment; there is no transition back.
const (
	TreatmentTypeDiagnosis = "Diagnosis"
	TreatmentTypeTreatment = "Treatment"
)

// TreatmentAnswers is the scalp/hair questionnaire filled in on first
// login. The field set is fixed; everything defaults to false/empty.
// Stored as a single JSON column and always overwritten wholesale.
type TreatmentAnswers struct {
	OilySweetItchingDandruff bool   `json:"oilySweetItchingDandruff"`
	ScalpPainWhenTouched     bool   `json:"scalpPainWhenTouched"`
	DrynessTensionPain       bool   `json:"drynessTensionPain"`
	FlakingScalp             bool   `json:"flakingScalp"`
	HairLossAmount           string `json:"hairLossAmount"`
	HairPillowLoss           string `json:"hairPillowLoss"`
	ShampooFrequency         string `json:"shampooFrequency"`
	PreBathProduct           string `json:"preBathProduct"`
	HotWaterUsage            bool   `json:"hotWaterUsage"`
	ColdWaterUsage           bool   `json:"coldWaterUsage"`
	Stress                   string `json:"stress"`
	Meals                    string `json:"meals"`
	WaterIntake              string `json:"waterIntake"`
	Snacks                   string `json:"snacks"`
	BloodTests               string `json:"bloodTests"`
	SleepIssues              string `json:"sleepIssues"`
}

// Value implements the driver.Valuer interface.
func (a TreatmentAnswers) Value() (driver.Value, error) {
	return jsonColumnValue(a)
}

// Scan implements the sql.Scanner interface.
func (a *TreatmentAnswers) Scan(value interface{}) error {
	return jsonColumnScan(value, a)
}

// GormDBDataType ensures the correct data type is used for each database driver.
func (TreatmentAnswers) GormDBDataType(db *gorm.DB, field *schema.Field) string {
	return jsonColumnType(db, field)
}

// User is a salon customer account. Email, phone and username are each
// unique. Password holds the bcrypt hash, never plaintext; it is omitted
// from JSON whenever a handler blanks it (see Sanitized).
type User struct {
	ID             string           `gorm:"type:char(36);primaryKey" json:"id"`
	Name           string           `gorm:"size:255;not null" json:"name"`
	Email          string           `gorm:"uniqueIndex:idx_users_email;size:255" json:"email"`
	Phone          string           `gorm:"uniqueIndex:idx_users_phone;size:64" json:"phone"`
	Username       string           `gorm:"uniqueIndex:idx_users_username;size:255" json:"username"`
	Password       string           `gorm:"size:255" json:"password,omitempty"`
	Date           time.Time        `gorm:"autoCreateTime" json:"date"`
	FirstLoginDone bool             `gorm:"not null;default:false" json:"first"`
	Treatments     TreatmentAnswers `gorm:"type:json" json:"treatments"`
	TreatmentInfo  string           `gorm:"type:text" json:"treatmentInfo"`
	ProductInfo    string           `gorm:"type:text" json:"productInfo"`
	TreatmentType  string           `gorm:"size:32;not null;default:Diagnosis" json:"treatmentType"`
}

// TableName overrides the table name for User
func (User) TableName() string {
	return "users"
}

// Sanitized returns a copy safe to hand back to the account owner: the
// password hash is blanked and drops out of the JSON encoding.
func (u User) Sanitized() User {
	u.Password = ""
	return u
}
