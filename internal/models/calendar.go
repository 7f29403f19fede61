package models

import (
	"database/sql/driver"
	"encoding/json"

	"gorm.io/gorm"
	"gorm.io/gorm/schema"
)

// TimeSlot is one bookable range within a day, labeled with the 12-hour
// range string the frontend renders ("9:00am-10:00am"). Booking is
// free text; empty or placeholder means unbooked, and rebooking simply
// overwrites it.
type TimeSlot struct {
	Time    string `json:"time"`
	Booking string `json:"booking"`
}

// TimeSlotList is the ordered slot sequence of one day, stored as a single
// JSON column. Mutations read the whole list, change it in memory and
// write it back, so concurrent writers on the same day can lose updates;
// the store is the only arbiter, as in the original service.
type TimeSlotList []TimeSlot

// MarshalJSON keeps an empty day encoding as [] rather than null.
func (l TimeSlotList) MarshalJSON() ([]byte, error) {
	if l == nil {
		return []byte("[]"), nil
	}
	return json.Marshal([]TimeSlot(l))
}

// Value implements the driver.Valuer interface.
func (l TimeSlotList) Value() (driver.Value, error) {
	return jsonColumnValue(l)
}

// Scan implements the sql.Scanner interface.
func (l *TimeSlotList) Scan(value interface{}) error {
	return jsonColumnScan(value, l)
}

// GormDBDataType ensures the correct data type is used for each database driver.
func (TimeSlotList) GormDBDataType(db *gorm.DB, field *schema.Field) string {
	return jsonColumnType(db, field)
}

// DayCalendar is the booking calendar for one labeled day. Within a day,
// slot labels are unique and the list is kept sorted ascending by parsed
// start time.
type DayCalendar struct {
	ID    uint64       `gorm:"primaryKey;autoIncrement" json:"-"`
	Day   string       `gorm:"uniqueIndex;size:255;not null" json:"day"`
	Times TimeSlotList `gorm:"type:json" json:"times"`
}

// TableName overrides the table name for DayCalendar
func (DayCalendar) TableName() string {
	return "day_calendars"
}
