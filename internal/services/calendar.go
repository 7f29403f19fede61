// calendar.go
//
// The booking calendar core: per-day slot lists kept sorted ascending by
// parsed slot start time, and the single booking flow that writes a slot
// assignment and flips the customer's treatment type.

package services

import (
	"errors"
	"fmt"
	"sort"

	"gorm.io/gorm"

	"github.com/salonsuite/salon-api/internal/models"
	"github.com/salonsuite/salon-api/internal/types"
)

// Wire messages for calendar failures.
var (
	ErrDayExists   = errors.New("A date entry already exists for this day")
	ErrDayNotFound = errors.New("Date entry not found.")
	ErrSlotExists  = errors.New("This timeslot already exists.")
)

// CreateDay creates an empty calendar for a day label. One calendar per
// day; a second create for the same label fails.
func CreateDay(db *gorm.DB, day string) (*models.DayCalendar, error) {
	var n int64
	if err := db.Model(&models.DayCalendar{}).Where("day = ?", day).Count(&n).Error; err != nil {
		return nil, err
	}
	if n > 0 {
		return nil, ErrDayExists
	}

	cal := models.DayCalendar{
		Day:   day,
		Times: models.TimeSlotList{},
	}
	if err := db.Create(&cal).Error; err != nil {
		return nil, err
	}
	return &cal, nil
}

// GetDay fetches the calendar for a day label.
func GetDay(db *gorm.DB, day string) (*models.DayCalendar, error) {
	var cal models.DayCalendar
	if err := db.Where("day = ?", day).First(&cal).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrDayNotFound
		}
		return nil, err
	}
	return &cal, nil
}

// AddTimeslot appends a slot to a day and re-sorts the whole sequence by
// parsed start time. Duplicate labels (exact string match) are rejected.
// The day row is written back in full.
func AddTimeslot(db *gorm.DB, day, timeLabel, booking string) (*models.DayCalendar, error) {
	cal, err := GetDay(db, day)
	if err != nil {
		return nil, err
	}

	for _, slot := range cal.Times {
		if slot.Time == timeLabel {
			return nil, ErrSlotExists
		}
	}

	cal.Times = append(cal.Times, models.TimeSlot{Time: timeLabel, Booking: booking})
	sortSlots(cal.Times)

	if err := db.Save(cal).Error; err != nil {
		return nil, err
	}
	return cal, nil
}

// BookTreatment assigns a slot on a day to a customer and marks the
// customer as in treatment. Only a missing day is an error: an unknown
// username updates no user, an unknown slot label changes no slot, and
// both still report success. The frontend relies on that.
func BookTreatment(db *gorm.DB, name, username, treatment, day, timeLabel string) error {
	cal, err := GetDay(db, day)
	if err != nil {
		return err
	}

	if err := SetTreatmentType(db, username, models.TreatmentTypeTreatment); err != nil {
		return err
	}

	for i := range cal.Times {
		if cal.Times[i].Time == timeLabel {
			cal.Times[i].Booking = fmt.Sprintf("%s (%s) - %s", name, username, treatment)
			break
		}
	}

	return db.Save(cal).Error
}

// sortSlots orders slots ascending by parsed start time. Stable, so slots
// with equal or unparseable start labels keep their relative order;
// unparseable labels sink to the end of the day.
func sortSlots(slots models.TimeSlotList) {
	sort.SliceStable(slots, func(i, j int) bool {
		return types.SortKey(slots[i].Time) < types.SortKey(slots[j].Time)
	})
}
