// calendar_test.go
//
// Booking calendar handler tests.

package handlers_test

import (
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/salonsuite/salon-api/internal/handlers"
	"github.com/salonsuite/salon-api/internal/models"
	"github.com/salonsuite/salon-api/tests/helpers"
)

func newCalendarApp(db *gorm.DB) *fiber.App {
	app := fiber.New()
	h := &handlers.CalendarHandler{DB: db}
	app.Post("/create-date", h.CreateDate)
	app.Post("/add-timeslot", h.AddTimeslot)
	app.Post("/get-date", h.GetDate)
	app.Post("/book-treatment", h.BookTreatment)
	return app
}

func slotTimes(t *testing.T, env helpers.Envelope) []string {
	t.Helper()
	date, ok := env["date"].(map[string]interface{})
	if !ok {
		t.Fatalf("Expected a date object, got %v", env["date"])
	}
	raw, ok := date["times"].([]interface{})
	if !ok {
		t.Fatalf("Expected a times array, got %v", date["times"])
	}
	labels := make([]string, 0, len(raw))
	for _, s := range raw {
		slot := s.(map[string]interface{})
		labels = append(labels, slot["time"].(string))
	}
	return labels
}

func TestCreateDateAndDuplicate(t *testing.T) {
	db := setupTestDB(t)
	app := newCalendarApp(db)

	resp := jsonPost(t, app, "/create-date", fiber.Map{"day": "Monday"})
	helpers.AssertStatus(t, resp, 200)
	env := helpers.ParseEnvelope(t, resp, true)
	if env["message"] != "Date added successfully" {
		t.Errorf("Unexpected message: %v", env["message"])
	}
	if labels := slotTimes(t, env); len(labels) != 0 {
		t.Errorf("Expected a fresh day to have no slots, got %v", labels)
	}

	resp = jsonPost(t, app, "/create-date", fiber.Map{"day": "Monday"})
	helpers.AssertStatus(t, resp, 400)
	env = helpers.ParseEnvelope(t, resp, false)
	helpers.AssertErrors(t, env, "A date entry already exists for this day")
}

func TestAddTimeslotKeepsDaySorted(t *testing.T) {
	db := setupTestDB(t)
	app := newCalendarApp(db)

	resp := jsonPost(t, app, "/create-date", fiber.Map{"day": "Monday"})
	helpers.AssertStatus(t, resp, 200)

	resp = jsonPost(t, app, "/add-timeslot", fiber.Map{"day": "Monday", "time": "9:00am-10:00am"})
	helpers.AssertStatus(t, resp, 200)

	// the earlier slot must slot in before the existing one
	resp = jsonPost(t, app, "/add-timeslot", fiber.Map{"day": "Monday", "time": "8:00am-9:00am"})
	helpers.AssertStatus(t, resp, 200)
	env := helpers.ParseEnvelope(t, resp, true)
	if env["message"] != "Time added Successfully" {
		t.Errorf("Unexpected message: %v", env["message"])
	}

	labels := slotTimes(t, env)
	want := []string{"8:00am-9:00am", "9:00am-10:00am"}
	if len(labels) != len(want) {
		t.Fatalf("Expected %d slots, got %v", len(want), labels)
	}
	for i := range want {
		if labels[i] != want[i] {
			t.Errorf("Slot %d: expected %q, got %q", i, want[i], labels[i])
		}
	}
}

func TestAddTimeslotErrors(t *testing.T) {
	db := setupTestDB(t)
	app := newCalendarApp(db)

	resp := jsonPost(t, app, "/add-timeslot", fiber.Map{"day": "Tuesday", "time": "9:00am-10:00am"})
	helpers.AssertStatus(t, resp, 404)
	env := helpers.ParseEnvelope(t, resp, false)
	helpers.AssertErrors(t, env, "Date entry not found.")

	resp = jsonPost(t, app, "/create-date", fiber.Map{"day": "Tuesday"})
	helpers.AssertStatus(t, resp, 200)
	resp = jsonPost(t, app, "/add-timeslot", fiber.Map{"day": "Tuesday", "time": "9:00am-10:00am"})
	helpers.AssertStatus(t, resp, 200)

	resp = jsonPost(t, app, "/add-timeslot", fiber.Map{"day": "Tuesday", "time": "9:00am-10:00am"})
	helpers.AssertStatus(t, resp, 400)
	env = helpers.ParseEnvelope(t, resp, false)
	helpers.AssertErrors(t, env, "This timeslot already exists.")

	// a rejected duplicate leaves the day untouched
	resp = jsonPost(t, app, "/get-date", fiber.Map{"day": "Tuesday"})
	env = helpers.ParseEnvelope(t, resp, true)
	if labels := slotTimes(t, env); len(labels) != 1 {
		t.Errorf("Expected a single slot after the rejected duplicate, got %v", labels)
	}
}

func TestGetDateMissSentinel(t *testing.T) {
	db := setupTestDB(t)
	app := newCalendarApp(db)

	resp := jsonPost(t, app, "/get-date", fiber.Map{"day": "Nonexistent"})
	helpers.AssertStatus(t, resp, 200)
	env := helpers.ParseEnvelope(t, resp, true)

	date, ok := env["date"].(map[string]interface{})
	if !ok {
		t.Fatalf("Expected a date object, got %v", env["date"])
	}
	if date["day"] != "Nonexistent" {
		t.Errorf("Expected the requested day echoed back, got %v", date["day"])
	}
	// on a miss, times degrades from a list to this sentinel string
	if date["times"] != "Date not found" {
		t.Errorf("Expected the sentinel string, got %v", date["times"])
	}
}

func TestBookTreatment(t *testing.T) {
	db := setupTestDB(t)
	app := newCalendarApp(db)

	user := models.User{
		ID:            uuid.NewString(),
		Name:          "Al",
		Email:         "al@example.com",
		Phone:         "0503333333",
		Username:      "aluser",
		Password:      "irrelevant",
		TreatmentType: models.TreatmentTypeDiagnosis,
	}
	if err := db.Create(&user).Error; err != nil {
		t.Fatalf("Failed to create user: %v", err)
	}

	resp := jsonPost(t, app, "/create-date", fiber.Map{"day": "Monday"})
	helpers.AssertStatus(t, resp, 200)
	resp = jsonPost(t, app, "/add-timeslot", fiber.Map{"day": "Monday", "time": "8:00am-9:00am"})
	helpers.AssertStatus(t, resp, 200)

	resp = jsonPost(t, app, "/book-treatment", fiber.Map{
		"name":      "Al",
		"username":  "aluser",
		"treatment": "Cut",
		"day":       "Monday",
		"time":      "8:00am-9:00am",
	})
	helpers.AssertStatus(t, resp, 200)
	env := helpers.ParseEnvelope(t, resp, true)
	if env["message"] != "Booking updated successfully" {
		t.Errorf("Unexpected message: %v", env["message"])
	}

	var cal models.DayCalendar
	if err := db.Where("day = ?", "Monday").First(&cal).Error; err != nil {
		t.Fatalf("Failed to reload day: %v", err)
	}
	if len(cal.Times) != 1 || cal.Times[0].Booking != "Al (aluser) - Cut" {
		t.Errorf("Unexpected booking state: %+v", cal.Times)
	}

	if err := db.First(&user, "id = ?", user.ID).Error; err != nil {
		t.Fatalf("Failed to reload user: %v", err)
	}
	if user.TreatmentType != models.TreatmentTypeTreatment {
		t.Errorf("Expected the user to switch to Treatment, got %q", user.TreatmentType)
	}

	// a time that matches no slot still reports success
	resp = jsonPost(t, app, "/book-treatment", fiber.Map{
		"name":      "Al",
		"username":  "aluser",
		"treatment": "Cut",
		"day":       "Monday",
		"time":      "11:00am-12:00pm",
	})
	helpers.AssertStatus(t, resp, 200)
	helpers.ParseEnvelope(t, resp, true)

	// an unknown day does not
	resp = jsonPost(t, app, "/book-treatment", fiber.Map{
		"name":      "Al",
		"username":  "aluser",
		"treatment": "Cut",
		"day":       "Friday",
		"time":      "8:00am-9:00am",
	})
	helpers.AssertStatus(t, resp, 404)
	env = helpers.ParseEnvelope(t, resp, false)
	helpers.AssertErrors(t, env, "Date entry not found.")
}
