// users_test.go
//
// Signup, login and profile handler tests.

package handlers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/salonsuite/salon-api/internal/app"
	"github.com/salonsuite/salon-api/internal/config"
	"github.com/salonsuite/salon-api/internal/handlers"
	"github.com/salonsuite/salon-api/internal/middleware"
	"github.com/salonsuite/salon-api/internal/models"
	"github.com/salonsuite/salon-api/tests/helpers"
)

const testSecret = "test_secret"

func newUserApp(db *gorm.DB) *fiber.App {
	// the auth middleware reports failures through the app error handler
	a := fiber.New(fiber.Config{ErrorHandler: app.ErrorHandler})
	h := &handlers.UserHandler{DB: db, Cfg: &config.Config{JWTSecret: testSecret}}
	a.Post("/signup", h.Signup)
	a.Post("/login", h.Login)
	a.Get("/getuserinfo", middleware.RequireUser(testSecret), h.GetUserInfo)
	a.Post("/getuserinfoadmin", h.GetUserInfoAdmin)
	a.Post("/updateuserinfo", h.UpdateUserInfo)
	return a
}

func jsonPost(t *testing.T, app *fiber.App, path string, body interface{}) *http.Response {
	t.Helper()
	payload, err := json.Marshal(body)
	if err != nil {
		t.Fatalf("Failed to marshal request body: %v", err)
	}
	req := httptest.NewRequest("POST", path, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("Failed to execute request: %v", err)
	}
	return resp
}

func signup(t *testing.T, app *fiber.App, name, email, phone, username, password string) string {
	t.Helper()
	resp := jsonPost(t, app, "/signup", fiber.Map{
		"name":     name,
		"email":    email,
		"phone":    phone,
		"username": username,
		"password": password,
	})
	helpers.AssertStatus(t, resp, 200)
	env := helpers.ParseEnvelope(t, resp, true)
	token, _ := env["token"].(string)
	if token == "" {
		t.Fatal("Signup returned no token")
	}
	return token
}

func TestSignupDuplicateChecksInOrder(t *testing.T) {
	db := setupTestDB(t)
	app := newUserApp(db)

	signup(t, app, "Ada", "ada@example.com", "0501111111", "ada", "secret1")

	cases := []struct {
		name    string
		body    fiber.Map
		message string
	}{
		{
			// email collides, and wins even though phone and username collide too
			name: "email first",
			body: fiber.Map{
				"name": "B", "email": "ada@example.com", "phone": "0501111111",
				"username": "ada", "password": "x",
			},
			message: "Existing user found with same email address",
		},
		{
			name: "phone second",
			body: fiber.Map{
				"name": "B", "email": "b@example.com", "phone": "0501111111",
				"username": "ada", "password": "x",
			},
			message: "Existing user found with same phone number",
		},
		{
			name: "username third",
			body: fiber.Map{
				"name": "B", "email": "b@example.com", "phone": "0502222222",
				"username": "ada", "password": "x",
			},
			message: "Existing user found with same username",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			resp := jsonPost(t, app, "/signup", tc.body)
			helpers.AssertStatus(t, resp, 400)
			env := helpers.ParseEnvelope(t, resp, false)
			helpers.AssertErrors(t, env, tc.message)
		})
	}
}

func TestLoginFailureIsSoftAndGeneric(t *testing.T) {
	db := setupTestDB(t)
	app := newUserApp(db)

	signup(t, app, "Ada", "ada@example.com", "0501111111", "ada", "secret1")

	// wrong password and unknown user answer identically: HTTP 200,
	// success false, one generic message
	for _, body := range []fiber.Map{
		{"userinput": "ada@example.com", "password": "wrong"},
		{"userinput": "nobody@example.com", "password": "secret1"},
	} {
		resp := jsonPost(t, app, "/login", body)
		helpers.AssertStatus(t, resp, 200)
		env := helpers.ParseEnvelope(t, resp, false)
		helpers.AssertErrors(t, env, "Wrong email/username or password")
	}
}

func TestLoginByEmailOrUsername(t *testing.T) {
	db := setupTestDB(t)
	app := newUserApp(db)

	signup(t, app, "Ada", "ada@example.com", "0501111111", "ada", "secret1")

	for _, userinput := range []string{"ada@example.com", "ada"} {
		resp := jsonPost(t, app, "/login", fiber.Map{"userinput": userinput, "password": "secret1"})
		helpers.AssertStatus(t, resp, 200)
		env := helpers.ParseEnvelope(t, resp, true)
		if token, _ := env["token"].(string); token == "" {
			t.Errorf("Login via %q returned no token", userinput)
		}
	}
}

func TestGetUserInfoTokenGate(t *testing.T) {
	db := setupTestDB(t)
	app := newUserApp(db)

	token := signup(t, app, "Ada", "ada@example.com", "0501111111", "ada", "secret1")

	// no token
	req := httptest.NewRequest("GET", "/getuserinfo", nil)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("Failed to execute request: %v", err)
	}
	helpers.AssertStatus(t, resp, 401)
	env := helpers.ParseEnvelope(t, resp, false)
	helpers.AssertErrors(t, env, "Access denied. No token provided.")

	// wrong scheme
	req = httptest.NewRequest("GET", "/getuserinfo", nil)
	req.Header.Set("Authorization", "Token "+token)
	resp, err = app.Test(req)
	if err != nil {
		t.Fatalf("Failed to execute request: %v", err)
	}
	helpers.AssertStatus(t, resp, 400)
	env = helpers.ParseEnvelope(t, resp, false)
	helpers.AssertErrors(t, env, "Invalid token.")

	// garbage token
	req = httptest.NewRequest("GET", "/getuserinfo", nil)
	req.Header.Set("Authorization", "Bearer not-a-token")
	resp, err = app.Test(req)
	if err != nil {
		t.Fatalf("Failed to execute request: %v", err)
	}
	helpers.AssertStatus(t, resp, 400)
	env = helpers.ParseEnvelope(t, resp, false)
	helpers.AssertErrors(t, env, "Invalid token.")

	// real token: sanitized record, no password field in the JSON
	req = httptest.NewRequest("GET", "/getuserinfo", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err = app.Test(req)
	if err != nil {
		t.Fatalf("Failed to execute request: %v", err)
	}
	helpers.AssertStatus(t, resp, 200)
	env = helpers.ParseEnvelope(t, resp, true)

	user, ok := env["user"].(map[string]interface{})
	if !ok {
		t.Fatalf("Expected a user object, got %v", env["user"])
	}
	if user["username"] != "ada" {
		t.Errorf("Expected username ada, got %v", user["username"])
	}
	if _, present := user["password"]; present {
		t.Error("Sanitized user must not expose the password hash")
	}
	if user["first"] != false {
		t.Errorf("Expected first=false for a fresh account, got %v", user["first"])
	}
}

func TestGetUserInfoAdmin(t *testing.T) {
	db := setupTestDB(t)
	app := newUserApp(db)

	signup(t, app, "Ada", "ada@example.com", "0501111111", "ada", "secret1")

	// phone lookup works on the admin path only
	resp := jsonPost(t, app, "/getuserinfoadmin", fiber.Map{"userinput": "0501111111"})
	helpers.AssertStatus(t, resp, 200)
	env := helpers.ParseEnvelope(t, resp, true)

	user, ok := env["user"].(map[string]interface{})
	if !ok {
		t.Fatalf("Expected a user object, got %v", env["user"])
	}
	if hash, _ := user["password"].(string); hash == "" {
		t.Error("Admin lookup should include the password hash")
	}
	if user["treatmentType"] != models.TreatmentTypeDiagnosis {
		t.Errorf("Expected treatmentType Diagnosis, got %v", user["treatmentType"])
	}

	resp = jsonPost(t, app, "/getuserinfoadmin", fiber.Map{"userinput": "nobody"})
	helpers.AssertStatus(t, resp, 404)
	env = helpers.ParseEnvelope(t, resp, false)
	helpers.AssertErrors(t, env, "User not found.")
}

func TestUpdateUserInfo(t *testing.T) {
	db := setupTestDB(t)
	app := newUserApp(db)

	signup(t, app, "Ada", "ada@example.com", "0501111111", "ada", "secret1")

	resp := jsonPost(t, app, "/updateuserinfo", fiber.Map{
		"username": "ada",
		"treatments": fiber.Map{
			"flakingScalp":     true,
			"shampooFrequency": "daily",
			"waterIntake":      "2L",
		},
		"treatmentInfo": "sensitive scalp",
		"productInfo":   "mild shampoo",
	})
	helpers.AssertStatus(t, resp, 200)
	env := helpers.ParseEnvelope(t, resp, true)
	if env["message"] != "User updated successfully." {
		t.Errorf("Unexpected message: %v", env["message"])
	}

	var user models.User
	if err := db.Where("username = ?", "ada").First(&user).Error; err != nil {
		t.Fatalf("Failed to reload user: %v", err)
	}
	if !user.FirstLoginDone {
		t.Error("Update must mark the first login as done")
	}
	if !user.Treatments.FlakingScalp || user.Treatments.ShampooFrequency != "daily" {
		t.Errorf("Questionnaire answers not stored: %+v", user.Treatments)
	}
	if user.TreatmentInfo != "sensitive scalp" || user.ProductInfo != "mild shampoo" {
		t.Errorf("Notes not stored: %q / %q", user.TreatmentInfo, user.ProductInfo)
	}

	// answers are replaced wholesale, unmentioned fields reset
	resp = jsonPost(t, app, "/updateuserinfo", fiber.Map{
		"username":   "ada",
		"treatments": fiber.Map{"stress": "high"},
	})
	helpers.AssertStatus(t, resp, 200)

	if err := db.Where("username = ?", "ada").First(&user).Error; err != nil {
		t.Fatalf("Failed to reload user: %v", err)
	}
	if user.Treatments.FlakingScalp || user.Treatments.Stress != "high" {
		t.Errorf("Expected a wholesale overwrite, got %+v", user.Treatments)
	}

	// unknown username is a silent success
	resp = jsonPost(t, app, "/updateuserinfo", fiber.Map{"username": "ghost"})
	helpers.AssertStatus(t, resp, 200)
	helpers.ParseEnvelope(t, resp, true)
}
