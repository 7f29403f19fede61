// users.go
//
// Signup, login and profile handlers. Note the deliberate asymmetry:
// /getuserinfo is token-gated and sanitized, /getuserinfoadmin is an open
// back-office path returning the full record.

package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/salonsuite/salon-api/internal/config"
	"github.com/salonsuite/salon-api/internal/middleware"
	"github.com/salonsuite/salon-api/internal/models"
	"github.com/salonsuite/salon-api/internal/services"
	"github.com/salonsuite/salon-api/internal/utils"
)

// UserHandler handles account and profile routes
type UserHandler struct {
	DB  *gorm.DB
	Cfg *config.Config
}

// Signup handles POST /signup
// @Summary Register a new user
// @Description Create an account and return a token; email, phone and username must be unused
// @Tags Auth
// @Accept json
// @Produce json
// @Param body body object true "name, email, phone, username, password"
// @Success 200 {object} utils.TokenResponseStruct
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /signup [post]
func (h *UserHandler) Signup(c *fiber.Ctx) error {
	var body struct {
		Name     string `json:"name"`
		Email    string `json:"email"`
		Phone    string `json:"phone"`
		Username string `json:"username"`
		Password string `json:"password"`
	}
	if err := c.BodyParser(&body); err != nil || body.Name == "" || body.Password == "" {
		return utils.Fail(c, fiber.StatusBadRequest, "Invalid input")
	}

	token, err := services.Register(h.DB, h.Cfg.JWTSecret, services.RegisterInput{
		Name:     body.Name,
		Email:    body.Email,
		Phone:    body.Phone,
		Username: body.Username,
		Password: body.Password,
	})
	if err != nil {
		switch {
		case errors.Is(err, services.ErrDuplicateEmail),
			errors.Is(err, services.ErrDuplicatePhone),
			errors.Is(err, services.ErrDuplicateUsername):
			return utils.Fail(c, fiber.StatusBadRequest, err.Error())
		default:
			return utils.ServerError(c, err)
		}
	}

	return utils.Success(c, fiber.Map{"token": token})
}

// Login handles POST /login
// @Summary Authenticate a user
// @Description Match userinput against email or username; return a one-hour token
// @Tags Auth
// @Accept json
// @Produce json
// @Param body body object true "userinput, password"
// @Success 200 {object} utils.TokenResponseStruct
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /login [post]
func (h *UserHandler) Login(c *fiber.Ctx) error {
	var body struct {
		Userinput string `json:"userinput"`
		Password  string `json:"password"`
	}
	if err := c.BodyParser(&body); err != nil {
		return utils.Fail(c, fiber.StatusBadRequest, "Invalid input")
	}

	token, err := services.Login(h.DB, h.Cfg.JWTSecret, body.Userinput, body.Password)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			// HTTP 200 with success:false, the contract the frontend expects
			return utils.SoftFail(c, err.Error())
		}
		return utils.ServerError(c, err)
	}

	return utils.Success(c, fiber.Map{"token": token})
}

// GetUserInfo handles GET /getuserinfo
// @Summary Get own account
// @Description Return the authenticated user's record without the password hash
// @Tags Profile
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]interface{}
// @Failure 401 {object} utils.ErrorResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Router /getuserinfo [get]
func (h *UserHandler) GetUserInfo(c *fiber.Ctx) error {
	uid, _ := c.Locals(middleware.UserIDKey).(string)

	user, err := services.UserByID(h.DB, uid)
	if err != nil {
		if errors.Is(err, services.ErrUserNotFound) {
			return utils.Fail(c, fiber.StatusNotFound, err.Error())
		}
		return utils.ServerError(c, err)
	}

	return utils.Success(c, fiber.Map{"user": user.Sanitized()})
}

// GetUserInfoAdmin handles POST /getuserinfoadmin
// @Summary Look up any account
// @Description Match userinput against email, username or phone; unauthenticated back-office path
// @Tags Profile
// @Accept json
// @Produce json
// @Param body body object true "userinput"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} utils.ErrorResponseStruct
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /getuserinfoadmin [post]
func (h *UserHandler) GetUserInfoAdmin(c *fiber.Ctx) error {
	var body struct {
		Userinput string `json:"userinput"`
	}
	if err := c.BodyParser(&body); err != nil {
		return utils.Fail(c, fiber.StatusBadRequest, "Invalid input")
	}

	user, err := services.UserByAnyIdentifier(h.DB, body.Userinput)
	if err != nil {
		if errors.Is(err, services.ErrUserNotFound) {
			return utils.Fail(c, fiber.StatusNotFound, err.Error())
		}
		return utils.ServerError(c, err)
	}

	return utils.Success(c, fiber.Map{"user": user})
}

// UpdateUserInfo handles POST /updateuserinfo
// @Summary Update a user's treatment record
// @Description Overwrite questionnaire answers and notes wholesale; success even when the username matches nothing
// @Tags Profile
// @Accept json
// @Produce json
// @Param body body object true "username, treatments, treatmentInfo, productInfo"
// @Success 200 {object} utils.MessageResponseStruct
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /updateuserinfo [post]
func (h *UserHandler) UpdateUserInfo(c *fiber.Ctx) error {
	var body struct {
		Username      string                  `json:"username"`
		Treatments    models.TreatmentAnswers `json:"treatments"`
		TreatmentInfo string                  `json:"treatmentInfo"`
		ProductInfo   string                  `json:"productInfo"`
	}
	if err := c.BodyParser(&body); err != nil {
		return utils.Fail(c, fiber.StatusBadRequest, "Invalid input")
	}

	err := services.UpdateTreatmentRecord(h.DB, body.Username, body.Treatments, body.TreatmentInfo, body.ProductInfo)
	if err != nil {
		return utils.ServerError(c, err)
	}

	return utils.Success(c, fiber.Map{"message": "User updated successfully."})
}
