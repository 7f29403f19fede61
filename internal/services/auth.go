// auth.go
//
// Registration, login and token issuance. Passwords are bcrypt hashes,
// tokens are HS256 JWTs carrying the user id. A signup token has no
// expiry; a login token expires after one hour. Both quirks come from the
// service this replaces and the deployed frontend depends on them.

package services

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/salonsuite/salon-api/internal/models"
)

const (
	bcryptCost    = 10
	loginTokenTTL = time.Hour
)

// Wire messages, surfaced verbatim in the errors field of the response.
var (
	ErrDuplicateEmail     = errors.New("Existing user found with same email address")
	ErrDuplicatePhone     = errors.New("Existing user found with same phone number")
	ErrDuplicateUsername  = errors.New("Existing user found with same username")
	ErrInvalidCredentials = errors.New("Wrong email/username or password")
	ErrBadToken           = errors.New("invalid token")
)

// Claims is the JWT payload: the user id plus registered claims.
type Claims struct {
	UserID string `json:"uid"`
	jwt.RegisteredClaims
}

// HashPassword returns the bcrypt hash of pw.
func HashPassword(pw string) (string, error) {
	b, err := bcrypt.GenerateFromPassword([]byte(pw), bcryptCost)
	return string(b), err
}

// CheckPassword reports whether pw matches the stored bcrypt hash.
func CheckPassword(hash, pw string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(pw)) == nil
}

func signToken(uid, secret string, ttl time.Duration) (string, error) {
	c := Claims{
		UserID: uid,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt: jwt.NewNumericDate(time.Now()),
		},
	}
	if ttl > 0 {
		c.ExpiresAt = jwt.NewNumericDate(time.Now().Add(ttl))
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, c).SignedString([]byte(secret))
}

// MakeSignupToken issues a non-expiring token for a freshly registered user.
func MakeSignupToken(uid, secret string) (string, error) {
	return signToken(uid, secret, 0)
}

// MakeLoginToken issues a one-hour session token.
func MakeLoginToken(uid, secret string) (string, error) {
	return signToken(uid, secret, loginTokenTTL)
}

// ParseToken validates raw and returns its claims. Expired or tampered
// tokens fail, as does anything not HMAC-signed.
func ParseToken(raw, secret string) (*Claims, error) {
	tok, err := jwt.ParseWithClaims(raw, &Claims{}, func(t *jwt.Token) (any, error) {
		// block alg confusion
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrBadToken
		}
		return []byte(secret), nil
	})
	if err != nil {
		return nil, err
	}
	c, ok := tok.Claims.(*Claims)
	if !ok || !tok.Valid {
		return nil, ErrBadToken
	}
	return c, nil
}

// RegisterInput is the signup payload.
type RegisterInput struct {
	Name     string
	Email    string
	Phone    string
	Username string
	Password string
}

// Register creates a user and returns a signup token. Uniqueness is
// checked in order email, phone, username; the first collision wins and is
// the one reported. The check-then-insert is not atomic; the unique
// indexes are the backstop.
func Register(db *gorm.DB, secret string, in RegisterInput) (string, error) {
	checks := []struct {
		column string
		value  string
		err    error
	}{
		{"email", in.Email, ErrDuplicateEmail},
		{"phone", in.Phone, ErrDuplicatePhone},
		{"username", in.Username, ErrDuplicateUsername},
	}
	for _, chk := range checks {
		var n int64
		if err := db.Model(&models.User{}).Where(chk.column+" = ?", chk.value).Count(&n).Error; err != nil {
			return "", err
		}
		if n > 0 {
			return "", chk.err
		}
	}

	hash, err := HashPassword(in.Password)
	if err != nil {
		return "", err
	}

	user := models.User{
		ID:            uuid.NewString(),
		Name:          in.Name,
		Email:         in.Email,
		Phone:         in.Phone,
		Username:      in.Username,
		Password:      hash,
		TreatmentType: models.TreatmentTypeDiagnosis,
	}
	if err := db.Create(&user).Error; err != nil {
		return "", err
	}

	return MakeSignupToken(user.ID, secret)
}

// Login authenticates by email or username and returns a session token.
// The caller never learns whether the identifier or the password was wrong.
func Login(db *gorm.DB, secret, userinput, password string) (string, error) {
	user, err := UserByLogin(db, userinput)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", ErrInvalidCredentials
		}
		return "", err
	}
	if !CheckPassword(user.Password, password) {
		return "", ErrInvalidCredentials
	}
	return MakeLoginToken(user.ID, secret)
}
