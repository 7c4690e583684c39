package middleware

import (
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"timetracker/api/errs"
	"timetracker/models"
)

const userKey = "currentUser"

// Auth validates the bearer token and resolves the authenticated user,
// auto-provisioning unknown subjects as employees.
func Auth(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if !strings.HasPrefix(header, "Bearer ") {
			c.Error(errs.ErrUnauthorized)
			c.Abort()
			return
		}

		token, err := jwt.Parse(strings.TrimPrefix(header, "Bearer "), func(t *jwt.Token) (interface{}, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, errs.ErrUnauthorized
			}
			return []byte(secret), nil
		})
		if err != nil || !token.Valid {
			c.Error(errs.ErrUnauthorized)
			c.Abort()
			return
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			c.Error(errs.ErrUnauthorized)
			c.Abort()
			return
		}
		sub, _ := claims["sub"].(string)
		if sub == "" {
			c.Error(errs.ErrUnauthorized)
			c.Abort()
			return
		}

		user, err := syncUser(sub, claims)
		if err != nil {
			c.Error(err)
			c.Abort()
			return
		}

		c.Set(userKey, user)
		c.Next()
	}
}

// RequireRole rejects requests whose user holds none of the given roles.
func RequireRole(roles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		user := CurrentUser(c)
		if user == nil {
			c.Error(errs.ErrUnauthorized)
			c.Abort()
			return
		}
		for _, role := range roles {
			if user.Role == role {
				c.Next()
				return
			}
		}
		c.Error(errs.ErrForbidden)
		c.Abort()
	}
}

func CurrentUser(c *gin.Context) *models.User {
	if v, ok := c.Get(userKey); ok {
		if user, ok := v.(*models.User); ok {
			return user
		}
	}
	return nil
}

// SetCurrentUser is a test hook for handlers that read the current user.
func SetCurrentUser(c *gin.Context, user *models.User) {
	c.Set(userKey, user)
}

func syncUser(sub string, claims jwt.MapClaims) (*models.User, error) {
	var user models.User
	if err := models.DB.First(&user, "external_id = ?", sub).Error; err == nil {
		return &user, nil
	}

	email, _ := claims["email"].(string)
	firstName, _ := claims["given_name"].(string)
	lastName, _ := claims["family_name"].(string)

	user = models.User{
		ID:         uuid.NewString(),
		ExternalID: sub,
		Email:      email,
		FirstName:  firstName,
		LastName:   lastName,
		Role:       models.RoleEmployee,
		IsActive:   true,
		CreatedAt:  time.Now().UTC(),
		UpdatedAt:  time.Now().UTC(),
	}
	if err := models.DB.Create(&user).Error; err != nil {
		return nil, err
	}
	log.Info().Str("email", email).Str("sub", sub).Msg("auto-provisioned user")
	return &user, nil
}
