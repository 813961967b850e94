package controllers

import (
	"context"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/labstack/echo/v4"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/Shreyasj1508/BuildBasket-sub003/middleware"
	"github.com/Shreyasj1508/BuildBasket-sub003/models"
	"github.com/Shreyasj1508/BuildBasket-sub003/utils"
)

// AdminController handles admin authentication
type AdminController struct {
	DB *mongo.Database
}

// NewAdminController creates a new admin controller
func NewAdminController(db *mongo.Database) *AdminController {
	return &AdminController{DB: db}
}

// Login authenticates an admin. An env-seeded admin (ADMIN_EMAIL /
// ADMIN_PASSWORD) is checked first, then the admins collection with
// bcrypt-hashed passwords.
func (ac *AdminController) Login(c echo.Context) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	var loginReq models.LoginRequest
	if err := c.Bind(&loginReq); err != nil {
		return c.JSON(http.StatusBadRequest, models.Response{
			Success: false,
			Message: "Invalid request body",
		})
	}
	if loginReq.Email == "" || loginReq.Password == "" {
		return c.JSON(http.StatusBadRequest, models.Response{
			Success: false,
			Message: "Email and password are required",
		})
	}

	// Bootstrap admin from environment
	adminEmail := os.Getenv("ADMIN_EMAIL")
	adminPassword := os.Getenv("ADMIN_PASSWORD")
	if adminEmail != "" && adminPassword != "" && loginReq.Email == adminEmail {
		if loginReq.Password != adminPassword {
			return c.JSON(http.StatusUnauthorized, models.Response{
				Success: false,
				Message: "Invalid admin credentials",
			})
		}
		// The bootstrap admin gets a real admins document so its ObjectID
		// can be recorded as verifiedBy on seller transitions.
		admin, err := ac.ensureBootstrapAdmin(ctx, adminEmail, adminPassword)
		if err != nil {
			log.Printf("Failed to seed bootstrap admin: %v", err)
			return c.JSON(http.StatusInternalServerError, models.Response{
				Success: false,
				Message: "Internal server error",
			})
		}
		return ac.issueToken(c, admin.ID.Hex(), admin.Email)
	}

	var admin models.Admin
	err := ac.DB.Collection("admins").FindOne(ctx, bson.M{"email": loginReq.Email}).Decode(&admin)
	if err == mongo.ErrNoDocuments {
		return c.JSON(http.StatusUnauthorized, models.Response{
			Success: false,
			Message: "Invalid admin credentials",
		})
	}
	if err != nil {
		log.Printf("Admin lookup failed: %v", err)
		return c.JSON(http.StatusInternalServerError, models.Response{
			Success: false,
			Message: "Internal server error",
		})
	}

	if !utils.CheckPassword(admin.Password, loginReq.Password) {
		return c.JSON(http.StatusUnauthorized, models.Response{
			Success: false,
			Message: "Invalid admin credentials",
		})
	}

	return ac.issueToken(c, admin.ID.Hex(), admin.Email)
}

// ensureBootstrapAdmin returns the admins document for the env-configured
// admin, inserting it with a bcrypt hash on first login.
func (ac *AdminController) ensureBootstrapAdmin(ctx context.Context, email, password string) (*models.Admin, error) {
	admins := ac.DB.Collection("admins")

	var admin models.Admin
	err := admins.FindOne(ctx, bson.M{"email": email}).Decode(&admin)
	if err == nil {
		return &admin, nil
	}
	if err != mongo.ErrNoDocuments {
		return nil, err
	}

	hashed, err := utils.HashPassword(password)
	if err != nil {
		return nil, err
	}
	admin = models.Admin{
		ID:        primitive.NewObjectID(),
		Email:     email,
		Password:  hashed,
		CreatedAt: time.Now(),
	}
	if _, err := admins.InsertOne(ctx, admin); err != nil {
		// Another instance may have seeded it concurrently.
		if mongo.IsDuplicateKeyError(err) {
			if ferr := admins.FindOne(ctx, bson.M{"email": email}).Decode(&admin); ferr == nil {
				return &admin, nil
			}
		}
		return nil, err
	}
	return &admin, nil
}

func (ac *AdminController) issueToken(c echo.Context, userID, email string) error {
	token, refreshToken, err := middleware.GenerateJWT(userID, email, "admin")
	if err != nil {
		log.Printf("Failed to generate admin token: %v", err)
		return c.JSON(http.StatusInternalServerError, models.Response{
			Success: false,
			Message: "Failed to generate token",
		})
	}

	cookie := new(http.Cookie)
	cookie.Name = "admin_token"
	cookie.Value = token
	cookie.Expires = time.Now().Add(24 * time.Hour)
	cookie.HttpOnly = true
	cookie.SameSite = http.SameSiteStrictMode
	c.SetCookie(cookie)

	return c.JSON(http.StatusOK, models.LoginResponse{
		Success:      true,
		Message:      "Admin login successful",
		Token:        token,
		RefreshToken: refreshToken,
		User: map[string]interface{}{
			"email": email,
			"role":  "admin",
		},
	})
}
