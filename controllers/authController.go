package controllers

import (
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/feneonmalo-star/La-boutique-de-Lea/config"
	"github.com/feneonmalo-star/La-boutique-de-Lea/initializers"
	"github.com/feneonmalo-star/La-boutique-de-Lea/models"
)

const (
	bcryptCost = 10

	tokenLifetime = 7 * 24 * time.Hour

	msgInvalidInput        = "invalid input"
	msgEmailAlreadyInUse   = "email already registered"
	msgInvalidCredentials  = "invalid email or password"
	msgInternalServerError = "internal server error"
)

func sendJSONResponse(ctx *gin.Context, status int, data gin.H) {
	ctx.JSON(status, data)
}

func sendErrorResponse(ctx *gin.Context, status int, message string) {
	sendJSONResponse(ctx, status, gin.H{"message": message})
}

// currentUserID returns the identity set by the RequireSignIn middleware.
func currentUserID(ctx *gin.Context) string {
	return ctx.GetString("userID")
}

func hashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return "", err
	}
	return string(bytes), nil
}

func comparePasswords(hashedPassword, password string) error {
	return bcrypt.CompareHashAndPassword([]byte(hashedPassword), []byte(password))
}

func generateJWT(user models.User, jwtSecret string) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":   user.ID,
		"email": user.Email,
		"role":  user.Role,
		"iat":   time.Now().Unix(),
		"exp":   time.Now().Add(tokenLifetime).Unix(),
	})
	return token.SignedString([]byte(jwtSecret))
}

// Register creates an account and signs the user straight in.
func Register(cfg *config.Config) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		var registerData models.RegisterData
		if err := ctx.ShouldBindJSON(&registerData); err != nil {
			sendErrorResponse(ctx, http.StatusBadRequest, msgInvalidInput)
			return
		}

		var existing models.User
		result := initializers.DB.Where("email = ?", registerData.Email).Find(&existing)
		if result.Error != nil {
			log.Println("Database error during user check:", result.Error)
			sendErrorResponse(ctx, http.StatusInternalServerError, msgInternalServerError)
			return
		}
		if result.RowsAffected > 0 {
			sendErrorResponse(ctx, http.StatusBadRequest, msgEmailAlreadyInUse)
			return
		}

		hashedPassword, err := hashPassword(registerData.Password)
		if err != nil {
			log.Println("Password hashing error:", err)
			sendErrorResponse(ctx, http.StatusInternalServerError, msgInternalServerError)
			return
		}

		user := models.User{
			ID:           uuid.NewString(),
			Email:        registerData.Email,
			Name:         registerData.Name,
			PasswordHash: hashedPassword,
			Role:         "user",
			CreatedAt:    time.Now().UTC(),
		}
		if err := initializers.DB.Create(&user).Error; err != nil {
			log.Println("User creation error:", err)
			sendErrorResponse(ctx, http.StatusInternalServerError, msgInternalServerError)
			return
		}

		tokenString, err := generateJWT(user, cfg.JWTSecret)
		if err != nil {
			log.Println("JWT generation error:", err)
			sendErrorResponse(ctx, http.StatusInternalServerError, msgInternalServerError)
			return
		}

		sendJSONResponse(ctx, http.StatusOK, gin.H{
			"access_token": tokenString,
			"token_type":   "bearer",
			"user":         user,
		})
	}
}

// Login exchanges email and password for a token.
func Login(cfg *config.Config) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		var loginData models.LoginData
		if err := ctx.ShouldBindJSON(&loginData); err != nil {
			sendErrorResponse(ctx, http.StatusBadRequest, msgInvalidInput)
			return
		}

		var user models.User
		if err := initializers.DB.Where("email = ?", loginData.Email).First(&user).Error; err != nil {
			sendErrorResponse(ctx, http.StatusUnauthorized, msgInvalidCredentials)
			return
		}

		if err := comparePasswords(user.PasswordHash, loginData.Password); err != nil {
			sendErrorResponse(ctx, http.StatusUnauthorized, msgInvalidCredentials)
			return
		}

		tokenString, err := generateJWT(user, cfg.JWTSecret)
		if err != nil {
			log.Println("JWT generation error:", err)
			sendErrorResponse(ctx, http.StatusInternalServerError, msgInternalServerError)
			return
		}

		sendJSONResponse(ctx, http.StatusOK, gin.H{
			"access_token": tokenString,
			"token_type":   "bearer",
			"user":         user,
		})
	}
}

// GetMe returns the authenticated user's profile.
func GetMe(ctx *gin.Context) {
	var user models.User
	if err := initializers.DB.First(&user, "id = ?", currentUserID(ctx)).Error; err != nil {
		sendErrorResponse(ctx, http.StatusUnauthorized, "user not found")
		return
	}
	ctx.JSON(http.StatusOK, user)
}
