package controllers

import (
	"fmt"
	"net/http"
	"os"
	"regexp"
	"strings"
	"time"

	"github.com/dgrijalva/jwt-go"
	"github.com/gamer-hub/api-go/config"
	"github.com/gamer-hub/api-go/models"
	"github.com/gamer-hub/api-go/storage"
	"github.com/gamer-hub/api-go/utils"
	"github.com/gin-gonic/gin"
	"github.com/lib/pq"
	"golang.org/x/crypto/bcrypt"
)

type AuthController struct {
	Store        *storage.Storage
	GoogleConfig *config.GoogleConfig
}

func NewAuthController(store *storage.Storage) *AuthController {
	return &AuthController{
		Store:        store,
		GoogleConfig: config.NewGoogleConfig(),
	}
}

// validateUsernamePattern validates username format and constraints
func validateUsernamePattern(username string) error {
	trimmedUsername := strings.TrimSpace(username)

	if len(trimmedUsername) < 3 {
		return fmt.Errorf("username must be at least 3 characters long")
	}

	if len(trimmedUsername) > 20 {
		return fmt.Errorf("username must be no more than 20 characters long")
	}

	startsWithLetter, _ := regexp.MatchString(`^[a-zA-Z]`, trimmedUsername)
	if !startsWithLetter {
		return fmt.Errorf("username must start with a letter")
	}

	validPattern, _ := regexp.MatchString(`^[a-zA-Z][a-zA-Z0-9_]*$`, trimmedUsername)
	if !validPattern {
		return fmt.Errorf("username can only contain letters, numbers, and underscores")
	}

	reserved := []string{"admin", "root", "api", "www", "mail", "ftp", "test", "demo", "user", "guest", "null", "undefined"}
	for _, reservedWord := range reserved {
		if strings.ToLower(trimmedUsername) == reservedWord {
			return fmt.Errorf("this username is reserved and cannot be used")
		}
	}

	return nil
}

func (ac *AuthController) issueTokens(user *models.User) (string, string, error) {
	accessTokenBase := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id": user.ID,
		"role":    user.Role,
		"exp":     time.Now().Add(time.Hour * 24 * 7).Unix(), // Access token expires in 7 days
	})

	refreshTokenBase := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id": user.ID,
		"exp":     time.Now().Add(time.Hour * 24 * 30).Unix(), // Refresh token expires in 30 days
	})

	accessToken, err := accessTokenBase.SignedString([]byte(os.Getenv("JWT_SECRET")))
	if err != nil {
		return "", "", err
	}
	refreshToken, err := refreshTokenBase.SignedString([]byte(os.Getenv("JWT_SECRET")))
	if err != nil {
		return "", "", err
	}

	err = ac.Store.CreateRefreshToken(&models.RefreshToken{
		UserID:         user.ID,
		Token:          refreshToken,
		ExpirationDate: time.Now().Add(time.Hour * 24 * 30),
	})
	if err != nil {
		return "", "", err
	}

	return accessToken, refreshToken, nil
}

func (ac *AuthController) Register(c *gin.Context) {
	var input struct {
		Username        string   `json:"username" binding:"required"`
		Email           string   `json:"email" binding:"required,email"`
		Password        string   `json:"password" binding:"required,min=6"`
		FirstName       string   `json:"firstName"`
		LastName        string   `json:"lastName"`
		Bio             string   `json:"bio"`
		GamingPlatforms []string `json:"gamingPlatforms"`
	}

	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error(), "success": false})
		return
	}

	if err := validateUsernamePattern(input.Username); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error(), "success": false})
		return
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not hash password", "success": false})
		return
	}

	hashedPasswordStr := string(hashedPassword)

	user := models.User{
		Username:        input.Username,
		Email:           input.Email,
		Password:        &hashedPasswordStr,
		FirstName:       input.FirstName,
		LastName:        input.LastName,
		Bio:             input.Bio,
		GamingPlatforms: pq.StringArray(input.GamingPlatforms),
		Provider:        "email",
	}

	if err := ac.Store.CreateUser(&user); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Username or email already exists", "success": false})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"message": "User registered successfully",
		"user": gin.H{
			"id":       user.ID,
			"email":    user.Email,
			"username": user.Username,
			"level":    user.Level,
			"xpPoints": user.XPPoints,
		},
	})
}

func (ac *AuthController) Login(c *gin.Context) {
	var input struct {
		Email    string `json:"email" binding:"required,email"`
		Password string `json:"password" binding:"required"`
	}

	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := ac.Store.GetUserByEmail(input.Email)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
		return
	}

	if user.Password == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(*user.Password), []byte(input.Password)); err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
		return
	}

	accessToken, refreshToken, err := ac.issueTokens(user)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not generate token", "success": false})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"token_type":    "Bearer",
		"access_token":  accessToken,
		"refresh_token": refreshToken,
		"user":          gin.H{"id": user.ID, "email": user.Email, "username": user.Username, "profileImageUrl": user.ProfileImageURL},
		"success":       true,
	})
}

// GoogleLogin verifies a Google credential and upserts the account: the user
// row is created on first login, refreshed on later logins.
func (ac *AuthController) GoogleLogin(c *gin.Context) {
	var input struct {
		IDToken     string `json:"id_token"`
		AccessToken string `json:"access_token"`
		Code        string `json:"code"`
		RedirectURI string `json:"redirect_uri"`
	}

	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error(), "success": false})
		return
	}

	var userInfo *config.GoogleUserInfo
	var err error

	if input.Code != "" && input.RedirectURI != "" {
		token, exchangeErr := ac.GoogleConfig.ExchangeCode(c.Request.Context(), input.Code)
		if exchangeErr != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Failed to exchange code for token", "success": false})
			return
		}
		userInfo, err = ac.GoogleConfig.GetUserInfo(token.AccessToken)
	} else if input.IDToken != "" {
		userInfo, err = ac.GoogleConfig.VerifyIDToken(input.IDToken)
	} else if input.AccessToken != "" {
		userInfo, err = ac.GoogleConfig.GetUserInfo(input.AccessToken)
	} else {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Either code with redirect_uri, id_token, or access_token is required", "success": false})
		return
	}

	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid Google token", "success": false})
		return
	}

	existing, err := ac.Store.GetUserByEmail(userInfo.Email)

	var user *models.User
	if err == nil {
		// Known account: refresh profile fields from the provider.
		existing.FirstName = userInfo.GivenName
		existing.LastName = userInfo.FamilyName
		existing.ProfileImageURL = userInfo.Picture
		existing.GoogleID = &userInfo.ID
		if upsertErr := ac.Store.UpsertUser(existing); upsertErr != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update user", "success": false})
			return
		}
		user = existing
	} else {
		// First login creates the account.
		username := generateUsernameFromEmail(userInfo.Email)
		user = &models.User{
			Email:           userInfo.Email,
			Username:        username,
			FirstName:       userInfo.GivenName,
			LastName:        userInfo.FamilyName,
			ProfileImageURL: userInfo.Picture,
			GoogleID:        &userInfo.ID,
			Provider:        "google",
		}
		if upsertErr := ac.Store.UpsertUser(user); upsertErr != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create user", "success": false})
			return
		}
	}

	accessToken, refreshToken, err := ac.issueTokens(user)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not generate token", "success": false})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"token_type":    "Bearer",
		"access_token":  accessToken,
		"refresh_token": refreshToken,
		"user":          gin.H{"id": user.ID, "email": user.Email, "username": user.Username, "profileImageUrl": user.ProfileImageURL},
		"success":       true,
	})
}

// generateUsernameFromEmail derives a starting username for provider signups.
func generateUsernameFromEmail(email string) string {
	base := strings.SplitN(email, "@", 2)[0]
	base = regexp.MustCompile(`[^a-zA-Z0-9_]`).ReplaceAllString(base, "_")
	if len(base) < 3 {
		base = base + "_gamer"
	}
	if len(base) > 14 {
		base = base[:14]
	}
	return fmt.Sprintf("%s_%d", base, time.Now().UnixNano()%100000)
}

func (ac *AuthController) RefreshToken(c *gin.Context) {
	var input struct {
		RefreshToken string `json:"refresh_token" binding:"required"`
	}

	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error(), "success": false})
		return
	}

	refreshToken, err := ac.Store.GetRefreshToken(input.RefreshToken)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid refresh token", "success": false})
		return
	}

	if time.Now().After(refreshToken.ExpirationDate) {
		ac.Store.DeleteRefreshTokenByID(refreshToken.ID)
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Refresh token expired", "success": false})
		return
	}

	user, err := ac.Store.GetUser(refreshToken.UserID)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not found", "success": false})
		return
	}

	accessTokenBase := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id": user.ID,
		"role":    user.Role,
		"exp":     time.Now().Add(time.Hour * 24 * 7).Unix(),
	})

	accessToken, err := accessTokenBase.SignedString([]byte(os.Getenv("JWT_SECRET")))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not generate access token", "success": false})
		return
	}

	refreshTokenBase := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id": user.ID,
		"exp":     time.Now().Add(time.Hour * 24 * 30).Unix(),
	})

	newRefreshToken, err := refreshTokenBase.SignedString([]byte(os.Getenv("JWT_SECRET")))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not generate refresh token", "success": false})
		return
	}

	refreshToken.Token = newRefreshToken
	refreshToken.ExpirationDate = time.Now().Add(time.Hour * 24 * 30)
	ac.Store.SaveRefreshToken(refreshToken)

	c.JSON(http.StatusOK, gin.H{
		"token_type":    "Bearer",
		"access_token":  accessToken,
		"refresh_token": newRefreshToken,
		"user":          gin.H{"id": user.ID, "email": user.Email, "username": user.Username, "profileImageUrl": user.ProfileImageURL},
		"success":       true,
	})
}

func (ac *AuthController) Logout(c *gin.Context) {
	var input struct {
		RefreshToken string `json:"refresh_token" binding:"required"`
	}

	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error(), "success": false})
		return
	}

	rowsAffected, err := ac.Store.DeleteRefreshToken(input.RefreshToken)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to logout", "success": false})
		return
	}

	// Token not found still counts as logged out.
	_ = rowsAffected

	c.JSON(http.StatusOK, gin.H{"message": "Logged out successfully", "success": true})
}

func (ac *AuthController) GetProfile(c *gin.Context) {
	user := utils.GetUser(c)
	if user == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not found in context"})
		return
	}

	dbUser, err := ac.Store.GetUser(user.UserID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"user":    dbUser,
	})
}

func (ac *AuthController) UpdateProfile(c *gin.Context) {
	user := utils.GetUser(c)
	if user == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not found in context"})
		return
	}

	var input struct {
		Bio             string   `json:"bio"`
		ProfileImageURL string   `json:"profileImageUrl"`
		GamingPlatforms []string `json:"gamingPlatforms"`
		TwitchUsername  string   `json:"twitchUsername"`
		YoutubeUsername string   `json:"youtubeUsername"`
		DiscordUsername string   `json:"discordUsername"`
	}

	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	updates := map[string]interface{}{
		"bio":               input.Bio,
		"profile_image_url": input.ProfileImageURL,
		"twitch_username":   input.TwitchUsername,
		"youtube_username":  input.YoutubeUsername,
		"discord_username":  input.DiscordUsername,
	}
	if input.GamingPlatforms != nil {
		updates["gaming_platforms"] = pq.StringArray(input.GamingPlatforms)
	}

	updatedUser, err := ac.Store.UpdateUserProfile(user.UserID, updates)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update profile"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Profile updated successfully",
		"success": true,
		"user":    updatedUser,
	})
}

// UsernameCheck reports whether a username is free to register.
func (ac *AuthController) UsernameCheck(c *gin.Context) {
	username := c.Param("username")

	if err := validateUsernamePattern(username); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success":   false,
			"error":     err.Error(),
			"available": false,
		})
		return
	}

	if _, err := ac.Store.GetUserByUsername(username); err != nil {
		c.JSON(http.StatusOK, gin.H{
			"success":   true,
			"message":   "Username available for registration",
			"available": true,
		})
		return
	}

	c.JSON(http.StatusConflict, gin.H{
		"success":   false,
		"error":     "Username already taken",
		"available": false,
	})
}

// EmailCheck reports whether an email is free to register.
func (ac *AuthController) EmailCheck(c *gin.Context) {
	email := c.Param("email")

	if !regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`).MatchString(email) {
		c.JSON(http.StatusBadRequest, gin.H{
			"success":   false,
			"error":     "Invalid email format",
			"available": false,
		})
		return
	}

	if _, err := ac.Store.GetUserByEmail(email); err != nil {
		c.JSON(http.StatusOK, gin.H{
			"success":   true,
			"message":   "Email available for registration",
			"available": true,
		})
		return
	}

	c.JSON(http.StatusConflict, gin.H{
		"success":   false,
		"error":     "Email already registered",
		"available": false,
	})
}
