package controllers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/grandhotel/restaurant-pos/sessions"
	"github.com/grandhotel/restaurant-pos/storage"
	"github.com/grandhotel/restaurant-pos/utils"
	"golang.org/x/crypto/bcrypt"
)

type AuthController struct {
	Store    *storage.Store
	Sessions *sessions.Store
}

func NewAuthController(store *storage.Store, sess *sessions.Store) *AuthController {
	return &AuthController{Store: store, Sessions: sess}
}

// Login checks the submitted credentials against the stored admin login and
// issues a bearer token on success.
func (ac *AuthController) Login(c *gin.Context) {
	var req struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}
	if err := c.ShouldBindJSON(&req); err != nil || req.Username == "" || req.Password == "" {
		utils.RespondError(c, http.StatusBadRequest, errors.New("username and password are required"))
		return
	}

	cred, err := ac.Store.AdminCredential()
	if err != nil {
		utils.ErrorLogger.Printf("Login failed to load credential: %v", err)
		utils.RespondError(c, http.StatusInternalServerError, errors.New("login failed"))
		return
	}

	if req.Username != cred.Username ||
		bcrypt.CompareHashAndPassword([]byte(cred.Password), []byte(req.Password)) != nil {
		utils.RespondError(c, http.StatusUnauthorized, errors.New("invalid credentials"))
		return
	}

	token := ac.Sessions.Issue()
	utils.InfoLogger.Printf("Admin %s logged in", cred.Username)
	c.JSON(http.StatusOK, gin.H{"success": true, "token": token})
}

// Check reports whether the caller's token is a live session. Always 200;
// the answer is in the body.
func (ac *AuthController) Check(c *gin.Context) {
	token := BearerToken(c)
	c.JSON(http.StatusOK, gin.H{"authenticated": token != "" && ac.Sessions.Validate(token)})
}

// Logout revokes the caller's token. Succeeds even when the token was never
// issued.
func (ac *AuthController) Logout(c *gin.Context) {
	if token := BearerToken(c); token != "" {
		ac.Sessions.Revoke(token)
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// BearerToken pulls the session token out of the Authorization header,
// with or without the Bearer prefix.
func BearerToken(c *gin.Context) string {
	return strings.TrimPrefix(c.GetHeader("Authorization"), "Bearer ")
}
