package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/drivelane/drivelane-backend/internal/auth"
	"github.com/drivelane/drivelane-backend/internal/db"
	"github.com/drivelane/drivelane-backend/internal/middleware"
	"github.com/drivelane/drivelane-backend/internal/models"
	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

// AuthHandler handles account creation and authentication.
type AuthHandler struct {
	authService *auth.Service
	users       db.UserCollection
}

// NewAuthHandler creates a new authentication handler.
func NewAuthHandler(authService *auth.Service, users db.UserCollection) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		users:       users,
	}
}

// Signup creates a new account.
func (h *AuthHandler) Signup(w http.ResponseWriter, r *http.Request) {
	var req models.SignupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		fail(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	req.Email = strings.ToLower(strings.TrimSpace(req.Email))
	if req.Name == "" || req.Email == "" || req.Password == "" {
		fail(w, http.StatusBadRequest, "Name, email and password are required")
		return
	}
	if err := h.authService.ValidatePassword(req.Password); err != nil {
		fail(w, http.StatusBadRequest, err.Error())
		return
	}

	if _, err := h.users.FindUserByEmail(r.Context(), req.Email); err == nil {
		fail(w, http.StatusBadRequest, "User with this email already exists")
		return
	}

	passwordHash, err := h.authService.HashPassword(req.Password)
	if err != nil {
		failServer(w, "Error creating account", err)
		return
	}

	user := models.User{
		Name:         req.Name,
		Email:        req.Email,
		PhoneNumber:  req.PhoneNumber,
		PasswordHash: passwordHash,
		Credit:       models.DefaultCredit,
		Plan:         models.DefaultPlan,
	}

	created, err := h.users.InsertUser(r.Context(), user)
	if err != nil {
		if errors.Is(err, db.ErrDuplicate) {
			fail(w, http.StatusBadRequest, "Email already registered")
			return
		}
		log.WithError(err).Error("failed to create user")
		failServer(w, "Error creating account", err)
		return
	}

	ok(w, http.StatusCreated, "Account created successfully", envelope{"user": created})
}

// Login authenticates a user and returns a token.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req models.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		fail(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	req.Email = strings.ToLower(strings.TrimSpace(req.Email))
	user, err := h.users.FindUserByEmail(r.Context(), req.Email)
	if err != nil {
		fail(w, http.StatusUnauthorized, "Invalid email or password")
		return
	}
	if !h.authService.CheckPassword(req.Password, user.PasswordHash) {
		fail(w, http.StatusUnauthorized, "Invalid email or password")
		return
	}

	token, err := h.authService.GenerateToken(user)
	if err != nil {
		failServer(w, "Error during login", err)
		return
	}

	ok(w, http.StatusOK, "Login successful", envelope{"user": user, "token": token})
}

// Logout acknowledges a logout request for an existing user. Tokens are
// stateless, so there is nothing to invalidate server-side.
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	userID := mux.Vars(r)["userId"]

	if _, err := h.users.FindUserByID(r.Context(), userID); err != nil {
		switch {
		case errors.Is(err, db.ErrInvalidID):
			fail(w, http.StatusBadRequest, "Invalid user ID format")
		case errors.Is(err, db.ErrNotFound):
			fail(w, http.StatusNotFound, "User not found")
		default:
			failServer(w, "Error during logout", err)
		}
		return
	}

	ok(w, http.StatusOK, "Logout requested successfully", envelope{"userId": userID})
}

// Me returns the authenticated user's profile.
func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	claims, found := middleware.GetUserFromContext(r.Context())
	if !found {
		fail(w, http.StatusUnauthorized, "Not authenticated")
		return
	}

	user, err := h.users.FindUserByID(r.Context(), claims.UserID)
	if err != nil {
		fail(w, http.StatusNotFound, "User not found")
		return
	}

	ok(w, http.StatusOK, "User retrieved successfully", envelope{"user": user})
}
