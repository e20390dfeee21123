package controllers

import (
	"encoding/json"
	"errors"
	"net/http"

	"go-storefront/middleware"
	"go-storefront/models"
	"go-storefront/repository"
	"go-storefront/utils"

	"golang.org/x/crypto/bcrypt"
)

// UserController handles user-related requests
type UserController struct {
	Repo repository.UserRepository
}

// NewUserController creates a new UserController
func NewUserController(repo repository.UserRepository) *UserController {
	return &UserController{Repo: repo}
}

// Register handles user registration
func (uc *UserController) Register(w http.ResponseWriter, r *http.Request) {
	var input struct {
		FirstName string `json:"firstName"`
		LastName  string `json:"lastName"`
		Email     string `json:"email"`
		Password  string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid input")
		return
	}
	if input.Email == "" || input.Password == "" {
		writeError(w, http.StatusBadRequest, "Email and password are required")
		return
	}

	// Check if user already exists
	_, err := uc.Repo.GetByEmail(r.Context(), input.Email)
	if err == nil {
		writeError(w, http.StatusBadRequest, "User already exists")
		return
	}
	if !errors.Is(err, repository.ErrNotFound) {
		writeError(w, http.StatusInternalServerError, "Database error")
		return
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Error hashing password")
		return
	}

	user := models.User{
		FirstName: input.FirstName,
		LastName:  input.LastName,
		Email:     input.Email,
		Password:  string(hashedPassword),
		Role:      "user",
	}
	if err := uc.Repo.Insert(r.Context(), &user); err != nil {
		writeError(w, http.StatusInternalServerError, "Error creating user")
		return
	}

	writeJSON(w, http.StatusCreated, map[string]string{"message": "User registered successfully"})
}

// Login handles user authentication
func (uc *UserController) Login(w http.ResponseWriter, r *http.Request) {
	var creds struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&creds); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid input")
		return
	}

	user, err := uc.Repo.GetByEmail(r.Context(), creds.Email)
	if err != nil {
		writeError(w, http.StatusUnauthorized, "User not found")
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(creds.Password)); err != nil {
		writeError(w, http.StatusUnauthorized, "Invalid password")
		return
	}

	token, err := utils.GenerateJWT(user.Email, user.Role)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Error generating token")
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"token": token})
}

// GetProfile retrieves the authenticated user's profile
func (uc *UserController) GetProfile(w http.ResponseWriter, r *http.Request) {
	claims, ok := r.Context().Value(middleware.UserContextKey).(*utils.Claims)
	if !ok {
		writeError(w, http.StatusUnauthorized, "Could not parse user from context")
		return
	}

	user, err := uc.Repo.GetByEmail(r.Context(), claims.Email)
	if err != nil {
		writeError(w, statusForRepoErr(err), "User not found")
		return
	}

	user.Password = ""
	writeJSON(w, http.StatusOK, user)
}
