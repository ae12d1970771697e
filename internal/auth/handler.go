package auth

import (
	"encoding/json"
	"errors"
	"net/http"

	"log/slog"
)

type RegisterHandler struct {
	Service *Service
	Logger  *slog.Logger
}

type registerRequest struct {
	Email     string `json:"email"`
	Password  string `json:"password"`
	Role      Role   `json:"role"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
}

func (h *RegisterHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	var req registerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "User registration failed: invalid request", http.StatusBadRequest)
		return
	}
	role := req.Role
	if role == "" {
		role = RoleUser
	}
	if role != RoleAdmin && role != RoleUser {
		http.Error(w, "User registration failed: invalid role", http.StatusBadRequest)
		return
	}
	user := &User{
		Email: req.Email,
		Role:  role,
		Name:  req.FirstName + " " + req.LastName,
	}
	if _, err := h.Service.Register(r.Context(), user, req.Password); err != nil {
		// One message for every failure so callers cannot tell the
		// availability check apart from a store rejection.
		http.Error(w, "User registration failed: Email already in use", http.StatusBadRequest)
		return
	}
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = w.Write([]byte("User registered successfully"))
}

type LoginHandler struct {
	Service *Service
	Logger  *slog.Logger
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (h *LoginHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid credentials", http.StatusUnauthorized)
		return
	}
	token, err := h.Service.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		http.Error(w, "Invalid credentials", http.StatusUnauthorized)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]string{"token": token})
}

type CheckEmailHandler struct {
	Store  Store
	Logger *slog.Logger
}

func (h *CheckEmailHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	email := r.URL.Query().Get("email")
	resp := map[string]interface{}{"email": email}

	available, err := IsEmailAvailable(r.Context(), h.Store, email)
	if err != nil {
		h.Logger.Error("check email availability", "email", email, "err", err)
		resp["available"] = false
		resp["message"] = "Error checking email availability"
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		_ = json.NewEncoder(w).Encode(resp)
		return
	}

	resp["available"] = available
	if available {
		resp["message"] = "Email address is available"
	} else {
		resp["message"] = "This email address is already registered"
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(resp)
}

type ProfileHandler struct {
	Service *Service
	Logger  *slog.Logger
}

func (h *ProfileHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPut {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	principal, ok := PrincipalFromContext(r.Context())
	if !ok {
		w.WriteHeader(http.StatusUnauthorized)
		return
	}
	var patch ProfileUpdate
	// Unknown keys are ignored; a type mismatch (say a string
	// yearsInBusiness) fails the decode.
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}
	user, err := h.Service.UpdateProfile(r.Context(), principal.Email, patch)
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			http.Error(w, "User not found", http.StatusNotFound)
			return
		}
		h.Logger.Error("update profile", "email", principal.Email, "err", err)
		w.WriteHeader(http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(user)
}
