package user

import (
	"encoding/json"
	"net/http"

	"pronet/internal/apperror"
	"pronet/internal/common"
)

// Handler wires the auth HTTP endpoints to the user service.
type Handler struct {
	userService UserService
}

func NewHandler(userService UserService) *Handler {
	return &Handler{userService: userService}
}

type signupRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginRequest struct {
	Identifier string `json:"identifier"`
	Username   string `json:"username"`
	Email      string `json:"email"`
	Password   string `json:"password"`
}

func (h *Handler) Signup(w http.ResponseWriter, r *http.Request) {
	var req signupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		common.WriteError(w, apperror.Validation("invalid request body"))
		return
	}

	user, token, err := h.userService.Signup(r.Context(), req.Username, req.Email, req.Password)
	if err != nil {
		common.WriteError(w, err)
		return
	}

	common.WriteJSON(w, http.StatusCreated, map[string]interface{}{
		"success": true,
		"message": "User registered successfully",
		"user":    user.Summary(),
		"token":   token,
	})
}

func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		common.WriteError(w, apperror.Validation("invalid request body"))
		return
	}

	// identifier may arrive under any of the three historical field names
	identifier := req.Identifier
	if identifier == "" {
		identifier = req.Username
	}
	if identifier == "" {
		identifier = req.Email
	}

	user, token, err := h.userService.Login(r.Context(), identifier, req.Password)
	if err != nil {
		common.WriteError(w, err)
		return
	}

	common.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"token":   token,
		"user":    user.Summary(),
	})
}

func (h *Handler) Profile(w http.ResponseWriter, r *http.Request) {
	userID, ok := common.UserIDFromContext(r.Context())
	if !ok {
		common.WriteMessage(w, http.StatusUnauthorized, "user not authenticated")
		return
	}

	user, err := h.userService.GetProfile(r.Context(), userID)
	if err != nil {
		common.WriteError(w, err)
		return
	}

	common.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"user":    user.Summary(),
	})
}
