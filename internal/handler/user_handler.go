package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"device-warranty-server/internal/domain"
	"device-warranty-server/internal/middleware"
	"device-warranty-server/internal/service"
	"device-warranty-server/pkg/response"

	"github.com/go-playground/validator/v10"
)

type UserHandler struct {
	userService *service.UserService
	validate    *validator.Validate
}

func NewUserHandler(userService *service.UserService) *UserHandler {
	return &UserHandler{
		userService: userService,
		validate:    validator.New(),
	}
}

func (h *UserHandler) GetUser(w http.ResponseWriter, r *http.Request) {
	user, err := h.userService.GetByID(middleware.GetUserID(r))
	if err != nil {
		writeError(w, err)
		return
	}

	response.Success(w, user)
}

func (h *UserHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req domain.UserUpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	user, err := h.userService.Update(middleware.GetUserID(r), &req)
	if err != nil {
		writeError(w, err)
		return
	}

	response.Success(w, user)
}

func (h *UserHandler) ChangePassword(w http.ResponseWriter, r *http.Request) {
	var req domain.ChangePasswordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	if err := h.validate.Struct(req); err != nil {
		response.BadRequest(w, err.Error())
		return
	}

	if err := h.userService.ChangePassword(middleware.GetUserID(r), &req); err != nil {
		writeError(w, err)
		return
	}

	response.Success(w, map[string]string{"message": "Password changed successfully"})
}

func (h *UserHandler) List(w http.ResponseWriter, r *http.Request) {
	page := queryInt(r, "page", 1)
	size := queryInt(r, "size", 10)

	users, err := h.userService.GetUsers(page, size)
	if err != nil {
		writeError(w, err)
		return
	}

	response.Success(w, users)
}

func queryInt(r *http.Request, key string, defaultValue int) int {
	if value, err := strconv.Atoi(r.URL.Query().Get(key)); err == nil {
		return value
	}
	return defaultValue
}
