package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"device-warranty-server/internal/domain"
	"device-warranty-server/internal/service"
	"device-warranty-server/pkg/response"

	"github.com/go-playground/validator/v10"
	"github.com/gorilla/mux"
)

type RenovationHandler struct {
	renovationService *service.RenovationService
	validate          *validator.Validate
}

func NewRenovationHandler(renovationService *service.RenovationService) *RenovationHandler {
	return &RenovationHandler{
		renovationService: renovationService,
		validate:          validator.New(),
	}
}

func (h *RenovationHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req domain.RenovationCreateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	if err := h.validate.Struct(req); err != nil {
		response.BadRequest(w, err.Error())
		return
	}

	renovation, err := h.renovationService.Create(&req)
	if err != nil {
		writeError(w, err)
		return
	}

	response.Created(w, renovation)
}

func (h *RenovationHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		response.BadRequest(w, "Invalid renovation id")
		return
	}

	if err := h.renovationService.Delete(id); err != nil {
		writeError(w, err)
		return
	}

	response.Success(w, map[string]string{"message": "Renovation deleted successfully"})
}
