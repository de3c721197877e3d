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

type PassportHandler struct {
	passportService *service.PassportService
	validate        *validator.Validate
}

func NewPassportHandler(passportService *service.PassportService) *PassportHandler {
	return &PassportHandler{
		passportService: passportService,
		validate:        validator.New(),
	}
}

func (h *PassportHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req domain.PassportCreateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	if err := h.validate.Struct(req); err != nil {
		response.BadRequest(w, err.Error())
		return
	}

	passport, err := h.passportService.Create(&req)
	if err != nil {
		writeError(w, err)
		return
	}

	response.Created(w, passport)
}

func (h *PassportHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		response.BadRequest(w, "Invalid passport id")
		return
	}

	var req domain.PassportUpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	if err := h.validate.Struct(req); err != nil {
		response.BadRequest(w, err.Error())
		return
	}

	passport, err := h.passportService.Update(id, &req)
	if err != nil {
		writeError(w, err)
		return
	}

	response.Success(w, passport)
}

func (h *PassportHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		response.BadRequest(w, "Invalid passport id")
		return
	}

	if err := h.passportService.Delete(id); err != nil {
		writeError(w, err)
		return
	}

	response.Success(w, map[string]string{"message": "Passport deleted successfully"})
}

func (h *PassportHandler) List(w http.ResponseWriter, r *http.Request) {
	page := queryInt(r, "page", 1)
	size := queryInt(r, "size", 10)

	passports, err := h.passportService.GetPassports(page, size)
	if err != nil {
		writeError(w, err)
		return
	}

	response.Success(w, passports)
}

// GetBySerialID resolves the passport owning a serial number.
func (h *PassportHandler) GetBySerialID(w http.ResponseWriter, r *http.Request) {
	serial := mux.Vars(r)["serial"]

	passport, err := h.passportService.FindBySerialNumber(serial)
	if err != nil {
		writeError(w, err)
		return
	}

	response.Success(w, passport)
}
