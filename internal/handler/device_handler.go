package handler

import (
	"encoding/json"
	"net/http"

	"device-warranty-server/internal/domain"
	"device-warranty-server/internal/middleware"
	"device-warranty-server/internal/service"
	"device-warranty-server/pkg/response"

	"github.com/go-playground/validator/v10"
	"github.com/gorilla/mux"
)

type DeviceHandler struct {
	deviceService *service.DeviceService
	validate      *validator.Validate
}

func NewDeviceHandler(deviceService *service.DeviceService) *DeviceHandler {
	return &DeviceHandler{
		deviceService: deviceService,
		validate:      validator.New(),
	}
}

func (h *DeviceHandler) Get(w http.ResponseWriter, r *http.Request) {
	serial := mux.Vars(r)["serial"]

	device, err := h.deviceService.MustExist(serial)
	if err != nil {
		writeError(w, err)
		return
	}

	response.Success(w, device)
}

// Exists is the public existence probe for a serial number.
func (h *DeviceHandler) Exists(w http.ResponseWriter, r *http.Request) {
	serial := mux.Vars(r)["serial"]

	device, err := h.deviceService.Find(serial)
	if err != nil {
		writeError(w, err)
		return
	}
	if device == nil {
		response.NotFound(w, "Device not registered")
		return
	}

	response.Success(w, device)
}

func (h *DeviceHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req domain.DeviceCreateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	if err := h.validate.Struct(req); err != nil {
		response.BadRequest(w, err.Error())
		return
	}

	userID := middleware.GetUserID(r)

	device, err := h.deviceService.Register(&req, &userID)
	if err != nil {
		writeError(w, err)
		return
	}

	response.Created(w, device)
}

func (h *DeviceHandler) RegisterAnonymous(w http.ResponseWriter, r *http.Request) {
	var req domain.DeviceCreateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	if err := h.validate.Struct(req); err != nil {
		response.BadRequest(w, err.Error())
		return
	}

	device, err := h.deviceService.RegisterAnonymous(&req)
	if err != nil {
		writeError(w, err)
		return
	}

	response.Created(w, device)
}

func (h *DeviceHandler) Update(w http.ResponseWriter, r *http.Request) {
	serial := mux.Vars(r)["serial"]

	var req domain.DeviceUpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	device, err := h.deviceService.Update(serial, &req)
	if err != nil {
		writeError(w, err)
		return
	}

	response.Success(w, device)
}

func (h *DeviceHandler) Delete(w http.ResponseWriter, r *http.Request) {
	serial := mux.Vars(r)["serial"]

	if err := h.deviceService.Delete(serial); err != nil {
		writeError(w, err)
		return
	}

	response.Success(w, map[string]string{"message": "Device deleted successfully"})
}

// List returns the caller's devices.
func (h *DeviceHandler) List(w http.ResponseWriter, r *http.Request) {
	devices, err := h.deviceService.ListByUser(middleware.GetUserID(r))
	if err != nil {
		writeError(w, err)
		return
	}

	response.Success(w, devices)
}
