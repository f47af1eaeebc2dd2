package rest

import (
	"net/http"

	usecases_port "mobile-api-service/internal/core/port/usecases_port"
)

type UserHandler struct {
	registerUC          usecases_port.RegisterUserUseCasePort
	saveDeviceInfoUC    usecases_port.SaveDeviceInfoUseCasePort
	saveFirebaseTokenUC usecases_port.SaveFirebaseTokenUseCasePort
}

func NewUserHandler(
	registerUC usecases_port.RegisterUserUseCasePort,
	saveDeviceInfoUC usecases_port.SaveDeviceInfoUseCasePort,
	saveFirebaseTokenUC usecases_port.SaveFirebaseTokenUseCasePort,
) *UserHandler {
	return &UserHandler{
		registerUC:          registerUC,
		saveDeviceInfoUC:    saveDeviceInfoUC,
		saveFirebaseTokenUC: saveFirebaseTokenUC,
	}
}

// Register регистрирует новое устройство. Единственный /api роут без
// ACCESS-TOKEN: токеном станет GUID из ответа.
func (h *UserHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if err := decodeValidatedBody(r, "RegisterRequest", &req); err != nil {
		WriteEnvelopeError(w, http.StatusBadRequest, err.Error())
		return
	}

	user, err := h.registerUC.Execute(r.Context(), req.FirebaseToken, req.Platform, req.BuildNumber)
	if err != nil {
		WriteDomainError(w, err)
		return
	}

	RespondWithEnvelope(w, http.StatusOK, toUserResponse(user))
}

func (h *UserHandler) SaveDeviceInfo(w http.ResponseWriter, r *http.Request) {
	userID, ok := UserIDFromContext(r.Context())
	if !ok {
		WriteEnvelopeError(w, http.StatusUnauthorized, "Access token required")
		return
	}

	var req saveDeviceInfoRequest
	if err := decodeValidatedBody(r, "SaveDeviceInfoRequest", &req); err != nil {
		WriteEnvelopeError(w, http.StatusBadRequest, err.Error())
		return
	}

	user, err := h.saveDeviceInfoUC.Execute(r.Context(), userID, req.Platform, req.BuildNumber)
	if err != nil {
		WriteDomainError(w, err)
		return
	}

	RespondWithEnvelope(w, http.StatusOK, toUserResponse(user))
}

func (h *UserHandler) SaveFirebaseToken(w http.ResponseWriter, r *http.Request) {
	userID, ok := UserIDFromContext(r.Context())
	if !ok {
		WriteEnvelopeError(w, http.StatusUnauthorized, "Access token required")
		return
	}

	var req saveFirebaseTokenRequest
	if err := decodeValidatedBody(r, "SaveFirebaseTokenRequest", &req); err != nil {
		WriteEnvelopeError(w, http.StatusBadRequest, err.Error())
		return
	}

	if err := h.saveFirebaseTokenUC.Execute(r.Context(), userID, req.Token); err != nil {
		WriteDomainError(w, err)
		return
	}

	RespondWithEnvelope(w, http.StatusOK, nil)
}
