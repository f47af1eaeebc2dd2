package rest

import (
	"net/http"

	"mobile-api-service/internal/core/domain"
	usecases_port "mobile-api-service/internal/core/port/usecases_port"
)

type SettingsHandler struct {
	readSettingsUC         usecases_port.ReadSettingsUseCasePort
	saveSettingsUC         usecases_port.SaveSettingsUseCasePort
	saveLatestViewUC       usecases_port.SaveLatestViewAdvertUseCasePort
	saveNotificationFlagUC usecases_port.SaveNotificationFlagUseCasePort
}

func NewSettingsHandler(
	readSettingsUC usecases_port.ReadSettingsUseCasePort,
	saveSettingsUC usecases_port.SaveSettingsUseCasePort,
	saveLatestViewUC usecases_port.SaveLatestViewAdvertUseCasePort,
	saveNotificationFlagUC usecases_port.SaveNotificationFlagUseCasePort,
) *SettingsHandler {
	return &SettingsHandler{
		readSettingsUC:         readSettingsUC,
		saveSettingsUC:         saveSettingsUC,
		saveLatestViewUC:       saveLatestViewUC,
		saveNotificationFlagUC: saveNotificationFlagUC,
	}
}

func (h *SettingsHandler) ReadSettings(w http.ResponseWriter, r *http.Request) {
	userID, ok := UserIDFromContext(r.Context())
	if !ok {
		WriteEnvelopeError(w, http.StatusUnauthorized, "Access token required")
		return
	}

	settings, err := h.readSettingsUC.Execute(r.Context(), userID)
	if err != nil {
		WriteDomainError(w, err)
		return
	}

	RespondWithEnvelope(w, http.StatusOK, toSettingsResponse(settings))
}

func (h *SettingsHandler) SaveSettings(w http.ResponseWriter, r *http.Request) {
	userID, ok := UserIDFromContext(r.Context())
	if !ok {
		WriteEnvelopeError(w, http.StatusUnauthorized, "Access token required")
		return
	}

	var req saveSettingsRequest
	if err := decodeValidatedBody(r, "SaveSettingsRequest", &req); err != nil {
		WriteEnvelopeError(w, http.StatusBadRequest, err.Error())
		return
	}

	// Клиент может не прислать флаг уведомлений, по умолчанию они включены.
	enabled := true
	if req.IsNotificationEnabled != nil {
		enabled = *req.IsNotificationEnabled
	}

	settings := domain.UserSettings{
		LastViewID:            req.LastViewID,
		IsNotificationEnabled: enabled,
		LanguageCode:          req.LanguageCode,
	}

	if _, err := h.saveSettingsUC.Execute(r.Context(), userID, settings); err != nil {
		WriteDomainError(w, err)
		return
	}

	RespondWithEnvelope(w, http.StatusOK, nil)
}

func (h *SettingsHandler) SaveLatestViewAdvertID(w http.ResponseWriter, r *http.Request) {
	userID, ok := UserIDFromContext(r.Context())
	if !ok {
		WriteEnvelopeError(w, http.StatusUnauthorized, "Access token required")
		return
	}

	var req saveLatestViewAdvertRequest
	if err := decodeValidatedBody(r, "SaveLatestViewAdvertIdRequest", &req); err != nil {
		WriteEnvelopeError(w, http.StatusBadRequest, err.Error())
		return
	}

	if err := h.saveLatestViewUC.Execute(r.Context(), userID, req.AdvertID); err != nil {
		WriteDomainError(w, err)
		return
	}

	RespondWithEnvelope(w, http.StatusOK, nil)
}

func (h *SettingsHandler) SaveIsNotificationEnabled(w http.ResponseWriter, r *http.Request) {
	userID, ok := UserIDFromContext(r.Context())
	if !ok {
		WriteEnvelopeError(w, http.StatusUnauthorized, "Access token required")
		return
	}

	var req saveIsNotificationEnabledRequest
	if err := decodeValidatedBody(r, "SaveIsNotificationEnabledRequest", &req); err != nil {
		WriteEnvelopeError(w, http.StatusBadRequest, err.Error())
		return
	}

	user, err := h.saveNotificationFlagUC.Execute(r.Context(), userID, req.Enable)
	if err != nil {
		WriteDomainError(w, err)
		return
	}

	RespondWithEnvelope(w, http.StatusOK, toUserResponse(user))
}
