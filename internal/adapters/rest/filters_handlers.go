package rest

import (
	"net/http"

	usecases_port "mobile-api-service/internal/core/port/usecases_port"
)

type FilterHandler struct {
	saveFilterUC usecases_port.SaveFilterUseCasePort
	readFilterUC usecases_port.ReadFilterUseCasePort
}

func NewFilterHandler(
	saveFilterUC usecases_port.SaveFilterUseCasePort,
	readFilterUC usecases_port.ReadFilterUseCasePort,
) *FilterHandler {
	return &FilterHandler{
		saveFilterUC: saveFilterUC,
		readFilterUC: readFilterUC,
	}
}

func (h *FilterHandler) SaveFilter(w http.ResponseWriter, r *http.Request) {
	userID, ok := UserIDFromContext(r.Context())
	if !ok {
		WriteEnvelopeError(w, http.StatusUnauthorized, "Access token required")
		return
	}

	var req filterDTO
	if err := decodeValidatedBody(r, "SaveFilterRequest", &req); err != nil {
		WriteEnvelopeError(w, http.StatusBadRequest, err.Error())
		return
	}

	user, err := h.saveFilterUC.Execute(r.Context(), userID, req.toDomain())
	if err != nil {
		WriteDomainError(w, err)
		return
	}

	RespondWithEnvelope(w, http.StatusOK, toUserResponse(user))
}

func (h *FilterHandler) ReadFilter(w http.ResponseWriter, r *http.Request) {
	userID, ok := UserIDFromContext(r.Context())
	if !ok {
		WriteEnvelopeError(w, http.StatusUnauthorized, "Access token required")
		return
	}

	filter, err := h.readFilterUC.Execute(r.Context(), userID)
	if err != nil {
		WriteDomainError(w, err)
		return
	}

	RespondWithEnvelope(w, http.StatusOK, toFilterDTO(filter))
}
