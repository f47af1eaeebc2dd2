package rest

import (
	"net/http"

	usecases_port "mobile-api-service/internal/core/port/usecases_port"
)

type DictionaryHandler struct {
	readDistrictsUC usecases_port.ReadDistrictsUseCasePort
	readFilesUC     usecases_port.ReadFilesUseCasePort
}

func NewDictionaryHandler(
	readDistrictsUC usecases_port.ReadDistrictsUseCasePort,
	readFilesUC usecases_port.ReadFilesUseCasePort,
) *DictionaryHandler {
	return &DictionaryHandler{
		readDistrictsUC: readDistrictsUC,
		readFilesUC:     readFilesUC,
	}
}

func (h *DictionaryHandler) ReadDistricts(w http.ResponseWriter, r *http.Request) {
	if _, ok := UserIDFromContext(r.Context()); !ok {
		WriteEnvelopeError(w, http.StatusUnauthorized, "Access token required")
		return
	}

	districts, err := h.readDistrictsUC.Execute(r.Context())
	if err != nil {
		WriteDomainError(w, err)
		return
	}

	RespondWithEnvelope(w, http.StatusOK, toDistrictsResponse(districts))
}

func (h *DictionaryHandler) ReadFiles(w http.ResponseWriter, r *http.Request) {
	if _, ok := UserIDFromContext(r.Context()); !ok {
		WriteEnvelopeError(w, http.StatusUnauthorized, "Access token required")
		return
	}

	var req readFilesRequest
	if err := decodeValidatedBody(r, "ReadFilesRequest", &req); err != nil {
		WriteEnvelopeError(w, http.StatusBadRequest, err.Error())
		return
	}

	files, err := h.readFilesUC.Execute(r.Context(), req.IDs)
	if err != nil {
		WriteDomainError(w, err)
		return
	}

	RespondWithEnvelope(w, http.StatusOK, toFilesResponse(files))
}
