package rest

import (
	"net/http"

	usecases_port "mobile-api-service/internal/core/port/usecases_port"
)

type PartnerHandler struct {
	readPartnerAdvertsUC usecases_port.ReadPartnerAdvertsUseCasePort
	sendPartnerLeadUC    usecases_port.SendPartnerLeadUseCasePort
}

func NewPartnerHandler(
	readPartnerAdvertsUC usecases_port.ReadPartnerAdvertsUseCasePort,
	sendPartnerLeadUC usecases_port.SendPartnerLeadUseCasePort,
) *PartnerHandler {
	return &PartnerHandler{
		readPartnerAdvertsUC: readPartnerAdvertsUC,
		sendPartnerLeadUC:    sendPartnerLeadUC,
	}
}

func (h *PartnerHandler) ReadPartnerAdverts(w http.ResponseWriter, r *http.Request) {
	userID, ok := UserIDFromContext(r.Context())
	if !ok {
		WriteEnvelopeError(w, http.StatusUnauthorized, "Access token required")
		return
	}

	regionID, adverts, err := h.readPartnerAdvertsUC.Execute(r.Context(), userID)
	if err != nil {
		WriteDomainError(w, err)
		return
	}

	RespondWithEnvelope(w, http.StatusOK, toPartnerAdvertsResponse(regionID, adverts))
}

func (h *PartnerHandler) SendPartnerLead(w http.ResponseWriter, r *http.Request) {
	if _, ok := UserIDFromContext(r.Context()); !ok {
		WriteEnvelopeError(w, http.StatusUnauthorized, "Access token required")
		return
	}

	var req sendPartnerLeadRequest
	if err := decodeValidatedBody(r, "SendPartnerLeadRequest", &req); err != nil {
		WriteEnvelopeError(w, http.StatusBadRequest, err.Error())
		return
	}

	delivered, err := h.sendPartnerLeadUC.Execute(r.Context(), req.toDomain())
	if err != nil {
		WriteDomainError(w, err)
		return
	}

	RespondWithEnvelope(w, http.StatusOK, delivered)
}
