package rest

import (
	"net/http"

	"mobile-api-service/internal/core/domain"
	usecases_port "mobile-api-service/internal/core/port/usecases_port"
)

type AdvertHandler struct {
	readAdvertsUC       usecases_port.ReadAdvertsUseCasePort
	readUpdateBannerUC  usecases_port.ReadUpdateBannerUseCasePort
	readLatestAdvertsUC usecases_port.ReadLatestAdvertsUseCasePort
}

func NewAdvertHandler(
	readAdvertsUC usecases_port.ReadAdvertsUseCasePort,
	readUpdateBannerUC usecases_port.ReadUpdateBannerUseCasePort,
	readLatestAdvertsUC usecases_port.ReadLatestAdvertsUseCasePort,
) *AdvertHandler {
	return &AdvertHandler{
		readAdvertsUC:       readAdvertsUC,
		readUpdateBannerUC:  readUpdateBannerUC,
		readLatestAdvertsUC: readLatestAdvertsUC,
	}
}

// ReadAdverts возвращает страницу ленты из внешнего API.
// Недоступность внешнего API транслируется в 503.
func (h *AdvertHandler) ReadAdverts(w http.ResponseWriter, r *http.Request) {
	userID, ok := UserIDFromContext(r.Context())
	if !ok {
		WriteEnvelopeError(w, http.StatusUnauthorized, "Access token required")
		return
	}

	var req readAdvertsRequest
	if err := decodeValidatedBody(r, "ReadAdvertsRequest", &req); err != nil {
		WriteEnvelopeError(w, http.StatusBadRequest, err.Error())
		return
	}

	adverts, missed, err := h.readAdvertsUC.Execute(r.Context(), userID, req.toDomain())
	if err != nil {
		WriteDomainError(w, err)
		return
	}

	RespondWithAdvertsEnvelope(w, http.StatusOK, toAdvertsResponse(adverts), missed)
}

// ReadAdverts2 возвращает единственное псевдообъявление - баннер,
// зовущий обновить устаревшую версию приложения.
func (h *AdvertHandler) ReadAdverts2(w http.ResponseWriter, r *http.Request) {
	userID, ok := UserIDFromContext(r.Context())
	if !ok {
		WriteEnvelopeError(w, http.StatusUnauthorized, "Access token required")
		return
	}

	banner, err := h.readUpdateBannerUC.Execute(r.Context(), userID)
	if err != nil {
		WriteDomainError(w, err)
		return
	}

	RespondWithAdvertsEnvelope(w, http.StatusOK, toAdvertsResponse([]domain.Advert{*banner}), 0)
}

func (h *AdvertHandler) ReadLatestAdverts(w http.ResponseWriter, r *http.Request) {
	userID, ok := UserIDFromContext(r.Context())
	if !ok {
		WriteEnvelopeError(w, http.StatusUnauthorized, "Access token required")
		return
	}

	adverts, err := h.readLatestAdvertsUC.Execute(r.Context(), userID)
	if err != nil {
		WriteDomainError(w, err)
		return
	}

	RespondWithAdvertsEnvelope(w, http.StatusOK, toAdvertsResponse(adverts), 0)
}
