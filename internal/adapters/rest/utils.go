package rest

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"mobile-api-service/internal/core/domain"
)

// apiEnvelope - единый конверт всех ответов API.
// HTTP-статус ответа всегда дублируется в поле statusCode.
type apiEnvelope struct {
	Data          interface{} `json:"data"`
	StatusCode    int         `json:"statusCode"`
	StatusMessage *string     `json:"statusMessage"`
	Timestamp     int64       `json:"timestamp"`
	// Missed присутствует только в ответах ленты объявлений.
	Missed *int `json:"missed,omitempty"`
}

func epochMillisNow() int64 {
	return time.Now().UTC().UnixMilli()
}

func writeEnvelope(w http.ResponseWriter, envelope apiEnvelope) {
	response, err := json.Marshal(envelope)
	if err != nil {
		http.Error(w, "Failed to marshal JSON response", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(envelope.StatusCode)
	w.Write(response)
}

// RespondWithJSON отправляет JSON-ответ без конверта.
// Используется только служебными роутами / и /health.
func RespondWithJSON(w http.ResponseWriter, code int, payload interface{}) {
	response, err := json.Marshal(payload)
	if err != nil {
		http.Error(w, "Failed to marshal JSON response", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	w.Write(response)
}

// RespondWithEnvelope отправляет успешный ответ в конверте API.
func RespondWithEnvelope(w http.ResponseWriter, code int, data interface{}) {
	writeEnvelope(w, apiEnvelope{
		Data:       data,
		StatusCode: code,
		Timestamp:  epochMillisNow(),
	})
}

// RespondWithAdvertsEnvelope отправляет конверт ленты объявлений
// с дополнительным полем missed.
func RespondWithAdvertsEnvelope(w http.ResponseWriter, code int, data interface{}, missed int) {
	writeEnvelope(w, apiEnvelope{
		Data:       data,
		StatusCode: code,
		Timestamp:  epochMillisNow(),
		Missed:     &missed,
	})
}

// WriteEnvelopeError отправляет ошибку в конверте API: data пустая,
// сообщение уходит в statusMessage.
func WriteEnvelopeError(w http.ResponseWriter, code int, message string) {
	writeEnvelope(w, apiEnvelope{
		StatusCode:    code,
		StatusMessage: &message,
		Timestamp:     epochMillisNow(),
	})
}

// WriteDomainError переводит ошибку бизнес-логики в HTTP-ответ.
func WriteDomainError(w http.ResponseWriter, err error) {
	var validationErr *domain.ValidationError

	switch {
	case errors.As(err, &validationErr):
		WriteEnvelopeError(w, http.StatusBadRequest, validationErr.Message)
	case errors.Is(err, domain.ErrUnauthorized):
		WriteEnvelopeError(w, http.StatusUnauthorized, "Unauthorized")
	case errors.Is(err, domain.ErrUserNotFound):
		WriteEnvelopeError(w, http.StatusNotFound, "User not found")
	case errors.Is(err, domain.ErrUpstreamTimeout), errors.Is(err, domain.ErrUpstreamUnavailable):
		// Внешнее API объявлений недоступно, клиент может повторить позже.
		WriteEnvelopeError(w, http.StatusServiceUnavailable, "Dependent service is unavailable. Please try again later.")
	default:
		WriteEnvelopeError(w, http.StatusInternalServerError, "Internal server error")
	}
}
