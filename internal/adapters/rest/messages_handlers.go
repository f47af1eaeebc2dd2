package rest

import (
	"net/http"

	usecases_port "mobile-api-service/internal/core/port/usecases_port"
)

type MessageHandler struct {
	sendMessageUC usecases_port.SendMessageUseCasePort
}

func NewMessageHandler(sendMessageUC usecases_port.SendMessageUseCasePort) *MessageHandler {
	return &MessageHandler{sendMessageUC: sendMessageUC}
}

func (h *MessageHandler) SendMessage(w http.ResponseWriter, r *http.Request) {
	if _, ok := UserIDFromContext(r.Context()); !ok {
		WriteEnvelopeError(w, http.StatusUnauthorized, "Access token required")
		return
	}

	var req sendMessageRequest
	if err := decodeValidatedBody(r, "SendMessageRequest", &req); err != nil {
		WriteEnvelopeError(w, http.StatusBadRequest, err.Error())
		return
	}

	if err := h.sendMessageUC.Execute(r.Context(), req.Subject, req.Message); err != nil {
		WriteDomainError(w, err)
		return
	}

	RespondWithEnvelope(w, http.StatusOK, nil)
}

// SMS-проверка телефона выключена на стороне сервера, но старые версии
// приложения еще зовут эти роуты. Ответы фиксированные.

func (h *MessageHandler) GenerateSmsCode(w http.ResponseWriter, r *http.Request) {
	if _, ok := UserIDFromContext(r.Context()); !ok {
		WriteEnvelopeError(w, http.StatusUnauthorized, "Access token required")
		return
	}

	RespondWithEnvelope(w, http.StatusOK, nil)
}

func (h *MessageHandler) CheckSmsCode(w http.ResponseWriter, r *http.Request) {
	if _, ok := UserIDFromContext(r.Context()); !ok {
		WriteEnvelopeError(w, http.StatusUnauthorized, "Access token required")
		return
	}

	RespondWithEnvelope(w, http.StatusOK, false)
}

// Messaggio - callback SMS-провайдера, оставлен для совместимости.
func (h *MessageHandler) Messaggio(w http.ResponseWriter, r *http.Request) {
	RespondWithEnvelope(w, http.StatusOK, true)
}
