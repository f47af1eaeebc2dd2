package rest

import (
	"net/http"

	"mobile-api-service/internal/contextkeys"
	"mobile-api-service/internal/core/port"
)

type PublicHandler struct {
	systemRepo port.SystemRepositoryPort
}

func NewPublicHandler(systemRepo port.SystemRepositoryPort) *PublicHandler {
	return &PublicHandler{systemRepo: systemRepo}
}

// Ping - проверка живости без авторизации, data - текущее время в миллисекундах.
func (h *PublicHandler) Ping(w http.ResponseWriter, r *http.Request) {
	RespondWithEnvelope(w, http.StatusOK, epochMillisNow())
}

// DBVersion - проба соединения с базой, возвращает версию сервера.
func (h *PublicHandler) DBVersion(w http.ResponseWriter, r *http.Request) {
	version, err := h.systemRepo.Version(r.Context())
	if err != nil {
		WriteDomainError(w, err)
		return
	}

	RespondWithEnvelope(w, http.StatusOK, version)
}

// ReportLog принимает сообщение об ошибке от мобильного клиента
// и просто пишет его в лог сервиса.
func (h *PublicHandler) ReportLog(w http.ResponseWriter, r *http.Request) {
	var req reportLogRequest
	if err := decodeValidatedBody(r, "ReportLogRequest", &req); err != nil {
		WriteEnvelopeError(w, http.StatusBadRequest, err.Error())
		return
	}

	logger := contextkeys.LoggerFromContext(r.Context())
	logger.Warn("Client reported a log message", port.Fields{
		"client_level":   req.Level,
		"client_message": req.Message,
	})

	RespondWithEnvelope(w, http.StatusOK, true)
}

// Register - публичная регистрация. Роут зарезервирован, но новый сценарий
// регистрации так и не включили: валидируем запрос и отвечаем отказом.
func (h *PublicHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req publicRegisterRequest
	if err := decodeValidatedBody(r, "PublicRegisterRequest", &req); err != nil {
		WriteEnvelopeError(w, http.StatusBadRequest, err.Error())
		return
	}

	WriteEnvelopeError(w, http.StatusInternalServerError, "Not implemented")
}
