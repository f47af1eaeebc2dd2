package rest

import (
	"context"
	"net/http"

	core_port "mobile-api-service/internal/core/port"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

type Server struct {
	httpServer *http.Server
	logger     core_port.LoggerPort
}

// ServerConfig - настройки HTTP-сервера.
type ServerConfig struct {
	Port           string
	AppName        string
	PublicToken    string
	AllowedOrigins []string
}

func NewServer(cfg ServerConfig,
	userHandler *UserHandler,
	filterHandler *FilterHandler,
	settingsHandler *SettingsHandler,
	advertHandler *AdvertHandler,
	dictionaryHandler *DictionaryHandler,
	partnerHandler *PartnerHandler,
	messageHandler *MessageHandler,
	publicHandler *PublicHandler,
	baseLogger core_port.LoggerPort) *Server {

	r := chi.NewRouter()

	r.Use(middleware.RealIP, LoggerMiddleware(baseLogger), middleware.Recoverer)

	r.Use(cors.Handler(cors.Options{
		// Мобильные клиенты ходят с любых адресов, список сужается конфигом.
		AllowedOrigins: cfg.AllowedOrigins,
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type", "ACCESS-TOKEN", "PUBLIC-TOKEN", "X-Trace-ID"},

		// AllowCredentials - разрешает отправку cookies и Authorization хедера
		AllowCredentials: true,

		// MaxAge - на сколько секунд браузер может кэшировать результат preflight-запроса
		MaxAge: 300, // 5 минут
	}))

	r.Get("/", func(w http.ResponseWriter, req *http.Request) {
		RespondWithJSON(w, http.StatusOK, rootResponse{Message: cfg.AppName, Version: "1.0.0"})
	})
	r.Get("/health", func(w http.ResponseWriter, req *http.Request) {
		RespondWithJSON(w, http.StatusOK, healthResponse{Status: "healthy"})
	})

	r.Route("/api", func(r chi.Router) {
		// Регистрация - единственный роут без токена: GUID еще не выдан.
		r.Post("/Register", userHandler.Register)

		r.Group(func(r chi.Router) {
			r.Use(AuthMiddleware)

			r.Post("/SaveDeviceInfo", userHandler.SaveDeviceInfo)
			r.Post("/SaveFirebaseToken", userHandler.SaveFirebaseToken)

			r.Post("/SaveFilter", filterHandler.SaveFilter)
			r.Post("/ReadFilter", filterHandler.ReadFilter)

			r.Post("/ReadSettings", settingsHandler.ReadSettings)
			r.Post("/SaveSettings", settingsHandler.SaveSettings)
			r.Post("/SaveLatestViewAdvertId", settingsHandler.SaveLatestViewAdvertID)
			r.Post("/SaveIsNotificationEnabled", settingsHandler.SaveIsNotificationEnabled)

			r.Post("/ReadAdverts", advertHandler.ReadAdverts)
			r.Post("/ReadAdverts2", advertHandler.ReadAdverts2)
			r.Post("/ReadLatestAdverts", advertHandler.ReadLatestAdverts)

			r.Post("/ReadDistricts", dictionaryHandler.ReadDistricts)
			r.Post("/ReadFiles", dictionaryHandler.ReadFiles)

			r.Post("/ReadPartnerAdverts", partnerHandler.ReadPartnerAdverts)
			r.Post("/SendPartnerLead", partnerHandler.SendPartnerLead)

			r.Post("/SendMessage", messageHandler.SendMessage)
			r.Post("/GenerateSmsCode", messageHandler.GenerateSmsCode)
			r.Post("/CheckSmsCode", messageHandler.CheckSmsCode)
			r.Post("/Messaggio", messageHandler.Messaggio)
		})
	})

	r.Route("/public", func(r chi.Router) {
		r.Get("/ping", publicHandler.Ping)

		r.Group(func(r chi.Router) {
			r.Use(PublicAuthMiddleware(cfg.PublicToken))

			r.Post("/db", publicHandler.DBVersion)
			r.Post("/report_log", publicHandler.ReportLog)
			r.Post("/register", publicHandler.Register)
		})
	})

	return &Server{
		httpServer: &http.Server{
			Addr:    ":" + cfg.Port,
			Handler: r,
		},
		logger: baseLogger,
	}
}

func (s *Server) Start() error {
	s.logger.Info("Starting REST server", core_port.Fields{"address": s.httpServer.Addr})
	return s.httpServer.ListenAndServe()
}

func (s *Server) Stop(ctx context.Context) error {
	s.logger.Info("Stopping REST server...", nil)
	return s.httpServer.Shutdown(ctx)
}
