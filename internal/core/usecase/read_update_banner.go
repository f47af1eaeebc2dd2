package usecase

import (
	"context"
	"fmt"
	"time"

	"mobile-api-service/internal/constants"
	"mobile-api-service/internal/contextkeys"
	"mobile-api-service/internal/core/domain"
	"mobile-api-service/internal/core/port"

	"github.com/google/uuid"
)

// Заголовок баннера по языку приложения.
var updateBannerTitles = map[string]string{
	"uk": "ОНОВИТИ ↗",
	"pl": "AKTUALIZOVAĆ ↗",
	"en": "UPDATE ↗",
}

const updateBannerTitleDefault = "ОБНОВИТЬ ↗"

// CSS дорисовывает баннер поверх карточки объявления в приложении.
const updateBannerStyle = "<style>" +
	" #advert-1 {" +
	"   position: absolute;" +
	"   top: 0;" +
	"   right: 0;" +
	"   bottom: 0;" +
	"   left: 0;" +
	"   padding: 18px;" +
	" }" +
	" #advert-1 .advert-item__content > :not(.advert-item__title) {" +
	"   display: none;" +
	" }" +
	"</style>"

type ReadUpdateBannerUseCase struct {
	settingsRepo port.SettingsRepositoryPort
}

func NewReadUpdateBannerUseCase(settingsRepo port.SettingsRepositoryPort) *ReadUpdateBannerUseCase {
	return &ReadUpdateBannerUseCase{settingsRepo: settingsRepo}
}

// Execute собирает псевдообъявление, зовущее обновить старую версию приложения.
func (uc *ReadUpdateBannerUseCase) Execute(ctx context.Context, userID uuid.UUID) (*domain.Advert, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{
		"use_case": "ReadUpdateBanner",
		"user_id":  userID,
	})

	ucLogger.Info("Use case started", nil)

	// Язык баннера берем из настроек пользователя.
	settings, err := uc.settingsRepo.Read(ctx, userID)
	if err != nil {
		ucLogger.Error("Failed to read settings", err, nil)
		return nil, err
	}

	title, ok := updateBannerTitles[settings.LanguageCode]
	if !ok {
		title = updateBannerTitleDefault
	}

	now := time.Now().UTC()
	price := 1.0

	banner := &domain.Advert{
		ID:        1,
		SourceID:  0,
		TypeID:    0,
		URL:       constants.UpdateBannerLink,
		RegionID:  0,
		Region:    "",
		District:  "",
		Title:     title + updateBannerStyle,
		Photos:    []string{fmt.Sprintf(constants.UpdateBannerImageTemplate, settings.LanguageCode)},
		Rooms:     0,
		Area:      nil,
		Price:     &price,
		Currency:  "",
		ExtPrice:  nil,
		Agency:    false,
		Date:      now,
		CreatedAt: now,
		ValidTo:   now,
	}

	ucLogger.Info("Use case finished successfully", nil)
	return banner, nil
}
