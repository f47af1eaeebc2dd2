package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"mobile-api-service/internal/constants"
	"mobile-api-service/internal/contextkeys"
	"mobile-api-service/internal/core/domain"
	"mobile-api-service/internal/core/port"
)

type SendPartnerLeadUseCase struct {
	partnerRepo    port.PartnerAdvertRepositoryPort
	dictionaryRepo port.DictionaryRepositoryPort
	leadGateway    port.LeadGatewayPort
	emailSender    port.EmailSenderPort
}

func NewSendPartnerLeadUseCase(
	partnerRepo port.PartnerAdvertRepositoryPort,
	dictionaryRepo port.DictionaryRepositoryPort,
	leadGateway port.LeadGatewayPort,
	emailSender port.EmailSenderPort,
) *SendPartnerLeadUseCase {
	return &SendPartnerLeadUseCase{
		partnerRepo:    partnerRepo,
		dictionaryRepo: dictionaryRepo,
		leadGateway:    leadGateway,
		emailSender:    emailSender,
	}
}

// Execute проверяет заявку, собирает текст лида и доставляет его партнеру.
// false без ошибки означает, что доставка не подтверждена.
func (uc *SendPartnerLeadUseCase) Execute(ctx context.Context, lead domain.Lead) (bool, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{
		"use_case":          "SendPartnerLead",
		"partner_advert_id": lead.PartnerAdvertID,
	})

	ucLogger.Info("Use case started", nil)

	// Шаг 1: Общая валидация заявки.
	if lead.PartnerAdvertID <= 0 {
		return false, domain.NewRequiredParameterError("partnerAdvertId")
	}
	if strings.TrimSpace(lead.Code) == "" {
		return false, domain.NewRequiredParameterError("code")
	}
	if strings.TrimSpace(lead.Phone) == "" {
		return false, domain.NewRequiredParameterError("phone")
	}

	partnerAdvert, err := uc.partnerRepo.GetByID(ctx, lead.PartnerAdvertID)
	if err != nil {
		if errors.Is(err, domain.ErrPartnerAdvertNotFound) {
			return false, domain.NewValidationError("partnerAdvert not found")
		}
		ucLogger.Error("Failed to read partner advert", err, nil)
		return false, err
	}

	// Шаг 2: Обязательные поля зависят от типа партнера.
	if err := validateLeadForPartner(lead, partnerAdvert.PartnerTypeID); err != nil {
		return false, err
	}

	// Шаг 3: Собираем текст лида.
	message, err := uc.buildLeadMessage(ctx, lead, partnerAdvert)
	if err != nil {
		return false, err
	}

	// Шаг 4: Партнер без эндпоинта получает лид письмом.
	if strings.TrimSpace(partnerAdvert.Endpoint) == "" {
		msg := domain.EmailMessage{
			To:        constants.ContactEmail,
			Subject:   "New Lead",
			PlainText: message,
		}
		if err := uc.emailSender.Send(ctx, msg); err != nil {
			ucLogger.Error("Failed to send lead by email", err, nil)
			return false, nil
		}
		ucLogger.Info("Use case finished successfully", port.Fields{"delivery": "email"})
		return true, nil
	}

	delivered, err := uc.leadGateway.Deliver(ctx, partnerAdvert.Endpoint, message)
	if err != nil {
		ucLogger.Error("Failed to deliver lead to partner endpoint", err, nil)
		return false, nil
	}

	ucLogger.Info("Use case finished successfully", port.Fields{"delivered": delivered})
	return delivered, nil
}

func validateLeadForPartner(lead domain.Lead, partnerTypeID int) error {
	switch partnerTypeID {
	case domain.PartnerTypeRealEstate:
		if strings.TrimSpace(lead.Rooms) == "" {
			return domain.NewRequiredParameterError("rooms")
		}
		if strings.TrimSpace(lead.Name) == "" {
			return domain.NewRequiredParameterError("name")
		}
		if strings.TrimSpace(lead.Description) == "" {
			return domain.NewRequiredParameterError("description")
		}
	case domain.PartnerTypeMoving:
		if strings.TrimSpace(lead.Name) == "" {
			return domain.NewRequiredParameterError("name")
		}
		if strings.TrimSpace(lead.Description) == "" {
			return domain.NewRequiredParameterError("description")
		}
		if strings.TrimSpace(lead.AddressIn) == "" {
			return domain.NewRequiredParameterError("addressIn")
		}
		if strings.TrimSpace(lead.AddressOut) == "" {
			return domain.NewRequiredParameterError("addressOut")
		}
	}
	return nil
}

// buildLeadMessage собирает HTML-текст заявки построчно.
func (uc *SendPartnerLeadUseCase) buildLeadMessage(ctx context.Context, lead domain.Lead, partnerAdvert *domain.PartnerAdvert) (string, error) {
	var lines []string

	region, err := uc.dictionaryRepo.GetRegion(ctx, partnerAdvert.RegionID)
	if err != nil {
		return "", err
	}
	if region != nil {
		lines = append(lines, fmt.Sprintf("<b>Region:</b> %s", region.Name))
	}

	switch partnerAdvert.PartnerTypeID {
	case domain.PartnerTypeRealEstate:
		lines = append(lines,
			fmt.Sprintf("<b>Phone:</b> %s", lead.PhoneNumber()),
			fmt.Sprintf("<b>Name:</b> %s", lead.Name),
			fmt.Sprintf("<b>Rooms:</b> %s", lead.Rooms),
			fmt.Sprintf("<b>Description:</b> %s", lead.Description),
		)
	case domain.PartnerTypeMoving:
		lines = append(lines,
			fmt.Sprintf("<b>Phone:</b> %s", lead.PhoneNumber()),
			fmt.Sprintf("<b>Name:</b> %s", lead.Name),
			fmt.Sprintf("<b>Address from:</b> %s", lead.AddressIn),
			fmt.Sprintf("<b>Address to:</b> %s", lead.AddressOut),
			fmt.Sprintf("<b>Description:</b> %s", lead.Description),
		)
	}

	return strings.Join(lines, "\n"), nil
}
