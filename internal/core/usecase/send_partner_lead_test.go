package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"

	"mobile-api-service/internal/core/domain"

	"github.com/google/uuid"
)

type fakePartnerRepo struct {
	advert *domain.PartnerAdvert
	err    error
}

func (f *fakePartnerRepo) ListForUser(_ context.Context, _ uuid.UUID) ([]domain.PartnerAdvert, error) {
	return nil, nil
}

func (f *fakePartnerRepo) GetByID(_ context.Context, _ int64) (*domain.PartnerAdvert, error) {
	return f.advert, f.err
}

type fakeDictionaryRepo struct {
	region *domain.Region
}

func (f *fakeDictionaryRepo) LoadDistricts(_ context.Context) ([]domain.District, error) {
	return nil, nil
}

func (f *fakeDictionaryRepo) LoadRegions(_ context.Context) ([]domain.Region, error) {
	return nil, nil
}

func (f *fakeDictionaryRepo) GetRegion(_ context.Context, _ int) (*domain.Region, error) {
	return f.region, nil
}

type fakeLeadGateway struct {
	delivered bool
	err       error

	endpoint string
	message  string
	calls    int
}

func (f *fakeLeadGateway) Deliver(_ context.Context, endpointTemplate, message string) (bool, error) {
	f.calls++
	f.endpoint = endpointTemplate
	f.message = message
	return f.delivered, f.err
}

type fakeEmailSender struct {
	err   error
	sent  []domain.EmailMessage
	calls int
}

func (f *fakeEmailSender) Send(_ context.Context, msg domain.EmailMessage) error {
	f.calls++
	f.sent = append(f.sent, msg)
	return f.err
}

func validLead() domain.Lead {
	return domain.Lead{
		PartnerAdvertID: 1,
		Code:            "+48",
		Phone:           "123456789",
		Rooms:           "2",
		Name:            "Jan",
		Description:     "Szukam mieszkania",
		AddressIn:       "Wola",
		AddressOut:      "Praga",
	}
}

func newLeadUseCase(partner *domain.PartnerAdvert, gateway *fakeLeadGateway, email *fakeEmailSender) *SendPartnerLeadUseCase {
	return NewSendPartnerLeadUseCase(
		&fakePartnerRepo{advert: partner},
		&fakeDictionaryRepo{region: &domain.Region{ID: 5, Name: "Mazowieckie"}},
		gateway,
		email,
	)
}

func TestSendPartnerLeadRequiredFieldsByPartnerType(t *testing.T) {
	tests := []struct {
		name        string
		partnerType int
		mutate      func(*domain.Lead)
		wantParam   string
	}{
		{"real estate without rooms", domain.PartnerTypeRealEstate, func(l *domain.Lead) { l.Rooms = "" }, "rooms"},
		{"real estate without name", domain.PartnerTypeRealEstate, func(l *domain.Lead) { l.Name = " " }, "name"},
		{"real estate without description", domain.PartnerTypeRealEstate, func(l *domain.Lead) { l.Description = "" }, "description"},
		{"moving without address in", domain.PartnerTypeMoving, func(l *domain.Lead) { l.AddressIn = "" }, "addressIn"},
		{"moving without address out", domain.PartnerTypeMoving, func(l *domain.Lead) { l.AddressOut = "" }, "addressOut"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			partner := &domain.PartnerAdvert{ID: 1, PartnerTypeID: tt.partnerType, Endpoint: "https://partner.example/?text={text}"}
			uc := newLeadUseCase(partner, &fakeLeadGateway{}, &fakeEmailSender{})

			lead := validLead()
			tt.mutate(&lead)

			_, err := uc.Execute(context.Background(), lead)

			var validationErr *domain.ValidationError
			if !errors.As(err, &validationErr) {
				t.Fatalf("err = %v, want ValidationError", err)
			}
			if !strings.Contains(validationErr.Message, tt.wantParam) {
				t.Fatalf("message %q does not name parameter %q", validationErr.Message, tt.wantParam)
			}
		})
	}
}

func TestSendPartnerLeadCommonValidation(t *testing.T) {
	uc := newLeadUseCase(&domain.PartnerAdvert{ID: 1}, &fakeLeadGateway{}, &fakeEmailSender{})

	lead := validLead()
	lead.Phone = ""

	_, err := uc.Execute(context.Background(), lead)

	var validationErr *domain.ValidationError
	if !errors.As(err, &validationErr) {
		t.Fatalf("err = %v, want ValidationError", err)
	}
}

func TestSendPartnerLeadUnknownAdvert(t *testing.T) {
	uc := NewSendPartnerLeadUseCase(
		&fakePartnerRepo{err: domain.ErrPartnerAdvertNotFound},
		&fakeDictionaryRepo{},
		&fakeLeadGateway{},
		&fakeEmailSender{},
	)

	_, err := uc.Execute(context.Background(), validLead())

	var validationErr *domain.ValidationError
	if !errors.As(err, &validationErr) {
		t.Fatalf("err = %v, want ValidationError for missing partner advert", err)
	}
}

func TestSendPartnerLeadDeliversToEndpoint(t *testing.T) {
	partner := &domain.PartnerAdvert{
		ID:            1,
		PartnerTypeID: domain.PartnerTypeRealEstate,
		RegionID:      5,
		Endpoint:      "https://partner.example/?text={text}",
	}
	gateway := &fakeLeadGateway{delivered: true}
	email := &fakeEmailSender{}
	uc := newLeadUseCase(partner, gateway, email)

	ok, err := uc.Execute(context.Background(), validLead())
	if err != nil {
		t.Fatalf("Execute returned error: %v", err)
	}
	if !ok {
		t.Fatal("Execute = false, want confirmed delivery")
	}
	if gateway.calls != 1 || email.calls != 0 {
		t.Fatalf("gateway calls = %d, email calls = %d, want 1/0", gateway.calls, email.calls)
	}

	// Текст лида собирается из региона и полей заявки, телефон с кодом.
	for _, fragment := range []string{"Mazowieckie", "+48123456789", "Jan", "Szukam mieszkania"} {
		if !strings.Contains(gateway.message, fragment) {
			t.Fatalf("lead message %q misses %q", gateway.message, fragment)
		}
	}
}

// Партнер без эндпоинта получает лид письмом на контактный адрес.
func TestSendPartnerLeadFallsBackToEmail(t *testing.T) {
	partner := &domain.PartnerAdvert{
		ID:            1,
		PartnerTypeID: domain.PartnerTypeMoving,
		RegionID:      5,
		Endpoint:      "  ",
	}
	gateway := &fakeLeadGateway{}
	email := &fakeEmailSender{}
	uc := newLeadUseCase(partner, gateway, email)

	ok, err := uc.Execute(context.Background(), validLead())
	if err != nil {
		t.Fatalf("Execute returned error: %v", err)
	}
	if !ok {
		t.Fatal("Execute = false, want true after email delivery")
	}
	if gateway.calls != 0 || email.calls != 1 {
		t.Fatalf("gateway calls = %d, email calls = %d, want 0/1", gateway.calls, email.calls)
	}
	if !strings.Contains(email.sent[0].PlainText, "Wola") || !strings.Contains(email.sent[0].PlainText, "Praga") {
		t.Fatalf("moving lead message %q misses addresses", email.sent[0].PlainText)
	}
}

// Сбой доставки - не ошибка запроса: клиент получает false.
func TestSendPartnerLeadDeliveryFailureMeansFalse(t *testing.T) {
	partner := &domain.PartnerAdvert{
		ID:            1,
		PartnerTypeID: domain.PartnerTypeRealEstate,
		Endpoint:      "https://partner.example/?text={text}",
	}
	uc := newLeadUseCase(partner, &fakeLeadGateway{err: errors.New("partner is down")}, &fakeEmailSender{})

	ok, err := uc.Execute(context.Background(), validLead())
	if err != nil {
		t.Fatalf("Execute returned error: %v", err)
	}
	if ok {
		t.Fatal("Execute = true, want false when delivery fails")
	}
}

func TestSendPartnerLeadEmailFailureMeansFalse(t *testing.T) {
	partner := &domain.PartnerAdvert{ID: 1, PartnerTypeID: domain.PartnerTypeMoving}
	uc := newLeadUseCase(partner, &fakeLeadGateway{}, &fakeEmailSender{err: errors.New("provider rejected")})

	ok, err := uc.Execute(context.Background(), validLead())
	if err != nil {
		t.Fatalf("Execute returned error: %v", err)
	}
	if ok {
		t.Fatal("Execute = true, want false when email fails")
	}
}
