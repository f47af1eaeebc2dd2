package usecase

import (
	"context"
	"errors"
	"testing"

	"mobile-api-service/internal/constants"
	"mobile-api-service/internal/core/domain"

	"github.com/google/uuid"
)

func TestReadLatestAdvertsRejectsNonAdmin(t *testing.T) {
	uc := NewReadLatestAdvertsUseCase(&fakeListingsProvider{})

	_, err := uc.Execute(context.Background(), uuid.New())
	if !errors.Is(err, domain.ErrUnauthorized) {
		t.Fatalf("err = %v, want ErrUnauthorized", err)
	}
}

func TestReadLatestAdvertsForAdmin(t *testing.T) {
	listings := &fakeListingsProvider{adverts: []domain.Advert{{ID: 2}, {ID: 1}}}
	uc := NewReadLatestAdvertsUseCase(listings)

	adverts, err := uc.Execute(context.Background(), constants.AdminUserID)
	if err != nil {
		t.Fatalf("Execute returned error: %v", err)
	}
	if len(adverts) != 2 || adverts[0].ID != 1 {
		t.Fatalf("adverts = %v, want sorted pair", adverts)
	}
}

// Служебная выборка переживает отказ внешнего API: пустой список вместо ошибки.
func TestReadLatestAdvertsSwallowsUpstreamFailure(t *testing.T) {
	listings := &fakeListingsProvider{fetchErr: domain.ErrUpstreamUnavailable}
	uc := NewReadLatestAdvertsUseCase(listings)

	adverts, err := uc.Execute(context.Background(), constants.AdminUserID)
	if err != nil {
		t.Fatalf("Execute returned error: %v", err)
	}
	if len(adverts) != 0 {
		t.Fatalf("adverts = %v, want empty list", adverts)
	}
}
