package usecase

import (
	"context"
	"errors"
	"testing"

	"mobile-api-service/internal/core/domain"

	"github.com/google/uuid"
)

type fakeUserRepo struct {
	user *domain.User
	err  error

	paginationResets int
}

func (f *fakeUserRepo) Register(_ context.Context, uniqueID uuid.UUID, _ string, _, _ int) (*domain.User, error) {
	return &domain.User{UniqueID: uniqueID}, f.err
}

func (f *fakeUserRepo) GetByUniqueID(_ context.Context, _ uuid.UUID) (*domain.User, error) {
	return f.user, f.err
}

func (f *fakeUserRepo) SaveDeviceInfo(_ context.Context, _ uuid.UUID, _, _ int) (*domain.User, error) {
	return f.user, f.err
}

func (f *fakeUserRepo) SaveFirebaseToken(_ context.Context, _ uuid.UUID, _ string) error {
	return f.err
}

func (f *fakeUserRepo) ResetPaginationState(_ context.Context, _ uuid.UUID) error {
	f.paginationResets++
	return nil
}

func validFilter() domain.Filter {
	return domain.Filter{
		CountryID: 1,
		RegionID:  5,
		Districts: []int{7, 8},
		Types:     []int{1, 2},
		Rooms:     []int{2},
	}
}

func TestSaveFilterResetsPagination(t *testing.T) {
	userID := uuid.New()
	filterRepo := &fakeFilterRepo{}
	userRepo := &fakeUserRepo{user: &domain.User{UniqueID: userID}}
	uc := NewSaveFilterUseCase(filterRepo, userRepo)

	user, err := uc.Execute(context.Background(), userID, validFilter())
	if err != nil {
		t.Fatalf("Execute returned error: %v", err)
	}
	if user.UniqueID != userID {
		t.Fatalf("user = %v, want unique id %v", user, userID)
	}

	if filterRepo.filter == nil || filterRepo.filter.RegionID != 5 {
		t.Fatalf("filter not saved: %v", filterRepo.filter)
	}
	// Новый фильтр всегда сбрасывает позицию ленты.
	if userRepo.paginationResets != 1 {
		t.Fatalf("pagination reset %d times, want 1", userRepo.paginationResets)
	}
}

func TestSaveFilterValidation(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*domain.Filter)
	}{
		{"missing country", func(f *domain.Filter) { f.CountryID = 0 }},
		{"missing region", func(f *domain.Filter) { f.RegionID = 0 }},
		{"negative district", func(f *domain.Filter) { f.Districts = []int{-1} }},
		{"zero type", func(f *domain.Filter) { f.Types = []int{0} }},
		{"zero rooms", func(f *domain.Filter) { f.Rooms = []int{0} }},
		{"negative area from", func(f *domain.Filter) { f.Area = &domain.Range{From: intPtr(-1)} }},
		{"negative price to", func(f *domain.Filter) { f.Price = &domain.Range{To: intPtr(-5)} }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := NewSaveFilterUseCase(&fakeFilterRepo{}, &fakeUserRepo{})

			filter := validFilter()
			tt.mutate(&filter)

			_, err := uc.Execute(context.Background(), uuid.New(), filter)

			var validationErr *domain.ValidationError
			if !errors.As(err, &validationErr) {
				t.Fatalf("err = %v, want ValidationError", err)
			}
		})
	}
}

func intPtr(v int) *int { return &v }
