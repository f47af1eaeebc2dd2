package usecase

import (
	"context"
	"errors"
	"testing"

	"mobile-api-service/internal/core/domain"

	"github.com/google/uuid"
)

type fakeFilterRepo struct {
	filter *domain.Filter
	err    error
}

func (f *fakeFilterRepo) Save(_ context.Context, _ uuid.UUID, filter domain.Filter) (*domain.Filter, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.filter = &filter
	return &filter, nil
}

func (f *fakeFilterRepo) Read(_ context.Context, _ uuid.UUID) (*domain.Filter, error) {
	return f.filter, f.err
}

type fakeListingsProvider struct {
	adverts     []domain.Advert
	fetchErr    error
	missed      int
	missedErr   error
	missedCalls int
}

func (f *fakeListingsProvider) FetchListings(_ context.Context, _ *domain.Filter, _ domain.PageRequest) ([]domain.Advert, error) {
	return f.adverts, f.fetchErr
}

func (f *fakeListingsProvider) FetchMissedCount(_ context.Context, _ *domain.Filter, _ domain.PageRequest) (int, error) {
	f.missedCalls++
	return f.missed, f.missedErr
}

func TestReadAdvertsSortsAscendingByID(t *testing.T) {
	listings := &fakeListingsProvider{
		adverts: []domain.Advert{{ID: 30}, {ID: 10}, {ID: 20}},
		missed:  3,
	}
	uc := NewReadAdvertsUseCase(&fakeFilterRepo{filter: &domain.Filter{}}, listings)

	adverts, missed, err := uc.Execute(context.Background(), uuid.New(), domain.PageRequest{Direction: domain.DirectionNext})
	if err != nil {
		t.Fatalf("Execute returned error: %v", err)
	}

	if adverts[0].ID != 10 || adverts[1].ID != 20 || adverts[2].ID != 30 {
		t.Fatalf("adverts not sorted ascending: %v", adverts)
	}
	if missed != 3 {
		t.Fatalf("missed = %d, want 3", missed)
	}
}

// Пропущенные считаются только при листании от якоря, не для Latest.
func TestReadAdvertsMissedOnlyForPrevNext(t *testing.T) {
	tests := []struct {
		direction domain.LoadDirection
		wantCalls int
	}{
		{domain.DirectionPrev, 1},
		{domain.DirectionNext, 1},
		{domain.DirectionLatest, 0},
	}

	for _, tt := range tests {
		listings := &fakeListingsProvider{}
		uc := NewReadAdvertsUseCase(&fakeFilterRepo{filter: &domain.Filter{}}, listings)

		if _, _, err := uc.Execute(context.Background(), uuid.New(), domain.PageRequest{Direction: tt.direction}); err != nil {
			t.Fatalf("Execute returned error: %v", err)
		}
		if listings.missedCalls != tt.wantCalls {
			t.Fatalf("direction %d: missed fetched %d times, want %d", tt.direction, listings.missedCalls, tt.wantCalls)
		}
	}
}

func TestReadAdvertsPropagatesUpstreamFailure(t *testing.T) {
	listings := &fakeListingsProvider{fetchErr: domain.ErrUpstreamTimeout}
	uc := NewReadAdvertsUseCase(&fakeFilterRepo{filter: &domain.Filter{}}, listings)

	_, _, err := uc.Execute(context.Background(), uuid.New(), domain.PageRequest{Direction: domain.DirectionLatest})
	if !errors.Is(err, domain.ErrUpstreamTimeout) {
		t.Fatalf("err = %v, want ErrUpstreamTimeout", err)
	}
}

func TestReadAdvertsPropagatesMissedFailure(t *testing.T) {
	listings := &fakeListingsProvider{missedErr: domain.ErrUpstreamUnavailable}
	uc := NewReadAdvertsUseCase(&fakeFilterRepo{filter: &domain.Filter{}}, listings)

	_, _, err := uc.Execute(context.Background(), uuid.New(), domain.PageRequest{Direction: domain.DirectionPrev})
	if !errors.Is(err, domain.ErrUpstreamUnavailable) {
		t.Fatalf("err = %v, want ErrUpstreamUnavailable", err)
	}
}
