package dictionary_cache

import (
	"context"
	"errors"
	"testing"

	"mobile-api-service/internal/core/domain"
)

type fakeDictionaryRepo struct {
	districts []domain.District
	regions   []domain.Region
	loadErr   error

	districtLoads int
	regionLoads   int
}

func (f *fakeDictionaryRepo) LoadDistricts(_ context.Context) ([]domain.District, error) {
	f.districtLoads++
	return f.districts, f.loadErr
}

func (f *fakeDictionaryRepo) LoadRegions(_ context.Context) ([]domain.Region, error) {
	f.regionLoads++
	return f.regions, f.loadErr
}

func (f *fakeDictionaryRepo) GetRegion(_ context.Context, id int) (*domain.Region, error) {
	return nil, nil
}

func TestDistrictNamesLoadedOnce(t *testing.T) {
	repo := &fakeDictionaryRepo{districts: []domain.District{
		{ID: 1, RegionID: 5, Name: "Wola"},
		{ID: 2, RegionID: 5, Name: "Praga"},
		{ID: 3, RegionID: 5, Name: ""},
	}}
	cache := NewDistrictNameCache(repo)

	names := cache.Names(context.Background(), []int{1, 2, 3, 99})
	if len(names) != 2 || names[0] != "Wola" || names[1] != "Praga" {
		t.Fatalf("names = %v, want [Wola Praga]", names)
	}

	cache.Names(context.Background(), []int{1})
	if repo.districtLoads != 1 {
		t.Fatalf("district table loaded %d times, want 1", repo.districtLoads)
	}
}

// Ошибка загрузки тоже взводит флаг: кэш не должен долбить базу
// на каждом запросе.
func TestDistrictLoadErrorMarksLoaded(t *testing.T) {
	repo := &fakeDictionaryRepo{loadErr: errors.New("db is down")}
	cache := NewDistrictNameCache(repo)

	if names := cache.Names(context.Background(), []int{1}); len(names) != 0 {
		t.Fatalf("names = %v, want empty", names)
	}
	cache.Names(context.Background(), []int{1})

	if repo.districtLoads != 1 {
		t.Fatalf("district table loaded %d times after error, want 1", repo.districtLoads)
	}
}

func TestRegionCityNameUsesLastVariantCapitalized(t *testing.T) {
	repo := &fakeDictionaryRepo{regions: []domain.Region{
		{ID: 5, Name: "Mazowieckie", Names: []string{"Мазовецкое", "WARSZAWA"}},
		{ID: 6, Name: "Lodzkie", Names: []string{"łódź"}},
		{ID: 7, Name: "Empty", Names: nil},
	}}
	cache := NewRegionNameCache(repo)

	city, ok := cache.CityName(context.Background(), 5)
	if !ok || city != "Warszawa" {
		t.Fatalf("city = %q (ok=%v), want Warszawa", city, ok)
	}

	// Первая буква поднимается по польским правилам.
	city, ok = cache.CityName(context.Background(), 6)
	if !ok || city != "Łódź" {
		t.Fatalf("city = %q (ok=%v), want Łódź", city, ok)
	}

	if _, ok := cache.CityName(context.Background(), 7); ok {
		t.Fatal("region without name variants must not resolve")
	}
	if _, ok := cache.CityName(context.Background(), 99); ok {
		t.Fatal("unknown region must not resolve")
	}

	if repo.regionLoads != 1 {
		t.Fatalf("region table loaded %d times, want 1", repo.regionLoads)
	}
}

func TestCapitalizeCityName(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"WARSZAWA", "Warszawa"},
		{"kraków", "Kraków"},
		{"łódź", "Łódź"},
		{"", ""},
	}

	for _, tt := range tests {
		if got := capitalizeCityName(tt.in); got != tt.want {
			t.Errorf("capitalizeCityName(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
