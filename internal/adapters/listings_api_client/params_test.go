package listings_api_client

import (
	"context"
	"net/url"
	"sort"
	"testing"
	"time"

	"mobile-api-service/internal/core/domain"
)

type stubDistrictCache struct {
	names map[int]string
}

func (s *stubDistrictCache) Names(_ context.Context, ids []int) []string {
	result := []string{}
	for _, id := range ids {
		if name, ok := s.names[id]; ok {
			result = append(result, name)
		}
	}
	return result
}

type stubRegionCache struct {
	cities map[int]string
}

func (s *stubRegionCache) CityName(_ context.Context, regionID int) (string, bool) {
	name, ok := s.cities[regionID]
	return name, ok
}

func newTestClient() *Client {
	return NewClient(
		"http://listings.local",
		"/api/v1/listings",
		30*time.Second,
		&stubDistrictCache{names: map[int]string{7: "Wola", 8: "Praga"}},
		&stubRegionCache{cities: map[int]string{5: "Warszawa"}},
	)
}

func intPtr(v int) *int       { return &v }
func int64Ptr(v int64) *int64 { return &v }

func TestBuildFilterParamsNilFilter(t *testing.T) {
	client := newTestClient()

	params := client.buildFilterParams(context.Background(), nil)

	if got := params.Get("offer_type"); got != "RENT" {
		t.Fatalf("offer_type = %q, want RENT", got)
	}
	if len(params) != 1 {
		t.Fatalf("nil filter must produce only offer_type, got %v", params)
	}
}

// Флаг Agency инвертируется в is_business=false. Инверсия намеренная:
// "только от собственников" для провайдера значит "не бизнес".
func TestBuildFilterParamsAgencyInversion(t *testing.T) {
	client := newTestClient()

	params := client.buildFilterParams(context.Background(), &domain.Filter{Agency: true})
	if got := params.Get("is_business"); got != "false" {
		t.Fatalf("is_business = %q, want false", got)
	}

	params = client.buildFilterParams(context.Background(), &domain.Filter{Agency: false})
	if _, present := params["is_business"]; present {
		t.Fatal("is_business must be omitted when Agency is false")
	}
}

func TestBuildFilterParamsTypeExpansion(t *testing.T) {
	client := newTestClient()

	params := client.buildFilterParams(context.Background(), &domain.Filter{Types: []int{typeRoom, typeHouse}})

	got := append([]string(nil), params["building_type"]...)
	sort.Strings(got)

	want := []string{"HOUSE", "OTHER", "TENEMENT", "WOLNOSTOJACY"}
	if len(got) != len(want) {
		t.Fatalf("building_type = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("building_type = %v, want %v", got, want)
		}
	}
}

func TestBuildFilterParamsRangesOnlyWhenSet(t *testing.T) {
	client := newTestClient()

	filter := &domain.Filter{
		Price: &domain.Range{From: intPtr(1000)},
		Area:  &domain.Range{To: intPtr(120)},
	}

	params := client.buildFilterParams(context.Background(), filter)

	if got := params.Get("min_price"); got != "1000" {
		t.Fatalf("min_price = %q, want 1000", got)
	}
	if _, present := params["max_price"]; present {
		t.Fatal("max_price must be omitted when Price.To is unset")
	}
	if got := params.Get("max_area"); got != "120" {
		t.Fatalf("max_area = %q, want 120", got)
	}
	if _, present := params["min_area"]; present {
		t.Fatal("min_area must be omitted when Area.From is unset")
	}
}

func TestBuildFilterParamsDistrictsResolved(t *testing.T) {
	client := newTestClient()

	// Район 99 в справочнике отсутствует и молча пропускается.
	params := client.buildFilterParams(context.Background(), &domain.Filter{Districts: []int{7, 99}})

	districts := params["district"]
	if len(districts) != 1 || districts[0] != "Wola" {
		t.Fatalf("district = %v, want [Wola]", districts)
	}
}

func TestBuildPageParams(t *testing.T) {
	client := newTestClient()

	tests := []struct {
		name          string
		page          domain.PageRequest
		wantDirection string
		wantID        string
	}{
		{
			name:          "prev from anchor",
			page:          domain.PageRequest{Direction: domain.DirectionPrev, AdvertID: int64Ptr(42)},
			wantDirection: "after",
			wantID:        "42",
		},
		{
			name:          "next from anchor",
			page:          domain.PageRequest{Direction: domain.DirectionNext, AdvertID: int64Ptr(42)},
			wantDirection: "before",
			wantID:        "42",
		},
		{
			name:          "latest without anchor",
			page:          domain.PageRequest{Direction: domain.DirectionLatest},
			wantDirection: "latest",
			wantID:        "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			params := client.buildPageParams(context.Background(), nil, tt.page)

			if got := params.Get("limit"); got != "10" {
				t.Fatalf("limit = %q, want 10", got)
			}
			if got := params.Get("direction"); got != tt.wantDirection {
				t.Fatalf("direction = %q, want %q", got, tt.wantDirection)
			}
			if got := params.Get("id"); got != tt.wantID {
				t.Fatalf("id = %q, want %q", got, tt.wantID)
			}
		})
	}
}

func TestBuildPageParamsFullQuery(t *testing.T) {
	client := newTestClient()

	filter := &domain.Filter{
		RegionID: 5,
		Price:    &domain.Range{From: intPtr(1000), To: intPtr(3000)},
	}
	page := domain.PageRequest{Direction: domain.DirectionNext, AdvertID: int64Ptr(42)}

	params := client.buildPageParams(context.Background(), filter, page)

	want := url.Values{
		"offer_type": {"RENT"},
		"min_price":  {"1000"},
		"max_price":  {"3000"},
		"direction":  {"before"},
		"id":         {"42"},
		"limit":      {"10"},
		"city":       {"Warszawa"},
	}
	if got := params.Encode(); got != want.Encode() {
		t.Fatalf("query = %q, want %q", got, want.Encode())
	}
}

func TestBuildMissedParams(t *testing.T) {
	client := newTestClient()

	page := domain.PageRequest{Direction: domain.DirectionNext, AdvertID: int64Ptr(42), LastViewID: int64Ptr(77)}
	params := client.buildMissedParams(context.Background(), &domain.Filter{Agency: true}, page)

	if got := params.Get("id"); got != "77" {
		t.Fatalf("id = %q, want last view id 77", got)
	}
	if _, present := params["limit"]; present {
		t.Fatal("missed count query must not carry limit")
	}
	if _, present := params["direction"]; present {
		t.Fatal("missed count query must not carry direction")
	}
	if got := params.Get("is_business"); got != "false" {
		t.Fatal("missed count query must keep the filter parameters")
	}
}
