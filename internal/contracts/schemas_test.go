package contracts

import (
	"strings"
	"testing"
)

func TestGenerateKeyFromPath(t *testing.T) {
	tests := []struct {
		path string
		want string
	}{
		{"requests/save-filter.json", "SaveFilterRequest"},
		{"requests/read-adverts.json", "ReadAdvertsRequest"},
		{"requests/save-latest-view-advert-id.json", "SaveLatestViewAdvertIdRequest"},
		{"requests/register.json", "RegisterRequest"},
	}

	for _, tt := range tests {
		if got := generateKeyFromPath(tt.path); got != tt.want {
			t.Errorf("generateKeyFromPath(%q) = %q, want %q", tt.path, got, tt.want)
		}
	}
}

func TestValidateRequest(t *testing.T) {
	tests := []struct {
		name        string
		requestType string
		body        string
		wantErr     bool
	}{
		{
			name:        "valid filter",
			requestType: "SaveFilterRequest",
			body:        `{"CountryId": 1, "RegionId": 5, "Price": {"from": 1000, "to": 3000}}`,
		},
		{
			name:        "filter without region",
			requestType: "SaveFilterRequest",
			body:        `{"CountryId": 1}`,
			wantErr:     true,
		},
		{
			name:        "filter with wrong range type",
			requestType: "SaveFilterRequest",
			body:        `{"CountryId": 1, "RegionId": 5, "Price": {"from": "cheap"}}`,
			wantErr:     true,
		},
		{
			name:        "valid adverts page",
			requestType: "ReadAdvertsRequest",
			body:        `{"Direction": 1, "AdvertId": null}`,
		},
		{
			name:        "adverts direction out of enum",
			requestType: "ReadAdvertsRequest",
			body:        `{"Direction": 7}`,
			wantErr:     true,
		},
		{
			name:        "not json at all",
			requestType: "ReadAdvertsRequest",
			body:        `Direction: 1`,
			wantErr:     true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateRequest(tt.requestType, []byte(tt.body))
			if tt.wantErr && err == nil {
				t.Fatal("expected validation error")
			}
			if !tt.wantErr && err != nil {
				t.Fatalf("ValidateRequest returned error: %v", err)
			}
		})
	}
}

func TestValidateRequestUnknownSchema(t *testing.T) {
	err := ValidateRequest("NoSuchRequest", []byte(`{}`))
	if err == nil || !strings.Contains(err.Error(), "not found") {
		t.Fatalf("err = %v, want schema not found", err)
	}
}

// Каждая схема из каталога должна компилироваться и попадать в реестр.
func TestAllSchemasCompiled(t *testing.T) {
	wantKeys := []string{
		"RegisterRequest",
		"SaveDeviceInfoRequest",
		"SaveFirebaseTokenRequest",
		"SaveFilterRequest",
		"ReadAdvertsRequest",
		"SaveSettingsRequest",
		"SaveLatestViewAdvertIdRequest",
		"SaveIsNotificationEnabledRequest",
		"ReadFilesRequest",
		"SendMessageRequest",
		"SendPartnerLeadRequest",
		"ReportLogRequest",
		"PublicRegisterRequest",
	}

	for _, key := range wantKeys {
		if _, ok := compiledSchemas[key]; !ok {
			t.Errorf("schema %q missing from registry", key)
		}
	}
}
