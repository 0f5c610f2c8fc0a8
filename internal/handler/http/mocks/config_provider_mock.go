package mocks

import (
	"time"

	usecasecontract "github.com/voyago/voyago/internal/usecase/contract"
)

// MockConfigProvider is a fixed-value configuration for handler tests.
type MockConfigProvider struct {
	AppBaseURL    string
	FrontendURL   string
	AccessExpiry  time.Duration
	RefreshExpiry time.Duration
	CookieSecure  bool
	GeoServiceURL string
	CORSOrigins   []string
}

var _ usecasecontract.IConfigProvider = (*MockConfigProvider)(nil)

func NewMockConfigProvider() *MockConfigProvider {
	return &MockConfigProvider{
		AppBaseURL:    "http://localhost:8080",
		FrontendURL:   "http://localhost:5173",
		AccessExpiry:  15 * time.Minute,
		RefreshExpiry: 168 * time.Hour,
		CORSOrigins:   []string{"http://localhost:5173"},
	}
}

func (m *MockConfigProvider) GetAppBaseURL() string                { return m.AppBaseURL }
func (m *MockConfigProvider) GetFrontendURL() string               { return m.FrontendURL }
func (m *MockConfigProvider) GetAccessTokenExpiry() time.Duration  { return m.AccessExpiry }
func (m *MockConfigProvider) GetRefreshTokenExpiry() time.Duration { return m.RefreshExpiry }
func (m *MockConfigProvider) GetCookieSecure() bool                { return m.CookieSecure }
func (m *MockConfigProvider) GetGeoServiceURL() string             { return m.GeoServiceURL }
func (m *MockConfigProvider) GetCORSOrigins() []string             { return m.CORSOrigins }
