package http

import (
	"encoding/json"
	"net/http"
	"net/url"
	"time"

	"github.com/gin-gonic/gin"
	usecasecontract "github.com/voyago/voyago/internal/usecase/contract"
)

// LocationHandler proxies place lookups to the external geocoding service
// so the frontend never sees its URL or key.
type LocationHandler struct {
	config usecasecontract.IConfigProvider
	client *http.Client
}

func NewLocationHandler(cfg usecasecontract.IConfigProvider) *LocationHandler {
	return &LocationHandler{
		config: cfg,
		client: &http.Client{Timeout: 10 * time.Second},
	}
}

// Lookup forwards the place query to the geocoding service and relays its
// JSON response.
func (h *LocationHandler) Lookup(c *gin.Context) {
	place := c.Query("place")
	if place == "" {
		ErrorHandler(c, http.StatusBadRequest, "place query parameter is required")
		return
	}

	geoURL := h.config.GetGeoServiceURL()
	if geoURL == "" {
		ErrorHandler(c, http.StatusServiceUnavailable, "location service is not configured")
		return
	}

	req, err := http.NewRequestWithContext(c.Request.Context(), http.MethodGet, geoURL+"?q="+url.QueryEscape(place), nil)
	if err != nil {
		ErrorHandler(c, http.StatusInternalServerError, "failed to build location request")
		return
	}

	resp, err := h.client.Do(req)
	if err != nil {
		ErrorHandler(c, http.StatusBadGateway, "location service unreachable")
		return
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		ErrorHandler(c, http.StatusBadGateway, "location service returned an error")
		return
	}

	var payload interface{}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		ErrorHandler(c, http.StatusBadGateway, "failed to decode location response")
		return
	}
	SuccessHandler(c, http.StatusOK, payload)
}
