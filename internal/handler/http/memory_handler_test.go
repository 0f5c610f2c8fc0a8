package http_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	handler "github.com/voyago/voyago/internal/handler/http"
	dto "github.com/voyago/voyago/internal/handler/http/dto"
	mocks "github.com/voyago/voyago/internal/handler/http/mocks"
)

func setupMemoryRouter(h *handler.MemoryHandler, userID string) *gin.Engine {
	r := gin.New()
	r.Use(func(c *gin.Context) {
		c.Set("userID", userID)
		c.Next()
	})
	r.POST("/memories", h.Create)
	r.GET("/memories", h.List)
	r.GET("/memories/:id", h.GetByID)
	r.DELETE("/memories/:id", h.Delete)
	r.PATCH("/memories/:id/like", h.ToggleLike)
	r.PATCH("/memories/:id/save", h.ToggleSave)
	return r
}

func TestCreateMemory(t *testing.T) {
	mockUsecase := mocks.NewMockMemoryUsecase()
	h := handler.NewMemoryHandler(mockUsecase)
	r := setupMemoryRouter(h, "mock-user-id")

	payload := dto.MemoryRequest{
		Title: "Lake Tana Monasteries",
		Mood:  "peaceful",
	}
	body, _ := json.Marshal(payload)
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/memories", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), "Lake Tana Monasteries")
	assert.Contains(t, w.Body.String(), "mock-user-id")
}

func TestGetMemory_OtherUserForbidden(t *testing.T) {
	mockUsecase := mocks.NewMockMemoryUsecase()
	mockUsecase.OwnerID = "owner-id"
	h := handler.NewMemoryHandler(mockUsecase)
	r := setupMemoryRouter(h, "intruder-id")

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/memories/mock-memory-id", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Contains(t, w.Body.String(), "another user")
}

func TestDeleteMemory_OtherUserForbidden(t *testing.T) {
	mockUsecase := mocks.NewMockMemoryUsecase()
	mockUsecase.OwnerID = "owner-id"
	h := handler.NewMemoryHandler(mockUsecase)
	r := setupMemoryRouter(h, "intruder-id")

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("DELETE", "/memories/mock-memory-id", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestToggleLike(t *testing.T) {
	mockUsecase := mocks.NewMockMemoryUsecase()
	h := handler.NewMemoryHandler(mockUsecase)
	r := setupMemoryRouter(h, "mock-user-id")

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("PATCH", "/memories/mock-memory-id/like", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"is_liked":true`)
}

func TestListMemories(t *testing.T) {
	mockUsecase := mocks.NewMockMemoryUsecase()
	h := handler.NewMemoryHandler(mockUsecase)
	r := setupMemoryRouter(h, "mock-user-id")

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/memories?trip_id=trip-1", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Sunset at the Rift Valley")
}
