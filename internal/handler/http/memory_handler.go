package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/voyago/voyago/internal/domain/entity"
	"github.com/voyago/voyago/internal/handler/http/dto"
	usecasecontract "github.com/voyago/voyago/internal/usecase/contract"
)

// MemoryHandler serves the trip journal endpoints, always scoped to the
// authenticated user.
type MemoryHandler struct {
	memoryUsecase usecasecontract.IMemoryUseCase
}

func NewMemoryHandler(memoryUsecase usecasecontract.IMemoryUseCase) *MemoryHandler {
	return &MemoryHandler{memoryUsecase: memoryUsecase}
}

func currentUserID(c *gin.Context) (string, bool) {
	userID, exists := c.Get("userID")
	if !exists {
		ErrorHandler(c, http.StatusUnauthorized, "User not authenticated")
		return "", false
	}
	return userID.(string), true
}

// Create adds a new memory for the authenticated user.
func (h *MemoryHandler) Create(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req dto.MemoryRequest
	if err := BindAndValidate(c, &req); err != nil {
		return
	}

	memory := &entity.Memory{
		Title:       req.Title,
		Description: req.Description,
		Location:    req.Location,
		Date:        req.Date,
		Travelers:   req.Travelers,
		Images:      req.Images,
		Videos:      req.Videos,
		Tags:        req.Tags,
		Type:        entity.MemoryType(req.Type),
		Color:       req.Color,
		TripID:      req.TripID,
		TripName:    req.TripName,
		Mood:        entity.Mood(req.Mood),
		Privacy:     entity.Privacy(req.Privacy),
	}
	created, err := h.memoryUsecase.Create(c.Request.Context(), userID, memory)
	if err != nil {
		DomainErrorHandler(c, err)
		return
	}
	SuccessHandler(c, http.StatusCreated, created)
}

// List returns the user's memories newest first, optionally narrowed to one
// trip via the trip_id query parameter.
func (h *MemoryHandler) List(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	memories, err := h.memoryUsecase.List(c.Request.Context(), userID, c.Query("trip_id"))
	if err != nil {
		DomainErrorHandler(c, err)
		return
	}
	SuccessHandler(c, http.StatusOK, memories)
}

// GetByID returns one memory owned by the authenticated user.
func (h *MemoryHandler) GetByID(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	memory, err := h.memoryUsecase.GetByID(c.Request.Context(), userID, c.Param("id"))
	if err != nil {
		DomainErrorHandler(c, err)
		return
	}
	SuccessHandler(c, http.StatusOK, memory)
}

// Update applies the non-nil fields of the request to an owned memory.
func (h *MemoryHandler) Update(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req dto.UpdateMemoryRequest
	if err := BindAndValidate(c, &req); err != nil {
		return
	}

	updated, err := h.memoryUsecase.Update(c.Request.Context(), userID, c.Param("id"), updateMemoryRequestToMap(req))
	if err != nil {
		DomainErrorHandler(c, err)
		return
	}
	SuccessHandler(c, http.StatusOK, updated)
}

// Delete removes an owned memory.
func (h *MemoryHandler) Delete(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	if err := h.memoryUsecase.Delete(c.Request.Context(), userID, c.Param("id")); err != nil {
		DomainErrorHandler(c, err)
		return
	}
	MessageHandler(c, http.StatusOK, "Memory deleted successfully")
}

// ToggleLike flips the liked flag on an owned memory.
func (h *MemoryHandler) ToggleLike(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	updated, err := h.memoryUsecase.ToggleLike(c.Request.Context(), userID, c.Param("id"))
	if err != nil {
		DomainErrorHandler(c, err)
		return
	}
	SuccessHandler(c, http.StatusOK, updated)
}

// ToggleSave flips the saved flag on an owned memory.
func (h *MemoryHandler) ToggleSave(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	updated, err := h.memoryUsecase.ToggleSave(c.Request.Context(), userID, c.Param("id"))
	if err != nil {
		DomainErrorHandler(c, err)
		return
	}
	SuccessHandler(c, http.StatusOK, updated)
}

func updateMemoryRequestToMap(req dto.UpdateMemoryRequest) map[string]interface{} {
	updates := make(map[string]interface{})

	if req.Title != nil {
		updates["title"] = *req.Title
	}
	if req.Description != nil {
		updates["description"] = *req.Description
	}
	if req.Location != nil {
		updates["location"] = *req.Location
	}
	if req.Date != nil {
		updates["date"] = *req.Date
	}
	if req.Travelers != nil {
		updates["travelers"] = *req.Travelers
	}
	if req.Images != nil {
		updates["images"] = *req.Images
	}
	if req.Videos != nil {
		updates["videos"] = *req.Videos
	}
	if req.Tags != nil {
		updates["tags"] = *req.Tags
	}
	if req.Type != nil {
		updates["type"] = *req.Type
	}
	if req.Color != nil {
		updates["color"] = *req.Color
	}
	if req.TripID != nil {
		updates["trip_id"] = *req.TripID
	}
	if req.TripName != nil {
		updates["trip_name"] = *req.TripName
	}
	if req.Mood != nil {
		updates["mood"] = *req.Mood
	}
	if req.Privacy != nil {
		updates["privacy"] = *req.Privacy
	}

	return updates
}
