package http

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/voyago/voyago/internal/domain/entity"
	"github.com/voyago/voyago/internal/handler/http/dto"
	usecasecontract "github.com/voyago/voyago/internal/usecase/contract"
)

// TripHandler serves the domestic and foreign trip endpoints. The :kind
// path segment selects the collection.
type TripHandler struct {
	tripUsecase usecasecontract.ITripUseCase
}

func NewTripHandler(tripUsecase usecasecontract.ITripUseCase) *TripHandler {
	return &TripHandler{tripUsecase: tripUsecase}
}

func tripFromRequest(req dto.TripRequest) *entity.Trip {
	return &entity.Trip{
		ID:            req.ID,
		Name:          req.Name,
		Location:      req.Location,
		Days:          req.Days,
		Budget:        req.Budget,
		Rating:        req.Rating,
		Image:         req.Image,
		Health:        entity.HealthTolerance(req.Health),
		Age:           req.Age,
		BestSeason:    req.BestSeason,
		Transport:     req.Transport,
		ActivityLevel: entity.ActivityLevel(req.ActivityLevel),
		SafetyRating:  req.SafetyRating,
	}
}

// tripFilterRequest carries the optional search constraints. Set fields
// combine with OR semantics.
type tripFilterRequest struct {
	Budget *float64 `json:"budget"`
	Health *string  `json:"health"`
	Age    *int     `json:"age"`
	Days   *int     `json:"days"`
}

// tripFilterFromQuery reads the optional budget/health/age/days constraints
// from query parameters. Absent or unparseable values are left unset.
func tripFilterFromQuery(c *gin.Context) entity.TripFilter {
	var filter entity.TripFilter
	if s := c.Query("budget"); s != "" {
		if budget, err := strconv.ParseFloat(s, 64); err == nil {
			filter.Budget = &budget
		}
	}
	if s := c.Query("health"); s != "" {
		health := entity.HealthTolerance(s)
		filter.Health = &health
	}
	if s := c.Query("age"); s != "" {
		if age, err := strconv.Atoi(s); err == nil {
			filter.Age = &age
		}
	}
	if s := c.Query("days"); s != "" {
		if days, err := strconv.Atoi(s); err == nil {
			filter.Days = &days
		}
	}
	return filter
}

// List returns trips of one kind, narrowed by any query constraints.
func (h *TripHandler) List(c *gin.Context) {
	trips, err := h.tripUsecase.Find(c.Request.Context(), c.Param("kind"), tripFilterFromQuery(c))
	if err != nil {
		DomainErrorHandler(c, err)
		return
	}
	SuccessHandler(c, http.StatusOK, trips)
}

// Search returns trips of one kind matching any of the posted constraints.
func (h *TripHandler) Search(c *gin.Context) {
	var req tripFilterRequest
	if err := BindAndValidate(c, &req); err != nil {
		return
	}

	filter := entity.TripFilter{
		Budget: req.Budget,
		Age:    req.Age,
		Days:   req.Days,
	}
	if req.Health != nil {
		health := entity.HealthTolerance(*req.Health)
		filter.Health = &health
	}

	trips, err := h.tripUsecase.Find(c.Request.Context(), c.Param("kind"), filter)
	if err != nil {
		DomainErrorHandler(c, err)
		return
	}
	SuccessHandler(c, http.StatusOK, trips)
}

// GetByID returns one trip.
func (h *TripHandler) GetByID(c *gin.Context) {
	trip, err := h.tripUsecase.GetByID(c.Request.Context(), c.Param("kind"), c.Param("id"))
	if err != nil {
		DomainErrorHandler(c, err)
		return
	}
	SuccessHandler(c, http.StatusOK, trip)
}

// Create inserts a trip into the collection named by :kind.
func (h *TripHandler) Create(c *gin.Context) {
	var req dto.TripRequest
	if err := BindAndValidate(c, &req); err != nil {
		return
	}

	created, err := h.tripUsecase.Create(c.Request.Context(), c.Param("kind"), tripFromRequest(req))
	if err != nil {
		DomainErrorHandler(c, err)
		return
	}
	SuccessHandler(c, http.StatusCreated, created)
}

// Update replaces a trip's fields.
func (h *TripHandler) Update(c *gin.Context) {
	var req dto.TripRequest
	if err := BindAndValidate(c, &req); err != nil {
		return
	}

	updated, err := h.tripUsecase.Update(c.Request.Context(), c.Param("kind"), c.Param("id"), tripFromRequest(req))
	if err != nil {
		DomainErrorHandler(c, err)
		return
	}
	SuccessHandler(c, http.StatusOK, updated)
}

// Delete removes a trip.
func (h *TripHandler) Delete(c *gin.Context) {
	if err := h.tripUsecase.Delete(c.Request.Context(), c.Param("kind"), c.Param("id")); err != nil {
		DomainErrorHandler(c, err)
		return
	}
	MessageHandler(c, http.StatusOK, "Trip deleted successfully")
}
