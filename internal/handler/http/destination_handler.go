package http

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/voyago/voyago/internal/domain/contract"
	"github.com/voyago/voyago/internal/domain/entity"
	"github.com/voyago/voyago/internal/handler/http/dto"
	usecasecontract "github.com/voyago/voyago/internal/usecase/contract"
)

// DestinationHandler serves the destination catalog endpoints.
type DestinationHandler struct {
	destUsecase usecasecontract.IDestinationUseCase
}

func NewDestinationHandler(destUsecase usecasecontract.IDestinationUseCase) *DestinationHandler {
	return &DestinationHandler{destUsecase: destUsecase}
}

func parseDestinationID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		ErrorHandler(c, http.StatusBadRequest, "destination id must be numeric")
		return 0, false
	}
	return id, true
}

func destinationFromRequest(req dto.DestinationRequest) *entity.Destination {
	return &entity.Destination{
		ID:                req.ID,
		Name:              req.Name,
		Country:           req.Country,
		Region:            req.Region,
		Type:              req.Type,
		Description:       req.Description,
		BestTimeToVisit:   req.BestTimeToVisit,
		AverageCostPerDay: req.AverageCostPerDay,
		Currency:          req.Currency,
		ImageURL:          req.ImageURL,
		VisaRequirements:  req.VisaRequirements,
		SafetyRating:      req.SafetyRating,
	}
}

// ListAll returns every destination across the five collections, each
// tagged with its collection of origin.
func (h *DestinationHandler) ListAll(c *gin.Context) {
	destinations, err := h.destUsecase.ListAll(c.Request.Context())
	if err != nil {
		DomainErrorHandler(c, err)
		return
	}
	SuccessHandler(c, http.StatusOK, destinations)
}

// ListByType returns one collection's destinations.
func (h *DestinationHandler) ListByType(c *gin.Context) {
	destinations, err := h.destUsecase.ListByType(c.Request.Context(), c.Param("type"))
	if err != nil {
		DomainErrorHandler(c, err)
		return
	}
	SuccessHandler(c, http.StatusOK, destinations)
}

// Search filters one collection by name, country and region substrings,
// case-insensitively.
func (h *DestinationHandler) Search(c *gin.Context) {
	q := contract.DestinationSearch{
		Name:    c.Query("name"),
		Country: c.Query("country"),
		Region:  c.Query("region"),
	}
	destinations, err := h.destUsecase.Search(c.Request.Context(), c.Param("type"), q)
	if err != nil {
		DomainErrorHandler(c, err)
		return
	}
	SuccessHandler(c, http.StatusOK, destinations)
}

// BestTime filters one collection by best-time-to-visit month.
func (h *DestinationHandler) BestTime(c *gin.Context) {
	destinations, err := h.destUsecase.SearchByMonth(c.Request.Context(), c.Param("type"), c.Query("month"))
	if err != nil {
		DomainErrorHandler(c, err)
		return
	}
	SuccessHandler(c, http.StatusOK, destinations)
}

// GetByID returns one destination from one collection.
func (h *DestinationHandler) GetByID(c *gin.Context) {
	id, ok := parseDestinationID(c)
	if !ok {
		return
	}
	destination, err := h.destUsecase.GetByID(c.Request.Context(), c.Param("type"), id)
	if err != nil {
		DomainErrorHandler(c, err)
		return
	}
	SuccessHandler(c, http.StatusOK, destination)
}

// Create inserts a destination into the collection named by the request's
// type field.
func (h *DestinationHandler) Create(c *gin.Context) {
	var req dto.DestinationRequest
	if err := BindAndValidate(c, &req); err != nil {
		return
	}

	created, err := h.destUsecase.Create(c.Request.Context(), req.Type, destinationFromRequest(req))
	if err != nil {
		DomainErrorHandler(c, err)
		return
	}
	SuccessHandler(c, http.StatusCreated, created)
}

// Update replaces a destination's mutable fields. The collection comes from
// the type query parameter or the request body.
func (h *DestinationHandler) Update(c *gin.Context) {
	id, ok := parseDestinationID(c)
	if !ok {
		return
	}

	var req dto.DestinationRequest
	if err := BindAndValidate(c, &req); err != nil {
		return
	}

	collectionType := c.Query("type")
	if collectionType == "" {
		collectionType = req.Type
	}

	updated, err := h.destUsecase.Update(c.Request.Context(), collectionType, id, destinationFromRequest(req))
	if err != nil {
		DomainErrorHandler(c, err)
		return
	}
	SuccessHandler(c, http.StatusOK, updated)
}

// Delete removes a destination by id. Without a type query parameter the
// five collections are scanned in fixed order.
func (h *DestinationHandler) Delete(c *gin.Context) {
	id, ok := parseDestinationID(c)
	if !ok {
		return
	}

	deletedFrom, err := h.destUsecase.Delete(c.Request.Context(), c.Query("type"), id)
	if err != nil {
		DomainErrorHandler(c, err)
		return
	}
	SuccessHandler(c, http.StatusOK, gin.H{
		"message":    "Destination deleted successfully",
		"collection": deletedFrom,
	})
}
