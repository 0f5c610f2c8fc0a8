package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	usecasecontract "github.com/voyago/voyago/internal/usecase/contract"
)

// RecommendationHandler serves personalized destination suggestions.
type RecommendationHandler struct {
	recUsecase usecasecontract.IRecommendationUseCase
}

func NewRecommendationHandler(recUsecase usecasecontract.IRecommendationUseCase) *RecommendationHandler {
	return &RecommendationHandler{recUsecase: recUsecase}
}

// Recommend samples destinations from the user's favorite categories,
// optionally narrowed by month or one field/value pair.
func (h *RecommendationHandler) Recommend(c *gin.Context) {
	userID, exists := c.Get("userID")
	if !exists {
		ErrorHandler(c, http.StatusUnauthorized, "User not authenticated")
		return
	}

	filter := usecasecontract.RecommendationFilter{
		Month: c.Query("month"),
		Field: c.Query("field"),
		Value: c.Query("value"),
	}
	destinations, err := h.recUsecase.Recommend(c.Request.Context(), userID.(string), filter)
	if err != nil {
		DomainErrorHandler(c, err)
		return
	}
	SuccessHandler(c, http.StatusOK, destinations)
}
