package api

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"alcyxob/gym-manager/internal/domain"
	"alcyxob/gym-manager/internal/service"

	"github.com/gin-gonic/gin"
)

// DietPlanHandler holds the diet plan service dependency.
type DietPlanHandler struct {
	dietService service.DietPlanService
}

// NewDietPlanHandler creates a new DietPlanHandler.
func NewDietPlanHandler(dietService service.DietPlanService) *DietPlanHandler {
	return &DietPlanHandler{dietService: dietService}
}

// --- DTOs ---

// DietPlanRequest is the client-writable diet plan payload. No trainer
// field: the trainer reference is assigned from the authenticated creator.
type DietPlanRequest struct {
	MemberID *uint `json:"memberId"`
	Calories *uint `json:"calories"`
	Protein  *uint `json:"protein"`
	Carbs    *uint `json:"carbs"`
	Fats     *uint `json:"fats"`
}

func (r DietPlanRequest) toInput() service.DietPlanInput {
	return service.DietPlanInput{
		MemberID: r.MemberID,
		Calories: r.Calories,
		Protein:  r.Protein,
		Carbs:    r.Carbs,
		Fats:     r.Fats,
	}
}

// DietPlanResponse is the DTO for returning diet plan details.
type DietPlanResponse struct {
	ID        uint      `json:"id"`
	TrainerID uint      `json:"trainerId"`
	MemberID  uint      `json:"memberId"`
	Calories  uint      `json:"calories"`
	Protein   uint      `json:"protein"`
	Carbs     uint      `json:"carbs"`
	Fats      uint      `json:"fats"`
	CreatedAt time.Time `json:"createdAt"`
}

// MapDietPlanToResponse converts a domain.DietPlan to its DTO.
func MapDietPlanToResponse(p *domain.DietPlan) DietPlanResponse {
	if p == nil {
		return DietPlanResponse{}
	}
	return DietPlanResponse{
		ID:        p.ID,
		TrainerID: p.TrainerID,
		MemberID:  p.MemberID,
		Calories:  p.Calories,
		Protein:   p.Protein,
		Carbs:     p.Carbs,
		Fats:      p.Fats,
		CreatedAt: p.CreatedAt,
	}
}

// MapDietPlansToResponse converts a slice of diet plans to DTOs.
func MapDietPlansToResponse(ps []domain.DietPlan) []DietPlanResponse {
	responses := make([]DietPlanResponse, len(ps))
	for i := range ps {
		responses[i] = MapDietPlanToResponse(&ps[i])
	}
	return responses
}

// --- Handler Methods ---

func (h *DietPlanHandler) ListDietPlans(c *gin.Context) {
	actor, err := getActorFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusUnauthorized, "Unable to identify user from token.")
		return
	}

	ps, err := h.dietService.List(c.Request.Context(), actor)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to retrieve diet plans.")
		return
	}
	c.JSON(http.StatusOK, MapDietPlansToResponse(ps))
}

func (h *DietPlanHandler) GetDietPlan(c *gin.Context) {
	actor, err := getActorFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusUnauthorized, "Unable to identify user from token.")
		return
	}
	id, err := parseIDParam(c)
	if err != nil {
		abortWithError(c, http.StatusBadRequest, err.Error())
		return
	}

	p, err := h.dietService.Get(c.Request.Context(), actor, id)
	if err != nil {
		if errors.Is(err, service.ErrDietPlanNotFound) {
			abortWithError(c, http.StatusNotFound, err.Error())
		} else {
			abortWithError(c, http.StatusInternalServerError, "Failed to retrieve diet plan.")
		}
		return
	}
	c.JSON(http.StatusOK, MapDietPlanToResponse(p))
}

func (h *DietPlanHandler) CreateDietPlan(c *gin.Context) {
	actor, err := getActorFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusUnauthorized, "Unable to identify user from token.")
		return
	}

	var req DietPlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, fmt.Sprintf("Validation error: %v", err))
		return
	}

	p, err := h.dietService.Create(c.Request.Context(), actor, req.toInput())
	if err != nil {
		switch {
		case errors.Is(err, service.ErrDietPlanCreator), errors.Is(err, service.ErrDietPlanFields):
			abortWithError(c, http.StatusBadRequest, err.Error())
		default:
			abortWithError(c, http.StatusInternalServerError, "Failed to create diet plan.")
		}
		return
	}
	c.JSON(http.StatusCreated, MapDietPlanToResponse(p))
}

func (h *DietPlanHandler) UpdateDietPlan(c *gin.Context) {
	actor, err := getActorFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusUnauthorized, "Unable to identify user from token.")
		return
	}
	id, err := parseIDParam(c)
	if err != nil {
		abortWithError(c, http.StatusBadRequest, err.Error())
		return
	}

	var req DietPlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, fmt.Sprintf("Validation error: %v", err))
		return
	}

	p, err := h.dietService.Update(c.Request.Context(), actor, id, req.toInput())
	if err != nil {
		if errors.Is(err, service.ErrDietPlanNotFound) {
			abortWithError(c, http.StatusNotFound, err.Error())
		} else {
			abortWithError(c, http.StatusInternalServerError, "Failed to update diet plan.")
		}
		return
	}
	c.JSON(http.StatusOK, MapDietPlanToResponse(p))
}

func (h *DietPlanHandler) DeleteDietPlan(c *gin.Context) {
	actor, err := getActorFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusUnauthorized, "Unable to identify user from token.")
		return
	}
	id, err := parseIDParam(c)
	if err != nil {
		abortWithError(c, http.StatusBadRequest, err.Error())
		return
	}

	if err := h.dietService.Delete(c.Request.Context(), actor, id); err != nil {
		if errors.Is(err, service.ErrDietPlanNotFound) {
			abortWithError(c, http.StatusNotFound, err.Error())
		} else {
			abortWithError(c, http.StatusInternalServerError, "Failed to delete diet plan.")
		}
		return
	}
	c.Status(http.StatusNoContent)
}
