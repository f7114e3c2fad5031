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

// WorkoutPlanHandler holds the workout plan service dependency.
type WorkoutPlanHandler struct {
	planService service.WorkoutPlanService
}

// NewWorkoutPlanHandler creates a new WorkoutPlanHandler.
func NewWorkoutPlanHandler(planService service.WorkoutPlanService) *WorkoutPlanHandler {
	return &WorkoutPlanHandler{planService: planService}
}

// --- DTOs ---

// WorkoutPlanRequest is the client-writable plan payload. No trainer field:
// the trainer reference is assigned from the authenticated creator.
type WorkoutPlanRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	MemberID    *uint   `json:"memberId"`
}

func (r WorkoutPlanRequest) toInput() service.WorkoutPlanInput {
	return service.WorkoutPlanInput{
		Name:        r.Name,
		Description: r.Description,
		MemberID:    r.MemberID,
	}
}

// WorkoutPlanResponse is the DTO for returning plan details.
type WorkoutPlanResponse struct {
	ID          uint      `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	TrainerID   uint      `json:"trainerId"`
	MemberID    uint      `json:"memberId"`
	CreatedAt   time.Time `json:"createdAt"`
}

// MapWorkoutPlanToResponse converts a domain.WorkoutPlan to its DTO.
func MapWorkoutPlanToResponse(p *domain.WorkoutPlan) WorkoutPlanResponse {
	if p == nil {
		return WorkoutPlanResponse{}
	}
	return WorkoutPlanResponse{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		TrainerID:   p.TrainerID,
		MemberID:    p.MemberID,
		CreatedAt:   p.CreatedAt,
	}
}

// MapWorkoutPlansToResponse converts a slice of plans to DTOs.
func MapWorkoutPlansToResponse(ps []domain.WorkoutPlan) []WorkoutPlanResponse {
	responses := make([]WorkoutPlanResponse, len(ps))
	for i := range ps {
		responses[i] = MapWorkoutPlanToResponse(&ps[i])
	}
	return responses
}

// --- Handler Methods ---

func (h *WorkoutPlanHandler) ListWorkoutPlans(c *gin.Context) {
	actor, err := getActorFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusUnauthorized, "Unable to identify user from token.")
		return
	}

	ps, err := h.planService.List(c.Request.Context(), actor)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to retrieve workout plans.")
		return
	}
	c.JSON(http.StatusOK, MapWorkoutPlansToResponse(ps))
}

func (h *WorkoutPlanHandler) GetWorkoutPlan(c *gin.Context) {
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

	p, err := h.planService.Get(c.Request.Context(), actor, id)
	if err != nil {
		if errors.Is(err, service.ErrWorkoutPlanNotFound) {
			abortWithError(c, http.StatusNotFound, err.Error())
		} else {
			abortWithError(c, http.StatusInternalServerError, "Failed to retrieve workout plan.")
		}
		return
	}
	c.JSON(http.StatusOK, MapWorkoutPlanToResponse(p))
}

func (h *WorkoutPlanHandler) CreateWorkoutPlan(c *gin.Context) {
	actor, err := getActorFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusUnauthorized, "Unable to identify user from token.")
		return
	}

	var req WorkoutPlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, fmt.Sprintf("Validation error: %v", err))
		return
	}

	p, err := h.planService.Create(c.Request.Context(), actor, req.toInput())
	if err != nil {
		switch {
		case errors.Is(err, service.ErrWorkoutPlanCreator), errors.Is(err, service.ErrWorkoutPlanFields):
			abortWithError(c, http.StatusBadRequest, err.Error())
		default:
			abortWithError(c, http.StatusInternalServerError, "Failed to create workout plan.")
		}
		return
	}
	c.JSON(http.StatusCreated, MapWorkoutPlanToResponse(p))
}

func (h *WorkoutPlanHandler) UpdateWorkoutPlan(c *gin.Context) {
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

	var req WorkoutPlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, fmt.Sprintf("Validation error: %v", err))
		return
	}

	p, err := h.planService.Update(c.Request.Context(), actor, id, req.toInput())
	if err != nil {
		if errors.Is(err, service.ErrWorkoutPlanNotFound) {
			abortWithError(c, http.StatusNotFound, err.Error())
		} else {
			abortWithError(c, http.StatusInternalServerError, "Failed to update workout plan.")
		}
		return
	}
	c.JSON(http.StatusOK, MapWorkoutPlanToResponse(p))
}

func (h *WorkoutPlanHandler) DeleteWorkoutPlan(c *gin.Context) {
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

	if err := h.planService.Delete(c.Request.Context(), actor, id); err != nil {
		if errors.Is(err, service.ErrWorkoutPlanNotFound) {
			abortWithError(c, http.StatusNotFound, err.Error())
		} else {
			abortWithError(c, http.StatusInternalServerError, "Failed to delete workout plan.")
		}
		return
	}
	c.Status(http.StatusNoContent)
}
