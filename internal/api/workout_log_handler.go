package api

import (
	"errors"
	"fmt"
	"net/http"

	"alcyxob/gym-manager/internal/domain"
	"alcyxob/gym-manager/internal/service"

	"github.com/gin-gonic/gin"
)

// WorkoutLogHandler holds the workout log service dependency.
type WorkoutLogHandler struct {
	logService service.WorkoutLogService
}

// NewWorkoutLogHandler creates a new WorkoutLogHandler.
func NewWorkoutLogHandler(logService service.WorkoutLogService) *WorkoutLogHandler {
	return &WorkoutLogHandler{logService: logService}
}

// --- DTOs ---

// WorkoutLogRequest is the client-writable log payload. No member field:
// the member reference is assigned from the authenticated creator, so an
// update payload cannot reassign a log to someone else.
type WorkoutLogRequest struct {
	WorkoutPlanID   *uint `json:"workoutPlanId"`
	DurationMinutes *uint `json:"durationMinutes"`
}

func (r WorkoutLogRequest) toInput() service.WorkoutLogInput {
	return service.WorkoutLogInput{
		WorkoutPlanID:   r.WorkoutPlanID,
		DurationMinutes: r.DurationMinutes,
	}
}

// WorkoutLogResponse is the DTO for returning log details.
type WorkoutLogResponse struct {
	ID              uint   `json:"id"`
	MemberID        uint   `json:"memberId"`
	WorkoutPlanID   uint   `json:"workoutPlanId"`
	Date            string `json:"date"`
	DurationMinutes uint   `json:"durationMinutes"`
}

// MapWorkoutLogToResponse converts a domain.WorkoutLog to its DTO.
func MapWorkoutLogToResponse(l *domain.WorkoutLog) WorkoutLogResponse {
	if l == nil {
		return WorkoutLogResponse{}
	}
	return WorkoutLogResponse{
		ID:              l.ID,
		MemberID:        l.MemberID,
		WorkoutPlanID:   l.WorkoutPlanID,
		Date:            l.Date.Format(dateLayout),
		DurationMinutes: l.DurationMinutes,
	}
}

// MapWorkoutLogsToResponse converts a slice of logs to DTOs.
func MapWorkoutLogsToResponse(ls []domain.WorkoutLog) []WorkoutLogResponse {
	responses := make([]WorkoutLogResponse, len(ls))
	for i := range ls {
		responses[i] = MapWorkoutLogToResponse(&ls[i])
	}
	return responses
}

// --- Handler Methods ---

func (h *WorkoutLogHandler) ListWorkoutLogs(c *gin.Context) {
	actor, err := getActorFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusUnauthorized, "Unable to identify user from token.")
		return
	}

	ls, err := h.logService.List(c.Request.Context(), actor)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to retrieve workout logs.")
		return
	}
	c.JSON(http.StatusOK, MapWorkoutLogsToResponse(ls))
}

func (h *WorkoutLogHandler) GetWorkoutLog(c *gin.Context) {
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

	l, err := h.logService.Get(c.Request.Context(), actor, id)
	if err != nil {
		if errors.Is(err, service.ErrWorkoutLogNotFound) {
			abortWithError(c, http.StatusNotFound, err.Error())
		} else {
			abortWithError(c, http.StatusInternalServerError, "Failed to retrieve workout log.")
		}
		return
	}
	c.JSON(http.StatusOK, MapWorkoutLogToResponse(l))
}

func (h *WorkoutLogHandler) CreateWorkoutLog(c *gin.Context) {
	actor, err := getActorFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusUnauthorized, "Unable to identify user from token.")
		return
	}

	var req WorkoutLogRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, fmt.Sprintf("Validation error: %v", err))
		return
	}

	l, err := h.logService.Create(c.Request.Context(), actor, req.toInput())
	if err != nil {
		switch {
		case errors.Is(err, service.ErrWorkoutLogCreator), errors.Is(err, service.ErrWorkoutLogFields):
			abortWithError(c, http.StatusBadRequest, err.Error())
		default:
			abortWithError(c, http.StatusInternalServerError, "Failed to create workout log.")
		}
		return
	}
	c.JSON(http.StatusCreated, MapWorkoutLogToResponse(l))
}

func (h *WorkoutLogHandler) UpdateWorkoutLog(c *gin.Context) {
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

	var req WorkoutLogRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, fmt.Sprintf("Validation error: %v", err))
		return
	}

	l, err := h.logService.Update(c.Request.Context(), actor, id, req.toInput())
	if err != nil {
		switch {
		case errors.Is(err, service.ErrWorkoutLogNotFound):
			abortWithError(c, http.StatusNotFound, err.Error())
		case errors.Is(err, service.ErrLogMutationFrozen):
			abortWithError(c, http.StatusForbidden, err.Error())
		default:
			abortWithError(c, http.StatusInternalServerError, "Failed to update workout log.")
		}
		return
	}
	c.JSON(http.StatusOK, MapWorkoutLogToResponse(l))
}

func (h *WorkoutLogHandler) DeleteWorkoutLog(c *gin.Context) {
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

	if err := h.logService.Delete(c.Request.Context(), actor, id); err != nil {
		switch {
		case errors.Is(err, service.ErrWorkoutLogNotFound):
			abortWithError(c, http.StatusNotFound, err.Error())
		case errors.Is(err, service.ErrLogMutationFrozen):
			abortWithError(c, http.StatusForbidden, err.Error())
		default:
			abortWithError(c, http.StatusInternalServerError, "Failed to delete workout log.")
		}
		return
	}
	c.Status(http.StatusNoContent)
}
