package api

import (
	"errors"
	"net/http"
	"time"

	"alcyxob/gym-manager/internal/domain"
	"alcyxob/gym-manager/internal/service"

	"github.com/gin-gonic/gin"
)

// AttendanceHandler holds the attendance service dependency.
type AttendanceHandler struct {
	attendanceService service.AttendanceService
}

// NewAttendanceHandler creates a new AttendanceHandler.
func NewAttendanceHandler(attendanceService service.AttendanceService) *AttendanceHandler {
	return &AttendanceHandler{attendanceService: attendanceService}
}

// --- DTOs ---

// AttendanceResponse is the DTO for returning a check-in. There is no
// request DTO: a check-in carries no client-writable fields at all.
type AttendanceResponse struct {
	ID       uint      `json:"id"`
	MemberID uint      `json:"memberId"`
	CheckIn  time.Time `json:"checkIn"`
}

// MapAttendanceToResponse converts a domain.Attendance to its DTO.
func MapAttendanceToResponse(a *domain.Attendance) AttendanceResponse {
	if a == nil {
		return AttendanceResponse{}
	}
	return AttendanceResponse{
		ID:       a.ID,
		MemberID: a.MemberID,
		CheckIn:  a.CheckIn,
	}
}

// MapAttendancesToResponse converts a slice of check-ins to DTOs.
func MapAttendancesToResponse(as []domain.Attendance) []AttendanceResponse {
	responses := make([]AttendanceResponse, len(as))
	for i := range as {
		responses[i] = MapAttendanceToResponse(&as[i])
	}
	return responses
}

// --- Handler Methods ---

// ListAttendance returns check-ins newest first, scoped to the caller.
func (h *AttendanceHandler) ListAttendance(c *gin.Context) {
	actor, err := getActorFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusUnauthorized, "Unable to identify user from token.")
		return
	}

	as, err := h.attendanceService.List(c.Request.Context(), actor)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to retrieve attendance.")
		return
	}
	c.JSON(http.StatusOK, MapAttendancesToResponse(as))
}

func (h *AttendanceHandler) GetAttendance(c *gin.Context) {
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

	a, err := h.attendanceService.Get(c.Request.Context(), actor, id)
	if err != nil {
		if errors.Is(err, service.ErrAttendanceNotFound) {
			abortWithError(c, http.StatusNotFound, err.Error())
		} else {
			abortWithError(c, http.StatusInternalServerError, "Failed to retrieve attendance.")
		}
		return
	}
	c.JSON(http.StatusOK, MapAttendanceToResponse(a))
}

// CreateAttendance marks today's check-in for the authenticated member.
// The second attempt on the same day fails with a validation error.
func (h *AttendanceHandler) CreateAttendance(c *gin.Context) {
	actor, err := getActorFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusUnauthorized, "Unable to identify user from token.")
		return
	}

	a, err := h.attendanceService.CheckIn(c.Request.Context(), actor)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrAttendanceCreator), errors.Is(err, service.ErrAlreadyMarked):
			abortWithError(c, http.StatusBadRequest, err.Error())
		default:
			abortWithError(c, http.StatusInternalServerError, "Failed to mark attendance.")
		}
		return
	}
	c.JSON(http.StatusCreated, MapAttendanceToResponse(a))
}

func (h *AttendanceHandler) DeleteAttendance(c *gin.Context) {
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

	if err := h.attendanceService.Delete(c.Request.Context(), actor, id); err != nil {
		switch {
		case errors.Is(err, service.ErrAttendanceNotFound):
			abortWithError(c, http.StatusNotFound, err.Error())
		case errors.Is(err, service.ErrLogMutationFrozen):
			abortWithError(c, http.StatusForbidden, err.Error())
		default:
			abortWithError(c, http.StatusInternalServerError, "Failed to delete attendance.")
		}
		return
	}
	c.Status(http.StatusNoContent)
}
