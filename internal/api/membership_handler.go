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

const dateLayout = "2006-01-02"

// MembershipHandler holds the membership service dependency.
type MembershipHandler struct {
	membershipService service.MembershipService
}

// NewMembershipHandler creates a new MembershipHandler.
func NewMembershipHandler(membershipService service.MembershipService) *MembershipHandler {
	return &MembershipHandler{membershipService: membershipService}
}

// --- DTOs ---

// MembershipRequest is the client-writable membership payload.
// Dates use the YYYY-MM-DD form.
type MembershipRequest struct {
	MemberID  *uint   `json:"memberId"`
	StartDate *string `json:"startDate"`
	EndDate   *string `json:"endDate"`
	Active    *bool   `json:"active"`
}

func (r MembershipRequest) toInput() (service.MembershipInput, error) {
	in := service.MembershipInput{MemberID: r.MemberID, Active: r.Active}
	if r.StartDate != nil {
		t, err := time.Parse(dateLayout, *r.StartDate)
		if err != nil {
			return in, fmt.Errorf("startDate must be YYYY-MM-DD")
		}
		in.StartDate = &t
	}
	if r.EndDate != nil {
		t, err := time.Parse(dateLayout, *r.EndDate)
		if err != nil {
			return in, fmt.Errorf("endDate must be YYYY-MM-DD")
		}
		in.EndDate = &t
	}
	return in, nil
}

// MembershipResponse is the DTO for returning membership details.
type MembershipResponse struct {
	ID        uint   `json:"id"`
	MemberID  uint   `json:"memberId"`
	StartDate string `json:"startDate"`
	EndDate   string `json:"endDate"`
	Active    bool   `json:"active"`
}

// MapMembershipToResponse converts a domain.Membership to its DTO.
func MapMembershipToResponse(m *domain.Membership) MembershipResponse {
	if m == nil {
		return MembershipResponse{}
	}
	return MembershipResponse{
		ID:        m.ID,
		MemberID:  m.MemberID,
		StartDate: m.StartDate.Format(dateLayout),
		EndDate:   m.EndDate.Format(dateLayout),
		Active:    m.Active,
	}
}

// MapMembershipsToResponse converts a slice of memberships to DTOs.
func MapMembershipsToResponse(ms []domain.Membership) []MembershipResponse {
	responses := make([]MembershipResponse, len(ms))
	for i := range ms {
		responses[i] = MapMembershipToResponse(&ms[i])
	}
	return responses
}

// --- Handler Methods ---

func (h *MembershipHandler) ListMemberships(c *gin.Context) {
	actor, err := getActorFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusUnauthorized, "Unable to identify user from token.")
		return
	}

	ms, err := h.membershipService.List(c.Request.Context(), actor)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to retrieve memberships.")
		return
	}
	c.JSON(http.StatusOK, MapMembershipsToResponse(ms))
}

func (h *MembershipHandler) GetMembership(c *gin.Context) {
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

	m, err := h.membershipService.Get(c.Request.Context(), actor, id)
	if err != nil {
		if errors.Is(err, service.ErrMembershipNotFound) {
			abortWithError(c, http.StatusNotFound, err.Error())
		} else {
			abortWithError(c, http.StatusInternalServerError, "Failed to retrieve membership.")
		}
		return
	}
	c.JSON(http.StatusOK, MapMembershipToResponse(m))
}

func (h *MembershipHandler) CreateMembership(c *gin.Context) {
	actor, err := getActorFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusUnauthorized, "Unable to identify user from token.")
		return
	}

	var req MembershipRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, fmt.Sprintf("Validation error: %v", err))
		return
	}
	in, err := req.toInput()
	if err != nil {
		abortWithError(c, http.StatusBadRequest, err.Error())
		return
	}

	m, err := h.membershipService.Create(c.Request.Context(), actor, in)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrMembershipFields), errors.Is(err, service.ErrMemberHasMembership):
			abortWithError(c, http.StatusBadRequest, err.Error())
		default:
			abortWithError(c, http.StatusInternalServerError, "Failed to create membership.")
		}
		return
	}
	c.JSON(http.StatusCreated, MapMembershipToResponse(m))
}

func (h *MembershipHandler) UpdateMembership(c *gin.Context) {
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

	var req MembershipRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, fmt.Sprintf("Validation error: %v", err))
		return
	}
	in, err := req.toInput()
	if err != nil {
		abortWithError(c, http.StatusBadRequest, err.Error())
		return
	}

	m, err := h.membershipService.Update(c.Request.Context(), actor, id, in)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrMembershipNotFound):
			abortWithError(c, http.StatusNotFound, err.Error())
		case errors.Is(err, service.ErrMemberHasMembership):
			abortWithError(c, http.StatusBadRequest, err.Error())
		default:
			abortWithError(c, http.StatusInternalServerError, "Failed to update membership.")
		}
		return
	}
	c.JSON(http.StatusOK, MapMembershipToResponse(m))
}

func (h *MembershipHandler) DeleteMembership(c *gin.Context) {
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

	if err := h.membershipService.Delete(c.Request.Context(), actor, id); err != nil {
		if errors.Is(err, service.ErrMembershipNotFound) {
			abortWithError(c, http.StatusNotFound, err.Error())
		} else {
			abortWithError(c, http.StatusInternalServerError, "Failed to delete membership.")
		}
		return
	}
	c.Status(http.StatusNoContent)
}
