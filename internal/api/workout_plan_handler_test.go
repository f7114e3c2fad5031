package api

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"alcyxob/gym-manager/internal/authz"
	"alcyxob/gym-manager/internal/domain"
	"alcyxob/gym-manager/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubPlanService returns canned results so handler error mapping can be
// exercised without a database.
type stubPlanService struct {
	createErr error
}

func (s *stubPlanService) List(context.Context, authz.Actor) ([]domain.WorkoutPlan, error) {
	return nil, nil
}
func (s *stubPlanService) Get(context.Context, authz.Actor, uint) (*domain.WorkoutPlan, error) {
	return nil, service.ErrWorkoutPlanNotFound
}
func (s *stubPlanService) Create(context.Context, authz.Actor, service.WorkoutPlanInput) (*domain.WorkoutPlan, error) {
	if s.createErr != nil {
		return nil, s.createErr
	}
	return &domain.WorkoutPlan{Name: "Base"}, nil
}
func (s *stubPlanService) Update(context.Context, authz.Actor, uint, service.WorkoutPlanInput) (*domain.WorkoutPlan, error) {
	return nil, service.ErrWorkoutPlanNotFound
}
func (s *stubPlanService) Delete(context.Context, authz.Actor, uint) error {
	return service.ErrWorkoutPlanNotFound
}

func createPlanWith(t *testing.T, svc service.WorkoutPlanService) *httptest.ResponseRecorder {
	t.Helper()
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/workout-plans/",
		strings.NewReader(`{"name":"Base","memberId":1}`))
	c.Request.Header.Set("Content-Type", "application/json")
	c.Set(ContextUserIDKey, uint(1))
	c.Set(ContextUserRoleKey, domain.RoleTrainer)

	NewWorkoutPlanHandler(svc).CreateWorkoutPlan(c)
	return w
}

func TestCreateWorkoutPlanStatusMapping(t *testing.T) {
	// Validation failures stay 400 with the service message.
	w := createPlanWith(t, &stubPlanService{createErr: service.ErrWorkoutPlanCreator})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Only trainer or admin can create workout plans")

	w = createPlanWith(t, &stubPlanService{createErr: service.ErrWorkoutPlanFields})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// Anything unexpected, storage failures included, is a server error
	// and the internal message is not leaked.
	w = createPlanWith(t, &stubPlanService{createErr: errors.New("disk is full")})
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.NotContains(t, w.Body.String(), "disk is full")

	w = createPlanWith(t, &stubPlanService{})
	require.Equal(t, http.StatusCreated, w.Code)
}
