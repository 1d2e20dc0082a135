package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang-jwt/jwt/v4"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"tasktracker/internal/auth"
	apperrors "tasktracker/internal/errors"
	"tasktracker/internal/model"
)

// MockTaskService is a mock implementation of TaskService.
type MockTaskService struct {
	mock.Mock
}

func (m *MockTaskService) List(ctx context.Context, userID int64) ([]model.Task, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Task), args.Error(1)
}

func (m *MockTaskService) Get(ctx context.Context, id, userID int64) (*model.Task, error) {
	args := m.Called(ctx, id, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Task), args.Error(1)
}

func (m *MockTaskService) Create(ctx context.Context, userID int64, in model.TaskInput) (*model.Task, error) {
	args := m.Called(ctx, userID, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Task), args.Error(1)
}

func (m *MockTaskService) Update(ctx context.Context, id, userID int64, in model.TaskInput) (*model.Task, error) {
	args := m.Called(ctx, id, userID, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Task), args.Error(1)
}

func (m *MockTaskService) Delete(ctx context.Context, id, userID int64) (*model.Task, error) {
	args := m.Called(ctx, id, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Task), args.Error(1)
}

// newAuthedContext builds a context as the auth middleware leaves it.
func newAuthedContext(method, path, id string, userID int64) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(method, path, nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if id != "" {
		c.SetParamNames("id")
		c.SetParamValues(id)
	}
	c.Set("claims", &auth.Claims{UserID: userID, Email: "ada@example.com", RegisteredClaims: jwt.RegisteredClaims{ID: "jti"}})
	return c, rec
}

func TestTaskHandler_Get(t *testing.T) {
	svc := new(MockTaskService)
	svc.On("Get", mock.Anything, int64(3), int64(7)).Return(&model.Task{ID: 3, UserID: 7, Title: "Mine"}, nil)

	c, rec := newAuthedContext(http.MethodGet, "/api/tasks/3", "3", 7)
	require.NoError(t, NewTaskHandler(svc).Get(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	var task model.Task
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &task))
	assert.Equal(t, "Mine", task.Title)
	svc.AssertExpectations(t)
}

func TestTaskHandler_InvalidID(t *testing.T) {
	for _, id := range []string{"abc", "0", "-4", "99999999999999999999"} {
		t.Run(id, func(t *testing.T) {
			svc := new(MockTaskService)
			c, _ := newAuthedContext(http.MethodDelete, "/api/tasks/"+id, id, 7)

			err := NewTaskHandler(svc).Delete(c)

			assert.ErrorIs(t, err, apperrors.ErrTaskNotFound)
			svc.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything, mock.Anything)
		})
	}
}

func TestTaskHandler_ListNoneFound(t *testing.T) {
	svc := new(MockTaskService)
	svc.On("List", mock.Anything, int64(7)).Return(nil, apperrors.ErrNoTasksFound)

	c, _ := newAuthedContext(http.MethodGet, "/api/tasks", "", 7)
	err := NewTaskHandler(svc).List(c)

	assert.ErrorIs(t, err, apperrors.ErrNoTasksFound)
}

func TestTaskHandler_CreateWithoutPayload(t *testing.T) {
	svc := new(MockTaskService)
	c, _ := newAuthedContext(http.MethodPost, "/api/tasks", "", 7)

	err := NewTaskHandler(svc).Create(c)

	assert.ErrorIs(t, err, apperrors.ErrInvalidBody)
	svc.AssertNotCalled(t, "Create", mock.Anything, mock.Anything, mock.Anything)
}
