package controllers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"maintenance-system/internal/dto"
	apperrors "maintenance-system/pkg/errors"
	"maintenance-system/pkg/types"
	"maintenance-system/pkg/validation"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type mockRequestService struct {
	mock.Mock
}

func (m *mockRequestService) GetRequests(ctx context.Context, filter types.Filter) ([]dto.RequestDTO, uint64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]dto.RequestDTO), args.Get(1).(uint64), args.Error(2)
}

func (m *mockRequestService) GetRequest(ctx context.Context, id uint64) (*dto.RequestDTO, error) {
	args := m.Called(ctx, id)
	res, _ := args.Get(0).(*dto.RequestDTO)
	return res, args.Error(1)
}

func (m *mockRequestService) NewRequestForm(ctx context.Context) (*dto.RequestFormDTO, error) {
	args := m.Called(ctx)
	res, _ := args.Get(0).(*dto.RequestFormDTO)
	return res, args.Error(1)
}

func (m *mockRequestService) GetRequestForm(ctx context.Context, id uint64) (*dto.RequestFormDTO, error) {
	args := m.Called(ctx, id)
	res, _ := args.Get(0).(*dto.RequestFormDTO)
	return res, args.Error(1)
}

func (m *mockRequestService) CreateRequest(ctx context.Context, form dto.RequestFormDTO) (*dto.RequestDTO, error) {
	args := m.Called(ctx, form)
	res, _ := args.Get(0).(*dto.RequestDTO)
	return res, args.Error(1)
}

func (m *mockRequestService) SaveRequest(ctx context.Context, id uint64, form dto.RequestFormDTO) (*dto.RequestDTO, error) {
	args := m.Called(ctx, id, form)
	res, _ := args.Get(0).(*dto.RequestDTO)
	return res, args.Error(1)
}

func (m *mockRequestService) PatchRequest(ctx context.Context, id uint64, payload dto.UpdateRequestDTO) (*dto.RequestDTO, error) {
	args := m.Called(ctx, id, payload)
	res, _ := args.Get(0).(*dto.RequestDTO)
	return res, args.Error(1)
}

func (m *mockRequestService) UpdateRequestStage(ctx context.Context, id uint64, stage string) (*dto.RequestDTO, error) {
	args := m.Called(ctx, id, stage)
	res, _ := args.Get(0).(*dto.RequestDTO)
	return res, args.Error(1)
}

func newRequestEcho(svc *mockRequestService) *echo.Echo {
	e := echo.New()
	e.Validator = validation.New()
	ctrl := NewRequestController(svc, zap.NewNop())

	g := e.Group("/requests")
	g.GET("", ctrl.GetRequests)
	g.POST("", ctrl.CreateRequest)
	g.GET("/:id", ctrl.GetRequest)
	g.PUT("/:id", ctrl.SaveRequest)
	g.PATCH("/:id", ctrl.PatchRequest)
	g.PATCH("/:id/stage", ctrl.UpdateStage)
	return e
}

type envelope struct {
	Status  bool            `json:"status"`
	Message string          `json:"message"`
	Body    json.RawMessage `json:"body"`
}

func do(t *testing.T, e *echo.Echo, method, target, body string) (*httptest.ResponseRecorder, envelope) {
	t.Helper()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	var env envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env), rec.Body.String())
	return rec, env
}

func TestRequestController_GetRequestsPaginated(t *testing.T) {
	svc := &mockRequestService{}
	svc.On("GetRequests", mock.Anything, mock.MatchedBy(func(f types.Filter) bool {
		return f.Search == "belt" && f.WithPagination && f.Limit == 1
	})).Return([]dto.RequestDTO{{ID: 3, Subject: "Belt"}}, uint64(2), nil)

	rec, env := do(t, newRequestEcho(svc), http.MethodGet, "/requests?search=belt&withPagination=true&limit=1", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, env.Status)

	var body struct {
		List       []dto.RequestDTO `json:"list"`
		Pagination types.Pagination `json:"pagination"`
	}
	require.NoError(t, json.Unmarshal(env.Body, &body))
	require.Len(t, body.List, 1)
	assert.Equal(t, "Belt", body.List[0].Subject)
	assert.Equal(t, 2, body.Pagination.TotalPages)
	svc.AssertExpectations(t)
}

func TestRequestController_GetRequestErrors(t *testing.T) {
	svc := &mockRequestService{}
	svc.On("GetRequest", mock.Anything, uint64(99)).Return(nil, apperrors.ErrNotFound)
	e := newRequestEcho(svc)

	rec, env := do(t, e, http.MethodGet, "/requests/abc", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "invalid id format", env.Message)

	rec, env = do(t, e, http.MethodGet, "/requests/99", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.False(t, env.Status)
	assert.Equal(t, apperrors.ErrNotFound.Error(), env.Message)
	svc.AssertExpectations(t)
}

func TestRequestController_CreateRequest(t *testing.T) {
	svc := &mockRequestService{}
	svc.On("CreateRequest", mock.Anything, mock.MatchedBy(func(f dto.RequestFormDTO) bool {
		return f.Subject == "Oil leak" && f.Priority == 2
	})).Return(&dto.RequestDTO{ID: 2, Subject: "Oil leak"}, nil)
	svc.On("CreateRequest", mock.Anything, mock.Anything).Return(nil, apperrors.ErrSubjectRequired)
	e := newRequestEcho(svc)

	rec, env := do(t, e, http.MethodPost, "/requests", `{"subject":"Oil leak","priority":2,"maintenanceFor":"Equipment"}`)
	assert.Equal(t, http.StatusCreated, rec.Code)
	var created dto.RequestDTO
	require.NoError(t, json.Unmarshal(env.Body, &created))
	assert.Equal(t, uint64(2), created.ID)

	rec, env = do(t, e, http.MethodPost, "/requests", `{"subject":""}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, apperrors.ErrSubjectRequired.Error(), env.Message)

	rec, _ = do(t, e, http.MethodPost, "/requests", `{"subject":"x","priority":7}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec, env = do(t, e, http.MethodPost, "/requests", `{"subject":`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "invalid request body", env.Message)
}

func TestRequestController_UpdateStage(t *testing.T) {
	svc := &mockRequestService{}
	svc.On("UpdateRequestStage", mock.Anything, uint64(1), "Repaired").
		Return(&dto.RequestDTO{ID: 1, Stage: "Repaired"}, nil)
	e := newRequestEcho(svc)

	rec, env := do(t, e, http.MethodPatch, "/requests/1/stage", `{"stage":"Repaired"}`)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "stage updated", env.Message)

	rec, env = do(t, e, http.MethodPatch, "/requests/1/stage", `{"stage":"Archived"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, env.Message, "request_stage")

	svc.AssertNumberOfCalls(t, "UpdateRequestStage", 1)
}

func TestRequestController_PatchRequest(t *testing.T) {
	svc := &mockRequestService{}
	svc.On("PatchRequest", mock.Anything, uint64(1), mock.MatchedBy(func(p dto.UpdateRequestDTO) bool {
		return p.Technician.Valid && p.Technician.String == "Marc Demo" && !p.Subject.Valid
	})).Return(&dto.RequestDTO{ID: 1, Technician: "Marc Demo"}, nil)
	e := newRequestEcho(svc)

	rec, _ := do(t, e, http.MethodPatch, "/requests/1", `{"technician":"Marc Demo"}`)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec, _ = do(t, e, http.MethodPatch, "/requests/1", `{"subject":"  "}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	svc.AssertNumberOfCalls(t, "PatchRequest", 1)
}
