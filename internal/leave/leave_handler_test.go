package leave_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"go-leave/internal/leave"
	leaveMock "go-leave/internal/leave/mock"
	requesterrors "go-leave/internal/request/errors"
	"go-leave/internal/shared/response"
	"go-leave/internal/validation"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func setupRouter(userID string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(func(c *gin.Context) {
		c.Set("employee_id", userID)
		c.Next()
	})
	return r
}

func TestLeaveHandler_Create(t *testing.T) {
	const userID = "7c1e0b8e-2f6a-4c43-9d51-3f0f1b0f7d11"
	body := `{"leave_type_id":"0f8fad5b-d9cb-469f-a165-70867728950e","start_date":"2026-03-09","end_date":"2026-03-13"}`

	t.Run("success", func(t *testing.T) {
		svc := leaveMock.NewMockService(gomock.NewController(t))
		svc.EXPECT().Submit(gomock.Any(), userID, gomock.Any()).
			Return(leave.LeaveResponse{ID: "l-1", RequestNumber: "LV-2026-000001", Status: "PENDING"}, nil)

		r := setupRouter(userID)
		r.POST("/leaves", leave.NewHandler(svc).Create)

		req := httptest.NewRequest(http.MethodPost, "/leaves", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusCreated, rec.Code)
		assert.Contains(t, rec.Body.String(), `"request_number":"LV-2026-000001"`)
	})

	t.Run("validation failures are listed", func(t *testing.T) {
		svc := leaveMock.NewMockService(gomock.NewController(t))
		errs := validation.Errors{}
		errs.Add(validation.FieldStartDate, validation.CodePastDate, "start date is in the past")
		errs.Add(validation.FieldStartDate, validation.CodeBlockedDates, "2026-03-10 (Founders Day) is blocked")
		svc.EXPECT().Submit(gomock.Any(), userID, gomock.Any()).Return(leave.LeaveResponse{}, errs.Err())

		r := setupRouter(userID)
		r.POST("/leaves", leave.NewHandler(svc).Create)

		req := httptest.NewRequest(http.MethodPost, "/leaves", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
		var env struct {
			Error struct {
				Details []validation.Error `json:"details"`
			} `json:"error"`
		}
		assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
		assert.Len(t, env.Error.Details, 2)
		assert.Equal(t, validation.CodeBlockedDates, env.Error.Details[1].Code)
	})

	t.Run("missing fields never reach the service", func(t *testing.T) {
		svc := leaveMock.NewMockService(gomock.NewController(t))
		r := setupRouter(userID)
		r.POST("/leaves", leave.NewHandler(svc).Create)

		req := httptest.NewRequest(http.MethodPost, "/leaves", strings.NewReader(`{"start_date":"2026-03-09"}`))
		req.Header.Set("Content-Type", "application/json")
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestLeaveHandler_Validate(t *testing.T) {
	const userID = "7c1e0b8e-2f6a-4c43-9d51-3f0f1b0f7d11"
	svc := leaveMock.NewMockService(gomock.NewController(t))
	svc.EXPECT().Validate(gomock.Any(), userID, gomock.Any()).Return(leave.ValidationResponse{
		Valid:  false,
		Errors: validation.Single(validation.FieldLeaveType, validation.CodeInsufficientBalance, "not enough days"),
	}, nil)

	r := setupRouter(userID)
	r.POST("/leaves/validate", leave.NewHandler(svc).Validate)

	body := `{"leave_type_id":"0f8fad5b-d9cb-469f-a165-70867728950e","start_date":"2026-03-09","end_date":"2026-03-13"}`
	req := httptest.NewRequest(http.MethodPost, "/leaves/validate", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"valid":false`)
	assert.Contains(t, rec.Body.String(), `"INSUFFICIENT_BALANCE"`)
}

func TestLeaveHandler_GetAll(t *testing.T) {
	svc := leaveMock.NewMockService(gomock.NewController(t))
	svc.EXPECT().List(gomock.Any(), "u-1", leave.ListLeavesQuery{Status: "PENDING", Page: 2, PageSize: 5}).
		Return([]leave.LeaveResponse{{ID: "l-6"}}, response.NewPaginationMeta(6, 2, 5), nil)

	r := setupRouter("u-1")
	r.GET("/leaves", leave.NewHandler(svc).GetAll)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/leaves?status=PENDING&page=2&page_size=5", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"total":6`)

	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/leaves?status=LOST", nil))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestLeaveHandler_Cancel(t *testing.T) {
	svc := leaveMock.NewMockService(gomock.NewController(t))
	svc.EXPECT().Cancel(gomock.Any(), "u-1", "l-1").Return(leave.LeaveResponse{ID: "l-1", Status: "CANCELLED"}, nil)
	svc.EXPECT().Cancel(gomock.Any(), "u-1", "l-2").Return(leave.LeaveResponse{}, requesterrors.ErrAlreadyStarted)

	r := setupRouter("u-1")
	r.POST("/leaves/:id/cancel", leave.NewHandler(svc).Cancel)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/leaves/l-1/cancel", nil))
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/leaves/l-2/cancel", nil))
	assert.Equal(t, http.StatusConflict, rec.Code)
}
