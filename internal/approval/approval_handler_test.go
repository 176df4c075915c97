package approval_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"go-leave/internal/approval"
	approvalerrors "go-leave/internal/approval/errors"
	approvalMock "go-leave/internal/approval/mock"
	"go-leave/internal/validation"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func approvalRouter(svc approval.Service) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := approval.NewHandler(svc)
	withUser := func(c *gin.Context) {
		c.Set("employee_id", "mgr-1")
		c.Next()
	}
	r.POST("/approvals/:kind/:id/approve", withUser, h.Approve)
	r.POST("/approvals/:kind/:id/reject", withUser, h.Reject)
	r.GET("/approvals/pending", withUser, h.Pending)
	r.GET("/approvals/:kind/:id", withUser, h.History)
	return r
}

func TestApprovalHandler_Approve(t *testing.T) {
	t.Run("success without body", func(t *testing.T) {
		svc := approvalMock.NewMockService(gomock.NewController(t))
		svc.EXPECT().Approve(gomock.Any(), "mgr-1", "leave", "req-1", "").
			Return(approval.DecisionResponse{RequestStatus: "APPROVED"}, nil)

		rec := httptest.NewRecorder()
		approvalRouter(svc).ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/approvals/leave/req-1/approve", nil))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"request_status":"APPROVED"`)
	})

	t.Run("self approval is forbidden with the reason", func(t *testing.T) {
		svc := approvalMock.NewMockService(gomock.NewController(t))
		svc.EXPECT().Approve(gomock.Any(), "mgr-1", "wfh", "req-2", "ok").
			Return(approval.DecisionResponse{}, approvalerrors.ErrNotPermitted.WithDetails(
				validation.Single(validation.FieldApprover, validation.CodeSelfApproval, "nope")))

		req := httptest.NewRequest(http.MethodPost, "/approvals/wfh/req-2/approve", strings.NewReader(`{"comment":"ok"}`))
		req.Header.Set("Content-Type", "application/json")
		rec := httptest.NewRecorder()
		approvalRouter(svc).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusForbidden, rec.Code)
		assert.Contains(t, rec.Body.String(), `"code":"SELF_APPROVAL_NOT_ALLOWED"`)
	})

	t.Run("lost race", func(t *testing.T) {
		svc := approvalMock.NewMockService(gomock.NewController(t))
		svc.EXPECT().Reject(gomock.Any(), "mgr-1", "leave", "req-3", "").
			Return(approval.DecisionResponse{}, approvalerrors.ErrNoLongerPending)

		rec := httptest.NewRecorder()
		approvalRouter(svc).ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/approvals/leave/req-3/reject", nil))

		assert.Equal(t, http.StatusConflict, rec.Code)
		assert.Contains(t, rec.Body.String(), approvalerrors.CodeNoLongerPending)
	})
}

func TestApprovalHandler_Queries(t *testing.T) {
	svc := approvalMock.NewMockService(gomock.NewController(t))
	svc.EXPECT().ListPending(gomock.Any(), "mgr-1").Return([]approval.PendingApprovalResponse{{RequestNumber: "LV-2026-000001"}}, nil)
	svc.EXPECT().History(gomock.Any(), "leave", "req-1").Return([]approval.ApprovalResponse{{Level: 1}}, nil)
	r := approvalRouter(svc)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/approvals/pending", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "LV-2026-000001")

	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/approvals/leave/req-1", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"level":1`)
}
