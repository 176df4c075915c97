package reconciliation_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"go-leave/internal/reconciliation"
	reconciliationerrors "go-leave/internal/reconciliation/errors"
	reconciliationMock "go-leave/internal/reconciliation/mock"
	"go-leave/internal/shared/contextutil"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestReconciliationHandler_Run(t *testing.T) {
	gin.SetMode(gin.TestMode)
	svc := reconciliationMock.NewMockService(gomock.NewController(t))

	r := gin.New()
	r.Use(func(c *gin.Context) { c.Set("employee_id", "admin-1") })
	r.POST("/admin/reconciliation/run", reconciliation.NewHandler(svc).Run)

	svc.EXPECT().TryRun(gomock.Any()).DoAndReturn(func(ctx context.Context) (reconciliation.Result, error) {
		assert.Equal(t, "admin-1", contextutil.GetUserID(ctx))
		return reconciliation.Result{OrphanApprovals: 2, Errors: []string{}}, nil
	})
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/admin/reconciliation/run", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"orphan_approvals":2`)

	svc.EXPECT().TryRun(gomock.Any()).Return(reconciliation.Result{}, reconciliationerrors.ErrAlreadyRunning)
	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/admin/reconciliation/run", nil))
	assert.Equal(t, http.StatusConflict, rec.Code)
}
