package balance_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"go-leave/internal/balance"
	balanceMock "go-leave/internal/balance/mock"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestBalanceHandler_Mine(t *testing.T) {
	gin.SetMode(gin.TestMode)

	newRouter := func(svc balance.Service) *gin.Engine {
		r := gin.New()
		r.GET("/balances/me", func(c *gin.Context) {
			c.Set("employee_id", "emp-1")
			c.Next()
		}, balance.NewHandler(svc).Mine)
		return r
	}

	t.Run("defaults to the current year", func(t *testing.T) {
		svc := balanceMock.NewMockService(gomock.NewController(t))
		svc.EXPECT().ListForUser(gomock.Any(), "emp-1", time.Now().UTC().Year()).
			Return([]balance.BalanceResponse{{Year: time.Now().UTC().Year(), Available: "12.00"}}, nil)

		rec := httptest.NewRecorder()
		newRouter(svc).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/balances/me", nil))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"available":"12.00"`)
	})

	t.Run("explicit year", func(t *testing.T) {
		svc := balanceMock.NewMockService(gomock.NewController(t))
		svc.EXPECT().ListForUser(gomock.Any(), "emp-1", 2025).Return(nil, nil)

		rec := httptest.NewRecorder()
		newRouter(svc).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/balances/me?year=2025", nil))

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("invalid year", func(t *testing.T) {
		svc := balanceMock.NewMockService(gomock.NewController(t))

		rec := httptest.NewRecorder()
		newRouter(svc).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/balances/me?year=abc", nil))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), `"code":"INVALID_INPUT"`)
	})
}
