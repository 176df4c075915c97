package rbac

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"go-leave/internal/domain"
	"go-leave/internal/shared/response"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

type stubService struct{}

func (s *stubService) LoadPolicy() error { return nil }

func (s *stubService) Enforce(req domain.EnforceRequest) (bool, error) {
	return req.Resource == ResourceLeave && req.Action == ActionRead, nil
}

func (s *stubService) PermissionsFor(employeeID string) (domain.MyPermissionsResponse, error) {
	return domain.MyPermissionsResponse{Role: "EMPLOYEE"}, nil
}

func TestHandler_Enforce(t *testing.T) {
	gin.SetMode(gin.TestMode)

	handler := NewHandler(&stubService{})
	router := gin.New()
	router.POST("/rbac/enforce", handler.Enforce)

	t.Run("success", func(t *testing.T) {
		body, _ := json.Marshal(domain.EnforceRequest{EmployeeID: "emp-1", Resource: ResourceLeave, Action: ActionRead})
		req := httptest.NewRequest(http.MethodPost, "/rbac/enforce", bytes.NewBuffer(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		var env struct {
			Data domain.EnforceResponse `json:"data"`
		}
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
		assert.True(t, env.Data.Allowed)
	})

	t.Run("negative missing fields", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/rbac/enforce", bytes.NewBufferString(`{"employee_id":"emp-1"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		var env response.ApiEnvelope
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
		assert.False(t, env.Ok)
	})
}
