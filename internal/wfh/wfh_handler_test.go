package wfh_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"go-leave/internal/validation"
	"go-leave/internal/wfh"
	wfhMock "go-leave/internal/wfh/mock"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestWFHHandler_Create(t *testing.T) {
	gin.SetMode(gin.TestMode)
	svc := wfhMock.NewMockService(gomock.NewController(t))

	r := gin.New()
	r.Use(func(c *gin.Context) { c.Set("employee_id", "u-1") })
	r.POST("/wfh", wfh.NewHandler(svc).Create)

	svc.EXPECT().Submit(gomock.Any(), "u-1", wfh.CreateWFHRequest{StartDate: "2026-03-09", EndDate: "2026-03-09", Location: "Home"}).
		Return(wfh.WFHResponse{ID: "w-1", Status: "PENDING"}, nil)

	req := httptest.NewRequest(http.MethodPost, "/wfh", strings.NewReader(`{"start_date":"2026-03-09","end_date":"2026-03-09","location":"Home"}`))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusCreated, rec.Code)

	svc.EXPECT().Submit(gomock.Any(), "u-1", gomock.Any()).
		Return(wfh.WFHResponse{}, validation.Single(validation.FieldLocation, validation.CodeLocationTooShort, "too short").Err())

	req = httptest.NewRequest(http.MethodPost, "/wfh", strings.NewReader(`{"start_date":"2026-03-09","end_date":"2026-03-09","location":"H"}`))
	req.Header.Set("Content-Type", "application/json")
	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Contains(t, rec.Body.String(), `"LOCATION_TOO_SHORT"`)
}

func TestWFHHandler_GetByID(t *testing.T) {
	gin.SetMode(gin.TestMode)
	svc := wfhMock.NewMockService(gomock.NewController(t))
	svc.EXPECT().GetByID(gomock.Any(), "u-1", "w-1").Return(wfh.WFHResponse{ID: "w-1", Location: "Home"}, nil)

	r := gin.New()
	r.Use(func(c *gin.Context) { c.Set("employee_id", "u-1") })
	r.GET("/wfh/:id", wfh.NewHandler(svc).GetByID)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/wfh/w-1", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"location":"Home"`)
}
