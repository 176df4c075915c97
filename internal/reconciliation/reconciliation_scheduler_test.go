package reconciliation_test

import (
	"context"
	"testing"
	"time"

	"go-leave/internal/reconciliation"
	reconciliationMock "go-leave/internal/reconciliation/mock"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

func TestNewScheduler_InvalidSchedule(t *testing.T) {
	svc := reconciliationMock.NewMockService(gomock.NewController(t))
	_, err := reconciliation.NewScheduler(svc, "every night", zap.NewNop())
	assert.Error(t, err)
}

func TestNewScheduler_RunsService(t *testing.T) {
	svc := reconciliationMock.NewMockService(gomock.NewController(t))
	ran := make(chan struct{}, 1)
	svc.EXPECT().Run(gomock.Any()).DoAndReturn(func(ctx context.Context) reconciliation.Result {
		_, hasDeadline := ctx.Deadline()
		assert.True(t, hasDeadline)
		select {
		case ran <- struct{}{}:
		default:
		}
		return reconciliation.Result{Errors: []string{"archive: timeout"}}
	}).MinTimes(1)

	c, err := reconciliation.NewScheduler(svc, "@every 1s", zap.NewNop())
	require.NoError(t, err)
	c.Start()
	defer func() { <-c.Stop().Done() }()

	select {
	case <-ran:
	case <-time.After(3 * time.Second):
		t.Fatal("scheduled run did not fire")
	}
}
