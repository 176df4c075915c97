package employee_test

import (
	"context"
	"errors"
	"testing"

	"go-leave/internal/employee"
	employeeerrors "go-leave/internal/employee/errors"
	employeeMock "go-leave/internal/employee/mock"
	"go-leave/internal/messaging/kafka"
	kafkaMock "go-leave/internal/messaging/kafka/mock"
	counterMock "go-leave/internal/shared/counter/mock"
	"go-leave/internal/shared/testutil"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

type serviceDeps struct {
	sqlMock sqlmock.Sqlmock
	service employee.Service
	repo    *employeeMock.MockRepository
	counter *counterMock.MockRepository
	outbox  *kafkaMock.MockOutboxRepository
}

func setupServiceTest(t *testing.T) *serviceDeps {
	ctrl := gomock.NewController(t)

	db, sqlMock := testutil.NewGormMock(t)
	repo := employeeMock.NewMockRepository(ctrl)
	counterRepo := counterMock.NewMockRepository(ctrl)
	outboxRepo := kafkaMock.NewMockOutboxRepository(ctrl)
	hierarchy := employee.NewHierarchy(repo, 5)

	svc := employee.NewService(db, repo, hierarchy, counterRepo, outboxRepo)

	return &serviceDeps{
		sqlMock: sqlMock,
		service: svc,
		repo:    repo,
		counter: counterRepo,
		outbox:  outboxRepo,
	}
}

func strPtr(s string) *string { return &s }

func TestEmployeeService_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("success - auto generate employee number", func(t *testing.T) {
		deps := setupServiceTest(t)
		managerID := uuid.New()
		req := employee.CreateEmployeeRequest{
			FullName:  "Dana",
			Email:     "dana@example.com",
			Role:      employee.RoleEmployee,
			ManagerID: strPtr(managerID.String()),
		}

		testutil.ExpectTx(t, deps.sqlMock, true)
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().FindByID(gomock.Any(), managerID).
			Return(&employee.Employee{ID: managerID, IsActive: true}, nil)
		deps.counter.EXPECT().WithTx(gomock.Any()).Return(deps.counter)
		deps.counter.EXPECT().GetNextValue(gomock.Any(), "employee_number").Return(int64(123), nil)
		deps.repo.EXPECT().Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, e *employee.Employee) error {
				assert.Equal(t, "EMP-000123", e.EmployeeNumber)
				assert.Equal(t, managerID, *e.ManagerID)
				assert.True(t, e.IsActive)
				return nil
			})
		deps.outbox.EXPECT().WithTx(gomock.Any()).Return(deps.outbox)
		deps.outbox.EXPECT().Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, ev kafka.OutboxEvent) error {
				assert.Equal(t, "employee_created", ev.EventType)
				assert.Equal(t, "employee", ev.AggregateType)
				return nil
			})

		resp, err := deps.service.Create(ctx, req)
		assert.NoError(t, err)
		assert.Equal(t, "EMP-000123", resp.EmployeeNumber)
		assert.Equal(t, managerID.String(), *resp.ManagerID)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("negative - inactive manager", func(t *testing.T) {
		deps := setupServiceTest(t)
		managerID := uuid.New()

		testutil.ExpectTx(t, deps.sqlMock, false)
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().FindByID(gomock.Any(), managerID).
			Return(&employee.Employee{ID: managerID, IsActive: false}, nil)

		_, err := deps.service.Create(ctx, employee.CreateEmployeeRequest{
			FullName:  "Dana",
			Email:     "dana@example.com",
			Role:      employee.RoleEmployee,
			ManagerID: strPtr(managerID.String()),
		})
		assert.ErrorIs(t, err, employeeerrors.ErrManagerNotFound)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("negative - outbox failure rolls back", func(t *testing.T) {
		deps := setupServiceTest(t)

		testutil.ExpectTx(t, deps.sqlMock, false)
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)
		deps.outbox.EXPECT().WithTx(gomock.Any()).Return(deps.outbox)
		deps.outbox.EXPECT().Create(gomock.Any(), gomock.Any()).Return(errors.New("outbox down"))

		_, err := deps.service.Create(ctx, employee.CreateEmployeeRequest{
			FullName:       "Dana",
			Email:          "dana@example.com",
			Role:           employee.RoleHR,
			EmployeeNumber: "EMP-9",
		})
		assert.Error(t, err)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})
}

func TestEmployeeService_Update(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		deps := setupServiceTest(t)
		id := uuid.New()
		managerID := uuid.New()

		// cycle check walks up from the new manager
		deps.repo.EXPECT().FindByID(gomock.Any(), managerID).
			Return(&employee.Employee{ID: managerID, IsActive: true}, nil)

		testutil.ExpectTx(t, deps.sqlMock, true)
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().FindByID(gomock.Any(), id).
			Return(&employee.Employee{ID: id, FullName: "Old", Role: employee.RoleEmployee, IsActive: true}, nil)
		deps.repo.EXPECT().Update(gomock.Any(), gomock.Any()).Return(nil)

		resp, err := deps.service.Update(ctx, id.String(), employee.UpdateEmployeeRequest{
			FullName:  "New",
			Role:      employee.RoleManager,
			ManagerID: strPtr(managerID.String()),
		})
		assert.NoError(t, err)
		assert.Equal(t, "New", resp.FullName)
		assert.Equal(t, employee.RoleManager, resp.Role)
	})

	t.Run("negative - self manager", func(t *testing.T) {
		deps := setupServiceTest(t)
		id := uuid.New()

		_, err := deps.service.Update(ctx, id.String(), employee.UpdateEmployeeRequest{
			FullName:  "X",
			Role:      employee.RoleEmployee,
			ManagerID: strPtr(id.String()),
		})
		assert.ErrorIs(t, err, employeeerrors.ErrSelfManager)
	})

	t.Run("negative - manager chain would loop", func(t *testing.T) {
		deps := setupServiceTest(t)
		id := uuid.New()
		managerID := uuid.New()

		deps.repo.EXPECT().FindByID(gomock.Any(), managerID).
			Return(&employee.Employee{ID: managerID, ManagerID: &id, IsActive: true}, nil)
		deps.repo.EXPECT().FindByID(gomock.Any(), id).
			Return(&employee.Employee{ID: id, IsActive: true}, nil)

		_, err := deps.service.Update(ctx, id.String(), employee.UpdateEmployeeRequest{
			FullName:  "X",
			Role:      employee.RoleEmployee,
			ManagerID: strPtr(managerID.String()),
		})
		assert.ErrorIs(t, err, employeeerrors.ErrHierarchyCycle)
	})

	t.Run("negative - invalid id", func(t *testing.T) {
		deps := setupServiceTest(t)
		_, err := deps.service.Update(ctx, "nope", employee.UpdateEmployeeRequest{FullName: "X", Role: employee.RoleHR})
		assert.ErrorIs(t, err, employeeerrors.ErrInvalidEmployeeID)
	})
}

func TestEmployeeService_GetByID(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		deps := setupServiceTest(t)
		id := uuid.New()
		deps.repo.EXPECT().FindByID(gomock.Any(), id).Return(&employee.Employee{ID: id, FullName: "A"}, nil)

		resp, err := deps.service.GetByID(ctx, id.String())
		assert.NoError(t, err)
		assert.Equal(t, "A", resp.FullName)
	})

	t.Run("negative - not found", func(t *testing.T) {
		deps := setupServiceTest(t)
		id := uuid.New()
		deps.repo.EXPECT().FindByID(gomock.Any(), id).Return(nil, gorm.ErrRecordNotFound)

		_, err := deps.service.GetByID(ctx, id.String())
		assert.ErrorIs(t, err, employeeerrors.ErrEmployeeNotFound)
	})
}
