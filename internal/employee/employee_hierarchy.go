package employee

import (
	"context"
	"errors"

	employeeerrors "go-leave/internal/employee/errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const DefaultMaxHierarchyDepth = 5

// Directory answers org-chart questions for the approval and substitute
// validators.
//
//go:generate mockgen -source=employee_hierarchy.go -destination=mock/employee_directory_mock.go -package=mock
type Directory interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Employee, error)
	// NextApprover walks up from subjectID and returns the first active
	// superior not listed in exclude, or nil when the chain runs out.
	NextApprover(ctx context.Context, subjectID uuid.UUID, exclude ...uuid.UUID) (*Employee, error)
	// Superiors returns the manager chain of subjectID, nearest first.
	Superiors(ctx context.Context, subjectID uuid.UUID) ([]Employee, error)
}

// Hierarchy walks manager_id links with a hop limit. The schema does not
// forbid cycles, so a revisit is reported as ErrHierarchyCycle instead of
// looping.
type Hierarchy struct {
	repo     Repository
	maxDepth int
}

func NewHierarchy(repo Repository, maxDepth int) *Hierarchy {
	if maxDepth <= 0 {
		maxDepth = DefaultMaxHierarchyDepth
	}
	return &Hierarchy{repo: repo, maxDepth: maxDepth}
}

func (h *Hierarchy) FindByID(ctx context.Context, id uuid.UUID) (*Employee, error) {
	e, err := h.repo.FindByID(ctx, id)
	if err != nil {
		return nil, mapRepositoryError(err)
	}
	return e, nil
}

func (h *Hierarchy) Superiors(ctx context.Context, subjectID uuid.UUID) ([]Employee, error) {
	var chain []Employee
	err := h.walk(ctx, subjectID, func(e *Employee) bool {
		chain = append(chain, *e)
		return false
	})
	return chain, err
}

func (h *Hierarchy) NextApprover(ctx context.Context, subjectID uuid.UUID, exclude ...uuid.UUID) (*Employee, error) {
	var found *Employee
	err := h.walk(ctx, subjectID, func(e *Employee) bool {
		if !e.IsActive || contains(exclude, e.ID) {
			return false
		}
		found = e
		return true
	})
	if err != nil {
		return nil, err
	}
	return found, nil
}

// walk visits superiors nearest first until visit returns true, the chain
// ends, or maxDepth hops have been taken.
func (h *Hierarchy) walk(ctx context.Context, subjectID uuid.UUID, visit func(*Employee) bool) error {
	current, err := h.repo.FindByID(ctx, subjectID)
	if err != nil {
		return mapRepositoryError(err)
	}

	seen := map[uuid.UUID]struct{}{current.ID: {}}
	for hop := 0; hop < h.maxDepth; hop++ {
		if current.ManagerID == nil {
			return nil
		}
		if _, ok := seen[*current.ManagerID]; ok {
			return employeeerrors.ErrHierarchyCycle
		}

		next, err := h.repo.FindByID(ctx, *current.ManagerID)
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil
		}
		if err != nil {
			return err
		}
		seen[next.ID] = struct{}{}

		if visit(next) {
			return nil
		}
		current = next
	}
	return nil
}

// WouldCycle reports whether making managerID the manager of employeeID
// closes a loop.
func (h *Hierarchy) WouldCycle(ctx context.Context, employeeID, managerID uuid.UUID) (bool, error) {
	if employeeID == managerID {
		return true, nil
	}
	cycle := false
	err := h.walk(ctx, managerID, func(e *Employee) bool {
		if e.ID == employeeID {
			cycle = true
			return true
		}
		return false
	})
	if errors.Is(err, employeeerrors.ErrHierarchyCycle) {
		return true, nil
	}
	return cycle, err
}

func contains(ids []uuid.UUID, id uuid.UUID) bool {
	for _, v := range ids {
		if v == id {
			return true
		}
	}
	return false
}
