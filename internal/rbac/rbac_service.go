package rbac

import (
	"sort"
	"sync"

	"go-leave/internal/domain"

	"github.com/casbin/casbin/v2"
	"go.uber.org/zap"
)

//go:generate mockgen -source=rbac_service.go -destination=mock/rbac_service_mock.go -package=mock
type Service interface {
	LoadPolicy() error
	Enforce(req domain.EnforceRequest) (bool, error)
	PermissionsFor(employeeID string) (domain.MyPermissionsResponse, error)
}

type service struct {
	repo     Repository
	enforcer *casbin.Enforcer
	mu       sync.Mutex
	loaded   bool
	logger   *zap.Logger
}

func NewService(repo Repository, enforcer *casbin.Enforcer, logger ...*zap.Logger) Service {
	l := zap.L().Named("rbac.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("rbac.service")
	}
	return &service{
		repo:     repo,
		enforcer: enforcer,
		logger:   l,
	}
}

func (s *service) LoadPolicy() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loadPolicyUnlocked()
}

func (s *service) loadPolicyUnlocked() error {
	rows, err := s.repo.GetRolePermissions()
	if err != nil {
		return err
	}
	if len(rows) == 0 {
		rows = DefaultPolicy()
	}

	s.enforcer.ClearPolicy()
	for _, rp := range rows {
		if _, err := s.enforcer.AddPolicy(rp.Role, rp.Resource, rp.Action); err != nil {
			return err
		}
	}
	s.loaded = true
	s.logger.Info("rbac policy loaded", zap.Int("role_permissions", len(rows)))
	return nil
}

// bindRoleUnlocked refreshes the employee's single role grouping so role
// changes apply without reloading the whole policy.
func (s *service) bindRoleUnlocked(employeeID string) (string, error) {
	if !s.loaded {
		if err := s.loadPolicyUnlocked(); err != nil {
			return "", err
		}
	}

	role, err := s.repo.GetEmployeeRole(employeeID)
	if err != nil {
		return "", err
	}
	if _, err := s.enforcer.DeleteRolesForUser(employeeID); err != nil {
		return "", err
	}
	if role == "" {
		return "", nil
	}
	if _, err := s.enforcer.AddRoleForUser(employeeID, role); err != nil {
		return "", err
	}
	return role, nil
}

func (s *service) Enforce(req domain.EnforceRequest) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	role, err := s.bindRoleUnlocked(req.EmployeeID)
	if err != nil {
		s.logger.Error("rbac bind role failed", zap.String("employee_id", req.EmployeeID), zap.Error(err))
		return false, err
	}

	allowed, err := s.enforcer.Enforce(req.EmployeeID, req.Resource, req.Action)
	if err != nil {
		return false, err
	}

	s.logger.Debug("rbac enforce result",
		zap.String("employee_id", req.EmployeeID),
		zap.String("role", role),
		zap.String("resource", req.Resource),
		zap.String("action", req.Action),
		zap.Bool("allowed", allowed),
	)
	return allowed, nil
}

func (s *service) PermissionsFor(employeeID string) (domain.MyPermissionsResponse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	role, err := s.bindRoleUnlocked(employeeID)
	if err != nil {
		return domain.MyPermissionsResponse{}, err
	}

	perms, err := s.enforcer.GetImplicitPermissionsForUser(employeeID)
	if err != nil {
		return domain.MyPermissionsResponse{}, err
	}

	resp := domain.MyPermissionsResponse{Role: role, Permissions: make([]domain.PermissionResponse, 0, len(perms))}
	for _, p := range perms {
		if len(p) < 3 {
			continue
		}
		resp.Permissions = append(resp.Permissions, domain.PermissionResponse{Resource: p[1], Action: p[2]})
	}
	sort.Slice(resp.Permissions, func(i, j int) bool {
		if resp.Permissions[i].Resource != resp.Permissions[j].Resource {
			return resp.Permissions[i].Resource < resp.Permissions[j].Resource
		}
		return resp.Permissions[i].Action < resp.Permissions[j].Action
	})
	return resp, nil
}
