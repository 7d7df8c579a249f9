package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/peopleops/employee-api/internal/core/domain"
	"github.com/peopleops/employee-api/internal/core/ports"
)

// EmployeeService implements the policy-gated, cache-coherent employee
// operations. Reads go through the cache; writes hit the repository first and
// then invalidate the affected keys before the call returns. Cache failures
// degrade: reads fall back to the repository, failed invalidations are logged
// and bounded by the cache TTL.
type EmployeeService struct {
	employees ports.EmployeeRepository
	users     ports.UserRepository
	cache     ports.EmployeeCache
	audit     ports.AuditSink
	logger    zerolog.Logger
}

func NewEmployeeService(
	employees ports.EmployeeRepository,
	users ports.UserRepository,
	cache ports.EmployeeCache,
	audit ports.AuditSink,
	logger zerolog.Logger,
) *EmployeeService {
	return &EmployeeService{
		employees: employees,
		users:     users,
		cache:     cache,
		audit:     audit,
		logger:    logger,
	}
}

func (s *EmployeeService) List(ctx context.Context, requester ports.Identity) ([]domain.Employee, error) {
	if !domain.CanPerform(domain.OpListEmployees, requester.Role, requester.EmployeeID, "") {
		return nil, domain.ErrForbidden
	}

	cached, err := s.cache.GetList(ctx)
	if err != nil {
		s.logger.Warn().Err(err).Msg("cache read failed, falling back to store")
	} else if cached != nil {
		return cached, nil
	}

	employees, err := s.employees.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	if err := s.cache.SetList(ctx, employees); err != nil {
		s.logger.Warn().Err(err).Msg("cache populate failed")
	}
	return employees, nil
}

func (s *EmployeeService) Get(ctx context.Context, requester ports.Identity, id string) (*domain.Employee, error) {
	if !domain.CanPerform(domain.OpReadEmployee, requester.Role, requester.EmployeeID, id) {
		return nil, domain.ErrForbidden
	}

	cached, err := s.cache.GetEmployee(ctx, id)
	if err != nil {
		s.logger.Warn().Err(err).Str("employee_id", id).Msg("cache read failed, falling back to store")
	} else if cached != nil {
		return cached, nil
	}

	employee, err := s.employees.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := s.cache.SetEmployee(ctx, employee); err != nil {
		s.logger.Warn().Err(err).Str("employee_id", id).Msg("cache populate failed")
	}
	return employee, nil
}

// Create inserts the employee and its paired user in one logical operation.
// Mongo has no multi-document transaction here, so a failed user insert is
// compensated with a best-effort delete of the employee row.
func (s *EmployeeService) Create(ctx context.Context, requester ports.Identity, input ports.CreateEmployeeInput) (*domain.Employee, error) {
	if !domain.CanPerform(domain.OpCreateEmployee, requester.Role, requester.EmployeeID, "") {
		return nil, domain.ErrForbidden
	}
	if _, err := domain.ParseRole(string(input.Role)); err != nil {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	now := time.Now().UTC()
	employee, err := s.employees.Create(ctx, &domain.Employee{
		FirstName:   input.FirstName,
		LastName:    input.LastName,
		Position:    input.Position,
		DateOfBirth: input.DateOfBirth,
		Email:       input.Email,
		Phone:       input.Phone,
		CreatedAt:   now,
		UpdatedAt:   now,
	})
	if err != nil {
		return nil, err
	}

	if _, err := s.users.Create(ctx, &domain.User{
		Username:     input.Username,
		PasswordHash: string(hash),
		Role:         input.Role,
		EmployeeID:   employee.ID,
		CreatedAt:    now,
	}); err != nil {
		if delErr := s.employees.Delete(ctx, employee.ID); delErr != nil {
			s.logger.Error().Err(delErr).Str("employee_id", employee.ID).Msg("orphaned employee after failed user insert")
		}
		return nil, err
	}

	s.invalidate(ctx, "")
	s.enqueueAudit(domain.AuditEmployeeCreate, requester.UserID, employee.ID)
	s.logger.Info().Str("employee_id", employee.ID).Msg("employee created")
	return employee, nil
}

func (s *EmployeeService) Update(ctx context.Context, requester ports.Identity, id string, input ports.UpdateEmployeeInput) (*domain.Employee, error) {
	if !domain.CanPerform(domain.OpUpdateEmployee, requester.Role, requester.EmployeeID, id) {
		return nil, domain.ErrForbidden
	}

	existing, err := s.employees.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	existing.FirstName = input.FirstName
	existing.LastName = input.LastName
	existing.Position = input.Position
	existing.DateOfBirth = input.DateOfBirth
	existing.Email = input.Email
	existing.Phone = input.Phone
	existing.UpdatedAt = time.Now().UTC()

	if err := s.employees.Update(ctx, existing); err != nil {
		return nil, err
	}

	s.invalidate(ctx, id)
	s.enqueueAudit(domain.AuditEmployeeUpdate, requester.UserID, id)
	return existing, nil
}

func (s *EmployeeService) Delete(ctx context.Context, requester ports.Identity, id string) error {
	if !domain.CanPerform(domain.OpDeleteEmployee, requester.Role, requester.EmployeeID, id) {
		return domain.ErrForbidden
	}

	if _, err := s.employees.GetByID(ctx, id); err != nil {
		return err
	}
	if err := s.employees.Delete(ctx, id); err != nil {
		return err
	}
	if err := s.users.DeleteByEmployeeID(ctx, id); err != nil {
		s.logger.Error().Err(err).Str("employee_id", id).Msg("orphaned user after employee delete")
	}

	s.invalidate(ctx, id)
	s.enqueueAudit(domain.AuditEmployeeDelete, requester.UserID, id)
	s.logger.Info().Str("employee_id", id).Msg("employee deleted")
	return nil
}

// invalidate deletes the collection key and, when id is non-empty, the
// per-employee key. It runs before the write is reported successful; a failed
// delete is logged and left to expire at the cache TTL.
func (s *EmployeeService) invalidate(ctx context.Context, id string) {
	if err := s.cache.InvalidateList(ctx); err != nil {
		s.logger.Warn().Err(err).Msg("list cache invalidation failed")
	}
	if id == "" {
		return
	}
	if err := s.cache.InvalidateEmployee(ctx, id); err != nil {
		s.logger.Warn().Err(err).Str("employee_id", id).Msg("employee cache invalidation failed")
	}
}

func (s *EmployeeService) enqueueAudit(action domain.AuditAction, actorID, targetID string) {
	s.audit.Enqueue(domain.AuditEvent{
		ID:        uuid.NewString(),
		Action:    action,
		ActorID:   actorID,
		TargetID:  targetID,
		Timestamp: time.Now().UTC(),
	})
}
