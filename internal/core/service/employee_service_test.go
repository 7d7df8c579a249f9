package service

import (
	"context"
	"errors"
	"strconv"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/peopleops/employee-api/internal/core/domain"
	"github.com/peopleops/employee-api/internal/core/ports"
)

type stubEmployeeRepo struct {
	employees map[string]*domain.Employee
	nextID    int

	getByIDCalls int
	getAllCalls  int
}

func newStubEmployeeRepo() *stubEmployeeRepo {
	return &stubEmployeeRepo{employees: make(map[string]*domain.Employee), nextID: 1}
}

func (r *stubEmployeeRepo) GetByID(_ context.Context, id string) (*domain.Employee, error) {
	r.getByIDCalls++
	e, ok := r.employees[id]
	if !ok {
		return nil, domain.ErrEmployeeNotFound
	}
	clone := *e
	return &clone, nil
}

func (r *stubEmployeeRepo) GetAll(_ context.Context) ([]domain.Employee, error) {
	r.getAllCalls++
	out := make([]domain.Employee, 0, len(r.employees))
	for _, e := range r.employees {
		out = append(out, *e)
	}
	return out, nil
}

func (r *stubEmployeeRepo) Create(_ context.Context, e *domain.Employee) (*domain.Employee, error) {
	clone := *e
	clone.ID = "emp-" + strconv.Itoa(r.nextID)
	r.nextID++
	r.employees[clone.ID] = &clone
	out := clone
	return &out, nil
}

func (r *stubEmployeeRepo) Update(_ context.Context, e *domain.Employee) error {
	if _, ok := r.employees[e.ID]; !ok {
		return domain.ErrEmployeeNotFound
	}
	clone := *e
	r.employees[e.ID] = &clone
	return nil
}

func (r *stubEmployeeRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.employees[id]; !ok {
		return domain.ErrEmployeeNotFound
	}
	delete(r.employees, id)
	return nil
}

// memEmployeeCache is an in-memory EmployeeCache; failErr, when set, makes
// every call fail the way an unreachable Redis would.
type memEmployeeCache struct {
	byID    map[string]domain.Employee
	list    []domain.Employee
	hasList bool
	failErr error
}

func newMemEmployeeCache() *memEmployeeCache {
	return &memEmployeeCache{byID: make(map[string]domain.Employee)}
}

func (c *memEmployeeCache) GetEmployee(_ context.Context, id string) (*domain.Employee, error) {
	if c.failErr != nil {
		return nil, c.failErr
	}
	e, ok := c.byID[id]
	if !ok {
		return nil, nil
	}
	clone := e
	return &clone, nil
}

func (c *memEmployeeCache) SetEmployee(_ context.Context, e *domain.Employee) error {
	if c.failErr != nil {
		return c.failErr
	}
	c.byID[e.ID] = *e
	return nil
}

func (c *memEmployeeCache) GetList(_ context.Context) ([]domain.Employee, error) {
	if c.failErr != nil {
		return nil, c.failErr
	}
	if !c.hasList {
		return nil, nil
	}
	return append([]domain.Employee(nil), c.list...), nil
}

func (c *memEmployeeCache) SetList(_ context.Context, employees []domain.Employee) error {
	if c.failErr != nil {
		return c.failErr
	}
	c.list = append([]domain.Employee(nil), employees...)
	c.hasList = true
	return nil
}

func (c *memEmployeeCache) InvalidateList(_ context.Context) error {
	if c.failErr != nil {
		return c.failErr
	}
	c.list = nil
	c.hasList = false
	return nil
}

func (c *memEmployeeCache) InvalidateEmployee(_ context.Context, id string) error {
	if c.failErr != nil {
		return c.failErr
	}
	delete(c.byID, id)
	return nil
}

var (
	adminIdentity    = ports.Identity{UserID: "user-admin", EmployeeID: "emp-admin", Role: domain.RoleAdministrator}
	employeeIdentity = func(employeeID string) ports.Identity {
		return ports.Identity{UserID: "user-" + employeeID, EmployeeID: employeeID, Role: domain.RoleEmployee}
	}
)

func newTestEmployeeService(repo *stubEmployeeRepo, users *stubUserRepo, cache *memEmployeeCache) *EmployeeService {
	return NewEmployeeService(repo, users, cache, nopAuditSink{}, zerolog.Nop())
}

func createInput(name string) ports.CreateEmployeeInput {
	return ports.CreateEmployeeInput{
		FirstName:   name,
		LastName:    "Tester",
		Position:    "Engineer",
		DateOfBirth: time.Date(1992, time.March, 14, 0, 0, 0, 0, time.UTC),
		Email:       name + "@example.com",
		Phone:       "5550001",
		Username:    name + "@example.com",
		Password:    "longenoughpw",
		Role:        domain.RoleEmployee,
	}
}

func TestEmployeeService_Get_ReadThrough(t *testing.T) {
	repo := newStubEmployeeRepo()
	cache := newMemEmployeeCache()
	svc := newTestEmployeeService(repo, newStubUserRepo(), cache)

	created, err := repo.Create(context.Background(), &domain.Employee{FirstName: "Ann"})
	if err != nil {
		t.Fatalf("seed employee: %v", err)
	}

	// First read: cold cache, exactly one store fetch, cache populated.
	if _, err := svc.Get(context.Background(), adminIdentity, created.ID); err != nil {
		t.Fatalf("first Get returned error: %v", err)
	}
	if repo.getByIDCalls != 1 {
		t.Fatalf("expected 1 store fetch after cold read, got %d", repo.getByIDCalls)
	}

	// Second read within the TTL window: served from cache, store untouched.
	got, err := svc.Get(context.Background(), adminIdentity, created.ID)
	if err != nil {
		t.Fatalf("second Get returned error: %v", err)
	}
	if repo.getByIDCalls != 1 {
		t.Fatalf("expected cache hit, store fetched %d times", repo.getByIDCalls)
	}
	if got.FirstName != "Ann" {
		t.Errorf("unexpected employee: %+v", got)
	}
}

func TestEmployeeService_List_ReadThrough(t *testing.T) {
	repo := newStubEmployeeRepo()
	cache := newMemEmployeeCache()
	svc := newTestEmployeeService(repo, newStubUserRepo(), cache)

	if _, err := repo.Create(context.Background(), &domain.Employee{FirstName: "Ann"}); err != nil {
		t.Fatalf("seed employee: %v", err)
	}

	if _, err := svc.List(context.Background(), adminIdentity); err != nil {
		t.Fatalf("first List returned error: %v", err)
	}
	if _, err := svc.List(context.Background(), adminIdentity); err != nil {
		t.Fatalf("second List returned error: %v", err)
	}
	if repo.getAllCalls != 1 {
		t.Fatalf("expected 1 store fetch across both lists, got %d", repo.getAllCalls)
	}
}

func TestEmployeeService_List_EmptyResultIsCached(t *testing.T) {
	repo := newStubEmployeeRepo()
	cache := newMemEmployeeCache()
	svc := newTestEmployeeService(repo, newStubUserRepo(), cache)

	out, err := svc.List(context.Background(), adminIdentity)
	if err != nil {
		t.Fatalf("List returned error: %v", err)
	}
	if len(out) != 0 {
		t.Fatalf("expected empty list, got %d entries", len(out))
	}
	if _, err := svc.List(context.Background(), adminIdentity); err != nil {
		t.Fatalf("second List returned error: %v", err)
	}
	if repo.getAllCalls != 1 {
		t.Fatalf("empty list was not cached: %d store fetches", repo.getAllCalls)
	}
}

func TestEmployeeService_CacheFailure_FallsBackToStore(t *testing.T) {
	repo := newStubEmployeeRepo()
	cache := newMemEmployeeCache()
	cache.failErr = errors.New("connection refused")
	svc := newTestEmployeeService(repo, newStubUserRepo(), cache)

	created, err := repo.Create(context.Background(), &domain.Employee{FirstName: "Ann"})
	if err != nil {
		t.Fatalf("seed employee: %v", err)
	}

	got, err := svc.Get(context.Background(), adminIdentity, created.ID)
	if err != nil {
		t.Fatalf("Get with broken cache returned error: %v", err)
	}
	if got.FirstName != "Ann" {
		t.Errorf("unexpected employee: %+v", got)
	}

	if _, err := svc.List(context.Background(), adminIdentity); err != nil {
		t.Fatalf("List with broken cache returned error: %v", err)
	}
}

func TestEmployeeService_Create_InvalidatesListCache(t *testing.T) {
	repo := newStubEmployeeRepo()
	cache := newMemEmployeeCache()
	users := newStubUserRepo()
	svc := newTestEmployeeService(repo, users, cache)

	if _, err := svc.List(context.Background(), adminIdentity); err != nil {
		t.Fatalf("warm-up List returned error: %v", err)
	}

	created, err := svc.Create(context.Background(), adminIdentity, createInput("bob"))
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}

	out, err := svc.List(context.Background(), adminIdentity)
	if err != nil {
		t.Fatalf("List after Create returned error: %v", err)
	}
	if len(out) != 1 || out[0].ID != created.ID {
		t.Fatalf("stale list after create: %+v", out)
	}
	if repo.getAllCalls != 2 {
		t.Fatalf("list cache not invalidated: %d store fetches", repo.getAllCalls)
	}

	// The paired user account exists and is linked 1:1.
	user, err := users.FindByUsername(context.Background(), "bob@example.com")
	if err != nil {
		t.Fatalf("paired user missing: %v", err)
	}
	if user.EmployeeID != created.ID {
		t.Errorf("user links to %s, want %s", user.EmployeeID, created.ID)
	}
	if user.PasswordHash == "longenoughpw" {
		t.Errorf("password stored in plaintext")
	}
}

func TestEmployeeService_Update_InvalidatesBothKeys(t *testing.T) {
	repo := newStubEmployeeRepo()
	cache := newMemEmployeeCache()
	svc := newTestEmployeeService(repo, newStubUserRepo(), cache)

	created, err := svc.Create(context.Background(), adminIdentity, createInput("bob"))
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}

	// Warm both cache keys.
	if _, err := svc.Get(context.Background(), adminIdentity, created.ID); err != nil {
		t.Fatalf("warm-up Get returned error: %v", err)
	}
	if _, err := svc.List(context.Background(), adminIdentity); err != nil {
		t.Fatalf("warm-up List returned error: %v", err)
	}

	input := ports.UpdateEmployeeInput{
		FirstName:   "Robert",
		LastName:    "Tester",
		Position:    "Senior Engineer",
		DateOfBirth: time.Date(1992, time.March, 14, 0, 0, 0, 0, time.UTC),
		Email:       "bob@example.com",
		Phone:       "5550002",
	}
	if _, err := svc.Update(context.Background(), adminIdentity, created.ID, input); err != nil {
		t.Fatalf("Update returned error: %v", err)
	}

	got, err := svc.Get(context.Background(), adminIdentity, created.ID)
	if err != nil {
		t.Fatalf("Get after Update returned error: %v", err)
	}
	if got.FirstName != "Robert" || got.Position != "Senior Engineer" {
		t.Fatalf("stale employee after update: %+v", got)
	}

	list, err := svc.List(context.Background(), adminIdentity)
	if err != nil {
		t.Fatalf("List after Update returned error: %v", err)
	}
	if len(list) != 1 || list[0].FirstName != "Robert" {
		t.Fatalf("stale list after update: %+v", list)
	}
}

func TestEmployeeService_Delete_InvalidatesAndRemovesUser(t *testing.T) {
	repo := newStubEmployeeRepo()
	cache := newMemEmployeeCache()
	users := newStubUserRepo()
	svc := newTestEmployeeService(repo, users, cache)

	created, err := svc.Create(context.Background(), adminIdentity, createInput("bob"))
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if _, err := svc.Get(context.Background(), adminIdentity, created.ID); err != nil {
		t.Fatalf("warm-up Get returned error: %v", err)
	}

	if err := svc.Delete(context.Background(), adminIdentity, created.ID); err != nil {
		t.Fatalf("Delete returned error: %v", err)
	}

	if _, err := svc.Get(context.Background(), adminIdentity, created.ID); err != domain.ErrEmployeeNotFound {
		t.Fatalf("expected ErrEmployeeNotFound after delete, got %v", err)
	}
	if _, err := users.FindByUsername(context.Background(), "bob@example.com"); err != domain.ErrUserNotFound {
		t.Fatalf("paired user not removed: %v", err)
	}
}

func TestEmployeeService_AuthorizationMatrix(t *testing.T) {
	repo := newStubEmployeeRepo()
	svc := newTestEmployeeService(repo, newStubUserRepo(), newMemEmployeeCache())

	own, err := svc.Create(context.Background(), adminIdentity, createInput("own"))
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	other, err := svc.Create(context.Background(), adminIdentity, createInput("other"))
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}

	me := employeeIdentity(own.ID)

	if _, err := svc.List(context.Background(), me); err != domain.ErrForbidden {
		t.Errorf("List as employee: expected ErrForbidden, got %v", err)
	}
	if _, err := svc.Get(context.Background(), me, own.ID); err != nil {
		t.Errorf("Get own record: unexpected error %v", err)
	}
	if _, err := svc.Get(context.Background(), me, other.ID); err != domain.ErrForbidden {
		t.Errorf("Get other record: expected ErrForbidden, got %v", err)
	}
	if _, err := svc.Create(context.Background(), me, createInput("new")); err != domain.ErrForbidden {
		t.Errorf("Create as employee: expected ErrForbidden, got %v", err)
	}
	if err := svc.Delete(context.Background(), me, own.ID); err != domain.ErrForbidden {
		t.Errorf("Delete own record as employee: expected ErrForbidden, got %v", err)
	}

	input := ports.UpdateEmployeeInput{FirstName: "Me", LastName: "Too", Position: "Engineer",
		DateOfBirth: time.Date(1992, time.March, 14, 0, 0, 0, 0, time.UTC), Email: "own@example.com", Phone: "5550003"}
	if _, err := svc.Update(context.Background(), me, own.ID, input); err != nil {
		t.Errorf("Update own record: unexpected error %v", err)
	}
	if _, err := svc.Update(context.Background(), me, other.ID, input); err != domain.ErrForbidden {
		t.Errorf("Update other record: expected ErrForbidden, got %v", err)
	}
}

func TestEmployeeService_Create_RejectsUnknownRole(t *testing.T) {
	svc := newTestEmployeeService(newStubEmployeeRepo(), newStubUserRepo(), newMemEmployeeCache())

	input := createInput("bob")
	input.Role = domain.Role("Superuser")
	if _, err := svc.Create(context.Background(), adminIdentity, input); err != domain.ErrInvalidRole {
		t.Fatalf("expected ErrInvalidRole, got %v", err)
	}
}

func TestEmployeeService_Create_DuplicateUsernameRollsBack(t *testing.T) {
	repo := newStubEmployeeRepo()
	users := newStubUserRepo()
	svc := newTestEmployeeService(repo, users, newMemEmployeeCache())

	if _, err := svc.Create(context.Background(), adminIdentity, createInput("bob")); err != nil {
		t.Fatalf("first Create returned error: %v", err)
	}
	if _, err := svc.Create(context.Background(), adminIdentity, createInput("bob")); err != domain.ErrUserExists {
		t.Fatalf("expected ErrUserExists, got %v", err)
	}
	// The compensating delete removed the second employee row.
	if len(repo.employees) != 1 {
		t.Fatalf("expected 1 employee after rollback, got %d", len(repo.employees))
	}
}

func TestEmployeeService_NotFound(t *testing.T) {
	svc := newTestEmployeeService(newStubEmployeeRepo(), newStubUserRepo(), newMemEmployeeCache())

	if _, err := svc.Get(context.Background(), adminIdentity, "missing"); err != domain.ErrEmployeeNotFound {
		t.Errorf("Get: expected ErrEmployeeNotFound, got %v", err)
	}
	input := ports.UpdateEmployeeInput{FirstName: "X", LastName: "Y", Position: "Z",
		DateOfBirth: time.Date(1992, time.March, 14, 0, 0, 0, 0, time.UTC), Email: "x@example.com", Phone: "5550004"}
	if _, err := svc.Update(context.Background(), adminIdentity, "missing", input); err != domain.ErrEmployeeNotFound {
		t.Errorf("Update: expected ErrEmployeeNotFound, got %v", err)
	}
	if err := svc.Delete(context.Background(), adminIdentity, "missing"); err != domain.ErrEmployeeNotFound {
		t.Errorf("Delete: expected ErrEmployeeNotFound, got %v", err)
	}
}
