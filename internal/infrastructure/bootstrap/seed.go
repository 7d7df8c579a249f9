// Package bootstrap contains startup-only tasks: index creation and seeding
// of the initial administrator account.
package bootstrap

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/peopleops/employee-api/internal/core/domain"
	"github.com/peopleops/employee-api/internal/core/ports"
)

// SeedAdmin creates the bootstrap administrator (employee + user pair) when
// no administrator exists yet. Re-running on every startup is safe.
func SeedAdmin(ctx context.Context, users ports.UserRepository, employees ports.EmployeeRepository, username, password string, log zerolog.Logger) error {
	exists, err := users.HasAdministrator(ctx)
	if err != nil {
		return fmt.Errorf("check administrator: %w", err)
	}
	if exists {
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash admin password: %w", err)
	}

	now := time.Now().UTC()
	employee, err := employees.Create(ctx, &domain.Employee{
		FirstName:   "Admin",
		LastName:    "User",
		Position:    "Administrator",
		DateOfBirth: time.Date(1990, time.January, 1, 0, 0, 0, 0, time.UTC),
		Email:       username,
		Phone:       "0000000000",
		CreatedAt:   now,
		UpdatedAt:   now,
	})
	if err != nil {
		return fmt.Errorf("seed admin employee: %w", err)
	}

	if _, err := users.Create(ctx, &domain.User{
		Username:     username,
		PasswordHash: string(hash),
		Role:         domain.RoleAdministrator,
		EmployeeID:   employee.ID,
		CreatedAt:    now,
	}); err != nil {
		// Another instance may have seeded concurrently; the unique username
		// index makes that race harmless.
		if err == domain.ErrUserExists {
			return nil
		}
		return fmt.Errorf("seed admin user: %w", err)
	}

	log.Info().Str("username", username).Msg("bootstrap administrator created")
	return nil
}
