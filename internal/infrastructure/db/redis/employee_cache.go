package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/peopleops/employee-api/internal/api/metrics"
	"github.com/peopleops/employee-api/internal/core/domain"
)

const (
	// cacheTTL bounds how stale a cache entry can get after a missed
	// invalidation.
	cacheTTL = 5 * time.Minute

	listKey        = "employees:all"
	employeePrefix = "employee:"
)

// EmployeeCache is the Redis-backed read-through cache for employee data.
// Entries are advisory: a miss or a cache failure only costs a trip to the
// data store.
type EmployeeCache struct {
	client *redis.Client
}

// NewEmployeeCache creates an EmployeeCache wrapping the given Redis client.
func NewEmployeeCache(client *redis.Client) *EmployeeCache {
	return &EmployeeCache{client: client}
}

func (c *EmployeeCache) GetEmployee(ctx context.Context, id string) (*domain.Employee, error) {
	var e domain.Employee
	ok, err := c.get(ctx, employeePrefix+id, "employee", &e)
	if err != nil || !ok {
		return nil, err
	}
	return &e, nil
}

func (c *EmployeeCache) SetEmployee(ctx context.Context, e *domain.Employee) error {
	return c.set(ctx, employeePrefix+e.ID, e)
}

func (c *EmployeeCache) GetList(ctx context.Context) ([]domain.Employee, error) {
	var employees []domain.Employee
	ok, err := c.get(ctx, listKey, "employee_list", &employees)
	if err != nil || !ok {
		return nil, err
	}
	return employees, nil
}

func (c *EmployeeCache) SetList(ctx context.Context, employees []domain.Employee) error {
	if employees == nil {
		employees = []domain.Employee{}
	}
	return c.set(ctx, listKey, employees)
}

func (c *EmployeeCache) InvalidateList(ctx context.Context) error {
	return c.del(ctx, listKey)
}

func (c *EmployeeCache) InvalidateEmployee(ctx context.Context, id string) error {
	return c.del(ctx, employeePrefix+id)
}

func (c *EmployeeCache) get(ctx context.Context, key, object string, dest any) (bool, error) {
	payload, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			metrics.CacheRequestsTotal.WithLabelValues(object, "miss").Inc()
			return false, nil
		}
		return false, fmt.Errorf("cache get %s: %w", key, err)
	}
	if err := json.Unmarshal(payload, dest); err != nil {
		// A corrupt entry behaves like a miss; the next write overwrites it.
		metrics.CacheRequestsTotal.WithLabelValues(object, "miss").Inc()
		return false, nil
	}
	metrics.CacheRequestsTotal.WithLabelValues(object, "hit").Inc()
	return true, nil
}

func (c *EmployeeCache) set(ctx context.Context, key string, value any) error {
	payload, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("cache marshal %s: %w", key, err)
	}
	if err := c.client.Set(ctx, key, payload, cacheTTL).Err(); err != nil {
		return fmt.Errorf("cache set %s: %w", key, err)
	}
	return nil
}

func (c *EmployeeCache) del(ctx context.Context, key string) error {
	if err := c.client.Del(ctx, key).Err(); err != nil {
		return fmt.Errorf("cache delete %s: %w", key, err)
	}
	metrics.CacheInvalidationsTotal.Inc()
	return nil
}
