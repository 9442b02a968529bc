package database

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/surrealdb/surrealdb.go"
	"github.com/warblerhq/warbler/internal/config"
)

// Client is a type-safe database client for records of type T.
type Client[T any] interface {
	// Query executes a raw SurrealQL query and unmarshals all results.
	Query(ctx context.Context, query string, params map[string]any) ([]T, error)
	// QueryOne executes a query and returns the first result, or nil when
	// the result set is empty.
	QueryOne(ctx context.Context, query string, params map[string]any) (*T, error)
	// Execute runs a query whose results are discarded.
	Execute(ctx context.Context, query string, params map[string]any) error
	// DB exposes the underlying connection for driver-level operations.
	DB() *surrealdb.DB
	Close() error
}

type client[T any] struct {
	db             *surrealdb.DB
	queryTimeout   time.Duration
	executeTimeout time.Duration
}

// NewClient creates a new type-safe database client.
func NewClient[T any](db *surrealdb.DB, cfg config.Provider) (Client[T], error) {
	if db == nil {
		return nil, NewDBError(ErrInvalidInput, "db cannot be nil")
	}
	if cfg == nil {
		return nil, NewDBError(ErrInvalidInput, "config provider cannot be nil")
	}
	if cfg.GetDBQueryTimeout() <= 0 {
		return nil, NewDBError(ErrInvalidInput, "DB_QUERY_TIMEOUT must be a positive duration")
	}
	if cfg.GetDBExecuteTimeout() <= 0 {
		return nil, NewDBError(ErrInvalidInput, "DB_EXECUTE_TIMEOUT must be a positive duration")
	}

	return &client[T]{
		db:             db,
		queryTimeout:   cfg.GetDBQueryTimeout(),
		executeTimeout: cfg.GetDBExecuteTimeout(),
	}, nil
}

func (c *client[T]) Query(ctx context.Context, query string, params map[string]any) ([]T, error) {
	ctx, cancel := context.WithTimeout(ctx, c.queryTimeout)
	defer cancel()

	queryResults, err := surrealdb.Query[[]T](ctx, c.db, query, params)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrQueryFailed, err)
	}
	if len(*queryResults) == 0 {
		return nil, nil
	}
	return (*queryResults)[0].Result, nil
}

func (c *client[T]) QueryOne(ctx context.Context, query string, params map[string]any) (*T, error) {
	// CREATE/UPDATE/DELETE statements don't support LIMIT.
	if strings.HasPrefix(strings.ToUpper(strings.TrimSpace(query)), "SELECT") && !hasLimitClause(query) {
		query += " LIMIT 1"
	}

	results, err := c.Query(ctx, query, params)
	if err != nil {
		return nil, err
	}
	if len(results) == 0 {
		return nil, nil
	}
	return &results[0], nil
}

func (c *client[T]) Execute(ctx context.Context, query string, params map[string]any) error {
	ctx, cancel := context.WithTimeout(ctx, c.executeTimeout)
	defer cancel()

	if _, err := surrealdb.Query[any](ctx, c.db, query, params); err != nil {
		return fmt.Errorf("%w: %v", ErrQueryFailed, err)
	}
	return nil
}

func (c *client[T]) DB() *surrealdb.DB {
	return c.db
}

func (c *client[T]) Close() error {
	return c.db.Close(context.Background())
}

// hasLimitClause checks if the query already has a LIMIT clause.
func hasLimitClause(query string) bool {
	query = " " + strings.ToUpper(query) + " "
	return strings.Contains(query, " LIMIT ")
}
