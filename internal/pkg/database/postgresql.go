package database

import (
	"context"
	"hash/fnv"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

type DB struct {
	*pgxpool.Pool
}

func NewPostgreSQLDB(dsn string) (*DB, error) {
	config, err := pgxpool.ParseConfig(dsn)

	if err != nil {
		return nil, err
	}

	// Connection pool settings
	config.MaxConns = 25
	config.MinConns = 5

	pool, err := pgxpool.NewWithConfig(context.Background(), config)
	if err != nil {
		return nil, err
	}

	if err := pool.Ping(context.Background()); err != nil {
		return nil, err
	}

	return &DB{Pool: pool}, nil
}

func (db *DB) BeginTx(ctx context.Context) (pgx.Tx, error) {
	return db.Pool.Begin(ctx)
}

type Querier interface {
	Exec(ctx context.Context, sql string, arguments ...interface{}) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, arguments ...interface{}) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...interface{}) pgx.Row
}

// AdvisoryLockKey hashes a string key into the int64 keyspace of
// pg_advisory_xact_lock.
func AdvisoryLockKey(key string) int64 {
	h := fnv.New64a()
	h.Write([]byte(key))
	return int64(h.Sum64())
}

// AcquireTxAdvisoryLock takes a transaction-scoped advisory lock. The lock
// releases when the surrounding transaction commits or rolls back.
func AcquireTxAdvisoryLock(ctx context.Context, q Querier, key string) error {
	_, err := q.Exec(ctx, "SELECT pg_advisory_xact_lock($1)", AdvisoryLockKey(key))
	return err
}

// TryTxAdvisoryLock attempts a transaction-scoped advisory lock without
// blocking. Returns false when another transaction holds the lock.
func TryTxAdvisoryLock(ctx context.Context, q Querier, key string) (bool, error) {
	var acquired bool
	err := q.QueryRow(ctx, "SELECT pg_try_advisory_xact_lock($1)", AdvisoryLockKey(key)).Scan(&acquired)
	return acquired, err
}
