package storage

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Config struct {
	host     string
	user     string
	password string
	port     string
	dbname   string
	sslmode  string
}

func (c Config) ConnStr() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=%s", c.user, c.password, c.host, c.port, c.dbname, c.sslmode)
}

func NewConfig(host, user, password, port, dbname, sslmode string) Config {
	return Config{
		host:     host,
		user:     user,
		password: password,
		port:     port,
		dbname:   dbname,
		sslmode:  sslmode,
	}
}

func NewPool(ctx context.Context, config Config) (*pgxpool.Pool, error) {
	p, err := pgxpool.New(ctx, config.ConnStr())
	if err != nil {
		return nil, err
	}

	err = p.Ping(ctx)
	if err != nil {
		return nil, err
	}

	return p, nil
}

var (
	ErrNoRows          = errors.New("no rows in result set")
	ErrTooManyRows     = errors.New("too many rows in result set")
	ErrQueryRow        = errors.New("could not execute query")
	ErrStoreFailed     = errors.New("could not store data")
	ErrAlreadyExists   = errors.New("already exists")
	ErrTxConflict      = errors.New("transaction conflict")
	ErrNothingToUpdate = errors.New("nothing to update")
)

type Storage struct {
	pool *pgxpool.Pool
}

func NewWithPool(pool *pgxpool.Pool) *Storage {
	return &Storage{pool: pool}
}

func New(ctx context.Context, config Config) (*Storage, error) {
	pool, err := NewPool(ctx, config)
	if err != nil {
		return nil, err
	}

	return &Storage{pool: pool}, nil
}

func (s *Storage) Close() {
	s.pool.Close()
}

type querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

type txCtxKey struct{}

// db returns the transaction bound to ctx by WithTx, or the pool.
func (s *Storage) db(ctx context.Context) querier {
	if tx, ok := ctx.Value(txCtxKey{}).(pgx.Tx); ok {
		return tx
	}
	return s.pool
}

// WithTx runs fn inside a single read committed transaction. Accessors called
// with the context passed to fn operate on that transaction, so a protocol
// endpoint can combine reads and writes atomically. Nested calls reuse the
// outer transaction.
func (s *Storage) WithTx(ctx context.Context, fn func(context.Context) error) error {
	if _, ok := ctx.Value(txCtxKey{}).(pgx.Tx); ok {
		return fn(ctx)
	}

	err := pgx.BeginTxFunc(ctx, s.pool, pgx.TxOptions{IsoLevel: pgx.ReadCommitted}, func(tx pgx.Tx) error {
		return fn(context.WithValue(ctx, txCtxKey{}, tx))
	})

	return mapTxError(err)
}

func mapTxError(err error) error {
	if err == nil {
		return nil
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		// serialization_failure / deadlock_detected are retryable
		if pgErr.Code == "40001" || pgErr.Code == "40P01" {
			return fmt.Errorf("%w: %s", ErrTxConflict, pgErr.Message)
		}
	}

	return err
}

func (s *Storage) Initialize(ctx context.Context) error {
	return s.createTables(ctx)
}

func (s *Storage) createTables(ctx context.Context) error {
	_, err := s.pool.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS devices (
			sensor_id		TEXT	NOT NULL,
			sensor_type		TEXT	NOT NULL DEFAULT '',
			sensor_name		TEXT	NOT NULL DEFAULT '',
			hardware_info		TEXT	NOT NULL DEFAULT '',
			firmware_version	TEXT	NOT NULL DEFAULT '',
			ip_address		TEXT	NOT NULL DEFAULT '',
			mac_address		TEXT	NOT NULL DEFAULT '',
			capabilities		JSONB	NOT NULL DEFAULT '[]',
			metrics			JSONB	NULL,
			last_check_in		timestamp with time zone NOT NULL DEFAULT CURRENT_TIMESTAMP,
			last_config_hash	TEXT	NOT NULL DEFAULT '',
			last_script_execution	timestamp with time zone NULL,
			reported_script_version	TEXT	NOT NULL DEFAULT '',
			reported_script_id	BIGINT	NOT NULL DEFAULT 0,
			created_on		timestamp with time zone NOT NULL DEFAULT CURRENT_TIMESTAMP,
			modified_on		timestamp with time zone NOT NULL DEFAULT CURRENT_TIMESTAMP,
			CONSTRAINT pkey_devices PRIMARY KEY (sensor_id)
		);

		CREATE TABLE IF NOT EXISTS config_templates (
			id		BIGSERIAL	PRIMARY KEY,
			config_name	TEXT		NOT NULL,
			sensor_id	TEXT		NULL,
			sensor_type	TEXT		NULL,
			priority	INT		NOT NULL DEFAULT 100,
			is_active	BOOLEAN		NOT NULL DEFAULT TRUE,
			version		INT		NOT NULL DEFAULT 1,
			config_data	JSONB		NOT NULL,
			created_on	timestamp with time zone NOT NULL DEFAULT CURRENT_TIMESTAMP,
			modified_on	timestamp with time zone NOT NULL DEFAULT CURRENT_TIMESTAMP
		);

		CREATE INDEX IF NOT EXISTS idx_config_templates_sensor_id ON config_templates (sensor_id) WHERE sensor_id IS NOT NULL;
		CREATE INDEX IF NOT EXISTS idx_config_templates_sensor_type ON config_templates (sensor_type) WHERE sensor_type IS NOT NULL;

		CREATE TABLE IF NOT EXISTS command_queue (
			id		BIGSERIAL	PRIMARY KEY,
			sensor_id	TEXT		NOT NULL,
			command_type	TEXT		NOT NULL,
			command_data	JSONB		NOT NULL DEFAULT '{}',
			priority	INT		NOT NULL DEFAULT 100,
			status		TEXT		NOT NULL DEFAULT 'pending',
			created_at	timestamp with time zone NOT NULL DEFAULT CURRENT_TIMESTAMP,
			delivered_at	timestamp with time zone NULL,
			completed_at	timestamp with time zone NULL,
			expires_at	timestamp with time zone NULL,
			result_message	TEXT		NOT NULL DEFAULT ''
		);

		CREATE INDEX IF NOT EXISTS idx_command_queue_delivery ON command_queue (sensor_id, status, priority, created_at);

		CREATE TABLE IF NOT EXISTS scripts (
			id		BIGSERIAL	PRIMARY KEY,
			sensor_id	TEXT		NOT NULL,
			name		TEXT		NOT NULL DEFAULT '',
			content		TEXT		NOT NULL,
			version		TEXT		NOT NULL,
			description	TEXT		NOT NULL DEFAULT '',
			is_current	BOOLEAN		NOT NULL DEFAULT TRUE,
			uploaded_at	timestamp with time zone NOT NULL DEFAULT CURRENT_TIMESTAMP
		);

		CREATE INDEX IF NOT EXISTS idx_scripts_current ON scripts (sensor_id) WHERE is_current;
	`)
	if err != nil {
		return fmt.Errorf("could not create tables: %w", err)
	}

	return nil
}
