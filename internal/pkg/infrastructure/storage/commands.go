package storage

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/brewmetrics/sensor-master/pkg/types"
	"github.com/jackc/pgx/v5"
)

const commandColumns = `id, sensor_id, command_type, command_data, priority, status, created_at, delivered_at, completed_at, expires_at, result_message`

func (s *Storage) AddCommand(ctx context.Context, command types.Command) (int64, error) {
	data := string(command.CommandData)
	if data == "" {
		data = "{}"
	}

	args := pgx.NamedArgs{
		"sensor_id":    command.SensorID,
		"command_type": command.CommandType,
		"command_data": data,
		"priority":     command.Priority,
		"expires_at":   command.ExpiresAt,
	}

	var id int64

	err := s.db(ctx).QueryRow(ctx, `
		INSERT INTO command_queue (sensor_id, command_type, command_data, priority, expires_at)
		VALUES (@sensor_id, @command_type, @command_data, @priority, @expires_at)
		RETURNING id
	`, args).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("%w: %s", ErrStoreFailed, err.Error())
	}

	return id, nil
}

// ExpireCommands moves pending and delivered entries whose expiry has passed
// into the terminal expired state.
func (s *Storage) ExpireCommands(ctx context.Context, sensorID string, now time.Time) error {
	_, err := s.db(ctx).Exec(ctx, `
		UPDATE command_queue
		SET status = 'expired', completed_at = @now
		WHERE sensor_id = @sensor_id
			AND status IN ('pending', 'delivered')
			AND expires_at IS NOT NULL AND expires_at <= @now
	`, pgx.NamedArgs{"sensor_id": sensorID, "now": now})
	if err != nil {
		return fmt.Errorf("%w: %s", ErrStoreFailed, err.Error())
	}

	return nil
}

// SelectCommandsForDelivery atomically marks up to limit pending commands as
// delivered and returns them in (priority, created_at) order.
func (s *Storage) SelectCommandsForDelivery(ctx context.Context, sensorID string, now time.Time, limit int) ([]types.Command, error) {
	args := pgx.NamedArgs{
		"sensor_id": sensorID,
		"now":       now,
		"limit":     limit,
	}

	rows, err := s.db(ctx).Query(ctx, fmt.Sprintf(`
		UPDATE command_queue
		SET status = 'delivered', delivered_at = @now
		WHERE id IN (
			SELECT id FROM command_queue
			WHERE sensor_id = @sensor_id AND status = 'pending'
			ORDER BY priority ASC, created_at ASC
			LIMIT @limit
			FOR UPDATE SKIP LOCKED
		)
		RETURNING %s
	`, commandColumns), args)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrStoreFailed, err.Error())
	}
	defer rows.Close()

	commands, err := scanCommands(rows)
	if err != nil {
		return nil, err
	}

	// UPDATE ... RETURNING does not preserve the subselect ordering
	sort.SliceStable(commands, func(i, j int) bool {
		if commands[i].Priority != commands[j].Priority {
			return commands[i].Priority < commands[j].Priority
		}
		return commands[i].CreatedAt.Before(commands[j].CreatedAt)
	})

	return commands, nil
}

// AcknowledgeCommand transitions a delivered command to completed or failed.
// Only delivered commands transition: a command the device never received
// stays pending, and commands already in a terminal state are left untouched.
// Unknown or foreign ids yield ErrNoRows.
func (s *Storage) AcknowledgeCommand(ctx context.Context, sensorID string, commandID int64, status, message string, now time.Time) error {
	args := pgx.NamedArgs{
		"id":        commandID,
		"sensor_id": sensorID,
		"status":    status,
		"message":   message,
		"now":       now,
	}

	tag, err := s.db(ctx).Exec(ctx, `
		UPDATE command_queue
		SET status = @status, completed_at = @now, result_message = @message
		WHERE id = @id AND sensor_id = @sensor_id AND status = 'delivered'
	`, args)
	if err != nil {
		return fmt.Errorf("%w: %s", ErrStoreFailed, err.Error())
	}

	if tag.RowsAffected() == 0 {
		var existing string
		err = s.db(ctx).QueryRow(ctx,
			`SELECT status FROM command_queue WHERE id = @id AND sensor_id = @sensor_id`,
			pgx.NamedArgs{"id": commandID, "sensor_id": sensorID},
		).Scan(&existing)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return ErrNoRows
			}
			return fmt.Errorf("%w: %s", ErrQueryRow, err.Error())
		}
		// not in delivered state: either terminal (ack retries are safe)
		// or still pending, which means the device is acking a command it
		// was never handed - ignore rather than skip the delivery step
	}

	return nil
}

func scanCommands(rows pgx.Rows) ([]types.Command, error) {
	commands := []types.Command{}

	for rows.Next() {
		var c types.Command
		var commandData []byte

		err := rows.Scan(&c.ID, &c.SensorID, &c.CommandType, &commandData, &c.Priority, &c.Status,
			&c.CreatedAt, &c.DeliveredAt, &c.CompletedAt, &c.ExpiresAt, &c.ResultMessage)
		if err != nil {
			return nil, err
		}

		c.CommandData = commandData
		commands = append(commands, c)
	}

	return commands, rows.Err()
}

func (s *Storage) GetCommand(ctx context.Context, conditions ...ConditionFunc) (types.Command, error) {
	condition := newCondition(conditions...)

	var c types.Command
	var commandData []byte

	query := fmt.Sprintf(`SELECT %s FROM command_queue WHERE %s`, commandColumns, condition.Where())

	err := s.db(ctx).QueryRow(ctx, query, condition.NamedArgs()).Scan(
		&c.ID, &c.SensorID, &c.CommandType, &commandData, &c.Priority, &c.Status,
		&c.CreatedAt, &c.DeliveredAt, &c.CompletedAt, &c.ExpiresAt, &c.ResultMessage)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return types.Command{}, ErrNoRows
		}
		return types.Command{}, err
	}

	c.CommandData = commandData

	return c, nil
}

func (s *Storage) QueryCommands(ctx context.Context, conditions ...ConditionFunc) (types.Collection[types.Command], error) {
	condition := newCondition(conditions...)

	args := condition.NamedArgs()
	condition.applyOffsetLimit(args)

	query := fmt.Sprintf(`
		SELECT %s, count(*) OVER () AS total
		FROM command_queue
		WHERE %s
		ORDER BY priority ASC, created_at ASC
		%s
	`, commandColumns, condition.Where(), condition.OffsetLimit())

	rows, err := s.db(ctx).Query(ctx, query, args)
	if err != nil {
		return types.Collection[types.Command]{}, fmt.Errorf("%w: %s", ErrQueryRow, err.Error())
	}
	defer rows.Close()

	var total int64
	commands := []types.Command{}

	for rows.Next() {
		var c types.Command
		var commandData []byte

		err := rows.Scan(&c.ID, &c.SensorID, &c.CommandType, &commandData, &c.Priority, &c.Status,
			&c.CreatedAt, &c.DeliveredAt, &c.CompletedAt, &c.ExpiresAt, &c.ResultMessage, &total)
		if err != nil {
			return types.Collection[types.Command]{}, err
		}

		c.CommandData = commandData
		commands = append(commands, c)
	}

	return types.Collection[types.Command]{
		Data:       commands,
		Count:      uint64(len(commands)),
		Offset:     condition.Offset(),
		Limit:      condition.Limit(),
		TotalCount: uint64(total),
	}, nil
}

// DeleteTerminalCommands garbage collects completed, failed and expired
// entries older than the retention cutoff.
func (s *Storage) DeleteTerminalCommands(ctx context.Context, olderThan time.Time) (int64, error) {
	tag, err := s.db(ctx).Exec(ctx, `
		DELETE FROM command_queue
		WHERE status IN ('completed', 'failed', 'expired')
			AND COALESCE(completed_at, created_at) < @older_than
	`, pgx.NamedArgs{"older_than": olderThan})
	if err != nil {
		return 0, fmt.Errorf("%w: %s", ErrStoreFailed, err.Error())
	}

	return tag.RowsAffected(), nil
}

func (s *Storage) DeleteCommand(ctx context.Context, id int64) error {
	tag, err := s.db(ctx).Exec(ctx, `DELETE FROM command_queue WHERE id = @id`, pgx.NamedArgs{"id": id})
	if err != nil {
		return fmt.Errorf("%w: %s", ErrStoreFailed, err.Error())
	}
	if tag.RowsAffected() == 0 {
		return ErrNoRows
	}

	return nil
}
