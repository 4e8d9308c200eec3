package storage

import (
	"context"
	"errors"
	"fmt"

	"github.com/brewmetrics/sensor-master/pkg/types"
	"github.com/jackc/pgx/v5"
)

const scriptColumns = `id, sensor_id, name, content, version, description, is_current, uploaded_at`

// AssignScript inserts a new script row and demotes any prior current script
// for the same sensor. Wrap in WithTx for atomicity.
func (s *Storage) AssignScript(ctx context.Context, script types.Script) (types.Script, error) {
	db := s.db(ctx)

	_, err := db.Exec(ctx,
		`UPDATE scripts SET is_current = FALSE WHERE sensor_id = @sensor_id AND is_current`,
		pgx.NamedArgs{"sensor_id": script.SensorID})
	if err != nil {
		return types.Script{}, fmt.Errorf("%w: %s", ErrStoreFailed, err.Error())
	}

	args := pgx.NamedArgs{
		"sensor_id":   script.SensorID,
		"name":        script.Name,
		"content":     script.Content,
		"version":     script.Version,
		"description": script.Description,
	}

	err = db.QueryRow(ctx, `
		INSERT INTO scripts (sensor_id, name, content, version, description, is_current)
		VALUES (@sensor_id, @name, @content, @version, @description, TRUE)
		RETURNING id, uploaded_at
	`, args).Scan(&script.ID, &script.UploadedAt)
	if err != nil {
		return types.Script{}, fmt.Errorf("%w: %s", ErrStoreFailed, err.Error())
	}

	script.Current = true

	return script, nil
}

func scanScript(row pgx.Row) (types.Script, error) {
	var script types.Script

	err := row.Scan(&script.ID, &script.SensorID, &script.Name, &script.Content,
		&script.Version, &script.Description, &script.Current, &script.UploadedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return types.Script{}, ErrNoRows
		}
		return types.Script{}, err
	}

	return script, nil
}

func (s *Storage) GetCurrentScript(ctx context.Context, sensorID string) (types.Script, error) {
	query := fmt.Sprintf(`SELECT %s FROM scripts WHERE sensor_id = @sensor_id AND is_current`, scriptColumns)

	return scanScript(s.db(ctx).QueryRow(ctx, query, pgx.NamedArgs{"sensor_id": sensorID}))
}

func (s *Storage) GetScript(ctx context.Context, conditions ...ConditionFunc) (types.Script, error) {
	condition := newCondition(conditions...)

	query := fmt.Sprintf(`SELECT %s FROM scripts WHERE %s`, scriptColumns, condition.Where())

	return scanScript(s.db(ctx).QueryRow(ctx, query, condition.NamedArgs()))
}

func (s *Storage) QueryScripts(ctx context.Context, conditions ...ConditionFunc) (types.Collection[types.Script], error) {
	condition := newCondition(conditions...)

	args := condition.NamedArgs()
	condition.applyOffsetLimit(args)

	query := fmt.Sprintf(`
		SELECT %s, count(*) OVER () AS total
		FROM scripts
		WHERE %s
		ORDER BY uploaded_at DESC, id DESC
		%s
	`, scriptColumns, condition.Where(), condition.OffsetLimit())

	rows, err := s.db(ctx).Query(ctx, query, args)
	if err != nil {
		return types.Collection[types.Script]{}, fmt.Errorf("%w: %s", ErrQueryRow, err.Error())
	}
	defer rows.Close()

	var total int64
	scripts := []types.Script{}

	for rows.Next() {
		var script types.Script

		err := rows.Scan(&script.ID, &script.SensorID, &script.Name, &script.Content,
			&script.Version, &script.Description, &script.Current, &script.UploadedAt, &total)
		if err != nil {
			return types.Collection[types.Script]{}, err
		}

		scripts = append(scripts, script)
	}

	return types.Collection[types.Script]{
		Data:       scripts,
		Count:      uint64(len(scripts)),
		Offset:     condition.Offset(),
		Limit:      condition.Limit(),
		TotalCount: uint64(total),
	}, nil
}

func (s *Storage) DeleteScript(ctx context.Context, id int64) error {
	tag, err := s.db(ctx).Exec(ctx, `DELETE FROM scripts WHERE id = @id`, pgx.NamedArgs{"id": id})
	if err != nil {
		return fmt.Errorf("%w: %s", ErrStoreFailed, err.Error())
	}
	if tag.RowsAffected() == 0 {
		return ErrNoRows
	}

	return nil
}
