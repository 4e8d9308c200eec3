package storage

import (
	"context"
	"errors"
	"fmt"

	"github.com/brewmetrics/sensor-master/pkg/types"
	"github.com/jackc/pgx/v5"
)

const configColumns = `id, config_name, sensor_id, sensor_type, priority, is_active, version, config_data, created_on, modified_on`

func (s *Storage) AddConfigTemplate(ctx context.Context, template types.ConfigTemplate) (int64, error) {
	args := pgx.NamedArgs{
		"config_name": template.ConfigName,
		"sensor_id":   template.SensorID,
		"sensor_type": template.SensorType,
		"priority":    template.Priority,
		"is_active":   template.IsActive,
		"config_data": string(template.ConfigData),
	}

	var id int64

	err := s.db(ctx).QueryRow(ctx, `
		INSERT INTO config_templates (config_name, sensor_id, sensor_type, priority, is_active, config_data)
		VALUES (@config_name, @sensor_id, @sensor_type, @priority, @is_active, @config_data)
		RETURNING id
	`, args).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("%w: %s", ErrStoreFailed, err.Error())
	}

	return id, nil
}

// UpdateConfigTemplate replaces the mutable fields of a template and bumps
// its version.
func (s *Storage) UpdateConfigTemplate(ctx context.Context, template types.ConfigTemplate) error {
	args := pgx.NamedArgs{
		"id":          template.ID,
		"config_name": template.ConfigName,
		"sensor_id":   template.SensorID,
		"sensor_type": template.SensorType,
		"priority":    template.Priority,
		"is_active":   template.IsActive,
		"config_data": string(template.ConfigData),
	}

	tag, err := s.db(ctx).Exec(ctx, `
		UPDATE config_templates
		SET config_name = @config_name,
			sensor_id = @sensor_id,
			sensor_type = @sensor_type,
			priority = @priority,
			is_active = @is_active,
			config_data = @config_data,
			version = version + 1,
			modified_on = CURRENT_TIMESTAMP
		WHERE id = @id
	`, args)
	if err != nil {
		return fmt.Errorf("%w: %s", ErrStoreFailed, err.Error())
	}
	if tag.RowsAffected() == 0 {
		return ErrNoRows
	}

	return nil
}

func scanConfigTemplate(row pgx.Row) (types.ConfigTemplate, error) {
	var t types.ConfigTemplate
	var configData []byte

	err := row.Scan(&t.ID, &t.ConfigName, &t.SensorID, &t.SensorType, &t.Priority, &t.IsActive, &t.Version, &configData, &t.CreatedOn, &t.ModifiedOn)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return types.ConfigTemplate{}, ErrNoRows
		}
		return types.ConfigTemplate{}, err
	}

	t.ConfigData = configData

	return t, nil
}

func (s *Storage) GetConfigTemplate(ctx context.Context, conditions ...ConditionFunc) (types.ConfigTemplate, error) {
	condition := newCondition(conditions...)

	query := fmt.Sprintf(`SELECT %s FROM config_templates WHERE %s`, configColumns, condition.Where())

	return scanConfigTemplate(s.db(ctx).QueryRow(ctx, query, condition.NamedArgs()))
}

// QueryConfigTemplates returns templates ordered by the resolver's total
// tie-break: priority ascending, then version and id descending.
func (s *Storage) QueryConfigTemplates(ctx context.Context, conditions ...ConditionFunc) (types.Collection[types.ConfigTemplate], error) {
	condition := newCondition(conditions...)

	args := condition.NamedArgs()
	condition.applyOffsetLimit(args)

	query := fmt.Sprintf(`
		SELECT %s, count(*) OVER () AS total
		FROM config_templates
		WHERE %s
		ORDER BY priority ASC, version DESC, id DESC
		%s
	`, configColumns, condition.Where(), condition.OffsetLimit())

	rows, err := s.db(ctx).Query(ctx, query, args)
	if err != nil {
		return types.Collection[types.ConfigTemplate]{}, fmt.Errorf("%w: %s", ErrQueryRow, err.Error())
	}
	defer rows.Close()

	var total int64
	templates := []types.ConfigTemplate{}

	for rows.Next() {
		var t types.ConfigTemplate
		var configData []byte

		err := rows.Scan(&t.ID, &t.ConfigName, &t.SensorID, &t.SensorType, &t.Priority, &t.IsActive, &t.Version, &configData, &t.CreatedOn, &t.ModifiedOn, &total)
		if err != nil {
			return types.Collection[types.ConfigTemplate]{}, err
		}

		t.ConfigData = configData
		templates = append(templates, t)
	}

	return types.Collection[types.ConfigTemplate]{
		Data:       templates,
		Count:      uint64(len(templates)),
		Offset:     condition.Offset(),
		Limit:      condition.Limit(),
		TotalCount: uint64(total),
	}, nil
}

func (s *Storage) DeleteConfigTemplate(ctx context.Context, id int64) error {
	tag, err := s.db(ctx).Exec(ctx, `DELETE FROM config_templates WHERE id = @id`, pgx.NamedArgs{"id": id})
	if err != nil {
		return fmt.Errorf("%w: %s", ErrStoreFailed, err.Error())
	}
	if tag.RowsAffected() == 0 {
		return ErrNoRows
	}

	return nil
}
