package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/brewmetrics/sensor-master/pkg/types"
	"github.com/jackc/pgx/v5"
)

func (s *Storage) UpsertDevice(ctx context.Context, device types.Device) error {
	capabilities, _ := json.Marshal(device.Capabilities)

	args := pgx.NamedArgs{
		"sensor_id":        device.SensorID,
		"sensor_type":      device.SensorType,
		"sensor_name":      device.SensorName,
		"hardware_info":    device.HardwareInfo,
		"firmware_version": device.FirmwareVersion,
		"ip_address":       device.IPAddress,
		"mac_address":      device.MACAddress,
		"capabilities":     string(capabilities),
		"last_check_in":    device.LastCheckIn,
	}

	_, err := s.db(ctx).Exec(ctx, `
		INSERT INTO devices (sensor_id, sensor_type, sensor_name, hardware_info, firmware_version, ip_address, mac_address, capabilities, last_check_in)
		VALUES (@sensor_id, @sensor_type, @sensor_name, @hardware_info, @firmware_version, @ip_address, @mac_address, @capabilities, @last_check_in)
		ON CONFLICT (sensor_id) DO UPDATE
		SET sensor_type = EXCLUDED.sensor_type,
			sensor_name = EXCLUDED.sensor_name,
			hardware_info = EXCLUDED.hardware_info,
			firmware_version = EXCLUDED.firmware_version,
			ip_address = EXCLUDED.ip_address,
			mac_address = EXCLUDED.mac_address,
			capabilities = EXCLUDED.capabilities,
			last_check_in = GREATEST(devices.last_check_in, EXCLUDED.last_check_in),
			modified_on = CURRENT_TIMESTAMP
	`, args)
	if err != nil {
		return fmt.Errorf("%w: %s", ErrStoreFailed, err.Error())
	}

	return nil
}

// TouchDevice advances last_check_in (monotonic max) and stores the latest
// reported metrics, if any.
func (s *Storage) TouchDevice(ctx context.Context, sensorID string, at time.Time, metrics json.RawMessage) error {
	args := pgx.NamedArgs{
		"sensor_id": sensorID,
		"at":        at,
	}

	if len(metrics) > 0 {
		args["metrics"] = string(metrics)
	} else {
		args["metrics"] = nil
	}

	tag, err := s.db(ctx).Exec(ctx, `
		UPDATE devices
		SET last_check_in = GREATEST(last_check_in, @at),
			metrics = COALESCE(@metrics, metrics),
			modified_on = CURRENT_TIMESTAMP
		WHERE sensor_id = @sensor_id
	`, args)
	if err != nil {
		return fmt.Errorf("%w: %s", ErrStoreFailed, err.Error())
	}
	if tag.RowsAffected() == 0 {
		return ErrNoRows
	}

	return nil
}

func (s *Storage) SetDeviceConfigHash(ctx context.Context, sensorID, hash string) error {
	tag, err := s.db(ctx).Exec(ctx, `
		UPDATE devices SET last_config_hash = @hash, modified_on = CURRENT_TIMESTAMP
		WHERE sensor_id = @sensor_id
	`, pgx.NamedArgs{"sensor_id": sensorID, "hash": hash})
	if err != nil {
		return fmt.Errorf("%w: %s", ErrStoreFailed, err.Error())
	}
	if tag.RowsAffected() == 0 {
		return ErrNoRows
	}

	return nil
}

func (s *Storage) SetDeviceScriptReport(ctx context.Context, sensorID string, executedAt *time.Time, version string, scriptID int64) error {
	args := pgx.NamedArgs{
		"sensor_id": sensorID,
		"version":   version,
		"script_id": scriptID,
	}

	if executedAt != nil {
		args["executed_at"] = *executedAt
	} else {
		args["executed_at"] = nil
	}

	tag, err := s.db(ctx).Exec(ctx, `
		UPDATE devices
		SET last_script_execution = COALESCE(@executed_at, last_script_execution),
			reported_script_version = CASE WHEN @version = '' THEN reported_script_version ELSE @version END,
			reported_script_id = CASE WHEN @script_id = 0 THEN reported_script_id ELSE @script_id END,
			modified_on = CURRENT_TIMESTAMP
		WHERE sensor_id = @sensor_id
	`, args)
	if err != nil {
		return fmt.Errorf("%w: %s", ErrStoreFailed, err.Error())
	}
	if tag.RowsAffected() == 0 {
		return ErrNoRows
	}

	return nil
}

const deviceColumns = `sensor_id, sensor_type, sensor_name, hardware_info, firmware_version, ip_address, mac_address, capabilities, metrics, last_check_in, last_config_hash, last_script_execution, reported_script_version, reported_script_id, created_on, modified_on`

func scanDevice(row pgx.Row) (types.Device, error) {
	var device types.Device
	var capabilities, metrics []byte

	err := row.Scan(
		&device.SensorID, &device.SensorType, &device.SensorName, &device.HardwareInfo,
		&device.FirmwareVersion, &device.IPAddress, &device.MACAddress, &capabilities,
		&metrics, &device.LastCheckIn, &device.LastConfigHash, &device.LastScriptExecution,
		&device.ReportedScriptVersion, &device.ReportedScriptID, &device.CreatedOn, &device.ModifiedOn,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return types.Device{}, ErrNoRows
		}
		return types.Device{}, err
	}

	json.Unmarshal(capabilities, &device.Capabilities)
	device.Metrics = metrics

	return device, nil
}

func (s *Storage) GetDevice(ctx context.Context, conditions ...ConditionFunc) (types.Device, error) {
	condition := newCondition(conditions...)

	query := fmt.Sprintf(`SELECT %s FROM devices WHERE %s`, deviceColumns, condition.Where())

	return scanDevice(s.db(ctx).QueryRow(ctx, query, condition.NamedArgs()))
}

func (s *Storage) QueryDevices(ctx context.Context, conditions ...ConditionFunc) (types.Collection[types.Device], error) {
	condition := newCondition(conditions...)

	args := condition.NamedArgs()
	condition.applyOffsetLimit(args)

	query := fmt.Sprintf(`
		SELECT %s, count(*) OVER () AS total
		FROM devices
		WHERE %s
		ORDER BY sensor_id ASC
		%s
	`, deviceColumns, condition.Where(), condition.OffsetLimit())

	rows, err := s.db(ctx).Query(ctx, query, args)
	if err != nil {
		return types.Collection[types.Device]{}, fmt.Errorf("%w: %s", ErrQueryRow, err.Error())
	}
	defer rows.Close()

	var total int64
	devices := []types.Device{}

	for rows.Next() {
		var device types.Device
		var capabilities, metrics []byte

		err := rows.Scan(
			&device.SensorID, &device.SensorType, &device.SensorName, &device.HardwareInfo,
			&device.FirmwareVersion, &device.IPAddress, &device.MACAddress, &capabilities,
			&metrics, &device.LastCheckIn, &device.LastConfigHash, &device.LastScriptExecution,
			&device.ReportedScriptVersion, &device.ReportedScriptID, &device.CreatedOn, &device.ModifiedOn,
			&total,
		)
		if err != nil {
			return types.Collection[types.Device]{}, err
		}

		json.Unmarshal(capabilities, &device.Capabilities)
		device.Metrics = metrics

		devices = append(devices, device)
	}

	return types.Collection[types.Device]{
		Data:       devices,
		Count:      uint64(len(devices)),
		Offset:     condition.Offset(),
		Limit:      condition.Limit(),
		TotalCount: uint64(total),
	}, nil
}

// DeleteDevice removes the device together with its queued commands and
// scripts in one transaction, so a failure partway through leaves everything
// in place.
func (s *Storage) DeleteDevice(ctx context.Context, sensorID string) error {
	args := pgx.NamedArgs{"sensor_id": sensorID}

	return s.WithTx(ctx, func(ctx context.Context) error {
		db := s.db(ctx)

		_, err := db.Exec(ctx, `DELETE FROM command_queue WHERE sensor_id = @sensor_id`, args)
		if err != nil {
			return fmt.Errorf("%w: %s", ErrStoreFailed, err.Error())
		}

		_, err = db.Exec(ctx, `DELETE FROM scripts WHERE sensor_id = @sensor_id`, args)
		if err != nil {
			return fmt.Errorf("%w: %s", ErrStoreFailed, err.Error())
		}

		tag, err := db.Exec(ctx, `DELETE FROM devices WHERE sensor_id = @sensor_id`, args)
		if err != nil {
			return fmt.Errorf("%w: %s", ErrStoreFailed, err.Error())
		}
		if tag.RowsAffected() == 0 {
			return ErrNoRows
		}

		return nil
	})
}
