package configs

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/brewmetrics/sensor-master/internal/pkg/infrastructure/storage"
	"github.com/brewmetrics/sensor-master/pkg/types"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/tracing"
	"go.opentelemetry.io/otel"
)

var tracer = otel.Tracer("sensor-master/configs")

var ErrUnknownDevice = fmt.Errorf("unknown device")
var ErrTemplateNotFound = fmt.Errorf("config template not found")
var ErrInvalidTargeting = fmt.Errorf("template targets both a sensor id and a sensor type")

// Resolution is the outcome of resolving the effective config for a device.
type Resolution struct {
	Available  bool
	Changed    bool
	Hash       string
	Name       string
	Version    int
	TemplateID int64
	Config     json.RawMessage
}

// PollingInterval reads polling_interval out of the effective config, falling
// back to def when the config is absent or does not carry one.
func (r Resolution) PollingInterval(def int) int {
	if !r.Available {
		return def
	}

	var envelope struct {
		PollingInterval int `json:"polling_interval"`
	}

	if err := json.Unmarshal(r.Config, &envelope); err != nil || envelope.PollingInterval <= 0 {
		return def
	}

	return envelope.PollingInterval
}

//go:generate moq -rm -out templaterepository_mock.go . TemplateRepository
type TemplateRepository interface {
	GetDevice(ctx context.Context, conditions ...storage.ConditionFunc) (types.Device, error)
	AddConfigTemplate(ctx context.Context, template types.ConfigTemplate) (int64, error)
	UpdateConfigTemplate(ctx context.Context, template types.ConfigTemplate) error
	GetConfigTemplate(ctx context.Context, conditions ...storage.ConditionFunc) (types.ConfigTemplate, error)
	QueryConfigTemplates(ctx context.Context, conditions ...storage.ConditionFunc) (types.Collection[types.ConfigTemplate], error)
	DeleteConfigTemplate(ctx context.Context, id int64) error
}

//go:generate moq -rm -out configservice_mock.go . ConfigService
type ConfigService interface {
	Resolve(ctx context.Context, sensorID, deviceLastHash string) (Resolution, error)

	Create(ctx context.Context, template types.ConfigTemplate) (types.ConfigTemplate, error)
	Update(ctx context.Context, template types.ConfigTemplate) (types.ConfigTemplate, error)
	Get(ctx context.Context, id int64) (types.ConfigTemplate, error)
	Query(ctx context.Context, conditions ...storage.ConditionFunc) (types.Collection[types.ConfigTemplate], error)
	Delete(ctx context.Context, id int64) error
}

type service struct {
	storage TemplateRepository
}

func New(s TemplateRepository) ConfigService {
	return &service{storage: s}
}

// Resolve picks the effective config template for a device: the first
// non-empty tier of device-specific, type-wide and default templates, ordered
// within the tier by ascending priority with version and id as tie-breaks.
// The device row is never mutated here; persisting the delivered hash is the
// endpoint layer's job.
func (svc *service) Resolve(ctx context.Context, sensorID, deviceLastHash string) (Resolution, error) {
	var err error
	ctx, span := tracer.Start(ctx, "resolve-config")
	defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()

	device, err := svc.storage.GetDevice(ctx, storage.WithSensorID(sensorID))
	if err != nil {
		if errors.Is(err, storage.ErrNoRows) {
			return Resolution{}, ErrUnknownDevice
		}
		return Resolution{}, err
	}

	tiers := [][]storage.ConditionFunc{
		{storage.WithActive(true), storage.WithTargetSensorID(device.SensorID)},
	}
	if device.SensorType != "" {
		tiers = append(tiers, []storage.ConditionFunc{storage.WithActive(true), storage.WithTargetSensorType(device.SensorType)})
	}
	tiers = append(tiers, []storage.ConditionFunc{storage.WithActive(true), storage.WithDefaultTarget()})

	for _, tier := range tiers {
		var collection types.Collection[types.ConfigTemplate]

		collection, err = svc.storage.QueryConfigTemplates(ctx, append(tier, storage.WithLimit(1))...)
		if err != nil {
			return Resolution{}, err
		}
		if len(collection.Data) == 0 {
			continue
		}

		template := collection.Data[0]

		var hash string

		hash, err = ContentHash(template.ConfigData)
		if err != nil {
			err = fmt.Errorf("could not hash config %d: %w", template.ID, err)
			return Resolution{}, err
		}

		return Resolution{
			Available:  true,
			Changed:    deviceLastHash != hash,
			Hash:       hash,
			Name:       template.ConfigName,
			Version:    template.Version,
			TemplateID: template.ID,
			Config:     template.ConfigData,
		}, nil
	}

	return Resolution{Available: false, Changed: deviceLastHash != "", Hash: ""}, nil
}

func (svc *service) Create(ctx context.Context, template types.ConfigTemplate) (types.ConfigTemplate, error) {
	err := validateTemplate(template)
	if err != nil {
		return types.ConfigTemplate{}, err
	}

	id, err := svc.storage.AddConfigTemplate(ctx, template)
	if err != nil {
		return types.ConfigTemplate{}, err
	}

	return svc.Get(ctx, id)
}

func (svc *service) Update(ctx context.Context, template types.ConfigTemplate) (types.ConfigTemplate, error) {
	err := validateTemplate(template)
	if err != nil {
		return types.ConfigTemplate{}, err
	}

	err = svc.storage.UpdateConfigTemplate(ctx, template)
	if err != nil {
		if errors.Is(err, storage.ErrNoRows) {
			return types.ConfigTemplate{}, ErrTemplateNotFound
		}
		return types.ConfigTemplate{}, err
	}

	return svc.Get(ctx, template.ID)
}

func (svc *service) Get(ctx context.Context, id int64) (types.ConfigTemplate, error) {
	template, err := svc.storage.GetConfigTemplate(ctx, storage.WithID(id))
	if err != nil {
		if errors.Is(err, storage.ErrNoRows) {
			return types.ConfigTemplate{}, ErrTemplateNotFound
		}
		return types.ConfigTemplate{}, err
	}

	return template, nil
}

func (svc *service) Query(ctx context.Context, conditions ...storage.ConditionFunc) (types.Collection[types.ConfigTemplate], error) {
	return svc.storage.QueryConfigTemplates(ctx, conditions...)
}

func (svc *service) Delete(ctx context.Context, id int64) error {
	err := svc.storage.DeleteConfigTemplate(ctx, id)
	if errors.Is(err, storage.ErrNoRows) {
		return ErrTemplateNotFound
	}

	return err
}

func validateTemplate(template types.ConfigTemplate) error {
	if template.SensorID != nil && template.SensorType != nil {
		return ErrInvalidTargeting
	}
	if _, err := Canonicalize(template.ConfigData); err != nil {
		return fmt.Errorf("invalid config_data: %w", err)
	}

	return nil
}
