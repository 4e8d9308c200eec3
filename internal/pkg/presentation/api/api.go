package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/brewmetrics/sensor-master/internal/pkg/application/commands"
	"github.com/brewmetrics/sensor-master/internal/pkg/application/configs"
	"github.com/brewmetrics/sensor-master/internal/pkg/application/registry"
	"github.com/brewmetrics/sensor-master/internal/pkg/application/scripts"
	"github.com/brewmetrics/sensor-master/internal/pkg/application/sensormaster"
	"github.com/brewmetrics/sensor-master/internal/pkg/application/telemetry"
	"github.com/brewmetrics/sensor-master/internal/pkg/infrastructure/storage"
	"github.com/brewmetrics/sensor-master/pkg/types"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/logging"
	"github.com/go-chi/chi/v5"
	"go.opentelemetry.io/otel"
)

var tracer = otel.Tracer("sensor-master/api")

type Services struct {
	Protocol  sensormaster.SensorMaster
	Registry  registry.Registry
	Configs   configs.ConfigService
	Commands  commands.CommandQueue
	Scripts   scripts.ScriptRegistry
	Telemetry telemetry.Ingest

	Master types.MasterInstance

	// ScriptConfig drives the derived execution status in admin listings.
	ScriptConfig scripts.Config
}

func RegisterHandlers(ctx context.Context, router *chi.Mux, svcs Services) (*chi.Mux, error) {
	router.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})

	log := logging.GetFromContext(ctx)

	router.Route("/api/sensor-master", func(r chi.Router) {
		// device-facing protocol
		r.Post("/register", registerHandler(log, svcs.Protocol))
		r.Get("/config/{sensorID}", getConfigHandler(log, svcs.Protocol))
		r.Post("/heartbeat", heartbeatHandler(log, svcs.Protocol))
		r.Get("/script/{sensorID}", getScriptHandler(log, svcs.Protocol))
		r.Post("/script-executed", scriptExecutedHandler(log, svcs.Protocol))
		r.Post("/report-version", reportVersionHandler(log, svcs.Protocol))
		r.Post("/data", telemetryHandler(log, svcs.Telemetry))

		// operator-facing admin API
		r.Get("/instances", instancesHandler(log, svcs.Master))

		r.Route("/sensors", func(r chi.Router) {
			r.Get("/", querySensorsHandler(log, svcs))
			r.Post("/", createSensorHandler(log, svcs.Registry))
			r.Get("/{sensorID}", getSensorHandler(log, svcs))
			r.Delete("/{sensorID}", deleteSensorHandler(log, svcs.Registry))
		})

		r.Route("/configs", func(r chi.Router) {
			r.Get("/", queryConfigsHandler(log, svcs.Configs))
			r.Post("/", createConfigHandler(log, svcs.Configs))
			r.Get("/{configID}", getConfigTemplateHandler(log, svcs.Configs))
			r.Put("/{configID}", updateConfigHandler(log, svcs.Configs))
			r.Delete("/{configID}", deleteConfigHandler(log, svcs.Configs))
		})

		r.Route("/commands", func(r chi.Router) {
			r.Get("/", queryCommandsHandler(log, svcs.Commands))
			r.Post("/", enqueueCommandHandler(log, svcs.Commands))
			r.Get("/{commandID}", getCommandHandler(log, svcs.Commands))
			r.Delete("/{commandID}", deleteCommandHandler(log, svcs.Commands))
		})

		r.Route("/scripts", func(r chi.Router) {
			r.Get("/", queryScriptsHandler(log, svcs.Scripts))
			r.Post("/", assignScriptHandler(log, svcs.Scripts))
			r.Get("/{scriptID}", getScriptByIDHandler(log, svcs.Scripts))
			r.Delete("/{scriptID}", deleteScriptHandler(log, svcs.Scripts))
		})
	})

	return router, nil
}

type apiError struct {
	Code    string `json:"code"`
	Message string `json:"message,omitempty"`
}

func writeJSON(w http.ResponseWriter, statusCode int, v any) {
	b, err := json.Marshal(v)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.Header().Add("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	w.Write(b)
}

// writeError maps the application error taxonomy onto HTTP status codes.
// Retryable storage failures come back as 503 with a retry hint so devices
// back off and try again.
func writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, sensormaster.ErrBadRequest),
		errors.Is(err, configs.ErrInvalidTargeting),
		errors.Is(err, commands.ErrInvalidCommand),
		errors.Is(err, scripts.ErrInvalidScript),
		errors.Is(err, telemetry.ErrInvalidSample):
		writeJSON(w, http.StatusBadRequest, apiError{Code: "bad_request", Message: err.Error()})
	case errors.Is(err, sensormaster.ErrDeviceNotRegistered):
		writeJSON(w, http.StatusConflict, apiError{Code: "device_not_registered", Message: "unknown sensor_id, re-register"})
	case errors.Is(err, registry.ErrDeviceNotFound),
		errors.Is(err, configs.ErrTemplateNotFound),
		errors.Is(err, commands.ErrCommandNotFound),
		errors.Is(err, scripts.ErrScriptNotFound),
		errors.Is(err, storage.ErrNoRows):
		writeJSON(w, http.StatusNotFound, apiError{Code: "not_found"})
	case errors.Is(err, storage.ErrTxConflict), errors.Is(err, storage.ErrStoreFailed):
		w.Header().Add("Retry-After", "5")
		writeJSON(w, http.StatusServiceUnavailable, apiError{Code: "storage_unavailable", Message: "retry later"})
	default:
		writeJSON(w, http.StatusInternalServerError, apiError{Code: "internal"})
	}
}

func decodeJSON(r *http.Request, v any) error {
	defer r.Body.Close()

	err := json.NewDecoder(r.Body).Decode(v)
	if err != nil {
		return errors.Join(sensormaster.ErrBadRequest, err)
	}

	return nil
}
