package api

import (
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/brewmetrics/sensor-master/internal/pkg/application/commands"
	"github.com/brewmetrics/sensor-master/internal/pkg/application/configs"
	"github.com/brewmetrics/sensor-master/internal/pkg/application/registry"
	"github.com/brewmetrics/sensor-master/internal/pkg/application/scripts"
	"github.com/brewmetrics/sensor-master/internal/pkg/application/sensormaster"
	"github.com/brewmetrics/sensor-master/internal/pkg/infrastructure/storage"
	"github.com/brewmetrics/sensor-master/pkg/types"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/tracing"
	"github.com/go-chi/chi/v5"
	"github.com/samber/lo"
)

type collectionResponse[T any] struct {
	Data       []T    `json:"data"`
	Count      uint64 `json:"count"`
	Offset     uint64 `json:"offset"`
	Limit      uint64 `json:"limit"`
	TotalCount uint64 `json:"totalCount"`
}

func toCollectionResponse[T any](c types.Collection[T]) collectionResponse[T] {
	return collectionResponse[T]{
		Data:       c.Data,
		Count:      c.Count,
		Offset:     c.Offset,
		Limit:      c.Limit,
		TotalCount: c.TotalCount,
	}
}

func listConditions(r *http.Request) []storage.ConditionFunc {
	conditions := []storage.ConditionFunc{}

	q := r.URL.Query()

	if sensorID := q.Get("sensor_id"); sensorID != "" {
		conditions = append(conditions, storage.WithSensorID(sensorID))
	}
	if sensorType := q.Get("sensor_type"); sensorType != "" {
		conditions = append(conditions, storage.WithSensorType(sensorType))
	}
	if search := q.Get("search"); search != "" {
		conditions = append(conditions, storage.WithSearch(search))
	}
	if offset, err := strconv.Atoi(q.Get("offset")); err == nil && offset > 0 {
		conditions = append(conditions, storage.WithOffset(offset))
	}
	if limit, err := strconv.Atoi(q.Get("limit")); err == nil && limit > 0 {
		conditions = append(conditions, storage.WithLimit(limit))
	}

	return conditions
}

func instancesHandler(log *slog.Logger, master types.MasterInstance) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		// a single master answers all devices; the instance list exists
		// for display purposes only
		writeJSON(w, http.StatusOK, []types.MasterInstance{master})
	}
}

type sensorDetails struct {
	types.Device

	ExecutionStatus string `json:"executionStatus"`

	AssignedScriptVersion string `json:"assignedScriptVersion,omitempty"`
	ScriptVersionMismatch bool   `json:"scriptVersionMismatch,omitempty"`
}

func querySensorsHandler(log *slog.Logger, svcs Services) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var err error

		ctx, span := tracer.Start(r.Context(), "query-sensors")
		defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()
		_, ctx, requestLogger := o11y.AddTraceIDToLoggerAndStoreInContext(span, log, ctx)

		// liveness status is derived on read, not a stored column, so it
		// is filtered after classification rather than pushed into SQL
		statusFilter := r.URL.Query().Get("status")

		conditions := []storage.ConditionFunc{}
		q := r.URL.Query()

		if sensorType := q.Get("sensor_type"); sensorType != "" {
			conditions = append(conditions, storage.WithSensorType(sensorType))
		}
		if search := q.Get("search"); search != "" {
			conditions = append(conditions, storage.WithSearch(search))
		}
		if offset, err := strconv.Atoi(q.Get("offset")); err == nil && offset > 0 {
			conditions = append(conditions, storage.WithOffset(offset))
		}
		if limit, err := strconv.Atoi(q.Get("limit")); err == nil && limit > 0 {
			conditions = append(conditions, storage.WithLimit(limit))
		}

		collection, err := svcs.Registry.Query(ctx, conditions...)
		if err != nil {
			requestLogger.Error("could not query sensors", "err", err.Error())
			writeError(w, err)
			return
		}

		now := time.Now().UTC()

		items := lo.Map(collection.Data, func(d types.Device, _ int) sensorDetails {
			return sensorDetails{
				Device:          d,
				ExecutionStatus: scripts.ExecutionStatus(d, now, time.Duration(sensormaster.DefaultCheckInInterval)*time.Second, svcs.ScriptConfig),
			}
		})

		if statusFilter != "" {
			items = lo.Filter(items, func(d sensorDetails, _ int) bool { return d.Status == statusFilter })
		}

		writeJSON(w, http.StatusOK, collectionResponse[sensorDetails]{
			Data:       items,
			Count:      uint64(len(items)),
			Offset:     collection.Offset,
			Limit:      collection.Limit,
			TotalCount: collection.TotalCount,
		})
	}
}

func getSensorHandler(log *slog.Logger, svcs Services) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var err error

		ctx, span := tracer.Start(r.Context(), "get-sensor")
		defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()
		_, ctx, requestLogger := o11y.AddTraceIDToLoggerAndStoreInContext(span, log, ctx)

		sensorID := chi.URLParam(r, "sensorID")

		device, err := svcs.Registry.Get(ctx, sensorID)
		if err != nil {
			requestLogger.Debug("sensor not found", "sensor_id", sensorID)
			writeError(w, err)
			return
		}

		details := sensorDetails{Device: device}

		pollingInterval := time.Duration(sensormaster.DefaultCheckInInterval) * time.Second
		if resolution, err := svcs.Configs.Resolve(ctx, sensorID, device.LastConfigHash); err == nil {
			pollingInterval = time.Duration(resolution.PollingInterval(sensormaster.DefaultCheckInInterval)) * time.Second
		}
		details.ExecutionStatus = scripts.ExecutionStatus(device, time.Now().UTC(), pollingInterval, svcs.ScriptConfig)

		if payload, err := svcs.Scripts.Fetch(ctx, sensorID); err == nil && payload.Available {
			details.AssignedScriptVersion = payload.Script.Version
			details.ScriptVersionMismatch = device.ReportedScriptVersion != "" &&
				device.ReportedScriptVersion != payload.Script.Version
		}

		writeJSON(w, http.StatusOK, details)
	}
}

func createSensorHandler(log *slog.Logger, svc registry.Registry) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var err error

		ctx, span := tracer.Start(r.Context(), "create-sensor")
		defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()
		_, ctx, requestLogger := o11y.AddTraceIDToLoggerAndStoreInContext(span, log, ctx)

		var descriptor types.RegistrationRequest
		err = decodeJSON(r, &descriptor)
		if err != nil {
			writeError(w, err)
			return
		}

		if descriptor.SensorID == "" {
			writeJSON(w, http.StatusBadRequest, apiError{Code: "bad_request", Message: "sensor_id is required"})
			return
		}

		device, err := svc.Register(ctx, descriptor)
		if err != nil {
			requestLogger.Error("could not create sensor", "err", err.Error())
			writeError(w, err)
			return
		}

		writeJSON(w, http.StatusCreated, device)
	}
}

func deleteSensorHandler(log *slog.Logger, svc registry.Registry) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var err error

		ctx, span := tracer.Start(r.Context(), "delete-sensor")
		defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()
		_, ctx, requestLogger := o11y.AddTraceIDToLoggerAndStoreInContext(span, log, ctx)

		sensorID := chi.URLParam(r, "sensorID")

		err = svc.Delete(ctx, sensorID)
		if err != nil {
			requestLogger.Debug("could not delete sensor", "sensor_id", sensorID, "err", err.Error())
			writeError(w, err)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

func queryConfigsHandler(log *slog.Logger, svc configs.ConfigService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var err error

		ctx, span := tracer.Start(r.Context(), "query-configs")
		defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()
		_, ctx, requestLogger := o11y.AddTraceIDToLoggerAndStoreInContext(span, log, ctx)

		collection, err := svc.Query(ctx, listConditions(r)...)
		if err != nil {
			requestLogger.Error("could not query configs", "err", err.Error())
			writeError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, toCollectionResponse(collection))
	}
}

func createConfigHandler(log *slog.Logger, svc configs.ConfigService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var err error

		ctx, span := tracer.Start(r.Context(), "create-config")
		defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()
		_, ctx, requestLogger := o11y.AddTraceIDToLoggerAndStoreInContext(span, log, ctx)

		var template types.ConfigTemplate
		err = decodeJSON(r, &template)
		if err != nil {
			writeError(w, err)
			return
		}

		created, err := svc.Create(ctx, template)
		if err != nil {
			requestLogger.Error("could not create config", "err", err.Error())
			writeError(w, err)
			return
		}

		writeJSON(w, http.StatusCreated, created)
	}
}

func getConfigTemplateHandler(log *slog.Logger, svc configs.ConfigService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var err error

		ctx, span := tracer.Start(r.Context(), "get-config-template")
		defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()
		_, ctx, _ = o11y.AddTraceIDToLoggerAndStoreInContext(span, log, ctx)

		id, err := strconv.ParseInt(chi.URLParam(r, "configID"), 10, 64)
		if err != nil {
			writeJSON(w, http.StatusBadRequest, apiError{Code: "bad_request", Message: "invalid config id"})
			return
		}

		template, err := svc.Get(ctx, id)
		if err != nil {
			writeError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, template)
	}
}

func updateConfigHandler(log *slog.Logger, svc configs.ConfigService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var err error

		ctx, span := tracer.Start(r.Context(), "update-config")
		defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()
		_, ctx, requestLogger := o11y.AddTraceIDToLoggerAndStoreInContext(span, log, ctx)

		id, err := strconv.ParseInt(chi.URLParam(r, "configID"), 10, 64)
		if err != nil {
			writeJSON(w, http.StatusBadRequest, apiError{Code: "bad_request", Message: "invalid config id"})
			return
		}

		var template types.ConfigTemplate
		err = decodeJSON(r, &template)
		if err != nil {
			writeError(w, err)
			return
		}

		template.ID = id

		updated, err := svc.Update(ctx, template)
		if err != nil {
			requestLogger.Error("could not update config", "config_id", id, "err", err.Error())
			writeError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, updated)
	}
}

func deleteConfigHandler(log *slog.Logger, svc configs.ConfigService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var err error

		ctx, span := tracer.Start(r.Context(), "delete-config")
		defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()
		_, ctx, _ = o11y.AddTraceIDToLoggerAndStoreInContext(span, log, ctx)

		id, err := strconv.ParseInt(chi.URLParam(r, "configID"), 10, 64)
		if err != nil {
			writeJSON(w, http.StatusBadRequest, apiError{Code: "bad_request", Message: "invalid config id"})
			return
		}

		err = svc.Delete(ctx, id)
		if err != nil {
			writeError(w, err)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

func queryCommandsHandler(log *slog.Logger, svc commands.CommandQueue) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var err error

		ctx, span := tracer.Start(r.Context(), "query-commands")
		defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()
		_, ctx, requestLogger := o11y.AddTraceIDToLoggerAndStoreInContext(span, log, ctx)

		conditions := listConditions(r)
		if status := r.URL.Query().Get("status"); status != "" {
			conditions = append(conditions, storage.WithStatus(status))
		}

		collection, err := svc.Query(ctx, conditions...)
		if err != nil {
			requestLogger.Error("could not query commands", "err", err.Error())
			writeError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, toCollectionResponse(collection))
	}
}

func enqueueCommandHandler(log *slog.Logger, svc commands.CommandQueue) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var err error

		ctx, span := tracer.Start(r.Context(), "enqueue-command")
		defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()
		_, ctx, requestLogger := o11y.AddTraceIDToLoggerAndStoreInContext(span, log, ctx)

		var command types.Command
		err = decodeJSON(r, &command)
		if err != nil {
			writeError(w, err)
			return
		}

		id, err := svc.Enqueue(ctx, command)
		if err != nil {
			requestLogger.Error("could not enqueue command", "err", err.Error())
			writeError(w, err)
			return
		}

		created, err := svc.Get(ctx, id)
		if err != nil {
			writeError(w, err)
			return
		}

		writeJSON(w, http.StatusCreated, created)
	}
}

func getCommandHandler(log *slog.Logger, svc commands.CommandQueue) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var err error

		ctx, span := tracer.Start(r.Context(), "get-command")
		defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()
		_, ctx, _ = o11y.AddTraceIDToLoggerAndStoreInContext(span, log, ctx)

		id, err := strconv.ParseInt(chi.URLParam(r, "commandID"), 10, 64)
		if err != nil {
			writeJSON(w, http.StatusBadRequest, apiError{Code: "bad_request", Message: "invalid command id"})
			return
		}

		command, err := svc.Get(ctx, id)
		if err != nil {
			writeError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, command)
	}
}

func deleteCommandHandler(log *slog.Logger, svc commands.CommandQueue) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var err error

		ctx, span := tracer.Start(r.Context(), "delete-command")
		defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()
		_, ctx, _ = o11y.AddTraceIDToLoggerAndStoreInContext(span, log, ctx)

		id, err := strconv.ParseInt(chi.URLParam(r, "commandID"), 10, 64)
		if err != nil {
			writeJSON(w, http.StatusBadRequest, apiError{Code: "bad_request", Message: "invalid command id"})
			return
		}

		err = svc.Delete(ctx, id)
		if err != nil {
			writeError(w, err)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

func queryScriptsHandler(log *slog.Logger, svc scripts.ScriptRegistry) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var err error

		ctx, span := tracer.Start(r.Context(), "query-scripts")
		defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()
		_, ctx, requestLogger := o11y.AddTraceIDToLoggerAndStoreInContext(span, log, ctx)

		collection, err := svc.Query(ctx, listConditions(r)...)
		if err != nil {
			requestLogger.Error("could not query scripts", "err", err.Error())
			writeError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, toCollectionResponse(collection))
	}
}

func assignScriptHandler(log *slog.Logger, svc scripts.ScriptRegistry) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var err error

		ctx, span := tracer.Start(r.Context(), "assign-script")
		defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()
		_, ctx, requestLogger := o11y.AddTraceIDToLoggerAndStoreInContext(span, log, ctx)

		var script types.Script
		err = decodeJSON(r, &script)
		if err != nil {
			writeError(w, err)
			return
		}

		assigned, err := svc.Assign(ctx, script)
		if err != nil {
			requestLogger.Error("could not assign script", "err", err.Error())
			writeError(w, err)
			return
		}

		writeJSON(w, http.StatusCreated, assigned)
	}
}

func getScriptByIDHandler(log *slog.Logger, svc scripts.ScriptRegistry) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var err error

		ctx, span := tracer.Start(r.Context(), "get-script-by-id")
		defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()
		_, ctx, _ = o11y.AddTraceIDToLoggerAndStoreInContext(span, log, ctx)

		id, err := strconv.ParseInt(chi.URLParam(r, "scriptID"), 10, 64)
		if err != nil {
			writeJSON(w, http.StatusBadRequest, apiError{Code: "bad_request", Message: "invalid script id"})
			return
		}

		script, err := svc.Get(ctx, id)
		if err != nil {
			writeError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, script)
	}
}

func deleteScriptHandler(log *slog.Logger, svc scripts.ScriptRegistry) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var err error

		ctx, span := tracer.Start(r.Context(), "delete-script")
		defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()
		_, ctx, _ = o11y.AddTraceIDToLoggerAndStoreInContext(span, log, ctx)

		id, err := strconv.ParseInt(chi.URLParam(r, "scriptID"), 10, 64)
		if err != nil {
			writeJSON(w, http.StatusBadRequest, apiError{Code: "bad_request", Message: "invalid script id"})
			return
		}

		err = svc.Delete(ctx, id)
		if err != nil {
			writeError(w, err)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}
