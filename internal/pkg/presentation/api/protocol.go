package api

import (
	"log/slog"
	"net/http"

	"github.com/brewmetrics/sensor-master/internal/pkg/application/sensormaster"
	"github.com/brewmetrics/sensor-master/internal/pkg/application/telemetry"
	"github.com/brewmetrics/sensor-master/pkg/types"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/tracing"
	"github.com/go-chi/chi/v5"
)

func registerHandler(log *slog.Logger, svc sensormaster.SensorMaster) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var err error

		ctx, span := tracer.Start(r.Context(), "register")
		defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()
		_, ctx, requestLogger := o11y.AddTraceIDToLoggerAndStoreInContext(span, log, ctx)

		var req types.RegistrationRequest
		err = decodeJSON(r, &req)
		if err != nil {
			requestLogger.Debug("malformed registration", "err", err.Error())
			writeError(w, err)
			return
		}

		response, err := svc.Register(ctx, req)
		if err != nil {
			requestLogger.Error("registration failed", "sensor_id", req.SensorID, "err", err.Error())
			writeError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, response)
	}
}

func getConfigHandler(log *slog.Logger, svc sensormaster.SensorMaster) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var err error

		ctx, span := tracer.Start(r.Context(), "get-config")
		defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()
		_, ctx, requestLogger := o11y.AddTraceIDToLoggerAndStoreInContext(span, log, ctx)

		sensorID := chi.URLParam(r, "sensorID")
		currentHash := r.URL.Query().Get("hash")

		response, err := svc.GetConfig(ctx, sensorID, currentHash)
		if err != nil {
			requestLogger.Error("config fetch failed", "sensor_id", sensorID, "err", err.Error())
			writeError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, response)
	}
}

func heartbeatHandler(log *slog.Logger, svc sensormaster.SensorMaster) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var err error

		ctx, span := tracer.Start(r.Context(), "heartbeat")
		defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()
		_, ctx, requestLogger := o11y.AddTraceIDToLoggerAndStoreInContext(span, log, ctx)

		var req types.HeartbeatRequest
		err = decodeJSON(r, &req)
		if err != nil {
			requestLogger.Debug("malformed heartbeat", "err", err.Error())
			writeError(w, err)
			return
		}

		response, err := svc.Heartbeat(ctx, req)
		if err != nil {
			requestLogger.Error("heartbeat failed", "sensor_id", req.SensorID, "err", err.Error())
			writeError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, response)
	}
}

func getScriptHandler(log *slog.Logger, svc sensormaster.SensorMaster) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var err error

		ctx, span := tracer.Start(r.Context(), "get-script")
		defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()
		_, ctx, requestLogger := o11y.AddTraceIDToLoggerAndStoreInContext(span, log, ctx)

		sensorID := chi.URLParam(r, "sensorID")

		response, err := svc.GetScript(ctx, sensorID)
		if err != nil {
			requestLogger.Error("script fetch failed", "sensor_id", sensorID, "err", err.Error())
			writeError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, response)
	}
}

func scriptExecutedHandler(log *slog.Logger, svc sensormaster.SensorMaster) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var err error

		ctx, span := tracer.Start(r.Context(), "script-executed")
		defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()
		_, ctx, requestLogger := o11y.AddTraceIDToLoggerAndStoreInContext(span, log, ctx)

		var req types.ScriptExecutedRequest
		err = decodeJSON(r, &req)
		if err != nil {
			writeError(w, err)
			return
		}

		err = svc.ScriptExecuted(ctx, req.SensorID)
		if err != nil {
			requestLogger.Error("script execution report failed", "sensor_id", req.SensorID, "err", err.Error())
			writeError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, types.AckResponse{Acknowledged: true})
	}
}

func reportVersionHandler(log *slog.Logger, svc sensormaster.SensorMaster) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var err error

		ctx, span := tracer.Start(r.Context(), "report-version")
		defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()
		_, ctx, requestLogger := o11y.AddTraceIDToLoggerAndStoreInContext(span, log, ctx)

		var req types.ReportVersionRequest
		err = decodeJSON(r, &req)
		if err != nil {
			writeError(w, err)
			return
		}

		err = svc.ReportVersion(ctx, req.SensorID, req.ScriptVersion, req.ScriptID)
		if err != nil {
			requestLogger.Error("version report failed", "sensor_id", req.SensorID, "err", err.Error())
			writeError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, types.AckResponse{Acknowledged: true})
	}
}

func telemetryHandler(log *slog.Logger, svc telemetry.Ingest) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var err error

		ctx, span := tracer.Start(r.Context(), "ingest-telemetry")
		defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()
		_, ctx, requestLogger := o11y.AddTraceIDToLoggerAndStoreInContext(span, log, ctx)

		var sample types.TelemetrySample
		err = decodeJSON(r, &sample)
		if err != nil {
			writeError(w, err)
			return
		}

		err = svc.Accept(ctx, sample)
		if err != nil {
			requestLogger.Error("telemetry rejected", "sensor_id", sample.SensorID, "err", err.Error())
			writeError(w, err)
			return
		}

		w.WriteHeader(http.StatusAccepted)
	}
}
