package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/brewmetrics/sensor-master/pkg/types"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/tracing"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.opentelemetry.io/otel"
)

var tracer = otel.Tracer("sensor-master-client")

// SensorMasterClient implements the device side of the check-in protocol.
// Firmware simulators and integration tests use it to talk to a master.
type SensorMasterClient interface {
	Register(ctx context.Context, req types.RegistrationRequest) (types.RegistrationResponse, error)
	GetConfig(ctx context.Context, sensorID, currentHash string) (types.ConfigResponse, error)
	Heartbeat(ctx context.Context, req types.HeartbeatRequest) (types.HeartbeatResponse, error)
	GetScript(ctx context.Context, sensorID string) (types.ScriptResponse, error)
	ScriptExecuted(ctx context.Context, sensorID string) error
	ReportVersion(ctx context.Context, sensorID, scriptVersion string, scriptID int64) error
}

type smClient struct {
	baseURL    string
	httpClient http.Client
}

func New(baseURL string) SensorMasterClient {
	return &smClient{
		baseURL: baseURL,
		httpClient: http.Client{
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		},
	}
}

// ErrNotRegistered is returned when the master does not know the sensor
// and expects a new registration before further requests.
var ErrNotRegistered = fmt.Errorf("sensor is not registered")

func (c *smClient) Register(ctx context.Context, req types.RegistrationRequest) (types.RegistrationResponse, error) {
	var err error
	ctx, span := tracer.Start(ctx, "register")
	defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()

	response := types.RegistrationResponse{}
	err = c.post(ctx, "/api/sensor-master/register", req, &response)

	return response, err
}

func (c *smClient) GetConfig(ctx context.Context, sensorID, currentHash string) (types.ConfigResponse, error) {
	var err error
	ctx, span := tracer.Start(ctx, "get-config")
	defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()

	path := "/api/sensor-master/config/" + sensorID
	if currentHash != "" {
		path += "?hash=" + currentHash
	}

	response := types.ConfigResponse{}
	err = c.get(ctx, path, &response)

	return response, err
}

func (c *smClient) Heartbeat(ctx context.Context, req types.HeartbeatRequest) (types.HeartbeatResponse, error) {
	var err error
	ctx, span := tracer.Start(ctx, "heartbeat")
	defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()

	response := types.HeartbeatResponse{}
	err = c.post(ctx, "/api/sensor-master/heartbeat", req, &response)

	return response, err
}

func (c *smClient) GetScript(ctx context.Context, sensorID string) (types.ScriptResponse, error) {
	var err error
	ctx, span := tracer.Start(ctx, "get-script")
	defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()

	response := types.ScriptResponse{}
	err = c.get(ctx, "/api/sensor-master/script/"+sensorID, &response)

	return response, err
}

func (c *smClient) ScriptExecuted(ctx context.Context, sensorID string) error {
	var err error
	ctx, span := tracer.Start(ctx, "script-executed")
	defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()

	ack := types.AckResponse{}
	err = c.post(ctx, "/api/sensor-master/script-executed", types.ScriptExecutedRequest{SensorID: sensorID}, &ack)

	return err
}

func (c *smClient) ReportVersion(ctx context.Context, sensorID, scriptVersion string, scriptID int64) error {
	var err error
	ctx, span := tracer.Start(ctx, "report-version")
	defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()

	ack := types.AckResponse{}
	err = c.post(ctx, "/api/sensor-master/report-version", types.ReportVersionRequest{
		SensorID:      sensorID,
		ScriptVersion: scriptVersion,
		ScriptID:      scriptID,
	}, &ack)

	return err
}

func (c *smClient) get(ctx context.Context, path string, result any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return fmt.Errorf("failed to create http request: %w", err)
	}

	return c.do(req, result)
}

func (c *smClient) post(ctx context.Context, path string, body, result any) error {
	b, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("failed to marshal request body: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(b))
	if err != nil {
		return fmt.Errorf("failed to create http request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	return c.do(req, result)
}

func (c *smClient) do(req *http.Request, result any) error {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusConflict {
		return ErrNotRegistered
	}

	if resp.StatusCode >= http.StatusBadRequest {
		return fmt.Errorf("request failed with status code %d", resp.StatusCode)
	}

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}

	err = json.Unmarshal(respBody, result)
	if err != nil {
		return fmt.Errorf("failed to unmarshal response body: %w", err)
	}

	return nil
}
