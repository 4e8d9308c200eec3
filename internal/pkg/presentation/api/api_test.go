package api

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/brewmetrics/sensor-master/internal/pkg/application/commands"
	"github.com/brewmetrics/sensor-master/internal/pkg/application/configs"
	"github.com/brewmetrics/sensor-master/internal/pkg/application/registry"
	"github.com/brewmetrics/sensor-master/internal/pkg/application/scripts"
	"github.com/brewmetrics/sensor-master/internal/pkg/application/sensormaster"
	"github.com/brewmetrics/sensor-master/internal/pkg/application/telemetry"
	"github.com/brewmetrics/sensor-master/internal/pkg/infrastructure/router"
	"github.com/brewmetrics/sensor-master/internal/pkg/infrastructure/storage"
	"github.com/brewmetrics/sensor-master/pkg/types"
	"github.com/go-chi/chi/v5"
	"github.com/matryer/is"
)

func setupTest(t *testing.T, svcs Services) (*chi.Mux, *is.I) {
	is := is.New(t)

	if svcs.Master.Name == "" {
		svcs.Master = types.MasterInstance{ID: 1, Name: "master-001"}
	}

	r, err := RegisterHandlers(context.Background(), router.New("testService"), svcs)
	is.NoErr(err)

	return r, is
}

func testRequest(is *is.I, ts *httptest.Server, method, path string, body io.Reader) (*http.Response, string) {
	req, _ := http.NewRequest(method, ts.URL+path, body)
	resp, _ := http.DefaultClient.Do(req)
	respBody, _ := io.ReadAll(resp.Body)
	defer resp.Body.Close()

	return resp, string(respBody)
}

func TestHealthEndpoint(t *testing.T) {
	r, is := setupTest(t, Services{})
	server := httptest.NewServer(r)
	defer server.Close()

	resp, _ := testRequest(is, server, http.MethodGet, "/health", nil)

	is.Equal(resp.StatusCode, http.StatusNoContent)
}

func TestRegisterEndpoint(t *testing.T) {
	protocol := &sensormaster.SensorMasterMock{
		RegisterFunc: func(ctx context.Context, req types.RegistrationRequest) (types.RegistrationResponse, error) {
			return types.RegistrationResponse{
				Status:          "registered",
				AssignedMaster:  "master-001",
				MasterID:        1,
				CheckInInterval: 60,
				ConfigEndpoint:  "/api/sensor-master/config/" + req.SensorID,
			}, nil
		},
	}

	r, is := setupTest(t, Services{Protocol: protocol})
	server := httptest.NewServer(r)
	defer server.Close()

	resp, body := testRequest(is, server, http.MethodPost, "/api/sensor-master/register",
		strings.NewReader(`{"sensor_id":"brew-001","sensor_type":"fermenter"}`))

	is.Equal(resp.StatusCode, http.StatusOK)
	is.True(strings.Contains(body, `"assigned_master":"master-001"`))

	is.Equal(protocol.RegisterCalls()[0].Req.SensorID, "brew-001")
}

func TestRegisterEndpointRejectsMalformedJSON(t *testing.T) {
	r, is := setupTest(t, Services{Protocol: &sensormaster.SensorMasterMock{}})
	server := httptest.NewServer(r)
	defer server.Close()

	resp, body := testRequest(is, server, http.MethodPost, "/api/sensor-master/register",
		strings.NewReader(`{"sensor_id":`))

	is.Equal(resp.StatusCode, http.StatusBadRequest)
	is.True(strings.Contains(body, "bad_request"))
}

func TestHeartbeatEndpointUnknownDevice(t *testing.T) {
	protocol := &sensormaster.SensorMasterMock{
		HeartbeatFunc: func(ctx context.Context, req types.HeartbeatRequest) (types.HeartbeatResponse, error) {
			return types.HeartbeatResponse{}, sensormaster.ErrDeviceNotRegistered
		},
	}

	r, is := setupTest(t, Services{Protocol: protocol})
	server := httptest.NewServer(r)
	defer server.Close()

	resp, body := testRequest(is, server, http.MethodPost, "/api/sensor-master/heartbeat",
		strings.NewReader(`{"sensor_id":"ghost"}`))

	is.Equal(resp.StatusCode, http.StatusConflict)
	is.True(strings.Contains(body, "device_not_registered"))
}

func TestGetConfigEndpointPassesHash(t *testing.T) {
	protocol := &sensormaster.SensorMasterMock{
		GetConfigFunc: func(ctx context.Context, sensorID, currentHash string) (types.ConfigResponse, error) {
			return types.ConfigResponse{ConfigAvailable: true, ConfigHash: "a1b2c3d4e5f60718", CheckInInterval: 60}, nil
		},
	}

	r, is := setupTest(t, Services{Protocol: protocol})
	server := httptest.NewServer(r)
	defer server.Close()

	resp, _ := testRequest(is, server, http.MethodGet, "/api/sensor-master/config/brew-001?hash=oldhash", nil)

	is.Equal(resp.StatusCode, http.StatusOK)
	is.Equal(protocol.GetConfigCalls()[0].SensorID, "brew-001")
	is.Equal(protocol.GetConfigCalls()[0].CurrentHash, "oldhash")
}

func TestGetConfigEndpointStorageUnavailable(t *testing.T) {
	protocol := &sensormaster.SensorMasterMock{
		GetConfigFunc: func(ctx context.Context, sensorID, currentHash string) (types.ConfigResponse, error) {
			return types.ConfigResponse{}, storage.ErrTxConflict
		},
	}

	r, is := setupTest(t, Services{Protocol: protocol})
	server := httptest.NewServer(r)
	defer server.Close()

	resp, _ := testRequest(is, server, http.MethodGet, "/api/sensor-master/config/brew-001", nil)

	is.Equal(resp.StatusCode, http.StatusServiceUnavailable)
	is.Equal(resp.Header.Get("Retry-After"), "5")
}

func TestTelemetryEndpoint(t *testing.T) {
	ingest := &telemetry.IngestMock{
		AcceptFunc: func(ctx context.Context, sample types.TelemetrySample) error {
			return nil
		},
	}

	r, is := setupTest(t, Services{Telemetry: ingest})
	server := httptest.NewServer(r)
	defer server.Close()

	resp, _ := testRequest(is, server, http.MethodPost, "/api/sensor-master/data",
		strings.NewReader(`{"sensor_id":"brew-001","readings":{"temperature":18.5}}`))

	is.Equal(resp.StatusCode, http.StatusAccepted)
	is.Equal(ingest.AcceptCalls()[0].Sample.SensorID, "brew-001")
}

func TestInstancesEndpoint(t *testing.T) {
	r, is := setupTest(t, Services{Master: types.MasterInstance{ID: 7, Name: "cellar-master"}})
	server := httptest.NewServer(r)
	defer server.Close()

	resp, body := testRequest(is, server, http.MethodGet, "/api/sensor-master/instances", nil)

	is.Equal(resp.StatusCode, http.StatusOK)

	var instances []types.MasterInstance
	is.NoErr(json.Unmarshal([]byte(body), &instances))
	is.Equal(len(instances), 1)
	is.Equal(instances[0].Name, "cellar-master")
}

func TestGetUnknownSensorReturns404(t *testing.T) {
	reg := &registry.RegistryMock{
		GetFunc: func(ctx context.Context, sensorID string) (types.Device, error) {
			return types.Device{}, registry.ErrDeviceNotFound
		},
	}

	r, is := setupTest(t, Services{Registry: reg})
	server := httptest.NewServer(r)
	defer server.Close()

	resp, body := testRequest(is, server, http.MethodGet, "/api/sensor-master/sensors/nosuchsensor", nil)

	is.Equal(resp.StatusCode, http.StatusNotFound)
	is.True(strings.Contains(body, "not_found"))
}

func TestQuerySensorsFiltersOnDerivedStatus(t *testing.T) {
	now := time.Now().UTC()

	reg := &registry.RegistryMock{
		QueryFunc: func(ctx context.Context, conditions ...storage.ConditionFunc) (types.Collection[types.Device], error) {
			return types.Collection[types.Device]{
				Data: []types.Device{
					{SensorID: "brew-001", LastCheckIn: now, LastConfigHash: "h", Status: types.StatusOnline},
					{SensorID: "brew-002", LastCheckIn: now.Add(-time.Hour), Status: types.StatusOffline},
				},
				Count:      2,
				TotalCount: 2,
			}, nil
		},
	}

	r, is := setupTest(t, Services{Registry: reg})
	server := httptest.NewServer(r)
	defer server.Close()

	resp, body := testRequest(is, server, http.MethodGet, "/api/sensor-master/sensors/?status=offline", nil)

	is.Equal(resp.StatusCode, http.StatusOK)
	is.True(strings.Contains(body, "brew-002"))
	is.True(!strings.Contains(body, "brew-001"))
}

func TestGetSensorIncludesScriptMismatch(t *testing.T) {
	reg := &registry.RegistryMock{
		GetFunc: func(ctx context.Context, sensorID string) (types.Device, error) {
			return types.Device{SensorID: sensorID, ReportedScriptVersion: "v1", LastCheckIn: time.Now().UTC()}, nil
		},
	}
	cfgs := &configs.ConfigServiceMock{
		ResolveFunc: func(ctx context.Context, sensorID, deviceLastHash string) (configs.Resolution, error) {
			return configs.Resolution{}, nil
		},
	}
	scriptreg := &scripts.ScriptRegistryMock{
		FetchFunc: func(ctx context.Context, sensorID string) (scripts.Payload, error) {
			return scripts.Payload{Available: true, Script: types.Script{Version: "v2"}}, nil
		},
	}

	r, is := setupTest(t, Services{Registry: reg, Configs: cfgs, Scripts: scriptreg})
	server := httptest.NewServer(r)
	defer server.Close()

	resp, body := testRequest(is, server, http.MethodGet, "/api/sensor-master/sensors/brew-001", nil)

	is.Equal(resp.StatusCode, http.StatusOK)

	var details sensorDetails
	is.NoErr(json.Unmarshal([]byte(body), &details))
	is.True(details.ScriptVersionMismatch)
	is.Equal(details.AssignedScriptVersion, "v2")
}

func TestEnqueueCommandEndpoint(t *testing.T) {
	queue := &commands.CommandQueueMock{
		EnqueueFunc: func(ctx context.Context, command types.Command) (int64, error) {
			return 42, nil
		},
		GetFunc: func(ctx context.Context, id int64) (types.Command, error) {
			return types.Command{ID: id, SensorID: "brew-001", CommandType: "reboot", Status: types.CommandPending}, nil
		},
	}

	r, is := setupTest(t, Services{Commands: queue})
	server := httptest.NewServer(r)
	defer server.Close()

	resp, body := testRequest(is, server, http.MethodPost, "/api/sensor-master/commands/",
		strings.NewReader(`{"sensorID":"brew-001","commandType":"reboot"}`))

	is.Equal(resp.StatusCode, http.StatusCreated)
	is.True(strings.Contains(body, `"id":42`))
}

func TestEnqueueInvalidCommandReturns400(t *testing.T) {
	queue := &commands.CommandQueueMock{
		EnqueueFunc: func(ctx context.Context, command types.Command) (int64, error) {
			return 0, commands.ErrInvalidCommand
		},
	}

	r, is := setupTest(t, Services{Commands: queue})
	server := httptest.NewServer(r)
	defer server.Close()

	resp, _ := testRequest(is, server, http.MethodPost, "/api/sensor-master/commands/",
		strings.NewReader(`{"sensorID":"brew-001"}`))

	is.Equal(resp.StatusCode, http.StatusBadRequest)
}

func TestDeleteConfigEndpoint(t *testing.T) {
	cfgs := &configs.ConfigServiceMock{
		DeleteFunc: func(ctx context.Context, id int64) error {
			return nil
		},
	}

	r, is := setupTest(t, Services{Configs: cfgs})
	server := httptest.NewServer(r)
	defer server.Close()

	resp, _ := testRequest(is, server, http.MethodDelete, "/api/sensor-master/configs/3", nil)

	is.Equal(resp.StatusCode, http.StatusNoContent)
	is.Equal(cfgs.DeleteCalls()[0].Id, int64(3))
}
