package client

import (
	"context"
	"testing"

	"github.com/brewmetrics/sensor-master/pkg/types"
	test "github.com/diwise/service-chassis/pkg/test/http"
	"github.com/diwise/service-chassis/pkg/test/http/expects"
	"github.com/diwise/service-chassis/pkg/test/http/response"
	"github.com/matryer/is"
)

func TestRegister(t *testing.T) {
	is := is.New(t)

	mockedService := test.NewMockServiceThat(
		test.Expects(is,
			expects.RequestPath("/api/sensor-master/register"),
			expects.RequestMethod("POST"),
			expects.RequestHeaderContains("Content-Type", "application/json"),
			expects.RequestBodyContaining(`"sensor_id":"brew-001"`, `"sensor_type":"fermenter"`),
		),
		test.Returns(
			response.ContentType("application/json"),
			response.Code(200),
			response.Body([]byte(`{"status":"registered","assigned_master":"master-001","master_id":1,"has_config":true,"check_in_interval":60,"config_endpoint":"/api/sensor-master/config/brew-001"}`)),
		),
	)
	defer mockedService.Close()

	c := New(mockedService.URL())

	resp, err := c.Register(context.Background(), types.RegistrationRequest{
		SensorID:   "brew-001",
		SensorType: "fermenter",
	})
	is.NoErr(err)

	is.Equal(resp.Status, "registered")
	is.Equal(resp.AssignedMaster, "master-001")
	is.Equal(resp.CheckInInterval, 60)
}

func TestGetConfigSendsCurrentHash(t *testing.T) {
	is := is.New(t)

	mockedService := test.NewMockServiceThat(
		test.Expects(is,
			expects.RequestPath("/api/sensor-master/config/brew-001"),
			expects.RequestMethod("GET"),
		),
		test.Returns(
			response.ContentType("application/json"),
			response.Code(200),
			response.Body([]byte(`{"config_available":true,"config_changed":false,"config_hash":"a1b2c3d4e5f60718","config":null,"commands":[],"check_in_interval":60}`)),
		),
	)
	defer mockedService.Close()

	c := New(mockedService.URL())

	resp, err := c.GetConfig(context.Background(), "brew-001", "a1b2c3d4e5f60718")
	is.NoErr(err)

	is.True(resp.ConfigAvailable)
	is.True(!resp.ConfigChanged)
	is.Equal(resp.ConfigHash, "a1b2c3d4e5f60718")
}

func TestHeartbeatNotRegistered(t *testing.T) {
	is := is.New(t)

	mockedService := test.NewMockServiceThat(
		test.Expects(is,
			expects.RequestPath("/api/sensor-master/heartbeat"),
			expects.RequestMethod("POST"),
		),
		test.Returns(
			response.ContentType("application/json"),
			response.Code(409),
			response.Body([]byte(`{"code":"device_not_registered","message":"unknown sensor_id, re-register"}`)),
		),
	)
	defer mockedService.Close()

	c := New(mockedService.URL())

	_, err := c.Heartbeat(context.Background(), types.HeartbeatRequest{SensorID: "ghost"})
	is.Equal(err, ErrNotRegistered)
}

func TestReportVersion(t *testing.T) {
	is := is.New(t)

	mockedService := test.NewMockServiceThat(
		test.Expects(is,
			expects.RequestPath("/api/sensor-master/report-version"),
			expects.RequestMethod("POST"),
			expects.RequestBodyContaining(`"sensor_id":"brew-001"`, `"script_version":"v3"`),
		),
		test.Returns(
			response.ContentType("application/json"),
			response.Code(200),
			response.Body([]byte(`{"acknowledged":true}`)),
		),
	)
	defer mockedService.Close()

	c := New(mockedService.URL())

	err := c.ReportVersion(context.Background(), "brew-001", "v3", 7)
	is.NoErr(err)
}
