package main

import (
	"context"
	"errors"
	"flag"
	"io"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/brewmetrics/sensor-master/internal/pkg/application/commands"
	"github.com/brewmetrics/sensor-master/internal/pkg/application/configs"
	"github.com/brewmetrics/sensor-master/internal/pkg/application/registry"
	"github.com/brewmetrics/sensor-master/internal/pkg/application/scripts"
	"github.com/brewmetrics/sensor-master/internal/pkg/application/sensormaster"
	"github.com/brewmetrics/sensor-master/internal/pkg/application/telemetry"
	"github.com/brewmetrics/sensor-master/internal/pkg/application/watchdog"
	"github.com/brewmetrics/sensor-master/internal/pkg/infrastructure/router"
	"github.com/brewmetrics/sensor-master/internal/pkg/infrastructure/storage"
	"github.com/brewmetrics/sensor-master/internal/pkg/presentation/api"
	"github.com/brewmetrics/sensor-master/pkg/types"
	"github.com/diwise/messaging-golang/pkg/messaging"
	"github.com/diwise/service-chassis/pkg/infrastructure/buildinfo"
	"github.com/diwise/service-chassis/pkg/infrastructure/env"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y"
	"gopkg.in/yaml.v2"
)

const serviceName string = "sensor-master"

type flagType int
type flagMap map[flagType]string

const (
	listenAddress flagType = iota
	servicePort

	configurationFile

	dbHost
	dbUser
	dbPassword
	dbPort
	dbName
	dbSSLMode

	commandRetention
)

type appConfig struct {
	Master    sensormaster.Config `yaml:"master"`
	Liveness  registry.Config     `yaml:"liveness"`
	Commands  commands.Config     `yaml:"commands"`
	Scripts   scripts.Config      `yaml:"scripts"`
	Watchdog  watchdog.Config     `yaml:"watchdog"`
	Telemetry telemetry.Config    `yaml:"telemetry"`
}

func defaultFlags() flagMap {
	return flagMap{
		listenAddress: "0.0.0.0",
		servicePort:   "8080",

		configurationFile: "/opt/brewmetrics/config/config.yaml",

		dbHost:     "",
		dbUser:     "",
		dbPassword: "",
		dbPort:     "5432",
		dbName:     "sensormaster",
		dbSSLMode:  "disable",

		commandRetention: "",
	}
}

func main() {
	ctx, flags := parseExternalConfig(context.Background(), defaultFlags())

	serviceVersion := buildinfo.SourceVersion()
	ctx, logger, cleanup := o11y.Init(ctx, serviceName, serviceVersion, "json")
	defer cleanup()

	cfg, err := loadAppConfig(flags[configurationFile], flags)
	exitIf(err, logger, "could not load configuration")

	s, err := storage.New(ctx, storage.NewConfig(
		flags[dbHost], flags[dbUser], flags[dbPassword],
		flags[dbPort], flags[dbName], flags[dbSSLMode],
	))
	exitIf(err, logger, "could not connect to database")

	err = s.Initialize(ctx)
	exitIf(err, logger, "could not initialize database")

	messenger, err := messaging.Initialize(ctx, messaging.LoadConfiguration(ctx, serviceName, logger))
	exitIf(err, logger, "failed to init messenger")

	reg := registry.New(s, messenger, &cfg.Liveness)
	cfgsvc := configs.New(s)
	queue := commands.New(s, &cfg.Commands)
	scriptreg := scripts.New(s, &cfg.Scripts)
	ingest := telemetry.New(messenger, &cfg.Telemetry)
	master := sensormaster.New(s, reg, cfgsvc, queue, scriptreg, &cfg.Master)

	wd := watchdog.New(s, queue, messenger, &cfg.Watchdog)

	messenger.Start()
	wd.Start(ctx)

	r, err := api.RegisterHandlers(ctx, router.New(serviceName), api.Services{
		Protocol:     master,
		Registry:     reg,
		Configs:      cfgsvc,
		Commands:     queue,
		Scripts:      scriptreg,
		Telemetry:    ingest,
		Master:       types.MasterInstance{ID: cfg.Master.MasterID, Name: cfg.Master.MasterName},
		ScriptConfig: cfg.Scripts,
	})
	exitIf(err, logger, "failed to register handlers")

	webServer := &http.Server{
		Addr:              flags[listenAddress] + ":" + flags[servicePort],
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	apiErrors := make(chan error, 1)

	go func() {
		logger.Info("starting to listen for incoming connections", "address", webServer.Addr)

		err := webServer.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			apiErrors <- err
		}
	}()

	sigCtx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	select {
	case err := <-apiErrors:
		exitIf(err, logger, "web server failed")
	case <-sigCtx.Done():
		logger.Info("shutting down")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	err = webServer.Shutdown(shutdownCtx)
	if err != nil {
		logger.Error("web server shutdown failed", "err", err.Error())
	}

	wd.Stop(shutdownCtx)
	messenger.Close()
	s.Close()
}

func loadAppConfig(path string, flags flagMap) (*appConfig, error) {
	cfg := &appConfig{}

	f, err := os.Open(path)
	if err == nil {
		defer f.Close()

		b, err := io.ReadAll(f)
		if err != nil {
			return nil, err
		}

		err = yaml.Unmarshal(b, cfg)
		if err != nil {
			return nil, err
		}
	} else if !os.IsNotExist(err) {
		return nil, err
	}

	if flags[commandRetention] != "" {
		retention, err := time.ParseDuration(flags[commandRetention])
		if err != nil {
			return nil, err
		}
		cfg.Commands.RetentionHours = int(retention.Hours())
	}

	return cfg, nil
}

func parseExternalConfig(ctx context.Context, flags flagMap) (context.Context, flagMap) {
	// Allow environment variables to override certain defaults
	envOrDef := env.GetVariableOrDefault

	flags[listenAddress] = envOrDef(ctx, "LISTEN_ADDRESS", flags[listenAddress])
	flags[servicePort] = envOrDef(ctx, "SERVICE_PORT", flags[servicePort])

	flags[dbHost] = envOrDef(ctx, "POSTGRES_HOST", flags[dbHost])
	flags[dbPort] = envOrDef(ctx, "POSTGRES_PORT", flags[dbPort])
	flags[dbName] = envOrDef(ctx, "POSTGRES_DBNAME", flags[dbName])
	flags[dbUser] = envOrDef(ctx, "POSTGRES_USER", flags[dbUser])
	flags[dbPassword] = envOrDef(ctx, "POSTGRES_PASSWORD", flags[dbPassword])
	flags[dbSSLMode] = envOrDef(ctx, "POSTGRES_SSLMODE", flags[dbSSLMode])

	flags[commandRetention] = envOrDef(ctx, "COMMAND_RETENTION", flags[commandRetention])

	apply := func(f flagType) func(string) error {
		return func(value string) error {
			flags[f] = value
			return nil
		}
	}

	// Allow command line arguments to override defaults and environment variables
	flag.Func("config", "service configuration file", apply(configurationFile))
	flag.Parse()

	return ctx, flags
}

func exitIf(err error, logger *slog.Logger, msg string, args ...any) {
	if err != nil {
		logger.With(args...).Error(msg, "err", err.Error())
		time.Sleep(2 * time.Second)
		os.Exit(1)
	}
}
