package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/matryer/is"
)

func TestLoadAppConfig(t *testing.T) {
	is := is.New(t)

	path := filepath.Join(t.TempDir(), "config.yaml")
	err := os.WriteFile(path, []byte(configYaml), 0600)
	is.NoErr(err)

	cfg, err := loadAppConfig(path, defaultFlags())
	is.NoErr(err)

	is.Equal(cfg.Master.MasterName, "master-001")
	is.Equal(cfg.Master.MasterID, 1)
	is.Equal(cfg.Commands.RetentionHours, 72)
	is.Equal(cfg.Liveness.OnlineSeconds, 300)
	is.Equal(cfg.Watchdog.IntervalSeconds, 30)
}

func TestLoadAppConfigDefaultsWhenFileIsMissing(t *testing.T) {
	is := is.New(t)

	cfg, err := loadAppConfig("/no/such/file.yaml", defaultFlags())
	is.NoErr(err)

	is.Equal(cfg.Commands.RetentionHours, 0) // falls back to the built-in retention
}

func TestLoadAppConfigRetentionOverride(t *testing.T) {
	is := is.New(t)

	flags := defaultFlags()
	flags[commandRetention] = "48h"

	cfg, err := loadAppConfig("/no/such/file.yaml", flags)
	is.NoErr(err)

	is.Equal(cfg.Commands.RetentionHours, 48)
}

const configYaml string = `
master:
  name: master-001
  id: 1
liveness:
  online: 300
  offline: 900
commands:
  retentionHours: 72
watchdog:
  interval: 30
`
