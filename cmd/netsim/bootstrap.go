package main

import (
	"fmt"
	"os"

	"github.com/dshills/netsim/pkg/applog"
	"github.com/dshills/netsim/pkg/engineconfig"
	"github.com/dshills/netsim/pkg/loader"
	"github.com/dshills/netsim/pkg/model"
	"github.com/dshills/netsim/pkg/sim"
)

// bootstrap loads the engine config and model file named by --config and
// wires up a logger and simulation engine from them. It's the shared setup
// every subcommand needs before it can do its own work.
func bootstrap() (*engineconfig.Config, *model.Network, *sim.Engine, error) {
	if cfgFile == "" {
		return nil, nil, nil, fmt.Errorf("--config flag is required")
	}

	cfg, err := engineconfig.LoadConfig(cfgFile)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("loading config: %w", err)
	}

	level := applog.Level(cfg.Log.Level)
	if verbose {
		level = applog.LevelDebug
	}
	log := applog.New(applog.Config{
		Level:  level,
		Format: applog.Format(cfg.Log.Format),
		Output: os.Stderr,
	})
	applog.SetDefault(log)

	log.WithField("path", cfg.Model.Path).Info("loading model file")
	net, err := loader.Load(cfg.Model.Path)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("loading model: %w", err)
	}

	engine := sim.NewEngine(net, cfg.Seed, cfg.Hash(), log)
	return cfg, net, engine, nil
}
