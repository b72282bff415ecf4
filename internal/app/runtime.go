package app

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"anchortip/internal/bus"
	"anchortip/internal/config"
	"anchortip/internal/logging"
)

// Runtime wires the demo's paths, persisted config, logging, and the
// event bus the tooltip layer listens on.
type Runtime struct {
	mu sync.RWMutex

	Ctx    context.Context
	cancel context.CancelFunc

	Paths  Paths
	Config config.AppConfig

	LogManager *logging.Manager
	Bus        *bus.PubSubBus
}

func Initialize(parent context.Context) (*Runtime, error) {
	paths, err := ResolvePaths()
	if err != nil {
		return nil, err
	}
	cfg, err := config.Load(paths.ConfigFile)
	if err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	ctx, cancel := context.WithCancel(parent)
	rt := &Runtime{
		Ctx:    ctx,
		cancel: cancel,
		Paths:  paths,
		Config: cfg,
	}

	logMgr := logging.NewManager()
	if err := logMgr.Configure(cfg.Logging, paths.LogFile); err != nil {
		cancel()
		return nil, fmt.Errorf("configure logging: %w", err)
	}
	rt.LogManager = logMgr
	slog.Info("starting anchortip demo", "version", BuildVersion(), "build_date", BuildDateYMD())

	rt.Bus = bus.New(logMgr.Logger("bus"))

	return rt, nil
}

// SaveAndApplyConfig persists the given config and reconfigures logging
// to match. Tooltip defaults take effect for areas created afterwards.
func (r *Runtime) SaveAndApplyConfig(cfg config.AppConfig) error {
	cfg.FillMissingDefaults()
	if err := cfg.Validate(); err != nil {
		return err
	}

	r.mu.Lock()
	if err := config.Save(r.Paths.ConfigFile, cfg); err != nil {
		r.mu.Unlock()
		return err
	}
	r.Config = cfg
	r.mu.Unlock()

	return r.LogManager.Configure(cfg.Logging, r.Paths.LogFile)
}

func (r *Runtime) CurrentConfig() config.AppConfig {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.Config
}

func (r *Runtime) Close() error {
	if r.cancel != nil {
		r.cancel()
	}
	if r.Bus != nil {
		r.Bus.Close()
	}
	if r.LogManager != nil {
		_ = r.LogManager.Close()
	}

	return nil
}
