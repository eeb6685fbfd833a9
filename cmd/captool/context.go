package main

import (
	"os"

	"captool/internal/config"
	"captool/internal/logger"
	"captool/pkg/executor"
)

// commandContext carries the lazily-initialized shared pieces (config,
// logger, executor) into each subcommand.
type commandContext struct {
	configFlag   *string
	logLevelFlag *string

	cfg  *config.Config
	log  logger.Logger
	exec executor.Executor
}

func newCommandContext(configFlag, logLevelFlag *string) *commandContext {
	return &commandContext{
		configFlag:   configFlag,
		logLevelFlag: logLevelFlag,
		exec:         executor.New(),
	}
}

// ensure loads the config on first use. An explicit --config path must
// exist; otherwise config.yaml is used when present and built-in
// defaults when not.
func (c *commandContext) ensure() (*config.Config, logger.Logger, error) {
	if c.cfg != nil {
		return c.cfg, c.log, nil
	}

	var (
		cfg *config.Config
		err error
	)
	switch {
	case *c.configFlag != "":
		cfg, err = config.Load(*c.configFlag)
	case fileExists("config.yaml"):
		cfg, err = config.Load("config.yaml")
	default:
		cfg = config.Default()
	}
	if err != nil {
		return nil, nil, err
	}

	if *c.logLevelFlag != "" {
		cfg.Logging.Level = *c.logLevelFlag
	}

	c.cfg = cfg
	c.log = logger.New(cfg.Logging.Level)
	return c.cfg, c.log, nil
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
