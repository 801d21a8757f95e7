package main

import (
	"log/slog"

	"github.com/spf13/cobra"

	"glint/internal/config"
	"glint/internal/logfile"
	"glint/internal/statuslog"
	"glint/internal/term"
)

// commandContext carries lazily resolved configuration and reporter wiring
// shared by all subcommands.
type commandContext struct {
	configFlag *string

	cfg        *config.Config
	configPath string
}

func newCommandContext(configFlag *string) *commandContext {
	return &commandContext{configFlag: configFlag}
}

func (c *commandContext) ensureConfig() (*config.Config, error) {
	if c.cfg != nil {
		return c.cfg, nil
	}
	path := ""
	if c.configFlag != nil {
		path = *c.configFlag
	}
	cfg, resolvedPath, _, err := config.Load(path)
	if err != nil {
		return nil, err
	}
	c.cfg = cfg
	c.configPath = resolvedPath
	return cfg, nil
}

// reporter builds the registry for an interactive command: console dispatch
// on the command's stdout plus a JSON session sink when file logging is
// configured. The returned cleanup closes the session file and applies
// retention.
func (c *commandContext) reporter(cmd *cobra.Command) (*statuslog.Registry, func(), error) {
	cfg, err := c.ensureConfig()
	if err != nil {
		return nil, nil, err
	}

	console := term.New(cmd.OutOrStdout(), consoleOptions(cfg))
	global := new(slog.LevelVar)
	global.Set(statuslog.ParseLevel(cfg.LogLevel))

	var extra []slog.Handler
	cleanup := func() {}
	if cfg.LogDir != "" {
		session, err := logfile.Open(cfg.LogDir)
		if err != nil {
			return nil, nil, err
		}
		extra = append(extra, statuslog.WithSessionID(
			statuslog.NewJSONSink(session.Writer(), slog.LevelDebug), session.ID))
		cleanup = func() {
			_ = session.Close()
			_, _ = logfile.Prune(cfg.LogDir, cfg.LogRetentionDays, 5, session.Path)
		}
	}

	registry := statuslog.New(statuslog.Options{
		Console: console,
		Global:  global,
		Extra:   extra,
	})
	return registry, cleanup, nil
}

func consoleOptions(cfg *config.Config) term.Options {
	var opts term.Options
	switch cfg.Color {
	case "always":
		opts.ForceColor = true
	case "never":
		opts.DisableColor = true
	}
	switch cfg.Animation {
	case "always":
		opts.ForceAnimation = true
	case "never":
		opts.DisableAnimation = true
	}
	return opts
}
