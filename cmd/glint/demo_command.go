package main

import (
	"errors"
	"time"

	"github.com/spf13/cobra"

	"glint/internal/statuslog"
)

func newDemoCommand(ctx *commandContext) *cobra.Command {
	var stepDelay time.Duration

	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Run sample jobs that exercise the status reporter",
		RunE: func(cmd *cobra.Command, args []string) error {
			registry, cleanup, err := ctx.reporter(cmd)
			if err != nil {
				return err
			}
			defer cleanup()

			log := registry.Logger("glint.demo")
			log.Info("starting demo")
			log.InfoOnce("repeated messages render once: %d", 1)
			log.InfoOnce("repeated messages render once: %d", 1)
			log.Indented("this line carries no prefix")

			err = log.Run("Scanning targets", func(p *statuslog.Progress) error {
				for i := 1; i <= 20; i++ {
					p.Status("target %d/20", i)
					time.Sleep(stepDelay)
				}
				return nil
			})
			if err != nil {
				return err
			}

			p := log.Progress("Connecting", statuslog.WithStatus("resolving host"))
			time.Sleep(stepDelay)
			p.Status("performing handshake")
			time.Sleep(stepDelay)
			p.Failure("connection refused")

			if err := log.Run("Flaky job", func(p *statuslog.Progress) error {
				p.Status("about to fail")
				time.Sleep(stepDelay)
				return errors.New("expected demo failure")
			}); err != nil {
				log.Warning("flaky job reported: %v", err)
			}

			log.Success("demo complete")
			return nil
		},
	}

	cmd.Flags().DurationVar(&stepDelay, "step-delay", 120*time.Millisecond, "Delay between demo status updates")
	return cmd
}
