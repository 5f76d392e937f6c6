package main

import (
	"context"
	"fmt"
	"log"

	"github.com/urfave/cli/v3"
	"github.com/viant/afs"
	"github.com/viant/corrections"
	"github.com/viant/corrections/model"
	"github.com/viant/corrections/progress"
)

func submitCommand() *cli.Command {
	return &cli.Command{
		Name:      "submit",
		Usage:     "submit a corrections payload",
		ArgsUsage: "<payload.json>",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "config file URL",
				Sources: cli.EnvVars(corrections.EnvConfigURL),
			},
			&cli.StringFlag{
				Name:  "endpoint",
				Usage: "corrections endpoint, overrides config",
			},
			&cli.StringFlag{
				Name:  "export-url",
				Usage: "base URL for local exports, overrides config",
			},
			&cli.StringFlag{
				Name:  "mode",
				Usage: "confirmation mode: ask, auto or deny",
			},
			&cli.BoolFlag{
				Name:  "verbose",
				Usage: "log submission progress",
			},
		},
		Action: runSubmit,
	}
}

func runSubmit(ctx context.Context, cmd *cli.Command) error {
	if cmd.Args().Len() != 1 {
		return fmt.Errorf("expected exactly one payload argument, got %d", cmd.Args().Len())
	}
	fs := afs.New()
	cfg, err := corrections.LoadConfig(ctx, fs, cmd.String("config"))
	if err != nil {
		return err
	}
	applyFlags(cfg, cmd)

	payloadURL := cmd.Args().First()
	data, err := fs.DownloadWithURL(ctx, payloadURL)
	if err != nil {
		return fmt.Errorf("failed to read payload %s: %w", payloadURL, err)
	}
	payload, err := model.DecodePayload(data)
	if err != nil {
		return err
	}

	options := []corrections.Option{corrections.WithConfig(cfg), corrections.WithFs(fs)}
	if cmd.Bool("verbose") {
		options = append(options, corrections.WithListener(logProgress))
	}
	srv, err := corrections.New(options...)
	if err != nil {
		return err
	}
	defer srv.Close()
	srv.Handle(ctx, payload)
	return nil
}

func applyFlags(cfg *corrections.Config, cmd *cli.Command) {
	if v := cmd.String("endpoint"); v != "" {
		cfg.Endpoint = v
	}
	if v := cmd.String("export-url"); v != "" {
		cfg.ExportURL = v
	}
	if v := cmd.String("mode"); v != "" {
		cfg.Policy.Mode = v
	}
}

func logProgress(state progress.State) {
	log.Printf("submission id=%s phase=%s requests=%d exports=%d prompts=%d", state.SubmissionID, state.Phase, state.Requests, state.Exports, state.Prompts)
}
