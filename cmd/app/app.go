package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/cutekitek/judge-submit/internal/config"
	"github.com/cutekitek/judge-submit/internal/files"
	"github.com/cutekitek/judge-submit/internal/judge/leetcode"
	"github.com/cutekitek/judge-submit/internal/rabbitmq"
	"github.com/cutekitek/judge-submit/internal/workflow"
	"github.com/pkg/errors"
	"github.com/urfave/cli/v3"
)

const (
	exitOK          = 0
	exitError       = 1
	exitInterrupted = 130
)

func exitCode(err error) int {
	switch {
	case err == nil:
		return exitOK
	case errors.Is(err, workflow.ErrCancelled):
		return exitInterrupted
	}
	return exitError
}

func newApp(stdout io.Writer) *cli.Command {
	return &cli.Command{
		Name:  "judge-submit",
		Usage: "Submit a solution to the judge and wait for the verdict",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "config", Aliases: []string{"c"}, Usage: "config file (.env, .yaml, .toml or .json), environment overrides it"},
			&cli.StringFlag{Name: "problem", Aliases: []string{"p"}, Usage: "problem slug"},
			&cli.StringFlag{Name: "question-id", Aliases: []string{"q"}, Usage: "question id"},
			&cli.StringFlag{Name: "lang", Aliases: []string{"l"}, Usage: "language identifier"},
			&cli.StringFlag{Name: "source", Aliases: []string{"s"}, Usage: "solution file or s3://bucket/object"},
			&cli.StringFlag{Name: "base-url", Usage: "judge base url"},
			&cli.DurationFlag{Name: "interval", Usage: "delay between status checks"},
			&cli.IntFlag{Name: "max-attempts", Usage: "status checks before giving up, 0 for no limit"},
			&cli.DurationFlag{Name: "timeout", Usage: "give up polling after this long, 0 for no limit"},
			&cli.StringFlag{Name: "log-level", Usage: "debug, info, warn or error"},
			&cli.BoolFlag{Name: "quiet", Usage: "do not print the progress line"},
		},
		Commands: []*cli.Command{
			{
				Name:  "env",
				Usage: "List the environment variables read at startup",
				Action: func(ctx context.Context, cmd *cli.Command) error {
					_, err := fmt.Fprintln(stdout, config.Usage())
					return err
				},
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			return submit(ctx, cmd, stdout)
		},
	}
}

func loadConfig(cmd *cli.Command) (*config.Config, error) {
	cfg, err := config.NewConfig(cmd.String("config"))
	if err != nil {
		return nil, err
	}
	if cmd.IsSet("problem") {
		cfg.Slug = cmd.String("problem")
	}
	if cmd.IsSet("question-id") {
		cfg.QuestionID = cmd.String("question-id")
	}
	if cmd.IsSet("lang") {
		cfg.Language = cmd.String("lang")
	}
	if cmd.IsSet("source") {
		cfg.Source = cmd.String("source")
	}
	if cmd.IsSet("base-url") {
		cfg.BaseURL = cmd.String("base-url")
	}
	if cmd.IsSet("interval") {
		cfg.PollInterval = cmd.Duration("interval")
	}
	if cmd.IsSet("max-attempts") {
		cfg.PollMaxAttempts = int(cmd.Int("max-attempts"))
	}
	if cmd.IsSet("timeout") {
		cfg.PollTimeout = cmd.Duration("timeout")
	}
	if cmd.IsSet("log-level") {
		cfg.LogLevel = cmd.String("log-level")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func submit(ctx context.Context, cmd *cli.Command, stdout io.Writer) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	setLogLevel(cfg.LogLevel)

	loader, err := files.NewLoader(files.Config{
		Url:      cfg.MinIOHost,
		Login:    cfg.MinIOLogin,
		Password: cfg.MinIOPassword,
		SSL:      cfg.MinIOSSL,
	})
	if err != nil {
		return err
	}
	code, err := loader.Load(ctx, cfg.Source)
	if err != nil {
		if ctx.Err() != nil {
			return errors.Wrapf(workflow.ErrCancelled, "failed to load solution: %v", err)
		}
		return errors.Wrap(err, "failed to load solution")
	}

	wfCfg := workflow.Config{
		Poll: workflow.PollOptions{
			Interval:    cfg.PollInterval,
			MaxAttempts: cfg.PollMaxAttempts,
		},
		PollTimeout: cfg.PollTimeout,
		Quiet:       cmd.Bool("quiet"),
		Out:         stdout,
	}
	if cfg.RabbitMQEnabled() {
		publisher, err := rabbitmq.NewVerdictPublisher(rabbitmq.VerdictPublisherConfig{
			Login:    cfg.RabbitMQUser,
			Password: cfg.RabbitMQPassword,
			Host:     cfg.RabbitMQHost,
			Port:     cfg.RabbitMQPort,
			Queue:    cfg.VerdictQueue,
		})
		if err != nil {
			slog.Warn("verdict publishing disabled", "error", err)
		} else {
			defer publisher.Close()
			wfCfg.Publisher = publisher
		}
	}

	client := leetcode.NewClient(leetcode.Config{
		BaseURL:   cfg.BaseURL,
		UserAgent: cfg.UserAgent,
		Timeout:   cfg.HTTPTimeout,
	})
	verdict, err := workflow.NewWorkflow(wfCfg, client).Run(ctx, cfg.Credentials(), cfg.Request(code))
	if err != nil {
		return err
	}
	slog.Info("workflow finished", "outcome", verdict.Outcome, "state", verdict.Result.State)
	return nil
}
