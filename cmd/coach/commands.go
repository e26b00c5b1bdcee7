package main

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"time"

	"coach/config"
	deliverycontext "coach/internal/delivery/context"
	domainerrors "coach/internal/domain/errors"
	"coach/internal/domain/lifecycle"
	"coach/internal/domain/service"
	"coach/internal/errors"
	logs "coach/internal/infra/log"
	"coach/internal/usecase"

	"github.com/spf13/cobra"
	"go.uber.org/fx"
)

const maxDays = 90

// commandDeps is the slice of the graph the one-shot commands need.
type commandDeps struct {
	fx.In

	Config   *config.Config
	Logger   *slog.Logger
	Sessions usecase.SessionUsecase
	Metrics  usecase.MetricsUsecase
	Briefs   usecase.BriefUsecase
	Tokens   service.APITokenService
}

func newRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          "coach",
		Short:        "Garmin Connect metrics for the AI coach",
		SilenceUsage: true,
	}

	root.AddCommand(
		newServeCommand(),
		newLoginCommand(),
		newStatsCommand(),
		newActivitiesCommand(),
		newBriefCommand(),
		newTokenCommand(),
	)

	return root
}

func newServeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			newServerApp().Run()
		},
	}
}

func newLoginCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "login",
		Short: "Log in to Garmin Connect and persist the session tokens",
		Long: `Resumes the session from the token store when possible, otherwise
logs in with GARMIN_EMAIL / GARMIN_PASSWORD or the Secret Manager secrets
garmin-email / garmin-password.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCommand(cmd, func(ctx context.Context, deps commandDeps) error {
				if err := login(ctx, deps); err != nil {
					return err
				}

				name, _ := deps.Sessions.DisplayName(ctx)

				return writeJSON(cmd.OutOrStdout(), map[string]any{
					"authenticated": true,
					"display_name":  name,
				})
			})
		},
	}
}

func newStatsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Print today's metrics snapshot",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCommand(cmd, func(ctx context.Context, deps commandDeps) error {
				if err := login(ctx, deps); err != nil {
					return err
				}

				snapshot, err := deps.Metrics.TodayStats(ctx)
				if err != nil {
					return err
				}

				return writeJSON(cmd.OutOrStdout(), snapshot)
			})
		},
	}
}

func newActivitiesCommand() *cobra.Command {
	var days int

	cmd := &cobra.Command{
		Use:   "activities",
		Short: "Print the activities of the trailing window",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := checkDays(days); err != nil {
				return err
			}

			return runCommand(cmd, func(ctx context.Context, deps commandDeps) error {
				if err := login(ctx, deps); err != nil {
					return err
				}

				activities, err := deps.Metrics.RecentActivities(ctx, windowDays(days, deps.Config))
				if err != nil {
					return err
				}

				return writeJSON(cmd.OutOrStdout(), activities)
			})
		},
	}

	cmd.Flags().IntVar(&days, "days", 0, "trailing window in calendar days (default garmin.recentDays)")

	return cmd
}

func newBriefCommand() *cobra.Command {
	var (
		days    int
		publish bool
	)

	cmd := &cobra.Command{
		Use:   "brief",
		Short: "Print or publish the coaching brief",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := checkDays(days); err != nil {
				return err
			}

			return runCommand(cmd, func(ctx context.Context, deps commandDeps) error {
				if err := login(ctx, deps); err != nil {
					return err
				}

				window := windowDays(days, deps.Config)
				if publish {
					eventID, err := deps.Briefs.Publish(ctx, window)
					if err != nil {
						return err
					}

					return writeJSON(cmd.OutOrStdout(), map[string]string{"event_id": eventID})
				}

				brief, err := deps.Briefs.Build(ctx, window)
				if err != nil {
					return err
				}

				return writeJSON(cmd.OutOrStdout(), brief)
			})
		},
	}

	cmd.Flags().IntVar(&days, "days", 0, "trailing window in calendar days (default garmin.recentDays)")
	cmd.Flags().BoolVar(&publish, "publish", false, "publish the brief as an event instead of printing it")

	return cmd
}

func newTokenCommand() *cobra.Command {
	var (
		subject string
		ttl     time.Duration
	)

	cmd := &cobra.Command{
		Use:   "token",
		Short: "Mint a bearer token for the /api/v1 routes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCommand(cmd, func(ctx context.Context, deps commandDeps) error {
				token, err := deps.Tokens.GenerateToken(subject, ttl)
				if err != nil {
					return err
				}

				return writeJSON(cmd.OutOrStdout(), map[string]string{"token": token})
			})
		},
	}

	cmd.Flags().StringVar(&subject, "subject", "coach", "token subject")
	cmd.Flags().DurationVar(&ttl, "ttl", 24*time.Hour, "token lifetime")

	return cmd
}

// runCommand builds the graph without the HTTP delivery, starts it for the
// duration of run and stops it afterwards.
func runCommand(cmd *cobra.Command, run func(ctx context.Context, deps commandDeps) error) error {
	var deps commandDeps
	app := fx.New(
		fx.NopLogger,
		injectInfra(logs.NewStderr),
		injectService(),
		injectUsecase(),
		fx.Populate(&deps),
	)
	if err := app.Err(); err != nil {
		return errors.WithStack(err)
	}

	startCtx, cancel := context.WithTimeout(cmd.Context(), lifecycle.DefaultTimeout)
	defer cancel()
	if err := app.Start(startCtx); err != nil {
		return errors.Wrap(err, "start")
	}

	defer func() {
		stopCtx, cancel := context.WithTimeout(context.Background(), lifecycle.DefaultTimeout)
		defer cancel()
		if err := app.Stop(stopCtx); err != nil {
			deps.Logger.Warn("Failed to stop cleanly", slog.Any("error", err))
		}
	}()

	return run(deliverycontext.NewScope(cmd.Context(), deps.Logger), deps)
}

func login(ctx context.Context, deps commandDeps) error {
	if !deps.Sessions.Login(ctx, "", "") {
		return errors.WithStack(domainerrors.ErrLoginFailed)
	}

	return nil
}

func checkDays(days int) error {
	if days < 0 || days > maxDays {
		return errors.Errorf("--days must be 0 (default window) or 1..%d", maxDays)
	}

	return nil
}

func windowDays(days int, cfg *config.Config) int {
	if days == 0 {
		return cfg.Garmin.RecentDays
	}

	return days
}

func writeJSON(w io.Writer, v any) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")

	return errors.WithStack(encoder.Encode(v))
}
