package cli

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/shaiso/Conveyor/internal/pipeline"
	"github.com/shaiso/Conveyor/internal/workspace"
)

// NewRunCmd создаёт команду запуска pipeline.
func NewRunCmd(loggerFn func() *slog.Logger, outputFn func() *Output) *cobra.Command {
	var configPath string
	var overrides []string
	var steps string
	var driver string
	var projectRoot string

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Execute the pipeline",
		Long: `Execute the pipeline: the active step subset is taken from main.steps
("all" or a comma-separated list), resolved parameters are passed to the
task runner step by step in registry order.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			logger := loggerFn()
			out := outputFn()

			allOverrides := overrides
			if steps != "" {
				// --steps — сокращение для --set main.steps=...
				allOverrides = append(allOverrides, "main.steps="+steps)
			}

			tracker, closeTracker, err := buildTracker(ctx, logger)
			if err != nil {
				return err
			}
			defer closeTracker()

			publisher, closePublisher := buildPublisher(ctx, logger)
			defer closePublisher()

			orch := pipeline.New(pipeline.Config{
				Tracker:     tracker,
				Runner:      buildRunner(logger, driver),
				Workspaces:  workspace.NewManager(""),
				Publisher:   publisher,
				ProjectRoot: projectRoot,
				Logger:      logger,
			})

			report, err := orch.Run(ctx, configPath, allOverrides)
			if report != nil {
				printReport(out, report)
			}
			return err
		},
	}

	cmd.Flags().StringVar(&configPath, "config", "config.yaml", "Path to pipeline config")
	cmd.Flags().StringArrayVar(&overrides, "set", nil, "Config override key=value (repeatable)")
	cmd.Flags().StringVar(&steps, "steps", "", `Step selection: "all" or comma-separated names`)
	cmd.Flags().StringVar(&driver, "driver", "", "Driver command for local step execution")
	cmd.Flags().StringVar(&projectRoot, "project-root", ".", "Project root for local steps")

	return cmd
}

// printReport выводит итог run: статус каждого шага в порядке реестра.
func printReport(out *Output, report *pipeline.Report) {
	headers := []string{"STEP", "STATUS"}
	rows := make([][]string, 0, len(report.Run.Steps))
	for _, name := range report.Run.Steps {
		rows = append(rows, []string{name, string(report.Steps[name])})
	}

	out.Print(headers, rows, report)
	if report.Run.Error != "" {
		out.Error(report.Run.Error)
	}
}
