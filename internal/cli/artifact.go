package cli

import (
	"log/slog"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/shaiso/Conveyor/internal/domain"
)

// NewArtifactCmd создаёт группу команд для работы с трекером артефактов.
func NewArtifactCmd(loggerFn func() *slog.Logger, outputFn func() *Output) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "artifact",
		Short: "Query the artifact tracking system",
	}

	cmd.AddCommand(newArtifactResolveCmd(loggerFn, outputFn))

	return cmd
}

func newArtifactResolveCmd(loggerFn func() *slog.Logger, outputFn func() *Output) *cobra.Command {
	return &cobra.Command{
		Use:   "resolve NAME[:QUALIFIER]",
		Short: "Resolve an artifact reference to a concrete version",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			logger := loggerFn()
			out := outputFn()

			ref := domain.ParseArtifactRef(args[0])

			tracker, closeTracker, err := buildTracker(ctx, logger)
			if err != nil {
				return err
			}
			defer closeTracker()

			handle, err := tracker.Resolve(ctx, ref.Name, ref.Qualifier)
			if err != nil {
				return err
			}

			headers := []string{"NAME", "VERSION", "URI", "CREATED"}
			rows := [][]string{{
				handle.Name,
				strconv.Itoa(handle.Version),
				handle.URI,
				handle.CreatedAt.Format("2006-01-02 15:04:05"),
			}}

			out.Print(headers, rows, handle)
			return nil
		},
	}
}
