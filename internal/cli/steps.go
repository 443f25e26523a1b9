package cli

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/shaiso/Conveyor/internal/registry"
)

// NewStepsCmd создаёт команду вывода каталога шагов.
func NewStepsCmd(outputFn func() *Output) *cobra.Command {
	return &cobra.Command{
		Use:   "steps",
		Short: "List registered pipeline steps in execution order",
		RunE: func(cmd *cobra.Command, args []string) error {
			out := outputFn()
			reg := registry.Default()

			headers := []string{"STEP", "SOURCE", "PATH", "ENTRY_POINT", "PRODUCES"}
			rows := make([][]string, 0, reg.Size())

			steps := make([]*registry.StepDef, 0, reg.Size())
			for _, name := range reg.Names() {
				step, err := reg.Resolve(name)
				if err != nil {
					return err
				}
				steps = append(steps, step)
				rows = append(rows, []string{
					step.Name,
					string(step.Source),
					step.Path,
					step.EntryPoint,
					strings.Join(step.Produces, ","),
				})
			}

			out.Print(headers, rows, steps)
			return nil
		},
	}
}
