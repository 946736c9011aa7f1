package cli

import (
	"math"
	"strconv"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/ib-77/stepkit/internal/logging"
	"github.com/ib-77/stepkit/pkg/rop/monad"
)

func newDemoCmd() *cobra.Command {
	var collapsed bool

	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Run the sample pipeline and print its history",
		Long: `Run a pipeline starting at 12 through conditions, defaults, a NaN step,
a re-run and a final string conversion, then print the history table.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			p := runDemo(logging.New("monad"))
			p.Log(cmd.OutOrStdout(), collapsed)
			return nil
		},
	}
	cmd.Flags().BoolVar(&collapsed, "collapsed", false, "Only print the step count and final value")
	return cmd
}

func isTwelve(v any) bool {
	return v == 12
}

func isEven(v any) bool {
	n, ok := v.(int)
	return ok && n%2 == 0
}

func double(n int) int {
	return n * 2
}

func plus(d int) monad.Func {
	return monad.Lift(func(n int) int { return n + d })
}

func notANumber(any) (any, error) {
	return math.NaN(), nil
}

// runDemo walks 12 -> 10 -> 10 -> 12 -> 12 -> 8 -> 4 -> "4".
func runDemo(logger *log.Logger) *monad.Pipeline {
	p := monad.New(12, monad.WithLogger(logger))

	p.SetCondition(isTwelve).SetDefault(10).ReApplyLast()
	p.Run(monad.NewStep(monad.Lift(double), isEven, nil))

	p.SetCondition(nil).SetDefault(nil).
		Apply(plus(2)).
		Apply(notANumber).
		Apply(plus(-4)).
		ReRunLast().
		Apply(monad.Lift(strconv.Itoa))
	return p
}
