package cli

import (
	"fmt"
	"strconv"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/ib-77/stepkit/pkg/rop/mathx"
)

func newMathCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "math",
		Short: "Numeric helpers",
	}
	cmd.AddCommand(
		newRangeCmd("clamp", "Clamp V into [MIN, MAX]", mathx.Clamp[float64], parseFloat),
		newRangeCmd("overflow", "Wrap V around [MIN, MAX]", mathx.Overflow[int], strconv.Atoi),
		newRandCmd(),
		newHexCmd(),
		newDecCmd(),
	)
	return cmd
}

func parseFloat(s string) (float64, error) {
	return strconv.ParseFloat(s, 64)
}

func parseArgs[T any](args []string, parse func(string) (T, error)) ([]T, error) {
	out := make([]T, len(args))
	for i, a := range args {
		v, err := parse(a)
		if err != nil {
			return nil, errors.Wrapf(err, "argument %d", i+1)
		}
		out[i] = v
	}
	return out, nil
}

func newRangeCmd[T any](use, short string, fn func(v, min, max T) (T, error),
	parse func(string) (T, error)) *cobra.Command {
	return &cobra.Command{
		Use:   use + " V MIN MAX",
		Short: short,
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			vals, err := parseArgs(args, parse)
			if err != nil {
				return err
			}
			res, err := fn(vals[0], vals[1], vals[2])
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), res)
			return err
		},
	}
}

func newRandCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rand MIN MAX",
		Short: "Random integer in [MIN, MAX]",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			vals, err := parseArgs(args, strconv.Atoi)
			if err != nil {
				return err
			}
			n, err := mathx.Rand(vals[0], vals[1])
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), n)
			return err
		},
	}
}

func newHexCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "hex DEC",
		Short: "Convert a decimal integer to hexadecimal",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return errors.Wrap(err, "argument 1")
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), mathx.DecToHex(n))
			return err
		},
	}
}

func newDecCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "dec HEX",
		Short: "Convert a hexadecimal integer to decimal",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := mathx.HexToDec(args[0])
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), n)
			return err
		},
	}
}
