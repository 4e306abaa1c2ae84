package main

import (
	"io"
	"strconv"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/wwqdrh/minheap"
	"github.com/wwqdrh/minheap/logger"
)

var defaultDemoValues = []int{6, 3, 5, 2, 4}

func newDemoCmd() *cobra.Command {
	var (
		capacity int
		removes  int
	)
	cmd := &cobra.Command{
		Use:   "demo [flags] [--] [values...]",
		Short: "Add values one by one and print the backing array after each step",
		Example: `  minheap demo 6 3 5 2 4
  minheap demo --size 2 -- -5 1`,
		RunE: func(cmd *cobra.Command, args []string) error {
			values, err := parseInts(args)
			if err != nil {
				return err
			}
			if len(values) == 0 {
				values = defaultDemoValues
			}
			return runDemo(cmd.OutOrStdout(), capacity, removes, values)
		},
	}
	cmd.Flags().IntVar(&capacity, "size", 5, "heap capacity for the demo")
	cmd.Flags().IntVar(&removes, "remove", 2, "number of removals after inserting")
	// 第一个值之后不再解析 flag；以 - 开头的值放在 -- 之后
	cmd.Flags().SetInterspersed(false)
	return cmd
}

func runDemo(w io.Writer, capacity, removes int, values []int) error {
	out := logger.NewConsole(w)

	h, err := minheap.New(capacity)
	if err != nil {
		return err
	}

	for _, v := range values {
		if err := h.Add(v); err != nil {
			out.Warn().Err(err).Int("value", v).Msg("add failed")
			continue
		}
		out.Info().Int("value", v).Str("data", h.String()).Msg("added")
	}
	for i := 0; i < removes; i++ {
		v, err := h.Remove()
		if err != nil {
			out.Warn().Err(err).Msg("remove failed")
			continue
		}
		out.Info().Int("value", v).Str("data", h.String()).Msg("minimum extracted")
	}
	return nil
}

func parseInts(args []string) ([]int, error) {
	res := make([]int, 0, len(args))
	for _, a := range args {
		v, err := strconv.Atoi(a)
		if err != nil {
			return nil, errors.Wrapf(err, "invalid value %q", a)
		}
		res = append(res, v)
	}
	return res, nil
}
