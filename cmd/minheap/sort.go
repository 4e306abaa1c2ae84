package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/wwqdrh/minheap"
)

func newSortCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "sort values...",
		Short: "Print values in ascending order by draining a heap",
		Args:  cobra.MinimumNArgs(1),
		// 负数如 -1 不能被当成 flag
		DisableFlagParsing: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			values, err := parseInts(args)
			if err != nil {
				return err
			}
			return runSort(cmd.OutOrStdout(), values)
		},
	}
}

func runSort(w io.Writer, values []int) error {
	h, err := minheap.New(len(values))
	if err != nil {
		return err
	}
	for _, v := range values {
		if err := h.Add(v); err != nil {
			return err
		}
	}

	res := make([]string, 0, len(values))
	for h.Len() > 0 {
		v, err := h.Remove()
		if err != nil {
			return err
		}
		res = append(res, fmt.Sprint(v))
	}
	_, err = fmt.Fprintln(w, strings.Join(res, " "))
	return err
}
