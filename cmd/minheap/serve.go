package main

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/wwqdrh/minheap"
	"github.com/wwqdrh/minheap/config"
	"github.com/wwqdrh/minheap/logger"
	"github.com/wwqdrh/minheap/server"
)

func newServeCmd(v *viper.Viper) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve a shared heap over HTTP",
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := config.Load(v)
			if err != nil {
				return err
			}
			l, err := logger.New(logger.Config{Dir: c.LogDir, Level: c.LogLevel})
			if err != nil {
				return err
			}
			defer l.Sync()

			h, err := minheap.NewSync(c.Capacity)
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)
			defer stop()

			if err := server.New(h, l).Run(ctx, c.Addr); err != nil {
				l.Error("server stopped", zap.Error(err))
				return err
			}
			return nil
		},
	}
	cmd.Flags().Int("capacity", 16, "heap capacity")
	cmd.Flags().String("addr", ":8080", "listen address")
	_ = v.BindPFlag(config.KeyCapacity, cmd.Flags().Lookup("capacity"))
	_ = v.BindPFlag(config.KeyAddr, cmd.Flags().Lookup("addr"))
	return cmd
}
