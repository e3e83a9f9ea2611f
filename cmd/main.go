package main

import (
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/jateen67/minheap/internal"
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	v := internal.NewViper()

	cmd := &cobra.Command{
		Use:          "minheap",
		Short:        "Interactive fixed-capacity min-heap of records",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := internal.LoadConfig(v)
			if err != nil {
				return err
			}
			logger, err := internal.NewLogger(cfg.LogLevel)
			if err != nil {
				return err
			}
			defer logger.Sync()

			q, err := internal.NewQueue(cfg, logger)
			if err != nil {
				return err
			}
			defer q.Close()

			logger.Info("queue ready", zap.Int("capacity", q.Cap()), zap.Int("shards", cfg.Shards))
			return newSession(q, cfg.RunSize, logger).run(cmd.InOrStdin(), cmd.OutOrStdout())
		},
	}

	if err := bindFlags(cmd.Flags(), v); err != nil {
		panic(err)
	}
	return cmd
}

func bindFlags(flags *pflag.FlagSet, v *viper.Viper) error {
	flags.Int(internal.ConfigCapacity, v.GetInt(internal.ConfigCapacity), "maximum number of records per heap")
	flags.Int(internal.ConfigShards, v.GetInt(internal.ConfigShards), "number of heaps records are spread over")
	flags.Int(internal.ConfigRunSize, v.GetInt(internal.ConfigRunSize), "staged records per sorted run, 0 for a single run")
	flags.String(internal.ConfigLogLevel, v.GetString(internal.ConfigLogLevel), "log level (debug, info, warn, error)")
	return v.BindPFlags(flags)
}
