package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/os-algorithms/schedsim/api"
	"github.com/os-algorithms/schedsim/sim"
)

// ServerConfig is the serve command's configuration.
type ServerConfig struct {
	Port int
	API  api.Config
}

// loadServerConfig reads path (optional) with viper. SCHEDSIM_* environment
// variables override the file, e.g. SCHEDSIM_SCHEDULER_ROUND_ROBIN_TIME_QUANTUM.
func loadServerConfig(path string) (*ServerConfig, error) {
	v := viper.New()
	v.SetConfigType("yaml")
	v.SetDefault("port", 3000)
	v.SetDefault("scheduler.round_robin.time_quantum", 2)
	v.SetDefault("scheduler.c_scan.max_cylinder", 199)
	v.SetEnvPrefix("SCHEDSIM")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("reading server config: %w", err)
		}
	}

	cfg := &ServerConfig{
		Port: v.GetInt("port"),
		API: api.Config{
			DefaultQuantum:     v.GetInt64("scheduler.round_robin.time_quantum"),
			DefaultMaxCylinder: v.GetInt64("scheduler.c_scan.max_cylinder"),
		},
	}
	if cfg.Port <= 0 || cfg.Port > 65535 {
		return nil, fmt.Errorf("%w: port %d outside [1,65535]", sim.ErrInvalidInput, cfg.Port)
	}
	if err := sim.ValidateQuantum(cfg.API.DefaultQuantum); err != nil {
		return nil, fmt.Errorf("scheduler.round_robin.time_quantum: %w", err)
	}
	if cfg.API.DefaultMaxCylinder < 0 {
		return nil, fmt.Errorf("%w: scheduler.c_scan.max_cylinder must be non-negative", sim.ErrInvalidInput)
	}
	return cfg, nil
}

func newServeCmd() *cobra.Command {
	var (
		configPath string
		port       int
	)
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the scheduling policies over HTTP",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadServerConfig(configPath)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("port") {
				cfg.Port = port
			}

			app := api.NewApp(cfg.API)
			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
			defer stop()
			go func() {
				<-ctx.Done()
				logrus.Info("Shutting down server")
				_ = app.Shutdown()
			}()

			logrus.Infof("Listening on :%d (quantum=%d, max cylinder=%d)", cfg.Port, cfg.API.DefaultQuantum, cfg.API.DefaultMaxCylinder)
			return app.Listen(fmt.Sprintf(":%d", cfg.Port))
		},
	}
	cmd.Flags().StringVarP(&configPath, "config", "c", "", "Path to a server config YAML file")
	cmd.Flags().IntVar(&port, "port", 0, "Listen port (overrides the config file)")
	return cmd
}
