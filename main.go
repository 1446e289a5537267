package main

import (
	"fmt"
	"os"

	"flowsim/calculator"
	"flowsim/channel"
	"flowsim/conf"
	"flowsim/material"
	"flowsim/server"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"gopkg.in/ini.v1"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "flowsim",
		Short: "Non-isothermal drag flow simulation",
		Long: `flowsim computes the steady-state temperature and viscosity profile
of a non-Newtonian melt moving along a drag-flow channel.`,
		SilenceUsage: true,
	}
	rootCmd.PersistentFlags().String("config", conf.DefaultPath, "Path to config.ini")

	rootCmd.AddCommand(
		newServeCmd(),
		newRunCmd(),
		newMaterialsCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// 读取配置并设置日志
func loadConfig(cmd *cobra.Command) (*ini.File, error) {
	path, _ := cmd.Flags().GetString("config")
	file, err := conf.Load(path)
	if err != nil {
		return nil, fmt.Errorf("load config %s: %w", path, err)
	}
	conf.SetupLogging(file)
	return file, nil
}

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Serve simulations over websocket",
		RunE: func(cmd *cobra.Command, args []string) error {
			file, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			catalog, err := material.Load(file)
			if err != nil {
				return err
			}
			log.WithField("materials", catalog.Len()).Info("material catalog loaded")

			s := server.NewServer(
				server.LoadConfig(file),
				calculator.NewCalculator(calculator.LoadConfig(file)),
				catalog,
				channel.LoadSetup(file),
			)
			return s.Serve()
		},
	}
}

func newMaterialsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "materials",
		Short: "List materials in the catalog",
		RunE: func(cmd *cobra.Command, args []string) error {
			file, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			catalog, err := material.Load(file)
			if err != nil {
				return err
			}
			for _, key := range catalog.Keys() {
				m, _ := catalog.Get(key)
				fmt.Fprintf(cmd.OutOrStdout(), "%-12s %s\n", key, m.Name)
			}
			return nil
		},
	}
}
