// cmd/mathkit — command-line front end for the mathkit numeric core.
//
// Each subcommand wraps one calculator and prints its structured result as
// JSON, so output can be piped into other tooling. Defaults are
// configurable through a config file or MATHKIT_* environment variables.
package main

import (
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var cfgFile string

func main() {
	root := &cobra.Command{
		Use:           "mathkit",
		Short:         "Numeric calculators for math taught through code",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default $HOME/.mathkit.yaml)")
	cobra.OnInitialize(initConfig)

	root.AddCommand(
		newSumCmd(),
		newQuadCmd(),
		newTriangleCmd(),
		newStatsCmd(),
		newVecCmd(),
		newMatCmd(),
		newTrigCmd(),
		newVerifyCmd(),
		newRenderCmd(),
		newServeCmd(),
	)

	if err := root.Execute(); err != nil {
		log.SetFlags(0)
		log.Fatalf("mathkit: %v", err)
	}
}

func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(home)
			viper.SetConfigName(".mathkit")
			viper.SetConfigType("yaml")
		}
	}
	viper.SetEnvPrefix("MATHKIT")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	viper.SetDefault("server.listen", ":8080")
	viper.SetDefault("stats.bins", 8)
	viper.SetDefault("render.width", 640)
	viper.SetDefault("render.height", 480)

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "using config:", viper.ConfigFileUsed())
	}
}
