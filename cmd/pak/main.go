package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/strrl/prefixed-api-key/cmd/pak/commands"
)

// newRootCmd creates the root cobra command for the pak CLI.
func newRootCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "pak",
		Short: "Prefixed API key toolbox",
		Long: `pak generates and verifies prefixed API keys: secrets of the form
{prefix}_{short_token}_{long_token}, where only a hash of the long
token is ever stored by the issuing service.`,
	}
}

// initConfig returns a configuration initializer that sets up viper
// to read from config files and environment variables.
func initConfig(configFile *string) func() {
	return func() {
		if *configFile != "" {
			viper.SetConfigFile(*configFile)
		} else {
			home, err := os.UserHomeDir()
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(1)
			}

			viper.AddConfigPath(home + "/.pak")
			viper.AddConfigPath(".")
			viper.SetConfigName("config")
			viper.SetConfigType("yaml")
		}

		viper.SetEnvPrefix("PAK")
		viper.AutomaticEnv()

		if err := viper.ReadInConfig(); err == nil {
			fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
		}
	}
}

func main() {
	var configFile string

	rootCmd := newRootCmd()

	cobra.OnInitialize(initConfig(&configFile))

	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file (default is $HOME/.pak/config.yaml)")

	rootCmd.AddCommand(commands.NewVersionCmd())
	rootCmd.AddCommand(commands.NewGenerateCmd())
	rootCmd.AddCommand(commands.NewCheckCmd())
	rootCmd.AddCommand(commands.NewHashCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
