// Package cmd is for command line interactions with the gwprime application
package cmd

import (
	"log"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// RootCmd represents the base command when called without any subcommands.
var RootCmd = &cobra.Command{
	Use: "gwprime",
	Short: `Design Gateway cloning primer pairs for coding sequences.
Primers are filtered by uniqueness and melting temperature and paired by Tm difference`,
	Version: "0.1.0",
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the RootCmd.
func Execute() {
	if err := RootCmd.Execute(); err != nil {
		log.Fatalf("%v", err)
	}
}

func init() {
	cobra.OnInitialize(initSettings)
}

// initSettings reads in the settings file, if there is one.
func initSettings() {
	viper.SetConfigName(".gwprime")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	if home, err := os.UserHomeDir(); err == nil {
		viper.AddConfigPath(home)
	}

	viper.ReadInConfig() // running without a settings file is fine
}
