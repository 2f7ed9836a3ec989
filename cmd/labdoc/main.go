// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the labdoc CLI: extraction of
// lab-assignment documents and rendering of lab reports.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// version is set at build time via ldflags.
var version = "dev"

// rootCmd is the base command for the labdoc CLI.
var rootCmd = &cobra.Command{
	Use:   "labdoc",
	Short: "Convert lab assignments and render lab reports",
	Long: `labdoc converts lab-assignment source documents (PDF, DOCX, TXT, MD)
into plain text or Markdown with extracted images, and renders structured
Markdown reports into styled .docx documents with a generated title page.

Each pipeline is a subcommand: extract and render.`,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./labdoc.json or ~/.config/labdoc/config.json)")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("labdoc")
		viper.SetConfigType("json")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "labdoc"))
		}
	}

	viper.SetDefault("images_dir", "images")

	viper.SetEnvPrefix("LABDOC")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
