/*
Copyright © 2025 Valentyn Solomko <valentyn.solomko@gmail.com>

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

	http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/valpere/rapidtran/internal/config"
)

var version = "0.1.0"

var (
	cfgFile string
	verbose bool

	appConfig *config.Config
	logger    = zap.NewNop()
)

var rootCmd = &cobra.Command{
	Use:   "rapidtran",
	Short: "English text translator backed by RapidAPI",
	Long: `A translator for English text into Indian and European languages.

Translations go through a RapidAPI text translation endpoint by default;
Google Cloud Translation and MyMemory can be selected with --service.

Supported target languages: hi, mr, bn, ta, te, gu, kn, ml, fr, es, de

Use "rapidtran translate --help" for one-shot translation,
"rapidtran repl" for an interactive session and
"rapidtran serve" for the web page.`,
	Version:       version,
	SilenceUsage:  true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if err := config.LoadDotEnv(); err != nil {
			return err
		}

		v := viper.GetViper()
		if err := config.Bind(v); err != nil {
			return err
		}
		if err := config.ReadFile(v, cfgFile); err != nil {
			return err
		}

		cfg, err := config.Load(v)
		if err != nil {
			return err
		}
		appConfig = cfg

		if logger, err = newLogger(verbose); err != nil {
			return fmt.Errorf("failed to create logger: %w", err)
		}

		logger.Info("configuration loaded",
			zap.String("service", cfg.Service),
			zap.String("endpoint", cfg.TranslateURL),
			zap.String("host", cfg.APIHost),
			zap.Bool("key present", cfg.APIKey != ""),
			zap.Duration("timeout", cfg.Timeout))
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = logger.Sync()
	},
}

// newLogger returns a development logger when verbose, otherwise a JSON
// production logger that only reports warnings and errors.
func newLogger(verbose bool) (*zap.Logger, error) {
	if verbose {
		return zap.NewDevelopment()
	}
	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(zap.WarnLevel)
	return cfg.Build()
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "YAML config file")
	rootCmd.PersistentFlags().String("service", config.DefaultService, "Translation service: rapidapi, google, mymemory")
	rootCmd.PersistentFlags().Duration("timeout", config.DefaultTimeout, "Request timeout (0 disables)")
	rootCmd.PersistentFlags().Bool("check-language", false, "Warn when source or translation is not in the expected language")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Verbose logging")

	viper.BindPFlag(config.KeyService, rootCmd.PersistentFlags().Lookup("service"))
	viper.BindPFlag(config.KeyTimeout, rootCmd.PersistentFlags().Lookup("timeout"))
	viper.BindPFlag(config.KeyCheckLanguage, rootCmd.PersistentFlags().Lookup("check-language"))
}
