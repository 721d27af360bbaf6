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
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/valpere/rapidtran/internal/catalog"
	"github.com/valpere/rapidtran/internal/clipboard"
)

var (
	inputFile  string
	outputFile string
	targetLang string
	copyResult bool
)

var translateCmd = &cobra.Command{
	Use:   "translate [text]",
	Short: "Translate English text once",
	Long: `Translate English text into one of the supported languages.

The text comes from the argument, from --input, or from standard input.
The translation is printed to standard output or written to --output.

Examples:
  rapidtran translate "Hello, how are you?" -t hi
  rapidtran translate -i note.txt -o note.fr.txt -t fr
  echo "Have a great day!" | rapidtran translate -t de --copy`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if inputFile != "" && inputFile == outputFile {
			return fmt.Errorf("input file and output file cannot be the same")
		}
		svc, err := buildService(cmd.Context(), appConfig, logger)
		if err != nil {
			return err
		}
		if err := checkTarget(cmd.Context(), svc, targetLang, logger); err != nil {
			return err
		}

		text, err := readSource(cmd, args)
		if err != nil {
			return err
		}

		view := buildView(svc, appConfig, logger, clipboard.System{}, printNotifier(cmd.ErrOrStderr()))
		view.SetSourceText(text)
		view.SetTargetLanguage(targetLang)

		if err := view.Translate(cmd.Context()); err != nil {
			if msg := view.Snapshot().ErrorMessage; msg != "" {
				return errors.New(msg)
			}
			return err
		}

		translated := view.Snapshot().TranslatedText

		if copyResult {
			// The notifier already told the user; the translation is still printed.
			_ = view.CopyResult(cmd.Context())
		}

		if outputFile == "" {
			fmt.Fprintln(cmd.OutOrStdout(), translated)
			return nil
		}

		if err := os.MkdirAll(filepath.Dir(outputFile), 0755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
		if err := os.WriteFile(outputFile, []byte(translated), 0644); err != nil {
			return fmt.Errorf("failed to write output file: %w", err)
		}

		fmt.Fprintf(cmd.ErrOrStderr(), "Successfully translated %s to %s\n", catalog.SourceLanguage, targetLang)
		return nil
	},
}

// readSource picks the text to translate: the argument, then --input, then
// standard input.
func readSource(cmd *cobra.Command, args []string) (string, error) {
	if len(args) == 1 {
		return args[0], nil
	}
	if inputFile != "" {
		b, err := os.ReadFile(inputFile)
		if err != nil {
			return "", fmt.Errorf("failed to read input file: %w", err)
		}
		return string(b), nil
	}
	b, err := io.ReadAll(cmd.InOrStdin())
	if err != nil {
		return "", fmt.Errorf("failed to read standard input: %w", err)
	}
	return string(b), nil
}

func init() {
	rootCmd.AddCommand(translateCmd)

	translateCmd.Flags().StringVarP(&inputFile, "input", "i", "", "Input file to translate")
	translateCmd.Flags().StringVarP(&outputFile, "output", "o", "", "Output file for translation (default stdout)")
	translateCmd.Flags().StringVarP(&targetLang, "target", "t", catalog.DefaultTarget, "Target language code")
	translateCmd.Flags().BoolVar(&copyResult, "copy", false, "Copy the translation to the system clipboard")
}
