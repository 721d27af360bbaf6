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
	"context"
	"fmt"
	"io"
	"slices"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/valpere/rapidtran/internal/catalog"
	"github.com/valpere/rapidtran/internal/translator"
)

var languagesCmd = &cobra.Command{
	Use:   "languages",
	Short: "List supported target languages",
	Long: `List the target languages with their native names. The last column,
named after the configured service, shows whether that service accepts each
language.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, err := buildService(cmd.Context(), appConfig, logger)
		if err != nil {
			return err
		}
		return printLanguages(cmd.Context(), cmd.OutOrStdout(), svc)
	},
}

// printLanguages writes the catalog as a table, marking the languages svc
// lists with "yes". A service that cannot list its languages gets "?".
func printLanguages(ctx context.Context, out io.Writer, svc translator.TranslationService) error {
	supported, listErr := svc.SupportedLanguages(ctx)

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "CODE\tLANGUAGE\tNATIVE\t%s\n", strings.ToUpper(svc.Name()))
	for _, l := range catalog.Languages() {
		mark := "no"
		switch {
		case listErr != nil:
			mark = "?"
		case slices.Contains(supported, l.Code):
			mark = "yes"
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", l.Code, l.Label, catalog.NativeName(l.Code), mark)
	}
	return w.Flush()
}

var suggestionsCmd = &cobra.Command{
	Use:   "suggestions",
	Short: "List example sentences",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		for i, s := range catalog.Suggestions() {
			fmt.Fprintf(cmd.OutOrStdout(), "%d. %s\n", i+1, s)
		}
	},
}

func init() {
	rootCmd.AddCommand(languagesCmd)
	rootCmd.AddCommand(suggestionsCmd)
}
