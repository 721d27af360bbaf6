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
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/valpere/rapidtran/internal/catalog"
	"github.com/valpere/rapidtran/internal/clipboard"
	"github.com/valpere/rapidtran/internal/session"
)

const replHelp = `Type English text and press Enter to translate it.
Commands:
  :lang <code>     select the target language
  :suggest <n>     load example sentence n (see :suggestions)
  :suggestions     list the example sentences
  :translate       translate the current text again
  :copy            copy the last translation to the clipboard
  :history         show recent translations
  :languages       list target languages
  :help            show this help
  :quit            leave`

var replCmd = &cobra.Command{
	Use:   "repl",
	Short: "Translate interactively",
	Long:  "Start an interactive session that keeps the selected language and recent history.\n\n" + replHelp,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		svc, err := buildService(cmd.Context(), appConfig, logger)
		if err != nil {
			return err
		}
		view := buildView(svc, appConfig, logger, clipboard.System{}, printNotifier(out))
		return runREPL(cmd.Context(), view, cmd.InOrStdin(), out)
	},
}

var errQuit = errors.New("quit")

// runREPL reads lines from in until EOF or :quit.
func runREPL(ctx context.Context, view *session.View, in io.Reader, out io.Writer) error {
	fmt.Fprintln(out, "rapidtran: English → "+catalog.Label(view.Snapshot().TargetLang)+". Type :help for commands.")

	scanner := bufio.NewScanner(in)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	for {
		fmt.Fprint(out, "> ")
		if !scanner.Scan() {
			fmt.Fprintln(out)
			return scanner.Err()
		}

		line := scanner.Text()
		if strings.HasPrefix(line, ":") {
			if err := replCommand(ctx, view, line, out); err != nil {
				if errors.Is(err, errQuit) {
					return nil
				}
				fmt.Fprintln(out, "error:", err)
			}
			continue
		}
		if strings.TrimSpace(line) == "" {
			continue
		}

		view.SetSourceText(line)
		replTranslate(ctx, view, out)
	}
}

func replCommand(ctx context.Context, view *session.View, line string, out io.Writer) error {
	name, arg, _ := strings.Cut(strings.TrimSpace(line), " ")
	arg = strings.TrimSpace(arg)

	switch name {
	case ":quit", ":q", ":exit":
		return errQuit

	case ":help":
		fmt.Fprintln(out, replHelp)

	case ":lang":
		l, ok := catalog.Lookup(strings.ToLower(arg))
		if !ok {
			return fmt.Errorf("unsupported language %q (supported: %s)", arg, strings.Join(catalog.Codes(), ", "))
		}
		view.SetTargetLanguage(l.Code)
		fmt.Fprintf(out, "target language: %s\n", l.Label)

	case ":suggest":
		n, err := strconv.Atoi(arg)
		if err != nil {
			return fmt.Errorf("usage: :suggest <n>")
		}
		sentence, ok := catalog.Suggestion(n - 1)
		if !ok {
			return fmt.Errorf("no suggestion %d (1-%d)", n, len(catalog.Suggestions()))
		}
		view.ApplySuggestion(sentence)
		fmt.Fprintf(out, "text: %s\n", sentence)

	case ":suggestions":
		for i, s := range catalog.Suggestions() {
			fmt.Fprintf(out, "%d. %s\n", i+1, s)
		}

	case ":translate":
		replTranslate(ctx, view, out)

	case ":copy":
		if view.Snapshot().TranslatedText == "" {
			return fmt.Errorf("nothing to copy")
		}
		// CopyResult reports through the notifier.
		_ = view.CopyResult(ctx)

	case ":history":
		entries := view.Snapshot().History
		if len(entries) == 0 {
			fmt.Fprintln(out, "no translations yet")
		}
		for _, e := range entries {
			fmt.Fprintf(out, "EN → %s: %s => %s\n", catalog.Label(e.LangCode), e.Source, e.Target)
		}

	case ":languages":
		current := view.Snapshot().TargetLang
		for _, l := range catalog.Languages() {
			marker := " "
			if l.Code == current {
				marker = "*"
			}
			fmt.Fprintf(out, "%s %s  %s\n", marker, l.Code, l.Label)
		}

	default:
		return fmt.Errorf("unknown command %s (try :help)", name)
	}
	return nil
}

func replTranslate(ctx context.Context, view *session.View, out io.Writer) {
	if err := view.Translate(ctx); err != nil {
		msg := view.Snapshot().ErrorMessage
		if msg == "" {
			msg = err.Error()
		}
		fmt.Fprintln(out, "error:", msg)
		return
	}
	fmt.Fprintln(out, view.Snapshot().TranslatedText)
}

func init() {
	rootCmd.AddCommand(replCmd)
}
