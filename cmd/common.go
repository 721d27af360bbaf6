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

	"go.uber.org/zap"

	"github.com/valpere/rapidtran/internal/catalog"
	"github.com/valpere/rapidtran/internal/config"
	"github.com/valpere/rapidtran/internal/session"
	"github.com/valpere/rapidtran/internal/translator"
	"github.com/valpere/rapidtran/internal/validator"
)

// buildService constructs the translation backend named by cfg.Service and
// warns when it reports itself unavailable. The warning never blocks: a
// misconfigured backend still fails per request with its own message.
func buildService(ctx context.Context, cfg *config.Config, logger *zap.Logger) (translator.TranslationService, error) {
	sc := cfg.ServiceConfig()

	var svc translator.TranslationService
	switch cfg.Service {
	case "rapidapi":
		svc = translator.NewRapidAPIService(sc.Endpoint, sc.APIKey, sc.APIHost, logger.Named("rapidapi"))
	case "google":
		svc = translator.NewGoogleService(sc.Credentials)
	case "mymemory":
		svc = translator.NewMyMemoryService(sc.Email)
	default:
		return nil, fmt.Errorf("unknown service: %s", cfg.Service)
	}

	if err := svc.IsAvailable(ctx); err != nil {
		logger.Warn("translation service not available",
			zap.String("service", svc.Name()),
			zap.Error(err))
	}
	return svc, nil
}

// checkTarget rejects codes outside the catalog and codes the backend does
// not list. When the backend cannot list its languages only the catalog is
// checked.
func checkTarget(ctx context.Context, svc translator.TranslationService, code string, logger *zap.Logger) error {
	if _, ok := catalog.Lookup(code); !ok {
		return fmt.Errorf("unsupported target language %q (supported: %s)", code, strings.Join(catalog.Codes(), ", "))
	}

	supported, err := svc.SupportedLanguages(ctx)
	if err != nil {
		logger.Warn("cannot list service languages", zap.String("service", svc.Name()), zap.Error(err))
		return nil
	}
	if !slices.Contains(supported, code) {
		return fmt.Errorf("%s does not support target language %q", svc.Name(), code)
	}
	return nil
}

// buildView wires a View around svc.
func buildView(svc translator.TranslationService, cfg *config.Config, logger *zap.Logger, clip session.Clipboard, notifier session.Notifier) *session.View {
	return session.NewView(svc, viewOptions(cfg, logger, clip, notifier))
}

func viewOptions(cfg *config.Config, logger *zap.Logger, clip session.Clipboard, notifier session.Notifier) session.Options {
	opts := session.Options{
		Timeout:   cfg.Timeout,
		Clipboard: clip,
		Notifier:  notifier,
		Logger:    logger.Named("view"),
	}
	if cfg.CheckLanguage {
		opts.Checker = validator.New()
	}
	return opts
}

// printNotifier writes notices to w, one per line.
func printNotifier(w io.Writer) session.Notifier {
	return session.NotifierFunc(func(msg string) {
		fmt.Fprintln(w, msg)
	})
}
