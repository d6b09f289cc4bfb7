package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/mohannadkhirallah/qatar-law-harmony/internal/i18n"
)

func newTranslateCmd(a *app) *cobra.Command {
	var lang string

	cmd := &cobra.Command{
		Use:   "translate KEY",
		Short: "Print the localized string for KEY",
		Long:  "Print the localized string for KEY. Unknown keys print unchanged.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if lang == "" {
				lang = a.cfg.Web.DefaultLanguage
			}
			l, ok := i18n.ParseLang(lang)
			if !ok {
				return fmt.Errorf("unsupported language %q", lang)
			}

			logger := slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: a.cfg.Level()}))
			catalog := i18n.NewCatalog(logger)
			if path := a.cfg.Web.TranslationsFile; path != "" {
				if err := catalog.LoadFile(path); err != nil {
					return err
				}
			}

			_, err := fmt.Fprintln(cmd.OutOrStdout(), catalog.T(args[0], l))
			return err
		},
	}

	cmd.Flags().StringVar(&lang, "lang", "", "language (en or ar); defaults to web.default_language")
	return cmd
}
