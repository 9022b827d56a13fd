package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"text/tabwriter"

	"github.com/heartmarshall/wordlookup/internal/config"
	"github.com/heartmarshall/wordlookup/internal/dictionary"
)

// Check loads every configured dictionary without serving and writes a
// per-language summary to w. It fails exactly when startup would.
func Check(ctx context.Context, cfg *config.Config, logger *slog.Logger, w io.Writer) error {
	store, err := dictionary.Load(ctx, dictionary.FileSources(cfg.Dictionary.Sources))
	if err != nil {
		logger.Error("dictionary check failed", slog.String("error", err.Error()))
		return err
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "LANG\tNAME\tWORDS\tLINES\tBLANK\tDUPLICATES\tSOURCE\tBLAKE3")
	for _, lang := range store.Languages() {
		s, _ := store.Stats(lang)
		fmt.Fprintf(tw, "%s\t%s\t%d\t%d\t%d\t%d\t%s\t%s\n",
			lang, cfg.Dictionary.DisplayName(lang.String()),
			s.Words, s.Lines, s.Blank, s.Duplicates, s.Source, s.Digest)
	}
	return tw.Flush()
}
