package main

import (
	"context"
	"fmt"
	"mime"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"ai-planning-studio/config"
	"ai-planning-studio/internal/document"
	documentUC "ai-planning-studio/internal/document/usecase"
	"ai-planning-studio/pkg/log"
)

// extractCMD runs the same extraction as POST /parse-document on a local file.
func extractCMD() *cobra.Command {
	var maxChars int
	cmd := &cobra.Command{
		Use:   "extract <file>",
		Short: "Print the text extracted from a PDF, DOCX, DOC, PPTX or text file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}
			if maxChars > 0 {
				cfg.Document.MaxChars = maxChars
			}

			path := args[0]
			data, err := os.ReadFile(path)
			if err != nil {
				return err
			}

			uc := documentUC.New(log.NewNop(), cfg.Document.MaxChars, cfg.Document.MaxFileBytes)
			out, err := uc.Extract(context.Background(), document.UploadedDocument{
				Bytes:            data,
				DeclaredMimeType: mime.TypeByExtension(filepath.Ext(path)),
				FileName:         filepath.Base(path),
			})
			if err != nil {
				return err
			}

			if out.Warning != "" {
				fmt.Fprintln(cmd.ErrOrStderr(), out.Warning)
				return nil
			}
			fmt.Fprintln(cmd.OutOrStdout(), out.Content)
			if out.Truncated {
				fmt.Fprintf(cmd.ErrOrStderr(), "(%s, truncated to %d chars)\n", out.Format, cfg.Document.MaxChars)
			}
			return nil
		},
	}
	cmd.Flags().IntVar(&maxChars, "max-chars", 0, "character ceiling (overrides document.max_chars)")
	return cmd
}
