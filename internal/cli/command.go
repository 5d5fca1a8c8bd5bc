// Package cli holds the relayctl command tree.
package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"translation-relay/pkg/types"

	"github.com/spf13/cobra"
)

// Translator runs the translation pipeline for one request.
type Translator interface {
	Translate(ctx context.Context, req types.TranslateRequest) (*types.TranslateResponse, error)
}

type translateFlags struct {
	source string
	target string
	asJSON bool
}

// CreateRootCommand creates the relayctl root command with its subcommands.
func CreateRootCommand(translator Translator) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "relayctl",
		Short: "Command line access to the translation relay",
		Long: `relayctl runs the relay's translation pipeline without the HTTP server.

Examples:
  relayctl translate "Where does it hurt?"
  relayctl translate -s es-ES -t en-US "Me duele la cabeza"
  echo "Take two tablets daily" | relayctl translate --target fr-FR`,
		SilenceUsage: true,
	}

	rootCmd.AddCommand(createTranslateCommand(translator))
	return rootCmd
}

func createTranslateCommand(translator Translator) *cobra.Command {
	flags := &translateFlags{}

	cmd := &cobra.Command{
		Use:   "translate [text...]",
		Short: "Translate text given as arguments or on stdin",
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := readText(cmd.InOrStdin(), args)
			if err != nil {
				return err
			}

			resp, err := translator.Translate(cmd.Context(), types.TranslateRequest{
				Text:           &text,
				SourceLanguage: flags.source,
				TargetLanguage: flags.target,
			})
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if flags.asJSON {
				enc := json.NewEncoder(out)
				enc.SetEscapeHTML(false)
				return enc.Encode(resp)
			}
			_, err = fmt.Fprintln(out, resp.TranslatedText)
			return err
		},
	}

	cmd.Flags().StringVarP(&flags.source, "source", "s", types.DefaultSourceLanguage, "Source locale tag")
	cmd.Flags().StringVarP(&flags.target, "target", "t", types.DefaultTargetLanguage, "Target locale tag")
	cmd.Flags().BoolVar(&flags.asJSON, "json", false, "Print the full response as JSON")

	return cmd
}

func readText(in io.Reader, args []string) (string, error) {
	if len(args) > 0 {
		return strings.Join(args, " "), nil
	}
	data, err := io.ReadAll(in)
	if err != nil {
		return "", fmt.Errorf("read stdin: %w", err)
	}
	return strings.TrimRight(string(data), "\r\n"), nil
}
