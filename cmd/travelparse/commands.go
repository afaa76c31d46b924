package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"travelplan-service/internal/infrastructure/router"
	"travelplan-service/pkg/logger"
	"travelplan-service/pkg/parser"
)

func newRootCmd() *cobra.Command {
	var verbose bool

	root := &cobra.Command{
		Use:           "travelparse",
		Short:         "Normalize travel agent responses into flights, hotels and activities",
		SilenceUsage: true,
	}
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log parsing details to stderr")

	newLogger := func() logger.Logger {
		if verbose {
			return logger.NewDevelopmentLogger()
		}
		return logger.NewNopLogger()
	}

	root.AddCommand(newParseCmd(newLogger), newRouteCmd(newLogger))
	return root
}

func newParseCmd(newLogger func() logger.Logger) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "parse [file]",
		Short: "Parse an agent response from a file or stdin",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := readInput(cmd.InOrStdin(), args)
			if err != nil {
				return err
			}

			result := parser.NewResponseParser(newLogger()).Parse(text)

			switch format {
			case "json":
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				enc.SetEscapeHTML(false)
				return enc.Encode(result)
			case "text":
				_, err := io.WriteString(cmd.OutOrStdout(), parser.FormatResult(result))
				return err
			default:
				return fmt.Errorf("unknown format %q, want json or text", format)
			}
		},
	}
	cmd.Flags().StringVarP(&format, "format", "f", "json", "output format: json or text")
	return cmd
}

func newRouteCmd(newLogger func() logger.Logger) *cobra.Command {
	return &cobra.Command{
		Use:   "route <message>",
		Short: "Print the category a refinement request is routed to",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			category := router.NewDefaultCategoryRouter(newLogger()).Route(strings.Join(args, " "))
			if category == "" {
				category = "none"
			}
			_, err := fmt.Fprintln(cmd.OutOrStdout(), category)
			return err
		},
	}
}

func readInput(stdin io.Reader, args []string) (string, error) {
	if len(args) == 0 || args[0] == "-" {
		data, err := io.ReadAll(stdin)
		if err != nil {
			return "", fmt.Errorf("read stdin: %w", err)
		}
		return string(data), nil
	}

	data, err := os.ReadFile(args[0])
	if err != nil {
		return "", fmt.Errorf("read %s: %w", args[0], err)
	}
	return string(data), nil
}
