// Package main provides the multisheets CLI, an offline surface for the same
// JSON <-> workbook conversion the HTTP service exposes.
package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/multisheets/multisheets/internal/sheet"
)

var (
	outputPath string
	pretty     bool
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "multisheets",
		Short: "Convert between JSON sheet descriptions and xlsx workbooks",
		Long: `multisheets converts a JSON description of tabular data into a
multi-sheet xlsx workbook and back. Every sheet uses a fixed layout: a merged
title in row 1, column headers in row 2, and data from row 3 down.`,
	}

	rootCmd.AddCommand(newEncodeCommand())
	rootCmd.AddCommand(newDecodeCommand())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newEncodeCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "encode input.json",
		Short: "Build an xlsx workbook from a JSON sheet description",
		Args:  cobra.ExactArgs(1),
		RunE:  runEncode,
	}
	cmd.Flags().StringVarP(&outputPath, "output", "o", "archivo_multisheets.xlsx", "Output workbook path")
	return cmd
}

func newDecodeCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "decode input.xlsx",
		Short: "Reconstruct the JSON sheet description from a workbook",
		Args:  cobra.ExactArgs(1),
		RunE:  runDecode,
	}
	cmd.Flags().StringVarP(&outputPath, "output", "o", "", "Output file path (default: stdout)")
	cmd.Flags().BoolVar(&pretty, "pretty", false, "Pretty-print JSON output")
	return cmd
}

// payload mirrors the HTTP API's request/response shape.
type payload struct {
	Sheets []sheet.Sheet `json:"sheets"`
}

func runEncode(cmd *cobra.Command, args []string) error {
	data, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("reading input: %w", err)
	}

	var p payload
	if err := json.Unmarshal(data, &p); err != nil {
		return fmt.Errorf("parsing input: %w", err)
	}

	workbook, err := sheet.Encode(p.Sheets)
	if err != nil {
		return fmt.Errorf("encoding workbook: %w", err)
	}

	if err := os.WriteFile(outputPath, workbook, 0o644); err != nil {
		return fmt.Errorf("writing workbook: %w", err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "wrote %s (%d sheets)\n", outputPath, len(p.Sheets))
	return nil
}

func runDecode(cmd *cobra.Command, args []string) error {
	workbook, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("reading workbook: %w", err)
	}

	sheets, err := sheet.Decode(workbook)
	if err != nil {
		return fmt.Errorf("decoding workbook: %w", err)
	}

	var out []byte
	if pretty {
		out, err = json.MarshalIndent(payload{Sheets: sheets}, "", "  ")
	} else {
		out, err = json.Marshal(payload{Sheets: sheets})
	}
	if err != nil {
		return fmt.Errorf("serializing result: %w", err)
	}

	if outputPath != "" {
		if err := os.WriteFile(outputPath, out, 0o644); err != nil {
			return fmt.Errorf("writing output: %w", err)
		}
		return nil
	}
	fmt.Fprintln(cmd.OutOrStdout(), string(out))
	return nil
}
