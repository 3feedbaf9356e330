package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"sgspell/internal/diag"
	"sgspell/internal/diagfmt"
	"sgspell/internal/driver"
	"sgspell/internal/source"
	"sgspell/internal/syntax"
)

var tokenizeCmd = &cobra.Command{
	Use:   "tokenize [flags] file.sg",
	Short: "Print the tokens and trivia of a surge source file",
	Long:  `Tokenize breaks a surge source file into tokens with their leading trivia, the units the checker reads`,
	Args:  cobra.ExactArgs(1),
	RunE:  runTokenize,
}

var treeCmd = &cobra.Command{
	Use:   "tree file.sg",
	Short: "Print the token tree of a surge source file",
	Long:  `Tree groups the tokens of a surge source file into statements and delimiter groups, the shape the checker walks`,
	Args:  cobra.ExactArgs(1),
	RunE:  runTree,
}

func init() {
	tokenizeCmd.Flags().String("format", "pretty", "output format (pretty|json)")
}

func runTokenize(cmd *cobra.Command, args []string) error {
	filePath := args[0]

	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return fmt.Errorf("failed to get format flag: %w", err)
	}
	if format != "pretty" && format != "json" {
		return fmt.Errorf("unknown format: %s", format)
	}

	maxDiagnostics, err := cmd.Root().PersistentFlags().GetInt("max-diagnostics")
	if err != nil {
		return fmt.Errorf("failed to get max-diagnostics flag: %w", err)
	}

	result, err := driver.Tokenize(filePath, maxDiagnostics)
	if err != nil {
		return fmt.Errorf("tokenization failed: %w", err)
	}
	if err := printFrontEndDiagnostics(cmd, result.Bag, result.FileSet); err != nil {
		return err
	}

	if format == "json" {
		return diagfmt.FormatTokensJSON(os.Stdout, result.Tokens)
	}
	return diagfmt.FormatTokensPretty(os.Stdout, result.Tokens, result.FileSet)
}

func runTree(cmd *cobra.Command, args []string) error {
	maxDiagnostics, err := cmd.Root().PersistentFlags().GetInt("max-diagnostics")
	if err != nil {
		return fmt.Errorf("failed to get max-diagnostics flag: %w", err)
	}

	result, err := driver.BuildTree(args[0], maxDiagnostics)
	if err != nil {
		return fmt.Errorf("tree failed: %w", err)
	}
	if err := printFrontEndDiagnostics(cmd, result.Bag, result.FileSet); err != nil {
		return err
	}
	return syntax.Dump(os.Stdout, result.Tree)
}

// printFrontEndDiagnostics writes lexer and grouping diagnostics to stderr.
func printFrontEndDiagnostics(cmd *cobra.Command, bag *diag.Bag, fs *source.FileSet) error {
	if bag.Len() == 0 {
		return nil
	}
	color, err := useColor(cmd, os.Stderr)
	if err != nil {
		return err
	}
	bag.Sort()
	diagfmt.Pretty(os.Stderr, bag, fs, diagfmt.PrettyOpts{Color: color, Context: 1})
	fmt.Fprintln(os.Stderr)
	return nil
}
