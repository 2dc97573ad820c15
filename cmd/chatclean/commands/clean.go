package commands

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/spf13/cobra"

	"github.com/hyunjae-lee/chatclean/internal/input"
	"github.com/hyunjae-lee/chatclean/internal/logger"
	"github.com/hyunjae-lee/chatclean/internal/output"
	"github.com/hyunjae-lee/chatclean/pkg/normalizer"
)

var cleanCmd = &cobra.Command{
	Use:   "clean [file]",
	Short: "Clean a chat log from a file, stdin, or the clipboard",
	Long: `Clean runs the normalization pipeline over the given chat log and
applies the selected guideline's rules to the result.

Input comes from the file argument, --clipboard, or stdin.

Examples:
  chatclean clean chat.txt
  chatclean clean --clipboard --copy
  cat chat.txt | chatclean clean --format json
  chatclean clean -g "스터디" -o cleaned.txt chat.txt`,
	Args: cobra.MaximumNArgs(1),
	RunE: runClean,
}

func init() {
	rootCmd.AddCommand(cleanCmd)

	flags := cleanCmd.Flags()
	flags.StringP("guideline", "g", "", "guideline preset to apply (default: the seeded preset)")
	flags.Bool("clipboard", false, "read input from the clipboard")
	flags.Bool("copy", false, "copy the cleaned text back to the clipboard")
	flags.Bool("html", false, "treat input as HTML and flatten it first (auto-detected otherwise)")
	flags.String("format", "text", "output format: text, json, jsonl, yaml")
	flags.StringP("output", "o", "", "output file (default: stdout)")
}

func runClean(cmd *cobra.Command, args []string) error {
	text, source, err := readCleanInput(cmd, args)
	if err != nil {
		logError("%v", err)
		return err
	}

	forceHTML, _ := cmd.Flags().GetBool("html")
	if forceHTML || input.LooksLikeHTML(text) {
		flat, err := input.Flatten(text)
		if err != nil {
			logError("%v", err)
			return err
		}
		logger.Debug("flattened html input", "source", source)
		text = flat
	}

	result := normalizer.New().Process(text)
	inputLines := countNonBlank(text)

	var applied []string
	name, _ := cmd.Flags().GetString("guideline")
	reg, _, err := openRegistry()
	if err != nil {
		logError("%v", err)
		return err
	}
	if name == "" && reg.HasAny() {
		name = reg.Names()[0]
	}
	if name != "" {
		g, ok := reg.Get(name)
		if !ok {
			err := fmt.Errorf("guideline %q not found", name)
			logError("%v", err)
			return err
		}
		result.Lines, applied = g.Apply(result.Lines)
	}

	if err := writeCleanResult(cmd, result); err != nil {
		logError("%v", err)
		return err
	}

	if copyBack, _ := cmd.Flags().GetBool("copy"); copyBack {
		if err := clipboard.WriteAll(result.Text()); err != nil {
			return fmt.Errorf("copying to clipboard: %w", err)
		}
		logger.Debug("cleaned text copied to clipboard")
	}

	logger.Info("clean complete",
		"source", source,
		"input_lines", inputLines,
		"cleaned_lines", len(result.Lines),
		"links_removed", result.LinksRemoved,
		"guideline", name,
		"applied_rules", applied,
	)
	return nil
}

// readCleanInput resolves the input source: clipboard beats the file
// argument, which beats stdin.
func readCleanInput(cmd *cobra.Command, args []string) (string, string, error) {
	if fromClipboard, _ := cmd.Flags().GetBool("clipboard"); fromClipboard {
		text, err := clipboard.ReadAll()
		if err != nil {
			return "", "", fmt.Errorf("reading clipboard: %w", err)
		}
		return text, "clipboard", nil
	}
	if len(args) > 0 {
		data, err := os.ReadFile(args[0])
		if err != nil {
			return "", "", fmt.Errorf("reading input file: %w", err)
		}
		return string(data), args[0], nil
	}
	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		return "", "", fmt.Errorf("reading stdin: %w", err)
	}
	return string(data), "stdin", nil
}

func writeCleanResult(cmd *cobra.Command, result normalizer.Result) error {
	formatName, _ := cmd.Flags().GetString("format")
	format, err := output.ParseFormat(formatName)
	if err != nil {
		return err
	}

	dest := os.Stdout
	if path, _ := cmd.Flags().GetString("output"); path != "" {
		f, err := os.Create(path)
		if err != nil {
			return fmt.Errorf("creating output file: %w", err)
		}
		defer f.Close()
		dest = f
	}

	writer, err := output.NewWriter(dest, format)
	if err != nil {
		return err
	}
	if err := writer.Write(result); err != nil {
		return err
	}
	return writer.Flush()
}

func countNonBlank(text string) int {
	count := 0
	for _, line := range strings.Split(text, "\n") {
		if strings.TrimSpace(line) != "" {
			count++
		}
	}
	return count
}
