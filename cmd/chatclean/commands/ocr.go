package commands

import (
	"fmt"
	"os"

	"github.com/atotto/clipboard"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/hyunjae-lee/chatclean/internal/logger"
	"github.com/hyunjae-lee/chatclean/internal/ocr"
	"github.com/hyunjae-lee/chatclean/pkg/normalizer"
)

var ocrCmd = &cobra.Command{
	Use:   "ocr <image>",
	Short: "Extract text from a chat screenshot",
	Long: `OCR extracts text from an image file using the tesseract binary,
tuned for Korean chat screenshots (kor+eng).

Examples:
  chatclean ocr screenshot.png
  chatclean ocr --clean --copy screenshot.png`,
	Args: cobra.ExactArgs(1),
	RunE: runOCR,
}

func init() {
	rootCmd.AddCommand(ocrCmd)

	flags := ocrCmd.Flags()
	flags.Bool("clean", false, "run the extracted text through the cleaning pipeline")
	flags.Bool("copy", false, "copy the result to the clipboard")

	_ = viper.BindEnv("ocr_binary", "CHATCLEAN_OCR_BINARY")
}

func runOCR(cmd *cobra.Command, args []string) error {
	config := ocr.DefaultConfig()
	if binary := viper.GetString("ocr_binary"); binary != "" {
		config.Binary = binary
	}
	if languages := viper.GetString("ocr_languages"); languages != "" {
		config.Languages = languages
	}

	processor := ocr.New(config)
	if !processor.Available() {
		err := fmt.Errorf("tesseract binary %q not found in PATH", config.Binary)
		logError("%v", err)
		return err
	}

	text, err := processor.ExtractFile(cmd.Context(), args[0])
	if err != nil {
		logError("%v", err)
		return err
	}
	if text == "" {
		logger.Warn("no text recognized", "image", args[0])
		return nil
	}

	if doClean, _ := cmd.Flags().GetBool("clean"); doClean {
		result := normalizer.New().Process(text)
		text = result.Text()
		logger.Info("ocr text cleaned",
			"cleaned_lines", len(result.Lines),
			"links_removed", result.LinksRemoved,
		)
	}

	fmt.Fprintln(os.Stdout, text)

	if copyBack, _ := cmd.Flags().GetBool("copy"); copyBack {
		if err := clipboard.WriteAll(text); err != nil {
			return fmt.Errorf("copying to clipboard: %w", err)
		}
	}
	return nil
}
