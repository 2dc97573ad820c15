package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/hyunjae-lee/chatclean/internal/output"
	"github.com/hyunjae-lee/chatclean/internal/version"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version information",
	RunE: func(cmd *cobra.Command, args []string) error {
		if asJSON, _ := cmd.Flags().GetBool("json"); asJSON {
			writer := output.NewJSONWriter(os.Stdout)
			if err := writer.Write(version.Get()); err != nil {
				return err
			}
			return writer.Flush()
		}
		fmt.Fprintln(os.Stdout, version.Full())
		return nil
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
	versionCmd.Flags().Bool("json", false, "output as JSON")
}
