// chatclean normalizes pasted chat-log text into a clean, consistently
// formatted form, guided by user-defined guideline presets.
package main

import (
	"os"

	"github.com/hyunjae-lee/chatclean/cmd/chatclean/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
