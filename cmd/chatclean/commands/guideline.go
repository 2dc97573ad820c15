package commands

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/hyunjae-lee/chatclean/internal/logger"
	"github.com/hyunjae-lee/chatclean/internal/output"
	"github.com/hyunjae-lee/chatclean/internal/store"
	"github.com/hyunjae-lee/chatclean/pkg/guideline"
)

// guidelineDoc is the exchange shape used by show, export, and import.
type guidelineDoc struct {
	Name        string   `json:"name" yaml:"name"`
	Description string   `json:"description" yaml:"description"`
	Rules       []string `json:"rules" yaml:"rules"`
}

var guidelineCmd = &cobra.Command{
	Use:     "guideline",
	Aliases: []string{"guidelines"},
	Short:   "Manage guideline presets",
	Long: `Guideline presets are named, ordered lists of rule labels applied to
cleaned output. They are stored in a guidelines.json file in the user
config directory (override with --guidelines-file).`,
}

var guidelineListCmd = &cobra.Command{
	Use:   "list",
	Short: "List guideline names",
	RunE: func(cmd *cobra.Command, args []string) error {
		reg, _, err := openRegistry()
		if err != nil {
			logError("%v", err)
			return err
		}
		for _, name := range reg.Names() {
			g, _ := reg.Get(name)
			fmt.Fprintf(os.Stdout, "%s\t(%d rules)\n", name, len(g.Rules))
		}
		return nil
	},
}

var guidelineShowCmd = &cobra.Command{
	Use:   "show <name>",
	Short: "Show one guideline",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		reg, _, err := openRegistry()
		if err != nil {
			logError("%v", err)
			return err
		}
		g, ok := reg.Get(args[0])
		if !ok {
			err := fmt.Errorf("guideline %q not found", args[0])
			logError("%v", err)
			return err
		}

		formatName, _ := cmd.Flags().GetString("format")
		if formatName == "text" {
			fmt.Fprintf(os.Stdout, "%s: %s\n", g.Name, g.Description)
			for _, rule := range g.Rules {
				fmt.Fprintf(os.Stdout, "  - %s\n", rule)
			}
			return nil
		}
		return writeDocs(os.Stdout, formatName, []guidelineDoc{toDoc(g)})
	},
}

var guidelineAddCmd = &cobra.Command{
	Use:   "add <name>",
	Short: "Add or replace a guideline",
	Long: `Add creates the guideline, or fully replaces it when the name already
exists.

Example:
  chatclean guideline add "스터디" -d "스터디방 정리" \
      -r "Remove empty lines" -r "Unify date formats"`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		description, _ := cmd.Flags().GetString("description")
		rules, _ := cmd.Flags().GetStringArray("rule")

		g := guideline.Guideline{
			Name:        args[0],
			Description: description,
			Rules:       rules,
		}
		if err := g.Validate(); err != nil {
			logError("%v", err)
			return err
		}

		reg, st, err := openRegistry()
		if err != nil {
			logError("%v", err)
			return err
		}
		reg.Upsert(g)
		if err := st.Save(reg.Snapshot()); err != nil {
			logError("%v", err)
			return err
		}
		logger.Info("guideline saved", "name", g.Name, "rules", len(g.Rules))
		return nil
	},
}

var guidelineRemoveCmd = &cobra.Command{
	Use:     "remove <name>",
	Aliases: []string{"rm", "delete"},
	Short:   "Remove a guideline",
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		reg, st, err := openRegistry()
		if err != nil {
			logError("%v", err)
			return err
		}
		if !reg.Delete(args[0]) {
			err := fmt.Errorf("guideline %q not found", args[0])
			logError("%v", err)
			return err
		}
		if err := st.Save(reg.Snapshot()); err != nil {
			logError("%v", err)
			return err
		}
		logger.Info("guideline removed", "name", args[0])
		return nil
	},
}

var guidelineExportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export all guidelines",
	RunE: func(cmd *cobra.Command, args []string) error {
		reg, _, err := openRegistry()
		if err != nil {
			logError("%v", err)
			return err
		}
		docs := make([]guidelineDoc, 0)
		for _, g := range reg.Snapshot() {
			docs = append(docs, toDoc(g))
		}

		dest := os.Stdout
		if path, _ := cmd.Flags().GetString("output"); path != "" {
			f, err := os.Create(path)
			if err != nil {
				logError("%v", err)
				return err
			}
			defer f.Close()
			dest = f
		}
		formatName, _ := cmd.Flags().GetString("format")
		return writeDocs(dest, formatName, docs)
	},
}

var guidelineImportCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Import guidelines from an exported file",
	Long: `Import upserts every guideline found in the file. JSON and YAML
exports are accepted; the format is picked by file extension.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		docs, err := readDocs(args[0])
		if err != nil {
			logError("%v", err)
			return err
		}
		reg, st, err := openRegistry()
		if err != nil {
			logError("%v", err)
			return err
		}
		for _, doc := range docs {
			g := guideline.Guideline{
				Name:        doc.Name,
				Description: doc.Description,
				Rules:       doc.Rules,
			}
			if err := g.Validate(); err != nil {
				logError("%v", err)
				return err
			}
			reg.Upsert(g)
		}
		if err := st.Save(reg.Snapshot()); err != nil {
			logError("%v", err)
			return err
		}
		logger.Info("guidelines imported", "count", len(docs), "from", args[0])
		return nil
	},
}

var guidelineBackupCmd = &cobra.Command{
	Use:   "backup",
	Short: "Back up the guidelines file",
	RunE: func(cmd *cobra.Command, args []string) error {
		_, st, err := openRegistry()
		if err != nil {
			logError("%v", err)
			return err
		}
		path, err := st.Backup()
		if err != nil {
			logError("%v", err)
			return err
		}
		fmt.Fprintf(os.Stdout, "Backed up to %s\n", path)
		return nil
	},
}

var guidelineRestoreCmd = &cobra.Command{
	Use:   "restore",
	Short: "Restore the guidelines file from backup",
	RunE: func(cmd *cobra.Command, args []string) error {
		path, err := guidelinesPath()
		if err != nil {
			logError("%v", err)
			return err
		}
		restored, err := store.New(path).Restore()
		if err != nil {
			logError("%v", err)
			return err
		}
		if !restored {
			err := fmt.Errorf("no backup found")
			logError("%v", err)
			return err
		}
		fmt.Fprintf(os.Stdout, "Restored %s\n", path)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(guidelineCmd)
	guidelineCmd.AddCommand(guidelineListCmd)
	guidelineCmd.AddCommand(guidelineShowCmd)
	guidelineCmd.AddCommand(guidelineAddCmd)
	guidelineCmd.AddCommand(guidelineRemoveCmd)
	guidelineCmd.AddCommand(guidelineExportCmd)
	guidelineCmd.AddCommand(guidelineImportCmd)
	guidelineCmd.AddCommand(guidelineBackupCmd)
	guidelineCmd.AddCommand(guidelineRestoreCmd)

	guidelineShowCmd.Flags().String("format", "text", "output format: text, json, yaml")
	guidelineAddCmd.Flags().StringP("description", "d", "", "guideline description")
	guidelineAddCmd.Flags().StringArrayP("rule", "r", nil, "rule label (repeatable, ordered)")
	guidelineExportCmd.Flags().String("format", "json", "output format: json, yaml")
	guidelineExportCmd.Flags().StringP("output", "o", "", "output file (default: stdout)")
}

func toDoc(g guideline.Guideline) guidelineDoc {
	return guidelineDoc{Name: g.Name, Description: g.Description, Rules: g.Rules}
}

func writeDocs(dest *os.File, formatName string, docs []guidelineDoc) error {
	format, err := output.ParseFormat(formatName)
	if err != nil {
		return err
	}
	writer, err := output.NewWriter(dest, format)
	if err != nil {
		return err
	}
	for _, doc := range docs {
		if err := writer.Write(doc); err != nil {
			return err
		}
	}
	return writer.Flush()
}

func readDocs(path string) ([]guidelineDoc, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading import file: %w", err)
	}
	var docs []guidelineDoc
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &docs); err != nil {
			return nil, fmt.Errorf("parsing %s: %w", path, err)
		}
	default:
		if err := json.Unmarshal(data, &docs); err != nil {
			// A single exported guideline is a bare object, not an array.
			var doc guidelineDoc
			if err := json.Unmarshal(data, &doc); err != nil {
				return nil, fmt.Errorf("parsing %s: %w", path, err)
			}
			docs = []guidelineDoc{doc}
		}
	}
	return docs, nil
}
