package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"lookandfeel/internal/output"
	"lookandfeel/internal/services"
	"lookandfeel/pkg/lnftypes"
)

// extractCmd snapshots the local native look and feel
var extractCmd = &cobra.Command{
	Use:   "extract",
	Short: "Extract a snapshot of the native look and feel",
	Long: `Query the native backend for every known identifier and write the snapshot. JSON output
can be handed to children or loaded by query and diff; YAML output is a loadable profile.`,
	Args: cobra.NoArgs,
	RunE: runExtract,
}

// dumpCmd renders a snapshot for reading
var dumpCmd = &cobra.Command{
	Use:   "dump [source]",
	Short: "Show a snapshot as a styled table, markdown, yaml or json",
	Long: `Render a snapshot. source is a parent URL, a JSON snapshot, a YAML profile or an embedded
profile name; without it the local native backend is extracted.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runDump,
}

// queryCmd answers one query
var queryCmd = &cobra.Command{
	Use:   "query <kind> [id]",
	Short: "Answer one look-and-feel query",
	Long: `Answer a query the way a child process would. kind is one of int, float, color, font,
password_char or echo_password. With --from the answer comes from that snapshot through the
remote provider; without it from the local native backend.`,
	Example: `  lnf query color Window --from snapshot.json
  lnf query int ScrollbarWidth --from http://127.0.0.1:7878 --default 16`,
	Args: cobra.RangeArgs(1, 2),
	RunE: runQuery,
}

// diffCmd compares two snapshots
var diffCmd = &cobra.Command{
	Use:   "diff <from> <to>",
	Short: "Compare two snapshots",
	Long:  `Compare two snapshots; each is a parent URL, a JSON snapshot, a YAML profile or an embedded profile name.`,
	Example: `  lnf diff light dark
  lnf diff before.json http://127.0.0.1:7878`,
	Args: cobra.ExactArgs(2),
	RunE: runDiff,
}

// idsCmd lists identifiers
var idsCmd = &cobra.Command{
	Use:       "ids [kind]",
	Short:     "List the known metric identifiers",
	Args:      cobra.MaximumNArgs(1),
	ValidArgs: []string{services.KindInt, services.KindFloat, services.KindColor, services.KindFont},
	RunE:      runIDs,
}

func init() {
	extractCmd.Flags().StringP("output", "o", "", "Write to file instead of stdout")
	extractCmd.Flags().StringP("format", "f", services.FormatJSON, "Output format: json or yaml")
	extractCmd.Flags().String("name", "", "Profile name recorded in YAML output")
	addBackendFlags(extractCmd)

	dumpCmd.Flags().StringP("format", "f", services.FormatTable, "Output format: table, markdown, yaml or json")
	dumpCmd.Flags().Bool("plain", false, "Disable colors and markdown rendering")
	dumpCmd.Flags().String("style", "", "Glamour style for markdown [default: from the snapshot's dark-theme flag]")
	addBackendFlags(dumpCmd)

	queryCmd.Flags().String("from", "", "Snapshot source instead of the local backend")
	queryCmd.Flags().String("default", "", "Print this instead of failing when the metric is absent")
	queryCmd.Flags().Bool("json", false, "Print the answer as JSON")
	addBackendFlags(queryCmd)

	diffCmd.Flags().Bool("changes", false, "List changed entries instead of a line diff")
}

func runExtract(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	if err := setupServices(); err != nil {
		return err
	}
	pctx, err := newParentContext(cfg)
	if err != nil {
		return err
	}
	defer pctx.Close()

	format, _ := cmd.Flags().GetString("format")
	if format != services.FormatJSON && format != services.FormatYAML {
		return fmt.Errorf("extract writes json or yaml, not %q", format)
	}
	name, _ := cmd.Flags().GetString("name")
	if name == "" {
		name = cfg.Profile
	}
	outPath, _ := cmd.Flags().GetString("output")

	table, err := pctx.ExtractCurrent()
	if err != nil {
		return err
	}
	render, err := services.GetGlobalRenderService()
	if err != nil {
		return err
	}
	out, err := render.Render(table, services.RenderOptions{Format: format, Name: name})
	if err != nil {
		return err
	}
	return writeOutput(outPath, out)
}

func runDump(cmd *cobra.Command, args []string) error {
	if err := setupServices(); err != nil {
		return err
	}

	var table *lnftypes.FullLookAndFeel
	name := "native"
	if len(args) == 1 {
		t, err := loadTable(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		table, name = t, args[0]
	} else {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		pctx, err := newParentContext(cfg)
		if err != nil {
			return err
		}
		defer pctx.Close()
		if table, err = pctx.ExtractCurrent(); err != nil {
			return err
		}
		name = cfg.Profile
	}

	format, _ := cmd.Flags().GetString("format")
	plain, _ := cmd.Flags().GetBool("plain")
	style, _ := cmd.Flags().GetString("style")

	render, err := services.GetGlobalRenderService()
	if err != nil {
		return err
	}
	out, err := render.Render(table, services.RenderOptions{Format: format, Name: name, Plain: plain, MarkdownStyle: style})
	if err != nil {
		return err
	}
	return writeOutput("", out)
}

func runQuery(cmd *cobra.Command, args []string) error {
	if err := setupServices(); err != nil {
		return err
	}

	from, _ := cmd.Flags().GetString("from")
	if from != "" {
		table, err := loadTable(cmd.Context(), from)
		if err != nil {
			return err
		}
		pctx, err := newChildContext(table)
		if err != nil {
			return err
		}
		defer pctx.Close()
	} else {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		pctx, err := newParentContext(cfg)
		if err != nil {
			return err
		}
		defer pctx.Close()
	}

	lnf, err := services.GetGlobalLookAndFeelService()
	if err != nil {
		return err
	}

	id := ""
	if len(args) == 2 {
		id = args[1]
	}
	v, err := lnf.Query(args[0], id)
	if err != nil {
		fallback := cmd.Flags().Lookup("default")
		if errors.Is(err, lnftypes.ErrNotFound) && fallback.Changed {
			output.Println(fallback.Value.String())
			return nil
		}
		return err
	}

	if asJSON, _ := cmd.Flags().GetBool("json"); asJSON {
		return output.JSON(v)
	}
	output.Println(v.Text)
	return nil
}

func runDiff(cmd *cobra.Command, args []string) error {
	if err := setupServices(); err != nil {
		return err
	}

	from, err := loadTable(cmd.Context(), args[0])
	if err != nil {
		return err
	}
	to, err := loadTable(cmd.Context(), args[1])
	if err != nil {
		return err
	}

	diff, err := services.GetGlobalDiffService()
	if err != nil {
		return err
	}

	if listChanges, _ := cmd.Flags().GetBool("changes"); listChanges {
		changes, err := diff.Diff(from, to)
		if err != nil {
			return err
		}
		for _, c := range changes {
			output.Println(c.String())
		}
		return nil
	}

	text, err := diff.TextDiff(from, to)
	if err != nil {
		return err
	}
	if text == "" {
		output.Info("No differences")
		return nil
	}
	output.Print(text)
	return nil
}

func runIDs(_ *cobra.Command, args []string) error {
	lnf := services.NewLookAndFeelService()

	kinds := []string{services.KindInt, services.KindFloat, services.KindColor, services.KindFont}
	if len(args) == 1 {
		kind := strings.ToLower(args[0])
		if lnf.IDNames(kind) == nil {
			return fmt.Errorf("%w %q", services.ErrUnknownKind, args[0])
		}
		kinds = []string{kind}
	}

	for _, kind := range kinds {
		for _, name := range lnf.IDNames(kind) {
			output.Printf("%s\t%s\n", kind, name)
		}
	}
	return nil
}
