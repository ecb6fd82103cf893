package main

import (
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/cobra"

	"lookandfeel/internal/logger"
	"lookandfeel/internal/output"
	"lookandfeel/internal/services"
	"lookandfeel/internal/transport"
	"lookandfeel/pkg/lnftypes"
)

// childCmd runs as a child of a serving parent
var childCmd = &cobra.Command{
	Use:   "child",
	Short: "Receive the parent's look and feel and answer queries from it",
	Long: `Run as a child: fetch the parent's snapshot, install it as this process's look and feel,
and answer the given queries from it. With --follow the child stays subscribed and swaps in
every snapshot the parent pushes.`,
	Example: `  lnf child --parent-url http://127.0.0.1:7878 --query color:Window --query int:ScrollbarWidth
  lnf child --follow`,
	Args: cobra.NoArgs,
	RunE: runChild,
}

func init() {
	childCmd.Flags().String("parent-url", "", "Parent address [default: http://127.0.0.1:7878]")
	childCmd.Flags().StringArray("query", nil, "Query to answer after each install, as kind:id (repeatable)")
	childCmd.Flags().Bool("follow", false, "Stay subscribed and apply pushed snapshots")
}

func runChild(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	if err := setupServices(); err != nil {
		return err
	}

	queries, _ := cmd.Flags().GetStringArray("query")
	follow, _ := cmd.Flags().GetBool("follow")

	client := transport.NewClient(cfg.ParentURL)

	table, err := client.Fetch(cmd.Context())
	if err != nil {
		return err
	}
	pctx, err := newChildContext(table)
	if err != nil {
		return err
	}
	defer pctx.Close()

	if err := answerQueries(queries); err != nil {
		return err
	}
	if !follow {
		return nil
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info("Following parent", "parent", cfg.ParentURL)
	return client.Subscribe(ctx, func(next *lnftypes.FullLookAndFeel) error {
		if err := pctx.InstallRemote(next); err != nil {
			return err
		}
		return answerQueries(queries)
	})
}

// answerQueries prints each "kind:id" query against the active look and feel.
func answerQueries(queries []string) error {
	if len(queries) == 0 {
		return nil
	}
	lnf, err := services.GetGlobalLookAndFeelService()
	if err != nil {
		return err
	}

	for _, q := range queries {
		kind, id, _ := strings.Cut(q, ":")
		v, err := lnf.Query(kind, id)
		if err != nil {
			output.Error(fmt.Sprintf("%s\t%v", q, err))
			continue
		}
		output.Printf("%s\t%s\n", q, v.Text)
	}
	return nil
}
