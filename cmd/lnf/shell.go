package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/abiosoft/ishell/v2"
	"github.com/spf13/cobra"

	lnfcontext "lookandfeel/internal/context"
	"lookandfeel/internal/logger"
	"lookandfeel/internal/services"
	"lookandfeel/internal/transport"
	"lookandfeel/internal/version"
	"lookandfeel/pkg/lnftypes"
)

// shellCmd starts the interactive console
var shellCmd = &cobra.Command{
	Use:   "shell",
	Short: "Explore a look and feel interactively",
	Long: `Start an interactive console. Without --parent-url the console acts as a parent over the
local backend; with it, as a child of that parent.`,
	Args: cobra.NoArgs,
	RunE: runShell,
}

func init() {
	shellCmd.Flags().String("parent-url", "", "Connect to a parent as a child instead of using the local backend")
	addBackendFlags(shellCmd)
}

// console is the state behind one interactive session.
type console struct {
	pctx   *lnfcontext.ProcessContext
	client *transport.Client
	last   *lnftypes.FullLookAndFeel
}

func runShell(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	if err := setupServices(); err != nil {
		return err
	}

	c := &console{}
	if cmd.Flags().Changed("parent-url") {
		c.client = transport.NewClient(cfg.ParentURL)
		table, err := c.client.Fetch(cmd.Context())
		if err != nil {
			return err
		}
		if c.pctx, err = newChildContext(table); err != nil {
			return err
		}
	} else if c.pctx, err = newParentContext(cfg); err != nil {
		return err
	}
	defer c.pctx.Close()

	if c.last, err = c.snapshot(); err != nil {
		return err
	}

	logger.Debug("Starting console", "role", c.pctx.Role().String())

	sh := ishell.New()
	sh.SetPrompt(fmt.Sprintf("lnf(%s)> ", c.pctx.Role()))
	sh.Println(version.GetFormattedVersion())
	sh.Println("Type 'help' for commands.")

	lnf, err := services.GetGlobalLookAndFeelService()
	if err != nil {
		return err
	}

	sh.AddCmd(&ishell.Cmd{
		Name: "get",
		Help: "get <kind> [id]: answer a query",
		Func: func(ic *ishell.Context) {
			if len(ic.Args) == 0 {
				ic.Println("usage: get <kind> [id]")
				return
			}
			id := ""
			if len(ic.Args) > 1 {
				id = ic.Args[1]
			}
			v, err := lnf.Query(ic.Args[0], id)
			if err != nil {
				ic.Println("error:", err)
				return
			}
			ic.Println(v.Text)
		},
		Completer: func(args []string) []string {
			if len(args) == 0 {
				return lnf.Kinds()
			}
			return lnf.IDNames(args[0])
		},
	})

	sh.AddCmd(&ishell.Cmd{
		Name: "dump",
		Help: "dump [table|markdown|yaml|json]: show the current snapshot",
		Func: func(ic *ishell.Context) {
			format := services.FormatTable
			if len(ic.Args) > 0 {
				format = ic.Args[0]
			}
			table, err := c.snapshot()
			if err != nil {
				ic.Println("error:", err)
				return
			}
			render, err := services.GetGlobalRenderService()
			if err != nil {
				ic.Println("error:", err)
				return
			}
			out, err := render.Render(table, services.RenderOptions{Format: format})
			if err != nil {
				ic.Println("error:", err)
				return
			}
			ic.Print(out)
		},
		Completer: func([]string) []string {
			return []string{services.FormatTable, services.FormatMarkdown, services.FormatYAML, services.FormatJSON}
		},
	})

	sh.AddCmd(&ishell.Cmd{
		Name: "refresh",
		Help: "re-extract (parent) or re-fetch (child) and show what changed",
		Func: func(ic *ishell.Context) {
			changes, err := c.refresh(context.Background())
			if err != nil {
				ic.Println("error:", err)
				return
			}
			if len(changes) == 0 {
				ic.Println("No changes")
				return
			}
			for _, ch := range changes {
				ic.Println(ch.String())
			}
		},
	})

	sh.AddCmd(&ishell.Cmd{
		Name: "ids",
		Help: "ids [kind]: list identifiers",
		Func: func(ic *ishell.Context) {
			kinds := []string{services.KindInt, services.KindFloat, services.KindColor, services.KindFont}
			if len(ic.Args) > 0 {
				kinds = ic.Args[:1]
			}
			for _, kind := range kinds {
				ic.Printf("%s: %s\n", kind, strings.Join(lnf.IDNames(kind), " "))
			}
		},
	})

	sh.AddCmd(&ishell.Cmd{
		Name: "role",
		Help: "show the process role and snapshot generation",
		Func: func(ic *ishell.Context) {
			ic.Printf("%s, generation %s, %d entries\n", c.pctx.Role(), c.last.Generation(), c.last.Len())
		},
	})

	sh.Run()
	return nil
}

func (c *console) snapshot() (*lnftypes.FullLookAndFeel, error) {
	lnf, err := services.GetGlobalLookAndFeelService()
	if err != nil {
		return nil, err
	}
	return lnf.Snapshot()
}

// refresh obtains a new snapshot in the way the role allows and reports the changes.
func (c *console) refresh(ctx context.Context) ([]services.Change, error) {
	switch c.pctx.Role() {
	case lnfcontext.RoleParent:
		if err := c.pctx.Invalidate(); err != nil {
			return nil, err
		}
	case lnfcontext.RoleChild:
		table, err := c.client.Fetch(ctx)
		if err != nil {
			return nil, err
		}
		if err := c.pctx.InstallRemote(table); err != nil {
			return nil, err
		}
	}

	next, err := c.snapshot()
	if err != nil {
		return nil, err
	}
	diff, err := services.GetGlobalDiffService()
	if err != nil {
		return nil, err
	}
	changes, err := diff.Diff(c.last, next)
	if err != nil {
		return nil, err
	}
	c.last = next
	return changes, nil
}
