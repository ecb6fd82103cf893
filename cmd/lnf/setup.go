package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"lookandfeel/internal/config"
	lnfcontext "lookandfeel/internal/context"
	"lookandfeel/internal/data/embedded"
	"lookandfeel/internal/lookandfeel"
	"lookandfeel/internal/native"
	"lookandfeel/internal/output"
	"lookandfeel/internal/services"
	"lookandfeel/internal/transport"
	"lookandfeel/pkg/lnftypes"
)

// addBackendFlags adds the flags that select a native backend.
func addBackendFlags(cmd *cobra.Command) {
	cmd.Flags().String("backend", "", "Native backend: profile, terminal or layered")
	cmd.Flags().String("profile", "", "Profile name ("+strings.Join(embedded.ProfileNames(), ", ")+") or YAML path")
	cmd.Flags().String("password-char", "", "Override the password mask character")
	cmd.Flags().String("echo-password", "", "Override whether typed password characters are echoed")
}

func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	return config.Load(config.Options{ConfigFile: configFile, Flags: cmd.Flags()})
}

// setupServices registers and initializes the default services on the global registry.
func setupServices() error {
	registry := services.NewRegistry()
	if err := services.RegisterDefaults(registry); err != nil {
		return err
	}
	if err := registry.InitializeAll(); err != nil {
		return err
	}
	services.SetGlobalRegistry(registry)
	return nil
}

// newParentContext builds the parent's native source and installs it as the process context.
// Initialization errors are returned here so the user sees them, rather than an empty table.
func newParentContext(cfg *config.Config) (*lnfcontext.ProcessContext, error) {
	backend, err := native.New(cfg.Backend, cfg.Profile)
	if err != nil {
		return nil, err
	}
	backend = native.WithOverrides(backend, cfg.PasswordChar, cfg.EchoPassword)

	source := lookandfeel.NewNativeLookAndFeel(backend)
	if err := source.NativeInit(); err != nil {
		return nil, fmt.Errorf("failed to initialize %s backend: %w", backend.Name(), err)
	}

	ctx := lnfcontext.NewParent(source)
	lnfcontext.SetGlobalContext(ctx)
	return ctx, nil
}

// newChildContext installs table as the process's remote look and feel.
func newChildContext(table *lnftypes.FullLookAndFeel) (*lnfcontext.ProcessContext, error) {
	ctx, err := lnfcontext.NewChild(table)
	if err != nil {
		return nil, err
	}
	lnfcontext.SetGlobalContext(ctx)
	return ctx, nil
}

// watchPath returns the profile file to watch, or "" when the profile is embedded.
func watchPath(cfg *config.Config) string {
	if cfg.Backend == "terminal" || cfg.Profile == "" || embedded.HasProfile(cfg.Profile) {
		return ""
	}
	return cfg.Profile
}

// loadTable resolves ref to a table. ref is a parent URL, a JSON snapshot file, a YAML profile
// file, or an embedded profile name.
func loadTable(ctx context.Context, ref string) (*lnftypes.FullLookAndFeel, error) {
	switch {
	case strings.HasPrefix(ref, "http://"), strings.HasPrefix(ref, "https://"):
		return transport.NewClient(ref).Fetch(ctx)

	case strings.EqualFold(filepath.Ext(ref), ".json"):
		f, err := os.Open(ref)
		if err != nil {
			return nil, fmt.Errorf("failed to open snapshot: %w", err)
		}
		defer func() { _ = f.Close() }()
		return transport.Decode(f)

	default:
		source := lookandfeel.NewNativeLookAndFeel(native.NewProfileBackend(ref))
		if err := source.NativeInit(); err != nil {
			return nil, fmt.Errorf("failed to load profile %s: %w", ref, err)
		}
		return lookandfeel.Collect(source, ""), nil
	}
}

// writeOutput writes s to path, or to stdout when path is empty or "-".
func writeOutput(path, s string) error {
	if path == "" || path == "-" {
		output.Print(s)
		return nil
	}
	if err := os.WriteFile(path, []byte(s), 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}
