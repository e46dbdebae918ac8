package store

import (
	"fmt"
	"io/fs"
	"path/filepath"

	"github.com/hance08/bankbook/internal/app"
	bookstore "github.com/hance08/bankbook/internal/store"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

type copyFlags struct {
	Backend string
	Path    string
	Force   bool
}

type CopyCommandRunner struct {
	app        *app.App
	migrations fs.FS
	flags      *copyFlags
}

func NewCopyCmd(a *app.App, migrations fs.FS) *cobra.Command {
	flags := &copyFlags{}

	cmd := &cobra.Command{
		Use:   "copy",
		Short: "Copy every account into another store",
		Long: `Copy the configured store into another backend or path, keeping IDs and order.
Point store.backend and store.path at the copy afterwards to switch over.`,
		Example:     `  bankbook store copy --to-backend sqlite --to-path accounts.db`,
		Annotations: skipLedger(),
		RunE: func(cmd *cobra.Command, args []string) error {
			runner := &CopyCommandRunner{
				app:        a,
				migrations: migrations,
				flags:      flags,
			}

			n, dst, err := runner.Run()
			if err != nil {
				return err
			}

			pterm.Success.Printf("Copied %d accounts to %s store %s\n", n, dst.Backend, dst.Path)
			return nil
		},
	}

	cmd.Flags().StringVar(&flags.Backend, "to-backend", "", "Destination backend (file, sqlite, bolt)")
	cmd.Flags().StringVar(&flags.Path, "to-path", "", "Destination path (defaults to the backend's default)")
	cmd.Flags().BoolVar(&flags.Force, "force", false, "Overwrite a destination that already holds accounts")
	cmd.MarkFlagRequired("to-backend")

	return cmd
}

func (r *CopyCommandRunner) Run() (int, bookstore.Config, error) {
	srcCfg, err := app.StoreConfig(r.app.Config)
	if err != nil {
		return 0, bookstore.Config{}, err
	}

	dstCfg := bookstore.Config{Backend: r.flags.Backend, Path: r.flags.Path}
	if dstCfg.Path == "" {
		dstCfg.Path = bookstore.DefaultPath(dstCfg.Backend)
	}
	dstCfg.Path, err = app.ExpandPath(dstCfg.Path)
	if err != nil {
		return 0, dstCfg, fmt.Errorf("invalid destination path: %w", err)
	}

	if dstCfg.Backend == bookstore.BackendMemory {
		return 0, dstCfg, fmt.Errorf("cannot copy into the memory backend")
	}
	if sameStore(srcCfg, dstCfg) {
		return 0, dstCfg, fmt.Errorf("source and destination are the same store")
	}

	src, err := bookstore.Open(srcCfg, r.migrations)
	if err != nil {
		return 0, dstCfg, err
	}
	defer src.Close()

	snap, err := src.Load()
	if err != nil {
		return 0, dstCfg, fmt.Errorf("failed to load accounts: %w", err)
	}

	dst, err := bookstore.Open(dstCfg, r.migrations)
	if err != nil {
		return 0, dstCfg, err
	}
	defer dst.Close()

	existing, err := dst.Load()
	if err != nil {
		return 0, dstCfg, fmt.Errorf("failed to read destination: %w", err)
	}
	if len(existing) > 0 && !r.flags.Force {
		return 0, dstCfg, fmt.Errorf("destination already holds %d accounts (use --force to overwrite)", len(existing))
	}

	if err := dst.Save(snap); err != nil {
		return 0, dstCfg, fmt.Errorf("failed to save accounts: %w", err)
	}

	return len(snap), dstCfg, nil
}

// sameStore compares backends and cleaned absolute paths, so "./a.json" and
// "a.json" name the same file.
func sameStore(a, b bookstore.Config) bool {
	return a.Backend == b.Backend && normalizePath(a.Path) == normalizePath(b.Path)
}

func normalizePath(path string) string {
	if path == "" {
		return ""
	}
	if abs, err := filepath.Abs(path); err == nil {
		return abs
	}
	return filepath.Clean(path)
}
