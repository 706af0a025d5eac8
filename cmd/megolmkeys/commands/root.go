package commands

import (
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"megolmkeys/internal/store"
)

var (
	home        string
	passphrase  string
	storeSecret string

	keyStore *store.FileKeyExportStore
)

func Execute() error {
	root := &cobra.Command{
		Use:   "megolmkeys",
		Short: "Export and import Megolm room key backups",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if home == "" {
				dir, err := os.UserHomeDir()
				if err != nil {
					return err
				}
				home = filepath.Join(dir, ".megolmkeys")
			}
			if err := os.MkdirAll(home, 0o700); err != nil {
				return err
			}

			// The at-rest store secret defaults to the export/import
			// passphrase when not given separately: most CLI users only
			// have one passphrase to remember, and the two encryption
			// layers (store-at-rest vs. portable export file) are
			// independent regardless of whether the secret is shared.
			secret := storeSecret
			if secret == "" {
				secret = passphrase
			}
			keyStore = store.NewFileKeyExportStore(home, secret)
			return nil
		},
	}

	root.PersistentFlags().StringVar(&home, "home", "", "config dir (default ~/.megolmkeys)")
	root.PersistentFlags().StringVarP(&passphrase, "passphrase", "p", "", "export/import passphrase")
	root.PersistentFlags().StringVar(&storeSecret, "store-secret", "", "at-rest store passphrase (default: same as --passphrase)")

	root.AddCommand(exportCmd(), importCmd())
	return root.Execute()
}
