package commands

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"megolmkeys/internal/keyexport"
)

func importCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "import <infile>",
		Short: "Decrypt an armored file and load its sessions into the home directory",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if passphrase == "" {
				return fmt.Errorf("passphrase required (-p)")
			}

			in := args[0]
			var data []byte
			var err error
			if in == "-" {
				data, err = io.ReadAll(os.Stdin)
			} else {
				data, err = os.ReadFile(in)
			}
			if err != nil {
				return err
			}

			count, err := keyexport.Import(context.Background(), keyStore, passphrase, data)
			if err != nil {
				fmt.Println(color.RedString("✗") + " import failed: " + err.Error())
				return err
			}

			fmt.Printf("%s imported %d session(s)\n", color.GreenString("✓"), count)
			return nil
		},
	}
}
