package commands

import (
	"context"
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"megolmkeys/internal/keyexport"
)

func exportCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "export <outfile>",
		Short: "Encrypt the home directory's group sessions to an armored file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if passphrase == "" {
				return fmt.Errorf("passphrase required (-p)")
			}

			armored, err := keyexport.Export(context.Background(), keyStore, passphrase)
			if err != nil {
				fmt.Println(color.RedString("✗") + " export failed: " + err.Error())
				return err
			}

			out := args[0]
			if out == "-" {
				_, err = os.Stdout.Write(armored)
				return err
			}
			if err := os.WriteFile(out, armored, 0o600); err != nil {
				return err
			}

			fmt.Println(color.GreenString("✓") + " wrote " + color.YellowString(out))
			return nil
		},
	}
}
