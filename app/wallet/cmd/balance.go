package cmd

import (
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

var balanceCmd = &cobra.Command{
	Use:   "balance [account]",
	Short: "Print the balance of an account, the wallet account by default",
	Args:  cobra.MaximumNArgs(1),
	RunE:  balanceRun,
}

func init() {
	rootCmd.AddCommand(balanceCmd)
}

func balanceRun(cmd *cobra.Command, args []string) error {
	var who string
	switch len(args) {
	case 1:
		who = args[0]
	default:
		account, err := loadAccount()
		if err != nil {
			return err
		}
		who = string(account)
	}

	var bal balance
	if err := get("/v1/balance/"+who, &bal); err != nil {
		return err
	}

	pterm.Info.Printfln("%s (%s): %g", bal.Name, bal.Account, bal.Balance)
	return nil
}
