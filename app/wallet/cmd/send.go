package cmd

import (
	"github.com/ardanlabs/blockledger/foundation/blockchain/database"
	"github.com/ardanlabs/blockledger/foundation/blockchain/state"
	"github.com/ardanlabs/blockledger/foundation/nameservice"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

var (
	to     string
	amount float64
)

var sendCmd = &cobra.Command{
	Use:   "send",
	Short: "Sign and send a transaction to the node",
	RunE:  sendRun,
}

func init() {
	rootCmd.AddCommand(sendCmd)
	sendCmd.Flags().StringVarP(&to, "to", "t", "", "Name or account of the recipient.")
	sendCmd.Flags().Float64VarP(&amount, "amount", "v", state.DefaultAmount, "Amount to send.")
	sendCmd.MarkFlagRequired("to")
}

func sendRun(cmd *cobra.Command, args []string) error {
	privateKey, err := crypto.LoadECDSA(getPrivateKeyPath())
	if err != nil {
		return err
	}

	ns, err := nameservice.New(accountPath)
	if err != nil {
		return err
	}

	recipient, err := ns.Resolve(to)
	if err != nil {
		return err
	}

	tx, err := database.NewTx("", recipient, "", amount).Sign(privateKey)
	if err != nil {
		return err
	}

	if err := post("/v1/tx/submit", tx, nil); err != nil {
		return err
	}

	pterm.Success.Printfln("sent %g to %s", tx.Amount, ns.Lookup(recipient))
	return nil
}
