package cmd

import (
	"fmt"

	"github.com/ardanlabs/blockledger/foundation/blockchain/database"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/spf13/cobra"
)

var accountCmd = &cobra.Command{
	Use:   "account",
	Short: "Print the account of the private key",
	RunE: func(cmd *cobra.Command, args []string) error {
		account, err := loadAccount()
		if err != nil {
			return err
		}

		fmt.Println(account)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(accountCmd)
}

func loadAccount() (database.AccountID, error) {
	privateKey, err := crypto.LoadECDSA(getPrivateKeyPath())
	if err != nil {
		return "", err
	}

	return database.PublicKeyToAccountID(privateKey.PublicKey), nil
}
