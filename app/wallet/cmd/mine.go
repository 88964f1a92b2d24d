package cmd

import (
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

var mineCmd = &cobra.Command{
	Use:   "mine",
	Short: "Ask the node to mine the pending transactions",
	RunE:  mineRun,
}

func init() {
	rootCmd.AddCommand(mineCmd)
}

func mineRun(cmd *cobra.Command, args []string) error {
	spinner, _ := pterm.DefaultSpinner.Start("Mining ...")

	var blk block
	if err := post("/v1/mining/mine", nil, &blk); err != nil {
		spinner.Fail("Mining failed")
		return err
	}

	spinner.Success("Block mined")

	return renderBlocks([]block{blk})
}
