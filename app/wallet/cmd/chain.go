package cmd

import (
	"strconv"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

var chainCmd = &cobra.Command{
	Use:   "chain",
	Short: "Print the chain",
	RunE: func(cmd *cobra.Command, args []string) error {
		var blocks []block
		if err := get("/v1/blocks/list", &blocks); err != nil {
			return err
		}

		return renderBlocks(blocks)
	},
}

var poolCmd = &cobra.Command{
	Use:   "pool",
	Short: "Print the pending transactions",
	RunE: func(cmd *cobra.Command, args []string) error {
		var trans []tx
		if err := get("/v1/tx/uncommitted/list", &trans); err != nil {
			return err
		}

		return renderTxs(trans)
	},
}

func init() {
	rootCmd.AddCommand(chainCmd)
	rootCmd.AddCommand(poolCmd)
}

// =============================================================================

func renderBlocks(blocks []block) error {
	data := pterm.TableData{{"Index", "Hash", "Previous", "Proof", "Timestamp", "Txs"}}
	for _, b := range blocks {
		data = append(data, []string{
			strconv.FormatUint(b.Index, 10),
			short(b.Hash),
			short(b.PreviousHash),
			strconv.FormatUint(b.Proof, 10),
			strconv.FormatUint(b.TimeStamp, 10),
			strconv.Itoa(len(b.Transactions)),
		})
	}

	return pterm.DefaultTable.WithHasHeader().WithData(data).Render()
}

func renderTxs(trans []tx) error {
	if len(trans) == 0 {
		pterm.Info.Println("no pending transactions")
		return nil
	}

	data := pterm.TableData{{"Sender", "Recipient", "Amount"}}
	for _, t := range trans {
		data = append(data, []string{
			t.SenderName,
			t.RecipientName,
			strconv.FormatFloat(t.Amount, 'g', -1, 64),
		})
	}

	return pterm.DefaultTable.WithHasHeader().WithData(data).Render()
}

func short(hash string) string {
	if len(hash) <= 14 {
		return hash
	}
	return hash[:8] + ".." + hash[len(hash)-4:]
}
