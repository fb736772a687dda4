package cmd

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"

	"github.com/luxchain/ledger/foundation/blockchain/database"
	"github.com/spf13/cobra"
)

// chainCmd represents the chain command
var chainCmd = &cobra.Command{
	Use:   "chain",
	Short: "Print the chain of blocks the node knows about.",
	Run:   chainRun,
}

func init() {
	rootCmd.AddCommand(chainCmd)
	chainCmd.Flags().StringVarP(&url, "url", "u", "http://localhost:9080", "Url of the node.")
}

func chainRun(cmd *cobra.Command, args []string) {
	resp, err := http.Get(fmt.Sprintf("%s/v1/node/chain/list", url))
	if err != nil {
		log.Fatal(err)
	}
	defer resp.Body.Close()

	decoder := json.NewDecoder(resp.Body)
	var blocks []database.Block
	if err := decoder.Decode(&blocks); err != nil {
		log.Fatal(err)
	}

	for _, blk := range blocks {
		fmt.Printf("%6d  trans[%3d]  %s\n", blk.Number, len(blk.Trans), blk.Hash())
	}
}
