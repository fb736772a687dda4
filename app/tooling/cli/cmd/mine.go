package cmd

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"

	"github.com/spf13/cobra"
)

type minedBlock struct {
	Hash  string `json:"hash"`
	Block struct {
		Number uint64 `json:"number"`
		Nonce  uint64 `json:"nonce"`
	} `json:"block"`
}

// mineCmd represents the mine command
var mineCmd = &cobra.Command{
	Use:   "mine",
	Short: "Ask the node to mine the uncommitted transactions into a block.",
	Run:   mineRun,
}

func init() {
	rootCmd.AddCommand(mineCmd)
	mineCmd.Flags().StringVarP(&url, "url", "u", "http://localhost:8080", "Url of the node.")
}

func mineRun(cmd *cobra.Command, args []string) {
	resp, err := http.Post(fmt.Sprintf("%s/v1/mine", url), "application/json", nil)
	if err != nil {
		log.Fatal(err)
	}
	defer resp.Body.Close()

	decoder := json.NewDecoder(resp.Body)
	var mined minedBlock
	if err := decoder.Decode(&mined); err != nil {
		log.Fatal(err)
	}

	fmt.Println("Block:", mined.Block.Number)
	fmt.Println("Nonce:", mined.Block.Nonce)
	fmt.Println("Hash:", mined.Hash)
}
