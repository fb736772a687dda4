package cmd

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"

	"github.com/spf13/cobra"
)

type balance struct {
	Account string `json:"account"`
	Balance int64  `json:"balance"`
}

type balances struct {
	LatestBlock string    `json:"latest_block"`
	Uncommitted int       `json:"uncommitted"`
	Balances    []balance `json:"balances"`
}

var balanceCmd = &cobra.Command{
	Use:   "balance <account>",
	Short: "Print the balance for the specified account.",
	Args:  cobra.ExactArgs(1),
	Run:   balanceRun,
}

func init() {
	rootCmd.AddCommand(balanceCmd)
	balanceCmd.Flags().StringVarP(&url, "url", "u", "http://localhost:8080", "Url of the node.")
}

func balanceRun(cmd *cobra.Command, args []string) {
	account := args[0]

	resp, err := http.Get(fmt.Sprintf("%s/v1/balances/list/%s", url, account))
	if err != nil {
		log.Fatal(err)
	}
	defer resp.Body.Close()

	decoder := json.NewDecoder(resp.Body)
	var balances balances
	if err := decoder.Decode(&balances); err != nil {
		log.Fatal(err)
	}

	fmt.Println("For Account:", account)
	for _, blc := range balances.Balances {
		fmt.Println(blc.Balance)
	}
}
