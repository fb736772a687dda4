package cmd

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log"
	"net/http"

	"github.com/spf13/cobra"
)

var (
	from  string
	to    string
	value int64
)

type newTx struct {
	From  string `json:"from"`
	To    string `json:"to"`
	Value int64  `json:"value"`
}

type txStatus struct {
	Status      string `json:"status"`
	Uncommitted int    `json:"uncommitted"`
}

// sendCmd represents the send command
var sendCmd = &cobra.Command{
	Use:   "send",
	Short: "Send a transaction to the node.",
	Run:   sendRun,
}

func init() {
	rootCmd.AddCommand(sendCmd)
	sendCmd.Flags().StringVarP(&url, "url", "u", "http://localhost:8080", "Url of the node.")
	sendCmd.Flags().StringVarP(&from, "from", "f", "", "Account the value is moving from.")
	sendCmd.Flags().StringVarP(&to, "to", "t", "", "Account the value is moving to.")
	sendCmd.Flags().Int64VarP(&value, "value", "v", 0, "Value to send.")
}

func sendRun(cmd *cobra.Command, args []string) {
	tx := newTx{
		From:  from,
		To:    to,
		Value: value,
	}

	data, err := json.Marshal(tx)
	if err != nil {
		log.Fatal(err)
	}

	resp, err := http.Post(fmt.Sprintf("%s/v1/tx/submit", url), "application/json", bytes.NewBuffer(data))
	if err != nil {
		log.Fatal(err)
	}
	defer resp.Body.Close()

	decoder := json.NewDecoder(resp.Body)
	var status txStatus
	if err := decoder.Decode(&status); err != nil {
		log.Fatal(err)
	}

	fmt.Println("Status:", status.Status)
	fmt.Println("Uncommitted:", status.Uncommitted)
}
