// This program performs administrative tasks against the chain store while
// the node is offline.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/luxchain/ledger/app/tooling/admin/commands"
	"github.com/luxchain/ledger/foundation/blockchain/database"
	"github.com/luxchain/ledger/foundation/blockchain/genesis"
	"github.com/luxchain/ledger/foundation/blockchain/storage/bolt"
	"github.com/luxchain/ledger/foundation/blockchain/storage/disk"
	"github.com/luxchain/ledger/foundation/logger"
	"go.uber.org/zap"
)

// build is the git version of this program. It is set using build flags in the makefile.
var build = "develop"

func main() {

	// Construct the application logger.
	log, err := logger.New("ADMIN")
	if err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
	defer log.Sync()

	// Perform the startup and shutdown sequence.
	if err := run(log); err != nil {
		log.Errorw("startup", "ERROR", err)
		log.Sync()
		os.Exit(1)
	}
}

func run(log *zap.SugaredLogger) error {
	if len(os.Args) < 2 {
		return errors.New("usage: admin [bals|trans|verify] [account]")
	}

	gen, err := genesis.Load(envOrDefault("ADMIN_GENESIS_FILE", "zblock/genesis.json"))
	if err != nil {
		return fmt.Errorf("unable to load genesis settings: %w", err)
	}

	dbPath := envOrDefault("ADMIN_DB_PATH", "zblock/blocks.db")

	var strg database.Storage
	switch envOrDefault("ADMIN_STORAGE", "bolt") {
	case "disk":
		strg, err = disk.New(dbPath)
	default:
		strg, err = bolt.New(dbPath)
	}
	if err != nil {
		return fmt.Errorf("unable to open block storage: %w", err)
	}

	ev := func(v string, args ...any) {
		fmt.Printf(v+"\n", args...)
	}

	db, err := database.New(gen, strg, 1, false, ev)
	if err != nil {
		return err
	}
	defer db.Close()

	return processCommands(os.Args, db, gen)
}

// processCommands handles the execution of the commands specified on
// the command line.
func processCommands(args []string, db *database.Database, gen genesis.Genesis) error {
	switch args[1] {
	case "bals":
		if err := commands.Balances(args, db); err != nil {
			return fmt.Errorf("getting balances: %w", err)
		}

	case "trans":
		if err := commands.Transactions(args, db); err != nil {
			return fmt.Errorf("getting transactions: %w", err)
		}

	case "verify":
		if err := commands.Verify(db, gen.Difficulty); err != nil {
			return fmt.Errorf("verifying chain: %w", err)
		}

	default:
		return errors.New("usage: admin [bals|trans|verify] [account]")
	}

	return nil
}

// envOrDefault reads the specified environment variable, falling back to
// the specified default when it's unset.
func envOrDefault(name string, value string) string {
	if v := os.Getenv(name); v != "" {
		return v
	}

	return value
}
