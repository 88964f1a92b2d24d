// This program performs administrative tasks against a stored ledger
// snapshot without running a node.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/ardanlabs/blockledger/app/tooling/admin/commands"
	"github.com/ardanlabs/blockledger/foundation/blockchain/database"
	"github.com/ardanlabs/blockledger/foundation/blockchain/storage"
	"github.com/ardanlabs/blockledger/foundation/logger"
	"github.com/ardanlabs/blockledger/foundation/nameservice"
	"github.com/ardanlabs/conf/v3"
	"go.uber.org/zap"
)

// build is the git version of this program. It is set using build flags in the makefile.
var build = "develop"

func main() {

	// Construct the application logger.
	log, err := logger.New("ADMIN", "stderr")
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
	cfg := struct {
		conf.Version
		Args    conf.Args
		Storage struct {
			Kind string `conf:"default:disk"`
			Path string `conf:"default:zblock/blockchain.txt"`
		}
		NameService struct {
			Folder string `conf:"default:zblock/accounts/"`
		}
	}{
		Version: conf.Version{
			Build: build,
			Desc:  "ledger administration: chain | pool | bals [account] | verify",
		},
	}

	const prefix = "ADMIN"
	help, err := conf.Parse(prefix, &cfg)
	if err != nil {
		if errors.Is(err, conf.ErrHelpWanted) {
			fmt.Println(help)
			return nil
		}
		return fmt.Errorf("parsing config: %w", err)
	}

	ev := func(v string, args ...any) {
		log.Infow(fmt.Sprintf(v, args...))
	}

	strg, err := storage.Open(cfg.Storage.Kind, cfg.Storage.Path, ev)
	if err != nil {
		return err
	}
	defer strg.Close()

	snap, err := strg.Load()
	if err != nil {
		return fmt.Errorf("loading snapshot: %w", err)
	}

	ns, err := nameservice.New(cfg.NameService.Folder)
	if err != nil {
		return fmt.Errorf("unable to load account name service: %w", err)
	}

	return processCommands(cfg.Args, snap, ns)
}

// processCommands handles the execution of the commands specified on
// the command line.
func processCommands(args conf.Args, snap database.Snapshot, ns *nameservice.NameService) error {
	switch args.Num(0) {
	case "chain":
		commands.Chain(os.Stdout, snap, ns)

	case "pool":
		commands.Pool(os.Stdout, snap, ns)

	case "bals":
		if err := commands.Balances(os.Stdout, snap, ns, args.Num(1)); err != nil {
			return fmt.Errorf("getting balances: %w", err)
		}

	case "verify":
		if err := commands.Verify(os.Stdout, snap); err != nil {
			return fmt.Errorf("verifying snapshot: %w", err)
		}

	default:
		return fmt.Errorf("unknown command %q", args.Num(0))
	}

	return nil
}
