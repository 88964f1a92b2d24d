package nameservice_test

import (
	"path/filepath"
	"testing"

	"github.com/ardanlabs/blockledger/foundation/blockchain/database"
	"github.com/ardanlabs/blockledger/foundation/nameservice"
	"github.com/ethereum/go-ethereum/crypto"
)

// Success and failure markers.
const (
	success = "\u2713"
	failed  = "\u2717"
)

func Test_NameService(t *testing.T) {
	t.Log("Given the need to name the accounts found in key files.")
	{
		dir := t.TempDir()

		pk, err := crypto.GenerateKey()
		if err != nil {
			t.Fatalf("\t%s\tShould be able to generate a key: %s", failed, err)
		}
		if err := crypto.SaveECDSA(filepath.Join(dir, "kennedy.ecdsa"), pk); err != nil {
			t.Fatalf("\t%s\tShould be able to save the key: %s", failed, err)
		}
		account := database.PublicKeyToAccountID(pk.PublicKey)

		ns, err := nameservice.New(dir)
		if err != nil {
			t.Fatalf("\t%s\tShould be able to build the name service: %s", failed, err)
		}
		t.Logf("\t%s\tShould be able to build the name service.", success)

		if name := ns.Lookup(account); name != "kennedy" {
			t.Fatalf("\t%s\tShould find the name of the account: got %q", failed, name)
		}
		t.Logf("\t%s\tShould find the name of the account.", success)

		if name := ns.Lookup("MINING"); name != "MINING" {
			t.Fatalf("\t%s\tShould return an unknown account as is: got %q", failed, name)
		}
		t.Logf("\t%s\tShould return an unknown account as is.", success)

		got, err := ns.Resolve("kennedy")
		if err != nil || got != account {
			t.Fatalf("\t%s\tShould resolve the name: got %q, %v", failed, got, err)
		}

		got, err = ns.Resolve(string(account))
		if err != nil || got != account {
			t.Fatalf("\t%s\tShould resolve the account: got %q, %v", failed, got, err)
		}

		if _, err := ns.Resolve("nobody"); err == nil {
			t.Fatalf("\t%s\tShould fail to resolve an unknown name.", failed)
		}
		t.Logf("\t%s\tShould resolve names and accounts.", success)
	}
}
