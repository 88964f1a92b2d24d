package worker_test

import (
	"testing"
	"time"

	"github.com/ardanlabs/blockledger/foundation/blockchain/state"
	"github.com/ardanlabs/blockledger/foundation/blockchain/worker"
)

// Success and failure markers.
const (
	success = "\u2713"
	failed  = "\u2717"
)

func Test_Worker(t *testing.T) {
	t.Log("Given the need to mine in the background.")
	{
		st, err := state.New(state.Config{HostingNode: state.Host("0xFef311483Cc040e1A89fb9bb469eeB8A70935EF8")})
		if err != nil {
			t.Fatalf("\t%s\tShould be able to construct the state: %s", failed, err)
		}

		w := worker.Run(st, time.Hour, func(string, ...any) {})
		st.Worker.SignalStartMining()

		deadline := time.Now().Add(10 * time.Second)
		for len(st.Chain()) < 2 {
			if time.Now().After(deadline) {
				t.Fatalf("\t%s\tShould mine a block when signaled.", failed)
			}
			time.Sleep(10 * time.Millisecond)
		}
		t.Logf("\t%s\tShould mine a block when signaled.", success)

		w.Shutdown()
		t.Logf("\t%s\tShould shutdown cleanly.", success)
	}

	t.Log("Given the need to mine pending transactions on an interval.")
	{
		st, err := state.New(state.Config{HostingNode: state.Host("0xFef311483Cc040e1A89fb9bb469eeB8A70935EF8")})
		if err != nil {
			t.Fatalf("\t%s\tShould be able to construct the state: %s", failed, err)
		}

		worker.Run(st, 10*time.Millisecond, func(string, ...any) {})
		time.Sleep(100 * time.Millisecond)

		if n := len(st.Chain()); n != 1 {
			t.Fatalf("\t%s\tShould not mine an empty pool on a tick: got %d blocks", failed, n)
		}
		t.Logf("\t%s\tShould not mine an empty pool on a tick.", success)

		if err := st.Shutdown(); err != nil {
			t.Fatalf("\t%s\tShould shutdown the state and worker: %s", failed, err)
		}
		t.Logf("\t%s\tShould shutdown the state and worker.", success)
	}
}
