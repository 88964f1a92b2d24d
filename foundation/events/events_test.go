package events_test

import (
	"testing"

	"github.com/ardanlabs/blockledger/foundation/events"
)

// Success and failure markers.
const (
	success = "\u2713"
	failed  = "\u2717"
)

func Test_Events(t *testing.T) {
	t.Log("Given the need to fan out events to subscribers.")
	{
		evts := events.New()

		a := evts.Subscribe("a")
		b := evts.Subscribe("b")

		if evts.Subscribe("a") != a {
			t.Fatalf("\t%s\tShould return the same channel for the same id.", failed)
		}
		t.Logf("\t%s\tShould return the same channel for the same id.", success)

		evts.Send("state: MineBlock: blk[1]")

		if got := <-a; got != "state: MineBlock: blk[1]" {
			t.Fatalf("\t%s\tShould deliver to the first subscriber: got %q", failed, got)
		}
		if got := <-b; got != "state: MineBlock: blk[1]" {
			t.Fatalf("\t%s\tShould deliver to the second subscriber: got %q", failed, got)
		}
		t.Logf("\t%s\tShould deliver to every subscriber.", success)

		for range 200 {
			evts.Send("flood")
		}
		t.Logf("\t%s\tShould not block on a full subscriber.", success)

		if err := evts.Unsubscribe("a"); err != nil {
			t.Fatalf("\t%s\tShould unsubscribe: %s", failed, err)
		}
		if err := evts.Unsubscribe("a"); err == nil {
			t.Fatalf("\t%s\tShould fail to unsubscribe twice.", failed)
		}
		t.Logf("\t%s\tShould unsubscribe once.", success)

		evts.Shutdown()

		if evts.Count() != 0 {
			t.Fatalf("\t%s\tShould remove every subscriber on shutdown.", failed)
		}

		for range b {
		}
		t.Logf("\t%s\tShould close every channel on shutdown.", success)
	}
}
