package web_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"github.com/ardanlabs/blockledger/foundation/web"
)

// Success and failure markers.
const (
	success = "\u2713"
	failed  = "\u2717"
)

func Test_App(t *testing.T) {
	t.Log("Given the need to route requests through the app.")
	{
		shutdown := make(chan os.Signal, 1)

		var order []string
		mw := func(name string) web.Middleware {
			return func(h web.Handler) web.Handler {
				return func(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
					order = append(order, name)
					return h(ctx, w, r)
				}
			}
		}

		app := web.NewApp(shutdown, mw("app"))

		app.Handle(http.MethodGet, "v1", "/balance/:account", func(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
			v, err := web.GetValues(ctx)
			if err != nil {
				return err
			}

			resp := struct {
				Account string `json:"account"`
				TraceID string `json:"trace_id"`
			}{
				Account: web.Param(r, "account"),
				TraceID: v.TraceID,
			}

			return web.Respond(ctx, w, resp, http.StatusOK)
		}, mw("route"))

		app.Handle(http.MethodGet, "v1", "/broken", func(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
			return web.NewShutdownError("integrity failure")
		})

		w := httptest.NewRecorder()
		app.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/balance/0xabc", nil))

		if w.Code != http.StatusOK || !strings.Contains(w.Body.String(), `"account":"0xabc"`) {
			t.Fatalf("\t%s\tShould respond with the route parameter: %d %s", failed, w.Code, w.Body.String())
		}
		t.Logf("\t%s\tShould respond with the route parameter.", success)

		if len(order) != 2 || order[0] != "app" || order[1] != "route" {
			t.Fatalf("\t%s\tShould run app middleware before route middleware: %v", failed, order)
		}
		t.Logf("\t%s\tShould run app middleware before route middleware.", success)

		app.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/v1/broken", nil))

		select {
		case <-shutdown:
			t.Logf("\t%s\tShould signal shutdown on an integrity failure.", success)
		default:
			t.Fatalf("\t%s\tShould signal shutdown on an integrity failure.", failed)
		}
	}
}
