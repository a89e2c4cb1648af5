package mux

import (
	"context"
	"github.com/go-chi/httprate"
	"lolpoker-server/pkg/room"
	"net/http"
	"time"

	gmux "github.com/gorilla/mux"
)

type ctxKey int

const (
	ctxDealerKey ctxKey = iota
)

// Mux handles HTTP requests
type Mux struct {
	*gmux.Router
	config  config
	version string
	pitBoss *room.PitBoss
}

type config struct {
	// wsConnectLimit is the number of websocket connections allowed from a single remote address per minute
	wsConnectLimit int
}

// NewMux returns a new HTTP mux
func NewMux(version string, pitBoss *room.PitBoss, wsConnectLimit int) *Mux {
	this := &Mux{
		Router:  gmux.NewRouter(),
		version: version,
		pitBoss: pitBoss,
		config: config{
			wsConnectLimit: wsConnectLimit,
		},
	}

	r := this.Router
	r.Methods(http.MethodGet).Path("/health").Handler(this.getHealth())
	r.Methods(http.MethodGet).Path("/table").Handler(this.getTable())

	tr := r.PathPrefix("/table/{id:[A-Za-z0-9_-]+}").Subrouter()
	tr.Use(this.tableMiddleware)

	tr.Methods(http.MethodGet).Path("").Handler(this.getTableID())
	tr.Methods(http.MethodGet).Path("/ws").Handler(httprate.LimitByIP(this.config.wsConnectLimit, time.Minute)(this.getTableIDWS()))

	return this
}

func (m *Mux) tableMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		dealer, found := m.pitBoss.Dealer(gmux.Vars(r)["id"])
		if !found {
			writeJSONError(w, http.StatusNotFound, nil)
			return
		}

		newCtx := context.WithValue(r.Context(), ctxDealerKey, dealer)
		next.ServeHTTP(w, r.WithContext(newCtx))
	})
}
