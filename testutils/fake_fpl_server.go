package testutils

import (
	"embed"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync/atomic"

	"github.com/go-chi/chi/v5"
	log "github.com/sirupsen/logrus"
)

//go:embed fpldata
var fpldata embed.FS

// FakeFPLServer serves canned FPL API responses. Failures can be queued with
// FailNext to exercise the client's retry behaviour.
type FakeFPLServer struct {
	s        *httptest.Server
	failures atomic.Int32
	status   atomic.Int32
	requests atomic.Int32
}

func NewFakeFPLServer() *FakeFPLServer {
	f := &FakeFPLServer{}

	r := chi.NewRouter()
	r.Route("/api", func(r chi.Router) {
		r.Get("/bootstrap-static/", f.bootstrapHandler)
	})

	f.s = httptest.NewServer(r)
	return f
}

func (f *FakeFPLServer) Close() {
	f.s.Close()
}

func (f *FakeFPLServer) URL() string {
	return f.s.URL
}

// FailNext makes the next n requests respond with the given status code.
func (f *FakeFPLServer) FailNext(n int, status int) {
	f.status.Store(int32(status))
	f.failures.Store(int32(n))
}

// Requests returns how many requests the server has received.
func (f *FakeFPLServer) Requests() int {
	return int(f.requests.Load())
}

func (f *FakeFPLServer) bootstrapHandler(w http.ResponseWriter, r *http.Request) {
	f.requests.Add(1)
	if f.failures.Load() > 0 {
		f.failures.Add(-1)
		w.WriteHeader(int(f.status.Load()))
		return
	}
	serveFile(w, "bootstrap-static.json")
}

func serveFile(w http.ResponseWriter, name string) {
	b, err := fpldata.ReadFile(fmt.Sprintf("fpldata/%s", name))
	if err != nil {
		log.Printf("error reading fpldata/%s: %v", name, err)
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write(b)
}
