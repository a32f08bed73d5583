package web

import (
	"context"
	"embed"
	"fmt"
	"html/template"
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/mww/fpl_analyzer/chart"
	log "github.com/sirupsen/logrus"
	"github.com/unrolled/render"
)

//go:embed templates
var templates embed.FS

type Server struct {
	server   *http.Server
	listener net.Listener
}

func NewServer(port int, g *Gallery) (*Server, error) {
	if port < 0 || port > 65535 {
		return nil, fmt.Errorf("invalid port: %d", port)
	}
	render := newRender()
	router := getRouter(g, render)

	s := &Server{
		server: &http.Server{
			Addr:              fmt.Sprintf("localhost:%d", port),
			Handler:           router,
			ReadHeaderTimeout: 10 * time.Second,
		},
	}
	return s, nil
}

// Listen binds the address so a busy port is reported before any analysis runs.
func (s *Server) Listen() error {
	l, err := net.Listen("tcp", s.server.Addr)
	if err != nil {
		return fmt.Errorf("%w: %w", chart.ErrPresentationUnavailable, err)
	}
	s.listener = l
	return nil
}

func (s *Server) Addr() string {
	if s.listener != nil {
		return s.listener.Addr().String()
	}
	return s.server.Addr
}

func (s *Server) Serve(shutdown chan bool, wg *sync.WaitGroup) {
	go func() {
		defer wg.Done()

		// Wait for the shutdown signal and safely close the server.
		<-shutdown

		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		if err := s.server.Shutdown(ctx); err != nil {
			log.Errorf("error shutting down server: %v", err)
		}
	}()

	if s.listener == nil {
		if err := s.Listen(); err != nil {
			log.Errorf("%v", err)
			return
		}
	}

	log.Infof("charts are available at http://%s/", s.Addr())
	err := s.server.Serve(s.listener)
	if err != nil && err != http.ErrServerClosed {
		log.Errorf("error with server: %v", err)
	}
}

func newRender() *render.Render {
	return render.New(render.Options{
		Directory: "templates",
		Layout:    "layout",
		FileSystem: &render.EmbedFileSystem{
			FS: templates,
		},
		Funcs: []template.FuncMap{
			{
				"time": timeFormatter,
			},
		},
	})
}

func timeFormatter(t time.Time) string {
	if t.IsZero() {
		return "Never"
	}
	return t.Format(time.DateTime)
}
