package fpl

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/itbasis/go-clock"
	"github.com/mww/fpl_analyzer/model"
	"github.com/mww/fpl_analyzer/testutils"
)

func TestLoadPlayers_success(t *testing.T) {
	fakeFPL := testutils.NewFakeFPLServer()
	defer fakeFPL.Close()

	c := NewForTest(fakeFPL.URL())

	expected := map[int]model.Player{
		1:  {ID: 1, WebName: "Raya", Position: model.POS_GK, Cost: 55, TotalPoints: 150},
		4:  {ID: 4, WebName: "Gabriel", Position: model.POS_DEF, Cost: 60, TotalPoints: 170},
		8:  {ID: 8, WebName: "M.Salah", Position: model.POS_MID, Cost: 130, TotalPoints: 344},
		11: {ID: 11, WebName: "Jacob Murphy", Position: model.POS_MID, Cost: 50, TotalPoints: 173},
		14: {ID: 14, WebName: "Haaland", Position: model.POS_FWD, Cost: 145, TotalPoints: 181},
	}

	players, err := c.LoadPlayers(context.Background())
	if err != nil {
		t.Fatalf("error should have been nil, was: %v", err)
	}
	// 15 elements in the fixture, one of which is a manager.
	if len(players) != 14 {
		t.Fatalf("wrong number of players, expected 14, got %d", len(players))
	}

	for i, p := range players {
		if p.ID != i+1 {
			t.Errorf("players should keep fetch order, index %d had id %d", i, p.ID)
		}
		if p.Position == model.POS_UNKNOWN {
			t.Errorf("player %d should have been skipped", p.ID)
		}

		e, found := expected[p.ID]
		if !found {
			continue
		}
		if p != e {
			t.Errorf("expected %+v, got %+v", e, p)
		}
	}
}

func TestLoadPlayers_httpError(t *testing.T) {
	fakeFPL := httptest.NewServer(http.HandlerFunc(func(rw http.ResponseWriter, req *http.Request) {
		rw.WriteHeader(http.StatusNotFound)
	}))
	defer fakeFPL.Close()

	c := NewForTest(fakeFPL.URL)

	players, err := c.LoadPlayers(context.Background())
	if err == nil {
		t.Fatalf("error should not have been nil")
	}
	if !errors.Is(err, ErrFetch) {
		t.Errorf("expected ErrFetch, got %v", err)
	}
	if players != nil {
		t.Fatalf("players should have been nil")
	}
}

func TestLoadPlayers_badJSON(t *testing.T) {
	requests := 0
	fakeFPL := httptest.NewServer(http.HandlerFunc(func(rw http.ResponseWriter, req *http.Request) {
		requests++
		rw.WriteHeader(http.StatusOK)
		rw.Write([]byte(`{"elements": [`))
	}))
	defer fakeFPL.Close()

	c := NewForTest(fakeFPL.URL)

	if _, err := c.LoadPlayers(context.Background()); !errors.Is(err, ErrFetch) {
		t.Fatalf("expected ErrFetch, got %v", err)
	}
	if requests != 1 {
		t.Errorf("decode errors should not be retried, got %d requests", requests)
	}
}

func TestLoadPlayers_retry(t *testing.T) {
	tests := map[string]struct {
		failures     int
		status       int
		wantErr      bool
		wantRequests int
	}{
		"no failures":          {failures: 0, status: http.StatusOK, wantErr: false, wantRequests: 1},
		"one 503 then success": {failures: 1, status: http.StatusServiceUnavailable, wantErr: false, wantRequests: 2},
		"two 503s":             {failures: 2, status: http.StatusServiceUnavailable, wantErr: true, wantRequests: 2},
		"404 is not retried":   {failures: 1, status: http.StatusNotFound, wantErr: true, wantRequests: 1},
		"429 is not retried":   {failures: 1, status: http.StatusTooManyRequests, wantErr: true, wantRequests: 1},
		"500 then success":     {failures: 1, status: http.StatusInternalServerError, wantErr: false, wantRequests: 2},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			fakeFPL := testutils.NewFakeFPLServer()
			defer fakeFPL.Close()
			fakeFPL.FailNext(tc.failures, tc.status)

			c := NewForTest(fakeFPL.URL())
			players, err := c.LoadPlayers(context.Background())
			if tc.wantErr {
				if !errors.Is(err, ErrFetch) {
					t.Errorf("expected ErrFetch, got %v", err)
				}
			} else {
				if err != nil {
					t.Fatalf("expected no error, got %v", err)
				}
				if len(players) == 0 {
					t.Errorf("expected players to be loaded")
				}
			}
			if fakeFPL.Requests() != tc.wantRequests {
				t.Errorf("expected %d requests, got %d", tc.wantRequests, fakeFPL.Requests())
			}
		})
	}
}

func TestLoadPlayers_retryWaitsOnClock(t *testing.T) {
	fakeFPL := testutils.NewFakeFPLServer()
	defer fakeFPL.Close()
	fakeFPL.FailNext(1, http.StatusBadGateway)

	mock := clock.NewMock()
	c, err := New(fakeFPL.URL(), 5*time.Second, 2*time.Second, mock)
	if err != nil {
		t.Fatalf("error creating client: %v", err)
	}

	done := make(chan error, 1)
	go func() {
		_, err := c.LoadPlayers(context.Background())
		done <- err
	}()

	// Keep advancing the mock clock until the retry fires.
	deadline := time.After(5 * time.Second)
	for {
		select {
		case err := <-done:
			if err != nil {
				t.Fatalf("expected retry to succeed, got %v", err)
			}
			if fakeFPL.Requests() != 2 {
				t.Errorf("expected 2 requests, got %d", fakeFPL.Requests())
			}
			return
		case <-deadline:
			t.Fatal("timed out waiting for retry")
		case <-time.After(10 * time.Millisecond):
			mock.Add(time.Second)
		}
	}
}

func TestLoadPlayers_cancelledDuringRetryWait(t *testing.T) {
	fakeFPL := testutils.NewFakeFPLServer()
	defer fakeFPL.Close()
	fakeFPL.FailNext(1, http.StatusServiceUnavailable)

	c, err := New(fakeFPL.URL(), 5*time.Second, time.Hour, clock.NewMock())
	if err != nil {
		t.Fatalf("error creating client: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		time.Sleep(20 * time.Millisecond)
		cancel()
	}()

	_, err = c.LoadPlayers(ctx)
	if !errors.Is(err, context.Canceled) {
		t.Errorf("expected context.Canceled, got %v", err)
	}
	if !errors.Is(err, ErrFetch) {
		t.Errorf("expected ErrFetch, got %v", err)
	}
	if fakeFPL.Requests() != 1 {
		t.Errorf("expected 1 request, got %d", fakeFPL.Requests())
	}
}

func TestNew(t *testing.T) {
	if _, err := New("", 0, 0, clock.New()); err == nil {
		t.Errorf("expected an error for a zero timeout")
	}

	c, err := New("", time.Second, 0, clock.New())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if c.(*client).url != FPLURL {
		t.Errorf("expected default url %s, got %s", FPLURL, c.(*client).url)
	}
}
