package nhlstats

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/pquint/onice/internal/usecase"
)

func TestClientSchedule_RequestsBothExpands(t *testing.T) {
	var gotPath string
	var gotExpands []string

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotExpands = r.URL.Query()["expand"]
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(scheduleLiveFixture))
	}))
	defer srv.Close()

	client := NewClient(ClientConfig{BaseURL: srv.URL})

	sched, err := client.Schedule(t.Context(), 6)
	if err != nil {
		t.Fatalf("schedule failed: %v", err)
	}

	if gotPath != "/teams/6" {
		t.Fatalf("unexpected path: %s", gotPath)
	}
	if len(gotExpands) != 2 || gotExpands[0] != "team.schedule.next" || gotExpands[1] != "team.schedule.previous" {
		t.Fatalf("expected both expand params, got %v", gotExpands)
	}
	if sched.Next == nil || !sched.Next.Live() {
		t.Fatalf("expected a live next game, got %+v", sched.Next)
	}
}

func TestClientBoxscore_EndToEnd(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/game/2021020441/boxscore" {
			t.Errorf("unexpected path: %s", r.URL.Path)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(boxscoreFixture))
	}))
	defer srv.Close()

	client := NewClient(ClientConfig{BaseURL: srv.URL})

	view, err := client.Boxscore(t.Context(), 2021020441)
	if err != nil {
		t.Fatalf("boxscore failed: %v", err)
	}
	if len(view.Home.OnIce) != 2 {
		t.Fatalf("expected two home on-ice players, got %d", len(view.Home.OnIce))
	}
}

func TestClientSchedule_ProviderErrorStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "upstream broke", http.StatusBadGateway)
	}))
	defer srv.Close()

	client := NewClient(ClientConfig{BaseURL: srv.URL})

	if _, err := client.Schedule(t.Context(), 6); err == nil {
		t.Fatalf("expected error on provider 502")
	}
}

func TestClientSchedule_NetworkFailureIsDependencyUnavailable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	srv.Close()

	client := NewClient(ClientConfig{BaseURL: srv.URL})

	_, err := client.Schedule(t.Context(), 6)
	if !errors.Is(err, usecase.ErrDependencyUnavailable) {
		t.Fatalf("expected ErrDependencyUnavailable, got %v", err)
	}
}

func TestClientSchedule_RejectsNonPositiveTeamID(t *testing.T) {
	client := NewClient(ClientConfig{})

	if _, err := client.Schedule(t.Context(), 0); err == nil {
		t.Fatalf("expected error for team id 0")
	}
}
