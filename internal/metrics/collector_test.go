package metrics

import (
	"context"
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestCollectorTracksRun(t *testing.T) {
	reg := prometheus.NewRegistry()
	c := NewCollector(reg)

	s := sunEarth(t)
	c.Attach(s)

	if _, err := s.Run(context.Background(), 400); err != nil {
		t.Fatalf("run failed: %v", err)
	}

	if got := testutil.ToFloat64(c.steps); got != 400 {
		t.Errorf("expected 400 steps, got %v", got)
	}
	if got := testutil.ToFloat64(c.simTime); got != s.Time() {
		t.Errorf("expected time %v, got %v", s.Time(), got)
	}
	if got := testutil.ToFloat64(c.energy); got != s.TotalEnergy() {
		t.Errorf("expected energy %v, got %v", s.TotalEnergy(), got)
	}
	if got := testutil.ToFloat64(c.orbits.WithLabelValues("Earth")); got != 1 {
		t.Errorf("expected one Earth orbit, got %v", got)
	}
	if got := testutil.ToFloat64(c.period.WithLabelValues("Earth")); got < 0.99 || got > 1.01 {
		t.Errorf("expected a period near one year, got %v", got)
	}
	if testutil.CollectAndCount(c.orbits) != 1 {
		t.Error("the Sun must never report an orbit")
	}
}

func TestCollectorDistances(t *testing.T) {
	reg := prometheus.NewRegistry()
	c := NewCollector(reg)

	c.OnDistance(3, 7.8e10, 1.2e9)

	if got := testutil.ToFloat64(c.distance.WithLabelValues("mars")); got != 7.8e10 {
		t.Errorf("unexpected mars distance %v", got)
	}
	if got := testutil.ToFloat64(c.distance.WithLabelValues("earth")); got != 1.2e9 {
		t.Errorf("unexpected earth distance %v", got)
	}
}

func TestHandlerServesMetrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	c := NewCollector(reg)
	c.OnEnergy(0, -2.5e33)

	srv := httptest.NewServer(Handler(reg))
	defer srv.Close()

	resp, err := srv.Client().Get(srv.URL)
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(body), "orbsim_total_energy_joules -2.5e+33") {
		t.Errorf("energy gauge missing from output:\n%s", body)
	}
}
