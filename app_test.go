package main

import (
	"bytes"
	"context"
	"errors"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"go.uber.org/zap"

	"punchclock/internal/clock"
	"punchclock/internal/sheet"
	"punchclock/internal/store"
)

var t0 = time.Date(2024, 3, 4, 9, 0, 0, 0, time.UTC)

func newTestApp(t *testing.T, now time.Time) (*App, *bytes.Buffer) {
	t.Helper()
	var out bytes.Buffer
	st := store.NewFile(filepath.Join(t.TempDir(), "sheet.json"), zap.NewNop())
	return NewApp(st, clock.Fixed(now), zap.NewNop(), &out), &out
}

func TestAppPunchInOut(t *testing.T) {
	ctx := context.Background()
	a, out := newTestApp(t, t0)

	if err := a.PunchIn(ctx, nil); err != nil {
		t.Fatalf("PunchIn() error = %v", err)
	}
	if !strings.Contains(out.String(), "Punched in at 2024-03-04 09:00:00") {
		t.Errorf("output = %q", out.String())
	}

	a.clock = clock.Fixed(t0.Add(90 * time.Minute))
	out.Reset()
	if err := a.PunchOut(ctx, nil); err != nil {
		t.Fatalf("PunchOut() error = %v", err)
	}
	if !strings.Contains(out.String(), "Punched out at 2024-03-04 10:30:00 (1:30:00)") {
		t.Errorf("output = %q", out.String())
	}

	s, err := a.store.Load(ctx)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if got := s.Status(); got.State != sheet.PunchedOut || !got.Since.Equal(t0.Add(90*time.Minute)) {
		t.Errorf("stored status = %v", got)
	}
}

func TestAppPunchInTwice(t *testing.T) {
	ctx := context.Background()
	a, _ := newTestApp(t, t0)

	if err := a.PunchIn(ctx, nil); err != nil {
		t.Fatalf("PunchIn() error = %v", err)
	}
	later := t0.Add(time.Hour)
	err := a.PunchIn(ctx, &later)

	var punchedIn *sheet.AlreadyPunchedInError
	if !errors.As(err, &punchedIn) {
		t.Fatalf("PunchIn() error = %v, want AlreadyPunchedInError", err)
	}

	s, err := a.store.Load(ctx)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if len(s.Events) != 1 {
		t.Errorf("stored %d events after failed punch-in, want 1", len(s.Events))
	}
}

func TestAppPunchOutEmpty(t *testing.T) {
	a, _ := newTestApp(t, t0)

	err := a.PunchOut(context.Background(), nil)
	if !errors.Is(err, sheet.ErrNoPunches) {
		t.Fatalf("PunchOut() error = %v, want ErrNoPunches", err)
	}
}

func TestAppStatus(t *testing.T) {
	ctx := context.Background()
	a, out := newTestApp(t, t0.Add(45*time.Minute))

	if err := a.Status(ctx); err != nil {
		t.Fatalf("Status() error = %v", err)
	}
	if got := out.String(); got != "Not punched in, no punches recorded\n" {
		t.Errorf("empty status output = %q", out.String())
	}

	a.PunchIn(ctx, &t0)
	out.Reset()
	if err := a.Status(ctx); err != nil {
		t.Fatalf("Status() error = %v", err)
	}
	if !strings.Contains(out.String(), "Punched in since 2024-03-04 09:00:00 (0:45:00)") {
		t.Errorf("punched in status output = %q", out.String())
	}
}

func TestAppCount(t *testing.T) {
	ctx := context.Background()
	now := t0.Add(5 * time.Hour)
	a, out := newTestApp(t, now)

	stop := t0.Add(2 * time.Hour)
	a.PunchIn(ctx, &t0)
	a.PunchOut(ctx, &stop)
	reopen := t0.Add(4 * time.Hour)
	a.PunchIn(ctx, &reopen)
	out.Reset()

	label, begin, end, err := a.resolveRange("today", "", "")
	if err != nil {
		t.Fatalf("resolveRange() error = %v", err)
	}
	if err := a.Count(ctx, label, begin, end, false); err != nil {
		t.Fatalf("Count() error = %v", err)
	}
	if got := out.String(); got != "today: 3:00:00\n" {
		t.Errorf("Count() output = %q, want today: 3:00:00", got)
	}

	out.Reset()
	if err := a.Count(ctx, label, begin, end, true); err != nil {
		t.Fatalf("Count() error = %v", err)
	}
	if got := out.String(); got != "today: 3.00\n" {
		t.Errorf("Count() decimal output = %q, want today: 3.00", got)
	}
}

func TestAppShow(t *testing.T) {
	ctx := context.Background()
	a, out := newTestApp(t, t0.Add(5*time.Hour))

	stop := t0.Add(2 * time.Hour)
	a.PunchIn(ctx, &t0)
	a.PunchOut(ctx, &stop)
	reopen := t0.Add(4 * time.Hour)
	a.PunchIn(ctx, &reopen)
	out.Reset()

	label, begin, end, _ := a.resolveRange("today", "", "")
	if err := a.Show(ctx, label, begin, end); err != nil {
		t.Fatalf("Show() error = %v", err)
	}

	got := out.String()
	for _, want := range []string{"Sheet - today", "Mar 04, 2024", "09:00:00", "11:00:00", "running", "Total:", "3:00:00"} {
		if !strings.Contains(got, want) {
			t.Errorf("Show() output missing %q:\n%s", want, got)
		}
	}

	out.Reset()
	label, begin, end, _ = a.resolveRange("yesterday", "", "")
	if err := a.Show(ctx, label, begin, end); err != nil {
		t.Fatalf("Show() error = %v", err)
	}
	if got := out.String(); got != "No time tracked for yesterday\n" {
		t.Errorf("Show() output = %q", got)
	}
}

func TestResolveRange(t *testing.T) {
	a, _ := newTestApp(t, t0.Add(3*time.Hour))

	tests := []struct {
		name, period, from, to string
		label                  string
		begin, end             time.Time
		wantErr                bool
	}{
		{name: "default today", label: "today", begin: time.Date(2024, 3, 4, 0, 0, 0, 0, time.UTC), end: time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC)},
		{name: "week", period: "week", label: "week", begin: time.Date(2024, 3, 4, 0, 0, 0, 0, time.UTC), end: time.Date(2024, 3, 11, 0, 0, 0, 0, time.UTC)},
		{name: "explicit", from: "2024-03-01", to: "2024-03-02", label: "2024-03-01 to 2024-03-02", begin: time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC), end: time.Date(2024, 3, 2, 0, 0, 0, 0, time.UTC)},
		{name: "from only", from: "08:00", label: "08:00 to now", begin: t0.Add(-time.Hour), end: t0.Add(3 * time.Hour)},
		{name: "to only", to: "2024-03-02", label: "start to 2024-03-02", begin: time.Time{}, end: time.Date(2024, 3, 2, 0, 0, 0, 0, time.UTC)},
		{name: "bad period", period: "decade", wantErr: true},
		{name: "bad from", from: "yesterday-ish", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			label, begin, end, err := a.resolveRange(tt.period, tt.from, tt.to)
			if (err != nil) != tt.wantErr {
				t.Fatalf("resolveRange() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				return
			}
			if label != tt.label {
				t.Errorf("label = %q, want %q", label, tt.label)
			}
			if !begin.Equal(tt.begin) || !end.Equal(tt.end) {
				t.Errorf("range = [%v, %v), want [%v, %v)", begin, end, tt.begin, tt.end)
			}
		})
	}
}

func TestAppShowSkipsEventEndingAtMidnight(t *testing.T) {
	ctx := context.Background()
	midnight := time.Date(2024, 3, 4, 0, 0, 0, 0, time.UTC)
	a, out := newTestApp(t, t0.Add(5*time.Hour))

	lateStart := midnight.Add(-2 * time.Hour)
	a.PunchIn(ctx, &lateStart)
	a.PunchOut(ctx, &midnight)
	stop := t0.Add(time.Hour)
	a.PunchIn(ctx, &t0)
	a.PunchOut(ctx, &stop)
	out.Reset()

	label, begin, end, _ := a.resolveRange("today", "", "")
	if err := a.Show(ctx, label, begin, end); err != nil {
		t.Fatalf("Show() error = %v", err)
	}

	got := out.String()
	if strings.Contains(got, "22:00:00") {
		t.Errorf("Show() listed yesterday's event:\n%s", got)
	}
	if !strings.Contains(got, "09:00:00") {
		t.Errorf("Show() output missing today's event:\n%s", got)
	}
}
