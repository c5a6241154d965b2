package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"go.uber.org/zap"

	"punchclock/internal/clock"
	"punchclock/internal/period"
	"punchclock/internal/sheet"
	"punchclock/internal/store"
)

type App struct {
	store  store.Store
	clock  clock.Clock
	logger *zap.Logger
	out    io.Writer
}

func NewApp(st store.Store, c clock.Clock, logger *zap.Logger, out io.Writer) *App {
	return &App{
		store:  st,
		clock:  c,
		logger: logger,
		out:    out,
	}
}

// loads the sheet, a missing sheet file counts as an empty sheet
func (a *App) load(ctx context.Context) (*sheet.Sheet, error) {
	s, err := a.store.Load(ctx)
	if errors.Is(err, store.ErrNotFound) {
		a.logger.Debug("no sheet yet, starting empty", zap.String("path", a.store.Path()))
		return sheet.New(sheet.WithClock(a.clock)), nil
	}
	if err != nil {
		return nil, err
	}

	s.SetClock(a.clock)
	return s, nil
}

// PunchIn starts tracking at the given time, or now when at is nil.
func (a *App) PunchIn(ctx context.Context, at *time.Time) error {
	s, err := a.load(ctx)
	if err != nil {
		return err
	}

	var in time.Time
	if at == nil {
		in, err = s.PunchIn()
	} else {
		in, err = s.PunchInAt(*at)
	}
	if err != nil {
		return err
	}

	if err := a.store.Save(ctx, s); err != nil {
		return err
	}

	a.logger.Debug("punched in", zap.Time("at", in))
	fmt.Fprintf(a.out, "Punched in at %s\n", formatInstant(in))
	return nil
}

// PunchOut stops tracking at the given time, or now when at is nil.
func (a *App) PunchOut(ctx context.Context, at *time.Time) error {
	s, err := a.load(ctx)
	if err != nil {
		return err
	}

	var out time.Time
	if at == nil {
		out, err = s.PunchOut()
	} else {
		out, err = s.PunchOutAt(*at)
	}
	if err != nil {
		return err
	}

	if err := a.store.Save(ctx, s); err != nil {
		return err
	}

	a.logger.Debug("punched out", zap.Time("at", out))

	start := s.Events[len(s.Events)-1].Start
	fmt.Fprintf(a.out, "Punched out at %s (%s)\n", formatInstant(out), FormatDuration(out.Sub(start)))
	return nil
}

func (a *App) Status(ctx context.Context) error {
	s, err := a.load(ctx)
	if err != nil {
		return err
	}

	status := s.Status()
	switch status.State {
	case sheet.Empty:
		fmt.Fprintf(a.out, "Not punched in, %s\n", status)
	case sheet.PunchedIn:
		elapsed := a.clock.Now().Sub(status.Since)
		fmt.Fprintf(a.out, "Punched in since %s (%s)\n", formatInstant(status.Since), FormatDuration(elapsed))
	case sheet.PunchedOut:
		fmt.Fprintf(a.out, "Punched out since %s\n", formatInstant(status.Since))
	}
	return nil
}

// Count prints the tracked time between begin and end.
func (a *App) Count(ctx context.Context, label string, begin, end time.Time, inDecimal bool) error {
	s, err := a.load(ctx)
	if err != nil {
		return err
	}

	total := s.CountRange(begin, end)
	a.logger.Debug("counted range",
		zap.Time("begin", begin),
		zap.Time("end", end),
		zap.Duration("total", total))

	if inDecimal {
		fmt.Fprintf(a.out, "%s: %s\n", label, FormatDecimalHours(total))
	} else {
		fmt.Fprintf(a.out, "%s: %s\n", label, FormatDuration(total))
	}
	return nil
}

// Show prints a table of events overlapping begin and end, with the time
// each one contributes to the range.
func (a *App) Show(ctx context.Context, label string, begin, end time.Time) error {
	s, err := a.load(ctx)
	if err != nil {
		return err
	}

	now := a.clock.Now()
	events := s.EventsInRange(begin, end, now)
	if len(events) == 0 {
		fmt.Fprintf(a.out, "No time tracked for %s\n", label)
		return nil
	}

	fmt.Fprintf(a.out, "Sheet - %s\n", label)

	headers := []string{"Day", "Start", "End", "Duration"}

	var rows [][]string
	totalDuration := time.Duration(0)

	var lastDay string
	for _, event := range events {
		day := event.Start.Format("Jan 02, 2006")
		startTime := event.Start.Format("15:04:05")
		endTime := "running"
		if event.Stop != nil {
			endTime = event.Stop.Format("15:04:05")
		}
		duration := event.Overlap(begin, end, now)
		totalDuration += duration

		if day == lastDay {
			day = ""
		} else {
			lastDay = day
		}

		rows = append(rows, []string{day, startTime, endTime, FormatDuration(duration)})
	}

	footers := []string{"", "", "Total:", FormatDuration(totalDuration)}
	PrintTable(a.out, headers, rows, footers)

	return nil
}

// Path prints where the sheet is stored.
func (a *App) Path() {
	fmt.Fprintln(a.out, a.store.Path())
}

// resolveRange turns a period name or explicit bounds into an instant range
// and a label describing it. Explicit bounds take precedence; a missing from
// means the beginning of the log and a missing to means now.
func (a *App) resolveRange(name, from, to string) (string, time.Time, time.Time, error) {
	now := a.clock.Now()

	if from != "" || to != "" {
		begin, end := time.Time{}, now
		if from != "" {
			t, err := ParseInstant(from, now)
			if err != nil {
				return "", time.Time{}, time.Time{}, err
			}
			begin = t
		}
		if to != "" {
			t, err := ParseInstant(to, now)
			if err != nil {
				return "", time.Time{}, time.Time{}, err
			}
			end = t
		}
		label := fmt.Sprintf("%s to %s", orDefault(from, "start"), orDefault(to, "now"))
		return label, begin, end, nil
	}

	p := period.Today
	if name != "" {
		parsed, err := period.Parse(name)
		if err != nil {
			return "", time.Time{}, time.Time{}, err
		}
		p = parsed
	}

	begin, end := p.Range(now)
	return string(p), begin, end, nil
}

func orDefault(s, fallback string) string {
	if s == "" {
		return fallback
	}
	return s
}
