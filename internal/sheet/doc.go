// Package sheet holds the punch log: an append-only sequence of events whose
// tail decides whether time is currently being tracked, plus the range query
// that folds the log into a tracked duration.
package sheet
