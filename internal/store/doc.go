// Package store loads and saves sheets. A sheet is always persisted as a
// whole document; there are no partial updates.
package store
