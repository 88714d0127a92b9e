// Package domain defines the public ports for the freshness service
package domain

import (
	"context"

	"complaints/internal/core/resultstate"
)

// WorkerPort runs the long-lived poll loop
type WorkerPort interface {
	Run(ctx context.Context) error
}

// PollerPort reads the index status once and publishes it when it changed
type PollerPort interface {
	RunOnce(ctx context.Context) (resultstate.Freshness, error)
}

// ReaderPort returns the flags last published
type ReaderPort interface {
	Current() resultstate.Freshness
}
