package storage

import (
	"context"

	"github.com/claude/wgerfetch/internal/models"
)

// Sink receives the complete converted catalog of one run. Every sink replaces
// what a previous run wrote; nothing is merged.
type Sink interface {
	Name() string
	Write(ctx context.Context, runID string, exercises []models.Exercise) error
}
