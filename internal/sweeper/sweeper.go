package sweeper

import (
	"context"
)

// Sweeper is a long-running background task that performs periodic work
//
//go:generate mockgen -source=sweeper.go -destination=../mocks/sweeper.go -package=mocks -mock_names=Sweeper=MockSweeper
type Sweeper interface {
	// Start runs the main loop until the context is canceled or Stop is called
	Start(ctx context.Context) error

	// Stop signals the main loop and waits for the in-progress cycle to finish
	Stop(ctx context.Context) error

	// Name returns the sweeper's name for logging and identification
	Name() string
}
