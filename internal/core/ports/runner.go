package ports

import "context"

// CommandRunner runs an external program to completion.
//
//go:generate mockgen -source=runner.go -destination=mocks/mock_runner.go -package=mocks
type CommandRunner interface {
	// Output runs name with args and returns what it wrote to stdout.
	// A non-zero exit is returned as an error carrying the exit code.
	Output(ctx context.Context, name string, args []string) ([]byte, error)
}
