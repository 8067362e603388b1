package ports

import "context"

// ResultWriter persists a finished report. Failures carry
// errors.CodeSinkWriteFailed.
type ResultWriter interface {
	Write(ctx context.Context, path, content string) error
}
