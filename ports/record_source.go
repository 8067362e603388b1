package ports

import (
	"context"

	"countrystats/domain/dataset"
)

// RecordSource loads the input table for a report run.
// A missing input reports errors.CodeNotFound; an input that exists but
// cannot be decoded reports errors.CodeSourceUnreadable. A header-only
// input yields an empty dataset and no error.
type RecordSource interface {
	ReadDataset(ctx context.Context) (*dataset.Dataset, error)
}
