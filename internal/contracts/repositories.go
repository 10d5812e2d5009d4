package contracts

import "context"

// StitchedRepository persists stitched statements keyed by fingerprint.
// Persistence lives outside the pipeline core; the Stitcher never calls it.
type StitchedRepository interface {
	Save(ctx context.Context, stitched *StitchedStatement) error
	GetByFingerprint(ctx context.Context, fingerprint string) (*StitchedStatement, error)
	ListByType(ctx context.Context, statementType StatementType, limit int) ([]*StitchedStatement, error)
}
