package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/wonny/finstitch/internal/contracts"
)

// ErrNotFound is returned when no stitched result exists for a fingerprint
var ErrNotFound = errors.New("stitched statement not found")

// StitchedRepository implements contracts.StitchedRepository on PostgreSQL.
// Stitched results are immutable, so rows are insert-once by fingerprint.
// ⭐ SSOT: 스티칭 결과 저장은 여기서만
type StitchedRepository struct {
	pool *pgxpool.Pool
}

// NewStitchedRepository creates a new stitched-result repository
func NewStitchedRepository(pool *pgxpool.Pool) *StitchedRepository {
	return &StitchedRepository{pool: pool}
}

// Save stores a stitched statement keyed by fingerprint. Saving the same
// fingerprint twice is a no-op: identical inputs produce identical results.
func (r *StitchedRepository) Save(ctx context.Context, stitched *contracts.StitchedStatement) error {
	payload, err := json.Marshal(stitched)
	if err != nil {
		return fmt.Errorf("failed to marshal stitched statement: %w", err)
	}

	query := `
		INSERT INTO stitch.results (fingerprint, statement_type, period_count, payload, created_at)
		VALUES ($1, $2, $3, $4, NOW())
		ON CONFLICT (fingerprint) DO NOTHING
	`

	_, err = r.pool.Exec(ctx, query,
		stitched.Fingerprint,
		string(stitched.StatementType),
		len(stitched.Periods),
		payload,
	)
	if err != nil {
		return fmt.Errorf("failed to save stitched statement: %w", err)
	}
	return nil
}

// GetByFingerprint loads one stitched statement by its fingerprint
func (r *StitchedRepository) GetByFingerprint(ctx context.Context, fingerprint string) (*contracts.StitchedStatement, error) {
	query := `
		SELECT payload
		FROM stitch.results
		WHERE fingerprint = $1
	`

	var payload []byte
	err := r.pool.QueryRow(ctx, query, fingerprint).Scan(&payload)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to load stitched statement: %w", err)
	}

	var stitched contracts.StitchedStatement
	if err := json.Unmarshal(payload, &stitched); err != nil {
		return nil, fmt.Errorf("failed to unmarshal stitched statement: %w", err)
	}
	return &stitched, nil
}

// ListByType returns the most recently saved results for a statement type
func (r *StitchedRepository) ListByType(ctx context.Context, statementType contracts.StatementType, limit int) ([]*contracts.StitchedStatement, error) {
	if limit <= 0 {
		limit = 20
	}

	query := `
		SELECT payload
		FROM stitch.results
		WHERE statement_type = $1
		ORDER BY created_at DESC
		LIMIT $2
	`

	rows, err := r.pool.Query(ctx, query, string(statementType), limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list stitched statements: %w", err)
	}
	defer rows.Close()

	var out []*contracts.StitchedStatement
	for rows.Next() {
		var payload []byte
		if err := rows.Scan(&payload); err != nil {
			return nil, fmt.Errorf("failed to scan stitched statement: %w", err)
		}
		var stitched contracts.StitchedStatement
		if err := json.Unmarshal(payload, &stitched); err != nil {
			return nil, fmt.Errorf("failed to unmarshal stitched statement: %w", err)
		}
		out = append(out, &stitched)
	}
	return out, rows.Err()
}
