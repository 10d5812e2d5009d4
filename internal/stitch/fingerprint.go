package stitch

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"

	"github.com/wonny/finstitch/internal/contracts"
)

// fingerprintInput is the structural cache key: everything that can change
// the stitched result participates, nothing else does.
type fingerprintInput struct {
	StatementType  contracts.StatementType         `json:"statement_type"`
	MaxPeriods     int                             `json:"max_periods"`
	Policy         contracts.StandardizationPolicy `json:"policy"`
	Strategy       contracts.ReferenceStrategy     `json:"strategy"`
	MappingVersion string                          `json:"mapping_version"`
	SourcesDigest  string                          `json:"sources_digest"`
}

// Fingerprint computes the deterministic identity of one stitch invocation.
// encoding/json writes map keys in sorted order, so the digest is stable
// across runs for identical inputs.
func Fingerprint(
	sources []contracts.SourceStatement,
	statementType contracts.StatementType,
	maxPeriods int,
	policy contracts.StandardizationPolicy,
	strategy contracts.ReferenceStrategy,
	mappingVersion string,
) (string, error) {
	sourcesJSON, err := json.Marshal(sources)
	if err != nil {
		return "", fmt.Errorf("failed to marshal sources for fingerprint: %w", err)
	}
	sourcesSum := sha256.Sum256(sourcesJSON)

	input := fingerprintInput{
		StatementType:  statementType,
		MaxPeriods:     maxPeriods,
		Policy:         policy,
		Strategy:       strategy,
		MappingVersion: mappingVersion,
		SourcesDigest:  hex.EncodeToString(sourcesSum[:]),
	}

	inputJSON, err := json.Marshal(input)
	if err != nil {
		return "", fmt.Errorf("failed to marshal fingerprint input: %w", err)
	}
	sum := sha256.Sum256(inputJSON)
	return hex.EncodeToString(sum[:]), nil
}
