package contracts

// StandardizationPolicy controls whether raw concepts are mapped onto
// standard concepts before integration. Passed explicitly through the
// pipeline instead of an ad hoc boolean.
type StandardizationPolicy string

const (
	// PolicyStandardize resolves every raw concept to a standard concept
	// where a mapping exists; unmapped concepts keep their raw name.
	PolicyStandardize StandardizationPolicy = "standardize"

	// PolicyRawConcepts keeps every raw concept as its own row key.
	PolicyRawConcepts StandardizationPolicy = "raw"
)

// Valid reports whether the policy is one of the known values
func (p StandardizationPolicy) Valid() bool {
	return p == PolicyStandardize || p == PolicyRawConcepts
}

// ReferenceStrategy selects which input statement anchors tier-2 ordering
// when a concept has no template position (see ordering engine).
type ReferenceStrategy string

const (
	// ReferenceMostInformationRich uses the statement with the most
	// non-abstract line items (default).
	ReferenceMostInformationRich ReferenceStrategy = "most_information_rich"

	// ReferenceMostRecent uses the newest filing's statement.
	ReferenceMostRecent ReferenceStrategy = "most_recent"
)

// Valid reports whether the strategy is one of the known values
func (r ReferenceStrategy) Valid() bool {
	return r == ReferenceMostInformationRich || r == ReferenceMostRecent
}
