package terminologyRepository

const (
	queryGetMappingsByNamasteCode = `
		SELECT namaste_code, namaste_display, icd11_code, icd11_display,
			equivalence, notes, created_at, updated_at
		FROM code_mappings
		WHERE namaste_code = :code
		ORDER BY icd11_code
	`

	queryGetMappingsByICD11Code = `
		SELECT namaste_code, namaste_display, icd11_code, icd11_display,
			equivalence, notes, created_at, updated_at
		FROM code_mappings
		WHERE icd11_code = :code
		ORDER BY namaste_code
	`

	querySearchMappings = `
		SELECT namaste_code, namaste_display, icd11_code, icd11_display,
			equivalence, notes, created_at, updated_at
		FROM code_mappings
		WHERE namaste_display ILIKE :query
			OR icd11_display ILIKE :query
			OR namaste_code ILIKE :query
			OR icd11_code ILIKE :query
		ORDER BY namaste_code
		LIMIT :limit
	`

	queryCountMappings = `
		SELECT COUNT(*) FROM code_mappings
	`

	queryCountMappingsByEquivalence = `
		SELECT equivalence, COUNT(*) AS count
		FROM code_mappings
		GROUP BY equivalence
		ORDER BY count DESC
	`
)
