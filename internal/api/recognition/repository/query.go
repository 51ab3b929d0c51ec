package recognitionRepository

const (
	queryGetCandidateSetByContext = `
		SELECT context, phrases, is_active, created_at, updated_at
		FROM candidate_sets
		WHERE context = :context
	`

	queryGetAllCandidateSets = `
		SELECT context, phrases, is_active, created_at, updated_at
		FROM candidate_sets
		ORDER BY context
	`

	queryInsertCandidateSet = `
		INSERT INTO candidate_sets (context, phrases, is_active, created_at, updated_at)
		VALUES (:context, :phrases, :is_active, :created_at, :updated_at)
	`

	queryUpdateCandidateSet = `
		UPDATE candidate_sets
		SET phrases = :phrases,
			is_active = :is_active,
			updated_at = :updated_at
		WHERE context = :context
	`
)
