package patientRepository

const (
	queryGetAllPatients = `
		SELECT
			id, full_name, diagnosis, traditional_diagnosis, treatment_type,
			namaste_code, status, progress, last_visit, avatar_url,
			created_at, updated_at
		FROM patients
		ORDER BY id
	`

	queryGetPatientByID = `
		SELECT
			id, full_name, diagnosis, traditional_diagnosis, treatment_type,
			namaste_code, status, progress, last_visit, avatar_url,
			created_at, updated_at
		FROM patients
		WHERE id = :id
	`
)
