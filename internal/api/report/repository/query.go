package reportRepository

const (
	queryInsertArchive = `
		INSERT INTO report_archives (
			id, clinician_id, patient_ref, patient_name, report_type,
			filename, page_count, document_url, generated_at
		) VALUES (
			:id, :clinician_id, :patient_ref, :patient_name, :report_type,
			:filename, :page_count, :document_url, :generated_at
		)
	`

	queryGetArchivesByClinician = `
		SELECT id, clinician_id, patient_ref, patient_name, report_type,
			filename, page_count, document_url, generated_at
		FROM report_archives
		WHERE clinician_id = :clinician_id
		ORDER BY generated_at DESC
		LIMIT :limit OFFSET :offset
	`

	queryCountArchivesByClinician = `
		SELECT COUNT(*) FROM report_archives
		WHERE clinician_id = :clinician_id
	`
)
