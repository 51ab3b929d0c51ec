package reportRepository

import (
	"context"
	"database/sql"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/sirupsen/logrus"

	"github.com/Abhijit-without-h/ayush/internal/entity"
	contextPkg "github.com/Abhijit-without-h/ayush/pkg/context"
)

type ArchiveDB struct {
	ID          string         `db:"id"`
	ClinicianID string         `db:"clinician_id"`
	PatientRef  sql.NullString `db:"patient_ref"`
	PatientName sql.NullString `db:"patient_name"`
	ReportType  string         `db:"report_type"`
	Filename    string         `db:"filename"`
	PageCount   int            `db:"page_count"`
	DocumentURL string         `db:"document_url"`
	GeneratedAt time.Time      `db:"generated_at"`
}

func (r *archiveRepository) InsertArchive(ctx context.Context, archive entity.ReportArchive) error {
	requestID := contextPkg.GetRequestID(ctx)

	argsKV := map[string]interface{}{
		"id":           archive.ID,
		"clinician_id": archive.ClinicianID,
		"patient_ref":  nullString(archive.PatientRef),
		"patient_name": nullString(archive.PatientName),
		"report_type":  string(archive.ReportType),
		"filename":     archive.Filename,
		"page_count":   archive.PageCount,
		"document_url": archive.DocumentURL,
		"generated_at": archive.GeneratedAt,
	}

	query, args, err := sqlx.Named(queryInsertArchive, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("InsertArchive named query preparation err")
		return err
	}

	query = r.q.Rebind(query)

	if _, err := r.q.ExecContext(ctx, query, args...); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("InsertArchive execution err")
		return err
	}

	return nil
}

func (r *archiveRepository) GetArchivesByClinician(ctx context.Context, clinicianID string, limit, offset int) ([]entity.ReportArchive, error) {
	requestID := contextPkg.GetRequestID(ctx)
	var rows []ArchiveDB

	argsKV := map[string]interface{}{
		"clinician_id": clinicianID,
		"limit":        limit,
		"offset":       offset,
	}

	query, args, err := sqlx.Named(queryGetArchivesByClinician, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetArchivesByClinician named query preparation err")
		return nil, err
	}

	query = r.q.Rebind(query)

	if err := r.q.SelectContext(ctx, &rows, query, args...); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetArchivesByClinician execution err")
		return nil, err
	}

	archives := make([]entity.ReportArchive, 0, len(rows))
	for _, row := range rows {
		archives = append(archives, r.makeArchive(row))
	}

	return archives, nil
}

func (r *archiveRepository) CountArchivesByClinician(ctx context.Context, clinicianID string) (int, error) {
	requestID := contextPkg.GetRequestID(ctx)

	argsKV := map[string]interface{}{
		"clinician_id": clinicianID,
	}

	query, args, err := sqlx.Named(queryCountArchivesByClinician, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("CountArchivesByClinician named query preparation err")
		return 0, err
	}

	query = r.q.Rebind(query)

	var count int
	if err := r.q.QueryRowxContext(ctx, query, args...).Scan(&count); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("CountArchivesByClinician execution err")
		return 0, err
	}

	return count, nil
}

func (r *archiveRepository) makeArchive(row ArchiveDB) entity.ReportArchive {
	return entity.ReportArchive{
		ID:          row.ID,
		ClinicianID: row.ClinicianID,
		PatientRef:  row.PatientRef.String,
		PatientName: row.PatientName.String,
		ReportType:  entity.ReportType(row.ReportType),
		Filename:    row.Filename,
		PageCount:   row.PageCount,
		DocumentURL: row.DocumentURL,
		GeneratedAt: row.GeneratedAt,
	}
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
