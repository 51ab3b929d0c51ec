package patientRepository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/sirupsen/logrus"

	"github.com/Abhijit-without-h/ayush/internal/api/patient"
	"github.com/Abhijit-without-h/ayush/internal/entity"
	contextPkg "github.com/Abhijit-without-h/ayush/pkg/context"
)

type PatientDB struct {
	ID                   sql.NullString `db:"id"`
	FullName             sql.NullString `db:"full_name"`
	Diagnosis            sql.NullString `db:"diagnosis"`
	TraditionalDiagnosis sql.NullString `db:"traditional_diagnosis"`
	TreatmentType        sql.NullString `db:"treatment_type"`
	NamasteCode          sql.NullString `db:"namaste_code"`
	Status               sql.NullString `db:"status"`
	Progress             sql.NullInt64  `db:"progress"`
	LastVisit            time.Time      `db:"last_visit"`
	AvatarURL            sql.NullString `db:"avatar_url"`
	CreatedAt            time.Time      `db:"created_at"`
	UpdatedAt            time.Time      `db:"updated_at"`
}

func (r *patientRepository) GetAllPatients(ctx context.Context) ([]entity.Patient, error) {
	requestID := contextPkg.GetRequestID(ctx)
	var rows []PatientDB

	query := r.q.Rebind(queryGetAllPatients)
	if err := r.q.SelectContext(ctx, &rows, query); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetAllPatients execution err")
		return nil, err
	}

	patients := make([]entity.Patient, 0, len(rows))
	for _, row := range rows {
		patients = append(patients, r.makePatient(row))
	}

	return patients, nil
}

func (r *patientRepository) GetPatientByID(ctx context.Context, id string) (entity.Patient, error) {
	requestID := contextPkg.GetRequestID(ctx)
	var row PatientDB

	argsKV := map[string]interface{}{
		"id": id,
	}

	query, args, err := sqlx.Named(queryGetPatientByID, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetPatientByID named query preparation err")
		return entity.Patient{}, err
	}

	query = r.q.Rebind(query)

	if err := r.q.QueryRowxContext(ctx, query, args...).StructScan(&row); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return entity.Patient{}, patient.ErrPatientNotFound
		}
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetPatientByID execution err")
		return entity.Patient{}, err
	}

	return r.makePatient(row), nil
}

func (r *patientRepository) makePatient(row PatientDB) entity.Patient {
	return entity.Patient{
		ID:                   row.ID.String,
		FullName:             row.FullName.String,
		Diagnosis:            row.Diagnosis.String,
		TraditionalDiagnosis: row.TraditionalDiagnosis.String,
		TreatmentType:        entity.TreatmentType(row.TreatmentType.String),
		NamasteCode:          row.NamasteCode.String,
		Status:               entity.PatientStatus(row.Status.String),
		Progress:             int(row.Progress.Int64),
		LastVisit:            row.LastVisit,
		AvatarURL:            row.AvatarURL.String,
		CreatedAt:            row.CreatedAt,
		UpdatedAt:            row.UpdatedAt,
	}
}
