package recognitionRepository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/sirupsen/logrus"

	"github.com/Abhijit-without-h/ayush/internal/api/recognition"
	"github.com/Abhijit-without-h/ayush/internal/entity"
	contextPkg "github.com/Abhijit-without-h/ayush/pkg/context"
)

type CandidateSetDB struct {
	Context   string         `db:"context"`
	Phrases   pq.StringArray `db:"phrases"`
	IsActive  bool           `db:"is_active"`
	CreatedAt time.Time      `db:"created_at"`
	UpdatedAt time.Time      `db:"updated_at"`
}

func (r *candidateSetRepository) GetCandidateSetByContext(ctx context.Context, setContext string) (entity.CandidateSet, error) {
	requestID := contextPkg.GetRequestID(ctx)
	var row CandidateSetDB

	argsKV := map[string]interface{}{
		"context": setContext,
	}

	query, args, err := sqlx.Named(queryGetCandidateSetByContext, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetCandidateSetByContext named query preparation err")
		return entity.CandidateSet{}, err
	}

	query = r.q.Rebind(query)

	if err := r.q.QueryRowxContext(ctx, query, args...).StructScan(&row); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return entity.CandidateSet{}, recognition.ErrCandidateSetNotFound
		}
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetCandidateSetByContext execution err")
		return entity.CandidateSet{}, err
	}

	return r.makeCandidateSet(row), nil
}

func (r *candidateSetRepository) GetAllCandidateSets(ctx context.Context) ([]entity.CandidateSet, error) {
	requestID := contextPkg.GetRequestID(ctx)
	var rows []CandidateSetDB

	query := r.q.Rebind(queryGetAllCandidateSets)
	if err := r.q.SelectContext(ctx, &rows, query); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetAllCandidateSets execution err")
		return nil, err
	}

	sets := make([]entity.CandidateSet, 0, len(rows))
	for _, row := range rows {
		sets = append(sets, r.makeCandidateSet(row))
	}

	return sets, nil
}

func (r *candidateSetRepository) InsertCandidateSet(ctx context.Context, set entity.CandidateSet) error {
	requestID := contextPkg.GetRequestID(ctx)

	argsKV := map[string]interface{}{
		"context":    set.Context,
		"phrases":    pq.StringArray(set.Phrases),
		"is_active":  set.IsActive,
		"created_at": set.CreatedAt,
		"updated_at": set.UpdatedAt,
	}

	query, args, err := sqlx.Named(queryInsertCandidateSet, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("InsertCandidateSet named query preparation err")
		return err
	}

	query = r.q.Rebind(query)

	if _, err := r.q.ExecContext(ctx, query, args...); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("InsertCandidateSet execution err")
		return err
	}

	return nil
}

func (r *candidateSetRepository) UpdateCandidateSet(ctx context.Context, set entity.CandidateSet) error {
	requestID := contextPkg.GetRequestID(ctx)

	argsKV := map[string]interface{}{
		"context":    set.Context,
		"phrases":    pq.StringArray(set.Phrases),
		"is_active":  set.IsActive,
		"updated_at": set.UpdatedAt,
	}

	query, args, err := sqlx.Named(queryUpdateCandidateSet, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("UpdateCandidateSet named query preparation err")
		return err
	}

	query = r.q.Rebind(query)

	result, err := r.q.ExecContext(ctx, query, args...)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("UpdateCandidateSet execution err")
		return err
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return recognition.ErrCandidateSetNotFound
	}

	return nil
}

func (r *candidateSetRepository) makeCandidateSet(row CandidateSetDB) entity.CandidateSet {
	return entity.CandidateSet{
		Context:   row.Context,
		Phrases:   []string(row.Phrases),
		IsActive:  row.IsActive,
		CreatedAt: row.CreatedAt,
		UpdatedAt: row.UpdatedAt,
	}
}
