package terminologyRepository

import (
	"context"
	"database/sql"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/sirupsen/logrus"

	"github.com/Abhijit-without-h/ayush/internal/entity"
	contextPkg "github.com/Abhijit-without-h/ayush/pkg/context"
)

type MappingDB struct {
	NamasteCode    string         `db:"namaste_code"`
	NamasteDisplay string         `db:"namaste_display"`
	ICD11Code      string         `db:"icd11_code"`
	ICD11Display   string         `db:"icd11_display"`
	Equivalence    string         `db:"equivalence"`
	Notes          sql.NullString `db:"notes"`
	CreatedAt      time.Time      `db:"created_at"`
	UpdatedAt      time.Time      `db:"updated_at"`
}

func (r *mappingRepository) selectMappings(ctx context.Context, rawQuery string, argsKV map[string]interface{}, operation string) ([]entity.CodeMapping, error) {
	requestID := contextPkg.GetRequestID(ctx)
	var rows []MappingDB

	query, args, err := sqlx.Named(rawQuery, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error(operation + " named query preparation err")
		return nil, err
	}

	query = r.q.Rebind(query)

	if err := r.q.SelectContext(ctx, &rows, query, args...); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error(operation + " execution err")
		return nil, err
	}

	mappings := make([]entity.CodeMapping, 0, len(rows))
	for _, row := range rows {
		mappings = append(mappings, r.makeMapping(row))
	}

	return mappings, nil
}

func (r *mappingRepository) GetMappingsByNamasteCode(ctx context.Context, code string) ([]entity.CodeMapping, error) {
	return r.selectMappings(ctx, queryGetMappingsByNamasteCode,
		map[string]interface{}{"code": code}, "GetMappingsByNamasteCode")
}

func (r *mappingRepository) GetMappingsByICD11Code(ctx context.Context, code string) ([]entity.CodeMapping, error) {
	return r.selectMappings(ctx, queryGetMappingsByICD11Code,
		map[string]interface{}{"code": code}, "GetMappingsByICD11Code")
}

func (r *mappingRepository) SearchMappings(ctx context.Context, query string, limit int) ([]entity.CodeMapping, error) {
	return r.selectMappings(ctx, querySearchMappings, map[string]interface{}{
		"query": "%" + query + "%",
		"limit": limit,
	}, "SearchMappings")
}

func (r *mappingRepository) CountMappings(ctx context.Context) (int, error) {
	requestID := contextPkg.GetRequestID(ctx)

	var count int
	query := r.q.Rebind(queryCountMappings)
	if err := r.q.QueryRowxContext(ctx, query).Scan(&count); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("CountMappings execution err")
		return 0, err
	}

	return count, nil
}

func (r *mappingRepository) CountMappingsByEquivalence(ctx context.Context) ([]EquivalenceCount, error) {
	requestID := contextPkg.GetRequestID(ctx)

	var counts []EquivalenceCount
	query := r.q.Rebind(queryCountMappingsByEquivalence)
	if err := r.q.SelectContext(ctx, &counts, query); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("CountMappingsByEquivalence execution err")
		return nil, err
	}

	return counts, nil
}

func (r *mappingRepository) makeMapping(row MappingDB) entity.CodeMapping {
	return entity.CodeMapping{
		NamasteCode:    row.NamasteCode,
		NamasteDisplay: row.NamasteDisplay,
		NamasteSystem:  entity.SystemNamaste,
		ICD11Code:      row.ICD11Code,
		ICD11Display:   row.ICD11Display,
		Equivalence:    entity.Equivalence(row.Equivalence),
		Notes:          row.Notes.String,
		CreatedAt:      row.CreatedAt,
		UpdatedAt:      row.UpdatedAt,
	}
}
