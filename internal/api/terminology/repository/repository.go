package terminologyRepository

import (
	"context"

	"github.com/jmoiron/sqlx"
	"github.com/sirupsen/logrus"

	"github.com/Abhijit-without-h/ayush/internal/entity"
)

type SQLExecutor interface {
	sqlx.ExtContext
	SelectContext(ctx context.Context, dest interface{}, query string, args ...interface{}) error
	QueryRowxContext(ctx context.Context, query string, args ...interface{}) *sqlx.Row
	Rebind(query string) string
}

func New(db *sqlx.DB, log *logrus.Logger) Repository {
	return &repository{
		DB:  db,
		log: log,
	}
}

type repository struct {
	DB  *sqlx.DB
	log *logrus.Logger
}

type Repository interface {
	NewClient(tx bool) (Client, error)
}

func (r *repository) NewClient(tx bool) (Client, error) {
	var sqlExecutor SQLExecutor
	var commitFunc, rollbackFunc func() error

	sqlExecutor = r.DB

	if tx {
		txx, err := r.DB.Beginx()
		if err != nil {
			return Client{}, err
		}

		sqlExecutor = txx
		commitFunc = txx.Commit
		rollbackFunc = txx.Rollback
	} else {
		commitFunc = func() error { return nil }
		rollbackFunc = func() error { return nil }
	}

	return Client{
		Mappings: &mappingRepository{q: sqlExecutor, log: r.log},
		Commit:   commitFunc,
		Rollback: rollbackFunc,
	}, nil
}

type EquivalenceCount struct {
	Equivalence string `db:"equivalence"`
	Count       int    `db:"count"`
}

type Client struct {
	Mappings interface {
		GetMappingsByNamasteCode(ctx context.Context, code string) ([]entity.CodeMapping, error)
		GetMappingsByICD11Code(ctx context.Context, code string) ([]entity.CodeMapping, error)
		SearchMappings(ctx context.Context, query string, limit int) ([]entity.CodeMapping, error)
		CountMappings(ctx context.Context) (int, error)
		CountMappingsByEquivalence(ctx context.Context) ([]EquivalenceCount, error)
	}

	Commit   func() error
	Rollback func() error
}

type mappingRepository struct {
	q   SQLExecutor
	log *logrus.Logger
}
