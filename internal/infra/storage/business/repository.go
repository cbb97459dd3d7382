package business

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-ProfileService/internal/domain"
	"github.com/m04kA/SMC-ProfileService/pkg/dbmetrics"
	"github.com/m04kA/SMC-ProfileService/pkg/psqlbuilder"
)

const tableBusinesses = "businesses"

// Repository репозиторий профилей бизнеса.
// Профиль хранится одним JSONB-документом (вместе со страницами и блоками),
// поэтому сохранение после правки блока - одна запись.
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetByID получает профиль бизнеса
func (r *Repository) GetByID(ctx context.Context, id string) (*domain.Business, error) {
	query, args, err := psqlbuilder.Select("profile").
		From(tableBusinesses).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	return r.scanProfile(ctx, id, query, args)
}

// GetByIDForUpdate получает профиль с блокировкой строки до конца транзакции.
// Должен вызываться внутри транзакции (txmanager), иначе блокировка снимается сразу.
func (r *Repository) GetByIDForUpdate(ctx context.Context, id string) (*domain.Business, error) {
	query, args, err := psqlbuilder.Select("profile").
		From(tableBusinesses).
		Where(squirrel.Eq{"id": id}).
		Suffix("FOR UPDATE").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByIDForUpdate - build select query: %v", ErrBuildQuery, err)
	}

	return r.scanProfile(ctx, id, query, args)
}

// Update сохраняет профиль целиком
func (r *Repository) Update(ctx context.Context, business *domain.Business) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	profile, err := json.Marshal(business)
	if err != nil {
		return fmt.Errorf("%w: Update - id=%s: %v", ErrEncodeProfile, business.ID, err)
	}

	query, args, err := psqlbuilder.Update(tableBusinesses).
		Set("profile", string(profile)).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": business.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: Update - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Update - execute update: %v", ErrExecQuery, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Update - rows affected: %v", ErrExecQuery, err)
	}
	if affected == 0 {
		return ErrBusinessNotFound
	}

	return nil
}

func (r *Repository) scanProfile(ctx context.Context, id, query string, args []interface{}) (*domain.Business, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	var profile []byte
	err := executor.QueryRowContext(ctx, query, args...).Scan(&profile)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrBusinessNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: scan profile id=%s: %v", ErrScanRow, id, err)
	}

	var business domain.Business
	if err := json.Unmarshal(profile, &business); err != nil {
		return nil, fmt.Errorf("%w: id=%s: %v", ErrDecodeProfile, id, err)
	}
	// id строки - источник истины
	business.ID = id

	return &business, nil
}
