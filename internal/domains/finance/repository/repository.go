package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"fmt"

	"agenda/infras/otel"
	"agenda/infras/postgres"
	"agenda/internal/domains/finance/model"
	"agenda/shared/constant"
	gDto "agenda/shared/dto"
	"agenda/shared/logger"
	gRepo "agenda/shared/repository"
)

type Finance interface {
	Insert(ctx context.Context, model model.FinanceEntry) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.FinanceEntry, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.FinanceEntry, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
	Delete(ctx context.Context, filter gDto.FilterGroup) error
	Summarize(ctx context.Context, month string) (model.MonthlySummary, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.FinanceEntry]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Finance {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.FinanceEntry](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}

// Summarize totals the ledger of one month. month is a "YYYY-MM" string,
// matched against the civil date column.
func (repo *repositoryImpl) Summarize(ctx context.Context, month string) (model.MonthlySummary, error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, fmt.Sprintf("%s.%s.Summarize", constant.OtelRepositoryScopeName, model.EntityName))
	defer scope.End()

	query := fmt.Sprintf(`SELECT
		COALESCE(SUM(CASE WHEN %s = '%s' THEN %s ELSE 0 END), 0) AS income,
		COALESCE(SUM(CASE WHEN %s = '%s' THEN %s ELSE 0 END), 0) AS expense,
		COUNT(%s) AS entries
	FROM %s WHERE %s LIKE :month`,
		model.FieldType, model.TypeIncome, model.FieldAmount,
		model.FieldType, model.TypeExpense, model.FieldAmount,
		model.FieldID, model.TableName, model.FieldDate,
	)

	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	var summary model.MonthlySummary

	prepare, err := repo.db.Read.PrepareNamedContext(ctx, query)
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return summary, fmt.Errorf("failed to prepare statement (%s): %w", model.EntityName, err)
	}
	defer prepare.Close()

	args := map[string]any{"month": month + "-%"}

	err = prepare.GetContext(ctx, &summary, args)
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return summary, fmt.Errorf("failed to summarize ledger (%s): %w", model.EntityName, err)
	}

	return summary, nil
}
