package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"fmt"

	"github.com/chris-catignani/hotel-tracker-sub001/infras/otel"
	"github.com/chris-catignani/hotel-tracker-sub001/infras/postgres"
	"github.com/chris-catignani/hotel-tracker-sub001/internal/domains/benefitvaluation/model"
	"github.com/chris-catignani/hotel-tracker-sub001/shared/constant"
	gDto "github.com/chris-catignani/hotel-tracker-sub001/shared/dto"
	"github.com/chris-catignani/hotel-tracker-sub001/shared/logger"
	gRepo "github.com/chris-catignani/hotel-tracker-sub001/shared/repository"
	"github.com/jmoiron/sqlx"
)

// upsertQuery targets the unique expression index over the scope and discriminator.
const upsertQuery = `INSERT INTO benefit_valuations
	(id, hotel_chain_id, is_eqn, cert_type, benefit_type, value, value_type, created_at, modified_at, created_by, modified_by)
VALUES
	(:id, :hotel_chain_id, :is_eqn, :cert_type, :benefit_type, :value, :value_type, :created_at, :modified_at, :created_by, :modified_by)
ON CONFLICT ((COALESCE(hotel_chain_id, '')), is_eqn, (COALESCE(cert_type, '')), (COALESCE(benefit_type, '')))
DO UPDATE SET
	value = EXCLUDED.value,
	value_type = EXCLUDED.value_type,
	modified_at = EXCLUDED.modified_at,
	modified_by = EXCLUDED.modified_by`

type BenefitValuation interface {
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.BenefitValuation, error)
	GetAllTx(ctx context.Context, sqltx *sqlx.Tx, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.BenefitValuation, error)
	UpsertTx(ctx context.Context, sqltx *sqlx.Tx, valuations []model.BenefitValuation) error
}

type repositoryImpl struct {
	gRepo.Repository[model.BenefitValuation]
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) BenefitValuation {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.BenefitValuation](model.EntityName, model.TableName, model.FieldID, db, otel),
		otel:       otel,
	}
}

// UpsertTx writes each valuation, replacing the value of an existing row with the
// same scope and discriminator. Existing row ids and creation metadata are kept.
func (repo *repositoryImpl) UpsertTx(ctx context.Context, sqltx *sqlx.Tx, valuations []model.BenefitValuation) error {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".benefit valuation.UpsertTx")
	defer scope.End()

	scope.SetAttribute(constant.OtelQueryAttributeKey, upsertQuery)

	for _, valuation := range valuations {
		if _, err := sqltx.NamedExecContext(ctx, upsertQuery, valuation); err != nil {
			logger.ErrorWithStack(err)
			scope.TraceError(err)

			return fmt.Errorf("failed to upsert benefit valuation: %w", err)
		}
	}

	return nil
}
