package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"

	"github.com/chris-catignani/hotel-tracker-sub001/infras/otel"
	"github.com/chris-catignani/hotel-tracker-sub001/infras/postgres"
	"github.com/chris-catignani/hotel-tracker-sub001/internal/domains/booking/model"
	"github.com/chris-catignani/hotel-tracker-sub001/shared/constant"
	gDto "github.com/chris-catignani/hotel-tracker-sub001/shared/dto"
	gRepo "github.com/chris-catignani/hotel-tracker-sub001/shared/repository"
	"github.com/jmoiron/sqlx"
)

type Booking interface {
	Insert(ctx context.Context, model model.Booking) error
	InsertTx(ctx context.Context, sqltx *sqlx.Tx, model model.Booking) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Booking, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Booking, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
	UpdateTx(ctx context.Context, sqltx *sqlx.Tx, req map[string]any, filter gDto.FilterGroup) error
	Delete(ctx context.Context, filter gDto.FilterGroup) error
	GetDetail(ctx context.Context, filter gDto.FilterGroup) (model.Detail, error)
	GetDetailTx(ctx context.Context, sqltx *sqlx.Tx, filter gDto.FilterGroup) (model.Detail, error)
	GetDetails(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup) ([]model.Detail, error)
}

type Certificate interface {
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Certificate, error)
	InsertBulkTx(ctx context.Context, sqltx *sqlx.Tx, models []model.Certificate) error
	DeleteTx(ctx context.Context, sqltx *sqlx.Tx, filter gDto.FilterGroup) error
}

type BookingPromotion interface {
	Insert(ctx context.Context, model model.BookingPromotion) error
	InsertBulkTx(ctx context.Context, sqltx *sqlx.Tx, models []model.BookingPromotion) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.BookingPromotion, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.BookingPromotion, error)
	GetAllTx(ctx context.Context, sqltx *sqlx.Tx, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.BookingPromotion, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
	UpdateTx(ctx context.Context, sqltx *sqlx.Tx, req map[string]any, filter gDto.FilterGroup) error
	Delete(ctx context.Context, filter gDto.FilterGroup) error
	DeleteTx(ctx context.Context, sqltx *sqlx.Tx, filter gDto.FilterGroup) error
	GetApplied(ctx context.Context, filter gDto.FilterGroup) ([]model.AppliedPromotion, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.Booking]
	details gRepo.Repository[model.Detail]
	otel    otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Booking {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Booking](model.EntityName, model.TableName, model.FieldID, db, otel),
		details:    gRepo.NewRepository[model.Detail](model.EntityName, model.TableName, model.FieldID, db, otel),
		otel:       otel,
	}
}

func (repo *repositoryImpl) GetDetail(ctx context.Context, filter gDto.FilterGroup) (model.Detail, error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".booking.GetDetail")
	defer scope.End()

	return repo.details.Get(ctx, filter) //nolint:wrapcheck
}

func (repo *repositoryImpl) GetDetailTx(ctx context.Context, sqltx *sqlx.Tx, filter gDto.FilterGroup) (model.Detail, error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".booking.GetDetailTx")
	defer scope.End()

	return repo.details.GetTx(ctx, sqltx, filter) //nolint:wrapcheck
}

func (repo *repositoryImpl) GetDetails(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup) ([]model.Detail, error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".booking.GetDetails")
	defer scope.End()

	return repo.details.GetAll(ctx, params, filter) //nolint:wrapcheck
}

type certificateImpl struct {
	gRepo.Repository[model.Certificate]
}

func NewCertificate(db *postgres.Connection, otel otel.Otel) Certificate {
	return &certificateImpl{
		Repository: gRepo.NewRepository[model.Certificate](model.CertificateEntityName, model.CertificateTableName, model.FieldID, db, otel),
	}
}

type bookingPromotionImpl struct {
	gRepo.Repository[model.BookingPromotion]
	applied gRepo.Repository[model.AppliedPromotion]
}

func NewBookingPromotion(db *postgres.Connection, otel otel.Otel) BookingPromotion {
	return &bookingPromotionImpl{
		Repository: gRepo.NewRepository[model.BookingPromotion](model.BookingPromotionEntityName, model.BookingPromotionTableName, model.FieldID, db, otel),
		applied:    gRepo.NewRepository[model.AppliedPromotion](model.BookingPromotionEntityName, model.BookingPromotionTableName, model.FieldID, db, otel),
	}
}

func (repo *bookingPromotionImpl) GetApplied(ctx context.Context, filter gDto.FilterGroup) ([]model.AppliedPromotion, error) {
	return repo.applied.GetAll(ctx, gDto.QueryParams{}, filter) //nolint:wrapcheck
}
