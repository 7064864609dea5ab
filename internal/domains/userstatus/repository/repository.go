package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"

	"github.com/chris-catignani/hotel-tracker-sub001/infras/otel"
	"github.com/chris-catignani/hotel-tracker-sub001/infras/postgres"
	"github.com/chris-catignani/hotel-tracker-sub001/internal/domains/userstatus/model"
	gDto "github.com/chris-catignani/hotel-tracker-sub001/shared/dto"
	gRepo "github.com/chris-catignani/hotel-tracker-sub001/shared/repository"
)

type UserStatus interface {
	Insert(ctx context.Context, model model.UserStatus) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.UserStatus, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
	GetDetail(ctx context.Context, filter gDto.FilterGroup) (model.Detail, error)
	GetDetails(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup) ([]model.Detail, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.UserStatus]
	details gRepo.Repository[model.Detail]
}

func New(db *postgres.Connection, otel otel.Otel) UserStatus {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.UserStatus](model.EntityName, model.TableName, model.FieldID, db, otel),
		details:    gRepo.NewRepository[model.Detail](model.EntityName, model.TableName, model.FieldID, db, otel),
	}
}

func (repo *repositoryImpl) GetDetail(ctx context.Context, filter gDto.FilterGroup) (model.Detail, error) {
	return repo.details.Get(ctx, filter) //nolint:wrapcheck
}

func (repo *repositoryImpl) GetDetails(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup) ([]model.Detail, error) {
	return repo.details.GetAll(ctx, params, filter) //nolint:wrapcheck
}
