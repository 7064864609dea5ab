package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"

	"github.com/chris-catignani/hotel-tracker-sub001/infras/otel"
	"github.com/chris-catignani/hotel-tracker-sub001/infras/postgres"
	"github.com/chris-catignani/hotel-tracker-sub001/internal/domains/creditcard/model"
	gDto "github.com/chris-catignani/hotel-tracker-sub001/shared/dto"
	gRepo "github.com/chris-catignani/hotel-tracker-sub001/shared/repository"
)

type CreditCard interface {
	Insert(ctx context.Context, model model.CreditCard) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.CreditCard, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.CreditCard, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
	Delete(ctx context.Context, filter gDto.FilterGroup) error
}

type repositoryImpl struct {
	gRepo.Repository[model.CreditCard]
}

func New(db *postgres.Connection, otel otel.Otel) CreditCard {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.CreditCard](model.EntityName, model.TableName, model.FieldID, db, otel),
	}
}
