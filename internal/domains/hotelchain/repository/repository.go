package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"

	"github.com/chris-catignani/hotel-tracker-sub001/infras/otel"
	"github.com/chris-catignani/hotel-tracker-sub001/infras/postgres"
	"github.com/chris-catignani/hotel-tracker-sub001/internal/domains/hotelchain/model"
	gDto "github.com/chris-catignani/hotel-tracker-sub001/shared/dto"
	gRepo "github.com/chris-catignani/hotel-tracker-sub001/shared/repository"
)

type HotelChain interface {
	Insert(ctx context.Context, model model.HotelChain) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.HotelChain, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.HotelChain, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
	Delete(ctx context.Context, filter gDto.FilterGroup) error
}

type SubBrand interface {
	Insert(ctx context.Context, model model.SubBrand) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.SubBrand, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.SubBrand, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
	Delete(ctx context.Context, filter gDto.FilterGroup) error
}

type EliteStatus interface {
	Insert(ctx context.Context, model model.EliteStatus) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.EliteStatus, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.EliteStatus, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
	Delete(ctx context.Context, filter gDto.FilterGroup) error
}

type hotelChainImpl struct {
	gRepo.Repository[model.HotelChain]
}

type subBrandImpl struct {
	gRepo.Repository[model.SubBrand]
}

type eliteStatusImpl struct {
	gRepo.Repository[model.EliteStatus]
}

func New(db *postgres.Connection, otel otel.Otel) HotelChain {
	return &hotelChainImpl{
		Repository: gRepo.NewRepository[model.HotelChain](model.EntityName, model.TableName, model.FieldID, db, otel),
	}
}

func NewSubBrand(db *postgres.Connection, otel otel.Otel) SubBrand {
	return &subBrandImpl{
		Repository: gRepo.NewRepository[model.SubBrand](model.SubBrandEntityName, model.SubBrandTableName, model.FieldID, db, otel),
	}
}

func NewEliteStatus(db *postgres.Connection, otel otel.Otel) EliteStatus {
	return &eliteStatusImpl{
		Repository: gRepo.NewRepository[model.EliteStatus](model.EliteStatusEntityName, model.EliteStatusTableName, model.FieldID, db, otel),
	}
}
