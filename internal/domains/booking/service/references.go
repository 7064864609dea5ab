package service

import (
	"context"
	"fmt"

	"github.com/chris-catignani/hotel-tracker-sub001/internal/domains/booking/model/dto"
	cardModel "github.com/chris-catignani/hotel-tracker-sub001/internal/domains/creditcard/model"
	chainModel "github.com/chris-catignani/hotel-tracker-sub001/internal/domains/hotelchain/model"
	agencyModel "github.com/chris-catignani/hotel-tracker-sub001/internal/domains/otaagency/model"
	portalModel "github.com/chris-catignani/hotel-tracker-sub001/internal/domains/shoppingportal/model"
	"github.com/chris-catignani/hotel-tracker-sub001/shared"
	"github.com/chris-catignani/hotel-tracker-sub001/shared/constant"
	gDto "github.com/chris-catignani/hotel-tracker-sub001/shared/dto"
	"github.com/chris-catignani/hotel-tracker-sub001/shared/failure"
	"github.com/rs/zerolog/log"
)

// checkReferences rejects a booking pointing at rows that do not exist. It
// returns the card's current reward rate when a card is linked.
func (s *serviceImpl) checkReferences(ctx context.Context, req dto.BookingRequest) (*float64, error) {
	exist, err := s.chainRepo.Exist(ctx, shared.FilterByID(req.HotelChainID, chainModel.FieldID, chainModel.TableName))
	if err != nil {
		return nil, referenceError("hotel chain", err)
	}

	if !exist {
		return nil, failure.BadRequestf("hotel chain %s not found", req.HotelChainID) // nolint:wrapcheck
	}

	if req.HotelChainSubBrandID != nil {
		exist, err = s.subBrandRepo.Exist(ctx, gDto.And(
			gDto.Eq(chainModel.SubBrandTableName, chainModel.FieldID, *req.HotelChainSubBrandID),
			gDto.Eq(chainModel.SubBrandTableName, chainModel.FieldHotelChainID, req.HotelChainID),
		))
		if err != nil {
			return nil, referenceError("sub-brand", err)
		}

		if !exist {
			return nil, failure.BadRequestf("sub-brand %s does not belong to hotel chain %s", *req.HotelChainSubBrandID, req.HotelChainID) // nolint:wrapcheck
		}
	}

	var cardRate *float64

	if req.CreditCardID != nil {
		card, err := s.cardRepo.Get(ctx, shared.FilterByID(*req.CreditCardID, cardModel.FieldID, cardModel.TableName))
		if err != nil {
			return nil, referenceError("credit card", err)
		}

		if card.ID == constant.Empty {
			return nil, failure.BadRequestf("credit card %s not found", *req.CreditCardID) // nolint:wrapcheck
		}

		cardRate = &card.RewardRate
	}

	if req.ShoppingPortalID != nil {
		exist, err = s.portalRepo.Exist(ctx, shared.FilterByID(*req.ShoppingPortalID, portalModel.FieldID, portalModel.TableName))
		if err != nil {
			return nil, referenceError("shopping portal", err)
		}

		if !exist {
			return nil, failure.BadRequestf("shopping portal %s not found", *req.ShoppingPortalID) // nolint:wrapcheck
		}
	}

	if req.OtaAgencyID != nil {
		exist, err = s.agencyRepo.Exist(ctx, shared.FilterByID(*req.OtaAgencyID, agencyModel.FieldID, agencyModel.TableName))
		if err != nil {
			return nil, referenceError("ota agency", err)
		}

		if !exist {
			return nil, failure.BadRequestf("ota agency %s not found", *req.OtaAgencyID) // nolint:wrapcheck
		}
	}

	return cardRate, nil
}

func referenceError(entity string, err error) error {
	log.Error().Err(err).Str("entity", entity).Msg("failed to check booking reference")

	return fmt.Errorf("failed to check %s: %w", entity, err)
}
