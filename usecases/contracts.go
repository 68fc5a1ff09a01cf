package usecases

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"strings"
	"time"

	"realty-server/entities"
	"realty-server/repositories"
	"realty-server/ws"
)

type ContractInput struct {
	PropertyID        string                `json:"propertyId"`
	PropertyAddress   string                `json:"propertyAddress"`
	Type              entities.ContractType `json:"type"`
	CounterpartyEmail string                `json:"counterpartyEmail"`
	StartDate         *time.Time            `json:"startDate"`
	EndDate           *time.Time            `json:"endDate"`
	Date              *time.Time            `json:"date"`
	Amount            float64               `json:"amount"`
}

type ContractUseCase struct {
	contracts  repositories.ContractRepository
	users      repositories.UserRepository
	properties repositories.PropertyRepository
	hub        *ws.Manager
	now        func() time.Time
	logger     *slog.Logger
}

func NewContractUseCase(contracts repositories.ContractRepository, users repositories.UserRepository, properties repositories.PropertyRepository, hub *ws.Manager) *ContractUseCase {
	return &ContractUseCase{
		contracts:  contracts,
		users:      users,
		properties: properties,
		hub:        hub,
		now:        time.Now,
		logger:     slog.Default().With("module", "contracts"),
	}
}

// Create resolves the counterparty by email and then writes the
// contract in a single call. A failed lookup writes nothing.
func (uc *ContractUseCase) Create(ctx context.Context, s *Session, in ContractInput) (*entities.Contract, error) {
	creatorID, err := s.RequireIdentity()
	if err != nil {
		return nil, err
	}
	contract, err := uc.validate(ctx, creatorID, in)
	if err != nil {
		return nil, err
	}

	counterparty, err := uc.users.GetByEmail(ctx, entities.NormalizeEmail(in.CounterpartyEmail))
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrCounterpartyNotFound
		}
		return nil, err
	}
	if counterparty.ID == creatorID {
		return nil, fmt.Errorf("%w: counterparty must be another user", ErrInvalidInput)
	}

	contract.CreatorID = creatorID
	contract.CreatorEmail = s.Email
	contract.CreatorRole = s.Role
	contract.CounterpartyID = counterparty.ID
	contract.CounterpartyEmail = counterparty.Email
	contract.CounterpartyRole = counterparty.Role
	contract.Status = contract.StatusAt(uc.now())

	if err := uc.contracts.Create(ctx, contract); err != nil {
		return nil, err
	}
	uc.publish(ctx, contract.ParticipantIDs()...)
	return contract, nil
}

func (uc *ContractUseCase) validate(ctx context.Context, creatorID string, in ContractInput) (*entities.Contract, error) {
	if !in.Type.Valid() {
		return nil, fmt.Errorf("%w: contract type %q", ErrInvalidInput, in.Type)
	}
	if in.Amount <= 0 || math.IsNaN(in.Amount) || math.IsInf(in.Amount, 0) {
		return nil, fmt.Errorf("%w: amount must be positive", ErrInvalidInput)
	}
	if strings.TrimSpace(in.CounterpartyEmail) == "" {
		return nil, fmt.Errorf("%w: counterparty email is required", ErrInvalidInput)
	}

	c := &entities.Contract{
		Type:            in.Type,
		Amount:          in.Amount,
		PropertyAddress: strings.TrimSpace(in.PropertyAddress),
	}
	switch in.Type {
	case entities.ContractRent:
		if in.StartDate == nil || in.EndDate == nil || !in.StartDate.Before(*in.EndDate) {
			return nil, fmt.Errorf("%w: rent needs a start date before the end date", ErrInvalidInput)
		}
		c.StartDate, c.EndDate = in.StartDate, in.EndDate
	case entities.ContractSale:
		if in.Date == nil {
			return nil, fmt.Errorf("%w: sale needs a date", ErrInvalidInput)
		}
		c.Date = in.Date
	}

	if in.PropertyID != "" {
		property, err := uc.properties.GetByID(ctx, in.PropertyID)
		if err != nil {
			if errors.Is(err, repositories.ErrNotFound) {
				return nil, fmt.Errorf("%w: unknown property", ErrInvalidInput)
			}
			return nil, err
		}
		// Only the owner may attach a property; others see it as unknown.
		if property.OwnerID != creatorID {
			return nil, fmt.Errorf("%w: unknown property", ErrInvalidInput)
		}
		c.PropertyID = property.ID
		if c.PropertyAddress == "" {
			c.PropertyAddress = property.Address
		}
	}
	if c.PropertyAddress == "" {
		return nil, fmt.Errorf("%w: property address is required", ErrInvalidInput)
	}
	return c, nil
}

// ListForParticipant returns contracts where the caller is either party,
// with status recomputed against the current time.
func (uc *ContractUseCase) ListForParticipant(ctx context.Context, s *Session) ([]entities.Contract, error) {
	userID, err := s.RequireIdentity()
	if err != nil {
		return nil, err
	}
	return uc.list(ctx, userID)
}

func (uc *ContractUseCase) list(ctx context.Context, userID string) ([]entities.Contract, error) {
	list, err := uc.contracts.GetByParticipantID(ctx, userID)
	if err != nil {
		return nil, err
	}
	now := uc.now()
	for i := range list {
		list[i].Status = list[i].StatusAt(now)
	}
	return list, nil
}

// Delete removes a contract on behalf of either party. Anyone else is
// told it does not exist.
func (uc *ContractUseCase) Delete(ctx context.Context, s *Session, id string) error {
	userID, err := s.RequireIdentity()
	if err != nil {
		return err
	}
	contract, err := uc.contracts.GetByID(ctx, id)
	if errors.Is(err, repositories.ErrNotFound) || (err == nil && !contract.HasParticipant(userID)) {
		return ErrNotFound
	}
	if err != nil {
		return err
	}
	if err := uc.contracts.Delete(ctx, id); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return ErrNotFound
		}
		return err
	}
	uc.logger.InfoContext(ctx, "contract deleted", "contract_id", id, "by", userID)
	uc.publish(ctx, contract.ParticipantIDs()...)
	return nil
}

// Watch opens a live handle on the caller's contract list.
func (uc *ContractUseCase) Watch(ctx context.Context, s *Session) (*ws.Subscription, error) {
	userID, err := s.RequireIdentity()
	if err != nil {
		return nil, err
	}
	sub, primed := uc.hub.Subscribe(ws.UserTopic(ws.TopicContracts, userID))
	if !primed {
		if err := uc.publishList(ctx, userID); err != nil {
			sub.Close()
			return nil, err
		}
	}
	return sub, nil
}

func (uc *ContractUseCase) publish(ctx context.Context, userIDs ...string) {
	for _, id := range userIDs {
		if err := uc.publishList(ctx, id); err != nil {
			uc.logger.ErrorContext(ctx, "publish contract list", "error", err, "user_id", id)
		}
	}
}

func (uc *ContractUseCase) publishList(ctx context.Context, userID string) error {
	if uc.hub == nil {
		return nil
	}
	list, err := uc.list(ctx, userID)
	if err != nil {
		return err
	}
	return uc.hub.PublishJSON(ws.UserTopic(ws.TopicContracts, userID), MsgContracts, list)
}
