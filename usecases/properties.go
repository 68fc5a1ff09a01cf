package usecases

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"strconv"
	"strings"

	"realty-server/entities"
	"realty-server/repositories"
	"realty-server/ws"
)

// Snapshot message types pushed to subscribers.
const (
	MsgProperties = "properties"
	MsgContracts  = "contracts"
)

type PropertyInput struct {
	Type        entities.PropertyType `json:"type"`
	Address     string                `json:"address"`
	Area        string                `json:"area"`
	Description string                `json:"description"`
}

type PropertyUseCase struct {
	repo   repositories.PropertyRepository
	hub    *ws.Manager
	logger *slog.Logger
}

func NewPropertyUseCase(repo repositories.PropertyRepository, hub *ws.Manager) *PropertyUseCase {
	return &PropertyUseCase{
		repo:   repo,
		hub:    hub,
		logger: slog.Default().With("module", "properties"),
	}
}

// Create validates the input and writes it. Nothing is written when the
// area is not a positive number. Identical submissions create separate
// records.
func (uc *PropertyUseCase) Create(ctx context.Context, s *Session, in PropertyInput) (*entities.Property, error) {
	ownerID, err := s.RequireIdentity()
	if err != nil {
		return nil, err
	}
	if !in.Type.Valid() {
		return nil, fmt.Errorf("%w: property type %q", ErrInvalidInput, in.Type)
	}
	address := strings.TrimSpace(in.Address)
	if address == "" {
		return nil, fmt.Errorf("%w: address is required", ErrInvalidInput)
	}
	area, err := ParseArea(in.Area)
	if err != nil {
		return nil, err
	}

	property := &entities.Property{
		OwnerID:     ownerID,
		Type:        in.Type,
		Address:     address,
		Area:        area,
		Description: strings.TrimSpace(in.Description),
	}
	if err := uc.repo.Create(ctx, property); err != nil {
		return nil, err
	}
	uc.publish(ctx, ownerID)
	return property, nil
}

// ListByOwner returns the caller's properties, newest first.
func (uc *PropertyUseCase) ListByOwner(ctx context.Context, s *Session) ([]entities.Property, error) {
	ownerID, err := s.RequireIdentity()
	if err != nil {
		return nil, err
	}
	return uc.repo.GetByOwnerID(ctx, ownerID)
}

// Get returns a property only to its owner.
func (uc *PropertyUseCase) Get(ctx context.Context, s *Session, id string) (*entities.Property, error) {
	ownerID, err := s.RequireIdentity()
	if err != nil {
		return nil, err
	}
	property, err := uc.repo.GetByID(ctx, id)
	if errors.Is(err, repositories.ErrNotFound) || (err == nil && property.OwnerID != ownerID) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return property, nil
}

// Watch opens a live handle on the caller's property list. The handle
// receives the current list first and a full replacement after every
// write. Callers must Close it.
func (uc *PropertyUseCase) Watch(ctx context.Context, s *Session) (*ws.Subscription, error) {
	ownerID, err := s.RequireIdentity()
	if err != nil {
		return nil, err
	}
	sub, primed := uc.hub.Subscribe(ws.UserTopic(ws.TopicProperties, ownerID))
	if !primed {
		if err := uc.publishList(ctx, ownerID); err != nil {
			sub.Close()
			return nil, err
		}
	}
	return sub, nil
}

func (uc *PropertyUseCase) publish(ctx context.Context, ownerID string) {
	if err := uc.publishList(ctx, ownerID); err != nil {
		uc.logger.ErrorContext(ctx, "publish property list", "error", err, "owner_id", ownerID)
	}
}

func (uc *PropertyUseCase) publishList(ctx context.Context, ownerID string) error {
	if uc.hub == nil {
		return nil
	}
	list, err := uc.repo.GetByOwnerID(ctx, ownerID)
	if err != nil {
		return err
	}
	return uc.hub.PublishJSON(ws.UserTopic(ws.TopicProperties, ownerID), MsgProperties, list)
}

var digitReplacer = strings.NewReplacer(
	"۰", "0", "۱", "1", "۲", "2", "۳", "3", "۴", "4",
	"۵", "5", "۶", "6", "۷", "7", "۸", "8", "۹", "9",
	"٠", "0", "١", "1", "٢", "2", "٣", "3", "٤", "4",
	"٥", "5", "٦", "6", "٧", "7", "٨", "8", "٩", "9",
	"٫", ".", ",", "",
)

// ParseArea accepts Latin or Persian digits and rejects anything that is
// not a finite positive number.
func ParseArea(raw string) (float64, error) {
	s := digitReplacer.Replace(strings.TrimSpace(raw))
	if s == "" {
		return 0, ErrInvalidArea
	}
	area, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(area) || math.IsInf(area, 0) || area <= 0 {
		return 0, ErrInvalidArea
	}
	return area, nil
}
