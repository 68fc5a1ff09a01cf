package usecases

import (
	"context"
	"testing"
	"time"

	"realty-server/entities"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSummarize(t *testing.T) {
	now := time.Date(2026, 6, 15, 12, 0, 0, 0, time.UTC)
	props := []entities.Property{
		{Type: entities.PropertyApartment, Area: 100, CreatedAt: time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)},
		{Type: entities.PropertyApartment, Area: 50, CreatedAt: time.Date(2026, 4, 20, 0, 0, 0, 0, time.UTC)},
		{Type: entities.PropertyLand, Area: 450, CreatedAt: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)},
	}
	contracts := []entities.Contract{
		{Type: entities.ContractRent, Amount: 10, EndDate: date("2027-01-01")},
		{Type: entities.ContractRent, Amount: 20, EndDate: date("2026-01-01")},
		{Type: entities.ContractSale, Amount: 300, Date: date("2026-12-01")},
	}

	sum := Summarize(props, contracts, now)
	assert.Equal(t, 3, sum.PropertyCount)
	assert.Equal(t, 2, sum.PropertiesByType[entities.PropertyApartment])
	assert.Equal(t, 0, sum.PropertiesByType[entities.PropertyVilla])
	assert.Equal(t, 600.0, sum.TotalArea)
	assert.Equal(t, 200.0, sum.AverageArea)

	require.Len(t, sum.PropertiesPerMonth, 6)
	assert.Equal(t, "2026-01", sum.PropertiesPerMonth[0].Month)
	assert.Equal(t, MonthCount{Month: "2026-04", Count: 1}, sum.PropertiesPerMonth[3])
	assert.Equal(t, MonthCount{Month: "2026-06", Count: 1}, sum.PropertiesPerMonth[5])

	assert.Equal(t, 3, sum.ContractCount)
	assert.Equal(t, 2, sum.ContractsByStatus[entities.ContractActive])
	assert.Equal(t, 1, sum.ContractsByStatus[entities.ContractExpired])
	assert.Equal(t, 2, sum.ContractsByType[entities.ContractRent])
	assert.Equal(t, 310.0, sum.ActiveContractAmount)
}

func TestSummarize_Empty(t *testing.T) {
	sum := Summarize(nil, nil, time.Now())
	assert.Zero(t, sum.PropertyCount)
	assert.Zero(t, sum.AverageArea)
	assert.Len(t, sum.PropertiesPerMonth, 6)
}

func TestAnalyticsUseCase(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	s := f.register(t, "owner@example.com", entities.RoleLandlord)
	_, err := f.properties.Create(ctx, s, PropertyInput{Type: entities.PropertyVilla, Address: "North", Area: "220"})
	require.NoError(t, err)

	uc := NewAnalyticsUseCase(f.properties, f.contractUC)
	sum, err := uc.Summarize(ctx, s)
	require.NoError(t, err)
	assert.Equal(t, 1, sum.PropertyCount)
	assert.Equal(t, 1, sum.PropertiesByType[entities.PropertyVilla])
	assert.Equal(t, 1, sum.PropertiesPerMonth[5].Count)

	_, err = uc.Summarize(ctx, &Session{Demo: true})
	assert.ErrorIs(t, err, ErrDemoForbidden)
}
