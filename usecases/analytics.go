package usecases

import (
	"context"
	"time"

	"realty-server/entities"
)

const analyticsMonths = 6

type MonthCount struct {
	Month string `json:"month"` // YYYY-MM
	Count int    `json:"count"`
}

// Summary is derived on every request and never stored.
type Summary struct {
	PropertyCount        int                             `json:"propertyCount"`
	PropertiesByType     map[entities.PropertyType]int   `json:"propertiesByType"`
	TotalArea            float64                         `json:"totalArea"`
	AverageArea          float64                         `json:"averageArea"`
	PropertiesPerMonth   []MonthCount                    `json:"propertiesPerMonth"`
	ContractCount        int                             `json:"contractCount"`
	ContractsByStatus    map[entities.ContractStatus]int `json:"contractsByStatus"`
	ContractsByType      map[entities.ContractType]int   `json:"contractsByType"`
	ActiveContractAmount float64                         `json:"activeContractAmount"`
}

type AnalyticsUseCase struct {
	properties *PropertyUseCase
	contracts  *ContractUseCase
	now        func() time.Time
}

func NewAnalyticsUseCase(properties *PropertyUseCase, contracts *ContractUseCase) *AnalyticsUseCase {
	return &AnalyticsUseCase{properties: properties, contracts: contracts, now: time.Now}
}

func (uc *AnalyticsUseCase) Summarize(ctx context.Context, s *Session) (Summary, error) {
	props, err := uc.properties.ListByOwner(ctx, s)
	if err != nil {
		return Summary{}, err
	}
	contracts, err := uc.contracts.ListForParticipant(ctx, s)
	if err != nil {
		return Summary{}, err
	}
	return Summarize(props, contracts, uc.now()), nil
}

// Summarize aggregates the given lists. Months are counted in UTC and
// the window ends with the month containing now.
func Summarize(props []entities.Property, contracts []entities.Contract, now time.Time) Summary {
	sum := Summary{
		PropertyCount:     len(props),
		PropertiesByType:  make(map[entities.PropertyType]int, len(entities.PropertyTypes)),
		ContractCount:     len(contracts),
		ContractsByStatus: map[entities.ContractStatus]int{entities.ContractActive: 0, entities.ContractExpired: 0},
		ContractsByType:   map[entities.ContractType]int{entities.ContractRent: 0, entities.ContractSale: 0},
	}
	for _, t := range entities.PropertyTypes {
		sum.PropertiesByType[t] = 0
	}

	now = now.UTC()
	start := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC).AddDate(0, -(analyticsMonths - 1), 0)
	index := make(map[string]int, analyticsMonths)
	for i := 0; i < analyticsMonths; i++ {
		month := start.AddDate(0, i, 0).Format("2006-01")
		index[month] = i
		sum.PropertiesPerMonth = append(sum.PropertiesPerMonth, MonthCount{Month: month})
	}

	for _, p := range props {
		sum.PropertiesByType[p.Type]++
		sum.TotalArea += p.Area
		if i, ok := index[p.CreatedAt.UTC().Format("2006-01")]; ok {
			sum.PropertiesPerMonth[i].Count++
		}
	}
	if len(props) > 0 {
		sum.AverageArea = sum.TotalArea / float64(len(props))
	}

	for _, c := range contracts {
		status := c.StatusAt(now)
		sum.ContractsByStatus[status]++
		sum.ContractsByType[c.Type]++
		if status == entities.ContractActive {
			sum.ActiveContractAmount += c.Amount
		}
	}
	return sum
}
