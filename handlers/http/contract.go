package httpHandler

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"realty-server/entities"
	"realty-server/i18n"
	"realty-server/usecases"

	"github.com/gin-gonic/gin"
)

type contractRequest struct {
	PropertyID        string                `json:"propertyId"`
	PropertyAddress   string                `json:"propertyAddress"`
	Type              entities.ContractType `json:"type" binding:"required"`
	CounterpartyEmail string                `json:"counterpartyEmail" binding:"required"`
	StartDate         string                `json:"startDate"`
	EndDate           string                `json:"endDate"`
	Date              string                `json:"date"`
	Amount            float64               `json:"amount"`
}

func (r contractRequest) input() (usecases.ContractInput, error) {
	in := usecases.ContractInput{
		PropertyID:        r.PropertyID,
		PropertyAddress:   r.PropertyAddress,
		Type:              r.Type,
		CounterpartyEmail: r.CounterpartyEmail,
		Amount:            r.Amount,
	}
	var err error
	if in.StartDate, err = parseDate(r.StartDate); err != nil {
		return in, err
	}
	if in.EndDate, err = parseDate(r.EndDate); err != nil {
		return in, err
	}
	if in.Date, err = parseDate(r.Date); err != nil {
		return in, err
	}
	return in, nil
}

// parseDate accepts YYYY-MM-DD or RFC 3339. Empty means unset.
func parseDate(s string) (*time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	for _, layout := range []string{"2006-01-02", time.RFC3339} {
		if t, err := time.Parse(layout, s); err == nil {
			t = t.UTC()
			return &t, nil
		}
	}
	return nil, fmt.Errorf("%w: date %q", usecases.ErrInvalidInput, s)
}

type ContractHandler struct {
	useCase *usecases.ContractUseCase
	catalog *i18n.Catalog
}

func NewContractHandler(useCase *usecases.ContractUseCase, catalog *i18n.Catalog) *ContractHandler {
	return &ContractHandler{useCase: useCase, catalog: catalog}
}

// CreateContract handles POST /api/v1/contracts
func (h *ContractHandler) CreateContract(c *gin.Context) {
	var req contractRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, h.catalog, contractScope)
		return
	}
	in, err := req.input()
	if err != nil {
		fail(c, h.catalog, err, contractScope)
		return
	}
	contract, err := h.useCase.Create(c.Request.Context(), sessionFrom(c), in)
	if err != nil {
		fail(c, h.catalog, err, contractScope)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"data": contract})
}

// GetContracts handles GET /api/v1/contracts
func (h *ContractHandler) GetContracts(c *gin.Context) {
	list, err := h.useCase.ListForParticipant(c.Request.Context(), sessionFrom(c))
	if err != nil {
		fail(c, h.catalog, err, contractScope)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": list, "count": len(list)})
}

// DeleteContract handles DELETE /api/v1/contracts/:id
func (h *ContractHandler) DeleteContract(c *gin.Context) {
	if err := h.useCase.Delete(c.Request.Context(), sessionFrom(c), c.Param("id")); err != nil {
		fail(c, h.catalog, err, contractScope)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": message(c, h.catalog, i18n.ContractDeleted)})
}
