package services

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/accelhub-dev/accelhub/internal/apperr"
	"github.com/accelhub-dev/accelhub/internal/models"
	"github.com/accelhub-dev/accelhub/internal/pagination"
)

type InvestmentService struct {
	db *gorm.DB
}

func NewInvestmentService(db *gorm.DB) *InvestmentService {
	return &InvestmentService{db: db}
}

type CreateInvestmentInput struct {
	OrganizationID uint       `json:"organization_id"`
	StartupID      uint       `json:"startup_id"`
	InvestorName   string     `json:"investor_name"`
	Round          string     `json:"round"`
	Amount         float64    `json:"amount"`
	Currency       string     `json:"currency"`
	InvestedAt     *time.Time `json:"invested_at"`
}

type UpdateInvestmentInput struct {
	InvestorName string  `json:"investor_name"`
	Round        string  `json:"round"`
	Amount       float64 `json:"amount"`
	Currency     string  `json:"currency"`
}

type InvestmentFilter struct {
	OrganizationID uint
	StartupID      uint
	Round          string
	pagination.Params
}

func (s *InvestmentService) List(filter InvestmentFilter) ([]models.Investment, int64, error) {
	query := s.db.Model(&models.Investment{})

	if filter.OrganizationID != 0 {
		query = query.Where("organization_id = ?", filter.OrganizationID)
	}

	if filter.StartupID != 0 {
		query = query.Where("startup_id = ?", filter.StartupID)
	}

	if filter.Round != "" {
		query = query.Where("round = ?", filter.Round)
	}

	var total int64

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var investments []models.Investment

	if err := query.Offset(filter.Offset).Limit(filter.Limit).Order("id").Find(&investments).Error; err != nil {
		return nil, 0, err
	}

	return investments, total, nil
}

func (s *InvestmentService) Get(id uint) (*models.Investment, error) {
	var investment models.Investment

	if err := s.db.Preload("Startup").First(&investment, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("Investment not found")
		}
		return nil, err
	}

	return &investment, nil
}

func (s *InvestmentService) Create(input CreateInvestmentInput) (*models.Investment, error) {
	var missing []string

	if input.OrganizationID == 0 {
		missing = append(missing, "organization_id")
	}

	if input.StartupID == 0 {
		missing = append(missing, "startup_id")
	}

	if input.InvestorName == "" {
		missing = append(missing, "investor_name")
	}

	if input.Round == "" {
		missing = append(missing, "round")
	}

	if err := requiredError(missing); err != nil {
		return nil, err
	}

	if input.Amount <= 0 {
		return nil, apperr.Validation("Invalid investment amount", map[string]string{
			"amount": "must be greater than zero",
		})
	}

	currency := input.Currency
	if currency == "" {
		currency = "USD"
	}

	investedAt := time.Now()
	if input.InvestedAt != nil {
		investedAt = *input.InvestedAt
	}

	investment := models.Investment{
		OrganizationID: input.OrganizationID,
		StartupID:      input.StartupID,
		InvestorName:   input.InvestorName,
		Round:          input.Round,
		Amount:         input.Amount,
		Currency:       currency,
		InvestedAt:     investedAt,
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		ok, err := exists(tx, &models.Organization{}, input.OrganizationID)
		if err != nil {
			return err
		}
		if !ok {
			return fkNotFound("organization_id", "organization")
		}

		ok, err = exists(tx, &models.Startup{}, input.StartupID)
		if err != nil {
			return err
		}
		if !ok {
			return fkNotFound("startup_id", "startup")
		}

		return tx.Create(&investment).Error
	})

	if err != nil {
		return nil, err
	}

	return &investment, nil
}

func (s *InvestmentService) Update(id uint, input UpdateInvestmentInput) (*models.Investment, error) {
	var investment models.Investment

	if err := s.db.First(&investment, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("Investment not found")
		}
		return nil, err
	}

	updates := make(map[string]interface{})

	if input.InvestorName != "" {
		updates["investor_name"] = input.InvestorName
	}

	if input.Round != "" {
		updates["round"] = input.Round
	}

	if input.Amount > 0 {
		updates["amount"] = input.Amount
	}

	if input.Currency != "" {
		updates["currency"] = input.Currency
	}

	if len(updates) == 0 {
		return &investment, nil
	}

	if err := s.db.Model(&investment).Updates(updates).Error; err != nil {
		return nil, err
	}

	return &investment, nil
}

func (s *InvestmentService) Delete(id uint) error {
	var investment models.Investment

	if err := s.db.First(&investment, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperr.NotFound("Investment not found")
		}
		return err
	}

	return s.db.Delete(&investment).Error
}
