package services

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/accelhub-dev/accelhub/internal/apperr"
	"github.com/accelhub-dev/accelhub/internal/models"
	"github.com/accelhub-dev/accelhub/internal/pagination"
)

type BillService struct {
	db *gorm.DB
}

func NewBillService(db *gorm.DB) *BillService {
	return &BillService{db: db}
}

type CreateBillInput struct {
	OrganizationID uint       `json:"organization_id"`
	ClaimID        uint       `json:"claim_id"`
	Amount         float64    `json:"amount"`
	Currency       string     `json:"currency"`
	DueDate        *time.Time `json:"due_date"`
}

type UpdateBillInput struct {
	Amount   float64    `json:"amount"`
	Currency string     `json:"currency"`
	DueDate  *time.Time `json:"due_date"`
	Paid     *bool      `json:"paid"`
}

type BillFilter struct {
	OrganizationID uint
	ClaimID        uint
	Paid           *bool
	pagination.Params
}

func (s *BillService) List(filter BillFilter) ([]models.Bill, int64, error) {
	query := s.db.Model(&models.Bill{})

	if filter.OrganizationID != 0 {
		query = query.Where("organization_id = ?", filter.OrganizationID)
	}

	if filter.ClaimID != 0 {
		query = query.Where("claim_id = ?", filter.ClaimID)
	}

	if filter.Paid != nil {
		query = query.Where("paid = ?", *filter.Paid)
	}

	var total int64

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var bills []models.Bill

	if err := query.Offset(filter.Offset).Limit(filter.Limit).Order("id").Find(&bills).Error; err != nil {
		return nil, 0, err
	}

	return bills, total, nil
}

func (s *BillService) Get(id uint) (*models.Bill, error) {
	var bill models.Bill

	if err := s.db.First(&bill, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("Bill not found")
		}
		return nil, err
	}

	return &bill, nil
}

func (s *BillService) Create(input CreateBillInput) (*models.Bill, error) {
	var missing []string

	if input.OrganizationID == 0 {
		missing = append(missing, "organization_id")
	}

	if input.ClaimID == 0 {
		missing = append(missing, "claim_id")
	}

	if err := requiredError(missing); err != nil {
		return nil, err
	}

	if input.Amount <= 0 {
		return nil, apperr.Validation("Invalid bill amount", map[string]string{
			"amount": "must be greater than zero",
		})
	}

	currency := input.Currency
	if currency == "" {
		currency = "USD"
	}

	bill := models.Bill{
		OrganizationID: input.OrganizationID,
		ClaimID:        input.ClaimID,
		Amount:         input.Amount,
		Currency:       currency,
		DueDate:        input.DueDate,
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		ok, err := exists(tx, &models.Organization{}, input.OrganizationID)
		if err != nil {
			return err
		}
		if !ok {
			return fkNotFound("organization_id", "organization")
		}

		ok, err = exists(tx, &models.Claim{}, input.ClaimID)
		if err != nil {
			return err
		}
		if !ok {
			return fkNotFound("claim_id", "claim")
		}

		return tx.Create(&bill).Error
	})

	if err != nil {
		return nil, err
	}

	return &bill, nil
}

func (s *BillService) Update(id uint, input UpdateBillInput) (*models.Bill, error) {
	var bill models.Bill

	if err := s.db.First(&bill, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("Bill not found")
		}
		return nil, err
	}

	updates := make(map[string]interface{})

	if input.Amount > 0 {
		updates["amount"] = input.Amount
	}

	if input.Currency != "" {
		updates["currency"] = input.Currency
	}

	if input.DueDate != nil {
		updates["due_date"] = input.DueDate
	}

	if input.Paid != nil {
		updates["paid"] = *input.Paid
	}

	if len(updates) == 0 {
		return &bill, nil
	}

	if err := s.db.Model(&bill).Updates(updates).Error; err != nil {
		return nil, err
	}

	return &bill, nil
}

func (s *BillService) Delete(id uint) error {
	var bill models.Bill

	if err := s.db.First(&bill, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperr.NotFound("Bill not found")
		}
		return err
	}

	return s.db.Delete(&bill).Error
}
