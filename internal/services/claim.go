package services

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/accelhub-dev/accelhub/internal/apperr"
	"github.com/accelhub-dev/accelhub/internal/models"
	"github.com/accelhub-dev/accelhub/internal/pagination"
	"github.com/accelhub-dev/accelhub/internal/types"
)

type ClaimService struct {
	db *gorm.DB
}

func NewClaimService(db *gorm.DB) *ClaimService {
	return &ClaimService{db: db}
}

type CreateClaimInput struct {
	OrganizationID       uint           `json:"organization_id"`
	VehicleID            uint           `json:"vehicle_id"`
	InsuranceCompanyID   uint           `json:"insurance_company_id"`
	RepairOrganizationID *uint          `json:"repair_organization_id"`
	HubID                *uint          `json:"hub_id"`
	Description          string         `json:"description"`
	Details              datatypes.JSON `json:"details"`
}

type UpdateClaimInput struct {
	RepairOrganizationID *uint          `json:"repair_organization_id"`
	HubID                *uint          `json:"hub_id"`
	Description          string         `json:"description"`
	Details              datatypes.JSON `json:"details"`
}

type ClaimFilter struct {
	OrganizationID     uint
	VehicleID          uint
	InsuranceCompanyID uint
	Status             string
	pagination.Params
}

func (s *ClaimService) List(filter ClaimFilter) ([]models.Claim, int64, error) {
	query := s.db.Model(&models.Claim{})

	if filter.OrganizationID != 0 {
		query = query.Where("organization_id = ?", filter.OrganizationID)
	}

	if filter.VehicleID != 0 {
		query = query.Where("vehicle_id = ?", filter.VehicleID)
	}

	if filter.InsuranceCompanyID != 0 {
		query = query.Where("insurance_company_id = ?", filter.InsuranceCompanyID)
	}

	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}

	var total int64

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var claims []models.Claim

	if err := query.Offset(filter.Offset).Limit(filter.Limit).Order("id").Find(&claims).Error; err != nil {
		return nil, 0, err
	}

	return claims, total, nil
}

func (s *ClaimService) Get(id uint) (*models.Claim, error) {
	var claim models.Claim

	err := s.db.Preload("Vehicle").Preload("InsuranceCompany").Preload("RepairOrganization").Preload("Bills").First(&claim, id).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("Claim not found")
		}
		return nil, err
	}

	return &claim, nil
}

func (s *ClaimService) Create(input CreateClaimInput) (*models.Claim, error) {
	var missing []string

	if input.OrganizationID == 0 {
		missing = append(missing, "organization_id")
	}

	if input.VehicleID == 0 {
		missing = append(missing, "vehicle_id")
	}

	if input.InsuranceCompanyID == 0 {
		missing = append(missing, "insurance_company_id")
	}

	if err := requiredError(missing); err != nil {
		return nil, err
	}

	claim := models.Claim{
		OrganizationID:       input.OrganizationID,
		ClaimNumber:          "CLM-" + strings.ToUpper(uuid.NewString()[:8]),
		VehicleID:            input.VehicleID,
		InsuranceCompanyID:   input.InsuranceCompanyID,
		RepairOrganizationID: input.RepairOrganizationID,
		HubID:                input.HubID,
		Status:               "FILED",
		Description:          input.Description,
		Details:              input.Details,
		FiledAt:              time.Now(),
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		for _, check := range []struct {
			model  interface{}
			id     uint
			field  string
			entity string
		}{
			{&models.Organization{}, input.OrganizationID, "organization_id", "organization"},
			{&models.Vehicle{}, input.VehicleID, "vehicle_id", "vehicle"},
			{&models.InsuranceCompany{}, input.InsuranceCompanyID, "insurance_company_id", "insurance company"},
		} {
			ok, err := exists(tx, check.model, check.id)
			if err != nil {
				return err
			}
			if !ok {
				return fkNotFound(check.field, check.entity)
			}
		}

		if input.RepairOrganizationID != nil {
			ok, err := exists(tx, &models.RepairOrganization{}, *input.RepairOrganizationID)
			if err != nil {
				return err
			}
			if !ok {
				return fkNotFound("repair_organization_id", "repair organization")
			}
		}

		if input.HubID != nil {
			ok, err := exists(tx, &models.Hub{}, *input.HubID)
			if err != nil {
				return err
			}
			if !ok {
				return fkNotFound("hub_id", "hub")
			}
		}

		return tx.Create(&claim).Error
	})

	if err != nil {
		return nil, err
	}

	return &claim, nil
}

func (s *ClaimService) Update(id uint, input UpdateClaimInput) (*models.Claim, error) {
	var claim models.Claim

	if err := s.db.First(&claim, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("Claim not found")
		}
		return nil, err
	}

	updates := make(map[string]interface{})

	if input.Description != "" {
		updates["description"] = input.Description
	}

	if len(input.Details) > 0 {
		updates["details"] = input.Details
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if input.RepairOrganizationID != nil {
			ok, err := exists(tx, &models.RepairOrganization{}, *input.RepairOrganizationID)
			if err != nil {
				return err
			}
			if !ok {
				return fkNotFound("repair_organization_id", "repair organization")
			}
			updates["repair_organization_id"] = input.RepairOrganizationID
		}

		if input.HubID != nil {
			ok, err := exists(tx, &models.Hub{}, *input.HubID)
			if err != nil {
				return err
			}
			if !ok {
				return fkNotFound("hub_id", "hub")
			}
			updates["hub_id"] = input.HubID
		}

		if len(updates) == 0 {
			return nil
		}

		return tx.Model(&claim).Updates(updates).Error
	})

	if err != nil {
		return nil, err
	}

	return &claim, nil
}

// UpdateStatus moves a claim through its workflow. Settled claims are final.
func (s *ClaimService) UpdateStatus(id uint, status string) (*models.Claim, error) {
	if !types.Contains(types.ClaimStatuses, status) {
		return nil, apperr.Validation("Invalid claim status", map[string]string{
			"status": "must be one of " + strings.Join(types.ClaimStatuses, ", "),
		})
	}

	var claim models.Claim

	if err := s.db.First(&claim, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("Claim not found")
		}
		return nil, err
	}

	if claim.Status == "SETTLED" {
		return nil, apperr.Conflict("Claim has already been settled")
	}

	if err := s.db.Model(&claim).Update("status", status).Error; err != nil {
		return nil, err
	}

	return &claim, nil
}

func (s *ClaimService) Delete(id uint) error {
	var claim models.Claim

	if err := s.db.First(&claim, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperr.NotFound("Claim not found")
		}
		return err
	}

	return s.db.Delete(&claim).Error
}
