package services

import (
	"errors"
	"strings"

	"gorm.io/gorm"

	"github.com/accelhub-dev/accelhub/internal/apperr"
	"github.com/accelhub-dev/accelhub/internal/models"
	"github.com/accelhub-dev/accelhub/internal/pagination"
	"github.com/accelhub-dev/accelhub/internal/types"
)

// The three directory entities (hubs, insurance companies, repair
// organizations) share the soft-delete convention: Delete marks the row
// INACTIVE and it stays retrievable by id.

type DirectoryFilter struct {
	OrganizationID uint
	Status         string
	Search         string
	pagination.Params
}

// --- Hubs ---

type HubService struct {
	db *gorm.DB
}

func NewHubService(db *gorm.DB) *HubService {
	return &HubService{db: db}
}

type CreateHubInput struct {
	OrganizationID uint   `json:"organization_id"`
	Name           string `json:"name"`
	City           string `json:"city"`
}

type UpdateHubInput struct {
	Name string `json:"name"`
	City string `json:"city"`
}

func (s *HubService) List(filter DirectoryFilter) ([]models.Hub, int64, error) {
	query := s.db.Model(&models.Hub{})
	query = applyDirectoryFilter(query, filter)

	var total int64

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var hubs []models.Hub

	if err := query.Offset(filter.Offset).Limit(filter.Limit).Order("id").Find(&hubs).Error; err != nil {
		return nil, 0, err
	}

	return hubs, total, nil
}

func (s *HubService) Get(id uint) (*models.Hub, error) {
	var hub models.Hub

	if err := s.db.First(&hub, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("Hub not found")
		}
		return nil, err
	}

	return &hub, nil
}

func (s *HubService) Create(input CreateHubInput) (*models.Hub, error) {
	var missing []string

	if input.OrganizationID == 0 {
		missing = append(missing, "organization_id")
	}

	if input.Name == "" {
		missing = append(missing, "name")
	}

	if err := requiredError(missing); err != nil {
		return nil, err
	}

	hub := models.Hub{
		OrganizationID: input.OrganizationID,
		Name:           input.Name,
		City:           input.City,
		Status:         types.StatusActive,
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		ok, err := exists(tx, &models.Organization{}, input.OrganizationID)
		if err != nil {
			return err
		}
		if !ok {
			return fkNotFound("organization_id", "organization")
		}

		return tx.Create(&hub).Error
	})

	if err != nil {
		return nil, err
	}

	return &hub, nil
}

func (s *HubService) Update(id uint, input UpdateHubInput) (*models.Hub, error) {
	var hub models.Hub

	if err := s.db.First(&hub, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("Hub not found")
		}
		return nil, err
	}

	updates := make(map[string]interface{})

	if input.Name != "" {
		updates["name"] = input.Name
	}

	if input.City != "" {
		updates["city"] = input.City
	}

	if len(updates) == 0 {
		return &hub, nil
	}

	if err := s.db.Model(&hub).Updates(updates).Error; err != nil {
		return nil, err
	}

	return &hub, nil
}

func (s *HubService) Delete(id uint) (*models.Hub, error) {
	var hub models.Hub

	if err := s.db.First(&hub, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("Hub not found")
		}
		return nil, err
	}

	if err := s.db.Model(&hub).Update("status", types.StatusInactive).Error; err != nil {
		return nil, err
	}

	return &hub, nil
}

// --- Insurance companies ---

type InsuranceCompanyService struct {
	db *gorm.DB
}

func NewInsuranceCompanyService(db *gorm.DB) *InsuranceCompanyService {
	return &InsuranceCompanyService{db: db}
}

type CreateInsuranceCompanyInput struct {
	OrganizationID uint   `json:"organization_id"`
	Name           string `json:"name"`
	Code           string `json:"code"`
}

type UpdateInsuranceCompanyInput struct {
	Name string `json:"name"`
}

func (s *InsuranceCompanyService) List(filter DirectoryFilter) ([]models.InsuranceCompany, int64, error) {
	query := s.db.Model(&models.InsuranceCompany{})
	query = applyDirectoryFilter(query, filter)

	var total int64

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var companies []models.InsuranceCompany

	if err := query.Offset(filter.Offset).Limit(filter.Limit).Order("id").Find(&companies).Error; err != nil {
		return nil, 0, err
	}

	return companies, total, nil
}

func (s *InsuranceCompanyService) Get(id uint) (*models.InsuranceCompany, error) {
	var company models.InsuranceCompany

	if err := s.db.First(&company, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("Insurance company not found")
		}
		return nil, err
	}

	return &company, nil
}

func (s *InsuranceCompanyService) Create(input CreateInsuranceCompanyInput) (*models.InsuranceCompany, error) {
	var missing []string

	if input.OrganizationID == 0 {
		missing = append(missing, "organization_id")
	}

	if input.Name == "" {
		missing = append(missing, "name")
	}

	if input.Code == "" {
		missing = append(missing, "code")
	}

	if err := requiredError(missing); err != nil {
		return nil, err
	}

	company := models.InsuranceCompany{
		OrganizationID: input.OrganizationID,
		Name:           input.Name,
		Code:           strings.ToUpper(strings.TrimSpace(input.Code)),
		Status:         types.StatusActive,
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		ok, err := exists(tx, &models.Organization{}, input.OrganizationID)
		if err != nil {
			return err
		}
		if !ok {
			return fkNotFound("organization_id", "organization")
		}

		var count int64

		if err := tx.Model(&models.InsuranceCompany{}).Where("code = ?", company.Code).Count(&count).Error; err != nil {
			return err
		}

		if count > 0 {
			return apperr.Conflict("An insurance company with this code already exists")
		}

		return tx.Create(&company).Error
	})

	if err != nil {
		return nil, err
	}

	return &company, nil
}

func (s *InsuranceCompanyService) Update(id uint, input UpdateInsuranceCompanyInput) (*models.InsuranceCompany, error) {
	var company models.InsuranceCompany

	if err := s.db.First(&company, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("Insurance company not found")
		}
		return nil, err
	}

	if input.Name == "" {
		return &company, nil
	}

	if err := s.db.Model(&company).Update("name", input.Name).Error; err != nil {
		return nil, err
	}

	return &company, nil
}

func (s *InsuranceCompanyService) Delete(id uint) (*models.InsuranceCompany, error) {
	var company models.InsuranceCompany

	if err := s.db.First(&company, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("Insurance company not found")
		}
		return nil, err
	}

	if err := s.db.Model(&company).Update("status", types.StatusInactive).Error; err != nil {
		return nil, err
	}

	return &company, nil
}

// --- Repair organizations ---

type RepairOrganizationService struct {
	db *gorm.DB
}

func NewRepairOrganizationService(db *gorm.DB) *RepairOrganizationService {
	return &RepairOrganizationService{db: db}
}

type CreateRepairOrganizationInput struct {
	OrganizationID uint   `json:"organization_id"`
	Name           string `json:"name"`
	City           string `json:"city"`
}

type UpdateRepairOrganizationInput struct {
	Name string `json:"name"`
	City string `json:"city"`
}

func (s *RepairOrganizationService) List(filter DirectoryFilter) ([]models.RepairOrganization, int64, error) {
	query := s.db.Model(&models.RepairOrganization{})
	query = applyDirectoryFilter(query, filter)

	var total int64

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var organizations []models.RepairOrganization

	if err := query.Offset(filter.Offset).Limit(filter.Limit).Order("id").Find(&organizations).Error; err != nil {
		return nil, 0, err
	}

	return organizations, total, nil
}

func (s *RepairOrganizationService) Get(id uint) (*models.RepairOrganization, error) {
	var organization models.RepairOrganization

	if err := s.db.First(&organization, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("Repair organization not found")
		}
		return nil, err
	}

	return &organization, nil
}

func (s *RepairOrganizationService) Create(input CreateRepairOrganizationInput) (*models.RepairOrganization, error) {
	var missing []string

	if input.OrganizationID == 0 {
		missing = append(missing, "organization_id")
	}

	if input.Name == "" {
		missing = append(missing, "name")
	}

	if err := requiredError(missing); err != nil {
		return nil, err
	}

	organization := models.RepairOrganization{
		OrganizationID: input.OrganizationID,
		Name:           input.Name,
		City:           input.City,
		Status:         types.StatusActive,
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		ok, err := exists(tx, &models.Organization{}, input.OrganizationID)
		if err != nil {
			return err
		}
		if !ok {
			return fkNotFound("organization_id", "organization")
		}

		return tx.Create(&organization).Error
	})

	if err != nil {
		return nil, err
	}

	return &organization, nil
}

func (s *RepairOrganizationService) Update(id uint, input UpdateRepairOrganizationInput) (*models.RepairOrganization, error) {
	var organization models.RepairOrganization

	if err := s.db.First(&organization, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("Repair organization not found")
		}
		return nil, err
	}

	updates := make(map[string]interface{})

	if input.Name != "" {
		updates["name"] = input.Name
	}

	if input.City != "" {
		updates["city"] = input.City
	}

	if len(updates) == 0 {
		return &organization, nil
	}

	if err := s.db.Model(&organization).Updates(updates).Error; err != nil {
		return nil, err
	}

	return &organization, nil
}

func (s *RepairOrganizationService) Delete(id uint) (*models.RepairOrganization, error) {
	var organization models.RepairOrganization

	if err := s.db.First(&organization, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("Repair organization not found")
		}
		return nil, err
	}

	if err := s.db.Model(&organization).Update("status", types.StatusInactive).Error; err != nil {
		return nil, err
	}

	return &organization, nil
}

func applyDirectoryFilter(query *gorm.DB, filter DirectoryFilter) *gorm.DB {
	if filter.OrganizationID != 0 {
		query = query.Where("organization_id = ?", filter.OrganizationID)
	}

	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}

	if filter.Search != "" {
		pattern := "%" + strings.ToLower(filter.Search) + "%"
		query = query.Where("LOWER(name) LIKE ?", pattern)
	}

	return query
}
