package repository

import (
	"github.com/SpideeCode/uberPharma/entity"
	"gorm.io/gorm"
)

type PharmacyRepository struct {
	DB *gorm.DB
}

func NewPharmacyRepository(db *gorm.DB) *PharmacyRepository {
	return &PharmacyRepository{DB: db}
}

func (r *PharmacyRepository) FindAll() ([]entity.Pharmacy, error) {
	var pharmacies []entity.Pharmacy
	err := r.DB.Find(&pharmacies).Error
	return pharmacies, err
}

func (r *PharmacyRepository) FindByID(id uint) (*entity.Pharmacy, error) {
	var p entity.Pharmacy
	if err := r.DB.First(&p, id).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

// FindByIDWithProducts is the catalog detail query.
func (r *PharmacyRepository) FindByIDWithProducts(id uint) (*entity.Pharmacy, error) {
	var p entity.Pharmacy
	if err := r.DB.Preload("Products").First(&p, id).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *PharmacyRepository) ListByOwner(userID uint) ([]entity.Pharmacy, error) {
	var pharmacies []entity.Pharmacy
	err := r.DB.Where("user_id = ?", userID).Find(&pharmacies).Error
	return pharmacies, err
}

func (r *PharmacyRepository) Create(p *entity.Pharmacy) error {
	return r.DB.Create(p).Error
}

func (r *PharmacyRepository) Update(p *entity.Pharmacy) error {
	return r.DB.Save(p).Error
}

func (r *PharmacyRepository) Delete(id uint) error {
	return r.DB.Delete(&entity.Pharmacy{}, id).Error
}

func (r *PharmacyRepository) Exists(id uint) (bool, error) {
	var cnt int64
	if err := r.DB.Model(&entity.Pharmacy{}).Where("id = ?", id).Count(&cnt).Error; err != nil {
		return false, err
	}
	return cnt > 0, nil
}

// IsOwnedBy reports whether the pharmacy belongs to the user.
func (r *PharmacyRepository) IsOwnedBy(pharmacyID, userID uint) (bool, error) {
	var cnt int64
	err := r.DB.Model(&entity.Pharmacy{}).
		Where("id = ? AND user_id = ?", pharmacyID, userID).
		Count(&cnt).Error
	if err != nil {
		return false, err
	}
	return cnt > 0, nil
}

func (r *PharmacyRepository) Count() (int64, error) {
	var n int64
	err := r.DB.Model(&entity.Pharmacy{}).Count(&n).Error
	return n, err
}
