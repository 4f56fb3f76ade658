package services

import (
	"errors"

	"github.com/SpideeCode/uberPharma/entity"
	"github.com/SpideeCode/uberPharma/repository"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type ProductService struct {
	Repo         *repository.ProductRepository
	PharmacyRepo *repository.PharmacyRepository
}

func NewProductService(repo *repository.ProductRepository, pharmacyRepo *repository.PharmacyRepository) *ProductService {
	return &ProductService{Repo: repo, PharmacyRepo: pharmacyRepo}
}

type ProductIn struct {
	Name       string          `json:"name" binding:"required"`
	Price      decimal.Decimal `json:"price"`
	Stock      int             `json:"stock"`
	Image      string          `json:"image"`
	Category   string          `json:"category"`
	PharmacyID uint            `json:"pharmacy_id" binding:"required"`
}

func (s *ProductService) validate(in *ProductIn) error {
	if in.Price.IsNegative() {
		return ErrInvalidPrice
	}
	if in.Stock < 0 {
		return ErrInvalidStock
	}
	return nil
}

// Create adds a product to a pharmacy the principal owns (or any
// pharmacy, for admins).
func (s *ProductService) Create(p entity.Principal, in *ProductIn) (*entity.Product, error) {
	if err := s.validate(in); err != nil {
		return nil, err
	}
	if err := s.authorizePharmacy(p, in.PharmacyID); err != nil {
		return nil, err
	}

	product := &entity.Product{
		Name:       in.Name,
		Price:      in.Price,
		Stock:      in.Stock,
		Image:      in.Image,
		Category:   in.Category,
		PharmacyID: in.PharmacyID,
	}
	if err := s.Repo.Create(product); err != nil {
		return nil, err
	}
	return product, nil
}

func (s *ProductService) Update(p entity.Principal, id uint, in *ProductIn) (*entity.Product, error) {
	if err := s.validate(in); err != nil {
		return nil, err
	}
	product, err := s.ownedProduct(p, id)
	if err != nil {
		return nil, err
	}

	product.Name = in.Name
	product.Price = in.Price
	product.Stock = in.Stock
	product.Image = in.Image
	product.Category = in.Category
	if err := s.Repo.Update(product); err != nil {
		return nil, err
	}
	return product, nil
}

func (s *ProductService) Delete(p entity.Principal, id uint) error {
	if _, err := s.ownedProduct(p, id); err != nil {
		return err
	}
	return s.Repo.Delete(id)
}

func (s *ProductService) ownedProduct(p entity.Principal, id uint) (*entity.Product, error) {
	product, err := s.Repo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if err := s.authorizePharmacy(p, product.PharmacyID); err != nil {
		return nil, err
	}
	return product, nil
}

func (s *ProductService) authorizePharmacy(p entity.Principal, pharmacyID uint) error {
	if p.Role == entity.RoleAdmin {
		ok, err := s.PharmacyRepo.Exists(pharmacyID)
		if err != nil {
			return err
		}
		if !ok {
			return ErrNotFound
		}
		return nil
	}
	owned, err := s.PharmacyRepo.IsOwnedBy(pharmacyID, p.UserID)
	if err != nil {
		return err
	}
	if !owned {
		return ErrForbidden
	}
	return nil
}
