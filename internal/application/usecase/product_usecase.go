package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/text/unicode/norm"

	"github.com/davidmr/almacen-api/internal/application/dto"
	"github.com/davidmr/almacen-api/internal/application/inventory"
	"github.com/davidmr/almacen-api/internal/domain"
	"github.com/davidmr/almacen-api/internal/domain/entity"
	"github.com/davidmr/almacen-api/internal/domain/repository"
)

// ProductUseCase casos de uso CRUD para productos del catálogo.
// El saldo se maneja exclusivamente vía movimientos; aquí solo se administra
// la ficha del producto y su stock mínimo.
type ProductUseCase struct {
	repo     repository.ProductRepository
	txRunner inventory.TxRunner
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(repo repository.ProductRepository, txRunner inventory.TxRunner) *ProductUseCase {
	return &ProductUseCase{repo: repo, txRunner: txRunner}
}

// Create crea un producto nuevo. SKU, nombre y stock mínimo son obligatorios;
// el stock mínimo no puede ser negativo. SKU duplicado devuelve ErrDuplicate.
func (uc *ProductUseCase) Create(ctx context.Context, in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	if strings.TrimSpace(in.SKU) == "" || strings.TrimSpace(in.Name) == "" || in.MinimumStock == nil {
		return nil, domain.ErrInvalidInput
	}
	if *in.MinimumStock < 0 {
		return nil, domain.ErrInvalidInput
	}
	existing, _ := uc.repo.GetBySKU(in.SKU)
	if existing != nil {
		return nil, domain.ErrDuplicate
	}
	now := time.Now()
	product := &entity.Product{
		ID:           uuid.New().String(),
		SKU:          in.SKU,
		Name:         in.Name,
		Description:  in.Description,
		Weight:       in.Weight,
		Attributes:   in.Attributes,
		MinimumStock: *in.MinimumStock,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.repo.Create(product); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// GetByID obtiene un producto por ID. Devuelve ErrNotFound si no existe.
func (uc *ProductUseCase) GetByID(ctx context.Context, id string) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	return toProductResponse(product), nil
}

// List lista productos con búsqueda opcional por término (nombre o SKU).
// El término se normaliza a NFC para que la entrada del navegador (que puede
// llegar descompuesta) coincida con lo almacenado.
func (uc *ProductUseCase) List(ctx context.Context, term string, page dto.PageRequest) (*dto.ProductListResponse, error) {
	page.DefaultPage()
	term = norm.NFC.String(strings.TrimSpace(term))
	list, err := uc.repo.Search(term, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ProductResponse, 0, len(list))
	for _, p := range list {
		items = append(items, *toProductResponse(p))
	}
	return &dto.ProductListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: page.Limit, Offset: page.Offset},
	}, nil
}

// Update actualiza la ficha del producto. SKU, nombre y stock mínimo siguen
// siendo obligatorios; SKU en uso por otro producto devuelve ErrDuplicate.
func (uc *ProductUseCase) Update(ctx context.Context, id string, in dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	if strings.TrimSpace(in.SKU) == "" || strings.TrimSpace(in.Name) == "" || in.MinimumStock == nil {
		return nil, domain.ErrInvalidInput
	}
	if *in.MinimumStock < 0 {
		return nil, domain.ErrInvalidInput
	}
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	other, _ := uc.repo.GetBySKU(in.SKU)
	if other != nil && other.ID != id {
		return nil, domain.ErrDuplicate
	}
	product.SKU = in.SKU
	product.Name = in.Name
	if in.Description != nil {
		product.Description = *in.Description
	}
	if in.Weight != nil {
		product.Weight = *in.Weight
	}
	if len(in.Attributes) > 0 {
		product.Attributes = in.Attributes
	}
	product.MinimumStock = *in.MinimumStock
	product.UpdatedAt = time.Now()
	if err := uc.repo.Update(product); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// Delete elimina un producto junto con sus dependencias (historial y saldo)
// en una sola transacción, en ese orden.
func (uc *ProductUseCase) Delete(ctx context.Context, id string) error {
	if id == "" {
		return domain.ErrInvalidInput
	}
	return uc.txRunner.Run(ctx, func(
		movRepo repository.MovementRepository,
		stockRepo repository.StockRepository,
		productRepo repository.ProductRepository,
	) error {
		// Toma primero el lock de fila del producto: la limpieza espera a
		// que terminen los movimientos en vuelo sobre el mismo producto.
		if _, err := stockRepo.GetForUpdate(id); err != nil {
			return err
		}
		if err := movRepo.DeleteByProduct(id); err != nil {
			return err
		}
		if err := stockRepo.Delete(id); err != nil {
			return err
		}
		return productRepo.Delete(id)
	})
}

func toProductResponse(p *entity.Product) *dto.ProductResponse {
	if p == nil {
		return nil
	}
	return &dto.ProductResponse{
		ID:           p.ID,
		SKU:          p.SKU,
		Name:         p.Name,
		Description:  p.Description,
		Weight:       p.Weight,
		Attributes:   p.Attributes,
		MinimumStock: p.MinimumStock,
		CreatedAt:    p.CreatedAt,
		UpdatedAt:    p.UpdatedAt,
	}
}
