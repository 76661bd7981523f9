package usecase

import (
	"encoding/base64"

	"github.com/jhoicas/polipostres-api/internal/application/dto"
	"github.com/jhoicas/polipostres-api/internal/domain"
	"github.com/jhoicas/polipostres-api/internal/domain/entity"
	"github.com/jhoicas/polipostres-api/internal/domain/ledger"
	"github.com/jhoicas/polipostres-api/internal/infrastructure/images"
)

// ProductUseCase casos de uso CRUD del catálogo. La imagen se resuelve aquí
// (URL o archivo base64 → referencia opaca) antes de entrar al ledger.
type ProductUseCase struct {
	ledger *ledger.Ledger
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(l *ledger.Ledger) *ProductUseCase {
	return &ProductUseCase{ledger: l}
}

// Create crea un nuevo producto en el catálogo.
func (uc *ProductUseCase) Create(in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	imageRef, err := resolveImage(in.ImageURL, in.ImageData, in.ImageMime)
	if err != nil {
		return nil, err
	}
	p, err := uc.ledger.AddProduct(in.Name, in.Price, in.Stock, imageRef)
	if err != nil {
		return nil, err
	}
	return toProductResponse(p), nil
}

// GetByID obtiene un producto por ID.
func (uc *ProductUseCase) GetByID(id string) (*dto.ProductResponse, error) {
	p, err := uc.ledger.GetProduct(id)
	if err != nil {
		return nil, err
	}
	return toProductResponse(p), nil
}

// Update actualiza los campos indicados del producto; el ID no cambia.
// Si no viene ningún campo de imagen, la imagen actual se conserva.
func (uc *ProductUseCase) Update(id string, in dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	patch := ledger.ProductPatch{
		Name:  in.Name,
		Price: in.Price,
		Stock: in.Stock,
	}

	if in.ImageURL != nil || in.ImageData != nil {
		var url, data, mime string
		if in.ImageURL != nil {
			url = *in.ImageURL
		}
		if in.ImageData != nil {
			data = *in.ImageData
		}
		if in.ImageMime != nil {
			mime = *in.ImageMime
		}
		imageRef, err := resolveImage(url, data, mime)
		if err != nil {
			return nil, err
		}
		patch.ImageRef = &imageRef
	}

	p, err := uc.ledger.EditProduct(id, patch)
	if err != nil {
		return nil, err
	}
	return toProductResponse(p), nil
}

// AdjustStock fija el stock del producto en un valor absoluto.
func (uc *ProductUseCase) AdjustStock(id string, newStock int) (*dto.ProductResponse, error) {
	p, err := uc.ledger.AdjustStock(id, newStock)
	if err != nil {
		return nil, err
	}
	return toProductResponse(p), nil
}

// List devuelve el catálogo completo en orden de creación.
func (uc *ProductUseCase) List() (*dto.ProductListResponse, error) {
	products := uc.ledger.Products()
	items := make([]dto.ProductResponse, 0, len(products))
	for i := range products {
		items = append(items, *toProductResponse(&products[i]))
	}
	return &dto.ProductListResponse{Items: items, Total: len(items)}, nil
}

// Delete elimina un producto por ID. Las ventas históricas no se tocan.
func (uc *ProductUseCase) Delete(id string) error {
	return uc.ledger.DeleteProduct(id)
}

// resolveImage decodifica el archivo base64 (si viene) y delega en images.Resolve.
func resolveImage(url, data, mime string) (string, error) {
	var raw []byte
	if data != "" {
		decoded, err := base64.StdEncoding.DecodeString(data)
		if err != nil {
			return "", &domain.ValidationError{Field: "image_data", Reason: "no es base64 válido"}
		}
		raw = decoded
	}
	return images.Resolve(images.Input{URL: url, Raw: raw, MimeType: mime})
}

func toProductResponse(p *entity.Product) *dto.ProductResponse {
	if p == nil {
		return nil
	}
	return &dto.ProductResponse{
		ID:        p.ID,
		Name:      p.Name,
		Price:     p.Price,
		Stock:     p.Stock,
		InStock:   p.InStock(),
		ImageURL:  p.ImageRef,
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
}
