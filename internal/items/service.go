package items

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/bintangpramudya/kasirpay-backend/pkg/db/models"
	pkgerrors "github.com/bintangpramudya/kasirpay-backend/pkg/errors"
	"github.com/bintangpramudya/kasirpay-backend/pkg/pagination"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

const itemNotFoundMessage = "Item not found"

// Service defines the behavior needed by the items controller.
type Service interface {
	List(ctx context.Context, params pagination.Params) ([]ItemDTO, pagination.Meta, error)
	Get(ctx context.Context, id uuid.UUID) (*ItemDTO, error)
	Create(ctx context.Context, dto CreateItemDTO) (*ItemDTO, error)
	Update(ctx context.Context, id uuid.UUID, dto UpdateItemDTO) (*ItemDTO, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type itemRepository interface {
	List(ctx context.Context, params pagination.Params) ([]models.Item, int64, error)
	FindByID(ctx context.Context, id uuid.UUID) (*models.Item, error)
	Create(ctx context.Context, dto CreateItemDTO) (*models.Item, error)
	Update(ctx context.Context, id uuid.UUID, dto UpdateItemDTO) (*models.Item, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type service struct {
	repo itemRepository
}

// NewService constructs an items service backed by the given repository.
func NewService(repo itemRepository) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("item repository is required")
	}
	return &service{repo: repo}, nil
}

func (s *service) List(ctx context.Context, params pagination.Params) ([]ItemDTO, pagination.Meta, error) {
	params = params.Normalize()
	rows, total, err := s.repo.List(ctx, params)
	if err != nil {
		return nil, pagination.Meta{}, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "list items")
	}
	return FromModels(rows), pagination.GenerateMeta(params, total), nil
}

func (s *service) Get(ctx context.Context, id uuid.UUID) (*ItemDTO, error) {
	item, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, itemNotFoundMessage)
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "load item")
	}
	return FromModel(item), nil
}

func (s *service) Create(ctx context.Context, dto CreateItemDTO) (*ItemDTO, error) {
	dto.Name = strings.TrimSpace(dto.Name)
	if dto.Name == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "name is required")
	}
	if dto.Price <= 0 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "price must be greater than zero")
	}

	item, err := s.repo.Create(ctx, dto)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "create item")
	}
	return FromModel(item), nil
}

func (s *service) Update(ctx context.Context, id uuid.UUID, dto UpdateItemDTO) (*ItemDTO, error) {
	if dto.Price != nil && *dto.Price <= 0 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "price must be greater than zero")
	}

	item, err := s.repo.Update(ctx, id, dto)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, itemNotFoundMessage)
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "update item")
	}
	return FromModel(item), nil
}

func (s *service) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return pkgerrors.New(pkgerrors.CodeNotFound, itemNotFoundMessage)
		}
		return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "delete item")
	}
	return nil
}
