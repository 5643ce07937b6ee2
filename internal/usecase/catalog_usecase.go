package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"assignment_ledger/internal/domain/entities"
	"assignment_ledger/internal/usecase/interfaces"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrCatalogItemNotFound  = errors.New("catalog item not found")
	ErrInvalidCatalogItemID = errors.New("invalid catalog item id")
	ErrInvalidCatalogItem   = errors.New("invalid catalog item")
)

type CreateCatalogItemCommand struct {
	Kind             entities.AssignmentKind
	Name             string
	Price            decimal.Decimal
	RequiredQuantity int
	Targeting        entities.Targeting
}

//go:generate mockgen -source=catalog_usecase.go -destination=../adapter/http/handlers/mocks/catalog_usecase_mock.go -package=mocks

// ICatalogUseCase manages fee structures, uniform items and requirement definitions.
type ICatalogUseCase interface {
	Create(ctx context.Context, cmd CreateCatalogItemCommand) (entities.CatalogItem, error)
	GetByID(ctx context.Context, id string) (entities.CatalogItem, error)
}

type CatalogUseCase struct {
	repo interfaces.ICatalogRepository
}

var _ ICatalogUseCase = (*CatalogUseCase)(nil)

func NewCatalogUseCase(repo interfaces.ICatalogRepository) *CatalogUseCase {
	return &CatalogUseCase{repo: repo}
}

func (u *CatalogUseCase) Create(ctx context.Context, cmd CreateCatalogItemCommand) (entities.CatalogItem, error) {
	name := strings.TrimSpace(cmd.Name)
	if !cmd.Kind.Valid() || name == "" || cmd.Price.IsNegative() {
		return entities.CatalogItem{}, ErrInvalidCatalogItem
	}
	qty := cmd.RequiredQuantity
	if qty == 0 && cmd.Kind == entities.AssignmentKindFee {
		qty = 1
	}
	if qty < 1 {
		return entities.CatalogItem{}, ErrInvalidCatalogItem
	}

	now := time.Now().UTC()
	item := entities.CatalogItem{
		ID:               uuid.NewString(),
		Kind:             cmd.Kind,
		Name:             name,
		Price:            cmd.Price,
		RequiredQuantity: qty,
		Targeting:        cmd.Targeting,
		CreatedAt:        now,
		UpdatedAt:        now,
	}
	return u.repo.Create(ctx, item)
}

func (u *CatalogUseCase) GetByID(ctx context.Context, id string) (entities.CatalogItem, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.CatalogItem{}, ErrInvalidCatalogItemID
	}

	item, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.CatalogItem{}, err
	}
	if item.ID == "" {
		return entities.CatalogItem{}, ErrCatalogItemNotFound
	}
	return item, nil
}
