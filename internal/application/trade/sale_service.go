package trade

import (
	"context"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/muebleria/backend/internal/domain/catalog"
	"github.com/muebleria/backend/internal/domain/partner"
	"github.com/muebleria/backend/internal/domain/shared"
	"github.com/muebleria/backend/internal/domain/shared/valueobject"
	"github.com/muebleria/backend/internal/domain/trade"
	"github.com/muebleria/backend/internal/infrastructure/telemetry"
	"github.com/shopspring/decimal"
)

// statsWindowDays is how far back the sale stats aggregation looks
const statsWindowDays = 30

// SaleService handles sale business operations. Creating a sale is the only
// write path: it validates the request, resolves current prices, and delegates
// the atomic insert-and-deduct to the repository.
type SaleService struct {
	saleRepo     trade.SaleRepository
	productRepo  catalog.ProductRepository
	sellerRepo   partner.SellerRepository
	customerRepo partner.CustomerRepository
	txTimeout    time.Duration
}

// NewSaleService creates a new SaleService
func NewSaleService(
	saleRepo trade.SaleRepository,
	productRepo catalog.ProductRepository,
	sellerRepo partner.SellerRepository,
	customerRepo partner.CustomerRepository,
	txTimeout time.Duration,
) *SaleService {
	if txTimeout <= 0 {
		txTimeout = 10 * time.Second
	}
	return &SaleService{
		saleRepo:     saleRepo,
		productRepo:  productRepo,
		sellerRepo:   sellerRepo,
		customerRepo: customerRepo,
		txTimeout:    txTimeout,
	}
}

// Create records a sale. All validation and price resolution happens before
// the transaction opens so the row locks are held as briefly as possible.
func (s *SaleService) Create(ctx context.Context, req CreateSaleRequest) (*SaleResponse, error) {
	ctx, span := telemetry.StartServiceSpan(ctx, "sale", "create",
		telemetry.WithAttribute(telemetry.SpanAttrSellerID, req.SellerID),
		telemetry.WithAttribute(telemetry.SpanAttrCustomerID, req.CustomerID),
		telemetry.WithAttribute(telemetry.SpanAttrLineCount, len(req.Items)),
	)
	defer span.End()

	deductions, err := accumulateItems(req.Items)
	if err != nil {
		telemetry.RecordError(span, err)
		return nil, err
	}

	if _, err := s.sellerRepo.FindByID(ctx, req.SellerID); err != nil {
		if err == shared.ErrNotFound {
			err = shared.NewDomainError("NOT_FOUND", "Seller not found")
		}
		telemetry.RecordError(span, err)
		return nil, err
	}
	if _, err := s.customerRepo.FindByID(ctx, req.CustomerID); err != nil {
		if err == shared.ErrNotFound {
			err = shared.NewDomainError("NOT_FOUND", "Customer not found")
		}
		telemetry.RecordError(span, err)
		return nil, err
	}

	productIDs := make([]uuid.UUID, 0, len(deductions))
	for _, d := range deductions {
		productIDs = append(productIDs, d.ProductID)
	}
	products, err := s.productRepo.FindByIDs(ctx, productIDs)
	if err != nil {
		telemetry.RecordError(span, err)
		return nil, err
	}
	priceByProduct := make(map[uuid.UUID]decimal.Decimal, len(products))
	for i := range products {
		priceByProduct[products[i].ID] = products[i].NetPrice
	}
	for _, id := range productIDs {
		if _, ok := priceByProduct[id]; !ok {
			err := shared.NewDomainError("NOT_FOUND", "Product not found: "+id.String())
			telemetry.RecordError(span, err)
			return nil, err
		}
	}

	sale, err := trade.NewSale(req.SellerID, req.CustomerID)
	if err != nil {
		telemetry.RecordError(span, err)
		return nil, err
	}
	for _, d := range deductions {
		unitPrice := valueobject.NewMoneyCLP(priceByProduct[d.ProductID])
		if _, err := sale.AddLine(d.ProductID, d.Quantity, unitPrice); err != nil {
			telemetry.RecordError(span, err)
			return nil, err
		}
	}

	// The caller quoted a total to the customer from a possibly stale price
	// list. If it no longer matches, the sale must not go through.
	declared := decimal.NewFromFloat(req.Total).Round(2)
	if !sale.ComputedTotal().Round(2).Equal(declared) {
		telemetry.RecordError(span, shared.ErrPriceMismatch)
		return nil, shared.ErrPriceMismatch
	}

	txCtx, cancel := context.WithTimeout(ctx, s.txTimeout)
	defer cancel()

	if err := s.saleRepo.CreateWithStockDeduction(txCtx, sale, deductions); err != nil {
		telemetry.RecordError(span, err)
		return nil, err
	}

	telemetry.SetAttributes(span,
		telemetry.SpanAttrSaleID, sale.ID,
		telemetry.SpanAttrAmount, sale.TotalPrice.InexactFloat64(),
	)

	response := ToSaleResponse(sale)
	return &response, nil
}

// GetByID retrieves a sale with its lines
func (s *SaleService) GetByID(ctx context.Context, id uuid.UUID) (*SaleResponse, error) {
	sale, err := s.saleRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	response := ToSaleResponse(sale)
	return &response, nil
}

// List retrieves sales newest first
func (s *SaleService) List(ctx context.Context, filter SaleListFilter) ([]SaleResponse, error) {
	domainFilter := shared.DefaultFilter()
	if filter.Page > 0 {
		domainFilter.Page = filter.Page
	}
	if filter.PageSize > 0 {
		domainFilter.PageSize = filter.PageSize
	}

	sales, err := s.saleRepo.FindAll(ctx, domainFilter)
	if err != nil {
		return nil, err
	}
	return ToSaleResponses(sales), nil
}

// Stats aggregates the last 30 days of sales
func (s *SaleService) Stats(ctx context.Context) (*SaleStatsResponse, error) {
	since := time.Now().AddDate(0, 0, -statsWindowDays)
	stats, err := s.saleRepo.Stats(ctx, since)
	if err != nil {
		return nil, err
	}
	response := ToSaleStatsResponse(stats)
	return &response, nil
}

// accumulateItems merges duplicate product references into one deduction per
// product and validates quantities. The result is sorted by product ID.
func accumulateItems(items []CreateSaleItemInput) ([]trade.StockedLine, error) {
	if len(items) == 0 {
		return nil, shared.NewDomainError("INVALID_INPUT", "Sale must contain at least one item")
	}

	totals := make(map[uuid.UUID]int, len(items))
	for _, item := range items {
		if item.ProductID == uuid.Nil {
			return nil, shared.NewDomainError("INVALID_INPUT", "Product ID cannot be empty")
		}
		if item.Quantity <= 0 {
			return nil, shared.NewDomainError("INVALID_INPUT", "Quantity must be positive")
		}
		totals[item.ProductID] += item.Quantity
	}

	deductions := make([]trade.StockedLine, 0, len(totals))
	for id, qty := range totals {
		deductions = append(deductions, trade.StockedLine{ProductID: id, Quantity: qty})
	}
	sort.Slice(deductions, func(i, j int) bool {
		return deductions[i].ProductID.String() < deductions[j].ProductID.String()
	})
	return deductions, nil
}
