package invoice

import (
	"context"
	"errors"
	"time"

	"go-payledger/internal/aggregate"
	"go-payledger/internal/billing"
	invoiceerrors "go-payledger/internal/invoice/errors"
	"go-payledger/internal/ledger"
	"go-payledger/internal/money"
	"go-payledger/internal/shared/apperror"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type Service interface {
	List(ctx context.Context, includeDeleted bool) (InvoiceListResponse, error)
	Get(ctx context.Context, id string) (InvoiceResponse, error)
	Create(ctx context.Context, req CreateInvoiceRequest) (InvoiceResponse, error)
	Update(ctx context.Context, id string, req UpdateInvoiceRequest) (InvoiceResponse, error)
	Delete(ctx context.Context, id string) error
	Restore(ctx context.Context, id string) (InvoiceResponse, error)
	AddPayment(ctx context.Context, id string, req AddPaymentRequest) (InvoiceResponse, error)
}

type service struct {
	ledger     ledger.Client
	defaultVAT decimal.Decimal
}

func NewService(ledgerClient ledger.Client, defaultVAT decimal.Decimal) Service {
	return &service{ledger: ledgerClient, defaultVAT: defaultVAT}
}

func (s *service) List(ctx context.Context, includeDeleted bool) (InvoiceListResponse, error) {
	invoices, err := s.ledger.Invoices(ctx, includeDeleted)
	if err != nil {
		return InvoiceListResponse{}, err
	}

	totals := aggregate.Invoices(invoices)

	resp := InvoiceListResponse{
		Invoices: make([]InvoiceResponse, 0, len(invoices)),
		Totals: InvoiceTotalsResponse{
			Subtotal:   money.Round2(totals.Subtotal),
			VATAmount:  money.Round2(totals.VATAmount),
			Total:      money.Round2(totals.Total),
			AmountPaid: money.Round2(totals.AmountPaid),
			Balance:    money.Round2(totals.Balance),
			Count:      totals.Count,
		},
	}
	for _, inv := range invoices {
		resp.Invoices = append(resp.Invoices, mapInvoiceResponse(inv))
	}
	return resp, nil
}

func (s *service) Get(ctx context.Context, id string) (InvoiceResponse, error) {
	inv, err := s.ledger.Invoice(ctx, id)
	if err != nil {
		if errors.Is(err, apperror.ErrNotFound) {
			return InvoiceResponse{}, invoiceerrors.ErrInvoiceNotFound
		}
		return InvoiceResponse{}, err
	}
	return mapInvoiceResponse(inv), nil
}

// Create posts the raw inputs to the ledger and re-fetches the stored invoice.
// The response body of the POST is never trusted for derived totals.
func (s *service) Create(ctx context.Context, req CreateInvoiceRequest) (InvoiceResponse, error) {
	vatRate := s.defaultVAT
	if req.VATRate != nil {
		vatRate = money.FromFloat(*req.VATRate)
	}

	in := ledger.CreateInvoiceInput{
		CustomerID:  req.CustomerID,
		InvoiceDate: req.InvoiceDate,
		DueDate:     req.DueDate,
		VATRate:     vatRate.InexactFloat64(),
		Notes:       req.Notes,
		Items:       mapItemInputs(req.Items),
	}

	id, err := s.ledger.CreateInvoice(ctx, in)
	if err != nil {
		return InvoiceResponse{}, err
	}

	return s.Get(ctx, id)
}

func (s *service) Update(ctx context.Context, id string, req UpdateInvoiceRequest) (InvoiceResponse, error) {
	in := ledger.UpdateInvoiceInput{
		CustomerID:  req.CustomerID,
		InvoiceDate: req.InvoiceDate,
		DueDate:     req.DueDate,
		Notes:       req.Notes,
	}
	if req.Items != nil {
		in.Items = mapItemInputs(req.Items)
	}

	if err := s.ledger.UpdateInvoice(ctx, id, in); err != nil {
		if errors.Is(err, apperror.ErrNotFound) {
			return InvoiceResponse{}, invoiceerrors.ErrInvoiceNotFound
		}
		return InvoiceResponse{}, err
	}

	return s.Get(ctx, id)
}

func (s *service) Delete(ctx context.Context, id string) error {
	if err := s.ledger.DeleteInvoice(ctx, id); err != nil {
		if errors.Is(err, apperror.ErrNotFound) {
			return invoiceerrors.ErrInvoiceNotFound
		}
		return err
	}
	return nil
}

func (s *service) Restore(ctx context.Context, id string) (InvoiceResponse, error) {
	if err := s.ledger.RestoreInvoice(ctx, id); err != nil {
		if errors.Is(err, apperror.ErrNotFound) {
			// The ledger only restores invoices it considers deleted.
			return InvoiceResponse{}, invoiceerrors.ErrNotDeleted
		}
		return InvoiceResponse{}, err
	}

	return s.Get(ctx, id)
}

// AddPayment records an immutable payment then re-fetches so status follows
// the recomputed (amount_paid, total) partition rather than a local guess.
func (s *service) AddPayment(ctx context.Context, id string, req AddPaymentRequest) (InvoiceResponse, error) {
	if req.Amount <= 0 {
		return InvoiceResponse{}, invoiceerrors.ErrInvalidPaymentAmount
	}

	paymentDate := req.PaymentDate
	if paymentDate == "" {
		paymentDate = time.Now().UTC().Format("2006-01-02")
	}

	in := ledger.AddPaymentInput{
		ID:            uuid.New().String(),
		Amount:        req.Amount,
		PaymentDate:   paymentDate,
		PaymentMethod: req.PaymentMethod,
		Notes:         req.Notes,
	}

	if err := s.ledger.AddPayment(ctx, id, in); err != nil {
		if errors.Is(err, apperror.ErrNotFound) {
			return InvoiceResponse{}, invoiceerrors.ErrInvoiceNotFound
		}
		return InvoiceResponse{}, err
	}

	return s.Get(ctx, id)
}

func mapItemInputs(items []InvoiceItemRequest) []ledger.InvoiceItemInput {
	out := make([]ledger.InvoiceItemInput, 0, len(items))
	for _, it := range items {
		out = append(out, ledger.InvoiceItemInput{
			ProductID:   it.ProductID,
			ProductName: it.ProductName,
			Description: it.Description,
			Quantity:    it.Quantity,
			UnitPrice:   it.UnitPrice,
		})
	}
	return out
}

func mapInvoiceResponse(inv billing.Invoice) InvoiceResponse {
	resp := InvoiceResponse{
		ID:            inv.ID,
		InvoiceNumber: inv.InvoiceNumber,
		CustomerID:    inv.CustomerID,
		InvoiceDate:   inv.InvoiceDate,
		DueDate:       inv.DueDate,
		Items:         make([]InvoiceItemResponse, 0, len(inv.Items)),
		VATRate:       inv.VATRate.InexactFloat64(),
		Subtotal:      money.Round2(inv.Subtotal),
		VATAmount:     money.Round2(inv.VATAmount),
		Total:         money.Round2(inv.Total),
		AmountPaid:    money.Round2(inv.AmountPaid),
		Balance:       money.Round2(inv.Balance),
		Status:        inv.Status,
		Deleted:       inv.Deleted,
		DeletedBy:     inv.DeletedBy,
		Notes:         inv.Notes,
	}
	if inv.DeletedAt != nil {
		resp.DeletedAt = inv.DeletedAt.Format(time.RFC3339)
	}
	for _, it := range inv.Items {
		resp.Items = append(resp.Items, InvoiceItemResponse{
			ProductID:   it.ProductID,
			ProductName: it.ProductName,
			Description: it.Description,
			Quantity:    it.Quantity.InexactFloat64(),
			UnitPrice:   money.Round2(it.UnitPrice),
			Total:       money.Round2(it.Total),
		})
	}
	for _, p := range inv.Payments {
		resp.Payments = append(resp.Payments, PaymentResponse{
			ID:            p.ID,
			Amount:        money.Round2(p.Amount),
			PaymentDate:   p.PaymentDate,
			PaymentMethod: p.PaymentMethod,
			Notes:         p.Notes,
		})
	}
	return resp
}
