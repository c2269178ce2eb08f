package ledger_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"

	"go-payledger/internal/billing"
	"go-payledger/internal/ledger"
	"go-payledger/internal/shared/apperror"

	"github.com/stretchr/testify/assert"
)

func TestValidMonth(t *testing.T) {
	assert.True(t, ledger.ValidMonth("2026-08"))
	assert.True(t, ledger.ValidMonth("1999-12"))
	assert.False(t, ledger.ValidMonth("2026-13"))
	assert.False(t, ledger.ValidMonth("2026-8"))
	assert.False(t, ledger.ValidMonth("26-08"))
	assert.False(t, ledger.ValidMonth("2026-08-01"))
}

func TestLiveCurrentMonthParsesDecimals(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/payroll/live-current-month", r.URL.Path)
		json.NewEncoder(w).Encode(map[string]any{
			"month":            "2026-08",
			"total_gross":      18750.0,
			"total_allowances": 0.0,
			"total_deductions": 562.5,
			"total_net":        18187.5,
			"timestamp":        "2026-08-28T10:15:00Z",
		})
	}))
	defer srv.Close()

	c := ledger.NewClient(srv.URL, srv.Client())
	snap, err := c.LiveCurrentMonth(context.Background())

	assert.NoError(t, err)
	assert.Equal(t, "2026-08", snap.Month)
	assert.InDelta(t, 18187.5, snap.TotalNet.InexactFloat64(), 0.0001)
	assert.Equal(t, 2026, snap.Timestamp.Year())
}

func TestDetailedMonthRejectsBadMonth(t *testing.T) {
	c := ledger.NewClient("http://ledger.invalid", nil)

	_, err := c.DetailedMonth(context.Background(), "not-a-month")

	var appErr *apperror.AppError
	assert.ErrorAs(t, err, &appErr)
	assert.Equal(t, apperror.CodeValidation, appErr.Code)
}

func TestDetailedMonthCollapsesConcurrentFetches(t *testing.T) {
	var calls int32
	gate := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		<-gate
		json.NewEncoder(w).Encode(map[string]any{
			"month":     "2026-07",
			"timestamp": "2026-08-01T00:00:00Z",
			"employees": []any{},
		})
	}))
	defer srv.Close()

	c := ledger.NewClient(srv.URL, srv.Client())

	var wg sync.WaitGroup
	for i := 0; i < 5; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := c.DetailedMonth(context.Background(), "2026-07")
			assert.NoError(t, err)
		}()
	}
	close(gate)
	wg.Wait()

	assert.Equal(t, int32(1), atomic.LoadInt32(&calls), "identical month fetches should collapse")
}

func TestInvoicesRecomputeTotalsLocally(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "true", r.URL.Query().Get("include_deleted"))
		json.NewEncoder(w).Encode([]map[string]any{
			{
				"id":             "inv-1",
				"invoice_number": "25JAN_MAIN_00001",
				"items": []map[string]any{
					{"product_name": "Widget", "quantity": 2.0, "unit_price": 500.0},
					{"product_name": "Gadget", "quantity": 1.0, "unit_price": 1000.0},
				},
				"vat_rate":    18.0,
				"amount_paid": 400.0,
				// Upstream drifted; the client must not trust this.
				"status":   "paid",
				"total":    9999.0,
				"subtotal": 9999.0,
			},
		})
	}))
	defer srv.Close()

	c := ledger.NewClient(srv.URL, srv.Client())
	invs, err := c.Invoices(context.Background(), true)

	assert.NoError(t, err)
	assert.Len(t, invs, 1)
	assert.Equal(t, billing.StatusPartial, invs[0].Status)
	assert.InDelta(t, 2360, invs[0].Total.InexactFloat64(), 0.0001)
	assert.InDelta(t, 1960, invs[0].Balance.InexactFloat64(), 0.0001)
}

func TestInvoiceDetailSumsPayments(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{
			"id": "inv-1",
			"items": []map[string]any{
				{"product_name": "Widget", "quantity": 2.0, "unit_price": 500.0},
				{"product_name": "Gadget", "quantity": 1.0, "unit_price": 1000.0},
			},
			"vat_rate":    18.0,
			"amount_paid": 0.0, // stale
			"payments": []map[string]any{
				{"id": "p1", "amount": 1000.0, "payment_method": "cash"},
				{"id": "p2", "amount": 1360.0, "payment_method": "bank"},
			},
		})
	}))
	defer srv.Close()

	c := ledger.NewClient(srv.URL, srv.Client())
	inv, err := c.Invoice(context.Background(), "inv-1")

	assert.NoError(t, err)
	assert.Equal(t, billing.StatusPaid, inv.Status)
	assert.InDelta(t, 2360, inv.AmountPaid.InexactFloat64(), 0.0001)
	assert.True(t, inv.Balance.IsZero())
}

func TestReadFailureWrapsAsFetchFailed(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	c := ledger.NewClient(srv.URL, srv.Client())
	_, err := c.LiveCurrentMonth(context.Background())

	var appErr *apperror.AppError
	assert.ErrorAs(t, err, &appErr)
	assert.Equal(t, apperror.CodeFetchFailed, appErr.Code)
}

func TestNotFoundMapsToNotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	c := ledger.NewClient(srv.URL, srv.Client())
	_, err := c.Invoice(context.Background(), "ghost")

	assert.True(t, errors.Is(err, apperror.ErrNotFound))
}

func TestCreateInvoiceReturnsIDOnly(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		json.NewEncoder(w).Encode(map[string]any{"id": "inv-9", "total": 123.0})
	}))
	defer srv.Close()

	c := ledger.NewClient(srv.URL, srv.Client())
	id, err := c.CreateInvoice(context.Background(), ledger.CreateInvoiceInput{
		CustomerID: "cust-1",
		Items: []ledger.InvoiceItemInput{
			{ProductName: "Widget", Quantity: 1, UnitPrice: 10},
		},
		VATRate: 18,
	})

	assert.NoError(t, err)
	assert.Equal(t, "inv-9", id)
}
