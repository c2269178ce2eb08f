// Package ledger is the typed client for the external Ledger Service, the
// system of record for attendance, pay inputs, invoices and payments. This
// core consumes it read-mostly; mutations are fire-and-forget followed by a
// re-fetch, so derived totals always come from the latest source of truth.
package ledger

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"regexp"
	"time"

	"go-payledger/internal/billing"
	"go-payledger/internal/money"
	"go-payledger/internal/salary"
	"go-payledger/internal/shared/apperror"

	"golang.org/x/sync/singleflight"
)

var monthRe = regexp.MustCompile(`^\d{4}-(0[1-9]|1[0-2])$`)

// ValidMonth reports whether s is a YYYY-MM month identifier.
func ValidMonth(s string) bool {
	return monthRe.MatchString(s)
}

// DetailedMonth is the ledger's per-month payroll view: raw pay records plus
// the upstream's own aggregate figures, kept for reconciliation checks.
type DetailedMonth struct {
	Month     string
	Timestamp time.Time
	Employees []salary.EmployeePayRecord

	UpstreamTotalGross      float64
	UpstreamTotalAllowances float64
	UpstreamTotalDeductions float64
	UpstreamTotalNet        float64
}

type Client interface {
	LiveCurrentMonth(ctx context.Context) (salary.LiveTotals, error)
	DetailedMonth(ctx context.Context, month string) (DetailedMonth, error)
	Months(ctx context.Context) ([]salary.MonthSummary, error)

	Invoices(ctx context.Context, includeDeleted bool) ([]billing.Invoice, error)
	Invoice(ctx context.Context, id string) (billing.Invoice, error)
	CreateInvoice(ctx context.Context, in CreateInvoiceInput) (string, error)
	UpdateInvoice(ctx context.Context, id string, in UpdateInvoiceInput) error
	DeleteInvoice(ctx context.Context, id string) error
	RestoreInvoice(ctx context.Context, id string) error
	AddPayment(ctx context.Context, invoiceID string, in AddPaymentInput) error
}

type client struct {
	baseURL string
	http    *http.Client
	sf      *singleflight.Group
}

func NewClient(baseURL string, httpClient *http.Client) Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 10 * time.Second}
	}
	return &client{
		baseURL: baseURL,
		http:    httpClient,
		sf:      &singleflight.Group{},
	}
}

func (c *client) LiveCurrentMonth(ctx context.Context) (salary.LiveTotals, error) {
	var dto liveSnapshotDTO
	if err := c.getJSON(ctx, "/payroll/live-current-month", &dto); err != nil {
		return salary.LiveTotals{}, err
	}
	return mapLiveSnapshot(dto), nil
}

func (c *client) DetailedMonth(ctx context.Context, month string) (DetailedMonth, error) {
	if !ValidMonth(month) {
		return DetailedMonth{}, apperror.InvalidField("month")
	}

	// Concurrent requests for the same month collapse into one upstream call.
	v, err, _ := c.sf.Do("detailed:"+month, func() (any, error) {
		var dto detailedMonthDTO
		if err := c.getJSON(ctx, "/payroll/detailed/"+month, &dto); err != nil {
			return DetailedMonth{}, err
		}

		ts, tErr := time.Parse(time.RFC3339, dto.Timestamp)
		if tErr != nil {
			ts = time.Time{}
		}

		out := DetailedMonth{
			Month:                   dto.Month,
			Timestamp:               ts,
			Employees:               make([]salary.EmployeePayRecord, 0, len(dto.Employees)),
			UpstreamTotalGross:      dto.TotalGross,
			UpstreamTotalAllowances: dto.TotalAllowances,
			UpstreamTotalDeductions: dto.TotalDeductions,
			UpstreamTotalNet:        dto.TotalNet,
		}
		for _, emp := range dto.Employees {
			out.Employees = append(out.Employees, mapPayRecord(emp))
		}
		return out, nil
	})
	if err != nil {
		return DetailedMonth{}, err
	}
	return v.(DetailedMonth), nil
}

func (c *client) Months(ctx context.Context) ([]salary.MonthSummary, error) {
	var dtos []monthSummaryDTO
	if err := c.getJSON(ctx, "/payroll/months", &dtos); err != nil {
		return nil, err
	}

	months := make([]salary.MonthSummary, 0, len(dtos))
	for _, m := range dtos {
		months = append(months, salary.MonthSummary{
			Month:         m.Month,
			TotalSalary:   money.FromFloat(m.TotalSalary),
			EmployeeCount: m.EmployeeCount,
		})
	}
	return months, nil
}

func (c *client) Invoices(ctx context.Context, includeDeleted bool) ([]billing.Invoice, error) {
	path := "/invoices?include_deleted=" + url.QueryEscape(fmt.Sprintf("%t", includeDeleted))

	var dtos []invoiceDTO
	if err := c.getJSON(ctx, path, &dtos); err != nil {
		return nil, err
	}

	invoices := make([]billing.Invoice, 0, len(dtos))
	for _, dto := range dtos {
		invoices = append(invoices, mapInvoice(dto))
	}
	return invoices, nil
}

func (c *client) Invoice(ctx context.Context, id string) (billing.Invoice, error) {
	var dto invoiceDTO
	if err := c.getJSON(ctx, "/invoices/"+url.PathEscape(id), &dto); err != nil {
		return billing.Invoice{}, err
	}
	return mapInvoice(dto), nil
}

func (c *client) CreateInvoice(ctx context.Context, in CreateInvoiceInput) (string, error) {
	var created struct {
		ID string `json:"id"`
	}
	if err := c.send(ctx, http.MethodPost, "/invoices", in, &created); err != nil {
		return "", err
	}
	return created.ID, nil
}

func (c *client) UpdateInvoice(ctx context.Context, id string, in UpdateInvoiceInput) error {
	return c.send(ctx, http.MethodPut, "/invoices/"+url.PathEscape(id), in, nil)
}

func (c *client) DeleteInvoice(ctx context.Context, id string) error {
	return c.send(ctx, http.MethodDelete, "/invoices/"+url.PathEscape(id), nil, nil)
}

func (c *client) RestoreInvoice(ctx context.Context, id string) error {
	return c.send(ctx, http.MethodPut, "/invoices/"+url.PathEscape(id)+"/restore", nil, nil)
}

func (c *client) AddPayment(ctx context.Context, invoiceID string, in AddPaymentInput) error {
	return c.send(ctx, http.MethodPost, "/invoices/"+url.PathEscape(invoiceID)+"/payments", in, nil)
}

func (c *client) getJSON(ctx context.Context, path string, out any) error {
	return c.send(ctx, http.MethodGet, path, nil, out)
}

func (c *client) send(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return apperror.Wrap(err, apperror.CodeInternalError, "failed to encode request", http.StatusInternalServerError)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return apperror.Wrap(err, apperror.CodeInternalError, "failed to build request", http.StatusInternalServerError)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	res, err := c.http.Do(req)
	if err != nil {
		return apperror.FetchFailed(err)
	}
	defer res.Body.Close()

	if res.StatusCode == http.StatusNotFound {
		return apperror.ErrNotFound
	}
	if res.StatusCode >= http.StatusBadRequest {
		return apperror.FetchFailed(fmt.Errorf("ledger responded %d for %s %s", res.StatusCode, method, path))
	}

	if out != nil {
		if err := json.NewDecoder(res.Body).Decode(out); err != nil {
			return apperror.FetchFailed(fmt.Errorf("decoding %s %s: %w", method, path, err))
		}
	}
	return nil
}
