package invoice

type InvoiceItemRequest struct {
	ProductID   string  `json:"product_id"`
	ProductName string  `json:"product_name" binding:"required"`
	Description string  `json:"description"`
	Quantity    float64 `json:"quantity" binding:"required,gt=0"`
	UnitPrice   float64 `json:"unit_price" binding:"gte=0"`
}

type CreateInvoiceRequest struct {
	CustomerID  string               `json:"customer_id" binding:"required"`
	InvoiceDate string               `json:"invoice_date"`
	DueDate     string               `json:"due_date"`
	Items       []InvoiceItemRequest `json:"items" binding:"required,min=1,dive"`
	VATRate     *float64             `json:"vat_rate" binding:"omitempty,gte=0"`
	Notes       string               `json:"notes"`
}

type UpdateInvoiceRequest struct {
	CustomerID  string               `json:"customer_id"`
	InvoiceDate string               `json:"invoice_date"`
	DueDate     string               `json:"due_date"`
	Items       []InvoiceItemRequest `json:"items" binding:"omitempty,min=1,dive"`
	Notes       string               `json:"notes"`
}

type AddPaymentRequest struct {
	Amount        float64 `json:"amount" binding:"required,gt=0"`
	PaymentDate   string  `json:"payment_date"`
	PaymentMethod string  `json:"payment_method" binding:"required"`
	Notes         string  `json:"notes"`
}

type InvoiceItemResponse struct {
	ProductID   string  `json:"product_id,omitempty"`
	ProductName string  `json:"product_name"`
	Description string  `json:"description,omitempty"`
	Quantity    float64 `json:"quantity"`
	UnitPrice   float64 `json:"unit_price"`
	Total       float64 `json:"total"`
}

type PaymentResponse struct {
	ID            string  `json:"id"`
	Amount        float64 `json:"amount"`
	PaymentDate   string  `json:"payment_date"`
	PaymentMethod string  `json:"payment_method"`
	Notes         string  `json:"notes,omitempty"`
}

type InvoiceResponse struct {
	ID            string                `json:"id"`
	InvoiceNumber string                `json:"invoice_number"`
	CustomerID    string                `json:"customer_id"`
	InvoiceDate   string                `json:"invoice_date"`
	DueDate       string                `json:"due_date,omitempty"`
	Items         []InvoiceItemResponse `json:"items"`
	VATRate       float64               `json:"vat_rate"`
	Subtotal      float64               `json:"subtotal"`
	VATAmount     float64               `json:"vat_amount"`
	Total         float64               `json:"total"`
	AmountPaid    float64               `json:"amount_paid"`
	Balance       float64               `json:"balance"`
	Status        string                `json:"status"`
	Deleted       bool                  `json:"deleted"`
	DeletedAt     string                `json:"deleted_at,omitempty"`
	DeletedBy     string                `json:"deleted_by,omitempty"`
	Notes         string                `json:"notes,omitempty"`
	Payments      []PaymentResponse     `json:"payments,omitempty"`
}

type InvoiceTotalsResponse struct {
	Subtotal   float64 `json:"subtotal"`
	VATAmount  float64 `json:"vat_amount"`
	Total      float64 `json:"total"`
	AmountPaid float64 `json:"amount_paid"`
	Balance    float64 `json:"balance"`
	Count      int     `json:"count"`
}

type InvoiceListResponse struct {
	Invoices []InvoiceResponse     `json:"invoices"`
	Totals   InvoiceTotalsResponse `json:"totals"`
}
