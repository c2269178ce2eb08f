package ledger

// Wire shapes for the Ledger Service REST contract. Currency travels as
// unrounded floats and is converted to decimal at the parse boundary.

type employeePayRecordDTO struct {
	EmployeeID             string  `json:"employee_id"`
	EmployeeName           string  `json:"employee_name"`
	Position               string  `json:"position"`
	BasicSalary            float64 `json:"basic_salary"`
	Allowances             float64 `json:"allowances"`
	WorkingDays            int     `json:"working_days"`
	PresentDays            int     `json:"present_days"`
	LeaveDays              int     `json:"leave_days"`
	LateMinutes            int     `json:"late_minutes"`
	TotalAttendanceMinutes int     `json:"total_attendance_minutes"`
	ExtraPayment           float64 `json:"extra_payment"`
	Advances               float64 `json:"advances"`
	LoanDeduction          float64 `json:"loan_deduction"`
	OtherDeductions        float64 `json:"other_deductions"`
	FixedSalary            bool    `json:"fixed_salary"`
}

type liveSnapshotDTO struct {
	Month           string  `json:"month"`
	TotalGross      float64 `json:"total_gross"`
	TotalAllowances float64 `json:"total_allowances"`
	TotalDeductions float64 `json:"total_deductions"`
	TotalNet        float64 `json:"total_net"`
	Timestamp       string  `json:"timestamp"`
}

type detailedMonthDTO struct {
	Month           string                 `json:"month"`
	Timestamp       string                 `json:"timestamp"`
	Employees       []employeePayRecordDTO `json:"employees"`
	TotalGross      float64                `json:"total_gross"`
	TotalAllowances float64                `json:"total_allowances"`
	TotalDeductions float64                `json:"total_deductions"`
	TotalNet        float64                `json:"total_net"`
}

type monthSummaryDTO struct {
	Month         string  `json:"month"`
	TotalSalary   float64 `json:"total_salary"`
	EmployeeCount int     `json:"employee_count"`
}

type invoiceItemDTO struct {
	ProductID   string  `json:"product_id,omitempty"`
	ProductName string  `json:"product_name"`
	Description string  `json:"description,omitempty"`
	Quantity    float64 `json:"quantity"`
	UnitPrice   float64 `json:"unit_price"`
	Total       float64 `json:"total"`
}

type paymentDTO struct {
	ID            string  `json:"id"`
	InvoiceID     string  `json:"invoice_id"`
	Amount        float64 `json:"amount"`
	PaymentDate   string  `json:"payment_date"`
	PaymentMethod string  `json:"payment_method"`
	Notes         string  `json:"notes,omitempty"`
}

type invoiceDTO struct {
	ID            string           `json:"id"`
	InvoiceNumber string           `json:"invoice_number"`
	CustomerID    string           `json:"customer_id"`
	InvoiceDate   string           `json:"invoice_date"`
	DueDate       string           `json:"due_date,omitempty"`
	Items         []invoiceItemDTO `json:"items"`
	VATRate       float64          `json:"vat_rate"`
	Subtotal      float64          `json:"subtotal"`
	VATAmount     float64          `json:"vat_amount"`
	Total         float64          `json:"total"`
	AmountPaid    float64          `json:"amount_paid"`
	Status        string           `json:"status"`
	Deleted       bool             `json:"deleted"`
	DeletedAt     string           `json:"deleted_at,omitempty"`
	DeletedBy     string           `json:"deleted_by,omitempty"`
	Notes         string           `json:"notes,omitempty"`
	Payments      []paymentDTO     `json:"payments,omitempty"`
}

// CreateInvoiceInput is the outbound payload for POST /invoices. Totals are
// intentionally absent: the ledger derives its own and this core re-fetches.
type CreateInvoiceInput struct {
	CustomerID  string             `json:"customer_id"`
	InvoiceDate string             `json:"invoice_date,omitempty"`
	DueDate     string             `json:"due_date,omitempty"`
	Items       []InvoiceItemInput `json:"items"`
	VATRate     float64            `json:"vat_rate"`
	Notes       string             `json:"notes,omitempty"`
}

type InvoiceItemInput struct {
	ProductID   string  `json:"product_id,omitempty"`
	ProductName string  `json:"product_name"`
	Description string  `json:"description,omitempty"`
	Quantity    float64 `json:"quantity"`
	UnitPrice   float64 `json:"unit_price"`
}

// UpdateInvoiceInput carries metadata edits and optional item replacement.
type UpdateInvoiceInput struct {
	CustomerID  string             `json:"customer_id,omitempty"`
	InvoiceDate string             `json:"invoice_date,omitempty"`
	DueDate     string             `json:"due_date,omitempty"`
	Items       []InvoiceItemInput `json:"items,omitempty"`
	Notes       string             `json:"notes,omitempty"`
}

type AddPaymentInput struct {
	ID            string  `json:"id"`
	Amount        float64 `json:"amount"`
	PaymentDate   string  `json:"payment_date,omitempty"`
	PaymentMethod string  `json:"payment_method"`
	Notes         string  `json:"notes,omitempty"`
}
