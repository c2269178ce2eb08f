package payroll

// Responses round to 2 decimals here, at the presentation boundary. The
// decimals underneath stay at full precision and are never rebuilt from these
// rounded figures.

type EmployeePayrollResponse struct {
	EmployeeID string `json:"employee_id"`
	Name       string `json:"employee_name"`
	Position   string `json:"position,omitempty"`

	BasicSalary            float64 `json:"basic_salary"`
	Allowances             float64 `json:"allowances"`
	WorkingDays            int     `json:"working_days"`
	PresentDays            int     `json:"present_days"`
	LeaveDays              int     `json:"leave_days"`
	LateMinutes            int     `json:"late_minutes"`
	TotalAttendanceMinutes int     `json:"total_attendance_minutes"`
	FixedSalary            bool    `json:"fixed_salary"`

	SalaryPerMinute float64 `json:"salary_per_minute"`
	Earnings        float64 `json:"earnings"`
	ExtraPayment    float64 `json:"extra_payment"`
	LateDeduction   float64 `json:"late_deduction"`
	Advances        float64 `json:"advances"`
	LoanDeduction   float64 `json:"loan_deduction"`
	OtherDeductions float64 `json:"other_deductions"`
	GrossSalary     float64 `json:"gross_salary"`
	TotalDeductions float64 `json:"total_deductions"`
	NetSalary       float64 `json:"net_salary"`
}

type DetailedPayrollResponse struct {
	Month           string                    `json:"month"`
	Timestamp       string                    `json:"timestamp"`
	Employees       []EmployeePayrollResponse `json:"employees"`
	TotalGross      float64                   `json:"total_gross"`
	TotalAllowances float64                   `json:"total_allowances"`
	TotalDeductions float64                   `json:"total_deductions"`
	TotalNet        float64                   `json:"total_net"`
}

type LivePayrollResponse struct {
	Month           string  `json:"month"`
	TotalGross      float64 `json:"total_gross"`
	TotalAllowances float64 `json:"total_allowances"`
	TotalDeductions float64 `json:"total_deductions"`
	TotalNet        float64 `json:"total_net"`
	Timestamp       string  `json:"timestamp"`
}

type MonthSummaryResponse struct {
	Month         string  `json:"month"`
	TotalSalary   float64 `json:"total_salary"`
	EmployeeCount int     `json:"employee_count"`
}
