package salary

import (
	"github.com/shopspring/decimal"
)

// Line is one paid work-log line item. Amount = okParts * rate;
// rejections are never paid.
type Line struct {
	JobName    string          `json:"job_name,omitempty"`
	PartType   string          `json:"part_type"`
	ProductKey string          `json:"product_key"`
	TotalParts int             `json:"total_parts"`
	Rejection  int             `json:"rejection"`
	OkParts    int             `json:"ok_parts"`
	Rate       decimal.Decimal `json:"rate"`
	Amount     decimal.Decimal `json:"amount"`
}

// DailyLog groups the line items of one calendar day in entry creation
// order.
type DailyLog struct {
	Date     string          `json:"date"`
	Logs     []Line          `json:"logs"`
	DayTotal decimal.Decimal `json:"day_total"`
}

// Report is the assembled salary report for one employee-month.
// NetPayable = MonthTotal - UpadAmount - LoanDeduction.
type Report struct {
	EmployeeID     string          `json:"employee_id"`
	EmployeeName   string          `json:"employee_name"`
	EmploymentType string          `json:"employment_type"`
	Month          int             `json:"month"`
	Year           int             `json:"year"`
	DailyLogs      []DailyLog      `json:"daily_logs"`
	MonthTotal     decimal.Decimal `json:"month_total"`
	UpadAmount     decimal.Decimal `json:"upad_amount"`
	LoanDeduction  decimal.Decimal `json:"loan_deduction"`
	NetPayable     decimal.Decimal `json:"net_payable"`
}
