package payroll

import "github.com/shopspring/decimal"

// AvailableBalanceResponse is the payload behind
// GET /employees/:id/available-balance, consumed as-is by the UI.
type AvailableBalanceResponse struct {
	EmployeeID       string          `json:"employeeId"`
	EmployeeName     string          `json:"employeeName"`
	BaseSalary       decimal.Decimal `json:"baseSalary"`
	SalaryDays       int             `json:"salaryDays"`
	DailyRate        decimal.Decimal `json:"dailyRate"`
	AvailableBalance decimal.Decimal `json:"availableBalance"`
	BalanceSource    string          `json:"balanceSource"`
	CanWithdraw      bool            `json:"canWithdraw"`
}
