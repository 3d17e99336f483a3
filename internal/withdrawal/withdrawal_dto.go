package withdrawal

import "github.com/shopspring/decimal"

type CreateWithdrawalRequest struct {
	EmployeeID      string           `json:"employeeId" binding:"required"`
	Amount          decimal.Decimal  `json:"amount" binding:"required"`
	Currency        string           `json:"currency"`
	ConvertedAmount *decimal.Decimal `json:"convertedAmount"`
	ExchangeRate    *decimal.Decimal `json:"exchangeRate"`
	RateDate        *string          `json:"rateDate"`
	WithdrawalDate  string           `json:"withdrawalDate" binding:"required"`
	Notes           *string          `json:"notes"`
	CreatedBy       string           `json:"createdBy" binding:"required"`
}

// UpdateWithdrawalRequest is a partial update: every field defaults to
// its existing value when omitted.
type UpdateWithdrawalRequest struct {
	Amount          *decimal.Decimal `json:"amount"`
	Currency        *string          `json:"currency"`
	ConvertedAmount *decimal.Decimal `json:"convertedAmount"`
	ExchangeRate    *decimal.Decimal `json:"exchangeRate"`
	RateDate        *string          `json:"rateDate"`
	WithdrawalDate  *string          `json:"withdrawalDate"`
	Notes           *string          `json:"notes"`
}

type ListWithdrawalsFilterRequest struct {
	EmployeeID string `form:"employeeId"`
	StartDate  string `form:"startDate"`
	EndDate    string `form:"endDate"`
	Page       int    `form:"page"`
	Limit      int    `form:"limit"`
}

type WithdrawalResponse struct {
	ID              string           `json:"id"`
	EmployeeID      string           `json:"employeeId"`
	EmployeeName    string           `json:"employeeName,omitempty"`
	Amount          decimal.Decimal  `json:"amount"`
	Currency        string           `json:"currency"`
	ConvertedAmount decimal.Decimal  `json:"convertedAmount"`
	ExchangeRate    *decimal.Decimal `json:"exchangeRate,omitempty"`
	RateDate        *string          `json:"rateDate,omitempty"`
	WithdrawalDate  string           `json:"withdrawalDate"`
	Notes           *string          `json:"notes,omitempty"`
	CreatedBy       string           `json:"createdBy"`
	CreatedByName   string           `json:"createdByName,omitempty"`
	CreatedAt       string           `json:"createdAt"`
	Warning         string           `json:"warning,omitempty"`
}
