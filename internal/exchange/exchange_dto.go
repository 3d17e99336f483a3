package exchange

import "github.com/shopspring/decimal"

type CreateDollarRateRequest struct {
	Date string          `json:"date" binding:"required"`
	Rate decimal.Decimal `json:"rate" binding:"required"`
}

type ResolveRateQuery struct {
	Date     string `form:"date" binding:"required"`
	Amount   string `form:"amount"`
	Currency string `form:"currency"`
}

type DollarRateResponse struct {
	ID        string          `json:"id"`
	Date      string          `json:"date"`
	Rate      decimal.Decimal `json:"rate"`
	EnteredBy string          `json:"enteredBy"`
}

type ConversionResponse struct {
	OriginalAmount   decimal.Decimal  `json:"originalAmount"`
	OriginalCurrency string           `json:"originalCurrency"`
	ConvertedAmount  decimal.Decimal  `json:"convertedAmount"`
	ExchangeRate     *decimal.Decimal `json:"exchangeRate,omitempty"`
	RateDate         *string          `json:"rateDate,omitempty"`
	Warning          string           `json:"warning,omitempty"`
}
