package events

import "time"

const WithdrawalCreatedTopic = "payroll.withdrawal.lifecycle.v1"

type WithdrawalCreatedEvent struct {
	EventType       string    `json:"event_type"`
	WithdrawalID    string    `json:"withdrawal_id"`
	EmployeeID      string    `json:"employee_id"`
	Currency        string    `json:"currency"`
	ConvertedAmount string    `json:"converted_amount"`
	WithdrawalDate  string    `json:"withdrawal_date"`
	CreatedBy       string    `json:"created_by"`
	OccurredAt      time.Time `json:"occurred_at"`
}
