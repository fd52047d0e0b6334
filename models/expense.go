package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type ExpenseCategory string

const (
	ExpenseFuel        ExpenseCategory = "Fuel"
	ExpenseSalary      ExpenseCategory = "Salary"
	ExpenseOfficeRent  ExpenseCategory = "Office Rent"
	ExpenseMaintenance ExpenseCategory = "Maintenance"
	ExpenseToll        ExpenseCategory = "Toll"
	ExpenseOther       ExpenseCategory = "Other"
)

func (c ExpenseCategory) Valid() bool {
	switch c {
	case ExpenseFuel, ExpenseSalary, ExpenseOfficeRent, ExpenseMaintenance, ExpenseToll, ExpenseOther:
		return true
	}
	return false
}

type Expense struct {
	ID            string          `json:"id"`
	Date          Date            `json:"date"`
	Category      ExpenseCategory `json:"category"`
	Description   string          `json:"description"`
	Amount        decimal.Decimal `json:"amount"`
	VehicleNumber string          `json:"vehicle_number,omitempty"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     *time.Time      `json:"updated_at,omitempty"`
}
