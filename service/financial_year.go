package service

import (
	"fmt"
	"regexp"
	"strconv"
	"time"

	"freightdesk/apperr"
	"freightdesk/models"
)

var yearPattern = regexp.MustCompile(`\d{4}`)

// FinancialYear is the Indian fiscal year running 1 April to 31 March.
type FinancialYear struct {
	StartYear int
}

// ParseFinancialYear reads the first four-digit year in s as the start year,
// so "FY 2025-26", "2025-2026" and "2025" are all FY 2025-26.
func ParseFinancialYear(s string) (FinancialYear, error) {
	m := yearPattern.FindString(s)
	if m == "" {
		return FinancialYear{}, apperr.Validation("fy", "no start year in %q", s)
	}
	year, _ := strconv.Atoi(m)
	return FinancialYear{StartYear: year}, nil
}

// FinancialYearOf returns the financial year containing d.
func FinancialYearOf(d time.Time) FinancialYear {
	if d.Month() < time.April {
		return FinancialYear{StartYear: d.Year() - 1}
	}
	return FinancialYear{StartYear: d.Year()}
}

func (fy FinancialYear) Start() models.Date {
	return models.NewDate(fy.StartYear, time.April, 1)
}

func (fy FinancialYear) End() models.Date {
	return models.NewDate(fy.StartYear+1, time.March, 31)
}

// Contains reports whether d falls inside the year, both ends inclusive.
func (fy FinancialYear) Contains(d models.Date) bool {
	return !d.Before(fy.Start().Time) && !d.After(fy.End().Time)
}

func (fy FinancialYear) String() string {
	return fmt.Sprintf("FY %d-%02d", fy.StartYear, (fy.StartYear+1)%100)
}
