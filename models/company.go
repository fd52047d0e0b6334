package models

import "time"

type MobileEntry struct {
	Number string `json:"number"`
	Label  string `json:"label"`
}

// CompanyProfile is the transporter's own letterhead and bank details.
type CompanyProfile struct {
	CompanyName string        `json:"company_name"`
	Address     string        `json:"address"`
	City        string        `json:"city"`
	State       string        `json:"state"`
	Pincode     string        `json:"pincode"`
	GSTIN       string        `json:"gstin"`
	Footnote    string        `json:"footnote"`
	Mobile      []MobileEntry `json:"mobile"`
	BankDetails *BankDetails  `json:"bank_details,omitempty"`
	UpdatedAt   time.Time     `json:"updated_at"`
}
