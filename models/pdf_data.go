package models

type LorryReceiptPDFData struct {
	Company    *CompanyProfile
	LR         *LorryReceipt
	Consignor  *Client
	Consignee  *Client
	Freight    FreightBreakdown
	Contacts   string // formatted mobile numbers
	Date       string
	TotalWords string
	CopyTitle  string
	Packages   int
}

type InvoicePDFData struct {
	Company    *CompanyProfile
	Invoice    *Invoice
	Client     *Client
	Contacts   string
	Date       string
	TotalWords string
}

type LedgerPDFData struct {
	Company  *CompanyProfile
	Client   *Client
	Ledger   *Ledger
	Contacts string
}
