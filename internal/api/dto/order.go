package dto

type OrderLineResponse struct {
	LineID     int64    `json:"line_id"`
	InvoiceNo  string   `json:"invoice_no"`
	ItemCode   string   `json:"item_code"`
	Qty        int      `json:"qty"`
	UnitType   string   `json:"unit_type"`
	Location   string   `json:"location"`
	Zone       string   `json:"zone"`
	Corridor   string   `json:"corridor"`
	ExpMinutes *float64 `json:"exp_minutes"`
}

type ListOrderLinesResponse struct {
	InvoiceNo string              `json:"invoice_no"`
	Lines     []OrderLineResponse `json:"lines"`
}
