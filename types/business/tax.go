package business

// StateTaxRate maps a state to its blended GST percentage
type StateTaxRate struct {
	StateName      string  `json:"state_name"`
	GSTRatePercent float64 `json:"gst_rate_percent"`
	Pincode        string  `json:"pincode,omitempty"`
}
