package business

// CompanySettings represents the company billing settings exposed by the
// settings collaborator. States take precedence over DefaultGSTRate when
// resolving a bill's tax rate.
type CompanySettings struct {
	States         []StateTaxRate `json:"states"`
	DefaultGSTRate float64        `json:"default_gst_rate"`
}
