package order

// QueryOrdersModel represents filter parameters for querying orders.
type QueryOrdersModel struct {
	Statuses []string `json:"estados,omitempty"`
}
