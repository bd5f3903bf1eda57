package responses

// DashboardMetricsResponse aggregates portfolio-level figures for the
// landlord dashboard.
type DashboardMetricsResponse struct {
	TotalProperties     int64   `json:"total_properties"`
	TotalTenants        int64   `json:"total_tenants"`
	ActiveLeases        int64   `json:"active_leases"`
	OccupancyRate       float64 `json:"occupancy_rate"`
	OpenTickets         int64   `json:"open_tickets"`
	MonthlyRentRoll     float64 `json:"monthly_rent_roll"`
	CollectedThisPeriod float64 `json:"collected_this_period"`
	OutstandingAmount   float64 `json:"outstanding_amount"`
	Currency            string  `json:"currency"`
}
