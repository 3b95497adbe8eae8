package domain

// DashboardStats are the headline figures on the admin dashboard.
// Growth values are percentages relative to the previous month.
type DashboardStats struct {
	TotalSales   int64   `json:"total_sales"`
	SalesGrowth  float64 `json:"sales_growth"`
	TotalOrders  int64   `json:"total_orders"`
	OrdersGrowth float64 `json:"orders_growth"`
	ActiveUsers  int64   `json:"active_users"`
	UsersGrowth  float64 `json:"users_growth"`
}

// ActivityPoint is one sample of the visit and sales series.
type ActivityPoint struct {
	Date     string `json:"date"`
	Sales    int64  `json:"sales"`
	Orders   int64  `json:"orders"`
	Visitors int64  `json:"visitors"`
}

// TrafficSource is one channel's share of traffic, in percent.
type TrafficSource struct {
	Name  string  `json:"name"`
	Value float64 `json:"value"`
	Color string  `json:"color"`
}

// RecentUser is a registration shown on the admin dashboard.
type RecentUser struct {
	Name       string `json:"name"`
	Avatar     string `json:"avatar"`
	Registered string `json:"registered"`
	Badge      string `json:"badge"`
}

// SellerStats are the headline figures on the seller dashboard.
type SellerStats struct {
	TotalItems     int   `json:"total_items"`
	ActiveAuctions int   `json:"active_auctions"`
	TotalSales     int64 `json:"total_sales"`
	TotalBidders   int   `json:"total_bidders"`
}
