package dashboard

import "github.com/bissquit/auctionhub/internal/domain"

// FixtureStats are the admin headline figures.
func FixtureStats() domain.DashboardStats {
	return domain.DashboardStats{
		TotalSales:   1234567,
		SalesGrowth:  12.5,
		TotalOrders:  8452,
		OrdersGrowth: -3.2,
		ActiveUsers:  2841,
		UsersGrowth:  8.1,
	}
}

// FixtureActivity covers the last eight months.
func FixtureActivity() []domain.ActivityPoint {
	return []domain.ActivityPoint{
		{Date: "Jan", Sales: 4000, Orders: 2400, Visitors: 2400},
		{Date: "Feb", Sales: 3000, Orders: 1398, Visitors: 2210},
		{Date: "Mar", Sales: 2000, Orders: 9800, Visitors: 2290},
		{Date: "Apr", Sales: 2780, Orders: 3908, Visitors: 2000},
		{Date: "May", Sales: 1890, Orders: 4800, Visitors: 2181},
		{Date: "Jun", Sales: 2390, Orders: 3800, Visitors: 2500},
		{Date: "Jul", Sales: 3490, Orders: 4300, Visitors: 2100},
		{Date: "Aug", Sales: 4200, Orders: 5100, Visitors: 3100},
	}
}

// FixtureTrafficSources are channel shares in percent.
func FixtureTrafficSources() []domain.TrafficSource {
	return []domain.TrafficSource{
		{Name: "Direct", Value: 35, Color: "#8884d8"},
		{Name: "Social", Value: 25, Color: "#82ca9d"},
		{Name: "Search", Value: 30, Color: "#ffc658"},
		{Name: "Referral", Value: 10, Color: "#ff8042"},
	}
}

// FixtureRecentUsers are the latest registrations.
func FixtureRecentUsers() []domain.RecentUser {
	return []domain.RecentUser{
		{Name: "Jane Smith", Avatar: "https://randomuser.me/api/portraits/women/2.jpg", Registered: "Registered 2 days ago", Badge: "Seller"},
		{Name: "Michael Johnson", Avatar: "https://randomuser.me/api/portraits/men/3.jpg", Registered: "Registered 3 days ago", Badge: "Pending"},
		{Name: "Emily Wilson", Avatar: "https://randomuser.me/api/portraits/women/4.jpg", Registered: "Registered 1 week ago", Badge: "Buyer"},
	}
}

// FixtureSellerStats are the seller headline figures.
func FixtureSellerStats() domain.SellerStats {
	return domain.SellerStats{
		TotalItems:     12,
		ActiveAuctions: 5,
		TotalSales:     25000,
		TotalBidders:   45,
	}
}
