// Package dashboard builds the admin and seller dashboards from fixture data.
package dashboard

import (
	"github.com/bissquit/auctionhub/internal/domain"
	"github.com/bissquit/auctionhub/internal/pkg/format"
)

// Chart dimensions used by the admin page.
const (
	activityWidth   = 640
	activityHeight  = 320
	activityPadding = 32

	donutSize    = 250
	donutInner   = 60
	donutOuter   = 80
	donutPadding = 5
)

// StatCard is one headline figure with its change against last month.
type StatCard struct {
	Title    string  `json:"title"`
	Value    string  `json:"value"`
	Change   float64 `json:"change"`
	Delta    string  `json:"delta"`
	Trend    string  `json:"trend"`
	Positive bool    `json:"positive"`
	Class    string  `json:"class"`
}

// NewStatCard formats a figure and its percentage change.
func NewStatCard(title, value string, change float64, class string) StatCard {
	return StatCard{
		Title:    title,
		Value:    value,
		Change:   change,
		Delta:    format.Change(change),
		Trend:    format.Trend(change),
		Positive: change >= 0,
		Class:    class,
	}
}

// Admin is the admin dashboard view.
type Admin struct {
	Stats       domain.DashboardStats  `json:"stats"`
	Cards       []StatCard             `json:"cards"`
	Activity    []domain.ActivityPoint `json:"activity"`
	Traffic     []domain.TrafficSource `json:"traffic_sources"`
	RecentUsers []domain.RecentUser    `json:"recent_users"`

	ActivityChart AreaChart `json:"-"`
	TrafficChart  Donut     `json:"-"`
}

// Seller is the seller dashboard view.
type Seller struct {
	Stats domain.SellerStats `json:"stats"`
	Cards []StatCard         `json:"cards"`
}

// Source supplies dashboard data.
type Source interface {
	Stats() domain.DashboardStats
	Activity() []domain.ActivityPoint
	TrafficSources() []domain.TrafficSource
	RecentUsers() []domain.RecentUser
	SellerStats() domain.SellerStats
}

// Fixtures serves the built-in demo figures.
type Fixtures struct{}

func (Fixtures) Stats() domain.DashboardStats           { return FixtureStats() }
func (Fixtures) Activity() []domain.ActivityPoint       { return FixtureActivity() }
func (Fixtures) TrafficSources() []domain.TrafficSource { return FixtureTrafficSources() }
func (Fixtures) RecentUsers() []domain.RecentUser       { return FixtureRecentUsers() }
func (Fixtures) SellerStats() domain.SellerStats        { return FixtureSellerStats() }

// Service assembles dashboard views.
type Service struct {
	source Source
}

// NewService creates a dashboard service.
func NewService(source Source) *Service {
	return &Service{source: source}
}

// Admin builds the admin dashboard.
func (s *Service) Admin() Admin {
	stats := s.source.Stats()
	activity := s.source.Activity()
	traffic := s.source.TrafficSources()

	return Admin{
		Stats: stats,
		Cards: []StatCard{
			NewStatCard("Weekly Sales", format.Currency(stats.TotalSales), stats.SalesGrowth, "sales-card"),
			NewStatCard("Weekly Orders", format.Number(stats.TotalOrders), stats.OrdersGrowth, "orders-card"),
			NewStatCard("Visitors Online", format.Number(stats.ActiveUsers), stats.UsersGrowth, "visitors-card"),
		},
		Activity:      activity,
		Traffic:       traffic,
		RecentUsers:   s.source.RecentUsers(),
		ActivityChart: NewAreaChart(activity, activityWidth, activityHeight, activityPadding),
		TrafficChart:  NewDonut(traffic, donutSize, donutInner, donutOuter, donutPadding),
	}
}

// Seller builds the seller dashboard.
func (s *Service) Seller() Seller {
	stats := s.source.SellerStats()
	return Seller{
		Stats: stats,
		Cards: []StatCard{
			{Title: "Total Items", Value: format.Number(int64(stats.TotalItems))},
			{Title: "Active Auctions", Value: format.Number(int64(stats.ActiveAuctions))},
			{Title: "Total Sales", Value: format.Currency(stats.TotalSales)},
			{Title: "Total Bidders", Value: format.Number(int64(stats.TotalBidders))},
		},
	}
}
