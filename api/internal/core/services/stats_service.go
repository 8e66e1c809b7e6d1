package services

import (
	"context"
	"fmt"
	"time"

	"muebleria/api/internal/core/domain"
)

const recentInquiriesLimit = 5

// StatsService assembles the aggregate counts for the admin dashboard.
// Read-only, restricted handle underneath.
type StatsService struct {
	inquiries domain.InquiryRepository
	catalog   domain.CatalogRepository
}

func NewStatsService(inquiries domain.InquiryRepository, catalog domain.CatalogRepository) *StatsService {
	return &StatsService{inquiries: inquiries, catalog: catalog}
}

func (s *StatsService) Dashboard(ctx context.Context) (*domain.DashboardStats, error) {
	totalProducts, err := s.catalog.CountProducts(ctx)
	if err != nil {
		return nil, fmt.Errorf("counting products: %w", err)
	}

	totalInquiries, err := s.inquiries.CountAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("counting inquiries: %w", err)
	}

	// "Today" means the local calendar date, not the last 24h or UTC.
	now := time.Now()
	startOfDay := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	today, err := s.inquiries.CountSince(ctx, startOfDay)
	if err != nil {
		return nil, fmt.Errorf("counting today's inquiries: %w", err)
	}

	recent, err := s.inquiries.ListRecent(ctx, recentInquiriesLimit)
	if err != nil {
		return nil, fmt.Errorf("listing recent inquiries: %w", err)
	}

	return &domain.DashboardStats{
		TotalProducts:   totalProducts,
		TotalInquiries:  totalInquiries,
		InquiriesToday:  today,
		RecentInquiries: recent,
	}, nil
}
