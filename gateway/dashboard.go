package gateway

import (
	"context"

	"github.com/techcomputer/portal/core/dashboard"
)

type dashboardRepository struct {
	c *Client
}

var _ dashboard.Repository = (*dashboardRepository)(nil) // interface compliance check

func NewDashboardRepository(c *Client) dashboard.Repository {
	return &dashboardRepository{c: c}
}

func (repo *dashboardRepository) GetStudentHome(ctx context.Context) (dashboard.StudentHome, error) {
	var home dashboard.StudentHome
	err := repo.c.get(ctx, "/dashboard/student", nil, &home)
	return home, err
}

func (repo *dashboardRepository) GetAdminStats(ctx context.Context) (dashboard.AdminStats, error) {
	var stats dashboard.AdminStats
	err := repo.c.get(ctx, "/dashboard/admin/stats", nil, &stats)
	return stats, err
}

func (repo *dashboardRepository) GetReceipt(ctx context.Context, paymentID string) (dashboard.Receipt, error) {
	var receipt dashboard.Receipt
	err := repo.c.get(ctx, "/dashboard/receipt/"+paymentID, nil, &receipt)
	return receipt, err
}
