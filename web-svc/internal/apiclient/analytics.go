package apiclient

import (
	"context"
	"net/http"

	"orderflow/web-svc/internal/domain"
)

func (c *Client) Analytics(ctx context.Context) (domain.Analytics, error) {
	var analytics domain.Analytics
	err := c.do(ctx, call{
		method:   http.MethodGet,
		path:     "/analytics/",
		fallback: "Failed to fetch analytics",
	}, &analytics)
	return analytics, err
}

func (c *Client) WeeklySales(ctx context.Context) (domain.WeeklySales, error) {
	var sales domain.WeeklySales
	err := c.do(ctx, call{
		method:   http.MethodGet,
		path:     "/analytics/weekly-sales/",
		fallback: "Failed to fetch weekly sales",
	}, &sales)
	return sales, err
}

func (c *Client) MenuPopularity(ctx context.Context) ([]domain.PopularItem, error) {
	items := []domain.PopularItem{}
	err := c.do(ctx, call{
		method:   http.MethodGet,
		path:     "/analytics/menu-popularity/",
		fallback: "Failed to fetch menu popularity",
	}, &items)
	return items, err
}
