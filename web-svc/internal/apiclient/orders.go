package apiclient

import (
	"context"
	"net/http"
	"net/url"

	"orderflow/web-svc/internal/domain"
)

func (c *Client) ListOrders(ctx context.Context) ([]domain.Order, error) {
	orders := []domain.Order{}
	err := c.do(ctx, call{
		method:   http.MethodGet,
		path:     "/order/orders/",
		fallback: "Failed to fetch orders",
	}, &orders)
	return orders, err
}

// CreateOrder sends only item identifiers; the backend prices the order itself.
func (c *Client) CreateOrder(ctx context.Context, itemIDs []int) (domain.CreatedOrder, error) {
	var created domain.CreatedOrder

	if itemIDs == nil {
		itemIDs = []int{}
	}
	body, err := jsonBody(map[string][]int{"items": itemIDs})
	if err != nil {
		return created, err
	}

	err = c.do(ctx, call{
		method:      http.MethodPost,
		path:        "/order/create/",
		body:        body,
		contentType: "application/json",
		fallback:    "Failed to create order",
	}, &created)
	return created, err
}

func (c *Client) UpdateOrderStatus(ctx context.Context, orderNumber string, status domain.OrderStatus) error {
	body, err := jsonBody(map[string]domain.OrderStatus{"status": status})
	if err != nil {
		return err
	}

	return c.do(ctx, call{
		method:      http.MethodPatch,
		path:        "/order/update-status/" + url.PathEscape(orderNumber) + "/",
		body:        body,
		contentType: "application/json",
		fallback:    "Failed to update order status",
	}, nil)
}

// SubmitFeedback is public: it never attaches the caller's credential, even when one is present.
func (c *Client) SubmitFeedback(ctx context.Context, feedback domain.Feedback) error {
	body, err := jsonBody(feedback)
	if err != nil {
		return err
	}

	return c.do(ctx, call{
		method:      http.MethodPost,
		path:        "/order/feedback/",
		body:        body,
		contentType: "application/json",
		anonymous:   true,
		fallback:    "Failed to submit feedback",
	}, nil)
}

// ListFeedback returns the orders that carry both a rating and a comment.
func (c *Client) ListFeedback(ctx context.Context) ([]domain.Order, error) {
	orders := []domain.Order{}
	if err := c.do(ctx, call{
		method:   http.MethodGet,
		path:     "/order/orders/",
		fallback: "Failed to fetch feedback",
	}, &orders); err != nil {
		return nil, err
	}

	reviewed := make([]domain.Order, 0, len(orders))
	for _, order := range orders {
		if order.Reviewed() {
			reviewed = append(reviewed, order)
		}
	}
	return reviewed, nil
}

func (c *Client) AverageRating(ctx context.Context) (domain.AverageRating, error) {
	var rating domain.AverageRating
	err := c.do(ctx, call{
		method:   http.MethodGet,
		path:     "/order/average-rating/",
		fallback: "Failed to fetch average rating",
	}, &rating)
	return rating, err
}
