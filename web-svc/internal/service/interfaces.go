package service

import (
	"context"

	"orderflow/web-svc/internal/apiclient"
	"orderflow/web-svc/internal/domain"
)

type OrderAPI interface {
	CreateOrder(ctx context.Context, itemIDs []int) (domain.CreatedOrder, error)
}

type FeedbackAPI interface {
	SubmitFeedback(ctx context.Context, feedback domain.Feedback) error
}

type AuthAPI interface {
	Login(ctx context.Context, email, password string) (domain.LoginResult, error)
	Logout(ctx context.Context) error
}

type MenuAPI interface {
	ListCategories(ctx context.Context) ([]domain.Category, error)
	ListMenuItems(ctx context.Context) ([]domain.MenuItem, error)
}

type KitchenAPI interface {
	ListOrders(ctx context.Context) ([]domain.Order, error)
	UpdateOrderStatus(ctx context.Context, orderNumber string, status domain.OrderStatus) error
}

type AdminAPI interface {
	MenuAPI
	KitchenAPI
	CreateCategory(ctx context.Context, name string) (domain.Category, error)
	CreateMenuItem(ctx context.Context, form domain.MenuItemForm) (domain.MenuItem, error)
	UpdateMenuItem(ctx context.Context, id int, form domain.MenuItemForm) (domain.MenuItem, error)
	DeleteMenuItem(ctx context.Context, id int) error
	ListFeedback(ctx context.Context) ([]domain.Order, error)
	AverageRating(ctx context.Context) (domain.AverageRating, error)
	Analytics(ctx context.Context) (domain.Analytics, error)
	WeeklySales(ctx context.Context) (domain.WeeklySales, error)
	MenuPopularity(ctx context.Context) ([]domain.PopularItem, error)
}

type SessionStore interface {
	Load(ctx context.Context, visitorID string) (domain.Session, error)
	Save(ctx context.Context, visitorID string, session domain.Session) error
	Clear(ctx context.Context, visitorID string) error
}

type EventPublisher interface {
	Publish(ctx context.Context, event domain.Event) error
}

type ReceiptRepository interface {
	Record(ctx context.Context, receipt *domain.Receipt) error
	Recent(ctx context.Context, limit int) ([]domain.Receipt, error)
}

type QRGenerator interface {
	ReviewLink(orderNumber string) ([]byte, error)
	Table(url string) ([]byte, error)
}

type MenuServiceInterface interface {
	Sections(ctx context.Context) ([]MenuSection, error)
	Item(ctx context.Context, id int) (domain.MenuItem, error)
}

type FeedbackServiceInterface interface {
	Submit(ctx context.Context, orderNumber *string, rating int, comment string) error
}

type SessionServiceInterface interface {
	Current(ctx context.Context, visitorID string) domain.Session
	Login(ctx context.Context, visitorID, email, password string) (domain.Session, error)
	Logout(ctx context.Context, visitorID string) error
}

type AdminServiceInterface interface {
	Categories(ctx context.Context) ([]domain.Category, error)
	AddCategory(ctx context.Context, name string) (domain.Category, error)
	MenuItems(ctx context.Context) ([]domain.MenuItem, error)
	AddMenuItem(ctx context.Context, form domain.MenuItemForm) (domain.MenuItem, error)
	EditMenuItem(ctx context.Context, id int, form domain.MenuItemForm) (domain.MenuItem, error)
	RemoveMenuItem(ctx context.Context, id int) error
	Orders(ctx context.Context) ([]domain.Order, error)
	SetOrderStatus(ctx context.Context, orderNumber string, status domain.OrderStatus) error
	Feedback(ctx context.Context) (FeedbackSummary, error)
	Dashboard(ctx context.Context) (domain.Dashboard, error)
	Receipts(ctx context.Context, limit int) ([]domain.Receipt, error)
}

var (
	_ OrderAPI    = (*apiclient.Client)(nil)
	_ FeedbackAPI = (*apiclient.Client)(nil)
	_ AuthAPI     = (*apiclient.Client)(nil)
	_ MenuAPI     = (*apiclient.Client)(nil)
	_ KitchenAPI  = (*apiclient.Client)(nil)
	_ AdminAPI    = (*apiclient.Client)(nil)

	_ MenuServiceInterface     = (*MenuService)(nil)
	_ FeedbackServiceInterface = (*FeedbackService)(nil)
	_ SessionServiceInterface  = (*SessionManager)(nil)
	_ AdminServiceInterface    = (*AdminService)(nil)
	_ QRGenerator              = DefaultQRGenerator{}
)
