package domain

import (
	"bytes"
	"encoding/json"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Price is a decimal amount that decodes malformed values as zero instead of failing the payload.
type Price struct {
	decimal.Decimal
}

func NewPrice(value string) Price {
	d, err := decimal.NewFromString(value)
	if err != nil {
		return Price{}
	}
	return Price{d}
}

func PriceFromFloat(value float64) Price {
	return Price{decimal.NewFromFloat(value)}
}

func (p *Price) UnmarshalJSON(data []byte) error {
	var d decimal.Decimal
	if err := d.UnmarshalJSON(data); err != nil {
		p.Decimal = decimal.Zero
		return nil
	}
	p.Decimal = d
	return nil
}

// CategoryRef accepts the category either as an id, a name or an embedded object.
type CategoryRef struct {
	ID   int    `json:"id,omitempty"`
	Name string `json:"name,omitempty"`
}

func (c *CategoryRef) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || string(data) == "null" {
		return nil
	}
	switch data[0] {
	case '{':
		type plain CategoryRef
		var v plain
		if err := json.Unmarshal(data, &v); err != nil {
			return err
		}
		*c = CategoryRef(v)
	case '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		if id, err := strconv.Atoi(s); err == nil {
			c.ID = id
		} else {
			c.Name = s
		}
	default:
		id, err := strconv.Atoi(string(data))
		if err != nil {
			return err
		}
		c.ID = id
	}
	return nil
}

type Category struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

type MenuItem struct {
	ID          int         `json:"id"`
	Name        string      `json:"name"`
	Description string      `json:"description"`
	Price       Price       `json:"price"`
	CategoryID  int         `json:"category_id,omitempty"`
	Category    CategoryRef `json:"category"`
	IsAvailable bool        `json:"is_available"`
	Image       string      `json:"image,omitempty"`
}

// CategoryKey resolves the category id from either representation the API uses.
func (m MenuItem) CategoryKey() int {
	if m.CategoryID != 0 {
		return m.CategoryID
	}
	return m.Category.ID
}

// MenuItemForm is the multipart payload for creating or updating a menu item.
type MenuItemForm struct {
	Name        string
	Description string
	Price       string
	CategoryID  int
	IsAvailable bool
	ImageName   string
	ImageType   string
	Image       []byte
}

type CartEntry struct {
	Item     MenuItem `json:"item"`
	Quantity int      `json:"quantity"`
}

// Units is the quantity with an absent (zero) value counted as one.
func (e CartEntry) Units() int {
	if e.Quantity < 1 {
		return 1
	}
	return e.Quantity
}

type OrderSnapshot struct {
	ProvisionalNumber string      `json:"provisional_number"`
	OrderNumber       OrderNumber `json:"order_number,omitempty"`
	Items             []CartEntry `json:"items"`
	CreatedAt         time.Time   `json:"created_at"`
}

// DisplayNumber prefers the server-assigned number and falls back to the provisional label.
func (s *OrderSnapshot) DisplayNumber() string {
	if s.OrderNumber != "" {
		return string(s.OrderNumber)
	}
	return s.ProvisionalNumber
}

// ItemIDs expands every entry into one identifier per unit ordered.
func (s *OrderSnapshot) ItemIDs() []int {
	ids := make([]int, 0, len(s.Items))
	for _, entry := range s.Items {
		for i := 0; i < entry.Units(); i++ {
			ids = append(ids, entry.Item.ID)
		}
	}
	return ids
}

// OrderNumber is the server identifier, sent either as a JSON string or number.
type OrderNumber string

func (n *OrderNumber) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if string(data) == "null" {
		*n = ""
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*n = OrderNumber(s)
		return nil
	}
	*n = OrderNumber(string(data))
	return nil
}

type OrderStatus string

const (
	OrderPending    OrderStatus = "pending"
	OrderInProgress OrderStatus = "in_progress"
	OrderCompleted  OrderStatus = "completed"
	OrderCancelled  OrderStatus = "cancelled"
)

func (s OrderStatus) IsTerminal() bool {
	return s == OrderCompleted || s == OrderCancelled
}

func (s OrderStatus) Valid() bool {
	switch s {
	case OrderPending, OrderInProgress, OrderCompleted, OrderCancelled:
		return true
	}
	return false
}

type Order struct {
	OrderNumber OrderNumber `json:"order_number"`
	Status      OrderStatus `json:"status"`
	TotalPrice  Price       `json:"total_price"`
	CreatedAt   time.Time   `json:"created_at"`
	Items       OrderItems  `json:"items"`
	StarRating  *int        `json:"star_rating"`
	Feedback    *string     `json:"feedback"`
}

func (o Order) Reviewed() bool {
	return o.StarRating != nil && o.Feedback != nil
}

type OrderItemDetail struct {
	ID       int    `json:"id"`
	Name     string `json:"name"`
	Price    Price  `json:"price"`
	Quantity int    `json:"quantity,omitempty"`
}

// OrderItems decodes both {"item_details": [...]} and a bare array.
type OrderItems struct {
	Details []OrderItemDetail `json:"item_details"`
}

func (o *OrderItems) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || string(data) == "null" {
		return nil
	}
	if data[0] == '[' {
		return json.Unmarshal(data, &o.Details)
	}
	type plain OrderItems
	var v plain
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	*o = OrderItems(v)
	return nil
}

type CreatedOrder struct {
	OrderNumber OrderNumber `json:"order_number"`
	Status      OrderStatus `json:"status,omitempty"`
	TotalPrice  Price       `json:"total_price"`
}

type Feedback struct {
	OrderNumber string `json:"order_number"`
	StarRating  int    `json:"star_rating"`
	Feedback    string `json:"feedback"`
}

type Role int

const (
	RoleNone Role = iota
	RoleAdmin
	RoleKitchen
)

// ParseRole maps the stored user type onto the closed role set; anything else is RoleNone.
func ParseRole(value string) Role {
	switch strings.ToUpper(strings.TrimSpace(value)) {
	case "ADMIN":
		return RoleAdmin
	case "KITCHEN":
		return RoleKitchen
	default:
		return RoleNone
	}
}

func (r Role) String() string {
	switch r {
	case RoleAdmin:
		return "ADMIN"
	case RoleKitchen:
		return "KITCHEN"
	default:
		return ""
	}
}

func (r Role) MarshalJSON() ([]byte, error) {
	return json.Marshal(r.String())
}

func (r *Role) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	*r = ParseRole(s)
	return nil
}

type Session struct {
	Token  string `json:"-"`
	UserID string `json:"user_id"`
	Email  string `json:"email"`
	Role   Role   `json:"role"`
}

func (s Session) Authenticated() bool {
	return s.Token != ""
}

type LoginResult struct {
	Token  string `json:"auth_token"`
	UserID string `json:"user_id"`
	Email  string `json:"email"`
	Role   Role   `json:"user_type"`
}

func (l *LoginResult) UnmarshalJSON(data []byte) error {
	var raw struct {
		Token  string          `json:"auth_token"`
		UserID json.RawMessage `json:"user_id"`
		Email  string          `json:"email"`
		Role   Role            `json:"user_type"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	l.Token = raw.Token
	l.Email = raw.Email
	l.Role = raw.Role
	l.UserID = strings.Trim(string(bytes.TrimSpace(raw.UserID)), `"`)
	if l.UserID == "null" {
		l.UserID = ""
	}
	return nil
}

func (l LoginResult) Session() Session {
	return Session{Token: l.Token, UserID: l.UserID, Email: l.Email, Role: l.Role}
}
