package domain

import (
	"sort"
	"strings"
	"time"
)

type Analytics struct {
	TotalOrders  int `json:"total_orders"`
	ActiveOrders int `json:"active_orders"`
	MenuItems    int `json:"menu_items"`
}

func (a Analytics) CompletedOrders() int {
	if a.ActiveOrders > a.TotalOrders {
		return 0
	}
	return a.TotalOrders - a.ActiveOrders
}

type WeeklySales struct {
	WeeklySales map[string]Price `json:"weekly_sales"`
	WeekStart   string           `json:"week_start"`
	WeekEnd     string           `json:"week_end"`
}

type SalesPoint struct {
	Name  string `json:"name"`
	Sales Price  `json:"sales"`
}

var weekdayOrder = map[string]int{
	"monday": 1, "tuesday": 2, "wednesday": 3, "thursday": 4,
	"friday": 5, "saturday": 6, "sunday": 7,
	"mon": 1, "tue": 2, "wed": 3, "thu": 4, "fri": 5, "sat": 6, "sun": 7,
}

// Points orders the sales map by weekday, falling back to the key itself for unknown labels.
func (w WeeklySales) Points() []SalesPoint {
	points := make([]SalesPoint, 0, len(w.WeeklySales))
	for day, sales := range w.WeeklySales {
		points = append(points, SalesPoint{Name: day, Sales: sales})
	}
	sort.SliceStable(points, func(i, j int) bool {
		oi, iok := weekdayOrder[strings.ToLower(points[i].Name)]
		oj, jok := weekdayOrder[strings.ToLower(points[j].Name)]
		switch {
		case iok && jok:
			return oi < oj
		case iok != jok:
			return iok
		default:
			return points[i].Name < points[j].Name
		}
	})
	return points
}

type PopularItem struct {
	Name       string  `json:"name"`
	Sales      int     `json:"sales"`
	Percentage float64 `json:"percentage"`
}

type AverageRating struct {
	AverageRating float64 `json:"average_rating"`
}

type Dashboard struct {
	TotalOrders     int           `json:"total_orders"`
	ActiveOrders    int           `json:"active_orders"`
	CompletedOrders int           `json:"completed_orders"`
	MenuItems       int           `json:"menu_items"`
	WeekStart       string        `json:"week_start"`
	WeekEnd         string        `json:"week_end"`
	Sales           []SalesPoint  `json:"sales"`
	Popularity      []PopularItem `json:"popularity"`
}

const (
	EventOrderSubmitted    = "order_submitted"
	EventFeedbackSubmitted = "feedback_submitted"
)

type Event struct {
	Type        string    `json:"type"`
	OrderNumber string    `json:"order_number"`
	Total       Price     `json:"total"`
	Rating      int       `json:"rating,omitempty"`
	Timestamp   time.Time `json:"timestamp"`
}

type Receipt struct {
	ID                int64     `json:"id"`
	ProvisionalNumber string    `json:"provisional_number"`
	OrderNumber       string    `json:"order_number"`
	Total             Price     `json:"total"`
	ItemCount         int       `json:"item_count"`
	SubmittedAt       time.Time `json:"submitted_at"`
}
