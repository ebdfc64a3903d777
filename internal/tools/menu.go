package tools

import (
	"fmt"
	"strings"
)

// MenuItem is a single dish and its price in whole rupees.
type MenuItem struct {
	Name  string
	Price int
}

// Meal categories. Keys are lowercase and match the menus table.
const (
	Breakfast = "breakfast"
	Lunch     = "lunch"
	Dinner    = "dinner"
)

// menus is read-only after package initialisation. Order matters: listings
// and meal plans are taken from the front of each slice.
var menus = map[string][]MenuItem{
	Breakfast: {
		{Name: "Aloo Paratha", Price: 40},
		{Name: "Poha", Price: 30},
		{Name: "Idli Sambar", Price: 35},
		{Name: "Dosa with Coconut Chutney", Price: 40},
		{Name: "Bread Omelette", Price: 35},
		{Name: "Filter Coffee", Price: 20},
	},
	Lunch: {
		{Name: "Paneer Butter Masala", Price: 120},
		{Name: "Dal Tadka", Price: 80},
		{Name: "Jeera Rice", Price: 60},
		{Name: "Roti (2 pieces)", Price: 20},
		{Name: "Rajma Masala", Price: 100},
		{Name: "Vegetable Biryani", Price: 130},
		{Name: "Salad", Price: 40},
		{Name: "Mango Lassi", Price: 50},
	},
	Dinner: {
		{Name: "Veg Biryani", Price: 130},
		{Name: "Matar Paneer", Price: 120},
		{Name: "Dal Makhani", Price: 100},
		{Name: "Butter Naan (2 pieces)", Price: 40},
		{Name: "Gulab Jamun", Price: 40},
		{Name: "Masala Chai", Price: 20},
	},
}

// Menu returns a copy of the items for category, or false if there is no such menu.
func Menu(category string) ([]MenuItem, bool) {
	items, ok := menus[category]
	if !ok {
		return nil, false
	}
	out := make([]MenuItem, len(items))
	copy(out, items)
	return out, true
}

// String renders the item as "Name (₹Price)".
func (m MenuItem) String() string {
	return fmt.Sprintf("%s (₹%d)", m.Name, m.Price)
}

func formatListing(items []MenuItem) string {
	parts := make([]string, len(items))
	for i, item := range items {
		parts[i] = item.String()
	}
	return strings.Join(parts, ", ")
}

// firstNames joins the names of the first n items of category.
func firstNames(category string, n int) string {
	items := menus[category]
	if n > len(items) {
		n = len(items)
	}
	names := make([]string, n)
	for i := 0; i < n; i++ {
		names[i] = items[i].Name
	}
	return strings.Join(names, ", ")
}
