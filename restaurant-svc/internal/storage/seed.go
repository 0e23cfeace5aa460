package storage

import "rik-restaurant/restaurant-svc/internal/domain"

// SeedMenu returns a fresh copy of the house menu.
func SeedMenu() []domain.MenuItem {
	return []domain.MenuItem{
		{ID: "1", Name: "Bruschetta", Description: "Toasted bread topped with tomatoes, garlic, and basil", Price: "$8.99", Category: domain.CategoryAppetizers, Image: "🍅", Rating: 4.5},
		{ID: "2", Name: "Garlic Bread", Description: "Freshly baked bread with garlic butter", Price: "$6.99", Category: domain.CategoryAppetizers, Image: "🍞", Rating: 4.2},
		{ID: "3", Name: "Caesar Salad", Description: "Fresh romaine lettuce with Caesar dressing", Price: "$9.99", Category: domain.CategoryAppetizers, Image: "🥗", Rating: 4.7},
		{ID: "4", Name: "Spaghetti Carbonara", Description: "Classic Italian pasta with eggs, cheese, and pancetta", Price: "$16.99", Category: domain.CategoryMainCourse, Image: "🍝", Rating: 4.8},
		{ID: "5", Name: "Grilled Salmon", Description: "Atlantic salmon with lemon butter sauce", Price: "$24.99", Category: domain.CategoryMainCourse, Image: "🐟", Rating: 4.9},
		{ID: "6", Name: "Beef Steak", Description: "Premium beef steak with herbs and spices", Price: "$28.99", Category: domain.CategoryMainCourse, Image: "🥩", Rating: 4.6},
		{ID: "7", Name: "Vegetable Pizza", Description: "Fresh vegetables on thin crust", Price: "$14.99", Category: domain.CategoryMainCourse, Image: "🍕", Rating: 4.4},
		{ID: "8", Name: "Chocolate Lava Cake", Description: "Warm chocolate cake with melting center", Price: "$8.99", Category: domain.CategoryDesserts, Image: "🍫", Rating: 4.8},
		{ID: "9", Name: "Cheesecake", Description: "New York style cheesecake with berry sauce", Price: "$9.99", Category: domain.CategoryDesserts, Image: "🍰", Rating: 4.7},
		{ID: "10", Name: "Tiramisu", Description: "Classic Italian dessert with coffee flavor", Price: "$10.99", Category: domain.CategoryDesserts, Image: "☕", Rating: 4.9},
		{ID: "11", Name: "Fresh Lemonade", Description: "Refreshing homemade lemonade", Price: "$4.99", Category: domain.CategoryDrinks, Image: "🍋", Rating: 4.3},
		{ID: "12", Name: "Mango Smoothie", Description: "Fresh mango blended with yogurt", Price: "$6.99", Category: domain.CategoryDrinks, Image: "🥭", Rating: 4.5},
		{ID: "13", Name: "Iced Coffee", Description: "Cold brew coffee with milk", Price: "$5.99", Category: domain.CategoryDrinks, Image: "🧊", Rating: 4.4},
	}
}
