package mocks

import "github.com/dmitrijs2005/nutrio/internal/client/models"

// Meals returns the demo meal catalog.
func Meals() []models.Meal {
	return []models.Meal{
		{
			ID:             "1",
			Name:           "Protein Pancakes",
			Description:    "Fluffy protein-packed pancakes with fresh berries",
			Image:          "https://images.unsplash.com/photo-1567620905732-2d1ec7ab7445?ixlib=rb-1.2.1&auto=format&fit=crop&w=800&q=80",
			Calories:       320,
			Protein:        25,
			Carbs:          35,
			Fat:            8,
			RestaurantID:   "1",
			Restaurant:     "Clean Eats",
			RestaurantLogo: "https://images.unsplash.com/photo-1581349485608-9469926a8e5e?ixlib=rb-1.2.1&auto=format&fit=crop&w=200&q=80",
			Categories:     []string{"protein", "breakfast"},
			Ingredients:    []string{"Protein powder", "Oats", "Eggs", "Berries", "Honey"},
			Price:          45,
			MealTime:       models.MealTimeBreakfast,
		},
		{
			ID:             "2",
			Name:           "Avocado Toast Bowl",
			Description:    "Nutritious avocado bowl with seeds and vegetables",
			Image:          "https://images.unsplash.com/photo-1525351484163-7529414344d8?ixlib=rb-1.2.1&auto=format&fit=crop&w=800&q=80",
			Calories:       280,
			Protein:        12,
			Carbs:          25,
			Fat:            18,
			RestaurantID:   "2",
			Restaurant:     "Green Garden",
			RestaurantLogo: "https://images.unsplash.com/photo-1518057111178-44a106bad636?ixlib=rb-1.2.1&auto=format&fit=crop&w=200&q=80",
			Categories:     []string{"vegan", "healthy"},
			Ingredients:    []string{"Avocado", "Whole grain bread", "Seeds", "Tomatoes"},
			Price:          38,
			MealTime:       models.MealTimeBreakfast,
		},
		{
			ID:             "3",
			Name:           "Greek Yogurt Parfait",
			Description:    "Creamy Greek yogurt with granola and fresh fruits",
			Image:          "https://images.unsplash.com/photo-1488477181946-6428a0291777?ixlib=rb-1.2.1&auto=format&fit=crop&w=800&q=80",
			Calories:       250,
			Protein:        20,
			Carbs:          30,
			Fat:            6,
			RestaurantID:   "5",
			Restaurant:     "Mediterranean Delights",
			RestaurantLogo: "https://images.unsplash.com/photo-1555396273-367ea4eb4db5?ixlib=rb-1.2.1&auto=format&fit=crop&w=200&q=80",
			Categories:     []string{"protein", "mediterranean"},
			Ingredients:    []string{"Greek yogurt", "Granola", "Berries", "Honey", "Nuts"},
			Price:          32,
			MealTime:       models.MealTimeBreakfast,
		},
		{
			ID:             "4",
			Name:           "Grilled Chicken Salad",
			Description:    "Fresh mixed greens with grilled chicken and vegetables",
			Image:          "https://images.unsplash.com/photo-1512621776951-a57141f2eefd?ixlib=rb-1.2.1&auto=format&fit=crop&w=800&q=80",
			Calories:       420,
			Protein:        35,
			Carbs:          15,
			Fat:            25,
			RestaurantID:   "3",
			Restaurant:     "Muscle Kitchen",
			RestaurantLogo: "https://images.unsplash.com/photo-1514933651103-005eec06c04b?ixlib=rb-1.2.1&auto=format&fit=crop&w=200&q=80",
			Categories:     []string{"protein", "low-carb"},
			Ingredients:    []string{"Chicken breast", "Mixed greens", "Cherry tomatoes", "Cucumber", "Olive oil"},
			Price:          55,
			MealTime:       models.MealTimeLunch,
		},
		{
			ID:             "5",
			Name:           "Quinoa Buddha Bowl",
			Description:    "Nutritious bowl with quinoa, vegetables, and tahini dressing",
			Image:          "https://images.unsplash.com/photo-1546793665-c74683f339c1?ixlib=rb-1.2.1&auto=format&fit=crop&w=800&q=80",
			Calories:       380,
			Protein:        15,
			Carbs:          45,
			Fat:            16,
			RestaurantID:   "2",
			Restaurant:     "Green Garden",
			RestaurantLogo: "https://images.unsplash.com/photo-1518057111178-44a106bad636?ixlib=rb-1.2.1&auto=format&fit=crop&w=200&q=80",
			Categories:     []string{"vegan", "plant-based"},
			Ingredients:    []string{"Quinoa", "Roasted vegetables", "Chickpeas", "Tahini", "Spinach"},
			Price:          48,
			MealTime:       models.MealTimeLunch,
		},
		{
			ID:             "6",
			Name:           "Keto Salmon Bowl",
			Description:    "Grilled salmon with cauliflower rice and avocado",
			Image:          "https://images.unsplash.com/photo-1467003909585-2f8a72700288?ixlib=rb-1.2.1&auto=format&fit=crop&w=800&q=80",
			Calories:       520,
			Protein:        40,
			Carbs:          8,
			Fat:            35,
			RestaurantID:   "4",
			Restaurant:     "Keto Corner",
			RestaurantLogo: "https://images.unsplash.com/photo-1565299585323-38d6b0865b47?ixlib=rb-1.2.1&auto=format&fit=crop&w=200&q=80",
			Categories:     []string{"keto", "high-fat"},
			Ingredients:    []string{"Salmon", "Cauliflower rice", "Avocado", "Broccoli", "Olive oil"},
			Price:          68,
			MealTime:       models.MealTimeLunch,
		},
		{
			ID:             "7",
			Name:           "Mediterranean Chicken",
			Description:    "Herb-crusted chicken with roasted vegetables",
			Image:          "https://images.unsplash.com/photo-1598515214211-89d3c73ae83b?ixlib=rb-1.2.1&auto=format&fit=crop&w=800&q=80",
			Calories:       480,
			Protein:        42,
			Carbs:          20,
			Fat:            28,
			RestaurantID:   "5",
			Restaurant:     "Mediterranean Delights",
			RestaurantLogo: "https://images.unsplash.com/photo-1555396273-367ea4eb4db5?ixlib=rb-1.2.1&auto=format&fit=crop&w=200&q=80",
			Categories:     []string{"mediterranean", "protein"},
			Ingredients:    []string{"Chicken thigh", "Zucchini", "Bell peppers", "Herbs", "Olive oil"},
			Price:          62,
			MealTime:       models.MealTimeDinner,
		},
		{
			ID:             "8",
			Name:           "Beef Stir Fry",
			Description:    "Tender beef with mixed vegetables in savory sauce",
			Image:          "https://images.unsplash.com/photo-1603133872878-684f208fb84b?ixlib=rb-1.2.1&auto=format&fit=crop&w=800&q=80",
			Calories:       450,
			Protein:        38,
			Carbs:          25,
			Fat:            22,
			RestaurantID:   "3",
			Restaurant:     "Muscle Kitchen",
			RestaurantLogo: "https://images.unsplash.com/photo-1514933651103-005eec06c04b?ixlib=rb-1.2.1&auto=format&fit=crop&w=200&q=80",
			Categories:     []string{"protein", "muscle"},
			Ingredients:    []string{"Beef strips", "Mixed vegetables", "Soy sauce", "Ginger", "Garlic"},
			Price:          58,
			MealTime:       models.MealTimeDinner,
		},
		{
			ID:             "9",
			Name:           "Vegan Curry Bowl",
			Description:    "Spiced lentil curry with coconut rice",
			Image:          "https://images.unsplash.com/photo-1455619452474-d2be8b1e70cd?ixlib=rb-1.2.1&auto=format&fit=crop&w=800&q=80",
			Calories:       390,
			Protein:        18,
			Carbs:          55,
			Fat:            12,
			RestaurantID:   "2",
			Restaurant:     "Green Garden",
			RestaurantLogo: "https://images.unsplash.com/photo-1518057111178-44a106bad636?ixlib=rb-1.2.1&auto=format&fit=crop&w=200&q=80",
			Categories:     []string{"vegan", "plant-based"},
			Ingredients:    []string{"Red lentils", "Coconut milk", "Rice", "Spices", "Vegetables"},
			Price:          42,
			MealTime:       models.MealTimeDinner,
		},
	}
}
