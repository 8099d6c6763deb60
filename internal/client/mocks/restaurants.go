package mocks

import "github.com/dmitrijs2005/nutrio/internal/client/models"

func Restaurants() []models.Restaurant {
	return []models.Restaurant{
		{ID: "1", Name: "Clean Eats", CuisineType: "Healthy", Logo: "https://images.unsplash.com/photo-1581349485608-9469926a8e5e?ixlib=rb-1.2.1&auto=format&fit=crop&w=200&q=80"},
		{ID: "2", Name: "Green Garden", CuisineType: "Vegan", Logo: "https://images.unsplash.com/photo-1518057111178-44a106bad636?ixlib=rb-1.2.1&auto=format&fit=crop&w=200&q=80"},
		{ID: "3", Name: "Muscle Kitchen", CuisineType: "High Protein", Logo: "https://images.unsplash.com/photo-1514933651103-005eec06c04b?ixlib=rb-1.2.1&auto=format&fit=crop&w=200&q=80"},
		{ID: "4", Name: "Keto Corner", CuisineType: "Keto", Logo: "https://images.unsplash.com/photo-1565299585323-38d6b0865b47?ixlib=rb-1.2.1&auto=format&fit=crop&w=200&q=80"},
		{ID: "5", Name: "Mediterranean Delights", CuisineType: "Mediterranean", Logo: "https://images.unsplash.com/photo-1555396273-367ea4eb4db5?ixlib=rb-1.2.1&auto=format&fit=crop&w=200&q=80"},
	}
}

// Categories returns the filter chips; the first is always the "all" wildcard.
func Categories() []models.Category {
	return []models.Category{
		{ID: models.CategoryAll, Name: "All"},
		{ID: "protein", Name: "Protein"},
		{ID: "vegan", Name: "Vegan"},
		{ID: "low-carb", Name: "Low-carb"},
		{ID: "keto", Name: "Keto"},
		{ID: "muscle", Name: "Muscle"},
		{ID: "vegetarian", Name: "Vegetarian"},
		{ID: "gluten-free", Name: "Gluten-free"},
		{ID: "healthy", Name: "Healthy"},
		{ID: "pescatarian", Name: "Pescatarian"},
		{ID: "plant-based", Name: "Plant-based"},
		{ID: "mediterranean", Name: "Mediterranean"},
		{ID: "balanced", Name: "Balanced"},
		{ID: "high-fat", Name: "High-fat"},
		{ID: "low-fat", Name: "Low-fat"},
	}
}
