package main

import (
	"log"

	"decoriva-server/database"
	"decoriva-server/models"
)

// seedServices fills an empty catalog with a starter set of decoration
// packages. A non-empty catalog is left alone.
func seedServices() {
	var count int64
	if err := database.DB.Model(&models.Service{}).Count(&count).Error; err != nil {
		log.Printf("❌ Failed to check services count: %v", err)
		return
	}

	if count > 0 {
		log.Printf("⚠️ Services already exist (%d found), skipping seed", count)
		return
	}

	services := []models.Service{
		{
			Name:           "Romantic Wedding Stage",
			Category:       "Wedding",
			Location:       "Dhaka",
			Cost:           1200.00,
			Unit:           "per event",
			Description:    "Full stage decoration with floral arches, fairy lights, drapery and a couple's seating arrangement. Setup and teardown included.",
			ImageURL:       "https://images.unsplash.com/photo-1519167758481-83f550bb49b3?w=800&h=600&fit=crop",
			CreatedByEmail: "admin@decoriva.com",
		},
		{
			Name:           "Birthday Balloon Arch",
			Category:       "Birthday",
			Location:       "Dhaka",
			Cost:           250.00,
			Unit:           "per event",
			Description:    "Custom-colored balloon arch with a name banner, table centerpieces and a photo corner. Themes available for kids and adults.",
			ImageURL:       "https://images.unsplash.com/photo-1530103862676-de8c9debad1d?w=800&h=600&fit=crop",
			CreatedByEmail: "admin@decoriva.com",
		},
		{
			Name:           "Corporate Gala Setup",
			Category:       "Corporate",
			Location:       "Chattogram",
			Cost:           2000.00,
			Unit:           "per event",
			Description:    "Elegant stage backdrop, branded signage, ambient uplighting and table styling for conferences, launches and annual dinners.",
			ImageURL:       "https://images.unsplash.com/photo-1511578314322-379afb476865?w=800&h=600&fit=crop",
			CreatedByEmail: "admin@decoriva.com",
		},
		{
			Name:           "Haldi Ceremony Decor",
			Category:       "Wedding",
			Location:       "Sylhet",
			Cost:           600.00,
			Unit:           "per event",
			Description:    "Marigold garlands, yellow drapes, low seating and traditional props for a vibrant haldi celebration.",
			ImageURL:       "https://images.unsplash.com/photo-1604005360234-36f8ddc27e4b?w=800&h=600&fit=crop",
			CreatedByEmail: "admin@decoriva.com",
		},
		{
			Name:           "Baby Shower Pastel Theme",
			Category:       "Baby Shower",
			Location:       "Dhaka",
			Cost:           350.00,
			Unit:           "per event",
			Description:    "Soft pastel balloons, a welcome board, dessert table styling and a themed photo backdrop.",
			ImageURL:       "https://images.unsplash.com/photo-1532797311716-56eeb1e19f2a?w=800&h=600&fit=crop",
			CreatedByEmail: "admin@decoriva.com",
		},
		{
			Name:           "Engagement Floral Canopy",
			Category:       "Engagement",
			Location:       "Chattogram",
			Cost:           800.00,
			Unit:           "per event",
			Description:    "Fresh flower canopy, ring platter styling, candle pathways and ambient lighting for an intimate engagement.",
			ImageURL:       "https://images.unsplash.com/photo-1464366400600-7168b8af9bc3?w=800&h=600&fit=crop",
			CreatedByEmail: "admin@decoriva.com",
		},
		{
			Name:           "Graduation Party Package",
			Category:       "Graduation",
			Location:       "Khulna",
			Cost:           300.00,
			Unit:           "per event",
			Description:    "Cap-and-gown themed backdrop, balloon columns, congratulations banner and a memory wall for photos.",
			ImageURL:       "https://images.unsplash.com/photo-1523050854058-8df90110c9f1?w=800&h=600&fit=crop",
			CreatedByEmail: "admin@decoriva.com",
		},
		{
			Name:           "Anniversary Candlelight Dinner",
			Category:       "Anniversary",
			Location:       "Dhaka",
			Cost:           450.00,
			Unit:           "per event",
			Description:    "Private rooftop or indoor candlelight setup with rose petals, lanterns and a styled dinner table for two.",
			ImageURL:       "https://images.unsplash.com/photo-1478146896981-b80fe463b330?w=800&h=600&fit=crop",
			CreatedByEmail: "admin@decoriva.com",
		},
	}

	inserted := 0
	for _, service := range services {
		if err := database.DB.Create(&service).Error; err != nil {
			log.Printf("❌ Failed to seed service '%s': %v", service.Name, err)
			continue
		}
		inserted++
	}

	log.Printf("🎉 Seeded %d of %d catalog services", inserted, len(services))
}
