package store

import (
	"time"

	"github.com/Equatrans/MicroGreen-Labs-App/models"
)

// Bootstrap content served (and opportunistically persisted) when a record
// key is missing, and served as-is when a record is unreadable.

func DefaultProducts() []models.Product {
	return []models.Product{
		{
			ID:          "kit-001",
			Name:        "Vitamin Starter Kit",
			Description: "The ideal first grow kit: everything needed for a first harvest.",
			Details:     "Includes two reusable trays, four linen mats and pea, radish, arugula and sunflower seeds. Harvest in 7 days.",
			Price:       1290,
			OldPrice:    1590,
			IsHit:       true,
			Image:       "https://images.unsplash.com/photo-1530836369250-ef72a3f5cda8?auto=format&fit=crop&q=80&w=800",
			Category:    models.CategoryKit,
			Difficulty:  "Easy",
			GrowthTime:  "7-10 days",
			Dimensions:  "10 x 20 x 30 cm",
		},
		{
			ID:           "kit-002",
			Name:         "Gourmet Pro Kit",
			Description:  "For growers who want to experiment with rare flavours.",
			Details:      "Advanced kit with coco substrate and a USB grow light. Amaranth, red basil and mustard for culinary experiments.",
			Price:        2450,
			Image:        "https://images.unsplash.com/photo-1556910103-1c02745a30bf?auto=format&fit=crop&q=80&w=800",
			Category:     models.CategoryKit,
			Difficulty:   "Medium",
			GrowthTime:   "10-14 days",
			Dimensions:   "35 x 25 x 40 cm",
			EquipmentIDs: []string{"eq-011", "eq-008"},
		},
		{
			ID:           "kit-004",
			Name:         "Smart Garden: Bamboo",
			Description:  "Premium kit with a bamboo stand and wick self-watering.",
			Details:      "Leave the plants unattended for a week. Red cabbage and basil included.",
			Price:        3890,
			OldPrice:     4500,
			Image:        "https://images.unsplash.com/photo-1585320806297-9794b3e4eeae?auto=format&fit=crop&q=80&w=800",
			Category:     models.CategoryKit,
			Difficulty:   "Medium",
			GrowthTime:   "7-12 days",
			Dimensions:   "45 x 30 x 50 cm",
			EquipmentIDs: []string{"eq-004", "eq-011", "eq-009"},
		},
		{
			ID:          "seed-001",
			Name:        "Madras Pea Seeds",
			Description: "Sweet, crunchy shoots with a light nutty taste.",
			Details:     "High germination rate. Rich in B and C vitamins.",
			Price:       150,
			Image:       "https://images.unsplash.com/photo-1627488193141-85d87f204c30?auto=format&fit=crop&q=80&w=800",
			Category:    models.CategorySeeds,
			Variants: []models.ProductVariant{
				{ID: "50g", Name: "50 g", Price: 150},
				{ID: "100g", Name: "100 g", Price: 280},
				{ID: "500g", Name: "500 g", Price: 1200},
			},
		},
		{
			ID:          "seed-002",
			Name:        "Indau Arugula Seeds",
			Description: "Peppery, nutty and remarkably healthy.",
			Details:     "The queen of microgreens: leads in iodine and iron content.",
			Price:       180,
			Image:       "https://images.unsplash.com/photo-1536638317175-d20351222244?auto=format&fit=crop&q=80&w=800",
			Category:    models.CategorySeeds,
			Variants: []models.ProductVariant{
				{ID: "25g", Name: "25 g", Price: 180},
				{ID: "50g", Name: "50 g", Price: 320},
			},
		},
		{
			ID:          "seed-003",
			Name:        "Sunflower Seeds",
			Description: "Juicy, hearty shoots tasting of fresh kernels.",
			Details:     "A complete amino-acid profile plus zinc and folate. Soak before planting.",
			Price:       120,
			Image:       "https://images.unsplash.com/photo-1473163928189-364b2c4e1135?auto=format&fit=crop&q=80&w=800",
			Category:    models.CategorySeeds,
			Variants: []models.ProductVariant{
				{ID: "50g", Name: "50 g", Price: 120},
				{ID: "150g", Name: "150 g", Price: 300},
			},
		},
		{
			ID:          "acc-001",
			Name:        "Linen Grow Mats (10 pcs)",
			Description: "Clean, natural substrate for soil-free growing.",
			Details:     "100% natural linen, 10x15 cm. Holds moisture and lets roots breathe.",
			Price:       350,
			Image:       "https://images.unsplash.com/photo-1596138252452-4500991e71d2?auto=format&fit=crop&q=80&w=800",
			Category:    models.CategoryAccessory,
		},
	}
}

func DefaultEquipment() []models.Equipment {
	return []models.Equipment{
		{
			ID:               "eq-001",
			Name:             "SmartGrow Controller V2",
			Price:            2500,
			Purpose:          "Automation and control",
			Description:      "Central farm hub with Wi-Fi and USB. Drives light, watering and ventilation by schedule or sensor.",
			Image:            "https://images.unsplash.com/photo-1553406830-ef2513450d76?auto=format&fit=crop&q=80&w=800",
			PowerConsumption: "2W",
			PowerRating:      "5V USB",
		},
		{
			ID:               "eq-004",
			Name:             "Wick Watering Module",
			Price:            900,
			Purpose:          "Self-watering",
			Description:      "Keeps the substrate moist for up to seven days without attention.",
			Image:            "https://images.unsplash.com/photo-1563299796-17596ed6b017?auto=format&fit=crop&q=80&w=800",
			PowerConsumption: "0W",
			PowerRating:      "passive",
		},
		{
			ID:               "eq-008",
			Name:             "USB Grow Light Bar",
			Price:            1200,
			Purpose:          "Lighting",
			Description:      "Full-spectrum LED bar sized to the tray footprint.",
			Image:            "https://images.unsplash.com/photo-1524593689594-aae2f26b75ab?auto=format&fit=crop&q=80&w=800",
			PowerConsumption: "9W",
			PowerRating:      "5V USB",
		},
		{
			ID:               "eq-009",
			Name:             "Bamboo Stand",
			Price:            1500,
			Purpose:          "Mounting",
			Description:      "Two-level bamboo frame for stacked tray layouts.",
			Image:            "https://images.unsplash.com/photo-1509423350716-97f9360b4e09?auto=format&fit=crop&q=80&w=800",
			PowerConsumption: "0W",
			PowerRating:      "passive",
		},
		{
			ID:               "eq-011",
			Name:             "Coco Substrate Block",
			Price:            400,
			Purpose:          "Substrate",
			Description:      "Pressed coco coir, expands to fill four trays.",
			Image:            "https://images.unsplash.com/photo-1618588507085-c79565432917?auto=format&fit=crop&q=80&w=800",
			PowerConsumption: "0W",
			PowerRating:      "passive",
		},
	}
}

func DefaultReviews() []models.Review {
	return []models.Review{
		{
			ID:        "rev-001",
			UserID:    "user-seed-1",
			UserName:  "marta",
			ProductID: "kit-001",
			Rating:    5,
			Comment:   "First harvest in eight days, exactly as promised.",
			Date:      time.Date(2025, 11, 3, 9, 30, 0, 0, time.UTC),
		},
		{
			ID:       "rev-002",
			UserID:   "user-seed-2",
			UserName: "oleg",
			Rating:   4,
			Comment:  "The builder is great fun, shipping took a little long.",
			Date:     time.Date(2025, 11, 18, 17, 5, 0, 0, time.UTC),
		},
		{
			ID:        "rev-003",
			UserID:    "user-seed-3",
			UserName:  "june",
			ProductID: "seed-002",
			Rating:    5,
			Comment:   "Arugula germinated almost overnight.",
			Date:      time.Date(2025, 12, 2, 12, 0, 0, 0, time.UTC),
		},
	}
}
