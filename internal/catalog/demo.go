package catalog

import "github.com/jatansg/sgfoodcourt/pkg/enums"

// Demo returns the built-in catalog used when no catalog file is configured.
func Demo() *Catalog {
	c, err := New(demoStalls, demoItems)
	if err != nil {
		panic("catalog: demo data invalid: " + err.Error())
	}
	return c
}

var demoStalls = []Stall{
	{
		ID:             "stall1",
		Name:           "Uncle Lim Zi Char",
		Owner:          "Lim Ah Seng",
		Cuisine:        "Chinese",
		Description:    "Traditional zi char dishes with home-cooked flavors",
		Status:         enums.StallStatusActive,
		OperatingHours: "11:00 AM - 9:00 PM",
		Contact:        "+65 9123 4567",
	},
	{
		ID:             "stall2",
		Name:           "Mei Ling Noodles",
		Owner:          "Tan Mei Ling",
		Cuisine:        "Chinese",
		Description:    "Specialty laksa and mee dishes",
		Status:         enums.StallStatusActive,
		OperatingHours: "10:30 AM - 8:30 PM",
		Contact:        "+65 9234 5678",
	},
	{
		ID:             "stall3",
		Name:           "Ahmad Murtabak",
		Owner:          "Ahmad Hassan",
		Cuisine:        "Malay",
		Description:    "Authentic murtabak and roti prata",
		Status:         enums.StallStatusActive,
		OperatingHours: "6:00 AM - 10:00 PM",
		Contact:        "+65 9345 6789",
	},
	{
		ID:             "stall4",
		Name:           "Raj Indian Kitchen",
		Owner:          "Rajesh Kumar",
		Cuisine:        "Indian",
		Description:    "North and South Indian specialties",
		Status:         enums.StallStatusInactive,
		OperatingHours: "11:00 AM - 3:00 PM, 6:00 PM - 10:00 PM",
		Contact:        "+65 9456 7890",
	},
	{
		ID:          "stall5",
		Name:        "Western Delights",
		Owner:       "Daniel Ong",
		Cuisine:     "Western",
		Description: "Grilled chops and fries",
		Status:      enums.StallStatusActive,
	},
}

var demoItems = []Item{
	{ID: "item1", Name: "Sweet & Sour Pork", Description: "Crispy pork with pineapple and bell peppers in tangy sauce", UnitPriceCents: 1250, StallID: "stall1", Category: "Main", Available: true, PrepMinutes: 15},
	{ID: "item2", Name: "Yang Chow Fried Rice", Description: "Traditional fried rice with prawns, char siu and egg", UnitPriceCents: 850, StallID: "stall1", Category: "Rice", Available: true, PrepMinutes: 10},
	{ID: "item3", Name: "Mapo Tofu", Description: "Silky tofu in spicy Sichuan sauce with minced pork", UnitPriceCents: 980, StallID: "stall1", Category: "Main", Available: false, PrepMinutes: 12},
	{ID: "item4", Name: "Chinese Herbal Soup", Description: "Nourishing soup with ginseng and herbs", UnitPriceCents: 600, StallID: "stall1", Category: "Soups", Available: true, PrepMinutes: 20},
	{ID: "item5", Name: "Laksa", Description: "Spicy coconut curry noodle soup with prawns and cockles", UnitPriceCents: 600, StallID: "stall2", Category: "Noodles", Available: true, PrepMinutes: 12},
	{ID: "item6", Name: "Mee Goreng", Description: "Wok-fried yellow noodles", UnitPriceCents: 550, StallID: "stall2", Category: "Noodles", Available: true, PrepMinutes: 10},
	{ID: "item7", Name: "Chicken Murtabak", Description: "Crispy pancake stuffed with spiced chicken and onions", UnitPriceCents: 800, StallID: "stall3", Category: "Main", Available: true, PrepMinutes: 18},
	{ID: "item8", Name: "Teh Tarik", Description: "Pulled milk tea", UnitPriceCents: 150, StallID: "stall3", Category: "Drinks", Available: true, PrepMinutes: 3},
	{ID: "item9", Name: "Fish Head Curry", Description: "Authentic South Indian curry with fresh fish head", UnitPriceCents: 1580, StallID: "stall4", Category: "Main", Available: true, PrepMinutes: 20},
	{ID: "item10", Name: "Chicken Chop", Description: "Grilled chicken with black pepper sauce and fries", UnitPriceCents: 1200, StallID: "stall5", Category: "Western", Available: true, PrepMinutes: 15},
}
