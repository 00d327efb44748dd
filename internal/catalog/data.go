package catalog

// breedTable returns the static breed database. Descriptive values come from
// Indian dairy husbandry references; selection weights are the simulated
// identification distribution, not measurements.
func breedTable() []Record {
	return []Record{
		{
			ID:              1,
			Slug:            "gir",
			Name:            "Gir",
			Species:         SpeciesCattle,
			Origin:          "Gir Hills, Gujarat, India",
			Description:     "The Gir is one of the most important zebu breeds of India, known for its excellent milk production and heat tolerance.",
			Characteristics: "Distinctive domed forehead, long pendulous ears, compact body with short legs, and a well-developed dewlap.",
			MilkYield:       "1,200-1,800 liters per lactation (300 days)",
			Colors:          []string{"Light grey", "Silver grey", "Golden red", "Dark red"},
			Weight:          WeightRange{Male: "400-500 kg", Female: "300-400 kg"},
			SpecialFeatures: []string{
				"Excellent heat tolerance",
				"Disease resistance",
				"Good mothers with strong maternal instincts",
				"Adaptable to harsh conditions",
				"High butterfat content in milk",
			},
			Uses: []string{"Milk production", "Draught work", "Breeding"},
			CareTips: []string{
				"Provide 30-40 liters of clean water daily",
				"Feed 15-20 kg green fodder with 4-5 kg concentrate",
				"Regular grooming and hoof care",
				"Ensure adequate shade during summer",
			},
			BreedingInfo: BreedingInfo{
				AgeAtFirstCalving: "36-40 months",
				CalvingInterval:   "13-15 months",
				BreedingSeason:    "Year-round",
			},
			EconomicImportance: "High milk production, export potential, genetic resource",
			ImageURL:           "/static/breeds/gir.jpg",
			SelectionWeight:    0.25,
		},
		{
			ID:              2,
			Slug:            "sahiwal",
			Name:            "Sahiwal",
			Species:         SpeciesCattle,
			Origin:          "Sahiwal District, Punjab (now Pakistan)",
			Description:     "One of the best dairy breeds of zebu cattle, known for high milk yield and adaptability.",
			Characteristics: "Reddish-brown color, medium to large size, loose skin, prominent hump in males.",
			MilkYield:       "1,400-2,500 liters per lactation (280 days)",
			Colors:          []string{"Reddish brown", "Light red", "Dark red"},
			Weight:          WeightRange{Male: "450-500 kg", Female: "300-400 kg"},
			SpecialFeatures: []string{
				"High milk yield among zebu breeds",
				"Heat tolerance",
				"Good for crossbreeding programs",
				"Docile temperament",
				"Long productive life",
			},
			Uses: []string{"Milk production", "Beef production", "Breeding"},
			CareTips: []string{
				"Provide 35-45 liters of water daily",
				"High-quality green fodder with supplements",
				"Regular vaccination schedule",
				"Comfortable housing with ventilation",
			},
			BreedingInfo: BreedingInfo{
				AgeAtFirstCalving: "32-36 months",
				CalvingInterval:   "12-14 months",
				BreedingSeason:    "Year-round",
			},
			EconomicImportance: "Commercial dairy farming, export breeding stock",
			ImageURL:           "/static/breeds/sahiwal.jpg",
			SelectionWeight:    0.25,
		},
		{
			ID:              3,
			Slug:            "murrah",
			Name:            "Murrah",
			Species:         SpeciesBuffalo,
			Origin:          "Rohtak, Hisar, Haryana, India",
			Description:     "World's best dairy buffalo breed, contributing significantly to India's milk production.",
			Characteristics: "Jet black color, tightly curled horns, wedge-shaped head, broad chest.",
			MilkYield:       "1,800-3,000 liters per lactation (300 days)",
			Colors:          []string{"Jet black", "Dark black"},
			Weight:          WeightRange{Male: "500-600 kg", Female: "400-500 kg"},
			SpecialFeatures: []string{
				"Highest milk yield among buffalo breeds",
				"Rich milk with high fat content",
				"Long lactation period",
				"Hardy and disease resistant",
				"Good fertility rate",
			},
			Uses: []string{"Milk production", "Breeding", "Draft work"},
			CareTips: []string{
				"Provide 60-80 liters of water daily",
				"25-35 kg green fodder with 4-6 kg concentrate",
				"Wallowing facility essential for cooling",
				"Regular hoof trimming required",
			},
			BreedingInfo: BreedingInfo{
				AgeAtFirstCalving: "40-45 months",
				CalvingInterval:   "14-16 months",
				BreedingSeason:    "October to March (peak)",
			},
			EconomicImportance: "Major contribution to milk production, export potential",
			ImageURL:           "/static/breeds/murrah.jpg",
			SelectionWeight:    0.30,
		},
		{
			ID:              4,
			Slug:            "red_sindhi",
			Name:            "Red Sindhi",
			Species:         SpeciesCattle,
			Origin:          "Sindh Province (now Pakistan)",
			Description:     "Medium-sized dairy breed known for its adaptability and tick resistance.",
			Characteristics: "Deep red color, compact body, small to medium hump, alert expression.",
			MilkYield:       "1,100-1,600 liters per lactation (270 days)",
			Colors:          []string{"Deep red", "Dark red", "Red with white patches"},
			Weight:          WeightRange{Male: "400-450 kg", Female: "280-350 kg"},
			SpecialFeatures: []string{
				"Excellent tick resistance",
				"Heat tolerance",
				"Good grazing ability",
				"Hardy constitution",
				"Good mothers",
			},
			Uses: []string{"Milk production", "Crossbreeding", "Draft work"},
			CareTips: []string{
				"25-35 liters of water daily",
				"12-15 kg green fodder with concentrate",
				"Minimal medical intervention needed",
				"Can graze on poor pastures",
			},
			BreedingInfo: BreedingInfo{
				AgeAtFirstCalving: "36-42 months",
				CalvingInterval:   "13-15 months",
				BreedingSeason:    "Year-round",
			},
			EconomicImportance: "Crossbreeding programs, tropical dairy farming",
			ImageURL:           "/static/breeds/red_sindhi.jpg",
			SelectionWeight:    0.15,
		},
		{
			ID:              5,
			Slug:            "nili_ravi",
			Name:            "Nili-Ravi",
			Species:         SpeciesBuffalo,
			Origin:          "Sutlej Valley, Punjab (India/Pakistan)",
			Description:     "Large-sized buffalo breed known for high milk production in riverine areas.",
			Characteristics: "Large body, broad forehead, curved horns, dark grey to black color.",
			MilkYield:       "1,500-2,800 liters per lactation (290 days)",
			Colors:          []string{"Black", "Dark grey", "Brownish black"},
			Weight:          WeightRange{Male: "550-650 kg", Female: "450-550 kg"},
			SpecialFeatures: []string{
				"High milk yield",
				"Good fertility",
				"Strong maternal instincts",
				"Adaptable to riverine conditions",
				"Long productive life",
			},
			Uses: []string{"Milk production", "Draft work", "Breeding"},
			CareTips: []string{
				"70-90 liters of water daily",
				"30-40 kg green fodder with supplements",
				"Access to water for wallowing",
				"Shelter during extreme weather",
			},
			BreedingInfo: BreedingInfo{
				AgeAtFirstCalving: "42-48 months",
				CalvingInterval:   "15-18 months",
				BreedingSeason:    "November to April",
			},
			EconomicImportance: "Commercial dairy farming, rural livelihoods",
			ImageURL:           "/static/breeds/nili_ravi.jpg",
			SelectionWeight:    0.05,
		},
	}
}
