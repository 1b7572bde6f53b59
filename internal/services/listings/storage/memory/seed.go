package memory

import "github.com/gt-examples/apartment-listings/internal/services/listings/domain"

// Seed returns the sample catalog served by the site.
func Seed() []domain.Apartment {
	return []domain.Apartment{
		{
			ID:            1,
			Slug:          "sunset-terrace",
			Name:          "Sunset Terrace",
			Neighborhood:  domain.Downtown,
			Bedrooms:      2,
			Bathrooms:     1,
			AreaSqft:      850,
			MonthlyRent:   2400,
			AvailableFrom: domain.MustParseDate("2026-03-01"),
			Features:      []domain.Feature{domain.FeatureInUnitLaundry, domain.FeatureBalcony, domain.FeatureParking},
			Status:        domain.StatusAvailable,
			Description:   "A bright corner unit with floor-to-ceiling windows offering panoramic views of the downtown skyline. The open-plan living area flows into a modern kitchen with quartz countertops and stainless steel appliances. The private balcony is perfect for morning coffee or evening relaxation.",
			Amenities: []string{
				"Central heating and cooling",
				"Hardwood floors",
				"Stainless steel appliances",
				"Quartz countertops",
				"Walk-in closet",
				"In-unit washer and dryer",
				"Private balcony",
				"Dedicated parking spot",
			},
			NeighborhoodInfo: "Downtown is the cultural heart of the city, with restaurants, galleries, and theaters within walking distance. Public transit is steps away, and the waterfront park is a ten-minute stroll.",
			YearBuilt:        2019,
			Floor:            8,
			Deposit:          2400,
			PetPolicy:        "Cats allowed, no dogs",
			LeaseTerms:       "12-month minimum lease",
		},
		{
			ID:            2,
			Slug:          "harbor-view-loft",
			Name:          "Harbor View Loft",
			Neighborhood:  domain.Waterfront,
			Bedrooms:      1,
			Bathrooms:     1,
			AreaSqft:      620,
			MonthlyRent:   1850,
			AvailableFrom: domain.MustParseDate("2026-03-15"),
			Features:      []domain.Feature{domain.FeatureGymAccess, domain.FeatureRooftopDeck},
			Status:        domain.StatusAvailable,
			Description:   "An industrial-chic loft with exposed brick walls, polished concrete floors, and soaring ceilings. The oversized windows frame views of the harbor and marina. The building includes a state-of-the-art fitness center and a shared rooftop deck with grilling stations.",
			Amenities: []string{
				"Exposed brick walls",
				"Polished concrete floors",
				"High ceilings",
				"Building gym",
				"Rooftop deck with grill",
				"Bike storage",
				"Package locker system",
				"Controlled building access",
			},
			NeighborhoodInfo: "The Waterfront district is a vibrant area with seafood restaurants, weekend farmers markets, and scenic walking trails along the harbor. The ferry terminal connects to nearby islands.",
			YearBuilt:        2021,
			Floor:            4,
			Deposit:          1850,
			PetPolicy:        "No pets",
			LeaseTerms:       "12-month minimum lease",
		},
		{
			ID:            3,
			Slug:          "elm-street-studio",
			Name:          "Elm Street Studio",
			Neighborhood:  domain.Midtown,
			Bedrooms:      0,
			Bathrooms:     1,
			AreaSqft:      420,
			MonthlyRent:   1200,
			AvailableFrom: domain.MustParseDate("2026-02-20"),
			Features:      []domain.Feature{domain.FeatureUtilitiesIncluded, domain.FeaturePetFriendly},
			Status:        domain.StatusPending,
			Description:   "A cozy and efficient studio apartment ideal for students or young professionals. The cleverly designed layout maximizes every square foot, with a murphy bed, built-in shelving, and a compact but fully equipped kitchenette. All utilities are included in the rent.",
			Amenities: []string{
				"Murphy bed",
				"Built-in shelving",
				"Full kitchenette",
				"All utilities included",
				"Shared laundry room",
				"Bicycle parking",
				"On-site maintenance",
				"High-speed internet ready",
			},
			NeighborhoodInfo: "Midtown is a bustling neighborhood popular with students and creatives. Independent bookshops, coffee houses, and coworking spaces line the tree-shaded streets. The university campus is a short bus ride away.",
			YearBuilt:        1985,
			Floor:            2,
			Deposit:          1200,
			PetPolicy:        "Pets welcome with deposit",
			LeaseTerms:       "6-month minimum lease",
		},
		{
			ID:            4,
			Slug:          "maple-court",
			Name:          "Maple Court",
			Neighborhood:  domain.Suburbs,
			Bedrooms:      3,
			Bathrooms:     2,
			AreaSqft:      1200,
			MonthlyRent:   3100,
			AvailableFrom: domain.MustParseDate("2026-04-01"),
			Features:      []domain.Feature{domain.FeatureGarage, domain.FeatureBackyard, domain.FeatureFireplace, domain.FeatureInUnitLaundry},
			Status:        domain.StatusAvailable,
			Description:   "A spacious family-friendly apartment in a quiet residential complex. The open living room features a wood-burning fireplace and flows into a bright dining area. The private backyard is fully fenced, and the attached two-car garage offers secure parking and extra storage.",
			Amenities: []string{
				"Wood-burning fireplace",
				"Private fenced backyard",
				"Two-car garage",
				"In-unit washer and dryer",
				"Central air conditioning",
				"Walk-in closets",
				"Dishwasher",
				"Playground on premises",
			},
			NeighborhoodInfo: "The Suburbs offer a peaceful atmosphere with tree-lined streets, top-rated schools, and family parks. A community shopping center with grocery stores and dining is a five-minute drive away.",
			YearBuilt:        2010,
			Floor:            1,
			Deposit:          3100,
			PetPolicy:        "Pets welcome, breed restrictions apply",
			LeaseTerms:       "12-month minimum lease",
		},
		{
			ID:            5,
			Slug:          "pine-ridge-flat",
			Name:          "Pine Ridge Flat",
			Neighborhood:  domain.Eastside,
			Bedrooms:      2,
			Bathrooms:     2,
			AreaSqft:      950,
			MonthlyRent:   2750,
			AvailableFrom: domain.MustParseDate("2026-03-10"),
			Features:      []domain.Feature{domain.FeatureGymAccess, domain.FeaturePool, domain.FeatureConcierge},
			Status:        domain.StatusLeased,
			Description:   "A luxury flat in a full-service building with resort-style amenities. The unit features an open kitchen with a breakfast bar, a spacious living area, and two ensuite bedrooms. Residents enjoy a heated pool, fitness center, and 24-hour concierge service.",
			Amenities: []string{
				"Heated swimming pool",
				"Fitness center",
				"24-hour concierge",
				"Breakfast bar",
				"Ensuite bathrooms",
				"Walk-in closets",
				"Central heating and cooling",
				"Visitor parking",
			},
			NeighborhoodInfo: "The Eastside is an upscale neighborhood known for its boutique shopping, fine dining, and weekend art walks. Several parks and nature trails are nearby, and the expressway provides quick access to the city center.",
			YearBuilt:        2023,
			Floor:            12,
			Deposit:          5500,
			PetPolicy:        "Small pets allowed with approval",
			LeaseTerms:       "12-month minimum lease",
		},
		{
			ID:            6,
			Slug:          "birch-lane-apartment",
			Name:          "Birch Lane Apartment",
			Neighborhood:  domain.Northgate,
			Bedrooms:      1,
			Bathrooms:     1,
			AreaSqft:      550,
			MonthlyRent:   1450,
			AvailableFrom: domain.MustParseDate("2026-05-01"),
			Features:      []domain.Feature{domain.FeaturePetFriendly, domain.FeatureStorageUnit},
			Status:        domain.StatusAvailable,
			Description:   "A charming one-bedroom apartment in a well-maintained brick building. The unit features original hardwood floors, updated fixtures, and a sunny eat-in kitchen. A private storage unit in the basement is included with the lease.",
			Amenities: []string{
				"Hardwood floors",
				"Updated kitchen fixtures",
				"Eat-in kitchen",
				"Private basement storage",
				"Shared courtyard",
				"On-site laundry",
				"Street parking",
				"Smoke-free building",
			},
			NeighborhoodInfo: "Northgate is a quiet, established neighborhood with a strong community feel. Local bakeries, a weekly farmers market, and a large public library make it a comfortable place to call home. The light rail station is two blocks away.",
			YearBuilt:        1998,
			Floor:            3,
			Deposit:          1450,
			PetPolicy:        "Pets welcome, no weight limit",
			LeaseTerms:       "12-month minimum lease",
		},
	}
}
