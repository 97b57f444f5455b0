package catalog

import "github.com/agriadvisor/agriadvisor-go/pkg/models"

// seeds are described by climate zone and minimum annual rainfall only
var seeds = []models.CropProfile{
	seed(models.CropRice, "Rice", 5.5, 6.5, 21, 37, 1000,
		"Staple crop that thrives in warm, humid conditions with high rainfall",
		"tropical", "subtropical"),
	seed(models.CropWheat, "Wheat", 6.0, 7.0, 15, 24, 500,
		"Cool-season grain crop suitable for moderate temperatures",
		"temperate", "mediterranean", "subtropical"),
	seed(models.CropMaize, "Corn (Maize)", 5.8, 7.0, 20, 30, 600,
		"Versatile crop that requires warm temperatures and moderate rainfall",
		"temperate", "tropical", "subtropical"),
	seed(models.CropSoybean, "Soybeans", 6.0, 6.8, 20, 30, 700,
		"Legume crop that fixes nitrogen in soil",
		"temperate", "subtropical"),
	seed(models.CropCotton, "Cotton", 5.8, 7.0, 21, 35, 500,
		"Warm-season crop that requires long frost-free periods",
		"tropical", "subtropical"),
	seed(models.CropTomato, "Tomatoes", 6.0, 6.8, 20, 27, 400,
		"Warm-season fruit crop that needs well-drained soil",
		"temperate", "mediterranean", "subtropical"),
	seed(models.CropPotato, "Potatoes", 5.0, 6.5, 15, 23, 500,
		"Cool-season tuber crop that prefers slightly acidic soil",
		"temperate", "subtropical"),
	seed(models.CropSugarcane, "Sugarcane", 6.0, 7.5, 20, 35, 1500,
		"Tropical grass that requires high rainfall and temperatures",
		"tropical", "subtropical"),
	seed(models.CropSorghum, "Sorghum", 5.5, 7.5, 20, 35, 450,
		"Drought-tolerant grain crop suitable for hot climates",
		"tropical", "subtropical", "temperate"),
	seed(models.CropGroundnut, "Peanuts", 5.9, 7.0, 20, 34, 500,
		"Legume that requires well-drained sandy soil",
		"tropical", "subtropical"),
	seed(models.CropCassava, "Cassava", 5.5, 6.5, 20, 35, 750,
		"Tropical root crop tolerant to drought and poor soils",
		"tropical"),
	seed(models.CropChickpea, "Chickpeas", 6.0, 8.0, 15, 29, 400,
		"Cool-season legume that tolerates dry conditions",
		"mediterranean", "temperate", "subtropical"),
	seed(models.CropSunflower, "Sunflower", 6.0, 7.5, 18, 35, 500,
		"Drought-tolerant oilseed crop",
		"temperate", "subtropical"),
	seed(models.CropBarley, "Barley", 6.0, 7.0, 12, 25, 450,
		"Hardy grain crop suitable for cooler climates",
		"temperate", "mediterranean"),
	seed(models.CropMillet, "Millet", 5.5, 7.0, 20, 35, 400,
		"Drought-resistant grain crop for hot climates",
		"tropical", "subtropical"),
}

func seed(id models.CropID, name string, phMin, phMax, tMin, tMax, minRain float64, desc string, zones ...string) models.CropProfile {
	return models.CropProfile{
		ID:          id,
		Name:        name,
		PHRange:     models.Range{Min: phMin, Max: phMax},
		TempRange:   models.Range{Min: tMin, Max: tMax},
		Rainfall:    models.RainfallRequirement{Min: minRain},
		Regions:     zones,
		Description: desc,
	}
}
