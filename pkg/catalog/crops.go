package catalog

import "github.com/agriadvisor/agriadvisor-go/pkg/models"

// crops are field crops grown across Indian states, each with three varieties
var crops = []models.CropProfile{
	{
		ID:   models.CropRice,
		Name: "Rice",
		Varieties: []models.Variety{
			{Name: "IR-36", Type: "Short duration", Yield: "5-6 tons/ha", Conditions: cond(models.BucketHigh, models.BucketHigh)},
			{Name: "BPT-5204", Type: "Medium duration", Yield: "6-7 tons/ha", Conditions: cond(models.BucketMedium, models.BucketMedium)},
			{Name: "MTU-7029", Type: "Long duration", Yield: "7-8 tons/ha", Conditions: cond(models.BucketVeryHigh, models.BucketHigh)},
		},
		PHRange:   models.Range{Min: 5.0, Max: 7.5},
		TempRange: models.Range{Min: 20, Max: 35},
		Rainfall:  models.RainfallRequirement{Min: 1000, Max: 2500},
		Regions:   []string{"Kerala", "Tamil Nadu", "Karnataka", "Andhra Pradesh", "West Bengal", "Bihar"},
		Season:    "Kharif",
	},
	{
		ID:   models.CropWheat,
		Name: "Wheat",
		Varieties: []models.Variety{
			{Name: "HD-2967", Type: "Timely sown", Yield: "5-5.5 tons/ha", Conditions: cond(models.BucketMedium, models.BucketLow)},
			{Name: "DBW-187", Type: "Late sown", Yield: "4.5-5 tons/ha", Conditions: cond(models.BucketLow, models.BucketMedium)},
			{Name: "HD-3086", Type: "Heat tolerant", Yield: "5.5-6 tons/ha", Conditions: cond(models.BucketMedium, models.BucketHigh)},
		},
		PHRange:   models.Range{Min: 6.0, Max: 7.5},
		TempRange: models.Range{Min: 15, Max: 25},
		Rainfall:  models.RainfallRequirement{Min: 600, Max: 1100},
		Regions:   []string{"Punjab", "Haryana", "Uttar Pradesh", "Madhya Pradesh", "Rajasthan"},
		Season:    "Rabi",
	},
	{
		ID:   models.CropMaize,
		Name: "Maize",
		Varieties: []models.Variety{
			{Name: "DHM-117", Type: "Hybrid", Yield: "8-9 tons/ha", Conditions: cond(models.BucketMedium, models.BucketMedium)},
			{Name: "PMH-1", Type: "Single cross hybrid", Yield: "7-8 tons/ha", Conditions: cond(models.BucketHigh, models.BucketHigh)},
			{Name: "VMH-45", Type: "Heat tolerant", Yield: "6-7 tons/ha", Conditions: cond(models.BucketLow, models.BucketHigh)},
		},
		PHRange:   models.Range{Min: 5.5, Max: 7.5},
		TempRange: models.Range{Min: 20, Max: 30},
		Rainfall:  models.RainfallRequirement{Min: 500, Max: 1200},
		Regions:   []string{"Karnataka", "Andhra Pradesh", "Bihar", "Maharashtra", "Tamil Nadu"},
		Season:    "Kharif/Rabi",
	},
	{
		ID:   models.CropCotton,
		Name: "Cotton",
		Varieties: []models.Variety{
			{Name: "Suraj", Type: "Medium staple", Yield: "25-30 quintals/ha", Conditions: cond(models.BucketMedium, models.BucketHigh)},
			{Name: "Brahma", Type: "Long staple", Yield: "30-35 quintals/ha", Conditions: cond(models.BucketHigh, models.BucketHigh)},
			{Name: "DCH-32", Type: "Hybrid", Yield: "35-40 quintals/ha", Conditions: cond(models.BucketMedium, models.BucketVeryHigh)},
		},
		PHRange:   models.Range{Min: 6.0, Max: 8.0},
		TempRange: models.Range{Min: 21, Max: 35},
		Rainfall:  models.RainfallRequirement{Min: 500, Max: 1000},
		Regions:   []string{"Gujarat", "Maharashtra", "Telangana", "Punjab", "Haryana"},
		Season:    "Kharif",
	},
	{
		ID:   models.CropGroundnut,
		Name: "Groundnut",
		Varieties: []models.Variety{
			{Name: "TMV-2", Type: "High yielding", Yield: "2.5-3 tons/ha", Conditions: cond(models.BucketMedium, models.BucketHigh)},
			{Name: "TAG-24", Type: "Early maturing", Yield: "2-2.5 tons/ha", Conditions: cond(models.BucketLow, models.BucketMedium)},
			{Name: "GG-20", Type: "Disease resistant", Yield: "2.8-3.2 tons/ha", Conditions: cond(models.BucketHigh, models.BucketHigh)},
		},
		PHRange:   models.Range{Min: 6.0, Max: 7.5},
		TempRange: models.Range{Min: 25, Max: 35},
		Rainfall:  models.RainfallRequirement{Min: 500, Max: 1200},
		Regions:   []string{"Gujarat", "Andhra Pradesh", "Tamil Nadu", "Karnataka", "Maharashtra"},
		Season:    "Kharif",
	},
	{
		ID:   models.CropSoybean,
		Name: "Soybean",
		Varieties: []models.Variety{
			{Name: "JS-335", Type: "High yielding", Yield: "2.5-3 tons/ha", Conditions: cond(models.BucketMedium, models.BucketMedium)},
			{Name: "NRC-37", Type: "Disease resistant", Yield: "2-2.5 tons/ha", Conditions: cond(models.BucketHigh, models.BucketMedium)},
			{Name: "MACS-58", Type: "Early maturing", Yield: "2.2-2.8 tons/ha", Conditions: cond(models.BucketLow, models.BucketHigh)},
		},
		PHRange:   models.Range{Min: 6.0, Max: 7.5},
		TempRange: models.Range{Min: 20, Max: 30},
		Rainfall:  models.RainfallRequirement{Min: 600, Max: 1000},
		Regions:   []string{"Madhya Pradesh", "Maharashtra", "Rajasthan", "Karnataka"},
		Season:    "Kharif",
	},
	{
		ID:   models.CropTomato,
		Name: "Tomato",
		Varieties: []models.Variety{
			{Name: "Arka Vikas", Type: "High yielding", Yield: "25-30 tons/ha", Conditions: cond(models.BucketMedium, models.BucketMedium)},
			{Name: "Pusa Ruby", Type: "Disease resistant", Yield: "20-25 tons/ha", Conditions: cond(models.BucketLow, models.BucketMedium)},
			{Name: "NS-816", Type: "Hybrid", Yield: "30-35 tons/ha", Conditions: cond(models.BucketMedium, models.BucketHigh)},
		},
		PHRange:   models.Range{Min: 6.0, Max: 7.0},
		TempRange: models.Range{Min: 20, Max: 30},
		Rainfall:  models.RainfallRequirement{Min: 400, Max: 800},
		Regions:   []string{"Karnataka", "Maharashtra", "Andhra Pradesh", "Tamil Nadu", "Gujarat"},
		Season:    "Year round",
	},
	{
		ID:   models.CropChilli,
		Name: "Chilli",
		Varieties: []models.Variety{
			{Name: "Pusa Jwala", Type: "High yielding", Yield: "2-2.5 tons/ha", Conditions: cond(models.BucketMedium, models.BucketHigh)},
			{Name: "G4", Type: "Disease resistant", Yield: "1.8-2.2 tons/ha", Conditions: cond(models.BucketLow, models.BucketVeryHigh)},
			{Name: "K2", Type: "Hybrid", Yield: "2.5-3 tons/ha", Conditions: cond(models.BucketMedium, models.BucketMedium)},
		},
		PHRange:   models.Range{Min: 6.0, Max: 7.0},
		TempRange: models.Range{Min: 20, Max: 35},
		Rainfall:  models.RainfallRequirement{Min: 500, Max: 1000},
		Regions:   []string{"Andhra Pradesh", "Karnataka", "Tamil Nadu", "Maharashtra"},
		Season:    "Kharif/Rabi",
	},
	{
		ID:   models.CropOnion,
		Name: "Onion",
		Varieties: []models.Variety{
			{Name: "Agrifound Light Red", Type: "High yielding", Yield: "25-30 tons/ha", Conditions: cond(models.BucketMedium, models.BucketMedium)},
			{Name: "Bhima Super", Type: "Disease resistant", Yield: "30-35 tons/ha", Conditions: cond(models.BucketLow, models.BucketHigh)},
			{Name: "N-53", Type: "Storage type", Yield: "20-25 tons/ha", Conditions: cond(models.BucketMedium, models.BucketMedium)},
		},
		PHRange:   models.Range{Min: 6.0, Max: 7.0},
		TempRange: models.Range{Min: 15, Max: 30},
		Rainfall:  models.RainfallRequirement{Min: 450, Max: 800},
		Regions:   []string{"Maharashtra", "Karnataka", "Gujarat", "Madhya Pradesh"},
		Season:    "Rabi",
	},
	{
		ID:   models.CropPotato,
		Name: "Potato",
		Varieties: []models.Variety{
			{Name: "Kufri Jyoti", Type: "High yielding", Yield: "25-30 tons/ha", Conditions: cond(models.BucketMedium, models.BucketLow)},
			{Name: "Kufri Chandramukhi", Type: "Early maturing", Yield: "20-25 tons/ha", Conditions: cond(models.BucketMedium, models.BucketMedium)},
			{Name: "Kufri Sindhuri", Type: "Disease resistant", Yield: "22-28 tons/ha", Conditions: cond(models.BucketHigh, models.BucketLow)},
		},
		PHRange:   models.Range{Min: 5.5, Max: 6.5},
		TempRange: models.Range{Min: 15, Max: 25},
		Rainfall:  models.RainfallRequirement{Min: 500, Max: 1000},
		Regions:   []string{"Uttar Pradesh", "West Bengal", "Punjab", "Bihar"},
		Season:    "Rabi",
	},
}

func cond(rainfall, temperature models.Bucket) models.VarietyConditions {
	return models.VarietyConditions{Rainfall: rainfall, Temperature: temperature}
}
