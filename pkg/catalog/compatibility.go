package catalog

import "github.com/agriadvisor/agriadvisor-go/pkg/models"

type soilScores = map[models.SoilType]float64

// compatibility is keyed by the closed CropID set. Every profile in crops and
// seeds must have an entry.
var compatibility = map[models.CropID]models.Compatibility{
	models.CropRice: {
		Soil:              soilScores{models.SoilAlluvial: 1, models.SoilClay: 0.9, models.SoilBlack: 0.7, models.SoilRed: 0.6, models.SoilLaterite: 0.5, models.SoilSandy: 0.4},
		PartialIrrigation: 0.7, Rainfed: 0.5, Complexity: 0.7,
	},
	models.CropWheat: {
		Soil:              soilScores{models.SoilAlluvial: 1, models.SoilBlack: 0.9, models.SoilRed: 0.7, models.SoilClay: 0.8, models.SoilLaterite: 0.5, models.SoilSandy: 0.6},
		PartialIrrigation: 0.7, Rainfed: 0.5, Complexity: 0.7,
	},
	models.CropMaize: {
		Soil:              soilScores{models.SoilAlluvial: 1, models.SoilBlack: 0.9, models.SoilRed: 0.8, models.SoilClay: 0.7, models.SoilSandy: 0.6, models.SoilLaterite: 0.5},
		PartialIrrigation: 0.9, Rainfed: 0.8, Complexity: 0.8,
	},
	models.CropCotton: {
		Soil:              soilScores{models.SoilBlack: 1, models.SoilAlluvial: 0.9, models.SoilRed: 0.8, models.SoilClay: 0.7, models.SoilLaterite: 0.6, models.SoilSandy: 0.5},
		PartialIrrigation: 0.9, Rainfed: 0.5, Complexity: 0.6,
	},
	models.CropGroundnut: {
		Soil:              soilScores{models.SoilSandy: 1, models.SoilRed: 0.9, models.SoilAlluvial: 0.8, models.SoilLaterite: 0.7, models.SoilBlack: 0.6, models.SoilClay: 0.4},
		PartialIrrigation: 0.8, Rainfed: 0.7, Complexity: 0.8,
	},
	models.CropSoybean: {
		Soil:              soilScores{models.SoilBlack: 1, models.SoilAlluvial: 0.9, models.SoilClay: 0.8, models.SoilRed: 0.7, models.SoilLaterite: 0.5, models.SoilSandy: 0.5},
		PartialIrrigation: 0.8, Rainfed: 0.7, Complexity: 0.8,
	},
	models.CropTomato: {
		Soil:              soilScores{models.SoilAlluvial: 1, models.SoilRed: 0.9, models.SoilBlack: 0.8, models.SoilSandy: 0.7, models.SoilLaterite: 0.6, models.SoilClay: 0.6},
		PartialIrrigation: 0.7, Rainfed: 0.5, Complexity: 0.6,
	},
	models.CropChilli: {
		Soil:              soilScores{models.SoilBlack: 1, models.SoilRed: 0.9, models.SoilAlluvial: 0.9, models.SoilLaterite: 0.6, models.SoilClay: 0.6, models.SoilSandy: 0.6},
		PartialIrrigation: 0.7, Rainfed: 0.5, Complexity: 0.6,
	},
	models.CropOnion: {
		Soil:              soilScores{models.SoilAlluvial: 1, models.SoilRed: 0.9, models.SoilBlack: 0.8, models.SoilSandy: 0.7, models.SoilClay: 0.6, models.SoilLaterite: 0.5},
		PartialIrrigation: 0.7, Rainfed: 0.5, Complexity: 0.7,
	},
	models.CropPotato: {
		Soil:              soilScores{models.SoilAlluvial: 1, models.SoilSandy: 0.9, models.SoilRed: 0.8, models.SoilLaterite: 0.6, models.SoilBlack: 0.6, models.SoilClay: 0.5},
		PartialIrrigation: 0.7, Rainfed: 0.5, Complexity: 0.7,
	},
	models.CropSugarcane: {
		Soil:              soilScores{models.SoilAlluvial: 1, models.SoilBlack: 0.9, models.SoilRed: 0.8, models.SoilClay: 0.8, models.SoilLaterite: 0.6, models.SoilSandy: 0.5},
		PartialIrrigation: 0.7, Rainfed: 0.5, Complexity: 0.5,
	},
	models.CropSorghum: {
		Soil:              soilScores{models.SoilBlack: 1, models.SoilAlluvial: 0.9, models.SoilRed: 0.9, models.SoilSandy: 0.7, models.SoilClay: 0.7, models.SoilLaterite: 0.6},
		PartialIrrigation: 0.9, Rainfed: 0.8, Complexity: 0.9,
	},
	models.CropCassava: {
		Soil:              soilScores{models.SoilLaterite: 1, models.SoilRed: 0.9, models.SoilSandy: 0.9, models.SoilAlluvial: 0.8, models.SoilBlack: 0.6, models.SoilClay: 0.5},
		PartialIrrigation: 0.9, Rainfed: 0.8, Complexity: 0.8,
	},
	models.CropChickpea: {
		Soil:              soilScores{models.SoilBlack: 1, models.SoilAlluvial: 0.9, models.SoilRed: 0.8, models.SoilClay: 0.7, models.SoilSandy: 0.6, models.SoilLaterite: 0.5},
		PartialIrrigation: 0.9, Rainfed: 0.8, Complexity: 0.9,
	},
	models.CropSunflower: {
		Soil:              soilScores{models.SoilBlack: 1, models.SoilAlluvial: 0.9, models.SoilRed: 0.8, models.SoilClay: 0.7, models.SoilSandy: 0.6, models.SoilLaterite: 0.5},
		PartialIrrigation: 0.8, Rainfed: 0.7, Complexity: 0.8,
	},
	models.CropBarley: {
		Soil:              soilScores{models.SoilAlluvial: 1, models.SoilSandy: 0.8, models.SoilRed: 0.7, models.SoilBlack: 0.7, models.SoilClay: 0.6, models.SoilLaterite: 0.5},
		PartialIrrigation: 0.8, Rainfed: 0.6, Complexity: 0.8,
	},
	models.CropMillet: {
		Soil:              soilScores{models.SoilSandy: 1, models.SoilRed: 0.9, models.SoilAlluvial: 0.8, models.SoilBlack: 0.8, models.SoilLaterite: 0.7, models.SoilClay: 0.5},
		PartialIrrigation: 0.9, Rainfed: 0.9, Complexity: 0.9,
	},
}
