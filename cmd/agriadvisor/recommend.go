package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/agriadvisor/agriadvisor-go/pkg/catalog"
	"github.com/agriadvisor/agriadvisor-go/pkg/models"
	"github.com/agriadvisor/agriadvisor-go/pkg/scoring"
)

var recommendFlags struct {
	ph         float64
	temp       float64
	rain       float64
	region     string
	soil       string
	irrigation string
	experience string
	strategy   string
	set        string
	top        int
	min        float64
	jsonOut    bool
}

var recommendCmd = &cobra.Command{
	Use:   "recommend",
	Short: "Rank crops for the given growing conditions",
	Example: `  agriadvisor recommend --ph 6.5 --temp 25 --rain 1200 --region Kerala
  agriadvisor recommend --ph 6.0 --temp 28 --rain 1200 --region tropical --set seeds --strategy simple --min 0.4`,
	RunE: runRecommend,
}

func init() {
	f := recommendCmd.Flags()
	f.Float64Var(&recommendFlags.ph, "ph", 0, "soil pH (0-14)")
	f.Float64Var(&recommendFlags.temp, "temp", 0, "average temperature in °C")
	f.Float64Var(&recommendFlags.rain, "rain", 0, "annual rainfall in mm")
	f.StringVar(&recommendFlags.region, "region", "", "state or climate zone")
	f.StringVar(&recommendFlags.soil, "soil", "", "soil type (Alluvial, Clay, Black, Red, Laterite, Sandy)")
	f.StringVar(&recommendFlags.irrigation, "irrigation", "", "irrigation available (Full, Partial, Rainfed)")
	f.StringVar(&recommendFlags.experience, "experience", "", "farming experience (Beginner, Intermediate, Experienced)")
	f.StringVar(&recommendFlags.strategy, "strategy", scoring.StrategyExtended, "scoring strategy (extended, simple)")
	f.StringVar(&recommendFlags.set, "set", string(catalog.SetCrops), "profile set (crops, seeds, all)")
	f.IntVar(&recommendFlags.top, "top", 5, "maximum results, 0 for all")
	f.Float64Var(&recommendFlags.min, "min", 0, "minimum confidence")
	f.BoolVar(&recommendFlags.jsonOut, "json", false, "print JSON instead of a table")

	_ = recommendCmd.MarkFlagRequired("ph")
	_ = recommendCmd.MarkFlagRequired("temp")
	_ = recommendCmd.MarkFlagRequired("rain")
}

func runRecommend(cmd *cobra.Command, args []string) error {
	strategy, err := scoring.StrategyByName(recommendFlags.strategy)
	if err != nil {
		return err
	}
	profiles, err := catalog.Default.Profiles(catalog.Set(recommendFlags.set))
	if err != nil {
		return err
	}

	cv := models.ConditionVector{
		SoilPH:      recommendFlags.ph,
		Temperature: recommendFlags.temp,
		Rainfall:    recommendFlags.rain,
		Region:      recommendFlags.region,
	}
	if recommendFlags.soil != "" {
		cv.SoilType = models.ParseSoilType(recommendFlags.soil)
	}
	if recommendFlags.irrigation != "" {
		cv.Irrigation = models.ParseIrrigation(recommendFlags.irrigation)
	}
	if recommendFlags.experience != "" {
		cv.Experience = models.ParseExperience(recommendFlags.experience)
	}

	recs, err := scoring.NewEngine(catalog.Default).Recommend(cv, profiles, scoring.Options{
		Strategy:      strategy,
		TopN:          recommendFlags.top,
		MinConfidence: recommendFlags.min,
	})
	if err != nil {
		return err
	}

	if recommendFlags.jsonOut {
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(models.RecommendationResponse{Recommendations: recs})
	}
	return renderRecommendations(cmd.OutOrStdout(), recs)
}

var headerStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
var cellStyle = lipgloss.NewStyle().Padding(0, 1)

func renderRecommendations(w io.Writer, recs []models.ScoredCandidate) error {
	if len(recs) == 0 {
		_, err := fmt.Fprintln(w, "No crops match these conditions.")
		return err
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("#", "Crop", "Variety", "Season", "Confidence").
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		})

	for i, r := range recs {
		variety := r.VarietyName
		if variety == "" {
			variety = "-"
		}
		t.Row(strconv.Itoa(i+1), r.CropName, variety, r.Season, fmt.Sprintf("%.0f%%", r.Confidence*100))
	}

	_, err := fmt.Fprintln(w, t.Render())
	return err
}
