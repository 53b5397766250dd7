package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"

	"restaurant-finder-api/internal/app"
	"restaurant-finder-api/internal/config"
	"restaurant-finder-api/internal/credential"
	"restaurant-finder-api/internal/logging"
	"restaurant-finder-api/internal/models"
)

type cuisineFlag []string

func (c *cuisineFlag) String() string { return strings.Join(*c, ",") }

func (c *cuisineFlag) Set(v string) error {
	for _, tag := range strings.Split(v, ",") {
		if tag = strings.TrimSpace(tag); tag != "" {
			*c = append(*c, tag)
		}
	}
	return nil
}

func main() {
	defaults := models.DefaultCriteria()

	address := flag.String("address", defaults.Address, "Address to search around")
	lat := flag.Float64("lat", 0, "Device latitude (with -gps)")
	lng := flag.Float64("lng", 0, "Device longitude (with -gps)")
	gps := flag.Bool("gps", false, "Use -lat/-lng instead of geocoding -address")
	radius := flag.Int("radius", defaults.RadiusMeters, "Search radius in meters (100, 500, 1000, 5000)")
	meal := flag.String("meal", "", "Meal time (不限, 早餐, 午餐, 晚餐, 消夜, 點心)")
	budget := flag.String("budget", string(defaults.Budget), "Budget per person (100, 300, 500, 1000)")
	minRating := flag.Float64("min-rating", defaults.MinRating, "Minimum rating")
	configDir := flag.String("config", "configs", "Directory containing app.env")
	var cuisines cuisineFlag
	flag.Var(&cuisines, "cuisine", "Cuisine tag, repeatable or comma separated")
	flag.Parse()

	if len(cuisines) == 0 {
		cuisines = defaults.Cuisines
	}

	cfg, err := config.LoadConfig(*configDir)
	if err != nil {
		fmt.Printf("Error loading config: %v\n", err)
		os.Exit(1)
	}
	logger := logging.Setup(cfg.LogLevel, "console", os.Stderr)

	apiKey, err := credential.NewProvider(cfg.GoogleAPIKey, credential.TerminalPrompt(os.Stderr)).APIKey()
	if err != nil {
		fmt.Println(models.UserMessage(err))
		os.Exit(1)
	}

	mealTime, err := models.ParseMealTime(*meal)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(2)
	}

	criteria := models.SearchCriteria{
		Mode:         models.LocationManual,
		Address:      *address,
		RadiusMeters: *radius,
		MealTime:     mealTime,
		Budget:       models.BudgetTier(*budget),
		Cuisines:     cuisines,
		MinRating:    *minRating,
	}
	if *gps {
		criteria.Mode = models.LocationDeviceGPS
		criteria.DeviceCoords = &models.Coordinates{Lat: *lat, Lng: *lng}
	}

	ctx := context.Background()
	services, err := app.New(ctx, cfg, apiKey, logger)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}
	defer services.Close()

	result, err := services.Search.Search(ctx, criteria)
	if err != nil {
		fmt.Println(models.UserMessage(err))
		var valErr *models.ValidationError
		if errors.As(err, &valErr) || errors.Is(err, models.ErrInvalidBudget) {
			os.Exit(2)
		}
		os.Exit(1)
	}

	printResult(os.Stdout, result)
}

func printResult(w io.Writer, result *models.SearchResult) {
	if result.Empty() {
		fmt.Fprintln(w, models.UserMessage(models.ErrNoResultsAfterFilter))
		return
	}

	fmt.Fprintf(w, "找到 %d 間符合條件的餐廳！ (keyword %q, max price %d)\n\n", len(result.Places), result.Query.Keyword, result.Query.MaxPrice)

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "RATING\tNAME\tPRICE\tADDRESS\tMAP")
	for _, p := range result.Places {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n", p.RatingLabel(), p.Name, strings.Repeat("$", p.PriceLevel), p.Address, p.MapsURL)
	}
	tw.Flush()
}
