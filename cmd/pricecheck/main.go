package main

import (
	"fmt"
	"os"
	"time"

	"tripwatch/internal/adapter/persistence/repository"
	"tripwatch/internal/domain/entities"
	"tripwatch/internal/infrastructure/database"
	"tripwatch/internal/infrastructure/search"
	"tripwatch/internal/usecase"
	"tripwatch/internal/usecase/interfaces"

	"github.com/fatih/color"
	_ "github.com/joho/godotenv/autoload"
	"github.com/spf13/cobra"
)

// One-shot CLI front end for the price-check pipeline. Uses the same wiring
// as the HTTP service: TAVILY_API_KEY for real searches (simulated quotes
// without it), PERSIST_REPORTS + AWS env for report storage.

func main() {
	rootCmd := newRootCommand()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	var (
		userID       string
		origin       string
		destination  string
		startDate    string
		endDate      string
		totalBudget  float64
		flightBudget float64
		hotelBudget  float64
		carBudget    float64
	)

	cmd := &cobra.Command{
		Use:   "pricecheck",
		Short: "Check flight, hotel and car prices for a trip against a budget",
		RunE: func(cmd *cobra.Command, args []string) error {
			start, err := time.Parse("2006-01-02", startDate)
			if err != nil {
				return fmt.Errorf("invalid --start date %q: want YYYY-MM-DD", startDate)
			}
			end, err := time.Parse("2006-01-02", endDate)
			if err != nil {
				return fmt.Errorf("invalid --end date %q: want YYYY-MM-DD", endDate)
			}

			var gateway interfaces.ISearchGateway
			if tavily, err := search.NewTavilyGateway(os.Getenv("TAVILY_API_KEY")); err == nil {
				gateway = tavily
			} else {
				color.Yellow("Search gateway not configured, all quotes will be simulated")
			}

			var repo interfaces.IPriceReportRepository
			if os.Getenv("PERSIST_REPORTS") == "true" {
				repo = repository.NewPriceReportDynamoRepository(database.ConnectDynamoDB())
			}

			uc := usecase.NewPriceCheckUseCase(gateway, repo)
			report, err := uc.CheckPrices(cmd.Context(), entities.TripRequest{
				UserID:              userID,
				Origin:              origin,
				Destination:         destination,
				StartDate:           start,
				EndDate:             end,
				TotalBudget:         totalBudget,
				FlightBudget:        flightBudget,
				HotelBudgetPerNight: hotelBudget,
				CarBudgetPerDay:     carBudget,
			})
			if err != nil {
				return err
			}

			printReport(report, totalBudget)
			return nil
		},
	}

	cmd.Flags().StringVarP(&userID, "user", "u", "", "User ID to store the report under (requires PERSIST_REPORTS)")
	cmd.Flags().StringVarP(&origin, "origin", "o", "", "Trip origin, e.g. NYC")
	cmd.Flags().StringVarP(&destination, "destination", "d", "", "Trip destination, e.g. LAX")
	cmd.Flags().StringVar(&startDate, "start", "", "Start date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&endDate, "end", "", "End date (YYYY-MM-DD)")
	cmd.Flags().Float64Var(&totalBudget, "total-budget", 2000, "Total trip budget")
	cmd.Flags().Float64Var(&flightBudget, "flight-budget", 600, "Round-trip flight budget")
	cmd.Flags().Float64Var(&hotelBudget, "hotel-budget", 200, "Hotel budget per night")
	cmd.Flags().Float64Var(&carBudget, "car-budget", 60, "Car rental budget per day")

	cobra.CheckErr(cmd.MarkFlagRequired("origin"))
	cobra.CheckErr(cmd.MarkFlagRequired("destination"))
	cobra.CheckErr(cmd.MarkFlagRequired("start"))
	cobra.CheckErr(cmd.MarkFlagRequired("end"))

	return cmd
}

func printReport(r entities.PriceReport, totalBudget float64) {
	bold := color.New(color.Bold)
	bold.Printf("Price report %s (%d day trip)\n\n", r.ID, r.Days)

	printQuote("Flight", r.Flight, "")
	printQuote("Hotel", r.Hotel, "/night")
	printQuote("Car", r.Car, "/day")

	fmt.Println()
	if r.WithinTotalBudget {
		color.Green("Total: $%d of $%.0f budget (within budget)", r.TotalCost, totalBudget)
	} else {
		color.Red("Total: $%d of $%.0f budget (over budget)", r.TotalCost, totalBudget)
	}
}

func printQuote(name string, q entities.CategoryQuote, unit string) {
	status := color.GreenString("ok")
	if !q.WithinBudget {
		status = color.RedString("over")
	}
	tag := ""
	if q.Provenance == entities.ProvenanceFallback {
		tag = color.YellowString(" (simulated)")
	}
	fmt.Printf("  %-7s $%d%s  %s  [%s]%s\n", name, q.Price, unit, q.Label, status, tag)
	for _, u := range q.BookingURLs {
		fmt.Printf("          %s\n", u)
	}
}
