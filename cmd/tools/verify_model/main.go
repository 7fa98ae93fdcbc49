// Command verify_model prints the full derivation for one capital
// configuration and checks it against the worked reference example
// (Standard Oven, price €15, labour 3). Handy when editing the catalog.
// With -narrate it also asks Gemini for a prose read of the cost table.
package main

import (
	"context"
	"flag"
	"fmt"
	"math"
	"os"
	"time"

	"econ_explorer/pkg/core/catalog"
	"econ_explorer/pkg/core/econ"
	"econ_explorer/pkg/core/explain"
	"econ_explorer/pkg/models"
)

func main() {
	narrate := flag.Bool("narrate", false, "generate a prose explanation of the table (needs GEMINI_API_KEY)")
	flag.Parse()

	name := "Standard Oven"
	if flag.NArg() > 0 {
		name = flag.Arg(0)
	}

	cat := catalog.Active()
	config, ok := cat.Get(name)
	if !ok {
		fmt.Printf("Unknown configuration %q. Available: %v\n", name, cat.Names())
		os.Exit(1)
	}

	price := 15.0
	records := econ.Derive(config, price, econ.DefaultMaxLabour)

	fmt.Printf("--- %s %s (fixed cost €%.2f, price €%.2f) ---\n", config.Icon, config.Name, config.FixedCost, price)
	fmt.Println("L   Q     MP     TR       VC       TC       Profit   MC       ATC")
	for _, r := range records {
		fmt.Printf("%-3d %-5.0f %-6.0f %-8.2f %-8.2f %-8.2f %-8.2f %-8s %-8s\n",
			r.Labour, r.TotalProduction, r.MarginalProduct, r.TotalRevenue,
			r.VariableCost, r.TotalCost, r.TotalProfit,
			rate(r.MarginalCost), rate(r.AverageTotalCost))
	}

	best := econ.MaxProfitRecord(records)
	cheapest := econ.MinAverageCostRecord(records)
	fmt.Printf("\nMax profit: €%.2f at labour %d\n", best.TotalProfit, best.Labour)
	fmt.Printf("Min average cost: %s at labour %d\n", rate(cheapest.AverageTotalCost), cheapest.Labour)

	// Reference check against the worked example.
	if name == "Standard Oven" {
		r := records[3]
		ok := r.TotalProduction == 45 &&
			r.TotalRevenue == 675 &&
			r.TotalCost == 580 &&
			r.TotalProfit == 95 &&
			r.MarginalCost == 8 &&
			math.Abs(r.AverageTotalCost-12.8889) < 0.001
		if ok {
			fmt.Println("\nReference check (labour 3): OK")
		} else {
			fmt.Printf("\nReference check (labour 3): MISMATCH %+v\n", r)
			os.Exit(1)
		}
	}

	if *narrate {
		ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
		defer cancel()

		narrator, err := explain.NewNarrator(ctx)
		if err != nil {
			fmt.Printf("\nNarration unavailable: %v\n", err)
			os.Exit(1)
		}
		defer narrator.Close()

		text, err := narrator.Narrate(ctx, config, records)
		if err != nil {
			fmt.Printf("\nNarration failed: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("\n--- Narration ---\n%s\n", text)
	}
}

func rate(v float64) string {
	if models.IsUndefined(v) {
		return "N/A"
	}
	return fmt.Sprintf("%.2f", v)
}
