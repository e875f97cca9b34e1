package cli

import (
	"context"

	"github.com/iudanet/relocateme/internal/refdata"
)

func (c *Cli) runCompare(ctx context.Context) error {
	token, err := c.token(ctx)
	if err != nil {
		return err
	}

	cmp, err := c.api.Comparison(ctx, token)
	if err != nil {
		return authError(err)
	}

	from, to, m := cmp.FromLocation, cmp.ToLocation, cmp.ComparisonMetrics

	c.io.Printf("=== %s -> %s ===\n", from.Name, to.Name)
	c.io.Printf("%-22s %10s %10s\n", "", "from", "to")
	c.io.Printf("%-22s %10.1f %10.1f\n", "Cost of living index", from.CostOfLivingIndex, to.CostOfLivingIndex)
	c.io.Printf("%-22s %10.1f %10.1f\n", "Housing cost index", from.HousingCostIndex, to.HousingCostIndex)
	c.io.Printf("%-22s %10.1f %10.1f\n", "Safety index", from.SafetyIndex, to.SafetyIndex)
	c.io.Printf("%-22s %10d %10d\n", "Avg temperature (F)", from.Weather.AvgTempF, to.Weather.AvgTempF)
	c.io.Println()
	c.io.Printf("Cost difference:    %+.1f%%\n", m.CostDifferencePercent)
	c.io.Printf("Housing difference: %+.1f%%\n", m.HousingDifferencePercent)
	c.io.Printf("Safety change:      %+.1f\n", m.SafetyImprovement)
	c.io.Printf("Temperature change: %+dF, humidity %+d%%\n", m.ClimateChange.TemperatureChange, m.ClimateChange.HumidityChange)

	if len(cmp.RelocationTips) > 0 {
		c.io.Println()
		c.io.Println("Tips:")
		for _, tip := range cmp.RelocationTips {
			c.io.Printf("  - %s\n", tip)
		}
	}

	return nil
}

// runJobs: jobs [category] [type]
func (c *Cli) runJobs(ctx context.Context, args []string) error {
	var category, jobType string
	if len(args) > 0 {
		category = args[0]
	}
	if len(args) > 1 {
		jobType = args[1]
	}

	jobs, err := c.api.JobListings(ctx, category, jobType)
	if err != nil {
		return err
	}

	c.io.Println("=== Job Listings ===")
	if len(jobs) == 0 {
		c.io.Println("No jobs found.")
		return nil
	}

	for _, j := range jobs {
		c.io.Printf("%s - %s (%s)\n", j.Title, j.Company, j.Location)
		c.io.Printf("  %s | %s | %s", j.Category, j.JobType, j.SalaryRange)
		if j.VisaSponsorship {
			c.io.Printf(" | visa sponsorship")
		}
		c.io.Println()
	}
	c.io.Printf("\nTotal: %d\n", len(jobs))

	return nil
}

// runVisa: visa [type]
func (c *Cli) runVisa(ctx context.Context, args []string) error {
	if len(args) > 0 {
		v, err := c.api.VisaRequirement(ctx, args[0])
		if err != nil {
			return err
		}
		c.printVisa(*v)
		return nil
	}

	visas, err := c.api.VisaRequirements(ctx)
	if err != nil {
		return err
	}

	c.io.Println("=== UK Visa Routes ===")
	for _, v := range visas {
		c.io.Printf("%-16s %s (%s)\n", v.Type, v.Name, v.ProcessingTime)
	}
	c.io.Println()
	c.io.Println("Run 'relocate visa <type>' for details.")

	return nil
}

func (c *Cli) printVisa(v refdata.VisaRequirement) {
	c.io.Printf("=== %s ===\n", v.Name)
	c.io.Println(v.Description)
	c.io.Printf("Processing time: %s\n", v.ProcessingTime)
	c.io.Printf("Cost:            %s\n", v.Cost)
	c.io.Printf("Validity:        %s\n", v.Validity)
	c.io.Println("Requirements:")
	for _, r := range v.Requirements {
		c.io.Printf("  - %s\n", r)
	}
}

func (c *Cli) runChecklist(ctx context.Context) error {
	items, err := c.api.VisaChecklist(ctx)
	if err != nil {
		return err
	}

	c.io.Println("=== Visa Document Checklist ===")
	for _, item := range items {
		req := "optional"
		if item.Required {
			req = "required"
		}
		c.io.Printf("[ ] %s (%s, %s)\n", item.Item, item.Category, req)
	}

	return nil
}

func (c *Cli) runResources(ctx context.Context) error {
	categories, err := c.api.Resources(ctx)
	if err != nil {
		return err
	}

	c.io.Println("=== Resources ===")
	for _, cat := range categories {
		c.io.Printf("[%s]\n", cat.Category)
		for _, l := range cat.Links {
			c.io.Printf("  %s - %s\n    %s\n", l.Name, l.Description, l.URL)
		}
	}

	return nil
}
