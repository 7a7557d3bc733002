package reporting

import (
	"fmt"
	"strings"
	"time"
)

// RenderMarkdown renders report as Markdown string.
func RenderMarkdown(r *Report) string {
	var sb strings.Builder

	// Header
	sb.WriteString("# Australian Population Report\n\n")
	sb.WriteString(fmt.Sprintf("Generated: %s\n\n", r.GeneratedAt.Format(time.RFC3339)))

	// Population
	sb.WriteString(fmt.Sprintf("## Australian Population Since %d\n\n", r.PopulationFromYear))
	if len(r.Population) > 0 {
		g := r.Growth
		sb.WriteString(fmt.Sprintf("Population grew from %.2f million in %d to %.2f million in %d (%+.2f million).\n\n",
			g.FirstMillions, g.FirstYear, g.LastMillions, g.LastYear, g.Change()))
		sb.WriteString("| Year | Population (millions) |\n")
		sb.WriteString("|------|-----------------------|\n")
		for _, p := range r.Population {
			sb.WriteString(fmt.Sprintf("| %d | %.2f |\n", p.Year, p.Millions))
		}
	} else {
		sb.WriteString("No population data available.\n")
	}
	sb.WriteString("\n")

	// Trends
	sb.WriteString(fmt.Sprintf("## Births and Deaths Trend Since %d\n\n", r.TrendFromYear))
	if len(r.Trends) > 0 {
		sb.WriteString("| Series | Equation | Residual SD | Observations |\n")
		sb.WriteString("|--------|----------|-------------|--------------|\n")
		for _, t := range r.Trends {
			sb.WriteString(fmt.Sprintf("| %s | %s | %.2f | %d |\n",
				t.Series, t.Equation, t.ResidualStdDev, t.Observations))
		}
	} else {
		sb.WriteString("No trend could be fitted.\n")
	}
	sb.WriteString("\n")

	// Forecast
	sb.WriteString(fmt.Sprintf("## Forecast (%d years, 95%% band)\n\n", r.HorizonYears))
	if r.ForecastError != "" {
		sb.WriteString(fmt.Sprintf("Forecast unavailable: %s\n\n", r.ForecastError))
	} else if len(r.Forecast) > 0 {
		sb.WriteString("| Year | Births | Births Lower | Births Upper | Deaths | Deaths Lower | Deaths Upper |\n")
		sb.WriteString("|------|--------|--------------|--------------|--------|--------------|--------------|\n")
		for _, f := range r.Forecast {
			sb.WriteString(fmt.Sprintf("| %d | %.0f | %.0f | %.0f | %.0f | %.0f | %.0f |\n",
				f.Year, f.Births, f.BirthsLower, f.BirthsUpper, f.Deaths, f.DeathsLower, f.DeathsUpper))
		}
		sb.WriteString("\n")
	}

	// Crossover
	sb.WriteString("## Demographic Crossover\n\n")
	switch {
	case r.ForecastError != "":
		sb.WriteString("Not computed.\n")
	case r.Crossover.Found:
		sb.WriteString(fmt.Sprintf("Projected deaths reach projected births in **%d**.\n", r.Crossover.Year))
	default:
		sb.WriteString(fmt.Sprintf("Projected deaths stay below projected births through %d.\n", lastForecastYear(r)))
	}
	sb.WriteString("\n")

	return sb.String()
}

func lastForecastYear(r *Report) int {
	if len(r.Forecast) == 0 {
		return 0
	}
	return r.Forecast[len(r.Forecast)-1].Year
}
