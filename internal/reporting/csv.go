package reporting

import (
	"fmt"
	"strings"
)

// RenderPopulationCSV renders the population table as CSV string.
func RenderPopulationCSV(rows []PopulationRow) string {
	var sb strings.Builder

	sb.WriteString("year,population_millions\n")
	for _, p := range rows {
		sb.WriteString(fmt.Sprintf("%d,%.6f\n", p.Year, p.Millions))
	}

	return sb.String()
}

// RenderForecastCSV renders the forecast table as CSV string.
func RenderForecastCSV(rows []ForecastRow) string {
	var sb strings.Builder

	sb.WriteString("year,births,births_lower,births_upper,deaths,deaths_lower,deaths_upper\n")
	for _, f := range rows {
		sb.WriteString(fmt.Sprintf("%d,%.2f,%.2f,%.2f,%.2f,%.2f,%.2f\n",
			f.Year,
			f.Births,
			f.BirthsLower,
			f.BirthsUpper,
			f.Deaths,
			f.DeathsLower,
			f.DeathsUpper,
		))
	}

	return sb.String()
}
