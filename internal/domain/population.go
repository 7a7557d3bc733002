package domain

// PopulationRecord is one year of Australian population statistics.
// Corresponds to au_population_mart table.
type PopulationRecord struct {
	Year         int     // calendar year
	Births       float64 // registered births
	Deaths       float64 // registered deaths
	NetMigration float64 // net overseas migration, negative when departures exceed arrivals
	Total        float64 // estimated resident population
}

// BirthsSeries extracts births by year from records.
func BirthsSeries(records []*PopulationRecord) TimeSeries {
	return seriesOf(records, func(r *PopulationRecord) float64 { return r.Births })
}

// DeathsSeries extracts deaths by year from records.
func DeathsSeries(records []*PopulationRecord) TimeSeries {
	return seriesOf(records, func(r *PopulationRecord) float64 { return r.Deaths })
}

// NetMigrationSeries extracts net migration by year from records.
func NetMigrationSeries(records []*PopulationRecord) TimeSeries {
	return seriesOf(records, func(r *PopulationRecord) float64 { return r.NetMigration })
}

// TotalSeries extracts total population by year from records.
func TotalSeries(records []*PopulationRecord) TimeSeries {
	return seriesOf(records, func(r *PopulationRecord) float64 { return r.Total })
}

func seriesOf(records []*PopulationRecord, value func(*PopulationRecord) float64) TimeSeries {
	series := make(TimeSeries, 0, len(records))
	for _, r := range records {
		if r == nil {
			continue
		}
		series = append(series, Observation{Year: r.Year, Value: value(r)})
	}
	return series
}
