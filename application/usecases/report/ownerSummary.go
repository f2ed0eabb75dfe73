package report_usecases

import (
	apperrors "idguard.io/application/appErrors"
	"idguard.io/application/repository"
	"idguard.io/entities"
)

// PopulationSummary is one population's line in an owner's overview.
type PopulationSummary struct {
	PopulationID      string  `json:"populationId"`
	PopulationName    string  `json:"populationName"`
	Subject           string  `json:"subject"`
	TotalMembers      int     `json:"totalMembers"`
	TotalSessions     int     `json:"totalSessions"`
	AverageAttendance float64 `json:"averageAttendance"`
	LastSessionDate   *string `json:"lastSessionDate"`
}

// OwnerSummary aggregates attendance across every population an owner
// runs. The overall average is the mean of the population averages, with
// session-less populations counting as zero.
type OwnerSummary struct {
	OwnerID             string              `json:"ownerId"`
	TotalPopulations    int                 `json:"totalPopulations"`
	TotalMembers        int                 `json:"totalMembers"`
	TotalSessions       int                 `json:"totalSessions"`
	AverageAttendance   float64             `json:"averageAttendance"`
	PopulationSummaries []PopulationSummary `json:"populationSummaries"`
}

func OwnerSummaryUseCase(ctx any, ownerID string) (*OwnerSummary, error) {
	populations, err := repository.PopulationRepo().FindMany(map[string]interface{}{
		"ownerID": ownerID,
	})
	if err != nil {
		apperrors.UnknownError(ctx, err, nil)
		return nil, err
	}

	summary := &OwnerSummary{
		OwnerID:             ownerID,
		PopulationSummaries: []PopulationSummary{},
	}
	if populations == nil || len(*populations) == 0 {
		return summary, nil
	}

	averageSum := 0.0
	for _, population := range *populations {
		memberCount, err := repository.MemberRepo().CountDocs(map[string]interface{}{
			"populationID": population.ID,
		})
		if err != nil {
			apperrors.UnknownError(ctx, err, nil)
			return nil, err
		}

		records, err := fetchAttendanceRecords(population.ID)
		if err != nil {
			apperrors.UnknownError(ctx, err, nil)
			return nil, err
		}

		populationSummary := buildPopulationSummary(population, int(memberCount), records)
		summary.PopulationSummaries = append(summary.PopulationSummaries, populationSummary)
		summary.TotalMembers += populationSummary.TotalMembers
		summary.TotalSessions += populationSummary.TotalSessions
		averageSum += populationAverageAttendance(int(memberCount), records)
	}

	summary.TotalPopulations = len(*populations)
	summary.AverageAttendance = roundTo2(averageSum / float64(summary.TotalPopulations))
	return summary, nil
}

func buildPopulationSummary(population entities.Population, memberCount int, records []entities.AttendanceRecord) PopulationSummary {
	populationSummary := PopulationSummary{
		PopulationID:      population.ID,
		PopulationName:    population.Name,
		Subject:           population.Subject,
		TotalMembers:      memberCount,
		TotalSessions:     len(records),
		AverageAttendance: roundTo2(populationAverageAttendance(memberCount, records)),
	}
	if len(records) > 0 {
		// records arrive sorted oldest first
		lastDate := records[len(records)-1].Date
		populationSummary.LastSessionDate = &lastDate
	}
	return populationSummary
}

// populationAverageAttendance is the unrounded mean of the per-session
// attendance percentages. No sessions or no members means zero.
func populationAverageAttendance(memberCount int, records []entities.AttendanceRecord) float64 {
	if len(records) == 0 || memberCount == 0 {
		return 0
	}
	sum := 0.0
	for _, record := range records {
		sum += float64(len(record.PresentMembers)) / float64(memberCount) * 100
	}
	return sum / float64(len(records))
}
