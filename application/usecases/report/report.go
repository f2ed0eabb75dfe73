package report_usecases

import (
	"errors"
	"math"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
	apperrors "idguard.io/application/appErrors"
	"idguard.io/application/repository"
	"idguard.io/application/utils"
	"idguard.io/entities"
)

// SessionStat is the attendance outcome of one session (one day).
// AbsentMembers is derived from the roster size, not the stored absent
// list, so sessions recorded before a roster change stay comparable.
type SessionStat struct {
	Date                 string  `json:"date"`
	TotalMembers         int     `json:"totalMembers"`
	PresentMembers       int     `json:"presentMembers"`
	AbsentMembers        int     `json:"absentMembers"`
	AttendancePercentage float64 `json:"attendancePercentage"`
}

// MemberStat is one member's attendance across the reported sessions.
type MemberStat struct {
	MemberID             string  `json:"memberId"`
	MemberName           string  `json:"memberName"`
	MemberSRN            string  `json:"memberSrn"`
	TotalSessions        int     `json:"totalSessions"`
	PresentSessions      int     `json:"presentSessions"`
	AbsentSessions       int     `json:"absentSessions"`
	AttendancePercentage float64 `json:"attendancePercentage"`
}

type DateRange struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

// PopulationReport is the detailed attendance report for one population.
// AverageAttendance is the mean of the session percentages, rounded to
// two decimals at the very end.
type PopulationReport struct {
	PopulationID      string        `json:"populationId"`
	PopulationName    string        `json:"populationName"`
	Subject           string        `json:"subject"`
	DateRange         DateRange     `json:"dateRange"`
	TotalMembers      int           `json:"totalMembers"`
	TotalSessions     int           `json:"totalSessions"`
	AverageAttendance float64       `json:"averageAttendance"`
	Sessions          []SessionStat `json:"sessions"`
	MemberStats       []MemberStat  `json:"memberStats"`
}

// PopulationReportUseCase builds the attendance report for one population,
// optionally narrowed to an inclusive date window.
func PopulationReportUseCase(ctx any, populationID string, startDate string, endDate string) (*PopulationReport, error) {
	population, err := repository.PopulationRepo().FindByID(populationID)
	if err != nil {
		apperrors.UnknownError(ctx, err, nil)
		return nil, err
	}
	if population == nil {
		apperrors.NotFoundError(ctx, "population not found")
		return nil, errors.New("population not found")
	}

	members, err := repository.MemberRepo().FindMany(map[string]interface{}{
		"populationID": populationID,
	})
	if err != nil {
		apperrors.UnknownError(ctx, err, nil)
		return nil, err
	}

	records, err := fetchAttendanceRecords(populationID)
	if err != nil {
		apperrors.UnknownError(ctx, err, nil)
		return nil, err
	}

	roster := []entities.Member{}
	if members != nil {
		roster = *members
	}
	return buildPopulationReport(population, roster, records, startDate, endDate), nil
}

// fetchAttendanceRecords loads a population's day records oldest first.
// The YYYY-MM-DD layout makes the index-backed sort chronological.
func fetchAttendanceRecords(populationID string) ([]entities.AttendanceRecord, error) {
	records, err := repository.AttendanceRecordRepo().FindMany(map[string]interface{}{
		"populationID": populationID,
	}, options.Find().SetSort(bson.D{{Key: "date", Value: 1}}))
	if err != nil {
		return nil, err
	}
	if records == nil {
		return []entities.AttendanceRecord{}, nil
	}
	return *records, nil
}

// filterRecordsByDate keeps records inside the inclusive [start, end]
// window. Empty bounds leave that side open.
func filterRecordsByDate(records []entities.AttendanceRecord, start string, end string) []entities.AttendanceRecord {
	if start == "" && end == "" {
		return records
	}
	filtered := []entities.AttendanceRecord{}
	for _, record := range records {
		if start != "" && record.Date < start {
			continue
		}
		if end != "" && record.Date > end {
			continue
		}
		filtered = append(filtered, record)
	}
	return filtered
}

func buildPopulationReport(population *entities.Population, members []entities.Member, records []entities.AttendanceRecord, start string, end string) *PopulationReport {
	records = filterRecordsByDate(records, start, end)

	report := &PopulationReport{
		PopulationID:   population.ID,
		PopulationName: population.Name,
		Subject:        population.Subject,
		TotalMembers:   len(members),
		TotalSessions:  len(records),
		Sessions:       []SessionStat{},
		MemberStats:    []MemberStat{},
	}
	if len(records) == 0 {
		report.DateRange = DateRange{Start: start, End: end}
		return report
	}

	report.DateRange = DateRange{Start: start, End: end}
	if report.DateRange.Start == "" {
		report.DateRange.Start = records[0].Date
	}
	if report.DateRange.End == "" {
		report.DateRange.End = records[len(records)-1].Date
	}

	totalMembers := len(members)
	percentageSum := 0.0
	for _, record := range records {
		presentCount := len(record.PresentMembers)
		percentage := 0.0
		if totalMembers > 0 {
			percentage = float64(presentCount) / float64(totalMembers) * 100
		}
		report.Sessions = append(report.Sessions, SessionStat{
			Date:                 record.Date,
			TotalMembers:         totalMembers,
			PresentMembers:       presentCount,
			AbsentMembers:        totalMembers - presentCount,
			AttendancePercentage: roundTo2(percentage),
		})
		percentageSum += percentage
	}
	report.AverageAttendance = roundTo2(percentageSum / float64(len(records)))

	for _, member := range members {
		presentSessions := 0
		for _, record := range records {
			if utils.HasItemString(&record.PresentMembers, member.ID) {
				presentSessions++
			}
		}
		report.MemberStats = append(report.MemberStats, MemberStat{
			MemberID:             member.ID,
			MemberName:           member.Name,
			MemberSRN:            member.SRN,
			TotalSessions:        len(records),
			PresentSessions:      presentSessions,
			AbsentSessions:       len(records) - presentSessions,
			AttendancePercentage: roundTo2(float64(presentSessions) / float64(len(records)) * 100),
		})
	}

	return report
}

func roundTo2(value float64) float64 {
	return math.Round(value*100) / 100
}
