package dto

type MarkAttendanceDTO struct {
	PopulationID string `json:"populationId" validate:"required,max=50"`
	MemberID     string `json:"memberId" validate:"required,max=50"`
}

type CloseAttendanceDayDTO struct {
	PopulationID string `json:"populationId" validate:"required,max=50"`
	Date         string `json:"date" validate:"omitempty,datetime=2006-01-02"`
}
