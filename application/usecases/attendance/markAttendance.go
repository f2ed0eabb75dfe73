package attendance_usecases

import (
	"context"
	"errors"
	"fmt"
	"time"

	apperrors "idguard.io/application/appErrors"
	"idguard.io/application/constants"
	"idguard.io/application/repository"
	"idguard.io/application/utils"
	"idguard.io/entities"
	"idguard.io/infrastructure/database/repository/cache"
	"idguard.io/infrastructure/logger"
)

// MarkResult is the payload returned after a mark attempt. AlreadyMarked
// distinguishes the idempotent repeat from the first mark of the day.
type MarkResult struct {
	PopulationID  string `json:"populationId"`
	MemberID      string `json:"memberId"`
	MemberName    string `json:"memberName"`
	Date          string `json:"date"`
	Status        string `json:"status"`
	AlreadyMarked bool   `json:"alreadyMarked"`
}

// attendanceMarkerKey is the per-member/day dedup marker. Redis is the
// fast path only; the Mongo day record stays the source of truth.
func attendanceMarkerKey(populationID string, date string, memberID string) string {
	return fmt.Sprintf("attendance-%s-%s-%s", populationID, date, memberID)
}

// MarkAttendanceUseCase marks a member present on today's record. The
// first mark of the day creates the record; repeats are idempotent and
// reported with the already-marked response code. A member marked after
// the day was closed moves out of the absent list.
func MarkAttendanceUseCase(ctx any, populationID string, memberID string) (*MarkResult, *uint, error) {
	population, err := repository.PopulationRepo().FindByID(populationID)
	if err != nil {
		apperrors.UnknownError(ctx, err, nil)
		return nil, nil, err
	}
	if population == nil {
		apperrors.NotFoundError(ctx, "population not found")
		return nil, nil, errors.New("population not found")
	}

	member, err := repository.MemberRepo().FindOneByFilter(map[string]interface{}{
		"_id":          memberID,
		"populationID": populationID,
	})
	if err != nil {
		apperrors.UnknownError(ctx, err, nil)
		return nil, nil, err
	}
	if member == nil {
		apperrors.NotFoundError(ctx, "member does not belong to this population")
		return nil, nil, errors.New("member does not belong to this population")
	}

	date := time.Now().Format(constants.ATTENDANCE_DATE_LAYOUT)
	result := &MarkResult{
		PopulationID: populationID,
		MemberID:     memberID,
		MemberName:   member.Name,
		Date:         date,
		Status:       "present",
	}

	markerKey := attendanceMarkerKey(populationID, date, memberID)
	if cache.Cache.FindOne(markerKey) != nil {
		result.AlreadyMarked = true
		return result, utils.GetUIntPointer(constants.ATTENDANCE_ALREADY_MARKED), nil
	}

	recordID := entities.AttendanceRecordID(populationID, date)
	attendanceRepo := repository.AttendanceRecordRepo()
	record, err := attendanceRepo.FindByID(recordID)
	if err != nil {
		apperrors.UnknownError(ctx, err, nil)
		return nil, nil, err
	}

	if record == nil {
		_, err = attendanceRepo.CreateOne(context.TODO(), entities.AttendanceRecord{
			PopulationID:   populationID,
			Date:           date,
			PresentMembers: []string{memberID},
			AbsentMembers:  []string{},
		})
		if err != nil {
			apperrors.UnknownError(ctx, err, nil)
			return nil, nil, err
		}
	} else if utils.HasItemString(&record.PresentMembers, memberID) {
		cache.Cache.CreateEntry(markerKey, "1", time.Hour*24)
		result.AlreadyMarked = true
		return result, utils.GetUIntPointer(constants.ATTENDANCE_ALREADY_MARKED), nil
	} else {
		_, err = attendanceRepo.UpdateWithOperators(map[string]interface{}{
			"_id": recordID,
		}, map[string]interface{}{
			"$addToSet": map[string]interface{}{"presentMembers": memberID},
			"$pull":     map[string]interface{}{"absentMembers": memberID},
			"$set":      map[string]interface{}{"updatedAt": time.Now()},
		})
		if err != nil {
			apperrors.UnknownError(ctx, err, nil)
			return nil, nil, err
		}
	}

	cache.Cache.CreateEntry(markerKey, "1", time.Hour*24)
	logger.Info("attendance marked", logger.LoggerOptions{
		Key:  "populationID",
		Data: populationID,
	}, logger.LoggerOptions{
		Key:  "memberID",
		Data: memberID,
	}, logger.LoggerOptions{
		Key:  "date",
		Data: date,
	})
	return result, nil, nil
}
