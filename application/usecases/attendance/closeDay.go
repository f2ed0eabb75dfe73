package attendance_usecases

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	apperrors "idguard.io/application/appErrors"
	"idguard.io/application/constants"
	"idguard.io/application/repository"
	"idguard.io/application/utils"
	"idguard.io/entities"
	"idguard.io/infrastructure/logger"
	messagequeue "idguard.io/infrastructure/message_queue"
	queue_tasks "idguard.io/infrastructure/message_queue/tasks"
	mq_types "idguard.io/infrastructure/message_queue/types"
)

// CloseResult summarises a finalized attendance day.
type CloseResult struct {
	PopulationID        string `json:"populationId"`
	Date                string `json:"date"`
	PresentCount        int    `json:"presentCount"`
	AbsentCount         int    `json:"absentCount"`
	NotificationsQueued int    `json:"notificationsQueued"`
}

// CloseAttendanceDayUseCase finalizes one attendance day: every roster
// member not marked present goes into the absent list and one absence
// notification is queued per absent member with a guardian email on file.
// Closing an already-closed day is rejected. An empty date means today.
func CloseAttendanceDayUseCase(ctx any, populationID string, date string) (*CloseResult, error) {
	population, err := repository.PopulationRepo().FindByID(populationID)
	if err != nil {
		apperrors.UnknownError(ctx, err, nil)
		return nil, err
	}
	if population == nil {
		apperrors.NotFoundError(ctx, "population not found")
		return nil, errors.New("population not found")
	}

	if date == "" {
		date = time.Now().Format(constants.ATTENDANCE_DATE_LAYOUT)
	}

	members, err := repository.MemberRepo().FindMany(map[string]interface{}{
		"populationID": populationID,
	})
	if err != nil {
		apperrors.UnknownError(ctx, err, nil)
		return nil, err
	}

	recordID := entities.AttendanceRecordID(populationID, date)
	attendanceRepo := repository.AttendanceRecordRepo()
	record, err := attendanceRepo.FindByID(recordID)
	if err != nil {
		apperrors.UnknownError(ctx, err, nil)
		return nil, err
	}
	if record != nil && record.Closed {
		apperrors.ClientError(ctx, "attendance for this day has already been closed", nil, nil)
		return nil, errors.New("attendance day already closed")
	}

	var present []string
	if record != nil {
		present = record.PresentMembers
	}
	absent := absentMemberIDs(members, present)

	if record == nil {
		_, err = attendanceRepo.CreateOne(context.TODO(), entities.AttendanceRecord{
			PopulationID:   populationID,
			Date:           date,
			PresentMembers: []string{},
			AbsentMembers:  absent,
			Closed:         true,
		})
	} else {
		_, err = attendanceRepo.UpdateWithOperators(map[string]interface{}{
			"_id": recordID,
		}, map[string]interface{}{
			"$set": map[string]interface{}{
				"absentMembers": absent,
				"closed":        true,
				"updatedAt":     time.Now(),
			},
		})
	}
	if err != nil {
		apperrors.UnknownError(ctx, err, nil)
		return nil, err
	}

	queued := queueAbsenceNotifications(population, members, absent, date)

	logger.Info("attendance day closed", logger.LoggerOptions{
		Key:  "populationID",
		Data: populationID,
	}, logger.LoggerOptions{
		Key:  "date",
		Data: date,
	}, logger.LoggerOptions{
		Key:  "absentCount",
		Data: len(absent),
	})

	return &CloseResult{
		PopulationID:        populationID,
		Date:                date,
		PresentCount:        len(present),
		AbsentCount:         len(absent),
		NotificationsQueued: queued,
	}, nil
}

// absentMemberIDs is the roster minus the present list.
func absentMemberIDs(members *[]entities.Member, present []string) []string {
	absent := []string{}
	if members == nil {
		return absent
	}
	for _, member := range *members {
		if !utils.HasItemString(&present, member.ID) {
			absent = append(absent, member.ID)
		}
	}
	return absent
}

// queueAbsenceNotifications enqueues one email per absent member that has
// a guardian email on file and returns how many were queued. Delivery
// happens on the task queue, never inline with the close call.
func queueAbsenceNotifications(population *entities.Population, members *[]entities.Member, absent []string, date string) int {
	if members == nil {
		return 0
	}
	memberByID := map[string]entities.Member{}
	for _, member := range *members {
		memberByID[member.ID] = member
	}

	queued := 0
	for _, memberID := range absent {
		member, found := memberByID[memberID]
		if !found || member.GuardianEmail == nil || *member.GuardianEmail == "" {
			continue
		}
		emailPayload, err := json.Marshal(queue_tasks.EmailPayload{
			To:       *member.GuardianEmail,
			Subject:  fmt.Sprintf("Absence Alert: %s - %s", member.Name, population.Name),
			Template: "absence_notification",
			Opts: map[string]any{
				"MemberName":     member.Name,
				"PopulationName": population.Name,
				"Subject":        population.Subject,
				"Date":           date,
				"OwnerName":      population.OwnerName,
				"SupportEmail":   constants.SUPPORT_EMAIL,
			},
			Intent: "absence_notification",
		})
		if err != nil {
			logger.Error("error marshalling payload for email queue", logger.LoggerOptions{
				Key:  "memberID",
				Data: memberID,
			})
			continue
		}
		messagequeue.TaskQueue.Enqueue(mq_types.QueueTask{
			Payload:   emailPayload,
			Name:      queue_tasks.HandleEmailDeliveryTaskName,
			Priority:  mq_types.Medium,
			ProcessIn: 1,
		})
		queued++
	}
	return queued
}
