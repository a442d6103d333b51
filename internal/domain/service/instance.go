package service

import (
	"github.com/helpmeclean/schedule-service/internal/domain/contract"
)

type Instance struct {
	Schedule *scheduleService
	Notifier *conflictNotifier
}

// NewInstance wires the schedule service with its conflict notifier. A nil
// slackClient or empty alertChannel disables alerting.
func NewInstance(dm contract.DataManager, slackClient contract.SlackClient, alertChannel string) *Instance {
	notifier := newConflictNotifier(slackClient, alertChannel)

	return &Instance{
		Schedule: newSchedule(dm, notifier),
		Notifier: notifier,
	}
}
