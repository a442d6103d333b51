package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/helpmeclean/schedule-service/internal/domain/entity"
	"github.com/helpmeclean/schedule-service/internal/domain/schedule"
	"github.com/helpmeclean/schedule-service/mocks"
)

func conflictedGrid() *schedule.Grid {
	return &schedule.Grid{
		WeekStart: "2025-06-09",
		Rows: []schedule.WorkerWeek{
			{
				Worker: &entity.Worker{ID: 1, FullName: "Ana Pop"},
				Cells: [7]schedule.Cell{
					{Date: "2025-06-09"},
					{
						Date:        "2025-06-10",
						HasConflict: true,
						Assignments: []*entity.JobAssignment{
							{ID: 100, WorkerID: 1, Date: "2025-06-10", StartTime: "10:00", DurationHours: 2},
							{ID: 101, WorkerID: 1, Date: "2025-06-10", StartTime: "11:00", DurationHours: 1},
						},
					},
				},
			},
		},
	}
}

func TestConflictNotifier_ObserveGridDedupes(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	n := newConflictNotifier(mocks.NewMockSlackClient(ctrl), "#scheduling-alerts")

	n.ObserveGrid(conflictedGrid())
	n.ObserveGrid(conflictedGrid())

	// The same conflicted cell is queued once no matter how often the grid
	// is rebuilt.
	require.Len(t, n.events, 1)

	ev := <-n.events
	assert.Equal(t, "Ana Pop", ev.workerName)
	assert.Equal(t, "2025-06-10", ev.date)
	assert.Equal(t, 2, ev.jobs)
}

func TestConflictNotifier_DisabledWithoutChannel(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	n := newConflictNotifier(mocks.NewMockSlackClient(ctrl), "")
	n.ObserveGrid(conflictedGrid())
	assert.Empty(t, n.events)

	n = newConflictNotifier(nil, "#scheduling-alerts")
	n.ObserveGrid(conflictedGrid())
	assert.Empty(t, n.events)
}

func TestConflictNotifier_Post(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	client := mocks.NewMockSlackClient(ctrl)
	client.EXPECT().
		PostMessage("#scheduling-alerts", gomock.Any()).
		Return("#scheduling-alerts", "123.456", nil).
		Times(1)

	n := newConflictNotifier(client, "#scheduling-alerts")
	n.post(conflictEvent{workerName: "Ana Pop", date: "2025-06-10", jobs: 2})
}
