package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/helpmeclean/schedule-service/internal/domain/contract"
	"github.com/helpmeclean/schedule-service/mocks"
)

type allMocks struct {
	mockDataManager    *mocks.MockDataManager
	mockWorkerRepo     *mocks.MockWorkerRepo
	mockWeeklyRepo     *mocks.MockWeeklyAvailabilityRepo
	mockCompanyRepo    *mocks.MockCompanyScheduleRepo
	mockOverrideRepo   *mocks.MockDateOverrideRepo
	mockAssignmentRepo *mocks.MockJobAssignmentRepo
	mockSlackClient    *mocks.MockSlackClient
}

func newServiceTestMock(t *testing.T) (m allMocks, svc *scheduleService, ctrl *gomock.Controller) {
	t.Helper()

	ctrl = gomock.NewController(t)

	dm := mocks.NewMockDataManager(ctrl)

	workerRepo := mocks.NewMockWorkerRepo(ctrl)
	dm.EXPECT().Worker().Return(workerRepo).AnyTimes()

	weeklyRepo := mocks.NewMockWeeklyAvailabilityRepo(ctrl)
	dm.EXPECT().WeeklyAvailability().Return(weeklyRepo).AnyTimes()

	companyRepo := mocks.NewMockCompanyScheduleRepo(ctrl)
	dm.EXPECT().CompanySchedule().Return(companyRepo).AnyTimes()

	overrideRepo := mocks.NewMockDateOverrideRepo(ctrl)
	dm.EXPECT().DateOverride().Return(overrideRepo).AnyTimes()

	assignmentRepo := mocks.NewMockJobAssignmentRepo(ctrl)
	dm.EXPECT().JobAssignment().Return(assignmentRepo).AnyTimes()

	// Transactions run the callback against the same mocked repos.
	dm.EXPECT().WithTransaction(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, fn func(contract.DataManager) error) error {
			return fn(dm)
		}).AnyTimes()

	slackClient := mocks.NewMockSlackClient(ctrl)

	m = allMocks{
		mockDataManager:    dm,
		mockWorkerRepo:     workerRepo,
		mockWeeklyRepo:     weeklyRepo,
		mockCompanyRepo:    companyRepo,
		mockOverrideRepo:   overrideRepo,
		mockAssignmentRepo: assignmentRepo,
		mockSlackClient:    slackClient,
	}

	// Alerting disabled in unit tests; notifier behavior is covered
	// separately.
	svc = newSchedule(dm, newConflictNotifier(nil, ""))
	require.NotNil(t, svc)

	return
}
