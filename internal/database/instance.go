package database

import (
	"context"
	"fmt"

	"github.com/helpmeclean/schedule-service/internal/domain/contract"
)

// instance implements DataManager interface
type instance struct {
	db                 *DB
	workerRepo         contract.WorkerRepo
	weeklyRepo         contract.WeeklyAvailabilityRepo
	companyScheduleRep contract.CompanyScheduleRepo
	overrideRepo       contract.DateOverrideRepo
	assignmentRepo     contract.JobAssignmentRepo
}

// NewInstance creates a new database instance with all repositories
func NewInstance(db *DB) contract.DataManager {
	i := &instance{db: db}
	i.repoInstances()
	return i
}

// repoInstances initializes all repositories
func (i *instance) repoInstances() {
	i.workerRepo = newWorkerRepo(i.db.conn)
	i.weeklyRepo = newWeeklyAvailabilityRepo(i.db.conn)
	i.companyScheduleRep = newCompanyScheduleRepo(i.db.conn)
	i.overrideRepo = newDateOverrideRepo(i.db.conn)
	i.assignmentRepo = newJobAssignmentRepo(i.db.conn)
}

// repoInstancesWithConn creates repository instances with custom dbConn
func repoInstancesWithConn(db dbConn) *instance {
	return &instance{
		workerRepo:         newWorkerRepo(db),
		weeklyRepo:         newWeeklyAvailabilityRepo(db),
		companyScheduleRep: newCompanyScheduleRepo(db),
		overrideRepo:       newDateOverrideRepo(db),
		assignmentRepo:     newJobAssignmentRepo(db),
	}
}

func (i *instance) Worker() contract.WorkerRepo {
	return i.workerRepo
}

func (i *instance) WeeklyAvailability() contract.WeeklyAvailabilityRepo {
	return i.weeklyRepo
}

func (i *instance) CompanySchedule() contract.CompanyScheduleRepo {
	return i.companyScheduleRep
}

func (i *instance) DateOverride() contract.DateOverrideRepo {
	return i.overrideRepo
}

func (i *instance) JobAssignment() contract.JobAssignmentRepo {
	return i.assignmentRepo
}

// WithTransaction executes a function within a database transaction
func (i *instance) WithTransaction(ctx context.Context, fn func(dm contract.DataManager) error) error {
	tx, err := i.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	txInstance := repoInstancesWithConn(tx)
	err = fn(txInstance)
	if err != nil {
		rbErr := tx.Rollback()
		if rbErr != nil {
			return fmt.Errorf("error rolling back transaction: %v, original error: %w", rbErr, err)
		}
		return err
	}

	return tx.Commit()
}
