package database

import (
	"database/sql"
	"fmt"

	"github.com/helpmeclean/schedule-service/internal/domain/contract"
	"github.com/helpmeclean/schedule-service/internal/domain/entity"
)

type workerRepo struct {
	db dbConn
}

func newWorkerRepo(db dbConn) contract.WorkerRepo {
	return &workerRepo{db: db}
}

func (r *workerRepo) Create(worker *entity.Worker) error {
	query := `
		INSERT INTO workers (company_id, full_name, status, is_active)
		VALUES (?, ?, ?, ?)
	`

	result, err := r.db.Exec(query,
		worker.CompanyID,
		worker.FullName,
		worker.Status,
		worker.IsActive,
	)
	if err != nil {
		return fmt.Errorf("failed to create worker: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to get last insert id: %w", err)
	}

	worker.ID = id
	return nil
}

func (r *workerRepo) GetByID(id int64) (*entity.Worker, error) {
	worker := &entity.Worker{}
	query := `
		SELECT id, company_id, full_name, status, is_active, created_at
		FROM workers
		WHERE id = ?
	`

	err := r.db.QueryRow(query, id).Scan(
		&worker.ID,
		&worker.CompanyID,
		&worker.FullName,
		&worker.Status,
		&worker.IsActive,
		&worker.CreatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get worker: %w", err)
	}

	return worker, nil
}

func (r *workerRepo) ListByCompany(companyID int64) ([]*entity.Worker, error) {
	query := `
		SELECT id, company_id, full_name, status, is_active, created_at
		FROM workers
		WHERE company_id = ? AND is_active = 1
		ORDER BY full_name ASC
	`

	rows, err := r.db.Query(query, companyID)
	if err != nil {
		return nil, fmt.Errorf("failed to list workers: %w", err)
	}
	defer rows.Close()

	var workers []*entity.Worker
	for rows.Next() {
		worker := &entity.Worker{}
		err := rows.Scan(
			&worker.ID,
			&worker.CompanyID,
			&worker.FullName,
			&worker.Status,
			&worker.IsActive,
			&worker.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan worker: %w", err)
		}
		workers = append(workers, worker)
	}

	return workers, nil
}
