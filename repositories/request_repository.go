package repositories

import (
	"context"

	"github.com/google/uuid"

	"github.com/adhamyosry771-star/filex-design/models"
)

type RequestRepository struct{}

func NewRequestRepository() *RequestRepository {
	return &RequestRepository{}
}

func (r *RequestRepository) Create(req *models.DesignRequest) error {
	query := `
		INSERT INTO requests (id, user_id, client_name, email, project_type, description, budget, status, created_at)
		VALUES ($1, NULLIF($2, ''), $3, $4, $5, $6, $7, $8, $9)
	`
	req.ID = uuid.NewString()

	_, err := models.DB.Exec(
		context.Background(),
		query,
		req.ID,
		req.UserID,
		req.ClientName,
		req.Email,
		req.ProjectType,
		req.Description,
		req.Budget,
		req.Status,
		req.CreatedAt,
	)

	return err
}

func (r *RequestRepository) FindByUser(userID string) ([]models.DesignRequest, error) {
	query := `
		SELECT id, COALESCE(user_id, ''), client_name, email, project_type, description, budget, status, created_at
		FROM requests WHERE user_id = $1 ORDER BY created_at DESC
	`
	return r.queryRequests(query, userID)
}

func (r *RequestRepository) List(status string, limit, offset int) ([]models.DesignRequest, int, error) {
	var total int
	if status != "" {
		err := models.DB.QueryRow(context.Background(),
			"SELECT COUNT(*) FROM requests WHERE status=$1", status).Scan(&total)
		if err != nil {
			return nil, 0, err
		}
	} else {
		err := models.DB.QueryRow(context.Background(),
			"SELECT COUNT(*) FROM requests").Scan(&total)
		if err != nil {
			return nil, 0, err
		}
	}

	query := `
		SELECT id, COALESCE(user_id, ''), client_name, email, project_type, description, budget, status, created_at
		FROM requests
	`
	args := []interface{}{}
	if status != "" {
		query += " WHERE status=$1 ORDER BY created_at DESC LIMIT $2 OFFSET $3"
		args = append(args, status, limit, offset)
	} else {
		query += " ORDER BY created_at DESC LIMIT $1 OFFSET $2"
		args = append(args, limit, offset)
	}

	requests, err := r.queryRequests(query, args...)
	if err != nil {
		return nil, 0, err
	}

	return requests, total, nil
}

func (r *RequestRepository) FindByID(id string) (*models.DesignRequest, error) {
	query := `
		SELECT id, COALESCE(user_id, ''), client_name, email, project_type, description, budget, status, created_at
		FROM requests WHERE id = $1
	`

	req := &models.DesignRequest{}
	err := models.DB.QueryRow(context.Background(), query, id).Scan(
		&req.ID, &req.UserID, &req.ClientName, &req.Email, &req.ProjectType,
		&req.Description, &req.Budget, &req.Status, &req.CreatedAt,
	)

	if err != nil {
		return nil, err
	}

	return req, nil
}

// UpdateStatus touches the status column and nothing else.
func (r *RequestRepository) UpdateStatus(id, status string) error {
	_, err := models.DB.Exec(context.Background(),
		"UPDATE requests SET status=$1 WHERE id=$2", status, id)
	return err
}

func (r *RequestRepository) queryRequests(query string, args ...interface{}) ([]models.DesignRequest, error) {
	rows, err := models.DB.Query(context.Background(), query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	requests := []models.DesignRequest{}
	for rows.Next() {
		var req models.DesignRequest
		if err := rows.Scan(
			&req.ID, &req.UserID, &req.ClientName, &req.Email, &req.ProjectType,
			&req.Description, &req.Budget, &req.Status, &req.CreatedAt,
		); err != nil {
			return nil, err
		}
		requests = append(requests, req)
	}

	return requests, rows.Err()
}
