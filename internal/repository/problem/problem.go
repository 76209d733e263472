package problem

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"fastfeet/internal/entities"
	"fastfeet/internal/repository"
	"fastfeet/internal/service/problem"
)

const columns = "id, delivery_id, description, created_at"

type Repository struct {
	querier repository.Querier
}

func New(querier repository.Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func (r *Repository) Create(ctx context.Context, problemModify entities.DeliveryProblemModify) (*entities.DeliveryProblem, error) {
	query := `INSERT INTO delivery_problems (delivery_id, description)
		VALUES ($1, $2)
		RETURNING ` + columns

	var problemModel DeliveryProblemDB
	err := r.querier.QueryRow(
		ctx,
		query,
		problemModify.DeliveryID,
		problemModify.Description,
	).Scan(
		&problemModel.ID,
		&problemModel.DeliveryID,
		&problemModel.Description,
		&problemModel.CreatedAt,
	)
	if err != nil {
		if repository.IsPgErrorWithCode(err, repository.PgErrForeignKeyViolation) {
			return nil, problem.ErrOrderNotFound
		}
		return nil, fmt.Errorf("unexpected problem repository create error: %w", err)
	}

	return ToDomain(&problemModel), nil
}

func (r *Repository) GetByID(ctx context.Context, id int64) (*entities.DeliveryProblem, error) {
	query := `SELECT ` + columns + `
		FROM delivery_problems
		WHERE id = $1`

	var problemModel DeliveryProblemDB
	err := r.querier.QueryRow(ctx, query, id).Scan(
		&problemModel.ID,
		&problemModel.DeliveryID,
		&problemModel.Description,
		&problemModel.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, problem.ErrProblemNotFound
		}
		return nil, fmt.Errorf("unexpected problem repository getbyid error: %w", err)
	}

	return ToDomain(&problemModel), nil
}

func (r *Repository) List(ctx context.Context, page int64) ([]entities.ProblemDetails, error) {
	query := `SELECT p.id, p.delivery_id, p.description, p.created_at,
			o.product, o.recipient_id, o.deliveryman_id, o.start_date, o.end_date, o.canceled_at
		FROM delivery_problems p
		JOIN orders o ON o.id = p.delivery_id
		ORDER BY p.id
		LIMIT $1 OFFSET $2`

	rows, err := r.querier.Query(ctx, query, repository.PerPage, repository.PageOffset(page))
	if err != nil {
		return nil, fmt.Errorf("unexpected problem repository list error: %w", err)
	}
	defer rows.Close()

	detailsModels := make([]ProblemDetailsDB, 0, repository.PerPage)
	for rows.Next() {
		var detailsModel ProblemDetailsDB
		err := rows.Scan(
			&detailsModel.ID,
			&detailsModel.DeliveryID,
			&detailsModel.Description,
			&detailsModel.CreatedAt,
			&detailsModel.Product,
			&detailsModel.RecipientID,
			&detailsModel.DeliverymanID,
			&detailsModel.StartDate,
			&detailsModel.EndDate,
			&detailsModel.CanceledAt,
		)
		if err != nil {
			return nil, fmt.Errorf("unexpected problem repository list error: %w", err)
		}
		detailsModels = append(detailsModels, detailsModel)
	}

	err = rows.Err()
	if err != nil {
		return nil, fmt.Errorf("unexpected problem repository list error: %w", err)
	}

	return ToDomainDetailsList(detailsModels), nil
}
