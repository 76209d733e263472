package deliveryman

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"

	"fastfeet/internal/entities"
	"fastfeet/internal/repository"
	"fastfeet/internal/service/deliveryman"
)

var qb sq.StatementBuilderType = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

const joinedColumns = `d.id, d.name, d.email, d.avatar_id, d.created_at, d.updated_at,
	f.name, f.path, f.url`

type Repository struct {
	querier repository.Querier
}

func New(querier repository.Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func (r *Repository) Create(ctx context.Context, deliverymanModify entities.DeliverymanModify) (*entities.Deliveryman, error) {
	query := `INSERT INTO deliverymans (name, email, avatar_id)
		VALUES ($1, $2, $3)
		RETURNING id`

	var id int64
	err := r.querier.QueryRow(
		ctx,
		query,
		deliverymanModify.Name,
		deliverymanModify.Email,
		deliverymanModify.AvatarID,
	).Scan(&id)
	if err != nil {
		if repository.IsPgErrorWithCode(err, repository.PgErrUniqueViolation) {
			return nil, deliveryman.ErrEmailTaken
		}
		return nil, fmt.Errorf("unexpected deliveryman repository create error: %w", err)
	}

	return r.GetByID(ctx, id)
}

func (r *Repository) Update(ctx context.Context, deliverymanModify entities.DeliverymanModify) (*entities.Deliveryman, error) {
	builder := qb.Update("deliverymans")

	if deliverymanModify.Name != nil {
		builder = builder.Set("name", deliverymanModify.Name)
	}
	if deliverymanModify.Email != nil {
		builder = builder.Set("email", deliverymanModify.Email)
	}
	if deliverymanModify.AvatarID != nil {
		builder = builder.Set("avatar_id", deliverymanModify.AvatarID)
	}

	builder = builder.
		Set("updated_at", sq.Expr("NOW()")).
		Where(sq.Eq{"id": deliverymanModify.ID}).
		Suffix("RETURNING id")

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected deliveryman repository update error: %w", err)
	}

	var id int64
	err = r.querier.QueryRow(ctx, query, args...).Scan(&id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, deliveryman.ErrDeliverymanNotFound
		}
		if repository.IsPgErrorWithCode(err, repository.PgErrUniqueViolation) {
			return nil, deliveryman.ErrEmailTaken
		}
		return nil, fmt.Errorf("unexpected deliveryman repository update error: %w", err)
	}

	return r.GetByID(ctx, id)
}

func (r *Repository) GetByID(ctx context.Context, id int64) (*entities.Deliveryman, error) {
	query := `SELECT ` + joinedColumns + `
		FROM deliverymans d
		LEFT JOIN files f ON f.id = d.avatar_id
		WHERE d.id = $1`

	deliverymanModel, err := r.scanOne(r.querier.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, deliveryman.ErrDeliverymanNotFound
		}
		return nil, fmt.Errorf("unexpected deliveryman repository getbyid error: %w", err)
	}

	return ToDomain(deliverymanModel), nil
}

func (r *Repository) GetByEmail(ctx context.Context, email string) (*entities.Deliveryman, error) {
	query := `SELECT ` + joinedColumns + `
		FROM deliverymans d
		LEFT JOIN files f ON f.id = d.avatar_id
		WHERE d.email = $1`

	deliverymanModel, err := r.scanOne(r.querier.QueryRow(ctx, query, email))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, deliveryman.ErrDeliverymanNotFound
		}
		return nil, fmt.Errorf("unexpected deliveryman repository getbyemail error: %w", err)
	}

	return ToDomain(deliverymanModel), nil
}

func (r *Repository) List(ctx context.Context, page int64, query string) ([]entities.Deliveryman, error) {
	builder := qb.
		Select(joinedColumns).
		From("deliverymans d").
		LeftJoin("files f ON f.id = d.avatar_id").
		OrderBy("d.id").
		Limit(repository.PerPage).
		Offset(repository.PageOffset(page))

	if query != "" {
		builder = builder.Where(sq.ILike{"d.name": "%" + query + "%"})
	}

	sql, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected deliveryman repository list error: %w", err)
	}

	rows, err := r.querier.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("unexpected deliveryman repository list error: %w", err)
	}
	defer rows.Close()

	deliverymanModels := make([]DeliverymanDB, 0, repository.PerPage)
	for rows.Next() {
		deliverymanModel, err := r.scanOne(rows)
		if err != nil {
			return nil, fmt.Errorf("unexpected deliveryman repository list error: %w", err)
		}
		deliverymanModels = append(deliverymanModels, *deliverymanModel)
	}

	err = rows.Err()
	if err != nil {
		return nil, fmt.Errorf("unexpected deliveryman repository list error: %w", err)
	}

	return ToDomainList(deliverymanModels), nil
}

func (r *Repository) Delete(ctx context.Context, id int64) error {
	tag, err := r.querier.Exec(ctx, `DELETE FROM deliverymans WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("unexpected deliveryman repository delete error: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return deliveryman.ErrDeliverymanNotFound
	}
	return nil
}

func (r *Repository) Exists(ctx context.Context, id int64) (bool, error) {
	var exists bool
	err := r.querier.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM deliverymans WHERE id = $1)`, id).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("unexpected deliveryman repository exists error: %w", err)
	}
	return exists, nil
}

func (r *Repository) scanOne(row pgx.Row) (*DeliverymanDB, error) {
	var deliverymanModel DeliverymanDB
	err := row.Scan(
		&deliverymanModel.ID,
		&deliverymanModel.Name,
		&deliverymanModel.Email,
		&deliverymanModel.AvatarID,
		&deliverymanModel.CreatedAt,
		&deliverymanModel.UpdatedAt,
		&deliverymanModel.AvatarName,
		&deliverymanModel.AvatarPath,
		&deliverymanModel.AvatarURL,
	)
	if err != nil {
		return nil, err
	}
	return &deliverymanModel, nil
}
