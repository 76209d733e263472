package recipient

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"

	"fastfeet/internal/entities"
	"fastfeet/internal/repository"
	"fastfeet/internal/service/recipient"
)

var qb sq.StatementBuilderType = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

const columns = "id, name, street, number, complement, state, city, zip_code, created_at, updated_at"

type Repository struct {
	querier repository.Querier
}

func New(querier repository.Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func (r *Repository) Create(ctx context.Context, recipientModify entities.RecipientModify) (*entities.Recipient, error) {
	query := `INSERT INTO recipients (name, street, number, complement, state, city, zip_code)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING ` + columns

	var recipientModel RecipientDB
	err := r.querier.QueryRow(
		ctx,
		query,
		recipientModify.Name,
		recipientModify.Street,
		recipientModify.Number,
		recipientModify.Complement,
		recipientModify.State,
		recipientModify.City,
		recipientModify.ZipCode,
	).Scan(
		&recipientModel.ID,
		&recipientModel.Name,
		&recipientModel.Street,
		&recipientModel.Number,
		&recipientModel.Complement,
		&recipientModel.State,
		&recipientModel.City,
		&recipientModel.ZipCode,
		&recipientModel.CreatedAt,
		&recipientModel.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("unexpected recipient repository create error: %w", err)
	}

	return ToDomain(&recipientModel), nil
}

func (r *Repository) Update(ctx context.Context, recipientModify entities.RecipientModify) (*entities.Recipient, error) {
	builder := qb.Update("recipients")

	if recipientModify.Name != nil {
		builder = builder.Set("name", recipientModify.Name)
	}
	if recipientModify.Street != nil {
		builder = builder.Set("street", recipientModify.Street)
	}
	if recipientModify.Number != nil {
		builder = builder.Set("number", recipientModify.Number)
	}
	if recipientModify.Complement != nil {
		builder = builder.Set("complement", recipientModify.Complement)
	}
	if recipientModify.State != nil {
		builder = builder.Set("state", recipientModify.State)
	}
	if recipientModify.City != nil {
		builder = builder.Set("city", recipientModify.City)
	}
	if recipientModify.ZipCode != nil {
		builder = builder.Set("zip_code", recipientModify.ZipCode)
	}

	builder = builder.
		Set("updated_at", sq.Expr("NOW()")).
		Where(sq.Eq{"id": recipientModify.ID}).
		Suffix("RETURNING " + columns)

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected recipient repository update error: %w", err)
	}

	var recipientModel RecipientDB
	err = r.querier.QueryRow(ctx, query, args...).Scan(
		&recipientModel.ID,
		&recipientModel.Name,
		&recipientModel.Street,
		&recipientModel.Number,
		&recipientModel.Complement,
		&recipientModel.State,
		&recipientModel.City,
		&recipientModel.ZipCode,
		&recipientModel.CreatedAt,
		&recipientModel.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, recipient.ErrRecipientNotFound
		}
		return nil, fmt.Errorf("unexpected recipient repository update error: %w", err)
	}

	return ToDomain(&recipientModel), nil
}

func (r *Repository) GetByID(ctx context.Context, id int64) (*entities.Recipient, error) {
	query := `SELECT ` + columns + `
		FROM recipients
		WHERE id = $1`

	var recipientModel RecipientDB
	err := r.querier.QueryRow(ctx, query, id).Scan(
		&recipientModel.ID,
		&recipientModel.Name,
		&recipientModel.Street,
		&recipientModel.Number,
		&recipientModel.Complement,
		&recipientModel.State,
		&recipientModel.City,
		&recipientModel.ZipCode,
		&recipientModel.CreatedAt,
		&recipientModel.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, recipient.ErrRecipientNotFound
		}
		return nil, fmt.Errorf("unexpected recipient repository getbyid error: %w", err)
	}

	return ToDomain(&recipientModel), nil
}

func (r *Repository) List(ctx context.Context, page int64, query string) ([]entities.Recipient, error) {
	builder := qb.
		Select(columns).
		From("recipients").
		OrderBy("id").
		Limit(repository.PerPage).
		Offset(repository.PageOffset(page))

	if query != "" {
		builder = builder.Where(sq.ILike{"name": "%" + query + "%"})
	}

	sql, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected recipient repository list error: %w", err)
	}

	rows, err := r.querier.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("unexpected recipient repository list error: %w", err)
	}
	defer rows.Close()

	recipientModels := make([]RecipientDB, 0, repository.PerPage)
	for rows.Next() {
		var recipientModel RecipientDB
		err := rows.Scan(
			&recipientModel.ID,
			&recipientModel.Name,
			&recipientModel.Street,
			&recipientModel.Number,
			&recipientModel.Complement,
			&recipientModel.State,
			&recipientModel.City,
			&recipientModel.ZipCode,
			&recipientModel.CreatedAt,
			&recipientModel.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("unexpected recipient repository list error: %w", err)
		}
		recipientModels = append(recipientModels, recipientModel)
	}

	err = rows.Err()
	if err != nil {
		return nil, fmt.Errorf("unexpected recipient repository list error: %w", err)
	}

	return ToDomainList(recipientModels), nil
}

func (r *Repository) Delete(ctx context.Context, id int64) error {
	tag, err := r.querier.Exec(ctx, `DELETE FROM recipients WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("unexpected recipient repository delete error: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return recipient.ErrRecipientNotFound
	}
	return nil
}

func (r *Repository) Exists(ctx context.Context, id int64) (bool, error) {
	var exists bool
	err := r.querier.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM recipients WHERE id = $1)`, id).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("unexpected recipient repository exists error: %w", err)
	}
	return exists, nil
}
