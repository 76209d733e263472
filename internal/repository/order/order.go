package order

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"

	"fastfeet/internal/entities"
	"fastfeet/internal/repository"
	"fastfeet/internal/service/order"
)

var qb sq.StatementBuilderType = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

const orderColumns = "id, product, recipient_id, deliveryman_id, signature_id, start_date, end_date, canceled_at, created_at, updated_at"

const detailsColumns = `o.id, o.product, o.recipient_id, o.deliveryman_id, o.signature_id,
	o.start_date, o.end_date, o.canceled_at, o.created_at, o.updated_at,
	r.name, r.street, r.number, r.complement, r.state, r.city, r.zip_code,
	d.name, d.email, d.avatar_id, fa.path, fa.url,
	fs.path, fs.url`

const detailsJoins = `FROM orders o
	JOIN recipients r ON r.id = o.recipient_id
	JOIN deliverymans d ON d.id = o.deliveryman_id
	LEFT JOIN files fa ON fa.id = d.avatar_id
	LEFT JOIN files fs ON fs.id = o.signature_id`

type Repository struct {
	querier repository.Querier
}

func New(querier repository.Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func (r *Repository) Create(ctx context.Context, orderModify entities.OrderModify) (*entities.Order, error) {
	query := `INSERT INTO orders (product, recipient_id, deliveryman_id)
		VALUES ($1, $2, $3)
		RETURNING ` + orderColumns

	orderModel, err := scanOrder(r.querier.QueryRow(
		ctx,
		query,
		orderModify.Product,
		orderModify.RecipientID,
		orderModify.DeliverymanID,
	))
	if err != nil {
		if repository.IsPgErrorWithCode(err, repository.PgErrForeignKeyViolation) {
			return nil, order.ErrRecipientOrDeliverymanNotFound
		}
		return nil, fmt.Errorf("unexpected order repository create error: %w", err)
	}

	return ToDomain(orderModel), nil
}

func (r *Repository) Update(ctx context.Context, orderModify entities.OrderModify) (*entities.Order, error) {
	builder := qb.Update("orders")

	if orderModify.Product != nil {
		builder = builder.Set("product", orderModify.Product)
	}
	if orderModify.RecipientID != nil {
		builder = builder.Set("recipient_id", orderModify.RecipientID)
	}
	if orderModify.DeliverymanID != nil {
		builder = builder.Set("deliveryman_id", orderModify.DeliverymanID)
	}
	if orderModify.SignatureID != nil {
		builder = builder.Set("signature_id", orderModify.SignatureID)
	}
	if orderModify.StartDate != nil {
		builder = builder.Set("start_date", orderModify.StartDate)
	}
	if orderModify.EndDate != nil {
		builder = builder.Set("end_date", orderModify.EndDate)
	}
	if orderModify.CanceledAt != nil {
		builder = builder.Set("canceled_at", orderModify.CanceledAt)
	}

	builder = builder.
		Set("updated_at", sq.Expr("NOW()")).
		Where(sq.Eq{"id": orderModify.ID}).
		Suffix("RETURNING " + orderColumns)

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected order repository update error: %w", err)
	}

	orderModel, err := scanOrder(r.querier.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, order.ErrOrderNotFound
		}
		if repository.IsPgErrorWithCode(err, repository.PgErrForeignKeyViolation) {
			return nil, order.ErrRecipientOrDeliverymanNotFound
		}
		return nil, fmt.Errorf("unexpected order repository update error: %w", err)
	}

	return ToDomain(orderModel), nil
}

func (r *Repository) GetByID(ctx context.Context, id int64) (*entities.Order, error) {
	query := `SELECT ` + orderColumns + `
		FROM orders
		WHERE id = $1`

	orderModel, err := scanOrder(r.querier.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, order.ErrOrderNotFound
		}
		return nil, fmt.Errorf("unexpected order repository getbyid error: %w", err)
	}

	return ToDomain(orderModel), nil
}

func (r *Repository) GetDetails(ctx context.Context, id int64) (*entities.OrderDetails, error) {
	query := `SELECT ` + detailsColumns + `
		` + detailsJoins + `
		WHERE o.id = $1`

	detailsModel, err := scanDetails(r.querier.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, order.ErrOrderNotFound
		}
		return nil, fmt.Errorf("unexpected order repository getdetails error: %w", err)
	}

	return ToDomainDetails(detailsModel), nil
}

func (r *Repository) List(ctx context.Context, page int64, query string) ([]entities.OrderDetails, error) {
	builder := r.detailsBuilder().
		Where(sq.Eq{"o.canceled_at": nil}).
		OrderBy("o.id").
		Limit(repository.PerPage).
		Offset(repository.PageOffset(page))

	if query != "" {
		builder = builder.Where(sq.ILike{"o.product": "%" + query + "%"})
	}

	return r.queryDetails(ctx, builder, "list")
}

func (r *Repository) ListOpenByDeliveryman(ctx context.Context, deliverymanID, page int64) ([]entities.OrderDetails, error) {
	builder := r.detailsBuilder().
		Where(sq.Eq{"o.deliveryman_id": deliverymanID}).
		Where(sq.Eq{"o.canceled_at": nil}).
		Where(sq.Eq{"o.end_date": nil}).
		OrderBy("o.id").
		Limit(repository.PerPage).
		Offset(repository.PageOffset(page))

	return r.queryDetails(ctx, builder, "listopen")
}

func (r *Repository) ListDeliveredByDeliveryman(ctx context.Context, deliverymanID, page int64) ([]entities.OrderDetails, error) {
	builder := r.detailsBuilder().
		Where(sq.Eq{"o.deliveryman_id": deliverymanID}).
		Where(sq.NotEq{"o.end_date": nil}).
		OrderBy("o.id").
		Limit(repository.PerPage).
		Offset(repository.PageOffset(page))

	return r.queryDetails(ctx, builder, "listdelivered")
}

// HasUnsignedByRecipient reports whether the recipient still has an order
// without a signature on file.
func (r *Repository) HasUnsignedByRecipient(ctx context.Context, recipientID int64) (bool, error) {
	query := `SELECT EXISTS(
		SELECT 1 FROM orders
		WHERE recipient_id = $1 AND signature_id IS NULL)`

	var exists bool
	err := r.querier.QueryRow(ctx, query, recipientID).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("unexpected order repository hasundelivered error: %w", err)
	}
	return exists, nil
}

func (r *Repository) detailsBuilder() sq.SelectBuilder {
	return qb.
		Select(detailsColumns).
		From("orders o").
		Join("recipients r ON r.id = o.recipient_id").
		Join("deliverymans d ON d.id = o.deliveryman_id").
		LeftJoin("files fa ON fa.id = d.avatar_id").
		LeftJoin("files fs ON fs.id = o.signature_id")
}

func (r *Repository) queryDetails(ctx context.Context, builder sq.SelectBuilder, op string) ([]entities.OrderDetails, error) {
	sql, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected order repository %s error: %w", op, err)
	}

	rows, err := r.querier.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("unexpected order repository %s error: %w", op, err)
	}
	defer rows.Close()

	detailsModels := make([]OrderDetailsDB, 0, repository.PerPage)
	for rows.Next() {
		detailsModel, err := scanDetails(rows)
		if err != nil {
			return nil, fmt.Errorf("unexpected order repository %s error: %w", op, err)
		}
		detailsModels = append(detailsModels, *detailsModel)
	}

	err = rows.Err()
	if err != nil {
		return nil, fmt.Errorf("unexpected order repository %s error: %w", op, err)
	}

	return ToDomainDetailsList(detailsModels), nil
}

func scanOrder(row pgx.Row) (*OrderDB, error) {
	var orderModel OrderDB
	err := row.Scan(
		&orderModel.ID,
		&orderModel.Product,
		&orderModel.RecipientID,
		&orderModel.DeliverymanID,
		&orderModel.SignatureID,
		&orderModel.StartDate,
		&orderModel.EndDate,
		&orderModel.CanceledAt,
		&orderModel.CreatedAt,
		&orderModel.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &orderModel, nil
}

func scanDetails(row pgx.Row) (*OrderDetailsDB, error) {
	var detailsModel OrderDetailsDB
	err := row.Scan(
		&detailsModel.ID,
		&detailsModel.Product,
		&detailsModel.RecipientID,
		&detailsModel.DeliverymanID,
		&detailsModel.SignatureID,
		&detailsModel.StartDate,
		&detailsModel.EndDate,
		&detailsModel.CanceledAt,
		&detailsModel.CreatedAt,
		&detailsModel.UpdatedAt,
		&detailsModel.RecipientName,
		&detailsModel.RecipientStreet,
		&detailsModel.RecipientNumber,
		&detailsModel.RecipientComplement,
		&detailsModel.RecipientState,
		&detailsModel.RecipientCity,
		&detailsModel.RecipientZipCode,
		&detailsModel.DeliverymanName,
		&detailsModel.DeliverymanEmail,
		&detailsModel.AvatarID,
		&detailsModel.AvatarPath,
		&detailsModel.AvatarURL,
		&detailsModel.SignaturePath,
		&detailsModel.SignatureURL,
	)
	if err != nil {
		return nil, err
	}
	return &detailsModel, nil
}
