//go:build wireinject
// +build wireinject

package app

import (
	"context"

	"github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/google/wire"
	"github.com/jackc/pgx/v5/pgxpool"

	"fastfeet/internal/handlers/rest/deliveries_get"
	"fastfeet/internal/handlers/rest/delivered_get"
	"fastfeet/internal/handlers/rest/delivered_put"
	"fastfeet/internal/handlers/rest/deliveryman_delete"
	"fastfeet/internal/handlers/rest/deliveryman_get"
	"fastfeet/internal/handlers/rest/deliveryman_post"
	"fastfeet/internal/handlers/rest/deliveryman_put"
	"fastfeet/internal/handlers/rest/deliverymans_get"
	"fastfeet/internal/handlers/rest/file_post"
	"fastfeet/internal/handlers/rest/order_delete"
	"fastfeet/internal/handlers/rest/order_get"
	"fastfeet/internal/handlers/rest/order_post"
	"fastfeet/internal/handlers/rest/order_put"
	"fastfeet/internal/handlers/rest/orders_get"
	"fastfeet/internal/handlers/rest/problem_delete"
	"fastfeet/internal/handlers/rest/problem_get"
	"fastfeet/internal/handlers/rest/problem_post"
	"fastfeet/internal/handlers/rest/problems_get"
	"fastfeet/internal/handlers/rest/recipient_delete"
	"fastfeet/internal/handlers/rest/recipient_get"
	"fastfeet/internal/handlers/rest/recipient_post"
	"fastfeet/internal/handlers/rest/recipient_put"
	"fastfeet/internal/handlers/rest/recipients_get"
	"fastfeet/internal/handlers/rest/session_post"
	"fastfeet/internal/handlers/rest/user_post"
	"fastfeet/internal/handlers/rest/user_put"
	"fastfeet/internal/handlers/rest/withdrawal_put"
	"fastfeet/internal/pkg/config"
	"fastfeet/internal/pkg/mail"
	"fastfeet/internal/pkg/metrics"
	"fastfeet/internal/pkg/storage"

	deliverymanRepo "fastfeet/internal/repository/deliveryman"
	fileRepo "fastfeet/internal/repository/file"
	orderRepo "fastfeet/internal/repository/order"
	problemRepo "fastfeet/internal/repository/problem"
	recipientRepo "fastfeet/internal/repository/recipient"
	userRepo "fastfeet/internal/repository/user"

	deliverymanService "fastfeet/internal/service/deliveryman"
	fileService "fastfeet/internal/service/file"
	orderService "fastfeet/internal/service/order"
	problemService "fastfeet/internal/service/problem"
	recipientService "fastfeet/internal/service/recipient"
	userService "fastfeet/internal/service/user"

	"fastfeet/pkg/background"
	"fastfeet/pkg/logger"
	"fastfeet/pkg/querier"
	"fastfeet/pkg/tx"
)

type Application struct {
	ServiceRecipient   ServiceRecipient
	ServiceDeliveryman ServiceDeliveryman
	ServiceOrder       ServiceOrder
	ServiceProblem     ServiceProblem
	ServiceUser        ServiceUser
	ServiceFile        ServiceFile
	BackgroundWorkers  *background.Worker
}

type ServiceRecipient interface {
	recipient_get.Service
	recipients_get.Service
	recipient_post.Service
	recipient_put.Service
	recipient_delete.Service
}

type ServiceDeliveryman interface {
	deliveryman_get.Service
	deliverymans_get.Service
	deliveryman_post.Service
	deliveryman_put.Service
	deliveryman_delete.Service
}

type ServiceOrder interface {
	order_get.Service
	orders_get.Service
	order_post.Service
	order_put.Service
	order_delete.Service
	deliveries_get.Service
	delivered_get.Service
	withdrawal_put.Service
	delivered_put.Service
}

type ServiceProblem interface {
	problems_get.Service
	problem_get.Service
	problem_post.Service
	problem_delete.Service
}

type ServiceUser interface {
	user_post.Service
	user_put.Service
	session_post.Service
}

type ServiceFile interface {
	file_post.Service
}

func InitializeApplication(
	ctx context.Context,
	log logger.Logger,
	pool *pgxpool.Pool,
	getter *pgxv5.CtxGetter,
	cfg *config.Config,
) (*Application, error) {
	wire.Build(
		provideTxManager,
		provideQuerier,
		provideClock,
		provideNotifier,
		provideStorage,

		provideRecipientRepository,
		provideDeliverymanRepository,
		provideOrderRepository,
		provideProblemRepository,
		provideFileRepository,
		provideUserRepository,

		provideServiceRecipient,
		provideServiceDeliveryman,
		provideServiceOrder,
		provideServiceProblem,
		provideServiceUser,
		provideServiceFile,

		metrics.NewSystemCollector,
		provideTaskList,
		provideBackgroundWorkers,

		wire.Struct(new(Application), "*"),

		wire.Bind(new(ServiceRecipient), new(*recipientService.Recipient)),
		wire.Bind(new(ServiceDeliveryman), new(*deliverymanService.Deliveryman)),
		wire.Bind(new(ServiceOrder), new(*orderService.Order)),
		wire.Bind(new(ServiceProblem), new(*problemService.Problem)),
		wire.Bind(new(ServiceUser), new(*userService.User)),
		wire.Bind(new(ServiceFile), new(*fileService.File)),

		wire.Bind(new(recipientService.Repository), new(*recipientRepo.Repository)),
		wire.Bind(new(recipientService.Orders), new(*orderRepo.Repository)),
		wire.Bind(new(deliverymanService.Repository), new(*deliverymanRepo.Repository)),
		wire.Bind(new(orderService.Repository), new(*orderRepo.Repository)),
		wire.Bind(new(orderService.RecipientChecker), new(*recipientRepo.Repository)),
		wire.Bind(new(orderService.DeliverymanChecker), new(*deliverymanRepo.Repository)),
		wire.Bind(new(problemService.Repository), new(*problemRepo.Repository)),
		wire.Bind(new(problemService.OrderService), new(*orderService.Order)),
		wire.Bind(new(problemService.DeliverymanChecker), new(*deliverymanRepo.Repository)),
		wire.Bind(new(problemService.Notifier), new(*mail.Notifier)),
		wire.Bind(new(userService.Repository), new(*userRepo.Repository)),
		wire.Bind(new(fileService.Repository), new(*fileRepo.Repository)),
		wire.Bind(new(fileService.Storage), new(*storage.Disk)),

		wire.Bind(new(recipientService.TxManager), new(*tx.Manager)),
		wire.Bind(new(deliverymanService.TxManager), new(*tx.Manager)),
		wire.Bind(new(orderService.TxManager), new(*tx.Manager)),
		wire.Bind(new(userService.TxManager), new(*tx.Manager)),
	)
	return &Application{}, nil
}

func provideTxManager(pool *pgxpool.Pool) *tx.Manager {
	return tx.New(pool)
}

func provideQuerier(pool *pgxpool.Pool, getter *pgxv5.CtxGetter) *querier.Querier {
	return querier.New(pool, getter)
}

func provideClock() orderService.Clock {
	return orderService.SystemClock{}
}

func provideNotifier(log logger.Logger, cfg *config.Config) *mail.Notifier {
	return mail.New(log, &cfg.Mail)
}

func provideStorage(cfg *config.Config) (*storage.Disk, error) {
	return storage.New(cfg.Storage.Dir, cfg.Storage.BaseURL)
}

func provideRecipientRepository(querier *querier.Querier) *recipientRepo.Repository {
	return recipientRepo.New(querier)
}

func provideDeliverymanRepository(querier *querier.Querier) *deliverymanRepo.Repository {
	return deliverymanRepo.New(querier)
}

func provideOrderRepository(querier *querier.Querier) *orderRepo.Repository {
	return orderRepo.New(querier)
}

func provideProblemRepository(querier *querier.Querier) *problemRepo.Repository {
	return problemRepo.New(querier)
}

func provideFileRepository(querier *querier.Querier) *fileRepo.Repository {
	return fileRepo.New(querier)
}

func provideUserRepository(querier *querier.Querier) *userRepo.Repository {
	return userRepo.New(querier)
}

func provideServiceRecipient(
	repository recipientService.Repository,
	orders recipientService.Orders,
	txManager recipientService.TxManager,
) *recipientService.Recipient {
	return recipientService.New(repository, orders, txManager)
}

func provideServiceDeliveryman(
	repository deliverymanService.Repository,
	txManager deliverymanService.TxManager,
) *deliverymanService.Deliveryman {
	return deliverymanService.New(repository, txManager)
}

func provideServiceOrder(
	repository orderService.Repository,
	recipients orderService.RecipientChecker,
	deliverymen orderService.DeliverymanChecker,
	txManager orderService.TxManager,
	clock orderService.Clock,
) *orderService.Order {
	return orderService.New(repository, recipients, deliverymen, txManager, clock)
}

func provideServiceProblem(
	repository problemService.Repository,
	orders problemService.OrderService,
	deliverymen problemService.DeliverymanChecker,
	notifier problemService.Notifier,
) *problemService.Problem {
	return problemService.New(repository, orders, deliverymen, notifier)
}

func provideServiceUser(
	repository userService.Repository,
	txManager userService.TxManager,
	cfg *config.Config,
) *userService.User {
	return userService.New(repository, txManager, cfg.Auth.JWTSecret, cfg.Auth.TokenTTL)
}

func provideServiceFile(
	repository fileService.Repository,
	storage fileService.Storage,
) *fileService.File {
	return fileService.New(repository, storage)
}

func provideTaskList(
	systemCollector *metrics.SystemCollector,
) []background.Task {
	return []background.Task{
		systemCollector,
	}
}

func provideBackgroundWorkers(ctx context.Context, log logger.Logger, tasks []background.Task) (*background.Worker, error) {
	return background.New(ctx, log, tasks)
}
