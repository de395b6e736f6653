//go:build wireinject
// +build wireinject

package app

import (
	"context"
	"net/http"
	"time"

	orderGateway "github.com/Skllit/GreenSource-v2/internal/gateway/http/order"
	agent_get "github.com/Skllit/GreenSource-v2/internal/handlers/rest/agent_get"
	agent_post "github.com/Skllit/GreenSource-v2/internal/handlers/rest/agent_post"
	agent_put "github.com/Skllit/GreenSource-v2/internal/handlers/rest/agent_put"
	agents_get "github.com/Skllit/GreenSource-v2/internal/handlers/rest/agents_get"
	deliveries_get "github.com/Skllit/GreenSource-v2/internal/handlers/rest/deliveries_get"
	delivery_get "github.com/Skllit/GreenSource-v2/internal/handlers/rest/delivery_get"
	delivery_rate_post "github.com/Skllit/GreenSource-v2/internal/handlers/rest/delivery_rate_post"
	delivery_transition_post "github.com/Skllit/GreenSource-v2/internal/handlers/rest/delivery_transition_post"
	dispatch_post "github.com/Skllit/GreenSource-v2/internal/handlers/rest/dispatch_post"
	"github.com/Skllit/GreenSource-v2/internal/handlers/tasks/mirror_sync"
	"github.com/Skllit/GreenSource-v2/internal/pkg/config"
	"github.com/Skllit/GreenSource-v2/internal/pkg/factory/delivery_eta"
	"github.com/Skllit/GreenSource-v2/internal/pkg/factory/order_handle"

	agentRepo "github.com/Skllit/GreenSource-v2/internal/repository/agent"
	deliveryRepo "github.com/Skllit/GreenSource-v2/internal/repository/delivery"
	mirrorRepo "github.com/Skllit/GreenSource-v2/internal/repository/mirror"
	agentService "github.com/Skllit/GreenSource-v2/internal/service/agent"
	dispatchService "github.com/Skllit/GreenSource-v2/internal/service/dispatch"
	fulfillmentService "github.com/Skllit/GreenSource-v2/internal/service/fulfillment"
	eventsService "github.com/Skllit/GreenSource-v2/internal/service/orderevents"
	mirrorService "github.com/Skllit/GreenSource-v2/internal/service/ordermirror"

	"github.com/Skllit/GreenSource-v2/pkg/background"
	"github.com/Skllit/GreenSource-v2/pkg/logger"
	"github.com/Skllit/GreenSource-v2/pkg/querier"
	"github.com/Skllit/GreenSource-v2/pkg/tx"

	"github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/google/wire"
	"github.com/jackc/pgx/v5/pgxpool"
)

type (
	MirrorSyncInterval time.Duration
)

type Application struct {
	ServiceAgent       ServiceAgent
	ServiceDispatch    ServiceDispatch
	ServiceFulfillment ServiceFulfillment
	BackgroundWorkers  *background.Worker
}

type ServiceAgent interface {
	agent_get.Service
	agent_post.Service
	agent_put.Service
	agents_get.Service
}

type ServiceDispatch interface {
	dispatch_post.Service
}

type ServiceFulfillment interface {
	delivery_get.Service
	deliveries_get.Service
	delivery_transition_post.Service
	delivery_rate_post.Service
}

// InitializeApplication для HTTP сервиса (cmd/service)
func InitializeApplication(
	ctx context.Context,
	log logger.Logger,
	pool *pgxpool.Pool,
	getter *pgxv5.CtxGetter,
	httpClient *http.Client,
	cfg *config.Config,
) (*Application, error) {
	wire.Build(
		provideTxManager,
		provideQuerier,
		provideMirrorSyncInterval,

		provideAgentRepository,
		provideDeliveryRepository,
		provideMirrorRepository,

		provideOrderGateway,

		provideServiceAgent,
		provideServiceMirror,
		provideServiceDispatch,
		provideServiceFulfillment,
		provideDeliveryTimeFactory,

		provideMirrorSyncTask,
		provideTaskList,
		provideBackgroundWorkers,

		wire.Struct(new(Application), "*"),

		wire.Bind(new(ServiceAgent), new(*agentService.Agent)),
		wire.Bind(new(ServiceDispatch), new(*dispatchService.Dispatch)),
		wire.Bind(new(ServiceFulfillment), new(*fulfillmentService.Fulfillment)),

		wire.Bind(new(agentService.Repository), new(*agentRepo.Repository)),
		wire.Bind(new(dispatchService.Repository), new(*deliveryRepo.Repository)),
		wire.Bind(new(fulfillmentService.Repository), new(*deliveryRepo.Repository)),
		wire.Bind(new(mirrorService.Repository), new(*mirrorRepo.Repository)),
		wire.Bind(new(mirrorService.OrderGateway), new(*orderGateway.OrderGateway)),

		wire.Bind(new(dispatchService.AgentService), new(*agentService.Agent)),
		wire.Bind(new(fulfillmentService.AgentService), new(*agentService.Agent)),
		wire.Bind(new(dispatchService.MirrorService), new(*mirrorService.Mirror)),
		wire.Bind(new(fulfillmentService.MirrorService), new(*mirrorService.Mirror)),
		wire.Bind(new(dispatchService.DeliveryTimeFactory), new(*delivery_eta.DeliveryTimeFactory)),

		wire.Bind(new(agentService.TxManager), new(*tx.Manager)),
		wire.Bind(new(dispatchService.TxManager), new(*tx.Manager)),
		wire.Bind(new(fulfillmentService.TxManager), new(*tx.Manager)),

		wire.Bind(new(mirror_sync.Service), new(*mirrorService.Mirror)),
	)
	return &Application{}, nil
}

type KafkaWorkerApp struct {
	OrderService *eventsService.Service
}

// InitializeKafkaWorkerApp для Kafka воркера (cmd/worker-order-events)
func InitializeKafkaWorkerApp(
	ctx context.Context,
	log logger.Logger,
	pool *pgxpool.Pool,
	getter *pgxv5.CtxGetter,
	httpClient *http.Client,
	cfg *config.Config,
) (*KafkaWorkerApp, error) {
	wire.Build(
		provideTxManager,
		provideQuerier,

		provideAgentRepository,
		provideDeliveryRepository,
		provideMirrorRepository,

		provideOrderGateway,

		provideServiceAgent,
		provideServiceMirror,
		provideServiceDispatch,
		provideServiceFulfillment,
		provideDeliveryTimeFactory,

		provideStatusHandlerFabric,
		provideOrderService,

		wire.Bind(new(agentService.Repository), new(*agentRepo.Repository)),
		wire.Bind(new(dispatchService.Repository), new(*deliveryRepo.Repository)),
		wire.Bind(new(fulfillmentService.Repository), new(*deliveryRepo.Repository)),
		wire.Bind(new(mirrorService.Repository), new(*mirrorRepo.Repository)),
		wire.Bind(new(mirrorService.OrderGateway), new(*orderGateway.OrderGateway)),

		wire.Bind(new(dispatchService.AgentService), new(*agentService.Agent)),
		wire.Bind(new(fulfillmentService.AgentService), new(*agentService.Agent)),
		wire.Bind(new(dispatchService.MirrorService), new(*mirrorService.Mirror)),
		wire.Bind(new(fulfillmentService.MirrorService), new(*mirrorService.Mirror)),
		wire.Bind(new(dispatchService.DeliveryTimeFactory), new(*delivery_eta.DeliveryTimeFactory)),

		wire.Bind(new(eventsService.OrderGateway), new(*orderGateway.OrderGateway)),
		wire.Bind(new(eventsService.DispatchService), new(*dispatchService.Dispatch)),
		wire.Bind(new(eventsService.FulfillmentService), new(*fulfillmentService.Fulfillment)),
		wire.Bind(new(eventsService.HandlerFactory), new(*order_handle.StatusHandlerFactory)),

		wire.Bind(new(agentService.TxManager), new(*tx.Manager)),
		wire.Bind(new(dispatchService.TxManager), new(*tx.Manager)),
		wire.Bind(new(fulfillmentService.TxManager), new(*tx.Manager)),

		wire.Struct(new(KafkaWorkerApp), "*"),
	)
	return nil, nil
}

func provideTxManager(pool *pgxpool.Pool) *tx.Manager {
	return tx.New(pool)
}

func provideQuerier(pool *pgxpool.Pool, getter *pgxv5.CtxGetter) *querier.Querier {
	return querier.New(pool, getter)
}

func provideAgentRepository(querier *querier.Querier) *agentRepo.Repository {
	return agentRepo.New(querier)
}

func provideDeliveryRepository(querier *querier.Querier) *deliveryRepo.Repository {
	return deliveryRepo.New(querier)
}

func provideMirrorRepository(querier *querier.Querier) *mirrorRepo.Repository {
	return mirrorRepo.New(querier)
}

func provideOrderGateway(httpClient *http.Client, cfg *config.Config) *orderGateway.OrderGateway {
	return orderGateway.New(cfg.OrderService.BaseURL, httpClient)
}

func provideServiceAgent(
	repository agentService.Repository,
	txManager agentService.TxManager,
) *agentService.Agent {
	return agentService.New(repository, txManager)
}

func provideServiceMirror(
	log logger.Logger,
	repository mirrorService.Repository,
	gateway mirrorService.OrderGateway,
) *mirrorService.Mirror {
	return mirrorService.New(log, repository, gateway)
}

func provideServiceDispatch(
	repository dispatchService.Repository,
	agentSvc dispatchService.AgentService,
	mirrorSvc dispatchService.MirrorService,
	timeFactory dispatchService.DeliveryTimeFactory,
	txManager dispatchService.TxManager,
) *dispatchService.Dispatch {
	return dispatchService.New(
		repository,
		agentSvc,
		mirrorSvc,
		timeFactory,
		txManager,
	)
}

func provideServiceFulfillment(
	repository fulfillmentService.Repository,
	agentSvc fulfillmentService.AgentService,
	mirrorSvc fulfillmentService.MirrorService,
	txManager fulfillmentService.TxManager,
) *fulfillmentService.Fulfillment {
	return fulfillmentService.New(
		repository,
		agentSvc,
		mirrorSvc,
		txManager,
	)
}

func provideDeliveryTimeFactory(cfg *config.Config) *delivery_eta.DeliveryTimeFactory {
	return delivery_eta.New(cfg.Dispatch.HandlingAllowance)
}

func provideMirrorSyncInterval(cfg *config.Config) MirrorSyncInterval {
	return MirrorSyncInterval(cfg.Tasks.MirrorSyncInterval)
}

// provideOrderService создает сервис обработки событий order.status.changed
func provideOrderService(
	gateway eventsService.OrderGateway,
	handlerFactory eventsService.HandlerFactory,
) *eventsService.Service {
	return eventsService.New(gateway, handlerFactory)
}

func provideStatusHandlerFabric(
	dispatchSvc eventsService.DispatchService,
	fulfillmentSvc eventsService.FulfillmentService,
) *order_handle.StatusHandlerFactory {
	return order_handle.NewStatusHandlerFactory(dispatchSvc, fulfillmentSvc)
}

func provideMirrorSyncTask(
	log logger.Logger,
	mirrorSvc mirror_sync.Service,
	interval MirrorSyncInterval,
) *mirror_sync.MirrorSync {
	return mirror_sync.NewMirrorSync(log, mirrorSvc, time.Duration(interval))
}

func provideTaskList(
	mirrorSyncTask *mirror_sync.MirrorSync,
) []background.Task {
	return []background.Task{
		mirrorSyncTask,
	}
}

func provideBackgroundWorkers(ctx context.Context, log logger.Logger, tasks []background.Task) (*background.Worker, error) {
	return background.New(ctx, log, tasks)
}
