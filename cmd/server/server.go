package main

import (
	"context"
	"fmt"
	"log/slog"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/KirkDiggler/rpg-toolkit/events"
	"github.com/spf13/cobra"
	"go.opentelemetry.io/contrib/instrumentation/google.golang.org/grpc/otelgrpc"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/health"
	"google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"
	"google.golang.org/grpc/status"

	grpc_logging "github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors/logging"
	grpc_recovery "github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors/recovery"

	"github.com/KirkDiggler/mechbay-api/internal/config"
	"github.com/KirkDiggler/mechbay-api/internal/engine"
	"github.com/KirkDiggler/mechbay-api/internal/handlers/equipment/v1alpha1"
	equipmentorch "github.com/KirkDiggler/mechbay-api/internal/orchestrators/equipment"
	"github.com/KirkDiggler/mechbay-api/internal/pkg/idgen"
	"github.com/KirkDiggler/mechbay-api/internal/pkg/telemetry"
	redisclient "github.com/KirkDiggler/mechbay-api/internal/redis"
	characterrepo "github.com/KirkDiggler/mechbay-api/internal/repositories/character"
	itemrepo "github.com/KirkDiggler/mechbay-api/internal/repositories/item"
	mechrepo "github.com/KirkDiggler/mechbay-api/internal/repositories/mech"
	partrepo "github.com/KirkDiggler/mechbay-api/internal/repositories/part"
	equipmentsvc "github.com/KirkDiggler/mechbay-api/internal/services/equipment"
)

const serviceName = "mechbay-api"

var (
	grpcPort  int
	redisAddr string
	envFile   string
)

var serverCmd = &cobra.Command{
	Use:   "server",
	Short: "Start the gRPC server",
	Long:  `Start the mechbay gRPC server backed by Redis.`,
	RunE:  runServer,
}

func init() {
	serverCmd.Flags().IntVar(&grpcPort, "port", 0, "gRPC server port (overrides MECHBAY_GRPC_PORT)")
	serverCmd.Flags().StringVar(&redisAddr, "redis", "", "Redis address (overrides MECHBAY_REDIS_ADDR)")
	serverCmd.Flags().StringVar(&envFile, "env-file", "", "Optional .env file to load")
}

func loadConfig() (*config.Config, error) {
	var files []string
	if envFile != "" {
		files = append(files, envFile)
	}
	cfg, err := config.Load(files...)
	if err != nil {
		return nil, err
	}
	if grpcPort != 0 {
		cfg.GRPCPort = grpcPort
	}
	if redisAddr != "" {
		cfg.RedisAddr = redisAddr
	}
	return cfg, cfg.Validate()
}

func newRedisClient(cfg *config.Config) (redisclient.Client, error) {
	opts := &redisclient.Options{
		PoolSize:        cfg.RedisPoolSize,
		MaxRetries:      cfg.RedisMaxRetries,
		ConnMaxIdleTime: cfg.RedisIdleTimeout,
		UseTLS:          cfg.RedisUseTLS,
	}
	return redisclient.NewClient(cfg.RedisAddr, opts)
}

// newEquipmentService wires the repositories, engine, and event bus into the
// equipment orchestrator
func newEquipmentService(client redisclient.Client) (*equipmentorch.Orchestrator, error) {
	characters, err := characterrepo.NewRedis(&characterrepo.RedisConfig{Client: client})
	if err != nil {
		return nil, fmt.Errorf("failed to create character repository: %w", err)
	}
	mechs, err := mechrepo.NewRedis(&mechrepo.RedisConfig{Client: client})
	if err != nil {
		return nil, fmt.Errorf("failed to create mech repository: %w", err)
	}
	parts, err := partrepo.NewRedis(&partrepo.RedisConfig{Client: client})
	if err != nil {
		return nil, fmt.Errorf("failed to create part repository: %w", err)
	}
	items, err := itemrepo.NewRedis(&itemrepo.RedisConfig{Client: client})
	if err != nil {
		return nil, fmt.Errorf("failed to create item repository: %w", err)
	}

	eng, err := engine.New(&engine.Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to create engine: %w", err)
	}

	return equipmentorch.New(&equipmentorch.Config{
		CharacterRepo:   characters,
		MechRepo:        mechs,
		PartRepo:        parts,
		ItemRepo:        items,
		Engine:          eng,
		EventBus:        events.NewBus(),
		IDGenerator:     idgen.NewUUID(""),
		MechIDGenerator: idgen.NewULID(),
	})
}

// newGRPCServer builds the server with middleware, the equipment service,
// health, and reflection registered
func newGRPCServer(logger *slog.Logger, svc equipmentsvc.Service) (*grpc.Server, *health.Server, error) {
	handler, err := v1alpha1.NewHandler(&v1alpha1.HandlerConfig{EquipmentService: svc})
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create equipment handler: %w", err)
	}

	recoveryOpt := grpc_recovery.WithRecoveryHandlerContext(func(ctx context.Context, p any) error {
		logger.ErrorContext(ctx, "panic in handler", "panic", p)
		return status.Errorf(codes.Internal, "internal error")
	})

	srv := grpc.NewServer(
		grpc.StatsHandler(otelgrpc.NewServerHandler()),
		grpc.ChainUnaryInterceptor(
			grpc_logging.UnaryServerInterceptor(interceptorLogger(logger)),
			grpc_recovery.UnaryServerInterceptor(recoveryOpt),
		),
		grpc.ChainStreamInterceptor(
			grpc_logging.StreamServerInterceptor(interceptorLogger(logger)),
			grpc_recovery.StreamServerInterceptor(recoveryOpt),
		),
	)

	v1alpha1.RegisterEquipmentServiceServer(srv, handler)

	healthServer := health.NewServer()
	grpc_health_v1.RegisterHealthServer(srv, healthServer)
	healthServer.SetServingStatus("", grpc_health_v1.HealthCheckResponse_SERVING)
	healthServer.SetServingStatus(v1alpha1.ServiceName, grpc_health_v1.HealthCheckResponse_SERVING)

	reflection.Register(srv)

	return srv, healthServer, nil
}

// logChanges writes every committed change at debug level
func logChanges(ctx context.Context, logger *slog.Logger, svc equipmentsvc.Service) (equipmentsvc.Subscription, error) {
	out, err := svc.Subscribe(ctx, &equipmentsvc.SubscribeInput{
		Handler: func(ctx context.Context, change *equipmentsvc.Change) error {
			logger.DebugContext(ctx, "equipment change",
				"type", change.Type,
				"character_id", change.CharacterID,
				"entity_id", change.EntityID,
				"mech_id", change.MechID)
			return nil
		},
	})
	if err != nil {
		return nil, err
	}
	return out.Subscription, nil
}

func runServer(_ *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	logger := cfg.Logger()
	slog.SetDefault(logger)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-sigChan
		logger.Info("received shutdown signal, gracefully stopping")
		cancel()
	}()

	shutdownTracing, err := telemetry.Setup(ctx, &telemetry.Config{
		ServiceName: serviceName,
		Endpoint:    cfg.OTelEndpoint,
	})
	if err != nil {
		return fmt.Errorf("failed to set up tracing: %w", err)
	}
	defer func() {
		flushCtx, flushCancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer flushCancel()
		if err := shutdownTracing(flushCtx); err != nil {
			logger.Warn("failed to flush traces", "error", err)
		}
	}()

	client, err := newRedisClient(cfg)
	if err != nil {
		return fmt.Errorf("failed to create redis client: %w", err)
	}
	defer func() {
		_ = client.Close() // nolint:errcheck // safe to ignore on shutdown
	}()

	pingCtx, pingCancel := context.WithTimeout(ctx, cfg.RedisPingTimeout)
	err = redisclient.Ping(pingCtx, client)
	pingCancel()
	if err != nil {
		return err
	}

	svc, err := newEquipmentService(client)
	if err != nil {
		return err
	}

	sub, err := logChanges(ctx, logger, svc)
	if err != nil {
		return fmt.Errorf("failed to subscribe to changes: %w", err)
	}
	defer func() {
		_ = sub.Close() // nolint:errcheck // safe to ignore on shutdown
	}()

	srv, healthServer, err := newGRPCServer(logger, svc)
	if err != nil {
		return err
	}

	lis, err := net.Listen("tcp", fmt.Sprintf(":%d", cfg.GRPCPort))
	if err != nil {
		return fmt.Errorf("failed to listen: %w", err)
	}

	errChan := make(chan error, 1)
	go func() {
		logger.Info("gRPC server starting", "port", cfg.GRPCPort, "redis", cfg.RedisAddr)
		if err := srv.Serve(lis); err != nil {
			errChan <- fmt.Errorf("failed to serve: %w", err)
		}
	}()

	select {
	case <-ctx.Done():
		logger.Info("shutting down gRPC server")
		healthServer.Shutdown()

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer shutdownCancel()

		stopped := make(chan struct{})
		go func() {
			srv.GracefulStop()
			close(stopped)
		}()

		select {
		case <-shutdownCtx.Done():
			logger.Warn("graceful shutdown timeout exceeded, forcing stop")
			srv.Stop()
		case <-stopped:
			logger.Info("server stopped gracefully")
		}

		return nil
	case err := <-errChan:
		return err
	}
}

// interceptorLogger adapts slog to the middleware logger
func interceptorLogger(l *slog.Logger) grpc_logging.Logger {
	return grpc_logging.LoggerFunc(func(ctx context.Context, level grpc_logging.Level, msg string, fields ...any) {
		l.Log(ctx, slog.Level(level), msg, fields...)
	})
}
