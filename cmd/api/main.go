package main

import (
	"context"
	"os"
	"path"
	"runtime"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/store-revenue-api/infrastructure/cache"
	"github.com/vfg2006/store-revenue-api/infrastructure/database/postgres"
	"github.com/vfg2006/store-revenue-api/infrastructure/repository"
	"github.com/vfg2006/store-revenue-api/internal/api"
	"github.com/vfg2006/store-revenue-api/internal/config"
	"github.com/vfg2006/store-revenue-api/internal/scheduler"
	"github.com/vfg2006/store-revenue-api/internal/usecases/authenticating"
	"github.com/vfg2006/store-revenue-api/internal/usecases/category"
	"github.com/vfg2006/store-revenue-api/internal/usecases/checkout"
	"github.com/vfg2006/store-revenue-api/internal/usecases/revenue"
)

func main() {
	// Inicializa configuração de logs
	configureLogger()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	// Define o nível de log com base na configuração
	logLevel, err := logrus.ParseLevel(cfg.App.LogLevel)
	if err != nil {
		logrus.Warnf("Nível de log inválido: %s, usando 'info'", cfg.App.LogLevel)
		logLevel = logrus.InfoLevel
	}
	logrus.SetLevel(logLevel)
	logrus.Infof("Nível de log configurado para: %s", logLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pgConn := pgconn(ctx, cfg.Database)
	defer pgConn.Close()

	// Redis indisponível não derruba a aplicação: o motor de receita computa
	// direto no banco enquanto o cache estiver fora.
	cacheStore := redisStore(ctx, cfg.Redis)
	if cacheStore != nil {
		defer cacheStore.Close()
	}

	orderRepo := repository.NewOrderRepository(pgConn)
	productRepo := repository.NewProductRepository(pgConn)
	categoryRepo := repository.NewCategoryRepository(pgConn)
	userRepo := repository.NewUserRepository(pgConn)

	authenticator := authenticating.NewService(userRepo, cfg)
	revenueService := revenue.NewService(orderRepo, cacheStore, cfg)
	categoryService := category.NewService(categoryRepo)
	checkoutService := checkout.NewService(orderRepo, productRepo, revenueService)

	cacheWarmService := scheduler.NewCacheWarmService(orderRepo, revenueService, cfg)

	if err := cacheWarmService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de aquecimento de cache de receita")
	} else {
		logrus.Info("Agendador de aquecimento de cache de receita iniciado com sucesso")
	}

	server, err := api.New(
		cfg,
		revenueService,
		categoryService,
		checkoutService,
		authenticator,
		cacheWarmService,
	)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// configureLogger configura o formato e comportamento dos logs
func configureLogger() {
	_, file, _, _ := runtime.Caller(0)
	dir := path.Dir(file)
	os.Chdir(dir)

	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
}

// pgconn cria uma conexão com o banco de dados
func pgconn(ctx context.Context, dbConfig config.Database) *postgres.Connection {
	conn, err := postgres.NewConnection(ctx, dbConfig)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao conectar ao PostgreSQL")
	}

	err = conn.Ping(ctx)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao testar conexão com PostgreSQL")
	}

	logrus.Info("Conexão com PostgreSQL estabelecida com sucesso")
	return conn
}

// redisStore cria a conexão com o Redis; retorna nil quando indisponível
func redisStore(ctx context.Context, redisConfig config.Redis) cache.Store {
	store, err := cache.NewRedisStore(ctx, redisConfig)
	if err != nil {
		logrus.WithError(err).Warn("Redis indisponível, receita será computada sem cache")
		return nil
	}

	logrus.Info("Conexão com Redis estabelecida com sucesso")
	return store
}
