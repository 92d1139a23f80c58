// /cmd/web/main.go
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/ericoliveiras/painel-admin/internal/config"
	"github.com/ericoliveiras/painel-admin/internal/database"
	"github.com/ericoliveiras/painel-admin/internal/logger"
	"github.com/ericoliveiras/painel-admin/internal/repository"
	"github.com/ericoliveiras/painel-admin/internal/routes"
	"github.com/ericoliveiras/painel-admin/internal/service"
)

var configFile string

// rootCmd sem subcomando sobe o servidor, como "web serve".
var rootCmd = &cobra.Command{
	Use:          "web",
	Short:        "Painel administrativo de clientes, produtos, fornecedores e promoções",
	RunE:         runServe,
	SilenceUsage: true,
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Sobe o servidor HTTP do painel",
	RunE:  runServe,
}

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Cria ou atualiza as tabelas",
	RunE: func(cmd *cobra.Command, args []string) error {
		_, db, log, err := bootstrap()
		if err != nil {
			return err
		}
		defer log.Sync()
		return database.Migrate(db, log)
	},
}

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Cadastra as marcas padrão",
	RunE: func(cmd *cobra.Command, args []string) error {
		_, db, log, err := bootstrap()
		if err != nil {
			return err
		}
		defer log.Sync()
		if err := database.Migrate(db, log); err != nil {
			return err
		}
		n, err := database.SeedMarcas(cmd.Context(), db, log, database.MarcasPadrao)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%d marcas cadastradas\n", n)
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "config.yaml", "arquivo YAML de configuração (opcional)")
	rootCmd.AddCommand(serveCmd, migrateCmd, seedCmd)
}

func main() {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		fmt.Fprintf(os.Stderr, "Erro ao carregar o arquivo .env: %v\n", err)
		os.Exit(1)
	}
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// bootstrap carrega a configuração, o logger e a conexão com o banco.
func bootstrap() (*config.AppConfig, *gorm.DB, *zap.Logger, error) {
	cfg, err := config.Load(configFile)
	if err != nil {
		return nil, nil, nil, err
	}
	log, err := logger.New(cfg.Log)
	if err != nil {
		return nil, nil, nil, err
	}
	db, err := database.Open(cfg.Database, log)
	if err != nil {
		return nil, nil, nil, err
	}
	return cfg, db, log, nil
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, db, log, err := bootstrap()
	if err != nil {
		return err
	}
	defer log.Sync()

	if err := database.Migrate(db, log); err != nil {
		return err
	}

	gin.SetMode(cfg.GinMode)
	router, err := routes.New(cfg, service.NewServices(db, listCache(cmd.Context(), cfg.Redis, log), log), log)
	if err != nil {
		return err
	}

	log.Info("servidor rodando", zap.String("port", cfg.Port))
	return router.Run(":" + cfg.Port)
}

// listCache conecta no Redis. Sem REDIS_ADDR, ou com o Redis fora do ar, o
// painel roda sem cache.
func listCache(ctx context.Context, cfg config.RedisConfig, log *zap.Logger) repository.ListCache {
	if cfg.Addr == "" {
		return nil
	}
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		log.Warn("redis indisponível, listagens sem cache", zap.String("addr", cfg.Addr), zap.Error(err))
		client.Close()
		return nil
	}
	log.Info("cache de listagens no redis", zap.String("addr", cfg.Addr))
	return repository.NewRedisCache(client, cfg.CacheTTL)
}
