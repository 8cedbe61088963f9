package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/bytedance/sonic"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/etag"
	"github.com/gofiber/fiber/v2/utils"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"jemaat_backend/internals/configs"
	database "jemaat_backend/internals/databases"
	uploadCtrl "jemaat_backend/internals/features/uploads/controller"
	"jemaat_backend/internals/helpers/auth"
	"jemaat_backend/internals/helpers/dbtime"
	"jemaat_backend/internals/helpers/storage"
	middlewares "jemaat_backend/internals/middlewares"
	reqLogger "jemaat_backend/internals/middlewares/logger"
	routes "jemaat_backend/internals/route"
	"jemaat_backend/internals/seeds"
)

func main() {
	root := &cobra.Command{
		Use:          "jemaat",
		Short:        "Backend admin data jemaat",
		SilenceUsage: true,
		RunE:         func(cmd *cobra.Command, args []string) error { return serve() },
	}
	root.AddCommand(
		&cobra.Command{
			Use:   "serve",
			Short: "Jalankan HTTP server",
			RunE:  func(cmd *cobra.Command, args []string) error { return serve() },
		},
		&cobra.Command{
			Use:   "migrate",
			Short: "Buat/ubah tabel (AutoMigrate)",
			RunE:  func(cmd *cobra.Command, args []string) error { return migrate() },
		},
		seedCommand(),
	)

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

// bootstrap loads config, installs the logger and opens the pool.
func bootstrap() (configs.Config, *zap.Logger, *gorm.DB, error) {
	cfg, err := configs.Load()
	if err != nil {
		return cfg, nil, nil, err
	}
	log, err := configs.NewLogger(cfg.Env)
	if err != nil {
		return cfg, nil, nil, err
	}
	db, err := database.ConnectDB(cfg, log)
	if err != nil {
		return cfg, log, nil, err
	}
	database.TunePool(db, log)
	if err := dbtime.SetTimezone(cfg.Timezone); err != nil {
		log.Warn("unknown APP_TIMEZONE, keeping default", zap.String("tz", cfg.Timezone), zap.Error(err))
	}
	return cfg, log, db, nil
}

func migrate() error {
	_, log, db, err := bootstrap()
	if err != nil {
		return err
	}
	defer database.Close(db)
	if err := database.Migrate(db); err != nil {
		return err
	}
	log.Info("migration done")
	return nil
}

func seedCommand() *cobra.Command {
	var opt seeds.Options
	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Isi data master, wilayah dan akun admin",
		RunE: func(cmd *cobra.Command, args []string) error {
			_, log, db, err := bootstrap()
			if err != nil {
				return err
			}
			defer database.Close(db)
			if err := database.Migrate(db); err != nil {
				return err
			}
			if opt.AdminUsername == "" {
				opt.AdminUsername = configs.GetEnv("SEED_ADMIN_USERNAME", "admin")
			}
			if opt.AdminPassword == "" {
				opt.AdminPassword = configs.GetEnv("SEED_ADMIN_PASSWORD")
			}
			if err := seeds.RunAllSeeds(cmd.Context(), db, opt); err != nil {
				return err
			}
			log.Info("seed done")
			return nil
		},
	}
	cmd.Flags().StringVar(&opt.AdminUsername, "admin", "", "username admin (default SEED_ADMIN_USERNAME atau admin)")
	return cmd
}

func serve() error {
	cfg, log, db, err := bootstrap()
	if err != nil {
		return err
	}
	defer database.Close(db)

	if cfg.DB.AutoMigrate {
		if err := database.Migrate(db); err != nil {
			return err
		}
	}
	database.WarmUpQueries(db, log)

	// object storage opsional: tanpa kredensial, /uploads menjawab 503
	var uploader storage.Uploader
	if cfg.OSS.Enabled() {
		svc, err := storage.NewOSSService(cfg.OSS)
		if err != nil {
			return err
		}
		uploader = svc
	} else {
		log.Warn("OSS not configured, uploads disabled")
	}

	w := middlewares.NewWrapper(auth.NewJWTSessionReader(cfg.JWTSecret), cfg.IsDevelopment(), log)

	app := fiber.New(fiber.Config{
		// 🚀 JSON super cepat
		JSONEncoder:           sonic.Marshal,
		JSONDecoder:           sonic.Unmarshal,
		DisableStartupMessage: true,
		ErrorHandler:          w.Handle,
		BodyLimit:             uploadCtrl.MaxUploadBytes + 1<<20,
		ProxyHeader:           fiber.HeaderXForwardedFor,
	})

	// ⚙️ middleware dasar + performa
	app.Use(middlewares.RecoveryMiddleware())
	app.Use(middlewares.CorsMiddleware(cfg.CORSOrigins))
	app.Use(middlewares.GlobalRateLimiter())
	app.Use(compress.New(compress.Config{Level: compress.LevelDefault}))
	app.Use(etag.New())
	app.Use(reqLogger.LoggerMiddleware(dbtime.Location().String()))

	// Request-ID + timeout guard (selaras dengan statement_timeout di DB)
	app.Use(func(c *fiber.Ctx) error {
		id := c.Get(fiber.HeaderXRequestID)
		if id == "" {
			id = utils.UUID()
		}
		c.Set(fiber.HeaderXRequestID, id)
		ctx, cancel := context.WithTimeout(c.UserContext(), 5*time.Second)
		defer cancel()
		c.SetUserContext(ctx)
		return c.Next()
	})

	routes.SetupRoutes(app, routes.Deps{DB: db, Config: cfg, Wrapper: w, Storage: uploader})

	// 🔒 Keep-Alive & timeout koneksi server
	app.Server().ReadTimeout = 15 * time.Second
	app.Server().WriteTimeout = 30 * time.Second
	app.Server().IdleTimeout = 90 * time.Second

	errCh := make(chan error, 1)
	go func() {
		log.Info("listening", zap.String("port", cfg.Port))
		errCh <- app.Listen("0.0.0.0:" + cfg.Port)
	}()

	// graceful shutdown + tutup pool DB
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	select {
	case err := <-errCh:
		return err
	case <-quit:
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return app.ShutdownWithContext(ctx)
}
