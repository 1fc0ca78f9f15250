package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"

	"jobboard/application"
	"jobboard/auth"
	"jobboard/category"
	"jobboard/config"
	"jobboard/db"
	"jobboard/favorite"
	"jobboard/httpapi"
	"jobboard/job"
	"jobboard/user"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("bootstrap config: %v", err)
	}

	client, err := db.Connect(ctx, cfg.MongoURI)
	if err != nil {
		log.Fatalf("bootstrap database: %v", err)
	}
	log.Printf("connected to MongoDB")

	database := client.Database(cfg.DBName)

	userRepo := user.NewRepository(database)
	if err := userRepo.EnsureIndexes(ctx); err != nil {
		log.Fatalf("bootstrap indexes: %v", err)
	}
	users := user.NewService(userRepo)
	jobs := job.NewRepository(database)
	favorites := favorite.NewService(favorite.NewRepository(database))
	applications := application.NewService(application.NewRepository(database), jobs)
	categories := category.NewRepository(database)
	tokens := auth.NewService(cfg.JWTSecret)

	router := httpapi.NewRouter(httpapi.Deps{
		Tokens:       tokens,
		Users:        users,
		Jobs:         jobs,
		Favorites:    favorites,
		Applications: applications,
		Categories:   categories,
		CookieSecure: cfg.CookieSecure,
		CORSOrigins:  cfg.CORSOrigins,
	})

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Printf("app is running on port: %s", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		log.Fatalf("server: %v", err)
	}

	_ = client.Disconnect(context.Background())
}
