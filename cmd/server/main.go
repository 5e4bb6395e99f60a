package main // Entry point package

import (
	"log"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/course-catalog/internal/auth"
	"github.com/iliyamo/course-catalog/internal/config"
	"github.com/iliyamo/course-catalog/internal/database"
	"github.com/iliyamo/course-catalog/internal/handler"
	"github.com/iliyamo/course-catalog/internal/httperr"
	"github.com/iliyamo/course-catalog/internal/queue"
	"github.com/iliyamo/course-catalog/internal/repository"
	"github.com/iliyamo/course-catalog/internal/router"
	"github.com/iliyamo/course-catalog/internal/service/queuepublisher"
)

func main() {
	cfg := config.Load()

	db, err := database.Open(cfg.DBUser, cfg.DBPass, cfg.DBHost, cfg.DBPort, cfg.DBName)
	if err != nil {
		log.Fatalf("database: %v", err)
	}
	defer db.Close()

	// Redis is optional; a nil client disables the response cache.
	rdb := config.NewRedisClient()
	if rdb == nil {
		log.Printf("redis unavailable, response cache disabled")
	}
	cacheCfg := config.LoadCacheConfig()

	users := repository.NewUserRepo(db)
	courses := repository.NewCourseRepo(db)
	authn := auth.New(users)

	userHandler := handler.NewUserHandler(users, authn, cfg.BcryptCost)
	courseHandler := handler.NewCourseHandler(courses, authn, rdb, cacheCfg)
	if cfg.QueueEnabled {
		courseHandler.Publish = queuepublisher.PublishCourseEvent
		go func() {
			if err := queue.StartCourseConsumer(); err != nil {
				log.Printf("course-consumer stopped: %v", err)
			}
		}()
	}

	e := echo.New()
	e.HideBanner = true
	e.HTTPErrorHandler = httperr.ErrorHandler(cfg.LogErrors)

	router.RegisterRoutes(e)
	router.RegisterUsers(e, userHandler)
	router.RegisterCourses(e, courseHandler, cacheCfg, rdb)

	addr := ":" + cfg.Port
	log.Printf("listening on %s (env=%s)", addr, cfg.Env)

	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}
