package main

import (
	"database/sql"
	"fmt"
	"os"
	"time"

	_ "github.com/go-sql-driver/mysql"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"

	"qa-service/internal/api"
	"qa-service/internal/auth"
	"qa-service/internal/config"
	"qa-service/internal/repository"
	"qa-service/internal/service"
	"qa-service/internal/web"
	"qa-service/migrations"
)

var logger = zerolog.New(os.Stdout).With().Timestamp().Logger()

func connectDB(dsn string) (*sql.DB, error) {
	var db *sql.DB
	var err error
	for i := 0; i < 10; i++ {
		db, err = sql.Open("mysql", dsn)
		if err == nil {
			err = db.Ping()
			if err == nil {
				logger.Info().Msg("Connected to DB")
				return db, nil
			}
		}
		logger.Warn().Err(err).Int("attempt", i+1).Msg("Failed to connect to DB, retrying")
		time.Sleep(3 * time.Second)
	}
	return nil, fmt.Errorf("failed to connect to DB after retries: %v", err)
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		logger.Fatal().Err(err).Msg("Failed to load configuration")
	}

	db, err := connectDB(cfg.DB.DSN())
	if err != nil {
		logger.Fatal().Err(err).Msg("Could not reach the database")
	}

	if err := migrations.AutoMigrate(3, db); err != nil {
		logger.Fatal().Err(err).Msg("Failed to migrate schema")
	}

	hasher := auth.NewBcryptHasher()
	tokens := auth.NewTokenService(cfg.JWTSecret, cfg.TokenTTL)

	userRepo := repository.NewUserRepository(db)
	questionRepo := repository.NewQuestionRepository(db)
	answerRepo := repository.NewAnswerRepository(db)
	likeRepo := repository.NewLikeRepository(db)

	userService := service.NewUserService(userRepo, hasher, tokens)
	questionService := service.NewQuestionService(questionRepo)
	answerService := service.NewAnswerService(answerRepo, questionRepo)
	likeService := service.NewLikeService(likeRepo, questionRepo)

	userHandler := api.NewUserHandler(*userService, *questionService, *answerService)
	questionHandler := api.NewQuestionHandler(*questionService)
	answerHandler := api.NewAnswerHandler(*answerService)
	likeHandler := api.NewLikeHandler(*likeService)

	pageHandler := web.NewPageHandler(*userService, *questionService, *answerService, *likeService,
		int(cfg.TokenTTL.Seconds()), cfg.SecureCookies)

	resolver := api.NewSessionResolver(tokens, userService)
	bearer := resolver.Bearer()
	cookie := resolver.Cookie("/login")
	cookieOptional := resolver.CookieOptional()

	renderer, err := web.NewRenderer()
	if err != nil {
		logger.Fatal().Err(err).Msg("Failed to parse templates")
	}

	e := echo.New()
	e.Renderer = renderer

	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(api.RequestTimeout(cfg.RequestTimeout))

	// JSON API, bearer-header auth
	e.POST("/users/signup", userHandler.Signup)
	e.POST("/users/login", userHandler.Login)
	e.GET("/users/me", userHandler.Me, bearer)
	e.GET("/users/me/questions", userHandler.MyQuestions, bearer)
	e.GET("/users/me/answers", userHandler.MyAnswers, bearer)

	e.POST("/questions/", questionHandler.Create, bearer)
	e.GET("/questions/", questionHandler.List)
	e.GET("/questions/:id", questionHandler.Get)
	e.PUT("/questions/:id", questionHandler.Update, bearer)
	e.DELETE("/questions/:id", questionHandler.Delete, bearer)

	e.POST("/questions/:id/answers", answerHandler.Create, bearer)
	e.GET("/questions/:id/answers", answerHandler.List)
	e.PUT("/questions/:id/answers/:answerID", answerHandler.Update, bearer)
	e.DELETE("/questions/:id/answers/:answerID", answerHandler.Delete, bearer)

	e.POST("/questions/:id/like", likeHandler.Like, bearer)
	e.POST("/questions/:id/unlike", likeHandler.Unlike, bearer)

	e.GET("/health", func(c echo.Context) error {
		return c.JSON(200, map[string]interface{}{
			"status":  "ok",
			"service": "qa-service",
			"time":    time.Now().Format(time.RFC3339),
		})
	})

	// HTML pages, cookie auth
	e.GET("/", pageHandler.Home, cookieOptional)
	e.GET("/q/:id", pageHandler.QuestionPage, cookieOptional)
	e.GET("/signup", pageHandler.SignupForm)
	e.POST("/signup", pageHandler.Signup)
	e.GET("/login", pageHandler.LoginForm)
	e.POST("/login", pageHandler.Login)
	e.POST("/logout", pageHandler.Logout)

	e.GET("/ask", pageHandler.AskForm, cookie)
	e.POST("/q", pageHandler.CreateQuestion, cookie)
	e.POST("/q/:id/delete", pageHandler.DeleteQuestion, cookie)
	e.POST("/q/:id/answers", pageHandler.CreateAnswer, cookie)
	e.POST("/q/:id/like", pageHandler.Like, cookie)
	e.POST("/q/:id/unlike", pageHandler.Unlike, cookie)

	e.Server.ReadTimeout = 10 * time.Second
	e.Server.WriteTimeout = 30 * time.Second

	e.Logger.Fatal(e.Start(cfg.HTTPAddr))
}
