package router

import (
	"time"

	"github.com/gin-gonic/gin"

	app "github.com/orkidhq/orkid-cms/internal/application"
	"github.com/orkidhq/orkid-cms/internal/container"
	pginfra "github.com/orkidhq/orkid-cms/internal/infrastructure/postgres"
	handlers "github.com/orkidhq/orkid-cms/internal/interface/http"
	"github.com/orkidhq/orkid-cms/internal/interface/middleware"
	"github.com/orkidhq/orkid-cms/internal/router/modules"
)

// InitModules wires repositories, services and handlers and registers every
// module with the registry. Called once during startup.
func InitModules(r *Registry) {
	cfg := container.GetConfig()
	logger := container.GetLogger()
	pool := container.GetPGPool()

	users := pginfra.NewUserRepository(pool)
	categories := pginfra.NewCategoryRepository(pool)
	tasks := pginfra.NewTaskRepository(pool)
	videos := pginfra.NewVideoRepository(pool)
	submissions := pginfra.NewSubmissionRepository(pool)

	strict := !cfg.CompatSkipChecks

	authSvc := app.NewAuthService(users, container.GetJWT(), logger)
	categorySvc := app.NewCategoryService(categories, logger)
	taskSvc := app.NewTaskService(tasks, logger)
	videoSvc := app.NewVideoService(videos, categories, tasks, strict, logger, container.GetES(), cfg.ESVideosIndex)
	submissionSvc := app.NewSubmissionService(submissions, tasks, users, videos, strict, logger, container.GetRabbitPub(), cfg.NotifyEmail)
	activitySvc := app.NewActivityService(categories, videos, submissions, container.GetRedis(), logger)
	mediaSvc := app.NewMediaService(container.GetGCS(), cfg.GCSBucket, cfg.MediaFolder, cfg.UploadTimeout, logger)

	gate := middleware.Auth(container.GetJWT(), users)

	// Per-IP ceiling plus a tighter per-user budget on authenticated writes.
	write := []gin.HandlerFunc{
		middleware.RateLimit(container.GetRedis(), 300, time.Minute, middleware.KeyByIP(), middleware.AllowPrivateIP()),
		middleware.RateLimit(container.GetRedis(), 120, time.Minute, middleware.KeyByUserID(), nil),
	}

	r.Add(modules.NewAuthModule(handlers.NewAuthHandler(authSvc, logger), gate))
	r.Add(modules.NewCategoryModule(handlers.NewCategoryHandler(categorySvc, logger), gate, write))
	r.Add(modules.NewTaskModule(handlers.NewTaskHandler(taskSvc, logger), gate, write))
	r.Add(modules.NewVideoModule(handlers.NewVideoHandler(videoSvc, logger), gate, write))
	r.Add(modules.NewSubmissionModule(handlers.NewSubmissionHandler(submissionSvc, logger), gate, write))
	r.Add(modules.NewMediaModule(handlers.NewUploadHandler(mediaSvc, logger), gate, write))
	r.Add(modules.NewActivityModule(handlers.NewActivityHandler(activitySvc, logger)))
	r.Add(modules.NewDebugModule())
}
