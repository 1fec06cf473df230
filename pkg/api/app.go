package app

import (
	"database/sql"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/cloudwatch"
	"github.com/aws/aws-sdk-go/service/costexplorer"
	"github.com/aws/aws-sdk-go/service/ec2"
	"github.com/aws/aws-sdk-go/service/eks"
	apisession "github.com/codequal/codequal-api/internal/api/session"
	"github.com/codequal/codequal-api/internal/api/transportutil"
	"github.com/codequal/codequal-api/internal/shared/apperrors"
	"github.com/codequal/codequal-api/internal/shared/cache"
	"github.com/codequal/codequal-api/internal/shared/config"
	"github.com/codequal/codequal-api/internal/shared/db/gormdb"
	"github.com/codequal/codequal-api/internal/shared/db/migrations"
	"github.com/codequal/codequal-api/internal/shared/db/redis"
	"github.com/codequal/codequal-api/internal/shared/fsutil"
	"github.com/codequal/codequal-api/internal/shared/logutil"
	"github.com/codequal/codequal-api/internal/shared/providers"
	"github.com/codequal/codequal-api/internal/shared/queue/aws/consumer"
	"github.com/codequal/codequal-api/internal/shared/queue/aws/sqs"
	"github.com/codequal/codequal-api/internal/shared/queue/consumers"
	"github.com/codequal/codequal-api/internal/shared/queue/producers"
	"github.com/codequal/codequal-api/pkg/analyzes/classifier"
	"github.com/codequal/codequal-api/pkg/analyzes/reviewer"
	"github.com/codequal/codequal-api/pkg/analyzes/smells"
	"github.com/codequal/codequal-api/pkg/api/auth"
	"github.com/codequal/codequal-api/pkg/api/auth/oauth"
	analyzescron "github.com/codequal/codequal-api/pkg/api/crons/analyzes"
	analyzessvc "github.com/codequal/codequal-api/pkg/api/services/analyzes"
	authsvc "github.com/codequal/codequal-api/pkg/api/services/auth"
	"github.com/codequal/codequal-api/pkg/api/services/awsresources"
	"github.com/codequal/codequal-api/pkg/api/services/cachestats"
	"github.com/codequal/codequal-api/pkg/api/services/events"
	"github.com/codequal/codequal-api/pkg/api/services/repohook"
	smellssvc "github.com/codequal/codequal-api/pkg/api/services/smells"
	"github.com/codequal/codequal-api/pkg/api/workers/primaryqueue"
	queueanalyzes "github.com/codequal/codequal-api/pkg/api/workers/primaryqueue/analyzes"
	redigo "github.com/garyburd/redigo/redis"
	"github.com/gorilla/mux"
	"github.com/jinzhu/gorm"
	"github.com/rs/cors"
	"github.com/urfave/negroni"
	"gopkg.in/redsync.v1"
)

type appServices struct {
	analyzes     analyzessvc.Service
	smells       smellssvc.Service
	repohook     repohook.Service
	events       events.Service
	auth         authsvc.Service
	cachestats   cachestats.Service
	awsresources awsresources.Service
}

type queues struct {
	primarySQS    *sqs.Queue
	primaryDLQSQS *sqs.Queue

	producers struct {
		primaryMultiplexer *producers.Multiplexer

		analyzesLauncher *queueanalyzes.LauncherProducer
	}
}

type App struct {
	cfg              config.Config
	log              logutil.Log
	trackedLog       logutil.Log
	errTracker       apperrors.Tracker
	gormDB           *gorm.DB
	sqlDB            *sql.DB
	migrationsRunner *migrations.Runner
	services         appServices
	awsSess          *session.Session
	queues           queues
	authSessFactory  *apisession.Factory
	authorizer       *auth.Authorizer
	providerFactory  providers.Factory
	distLockFactory  *redsync.Redsync
	redisPool        *redigo.Pool
	redisCache       *cache.Redis

	analyzesStaler *analyzescron.Staler
}

func (a App) GetDB() *gorm.DB {
	return a.gormDB
}

func (a *App) buildDeps() {
	if a.log == nil {
		slog := logutil.NewStderrLog("codequal-api")
		slog.SetLevel(logutil.LogLevelInfo)
		a.log = slog
	}

	if a.cfg == nil {
		a.cfg = config.NewEnvConfig(a.log)
	}

	if a.errTracker == nil {
		a.errTracker = apperrors.GetTracker(a.cfg, a.log, "api")
	}
	if a.trackedLog == nil {
		a.trackedLog = apperrors.WrapLogWithTracker(a.log, nil, a.errTracker)
	}

	if a.gormDB == nil || a.sqlDB == nil {
		dbConnString, err := gormdb.GetDBConnString(a.cfg)
		if err != nil {
			a.log.Fatalf("Can't get DB conn string: %s", err)
		}

		if a.gormDB == nil {
			gormDB, err := gormdb.GetDB(a.cfg, a.trackedLog, dbConnString)
			if err != nil {
				a.log.Fatalf("Can't get DB: %s", err)
			}
			a.gormDB = gormDB
		}

		if a.sqlDB == nil {
			sqlDB, err := gormdb.GetSQLDB(a.cfg, dbConnString)
			if err != nil {
				a.log.Fatalf("Can't get DB: %s", err)
			}
			a.sqlDB = sqlDB
		}
	}

	if a.providerFactory == nil {
		a.providerFactory = providers.NewBasicFactory(a.trackedLog)
	}

	if a.redisPool == nil {
		redisPool, err := redis.GetPool(a.cfg)
		if err != nil {
			a.log.Fatalf("Can't get redis pool: %s", err)
		}
		a.redisPool = redisPool
	}

	if a.redisCache == nil {
		a.redisCache = cache.NewRedis(a.cfg.GetString("REDIS_URL") + "/1")
	}
}

func (a *App) buildAwsSess() {
	awsCfg := aws.NewConfig().WithRegion("us-east-1")
	if a.cfg.GetBool("AWS_DEBUG", false) {
		awsCfg = awsCfg.WithLogLevel(aws.LogDebugWithHTTPBody)
	}
	endpoint := a.cfg.GetString("SQS_ENDPOINT")
	if endpoint != "" {
		awsCfg = awsCfg.WithEndpoint(endpoint)
	}
	awsSess, err := session.NewSession(awsCfg)
	if err != nil {
		a.log.Fatalf("Can't make aws session: %s", err)
	}
	a.awsSess = awsSess
}

func (a *App) buildQueues() {
	a.queues.primarySQS = sqs.NewQueue(a.cfg.GetString("SQS_PRIMARY_QUEUE_URL"),
		a.awsSess, a.trackedLog, primaryqueue.VisibilityTimeoutSec)
	a.queues.primaryDLQSQS = sqs.NewQueue(a.cfg.GetString("SQS_PRIMARYDEADLETTER_QUEUE_URL"),
		a.awsSess, a.trackedLog, primaryqueue.VisibilityTimeoutSec)

	a.queues.producers.primaryMultiplexer = producers.NewMultiplexer(a.queues.primarySQS)

	analyzesLauncher := &queueanalyzes.LauncherProducer{}
	if err := analyzesLauncher.Register(a.queues.producers.primaryMultiplexer); err != nil {
		a.log.Fatalf("Failed to create 'launch analysis' producer: %s", err)
	}
	a.queues.producers.analyzesLauncher = analyzesLauncher
}

func (a *App) buildServices() {
	a.services.analyzes = analyzessvc.BasicService{
		Cfg:             a.cfg,
		ProviderFactory: a.providerFactory,
		Cache:           a.redisCache,
		Authorizer:      a.authorizer,
		LaunchQueue:     a.queues.producers.analyzesLauncher,
	}
	a.services.repohook = repohook.BasicService{
		Cfg:         a.cfg,
		LaunchQueue: a.queues.producers.analyzesLauncher,
	}
	a.services.events = events.BasicService{}

	sf, err := apisession.NewFactory(a.redisPool, a.cfg, time.Hour)
	if err != nil {
		a.log.Fatalf("Can't build oauth session factory: %s", err)
	}
	a.services.auth = authsvc.BasicService{
		Cfg:          a.cfg,
		OAuthFactory: oauth.NewFactory(sf, a.trackedLog, a.cfg),
		Authorizer:   a.authorizer,
	}

	a.buildSmellsService()

	a.services.cachestats = cachestats.BasicService{
		Cache: a.redisCache,
	}
	a.services.awsresources = awsresources.BasicService{
		Cfg:   a.cfg,
		Cache: a.redisCache,
		EC2:   ec2.New(a.awsSess),
		CW:    cloudwatch.New(a.awsSess),
		EKS:   eks.New(a.awsSess),
		CE:    costexplorer.New(a.awsSess),
	}
}

func (a *App) buildSmellsService() {
	cls := classifier.New(a.cfg.GetString("ML_MODEL_PATH"))
	if err := cls.Load(); err != nil {
		a.trackedLog.Warnf("Can't load smell classifier model, it needs training: %s", err)
	}

	var rev *reviewer.Reviewer
	if apiKey := a.cfg.GetString("OPENAI_API_KEY"); apiKey != "" {
		rev = reviewer.New(apiKey, a.cfg.GetString("OPENAI_MODEL"))
	}

	a.services.smells = smellssvc.BasicService{
		Cfg:        a.cfg,
		Detector:   smells.NewDetector(),
		Classifier: cls,
		Reviewer:   rev,
	}
}

func (a *App) buildAuthSessFactory() {
	authSessFactory, err := apisession.NewFactory(a.redisPool, a.cfg, 365*24*time.Hour) // 1 year
	if err != nil {
		a.log.Fatalf("Failed to make auth session factory: %s", err)
	}
	a.authSessFactory = authSessFactory
	a.authorizer = auth.NewAuthorizer(a.gormDB, authSessFactory)
}

func (a *App) buildMigrationsRunner() {
	a.distLockFactory = redsync.New([]redsync.Pool{a.redisPool})
	dbConnString, err := gormdb.GetDBConnString(a.cfg)
	if err != nil {
		a.log.Fatalf("Can't get DB conn string: %s", err)
	}
	a.migrationsRunner = migrations.NewRunner(a.distLockFactory.NewMutex("migrations"), a.trackedLog,
		dbConnString, fsutil.GetProjectRoot())
}

func NewApp(modifiers ...Modifier) *App {
	a := App{}
	for _, m := range modifiers {
		m(&a)
	}
	a.buildDeps()
	a.buildAwsSess()
	a.buildQueues()
	a.buildAuthSessFactory()
	a.buildServices()
	a.buildMigrationsRunner()

	a.analyzesStaler = &analyzescron.Staler{
		DB:  a.gormDB,
		Log: a.trackedLog,
	}

	return &a
}

func (a App) registerHandlers(r *mux.Router) {
	regCtx := &transportutil.HandlerRegContext{
		Router:          r,
		Log:             a.log,
		ErrTracker:      a.errTracker,
		Cfg:             a.cfg,
		DB:              a.gormDB,
		Authorizer:      a.authorizer,
		AuthSessFactory: a.authSessFactory,
	}
	analyzessvc.RegisterHandlers(a.services.analyzes, regCtx)
	smellssvc.RegisterHandlers(a.services.smells, regCtx)
	repohook.RegisterHandlers(a.services.repohook, regCtx)
	events.RegisterHandlers(a.services.events, regCtx)
	authsvc.RegisterHandlers(a.services.auth, regCtx)
	cachestats.RegisterHandlers(a.services.cachestats, regCtx)
	awsresources.RegisterHandlers(a.services.awsresources, regCtx)
}

func (a App) runMigrations() {
	if err := a.migrationsRunner.Run(); err != nil {
		a.log.Fatalf("Can't run migrations: %s", err)
	}
}

func (a App) buildMultiplexedPrimaryQueueConsumer() *consumers.Multiplexer {
	multiplexer := consumers.NewMultiplexer(a.trackedLog)

	analyzesLauncher := queueanalyzes.NewLauncherConsumer(a.trackedLog, a.sqlDB)
	if err := analyzesLauncher.Register(multiplexer, a.distLockFactory); err != nil {
		a.log.Fatalf("Failed to register analyzes launcher consumer: %s", err)
	}

	return multiplexer
}

func (a App) runConsumers() {
	primaryQueueConsumerMultiplexer := a.buildMultiplexedPrimaryQueueConsumer()
	primaryQueueConsumer := consumer.NewSQS(a.trackedLog, a.cfg, a.queues.primarySQS,
		primaryQueueConsumerMultiplexer, "primary", primaryqueue.VisibilityTimeoutSec)

	go primaryQueueConsumer.Run()
}

func (a App) RunDeadLetterConsumers() {
	primaryDLQConsumerMultiplexer := a.buildMultiplexedPrimaryQueueConsumer()
	primaryDLQConsumer := consumer.NewSQS(a.trackedLog, a.cfg, a.queues.primaryDLQSQS,
		primaryDLQConsumerMultiplexer, "primaryDeadLetter", primaryqueue.VisibilityTimeoutSec)

	primaryDLQConsumer.Run()
}

func (a App) RunEnvironment() {
	a.runMigrations()
	a.runConsumers()

	go a.analyzesStaler.Run()
}

func (a App) RunForever() {
	a.RunEnvironment()

	http.Handle("/", a.GetHTTPHandler())

	addr := fmt.Sprintf(":%d", a.cfg.GetInt("port", 3000))
	a.log.Infof("Listening on %s...", addr)
	if err := http.ListenAndServe(addr, nil); err != nil {
		a.log.Errorf("Can't listen HTTP on %s: %s", addr, err)
		os.Exit(1)
	}
}

func (a App) GetHTTPHandler() http.Handler {
	r := mux.NewRouter()
	a.registerHandlers(r)

	allowedOrigins := []string{"http://localhost:3000"}
	if webRoot := a.cfg.GetString("WEB_ROOT"); webRoot != "" {
		allowedOrigins = append(allowedOrigins, webRoot)
	}

	c := cors.New(cors.Options{
		AllowedOrigins:   allowedOrigins,
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE"},
	})

	n := negroni.Classic()
	n.Use(c)
	n.UseHandler(r)
	return n
}
