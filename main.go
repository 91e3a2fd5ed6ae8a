package main

import (
	"context"
	"encoding/json"
	"net/http"
	"os"
	"syscall"
	"time"

	"github.com/go-kit/kit/endpoint"
	httptransport "github.com/go-kit/kit/transport/http"
	"github.com/gorilla/mux"
	"github.com/oklog/run"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	deliveryHTTP "github.com/superj80820/user-service/delivery/http"
	"github.com/superj80820/user-service/kit/code"
	httpKit "github.com/superj80820/user-service/kit/http"
	httpMiddlewareKit "github.com/superj80820/user-service/kit/http/middleware"
	loggerKit "github.com/superj80820/user-service/kit/logger"
	redisKit "github.com/superj80820/user-service/kit/redis"
	traceKit "github.com/superj80820/user-service/kit/trace"
	utilKit "github.com/superj80820/user-service/kit/util"
	accountMongoRepo "github.com/superj80820/user-service/repository/account/mongo"
	authJWTRepo "github.com/superj80820/user-service/repository/auth/jwt"
	accountUseCaseLib "github.com/superj80820/user-service/usecase/account"
	authUseCaseLib "github.com/superj80820/user-service/usecase/auth"
	"go.mongodb.org/mongo-driver/mongo"
	mongoOptions "go.mongodb.org/mongo-driver/mongo/options"
	"go.opentelemetry.io/otel/trace"
)

const (
	SYSTEM_NAME  = "system"
	SERVICE_NAME = "user"
)

func main() {
	var (
		env          = utilKit.GetEnvString("ENV", "development")
		addr         = utilKit.GetEnvString("ADDR", ":3000")
		mongoURI     = utilKit.GetEnvString("MONGO_URI", "mongodb://localhost:27017")
		mongoDBName  = utilKit.GetEnvString("MONGO_DATABASE", "user")
		redisURI     = utilKit.GetEnvString("REDIS_URI", "localhost:6379")
		enableTracer = utilKit.GetEnvBool("ENABLE_TRACER", false)
		enableMetric = utilKit.GetEnvBool("ENABLE_METRIC", false)

		// no fallback on purpose, a deployment without a signing secret must
		// refuse to start instead of signing with a well-known constant
		tokenSecret = utilKit.GetRequireEnvString("JWT_SECRET")
	)

	logLevel := loggerKit.InfoLevel
	if env == "development" {
		logLevel = loggerKit.DebugLevel
	}
	logger, err := loggerKit.NewLogger("./go.log", logLevel)
	if err != nil {
		panic(err)
	}

	connectCtx, connectCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer connectCancel()
	mongoDB, err := mongo.Connect(connectCtx, mongoOptions.Client().ApplyURI(mongoURI))
	if err != nil {
		panic(err)
	}
	defer func() {
		if err := mongoDB.Disconnect(context.Background()); err != nil {
			logger.Error("disconnect mongo failed: " + err.Error())
		}
	}()

	singletonCache, err := redisKit.CreateCache(redisURI, "", 0)
	if err != nil {
		panic(err)
	}

	rateLimit := utilKit.CreateCacheRateLimit(singletonCache, 30, 60)

	var tracer trace.Tracer
	if enableTracer {
		tracer, err = traceKit.CreateTracer(context.Background(), SERVICE_NAME)
		if err != nil {
			panic(err)
		}
	} else {
		tracer = traceKit.CreateNoOpTracer()
	}

	accountRepo, err := accountMongoRepo.CreateAccountRepo(mongoDB, mongoDBName)
	if err != nil {
		panic(err)
	}
	authTokenRepo, err := authJWTRepo.CreateAuthTokenRepo(tokenSecret)
	if err != nil {
		panic(err)
	}
	accountUseCase, err := accountUseCaseLib.CreateAccountUseCase(accountRepo, logger)
	if err != nil {
		panic(err)
	}
	authUseCase, err := authUseCaseLib.CreateAuthUseCase(authTokenRepo, accountRepo, logger)
	if err != nil {
		panic(err)
	}

	customMiddleware := endpoint.Chain(
		httpMiddlewareKit.CreateLoggingMiddleware(logger),
		httpMiddlewareKit.CreateRateLimitMiddleware(rateLimit.Pass),
		httpMiddlewareKit.CreateMetrics(SYSTEM_NAME, SERVICE_NAME),
	)
	authMiddleware := httpMiddlewareKit.CreateAuthMiddleware(func(ctx context.Context, token string) (string, error) {
		claims, err := authUseCase.Verify(token)
		if err != nil {
			return "", err
		}
		return claims.AccountID, nil
	})

	options := []httptransport.ServerOption{
		httptransport.ServerBefore(httpKit.CustomBeforeCtx(tracer)),
		httptransport.ServerAfter(httpKit.CustomAfterCtx),
		httptransport.ServerErrorEncoder(httpKit.EncodeHTTPErrorResponse()),
	}

	r := mux.NewRouter()
	r.Methods("POST").Path("/api/user/signup").Handler(
		httptransport.NewServer(
			customMiddleware(deliveryHTTP.MakeAccountRegisterEndpoint(accountUseCase)),
			deliveryHTTP.DecodeAccountRegisterRequest,
			deliveryHTTP.EncodeAccountRegisterResponse,
			options...,
		))
	r.Methods("POST").Path("/api/user/signin").Handler(
		httptransport.NewServer(
			customMiddleware(deliveryHTTP.MakeAuthLoginEndpoint(authUseCase)),
			deliveryHTTP.DecodeAuthLoginRequest,
			deliveryHTTP.MakeAuthLoginEncoder(env),
			options...,
		))
	profileServer := httptransport.NewServer(
		customMiddleware(authMiddleware(deliveryHTTP.MakeAccountProfileEndpoint(accountUseCase))),
		deliveryHTTP.DecodeAccountProfileRequest,
		deliveryHTTP.EncodeAccountProfileResponse,
		options...,
	)
	r.Methods("GET").Path("/api/user/profile").Handler(profileServer)
	r.Methods("GET").Path("/api/user/me").Handler(profileServer)
	r.Methods("POST").Path("/api/user/logout").Handler(
		httptransport.NewServer(
			customMiddleware(deliveryHTTP.MakeAuthLogoutEndpoint()),
			deliveryHTTP.DecodeAuthLogoutRequest,
			deliveryHTTP.MakeAuthLogoutEncoder(env),
			options...,
		))
	r.Methods("POST").Path("/api/user/forgot-password").Handler(
		httptransport.NewServer(
			customMiddleware(deliveryHTTP.MakeAuthForgotPasswordEndpoint(authUseCase)),
			deliveryHTTP.DecodeAuthForgotPasswordRequest,
			deliveryHTTP.EncodeAuthForgotPasswordResponse,
			options...,
		))
	if enableMetric {
		r.Handle("/metrics", promhttp.Handler())
	}
	r.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		w.WriteHeader(http.StatusNotFound)
		json.NewEncoder(w).Encode(code.CreateErrorCode(http.StatusNotFound).AddMessage("Not Found - " + r.URL.Path))
	})

	httpSrv := &http.Server{
		Addr:    addr,
		Handler: r,
	}

	var g run.Group
	g.Add(func() error {
		return httpSrv.ListenAndServe()
	}, func(error) {
		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer shutdownCancel()
		if err := httpSrv.Shutdown(shutdownCtx); err != nil {
			logger.Error("shutdown http server failed: " + err.Error())
		}
	})
	g.Add(run.SignalHandler(context.Background(), os.Interrupt, syscall.SIGTERM))

	logger.Info("server listening on " + addr)
	if err := g.Run(); err != nil {
		logger.Error("server stopped: " + err.Error())
	}
}
