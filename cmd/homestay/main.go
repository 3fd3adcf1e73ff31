package main

import (
	"context"
	"log/slog"
	"os"

	"homestay/config"
	"homestay/internal/delivery"
	"homestay/internal/delivery/http"
	"homestay/internal/delivery/http/middleware"
	"homestay/internal/delivery/http/router/handler"
	"homestay/internal/domain/repository"
	"homestay/internal/domain/service"
	"homestay/internal/infra/auth"
	logs "homestay/internal/infra/log"
	"homestay/internal/infra/persistence/memory"
	"homestay/internal/usecase/impl"

	"go.uber.org/fx"
	"golang.org/x/crypto/bcrypt"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectService(),
		injectUsecase(),
		injectDelivery(),
		injectMiddleware(),
		injectHandler(),
		fx.Invoke(
			seedData,
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			memory.NewUserRepository,
			memory.NewCountryRepository,
			memory.NewCityRepository,
			memory.NewAmenityRepository,
			memory.NewReviewRepository,
			memory.NewPlaceRepository,
			memory.NewPlaceAmenityRepository,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			newPasswordHasher,
		),
	)
}

// newPasswordHasher creates the bcrypt hasher with dependency injection
func newPasswordHasher(cfg *config.Config) service.PasswordHasher {
	if cfg.Auth == nil {
		// Use default cost if not configured
		return auth.NewBcryptHasher(bcrypt.DefaultCost)
	}

	return auth.NewBcryptHasher(cfg.Auth.BcryptCost)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewUserService,
			impl.NewCountryService,
			impl.NewCityService,
			impl.NewAmenityService,
			impl.NewReviewService,
			impl.NewPlaceService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewErrorMiddleware,
			middleware.NewRequestIDMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewUserHandler,
			handler.NewCountryHandler,
			handler.NewCityHandler,
			handler.NewAmenityHandler,
			handler.NewReviewHandler,
			handler.NewPlaceHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				http.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

// seedData preloads reference data when enabled in the configuration.
func seedData(ctx context.Context, cfg *config.Config, logger *slog.Logger, countries repository.CountryRepository) error {
	if cfg.Seed == nil || !cfg.Seed.Countries {
		return nil
	}

	if err := memory.SeedCountries(ctx, countries); err != nil {
		return err
	}

	logger.Info("Seeded starter countries")

	return nil
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))
				os.Exit(1)
			}
		}()
	}
}
