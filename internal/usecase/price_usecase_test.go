package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DRSN-tech/pricing-backend/internal/cfg"
	"github.com/DRSN-tech/pricing-backend/internal/domain"
	"github.com/DRSN-tech/pricing-backend/internal/pricing"
	"github.com/DRSN-tech/pricing-backend/internal/usecase"
	"github.com/DRSN-tech/pricing-backend/internal/usecase/mocks"
	"github.com/DRSN-tech/pricing-backend/pkg/e"
	"github.com/DRSN-tech/pricing-backend/pkg/logger"
	"go.uber.org/mock/gomock"
)

func testEngine() *pricing.Engine {
	return pricing.NewEngine(&cfg.PricingCfg{
		Currency:            "PLN",
		CPUCoreWeight:       0.04,
		CPUThreadWeight:     0.015,
		GPUVRAMWeight:       0.05,
		GPUGenerationWeight: 0.005,
		RAMCapacityWeight:   0.02,
		RAMSpeedWeight:      0.0001,
	})
}

func rtx4070() *domain.Component {
	return domain.NewComponent(domain.CategoryGPU, "RTX 4070", map[string]any{
		"vram_gb":    float64(12),
		"generation": float64(40),
	}, 200000)
}

func TestPriceUseCase_GetComponentPrice(t *testing.T) {
	log := logger.NewSlogLogger()

	t.Run("invalid category", func(t *testing.T) {
		uc := usecase.NewPriceUC(nil, nil, nil, nil, testEngine(), log, "PLN")

		_, err := uc.GetComponentPrice(context.Background(), usecase.NewGetPriceReq("Motherboard", "X"))
		if !errors.Is(err, e.ErrInvalidCategory) {
			t.Fatalf("expected ErrInvalidCategory, got %v", err)
		}
	})

	t.Run("empty name", func(t *testing.T) {
		uc := usecase.NewPriceUC(nil, nil, nil, nil, testEngine(), log, "PLN")

		_, err := uc.GetComponentPrice(context.Background(), usecase.NewGetPriceReq("GPU", "   "))
		if !errors.Is(err, e.ErrComponentNameRequired) {
			t.Fatalf("expected ErrComponentNameRequired, got %v", err)
		}
	})

	t.Run("cache hit skips repository", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		componentRepo := mocks.NewMockComponentRepository(ctrl)
		cacheRepo := mocks.NewMockCacheRepository(ctrl)
		uc := usecase.NewPriceUC(componentRepo, cacheRepo, nil, nil, testEngine(), log, "PLN")

		cacheRepo.EXPECT().GetComponent(gomock.Any(), domain.CategoryGPU, "RTX 4070").Return(rtx4070(), nil)

		res, err := uc.GetComponentPrice(context.Background(), usecase.NewGetPriceReq("GPU", "RTX 4070"))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Price != 360000 || res.Currency != "PLN" || res.Name != "RTX 4070" || res.Category != "GPU" {
			t.Fatalf("unexpected result: %+v", res)
		}
	})

	t.Run("cache miss resolves from db and backfills cache", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		componentRepo := mocks.NewMockComponentRepository(ctrl)
		cacheRepo := mocks.NewMockCacheRepository(ctrl)
		uc := usecase.NewPriceUC(componentRepo, cacheRepo, nil, nil, testEngine(), log, "PLN")

		cached := make(chan struct{})
		cacheRepo.EXPECT().GetComponent(gomock.Any(), domain.CategoryGPU, "RTX 4070").Return(nil, nil)
		componentRepo.EXPECT().Resolve(gomock.Any(), domain.CategoryGPU, "RTX 4070").Return(rtx4070(), nil)
		cacheRepo.EXPECT().SetComponent(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, _ *domain.Component) error {
				close(cached)
				return nil
			},
		)

		res, err := uc.GetComponentPrice(context.Background(), usecase.NewGetPriceReq("gpu", " RTX 4070 "))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Price != 360000 {
			t.Fatalf("price = %d, want 360000", res.Price)
		}

		select {
		case <-cached:
		case <-time.After(time.Second):
			t.Fatal("component was not backfilled into cache")
		}
	})

	t.Run("cache failure degrades to db read", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		componentRepo := mocks.NewMockComponentRepository(ctrl)
		cacheRepo := mocks.NewMockCacheRepository(ctrl)
		uc := usecase.NewPriceUC(componentRepo, cacheRepo, nil, nil, testEngine(), log, "PLN")

		cached := make(chan struct{})
		cacheRepo.EXPECT().GetComponent(gomock.Any(), domain.CategoryGPU, "RTX 4070").Return(nil, errors.New("redis down"))
		componentRepo.EXPECT().Resolve(gomock.Any(), domain.CategoryGPU, "RTX 4070").Return(rtx4070(), nil)
		cacheRepo.EXPECT().SetComponent(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, _ *domain.Component) error {
				close(cached)
				return nil
			},
		)

		res, err := uc.GetComponentPrice(context.Background(), usecase.NewGetPriceReq("GPU", "RTX 4070"))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Price != 360000 {
			t.Fatalf("price = %d, want 360000", res.Price)
		}

		select {
		case <-cached:
		case <-time.After(time.Second):
			t.Fatal("component was not backfilled into cache")
		}
	})

	t.Run("component not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		componentRepo := mocks.NewMockComponentRepository(ctrl)
		cacheRepo := mocks.NewMockCacheRepository(ctrl)
		uc := usecase.NewPriceUC(componentRepo, cacheRepo, nil, nil, testEngine(), log, "PLN")

		cacheRepo.EXPECT().GetComponent(gomock.Any(), domain.CategoryGPU, "RTX 9999").Return(nil, nil)
		componentRepo.EXPECT().Resolve(gomock.Any(), domain.CategoryGPU, "RTX 9999").Return(nil, e.ErrComponentNotFound)

		_, err := uc.GetComponentPrice(context.Background(), usecase.NewGetPriceReq("GPU", "RTX 9999"))
		if !errors.Is(err, e.ErrComponentNotFound) {
			t.Fatalf("expected ErrComponentNotFound, got %v", err)
		}
	})

	t.Run("malformed catalog record", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		componentRepo := mocks.NewMockComponentRepository(ctrl)
		cacheRepo := mocks.NewMockCacheRepository(ctrl)
		uc := usecase.NewPriceUC(componentRepo, cacheRepo, nil, nil, testEngine(), log, "PLN")

		broken := domain.NewComponent(domain.CategoryGPU, "RTX 4070", map[string]any{
			"vram_gb": float64(12), // generation потерян при загрузке каталога
		}, 200000)

		cacheRepo.EXPECT().GetComponent(gomock.Any(), domain.CategoryGPU, "RTX 4070").Return(broken, nil)

		_, err := uc.GetComponentPrice(context.Background(), usecase.NewGetPriceReq("GPU", "RTX 4070"))
		if !errors.Is(err, e.ErrMalformedSpec) {
			t.Fatalf("expected ErrMalformedSpec, got %v", err)
		}
	})
}

func TestPriceUseCase_RegisterComponent_Validation(t *testing.T) {
	log := logger.NewSlogLogger()
	uc := usecase.NewPriceUC(nil, nil, nil, nil, testEngine(), log, "PLN")

	t.Run("empty name", func(t *testing.T) {
		_, err := uc.RegisterComponent(context.Background(), usecase.NewRegisterComponentReq("GPU", " ", nil, 100))
		if !errors.Is(err, e.ErrComponentNameRequired) {
			t.Fatalf("expected ErrComponentNameRequired, got %v", err)
		}
	})

	t.Run("non positive base price", func(t *testing.T) {
		_, err := uc.RegisterComponent(context.Background(), usecase.NewRegisterComponentReq("GPU", "RTX 4070", nil, 0))
		if !errors.Is(err, e.ErrBasePriceMustBePositive) {
			t.Fatalf("expected ErrBasePriceMustBePositive, got %v", err)
		}
	})

	t.Run("invalid category", func(t *testing.T) {
		_, err := uc.RegisterComponent(context.Background(), usecase.NewRegisterComponentReq("PSU", "X", nil, 100))
		if !errors.Is(err, e.ErrInvalidCategory) {
			t.Fatalf("expected ErrInvalidCategory, got %v", err)
		}
	})

	t.Run("incomplete specification", func(t *testing.T) {
		attrs := map[string]any{"vram_gb": float64(12)}
		_, err := uc.RegisterComponent(context.Background(), usecase.NewRegisterComponentReq("GPU", "RTX 4070", attrs, 100))
		if !errors.Is(err, e.ErrMissingFields) {
			t.Fatalf("expected ErrMissingFields, got %v", err)
		}
	})
}
