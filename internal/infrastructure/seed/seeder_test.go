package seed

import (
	"context"
	"errors"
	"testing"

	"github.com/DRSN-tech/pricing-backend/internal/usecase"
	"github.com/DRSN-tech/pricing-backend/internal/usecase/mocks"
	"github.com/DRSN-tech/pricing-backend/pkg/logger"
	"go.uber.org/mock/gomock"
)

type staticFetcher struct {
	data []byte
	err  error
}

func (f *staticFetcher) Fetch(_ context.Context) ([]byte, error) {
	return f.data, f.err
}

func TestSeeder_Run(t *testing.T) {
	log := logger.NewSlogLogger()

	t.Run("registers every catalog entry", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		catalog := []byte(`[
			{"category": "GPU", "name": "RTX 4070", "base_price": "2000.00", "attributes": {"vram_gb": 12, "generation": 40}},
			{"category": "CPU", "name": "Ryzen 7 5800X", "base_price": "800.00", "attributes": {"cores": 8, "threads": 16}}
		]`)

		uc := mocks.NewMockPriceUC(ctrl)
		uc.EXPECT().
			RegisterComponent(gomock.Any(), &usecase.RegisterComponentReq{
				Category:   "GPU",
				Name:       "RTX 4070",
				Attributes: map[string]any{"vram_gb": float64(12), "generation": float64(40)},
				BasePrice:  200000,
			}).
			Return(nil, nil)
		uc.EXPECT().
			RegisterComponent(gomock.Any(), &usecase.RegisterComponentReq{
				Category:   "CPU",
				Name:       "Ryzen 7 5800X",
				Attributes: map[string]any{"cores": float64(8), "threads": float64(16)},
				BasePrice:  80000,
			}).
			Return(nil, nil)

		s := NewSeeder(&staticFetcher{data: catalog}, uc, log)
		if err := s.Run(context.Background()); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("missing catalog object skips seed", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		uc := mocks.NewMockPriceUC(ctrl)

		s := NewSeeder(&staticFetcher{data: nil}, uc, log)
		if err := s.Run(context.Background()); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("broken entry does not stop the seed", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		catalog := []byte(`[
			{"category": "GPU", "name": "RTX 4070", "base_price": "not-a-price"},
			{"category": "RAM", "name": "Corsair Vengeance", "base_price": "300", "attributes": {"capacity_gb": 32, "speed": 3600}}
		]`)

		uc := mocks.NewMockPriceUC(ctrl)
		uc.EXPECT().
			RegisterComponent(gomock.Any(), &usecase.RegisterComponentReq{
				Category:   "RAM",
				Name:       "Corsair Vengeance",
				Attributes: map[string]any{"capacity_gb": float64(32), "speed": float64(3600)},
				BasePrice:  30000,
			}).
			Return(nil, nil)

		s := NewSeeder(&staticFetcher{data: catalog}, uc, log)
		if err := s.Run(context.Background()); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("rejected entry does not stop the seed", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		catalog := []byte(`[
			{"category": "PSU", "name": "RM850x", "base_price": "100"},
			{"category": "GPU", "name": "RTX 4070", "base_price": "2000", "attributes": {"vram_gb": 12, "generation": 40}}
		]`)

		uc := mocks.NewMockPriceUC(ctrl)
		uc.EXPECT().
			RegisterComponent(gomock.Any(), gomock.Any()).
			Return(nil, errors.New("unknown component category")).
			Times(1)
		uc.EXPECT().
			RegisterComponent(gomock.Any(), &usecase.RegisterComponentReq{
				Category:   "GPU",
				Name:       "RTX 4070",
				Attributes: map[string]any{"vram_gb": float64(12), "generation": float64(40)},
				BasePrice:  200000,
			}).
			Return(nil, nil)

		s := NewSeeder(&staticFetcher{data: catalog}, uc, log)
		if err := s.Run(context.Background()); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("invalid json fails the seed", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		s := NewSeeder(&staticFetcher{data: []byte("{broken")}, mocks.NewMockPriceUC(ctrl), log)
		if err := s.Run(context.Background()); err == nil {
			t.Fatal("expected error, got nil")
		}
	})
}

func TestParsePriceToGrosz(t *testing.T) {
	cases := []struct {
		name    string
		in      string
		want    int64
		wantErr bool
	}{
		{name: "whole units", in: "2000", want: 200000},
		{name: "two decimal places", in: "300.50", want: 30050},
		{name: "garbage", in: "free", wantErr: true},
		{name: "too precise", in: "1.239", wantErr: true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := parsePriceToGrosz(tc.in)
			if tc.wantErr {
				if err == nil {
					t.Fatal("expected error, got nil")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tc.want {
				t.Fatalf("expected %d, got %d", tc.want, got)
			}
		})
	}
}
