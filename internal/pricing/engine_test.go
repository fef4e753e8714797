package pricing

import (
	"errors"
	"testing"

	"github.com/DRSN-tech/pricing-backend/internal/cfg"
	"github.com/DRSN-tech/pricing-backend/internal/domain"
	"github.com/DRSN-tech/pricing-backend/pkg/e"
)

func newTestEngine() *Engine {
	return NewEngine(&cfg.PricingCfg{
		Currency:            "PLN",
		CPUCoreWeight:       0.04,
		CPUThreadWeight:     0.015,
		GPUVRAMWeight:       0.05,
		GPUGenerationWeight: 0.005,
		RAMCapacityWeight:   0.02,
		RAMSpeedWeight:      0.0001,
	})
}

func gpu(name string, vramGB, generation float64, basePrice int64) *domain.Component {
	return domain.NewComponent(domain.CategoryGPU, name, map[string]any{
		"vram_gb":    vramGB,
		"generation": generation,
	}, basePrice)
}

func TestEngine_Compute(t *testing.T) {
	eng := newTestEngine()

	t.Run("fixed values with default weights", func(t *testing.T) {
		cases := []struct {
			name      string
			component *domain.Component
			want      int64 // грошей
		}{
			{
				// 2000.00 × (1 + 0.05·12 + 0.005·40) = 3600.00
				name:      "gpu rtx 4070",
				component: gpu("RTX 4070", 12, 40, 200000),
				want:      360000,
			},
			{
				// 800.00 × (1 + 0.04·8 + 0.015·16) = 1248.00
				name: "cpu ryzen 7 5800x",
				component: domain.NewComponent(domain.CategoryCPU, "Ryzen 7 5800X", map[string]any{
					"cores":   float64(8),
					"threads": float64(16),
				}, 80000),
				want: 124800,
			},
			{
				// 300.00 × (1 + 0.02·32 + 0.0001·3600) = 600.00
				name: "ram corsair vengeance",
				component: domain.NewComponent(domain.CategoryRAM, "Corsair Vengeance", map[string]any{
					"capacity_gb": float64(32),
					"speed":       float64(3600),
				}, 30000),
				want: 60000,
			},
		}

		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				got, err := eng.Compute(tc.component)
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				if got != tc.want {
					t.Fatalf("price = %d, want %d", got, tc.want)
				}
			})
		}
	})

	t.Run("deterministic", func(t *testing.T) {
		component := gpu("RTX 4070", 12, 40, 200000)

		first, err := eng.Compute(component)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		second, err := eng.Compute(component)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if first != second {
			t.Fatalf("compute is not deterministic: %d != %d", first, second)
		}
	})

	t.Run("monotonic in vram", func(t *testing.T) {
		base, err := eng.Compute(gpu("RTX 4070", 12, 40, 200000))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		doubled, err := eng.Compute(gpu("RTX 4070 Ti", 24, 40, 200000))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if doubled < base {
			t.Fatalf("doubling vram decreased price: %d < %d", doubled, base)
		}
	})

	t.Run("non negative", func(t *testing.T) {
		got, err := eng.Compute(gpu("GT 1030", 2, 10, 1))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got < 0 {
			t.Fatalf("price is negative: %d", got)
		}
	})

	t.Run("missing required attribute", func(t *testing.T) {
		component := domain.NewComponent(domain.CategoryGPU, "RTX 4070", map[string]any{
			"vram_gb": float64(12), // generation отсутствует
		}, 200000)

		_, err := eng.Compute(component)
		if !errors.Is(err, e.ErrMalformedSpec) {
			t.Fatalf("expected ErrMalformedSpec, got %v", err)
		}
	})

	t.Run("non numeric attribute", func(t *testing.T) {
		component := domain.NewComponent(domain.CategoryGPU, "RTX 4070", map[string]any{
			"vram_gb":    "twelve",
			"generation": float64(40),
		}, 200000)

		_, err := eng.Compute(component)
		if !errors.Is(err, e.ErrMalformedSpec) {
			t.Fatalf("expected ErrMalformedSpec, got %v", err)
		}
	})

	t.Run("non positive attribute", func(t *testing.T) {
		_, err := eng.Compute(gpu("RTX 4070", 0, 40, 200000))
		if !errors.Is(err, e.ErrMalformedSpec) {
			t.Fatalf("expected ErrMalformedSpec, got %v", err)
		}
	})

	t.Run("non positive base price", func(t *testing.T) {
		_, err := eng.Compute(gpu("RTX 4070", 12, 40, 0))
		if !errors.Is(err, e.ErrMalformedSpec) {
			t.Fatalf("expected ErrMalformedSpec, got %v", err)
		}
	})

	t.Run("unknown category", func(t *testing.T) {
		component := domain.NewComponent(domain.Category("MOTHERBOARD"), "X", nil, 100)

		_, err := eng.Compute(component)
		if !errors.Is(err, e.ErrInvalidCategory) {
			t.Fatalf("expected ErrInvalidCategory, got %v", err)
		}
	})

	t.Run("rounds to whole grosz", func(t *testing.T) {
		// 0.03 × (1 + 0.05·1 + 0.005·1) = 0.03165 → 0.03
		got, err := eng.Compute(gpu("tiny", 1, 1, 3))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got != 3 {
			t.Fatalf("price = %d, want 3", got)
		}
	})
}

func TestEngine_ValidateSpec(t *testing.T) {
	eng := newTestEngine()

	t.Run("complete spec", func(t *testing.T) {
		err := eng.ValidateSpec(domain.CategoryRAM, map[string]any{
			"capacity_gb": float64(32),
			"speed":       float64(3600),
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("incomplete spec", func(t *testing.T) {
		err := eng.ValidateSpec(domain.CategoryRAM, map[string]any{
			"capacity_gb": float64(32),
		})
		if !errors.Is(err, e.ErrMalformedSpec) {
			t.Fatalf("expected ErrMalformedSpec, got %v", err)
		}
	})

	t.Run("unknown category", func(t *testing.T) {
		err := eng.ValidateSpec(domain.Category("PSU"), map[string]any{})
		if !errors.Is(err, e.ErrInvalidCategory) {
			t.Fatalf("expected ErrInvalidCategory, got %v", err)
		}
	})
}

func TestEngine_RequiredAttributes(t *testing.T) {
	eng := newTestEngine()

	attrs := eng.RequiredAttributes(domain.CategoryCPU)
	if len(attrs) != 2 || attrs[0] != "cores" || attrs[1] != "threads" {
		t.Fatalf("unexpected schema: %v", attrs)
	}

	if got := eng.RequiredAttributes(domain.Category("PSU")); got != nil {
		t.Fatalf("expected nil schema for unknown category, got %v", got)
	}
}
