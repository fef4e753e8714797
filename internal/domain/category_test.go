package domain

import (
	"errors"
	"testing"

	"github.com/DRSN-tech/pricing-backend/pkg/e"
)

func TestParseCategory(t *testing.T) {
	t.Run("recognized tags", func(t *testing.T) {
		cases := map[string]Category{
			"CPU":    CategoryCPU,
			"gpu":    CategoryGPU,
			" Ram ":  CategoryRAM,
			"\tCPU ": CategoryCPU,
		}

		for input, want := range cases {
			got, err := ParseCategory(input)
			if err != nil {
				t.Fatalf("ParseCategory(%q): unexpected error: %v", input, err)
			}
			if got != want {
				t.Fatalf("ParseCategory(%q) = %q, want %q", input, got, want)
			}
		}
	})

	t.Run("unrecognized tags", func(t *testing.T) {
		for _, input := range []string{"", "Motherboard", "SSD", "CPU GPU"} {
			_, err := ParseCategory(input)
			if !errors.Is(err, e.ErrInvalidCategory) {
				t.Fatalf("ParseCategory(%q): expected ErrInvalidCategory, got %v", input, err)
			}
		}
	})
}

func TestComponent_Attr(t *testing.T) {
	component := NewComponent(CategoryGPU, "RTX 4070", map[string]any{
		"vram_gb":    float64(12),
		"generation": 40,
		"chip":       "AD104",
	}, 200000)

	if v, ok := component.Attr("vram_gb"); !ok || v != 12 {
		t.Fatalf("Attr(vram_gb) = %v, %v", v, ok)
	}
	if v, ok := component.Attr("generation"); !ok || v != 40 {
		t.Fatalf("Attr(generation) = %v, %v", v, ok)
	}
	if _, ok := component.Attr("chip"); ok {
		t.Fatal("string attribute reported as numeric")
	}
	if _, ok := component.Attr("missing"); ok {
		t.Fatal("missing attribute reported as present")
	}
}
