package catalog

import "github.com/loja-labs/backend-loja/internal/pricing"

func money(v pricing.Money) *pricing.Money { return &v }

// SeedProducts returns the demo storefront catalog used by local
// development and the seeder tool.
func SeedProducts() []Product {
	return []Product{
		{
			ID:            "p-1001",
			Slug:          "camiseta-basica-preta",
			Name:          "Camiseta Básica Preta",
			Price:         49_90,
			OriginalPrice: money(69_90),
			Image:         "/img/camiseta-preta.webp",
			InStock:       true,
			Variants: []Variant{
				{ID: "v-p", Name: "P", Price: 49_90},
				{ID: "v-m", Name: "M", Price: 49_90},
				{ID: "v-g", Name: "G", Price: 54_90},
			},
		},
		{
			ID:      "p-1002",
			Slug:    "tenis-corrida-runner",
			Name:    "Tênis de Corrida Runner",
			Price:   299_90,
			Image:   "/img/tenis-runner.webp",
			InStock: true,
		},
		{
			ID:            "p-1003",
			Slug:          "mochila-urbana-25l",
			Name:          "Mochila Urbana 25L",
			Price:         159_90,
			OriginalPrice: money(199_90),
			Image:         "/img/mochila-25l.webp",
			InStock:       true,
		},
		{
			ID:      "p-1004",
			Slug:    "garrafa-termica-1l",
			Name:    "Garrafa Térmica 1L",
			Price:   89_90,
			Image:   "/img/garrafa-1l.webp",
			InStock: true,
		},
		{
			ID:      "p-1005",
			Slug:    "jaqueta-corta-vento",
			Name:    "Jaqueta Corta-Vento",
			Price:   249_90,
			Image:   "/img/jaqueta-corta-vento.webp",
			InStock: false,
		},
	}
}
