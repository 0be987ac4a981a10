package catalog

import (
	"github.com/syntriq/cart-service/internal/domain/model"
)

// defaultProducts is the built-in SYNTRIQ product line: three hardware
// platforms and three software products. Sentinel and labeled prices
// are resolved here, once, via the model constructors.
func defaultProducts() []model.Product {
	return []model.Product{
		{
			ID:         "3d-printers",
			Name:       "3D Printers",
			Slug:       "3d-printers",
			Category:   "Hardware",
			Tagline:    "Industry-leading additive manufacturing solutions",
			BasePrice:  model.Numeric(12999),
			PriceLabel: "Starting at $12,999",
			Variants: []model.Variant{
				{Name: "Standard", Price: model.Numeric(12999), Description: "Perfect for small to medium production runs"},
				{Name: "Professional", Price: model.Numeric(24999), Description: "Enhanced capabilities for demanding applications"},
				{Name: "Industrial", Price: model.Numeric(49999), Description: "Maximum performance for high-volume manufacturing"},
			},
		},
		{
			ID:         "cnc-machines",
			Name:       "CNC Machines",
			Slug:       "cnc-machines",
			Category:   "Hardware",
			Tagline:    "Professional-grade computer numerical control systems",
			BasePrice:  model.Numeric(29999),
			PriceLabel: "Starting at $29,999",
			Variants: []model.Variant{
				{Name: "3-Axis", Price: model.Numeric(29999), Description: "Versatile 3-axis machining for standard operations"},
				{Name: "4-Axis", Price: model.Numeric(49999), Description: "Advanced 4-axis capability for complex geometries"},
				{Name: "5-Axis", Price: model.Numeric(79999), Description: "Premium 5-axis simultaneous machining"},
			},
		},
		{
			ID:         "pick-and-place",
			Name:       "Pick & Place",
			Slug:       "pick-and-place",
			Category:   "Hardware",
			Tagline:    "Automated assembly systems for efficient PCB manufacturing",
			BasePrice:  model.Numeric(39999),
			PriceLabel: "Starting at $39,999",
			Variants: []model.Variant{
				{Name: "Compact", Price: model.Numeric(39999), Description: "Ideal for prototyping and small batch production"},
				{Name: "Production", Price: model.Numeric(69999), Description: "High-speed production with expanded feeder capacity"},
				{Name: "Industrial", Price: model.Numeric(99999), Description: "Maximum throughput for high-volume manufacturing"},
			},
		},
		{
			ID:         "zcad",
			Name:       "ZCAD",
			Slug:       "zcad",
			Category:   "Software",
			Tagline:    "Next-generation Electronic Design Automation",
			BasePrice:  model.Numeric(0),
			PriceLabel: "Free to start",
			Variants: []model.Variant{
				{Name: "Starter", Price: model.Free(), Description: "Perfect for hobbyists and students learning PCB design"},
				{Name: "Professional", Price: model.Labeled("$49/month"), Description: "Complete toolset for professional PCB designers"},
				{Name: "Enterprise", Price: model.Custom(), Description: "Tailored solutions for organizations"},
			},
		},
		{
			ID:         "syntric-slicer",
			Name:       "Syntric Slicer",
			Slug:       "slicer",
			Category:   "Software",
			Tagline:    "Advanced 3D printing slicer with intelligent optimization",
			BasePrice:  model.Numeric(0),
			PriceLabel: "Free to start",
			Variants: []model.Variant{
				{Name: "Basic", Price: model.Free(), Description: "Essential slicing tools for makers and hobbyists"},
				{Name: "Pro", Price: model.Labeled("$29/month"), Description: "Advanced features for professional 3D printing"},
				{Name: "Business", Price: model.Labeled("$99/month"), Description: "Complete solution for production environments"},
			},
		},
		{
			ID:         "syntric-cad",
			Name:       "Syntric CAD",
			Slug:       "cad",
			Category:   "Software",
			Tagline:    "Modern parametric CAD for mechanical design",
			BasePrice:  model.Numeric(0),
			PriceLabel: "Free to start",
			Variants: []model.Variant{
				{Name: "Maker", Price: model.Free(), Description: "Full-featured CAD for students and makers"},
				{Name: "Professional", Price: model.Labeled("$79/month"), Description: "Advanced tools for professional engineers"},
				{Name: "Enterprise", Price: model.Custom(), Description: "Complete engineering solution for teams"},
			},
		},
	}
}
