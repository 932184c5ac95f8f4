package product

import "github.com/shopspring/decimal"

func ptr[T any](v T) *T { return &v }

// SeedProducts is the teslo starter catalogue, as create payloads.
func SeedProducts() []CreateProductPayload {
	return []CreateProductPayload{
		{
			Title:       "Men's Chill Crew Neck Sweatshirt",
			Description: ptr("Introducing the Tesla Chill Collection. The Men's Chill Crew Neck Sweatshirt has a premium, heavyweight exterior and soft fleece interior for comfort in any season."),
			Price:       ptr(decimal.NewFromInt(75)),
			Stock:       ptr(7),
			Sizes:       []string{"XS", "S", "M", "L", "XL", "XXL"},
			Gender:      GenderMen,
			Tags:        []string{"sweatshirt"},
			Images:      []string{"1740176-00-A_0_2000.jpg", "1740176-00-A_1.jpg"},
		},
		{
			Title:       "Men's Quilted Shirt Jacket",
			Description: ptr("The Men's Quilted Shirt Jacket features a uniquely fit, quilted design for warmth and mobility in cold weather seasons."),
			Price:       ptr(decimal.NewFromInt(200)),
			Stock:       ptr(5),
			Sizes:       []string{"XS", "S", "M", "XL", "XXL"},
			Gender:      GenderMen,
			Tags:        []string{"jacket"},
			Images:      []string{"1740507-00-A_0_2000.jpg", "1740507-00-A_1.jpg"},
		},
		{
			Title:       "Men's Raven Lightweight Zip Up Bomber Jacket",
			Description: ptr("Introducing the Tesla Raven Collection. The Men's Raven Lightweight Zip Up Bomber has a premium, modern silhouette made from a sustainable bamboo cotton blend."),
			Price:       ptr(decimal.NewFromInt(130)),
			Stock:       ptr(10),
			Sizes:       []string{"S", "M", "L", "XL", "XXL"},
			Gender:      GenderMen,
			Tags:        []string{"shirt"},
			Images:      []string{"1740250-00-A_0_2000.jpg", "1740250-00-A_1.jpg"},
		},
		{
			Title:       "Women's Cropped Puffer Jacket",
			Description: ptr("The Women's Cropped Puffer Jacket features a uniquely cropped silhouette for the perfect, modern style while on the go during the cozy season ahead."),
			Price:       ptr(decimal.NewFromInt(225)),
			Stock:       ptr(85),
			Sizes:       []string{"XS", "S", "M"},
			Gender:      GenderWomen,
			Tags:        []string{"hoodie"},
			Images:      []string{"1740535-00-A_0_2000.jpg", "1740535-00-A_1.jpg"},
		},
		{
			Title:       "Kids Cybertruck Long Sleeve Tee",
			Description: ptr("Designed for fit, comfort and style, the Kids Cybertruck Graffiti Long Sleeve Tee features a water-based Cybertruck graffiti wordmark across the chest."),
			Price:       ptr(decimal.NewFromInt(30)),
			Stock:       ptr(10),
			Sizes:       []string{"XS", "S", "M"},
			Gender:      GenderKid,
			Tags:        []string{"shirt"},
			Images:      []string{"1742694-00-A_1_2000.jpg", "1742694-00-A_3.jpg"},
		},
		{
			Title:       "Let the Sun Shine Tee",
			Description: ptr("Inspired by the world's unlimited resources, the Let the Sun Shine Tee highlights our fully integrated home solar and storage system."),
			Price:       ptr(decimal.RequireFromString("45.50")),
			Stock:       ptr(50),
			Sizes:       []string{"XS", "S", "M", "L", "XL", "XXL"},
			Gender:      GenderUnisex,
			Tags:        []string{"shirt"},
			Images:      []string{"1700280-00-A_1_2000.jpg"},
		},
	}
}
