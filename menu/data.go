package menu

// The menu is a process-wide constant table, same as the restaurant's
// published card. Prices in INR.
var items = []Item{
	// Starters & Snacks
	{
		ID: 1, Name: "Tornado Potato (Regular)", Category: "Starters & Snacks", Price: 91,
		Description: "Spiral-cut potato on a stick, seasoned and deep-fried to crispy perfection",
		Image:       "https://www.tastingtable.com/img/gallery/tornado-potatoes.jpg",
		Ingredients: []string{"Potato", "Seasoning salt", "Oil", "Parsley"},
	},
	{
		ID: 2, Name: "Tornado Potato (Loaded)", Category: "Starters & Snacks", Price: 129,
		Description: "Spiral potato topped with melted cheese, sour cream, and bacon bits",
		Image:       "https://hips.hearstapps.com/fully-loaded-tornado-potato.jpg",
		Ingredients: []string{"Potato", "Cheese", "Sour cream", "Chives", "Bacon bits"},
	},
	{
		ID: 3, Name: "Beoseot-Tangun (Fried Mushrooms)", Category: "Starters & Snacks", Price: 389,
		Description: "Whole mushrooms coated in crispy batter and golden fried",
		Image:       "https://i.pinimg.com/originals/fried-mushrooms.webp",
		Ingredients: []string{"Mushrooms", "Flour batter", "Garlic", "Pepper", "Oil"},
	},
	{
		ID: 4, Name: "Cheesy Corn Dog", Category: "Starters & Snacks", Price: 129,
		Description: "Hot dog stuffed with cheese, battered and fried crispy",
		Image:       "https://i.ytimg.com/vi/cheesy-corn-dog.jpg",
		Ingredients: []string{"Hot dog", "Corn batter", "Mozzarella cheese", "Mustard", "Ketchup"},
	},
	{
		ID: 5, Name: "Sausage Corn Dog", Category: "Starters & Snacks", Price: 259,
		Description: "Juicy sausage battered in cornmeal coating and deep-fried to golden perfection",
		Image:       "https://tse3.mm.bing.net/th/id/sausage-corn-dog.jpg",
		Ingredients: []string{"Pork sausage", "Cornmeal batter", "Oil", "Mustard", "Ketchup"},
	},

	// Korean Laphing
	{
		ID: 6, Name: "Kimchi Laphing", Category: "Korean Laphing", Price: 129,
		Description: "Cold mung bean noodles tossed with spicy kimchi and Korean flavors",
		KoreanName:  "김치 래핑",
		Image:       "https://www.koreanbapsang.com/kimchi-laphing.jpg",
		Ingredients: []string{"Mung bean starch noodles", "Kimchi", "Soy sauce", "Garlic", "Sesame oil"},
	},
	{
		ID: 7, Name: "Paneer Laphing", Category: "Korean Laphing", Price: 145,
		Description: "Cold noodles with grilled paneer cubes and Indian spices",
		KoreanName:  "파니르 래핑",
		Image:       "https://i.pinimg.com/736x/paneer-laphing.jpg",
		Ingredients: []string{"Mung bean starch noodles", "Paneer", "Spices", "Coriander", "Lemon"},
	},
	{
		ID: 8, Name: "Maya Special Laphing", Category: "Korean Laphing", Price: 235,
		Description: "Signature cold noodles with special Maya sauce, fresh vegetables and sesame seeds",
		KoreanName:  "마야 스페셜 래핑",
		Image:       "https://i.pinimg.com/736x/maya-special-laphing.jpg",
		Ingredients: []string{"Mung bean starch noodles", "Special Maya sauce", "Fresh veggies", "Sesame seeds", "Spring onions"},
	},
	{
		ID: 9, Name: "Chicken Laphing", Category: "Korean Laphing", Price: 155,
		Description: "Spicy cold noodles with tender shredded chicken and Korean seasonings",
		Image:       "https://images.slurrp.com/prod/chicken-laphing.webp",
		Ingredients: []string{"Mung bean starch noodles", "Chicken", "Gochujang", "Sesame oil", "Spring onions"},
	},

	// Rice / Pancakes
	{
		ID: 13, Name: "Haemul Pajeon (Pancakes)", Category: "Rice / Pancakes", Price: 259,
		Description: "Savory Korean seafood pancake with crispy edges and tender center",
		KoreanName:  "해물 파전",
		Image:       "https://eggcellent.recipes/korean-pancake-pajeon.png",
		Ingredients: []string{"Seafood mix", "Green onions", "Flour batter", "Egg", "Soy dipping sauce"},
		Addons: []Addon{
			{Name: "Chicken", Price: 30},
			{Name: "Fish", Price: 50},
			{Name: "Prawn", Price: 70},
		},
	},

	// Kimbap (Korean Sushi)
	{
		ID: 14, Name: "Kimbap Veg", Category: "Kimbap (Korean Sushi)", HalfPrice: 299, FullPrice: 519,
		Description: "Fresh vegetable kimbap rolls",
		Image:       "https://thumbs.dreamstime.com/b/vegan-sushi-rolls.jpg",
		Addons: []Addon{
			{Name: "Chicken", HalfPrice: 20, FullPrice: 50},
			{Name: "Fish", HalfPrice: 40, FullPrice: 75},
			{Name: "Prawn", HalfPrice: 70, FullPrice: 100},
		},
	},
	{
		ID: 15, Name: "Tempura Kimbap Veg", Category: "Kimbap (Korean Sushi)", HalfPrice: 365, FullPrice: 585,
		Description: "Crispy tempura kimbap with vegetables",
		Image:       "https://ichisushi.com/tempura-kimbap.jpg",
		Addons: []Addon{
			{Name: "Chicken", HalfPrice: 20, FullPrice: 50},
			{Name: "Fish", HalfPrice: 40, FullPrice: 75},
			{Name: "Prawn", HalfPrice: 70, FullPrice: 100},
		},
	},

	// Thukpa
	{
		ID: 16, Name: "Thukpa Veg", Category: "Thukpa", Price: 195,
		Description: "Warm Tibetan noodle soup loaded with mixed vegetables",
		Image:       "https://www.funfoodfrolic.com/thukpa.jpg",
		Ingredients: []string{"Noodles", "Mixed vegetables", "Garlic", "Ginger", "Spring onions"},
	},
	{
		ID: 17, Name: "Thukpa Chicken", Category: "Thukpa", Price: 259,
		Description: "Hearty Tibetan noodle soup with tender chicken pieces and vegetables",
		Image:       "https://tse4.mm.bing.net/th/id/thukpa-chicken.jpg",
		Ingredients: []string{"Noodles", "Chicken", "Mixed vegetables", "Garlic", "Ginger", "Herbs"},
	},
	{
		ID: 18, Name: "Thukpa Prawns", Category: "Thukpa", Price: 425,
		Description: "Rich Tibetan noodle soup with succulent prawns and fresh vegetables",
		Image:       "https://holidays.tripfactory.com/thukpa-prawns.webp",
		Ingredients: []string{"Noodles", "Prawns", "Mixed vegetables", "Garlic", "Ginger", "Spring onions"},
	},

	// Jjigae
	{
		ID: 19, Name: "Kimchi Jjigae Veg", Category: "Jjigae", Price: 259,
		Description: "Spicy Korean kimchi stew with tofu and vegetables",
		KoreanName:  "김치 찌개",
		Image:       "https://www.nasoya.com/vegan-kimchi-stew.jpg",
		Ingredients: []string{"Kimchi", "Tofu", "Onion", "Garlic", "Gochujang", "Sesame oil"},
	},
	{
		ID: 20, Name: "Kimchi Jjigae Chicken / Fish / Prawn", Category: "Jjigae", Price: 325,
		Description: "Spicy kimchi stew with your choice of protein, served boiling hot",
		KoreanName:  "김치 찌개",
		Image:       "https://i.cdn.newsbytesapp.com/kimchi-jjigae.jpeg",
		Ingredients: []string{"Kimchi", "Choice of protein", "Tofu", "Gochujang", "Garlic", "Spring onions"},
	},
	{
		ID: 21, Name: "Doenjang Jjigae Chicken / Fish / Prawn", Category: "Jjigae", Price: 455,
		Description: "Hearty fermented soybean stew with vegetables and choice of protein",
		KoreanName:  "된장 찌개",
		Image:       "https://thumbs.dreamstime.com/b/doenjang-jjigae.jpg",
		Ingredients: []string{"Doenjang", "Choice of protein", "Tofu", "Potato", "Zucchini", "Gochugaru"},
	},

	// Bibimbap
	{
		ID: 22, Name: "Bibimbap Veg", Category: "Bibimbap", Price: 345,
		Description: "Korean mixed rice bowl with assorted vegetables and gochujang sauce",
		KoreanName:  "비빔밥",
		Image:       "https://thefoodietakesflight.com/bibimbap-veg.jpg",
		Ingredients: []string{"Rice", "Carrot", "Spinach", "Bean sprouts", "Gochujang", "Egg"},
	},
	{
		ID: 23, Name: "Bibimbap Non-Veg", Category: "Bibimbap", Price: 649,
		Description: "Korean mixed rice bowl with marinated meat, vegetables and fried egg",
		KoreanName:  "비빔밥",
		Image:       "https://www.seasonsandsuppers.ca/chicken-bibimbap.jpg",
		Ingredients: []string{"Rice", "Marinated meat", "Assorted vegetables", "Fried egg", "Gochujang", "Sesame oil"},
	},

	// Maya Special
	{
		ID: 24, Name: "Maya Special Rice Bowl with Laphing (Veg)", Category: "Maya Special", Price: 649,
		Description: "Signature rice bowl topped with laphing noodles, vegetables and special sauce",
		Image:       "https://product-assets.faasos.io/rice-bowl.jpg",
		Ingredients: []string{"Rice", "Laphing noodles", "Mixed vegetables", "Special sauce", "Sesame seeds", "Spring onions"},
	},
	{
		ID: 25, Name: "Maya Special Noodle Bowl with Laphing (Non-Veg)", Category: "Maya Special", Price: 910,
		Description: "Premium noodle bowl with laphing noodles, choice of meat and signature toppings",
		Image:       "https://images.getrecipekit.com/sriracha-ramen.jpg",
		Ingredients: []string{"Noodles", "Laphing noodles", "Choice of meat", "Vegetables", "Special sauce", "Egg"},
	},
	{
		ID: 26, Name: "Dak Doritang", Category: "Maya Special", HalfPrice: 455, FullPrice: 649,
		Description: "Braised spicy chicken boiled with chunks of vegetables and spices",
		Image:       "https://preview.redd.it/dak-doritang.jpg",
		Ingredients: []string{"Chicken", "Vegetables", "Spices", "Soya Sauce", "Seasoning Paste"},
	},

	// Dak Galbi
	{
		ID: 30, Name: "Dak Galbi", Category: "Dak Galbi", HalfPrice: 349, FullPrice: 399,
		Description: "Spicy Korean stir-fried chicken with cabbage, sweet potato and rice cakes",
		KoreanName:  "닭갈비",
		Image:       "https://media3.bosch-home.com/dak-galbi.jpg",
		Ingredients: []string{"Chicken", "Cabbage", "Sweet potato", "Rice cakes", "Gochujang", "Sesame oil"},
	},

	// Curries & Noodles
	{
		ID: 31, Name: "Red Thai Curry Veg", Category: "Curries & Noodles", Price: 325,
		Description: "Creamy coconut red Thai curry with vegetables and bamboo shoots",
		Image:       "https://images.unsplash.com/red-thai-curry.jpg",
		Ingredients: []string{"Coconut milk", "Red curry paste", "Bamboo shoots", "Bell peppers", "Thai basil"},
	},
	{
		ID: 33, Name: "Red Thai Curry Non-Veg", Category: "Curries & Noodles", Price: 389,
		Description: "Spicy red Thai curry with tender chicken or meat in coconut milk",
		Image:       "https://images.unsplash.com/red-thai-curry-nv.jpg",
		Ingredients: []string{"Coconut milk", "Red curry paste", "Chicken/Meat", "Bell peppers", "Thai basil"},
	},
	{
		ID: 35, Name: "Green Thai Curry Seafood", Category: "Curries & Noodles", Price: 519,
		Description: "Green Thai curry with prawns, fish and mixed seafood in coconut sauce",
		Image:       "https://images.unsplash.com/green-thai-curry.jpg",
		Ingredients: []string{"Coconut milk", "Green curry paste", "Mixed seafood", "Bell peppers", "Kaffir lime"},
	},

	// Korean Ramen
	{
		ID: 36, Name: "Korean Ramen Veg", Category: "Korean Ramen", Price: 199,
		Description: "Spicy Korean ramen noodles in rich vegetable broth with toppings",
		Image:       "https://tse2.mm.bing.net/th/id/korean-ramen-veg.jpg",
		Ingredients: []string{"Ramen noodles", "Vegetable broth", "Mushrooms", "Spring onions", "Egg", "Seaweed"},
	},
	{
		ID: 37, Name: "Korean Ramen Non-Veg", Category: "Korean Ramen", Price: 259,
		Description: "Spicy Korean ramen with chicken or meat in savory broth",
		Image:       "https://hips.hearstapps.com/korean-ramen.jpg",
		Ingredients: []string{"Ramen noodles", "Chicken/Meat broth", "Chicken/Meat", "Egg", "Spring onions", "Seaweed"},
	},
	{
		ID: 38, Name: "Korean Ramen Prawns", Category: "Korean Ramen", Price: 365,
		Description: "Korean ramen loaded with prawns in spicy seafood broth",
		Image:       "https://images.unsplash.com/korean-ramen-prawns.jpg",
		Ingredients: []string{"Ramen noodles", "Seafood broth", "Prawns", "Mussels", "Spring onions", "Seaweed"},
	},

	// Beverages
	{
		ID: 44, Name: "Multi Vitamin Water", Category: "Beverages", Price: 40,
		Description: "Vitamin-enriched flavored water with essential nutrients",
		Image:       "https://images.unsplash.com/vitamin-water.jpg",
		Ingredients: []string{"Purified water", "Vitamin blend", "Natural flavors"},
	},
	{
		ID: 45, Name: "Protein Water", Category: "Beverages", Price: 150,
		Description: "Protein-fortified energy water for active lifestyle",
		Image:       "https://aquatein.com/protein-water.jpg",
		Ingredients: []string{"Purified water", "Whey protein", "Electrolytes", "Vitamins"},
	},
	{
		ID: 46, Name: "Mineral Water", Category: "Beverages", Price: 20,
		Description: "Bottled natural mineral water, 500ml",
		Image:       "https://images.unsplash.com/mineral-water.jpg",
		Ingredients: []string{"Natural mineral water"},
	},
}
