// Package seed holds the built-in cookbook dataset. Every entry carries a
// stable id so startup reconciliation can merge user edits back onto the
// same record across releases.
package seed

import "github.com/shirleys-kitchen/backend/internal/model"

// FamilyMembers is the roster offered by the owner filter and the edit form.
var FamilyMembers = []string{
	"Nan", "Wade", "Donetta", "Adrienne", "Cathy", "Jean", "Carolyn",
	"Dorothy", "Selma", "Bernice", "Gail", "Laurie", "Joanie",
	"Bernadette", "Wanda", "Molly",
}

// seedEpoch is the creation timestamp stamped on every built-in recipe,
// in epoch milliseconds. User recipes always sort after these by date.
const seedEpoch int64 = 1704067200000

// Recipes returns a fresh copy of the built-in collection. Callers may
// mutate the result freely.
func Recipes() []model.Recipe {
	out := make([]model.Recipe, len(recipes))
	copy(out, recipes)
	for i := range out {
		out[i].Ingredients = append([]string(nil), recipes[i].Ingredients...)
		out[i].Instructions = append([]string(nil), recipes[i].Instructions...)
	}
	return out
}

var recipes = []model.Recipe{
	{
		ID:       "seed-ham-potatoes-au-gratin",
		Title:    "Ham & Potatoes Au Gratin",
		Category: model.CategoryMainDishes,
		Ingredients: []string{
			"1/4 cup chopped Onion",
			"1/4 cup chopped Green Pepper",
			"2 Tbsp Butter",
			"3 Tbsp Flour",
			"Dash Salt and Pepper",
			"1 cup Milk",
			"1 cup shredded Cheddar Cheese",
			"1/4 cup Mayonnaise",
			"3 cups cooked Potatoes",
			"2 cups cooked Ham",
		},
		Instructions: []string{
			"Sauté onion and green pepper in butter until tender.",
			"Stir in flour, salt, and pepper.",
			"Add milk all at once and bring to a boil, stirring constantly.",
			"Reduce heat. Add grated cheese and mayonnaise.",
			"Continue stirring until cheese melts.",
			"Add potatoes and ham and mix thoroughly into sauce.",
			"Bake in casserole dish at 350°F for 30 minutes.",
		},
		AddedBy:   "Nan",
		Temp:      "350°F",
		CookTime:  "30 mins",
		Timestamp: seedEpoch,
	},
	{
		ID:       "seed-lobster-dip",
		Title:    "Lobster Dip",
		Category: model.CategoryAppetizers,
		Ingredients: []string{
			"1 can Lobster (thawed, drained)",
			"8 oz Cream Cheese",
			"1 cup Mayonnaise",
			"1 cup grated Cheddar Cheese",
			"2 tsp Dill Weed (optional)",
			"1/2 cup diced Onion",
		},
		Instructions: []string{
			"Cream the cream cheese, then add mayonnaise and mix well.",
			"Add all other ingredients except lobster and stir.",
			"Fold in the lobster pieces.",
			"Bake in a 325°F oven for approximately 20 minutes.",
			"Serve warm with crackers.",
		},
		AddedBy:   "Donetta",
		Temp:      "325°F",
		CookTime:  "20 mins",
		Timestamp: seedEpoch,
	},
	{
		ID:       "seed-minestrone-soup",
		Title:    "Minestrone Soup",
		Category: model.CategorySoupsSalads,
		Ingredients: []string{
			"1 1/2 lb Ground Round beef",
			"1 cup diced Onions",
			"1 cup diced Zucchini",
			"1/2 cup diced Okra",
			"1 cup cubed Potatoes",
			"1 cup sliced Carrots",
			"1/2 cup diced Celery",
			"1 cup shredded Cabbage",
			"1 14oz tin Tomatoes",
			"1/4 cup Rice or 1/2 cup Macaroni elbow noodles",
			"1 1/2 qts Water",
			"1 Bay leaf",
			"1/2 tsp Thyme",
			"5 tsp Salt",
			"Pepper to taste",
			"1 tsp Worcestershire Sauce",
			"1/2 cup grated Parmesan Cheese",
		},
		Instructions: []string{
			"Brown ground round in a large kettle.",
			"Add all vegetables, water, and spices; bring to a boil.",
			"Sprinkle in rice or noodles.",
			"Cover and simmer for at least one hour.",
			"Sprinkle with grated parmesan cheese before serving.",
		},
		AddedBy:   "Nan",
		CookTime:  "1 hour+",
		Timestamp: seedEpoch,
	},
	{
		ID:       "seed-whole-wheat-bread",
		Title:    "Whole Wheat Bread with Honey",
		Category: model.CategoryBreadsMuffins,
		Ingredients: []string{
			"3 cups Warm Water",
			"2 pkgs Active Yeast",
			"1/3 cup Honey (for yeast)",
			"5 cups White Flour",
			"3 Tbsp Butter",
			"1/3 cup Honey (for dough)",
			"1 Tbsp Salt",
			"3 1/2 cups Whole Wheat Flour",
			"2 Tbsp melted Butter (for top)",
		},
		Instructions: []string{
			"In a large bowl, mix warm water, yeast, and 1/3 cup honey.",
			"Add 5 cups white flour and combine. Let stand 30 minutes until bubbly.",
			"Mix in 3 Tbsp melted butter, remaining 1/3 cup honey, and salt.",
			"Stir in 2 cups whole wheat flour.",
			"Knead on floured board, adding remaining flour until not sticky.",
			"Place in greased bowl, cover with towel. Let rise until doubled in bulk.",
			"Punch down and place in loaves. Bake until golden.",
		},
		AddedBy:   "Nan",
		Timestamp: seedEpoch,
	},
	{
		ID:       "seed-hodge-podge",
		Title:    "Hodge Podge",
		Category: model.CategorySideDishes,
		Ingredients: []string{
			"Baby Carrots",
			"New Potatoes",
			"Green Beans",
			"Yellow Beans",
			"Shell Peas",
			"Sugar Peas or Snow Peas",
			"1 cup Cream (or blend)",
			"Butter",
			"Salt and Pepper to taste",
		},
		Instructions: []string{
			"Clean vegetables and cut up.",
			"In a large saucepan, bring 2 cups water to a boil.",
			"Add vegetables (cook carrots and potatoes first as they take longer).",
			"Reduce heat to medium and steam until tender (7-10 minutes).",
			"Vegetables should remain bright and colourful.",
			"Drain, saving about 1 cup of the vegetable juice.",
			"Blend together cream, butter, salt, pepper, and the reserved juice.",
			"Mix into the warm vegetables and serve immediately.",
		},
		AddedBy:     "Joanie",
		Description: "A fresh summer vegetable tradition.",
		Timestamp:   seedEpoch,
	},
	{
		ID:       "seed-bacardi-rum-cake",
		Title:    "Bacardi Rum Cake",
		Category: model.CategoryDesserts,
		Ingredients: []string{
			"1 pkg (18 1/2 oz) Yellow Cake Mix",
			"1 pkg (3 3/4 oz) Vanilla Instant Pudding",
			"4 Eggs",
			"1/2 cup Cold Water",
			"1/2 cup Vegetable Oil",
			"1/2 cup Bacardi Dark Rum (80 proof)",
			"Glaze: 1/4 lb Butter",
			"Glaze: 1/4 cup Water",
			"Glaze: 1 cup Sugar",
			"Glaze: 1/2 cup Bacardi Dark Rum",
		},
		Instructions: []string{
			"Preheat oven to 325°F. Grease and flour a 10-inch tube or Bundt pan.",
			"Mix cake mix, pudding, eggs, water, oil, and rum until smooth.",
			"Pour into pan and bake for 1 hour. Cool in pan for 25 minutes.",
			"Invert onto serving plate. Prick top with a fork.",
			"Prepare glaze: Melt butter in saucepan. Stir in water and sugar. Boil 5 minutes, stirring constantly. Remove from heat and stir in rum.",
			"Spoon and brush glaze over cake, allowing it to absorb into the holes.",
		},
		AddedBy:   "Nan",
		Temp:      "325°F",
		CookTime:  "1 hour",
		Timestamp: seedEpoch,
	},
	{
		ID:       "seed-whipped-shortbread",
		Title:    "Whipped Shortbread",
		Category: model.CategoryDesserts,
		Ingredients: []string{
			"1 cup soft Margarine",
			"1/4 cup Corn Starch",
			"1/2 cup Icing Sugar",
			"1 1/2 cups sifted Flour",
		},
		Instructions: []string{
			"Cream margarine and sugars until very light and fluffy.",
			"Gradually add corn starch and flour.",
			"Drop by teaspoonfuls onto a cookie sheet.",
			"Bake in a 325°F oven for 20 minutes.",
		},
		AddedBy:   "Bernice",
		Temp:      "325°F",
		CookTime:  "20 mins",
		Timestamp: seedEpoch,
	},
	{
		ID:       "seed-cranberries",
		Title:    "To Cook Cranberries",
		Category: model.CategorySauces,
		Ingredients: []string{
			"1 1/2 cups Sugar",
			"1 1/2 cups Water",
			"12 oz Cranberries",
			"Dash of Salt",
		},
		Instructions: []string{
			"Combine sugar and water in a saucepan.",
			"Stir to dissolve sugar. Bring to a boil.",
			"Add cranberries and salt.",
			"Cook cranberries in boiling syrup without stirring until skins pop (about 10 mins).",
		},
		AddedBy:   "Nan",
		CookTime:  "10 mins",
		Timestamp: seedEpoch,
	},
}
