package types

// Ingredient is one line of a recipe's ingredient list, in metric units.
type Ingredient struct {
	Name     string  `json:"name"`
	Quantity float64 `json:"quantity"`
	Unit     string  `json:"unit"`
}

// Recipe is the ephemeral result shape of a recipe search. It is never
// persisted; it only travels from the provider to the caller.
type Recipe struct {
	Title        string       `json:"title"`
	Instructions string       `json:"instructions"`
	Ingredients  []Ingredient `json:"ingredients"`
}
