package goquery

// SiteProfiles returns a fresh copy of every built-in publisher profile in
// dispatch order.
func SiteProfiles() []*Profile {
	return []*Profile{
		AllRecipes(),
		DamnDelicious(),
		Epicurious(),
		FoodCom(),
		LoveAndLemons(),
		SeriousEats(),
		SimplyRecipes(),
		SpruceEats(),
		TasteOfHome(),
		Yummly(),
	}
}

// commonCategories are scanned on every publisher that tags quick or easy
// recipes in its copy.
var commonCategories = []string{"quick", "easy", "healthy"}

func categories(extra ...string) []string {
	return append(append([]string{}, commonCategories...), extra...)
}
