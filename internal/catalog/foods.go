package catalog

import "github.com/alexvk/mealtrack/internal/model"

var builtinFoods = []model.CatalogFood{
	{ID: "1", Name: "Boiled Egg", Calories: 78, ProteinG: 6, CarbsG: 0.6, FatG: 5, Unit: "1 large", GramsPerUnit: 50, Image: "https://images.unsplash.com/photo-1482049016688-2d3e1b311543?w=150&q=80"},
	{ID: "2", Name: "Chicken Breast", Calories: 165, ProteinG: 31, CarbsG: 0, FatG: 3.6, Unit: "100g", GramsPerUnit: 100, Image: "https://images.unsplash.com/photo-1604908176997-125f25cc6f3d?w=150&q=80"},
	{ID: "3", Name: "Oatmeal", Calories: 150, ProteinG: 5, CarbsG: 27, FatG: 3, Unit: "1 cup cooked", GramsPerUnit: 234, Image: "https://images.unsplash.com/photo-1517673132405-a56a62b18caf?w=150&q=80"},
	{ID: "4", Name: "Banana", Calories: 105, ProteinG: 1.3, CarbsG: 27, FatG: 0.3, Unit: "1 medium", GramsPerUnit: 118, Image: "https://images.unsplash.com/photo-1571771896331-1041621c310f?w=150&q=80"},
	{ID: "5", Name: "Rice (White)", Calories: 130, ProteinG: 2.7, CarbsG: 28, FatG: 0.3, Unit: "100g", GramsPerUnit: 100, Image: "https://images.unsplash.com/photo-1516684732162-798a0062be99?w=150&q=80"},
	{ID: "6", Name: "Avocado", Calories: 160, ProteinG: 2, CarbsG: 8.5, FatG: 15, Unit: "1/2 fruit", GramsPerUnit: 100, Image: "https://images.unsplash.com/photo-1523049673856-4287bf676329?w=150&q=80"},
	{ID: "7", Name: "Salmon Fillet", Calories: 208, ProteinG: 20, CarbsG: 0, FatG: 13, Unit: "100g", GramsPerUnit: 100, Image: "https://images.unsplash.com/photo-1599084993091-1cb5c0721cc6?w=150&q=80"},
	{ID: "8", Name: "Greek Yogurt", Calories: 100, ProteinG: 10, CarbsG: 3.6, FatG: 0, Unit: "1 cup", GramsPerUnit: 245, Image: "https://images.unsplash.com/photo-1488477181946-6428a0291777?w=150&q=80"},
	{ID: "9", Name: "Almonds", Calories: 164, ProteinG: 6, CarbsG: 6, FatG: 14, Unit: "1 oz", GramsPerUnit: 28, Image: "https://images.unsplash.com/photo-1508061253366-f7da158b6d61?w=150&q=80"},
	{ID: "10", Name: "Apple", Calories: 95, ProteinG: 0.5, CarbsG: 25, FatG: 0.3, Unit: "1 medium", GramsPerUnit: 182, Image: "https://images.unsplash.com/photo-1560806887-1e4cd0b6cbd6?w=150&q=80"},
	{ID: "11", Name: "Whole Wheat Bread", Calories: 80, ProteinG: 4, CarbsG: 13, FatG: 1, Unit: "1 slice", GramsPerUnit: 43, Image: "https://images.unsplash.com/photo-1509440159596-0249088772ff?w=150&q=80"},
	{ID: "12", Name: "Peanut Butter", Calories: 190, ProteinG: 8, CarbsG: 6, FatG: 16, Unit: "2 tbsp", GramsPerUnit: 32, Image: "https://images.unsplash.com/photo-1514660882326-89c09641753b?w=150&q=80"},
	{ID: "13", Name: "Caesar Salad", Calories: 350, ProteinG: 12, CarbsG: 15, FatG: 28, Unit: "1 bowl", GramsPerUnit: 300, Image: "https://images.unsplash.com/photo-1550304943-4f24f54ddde9?w=150&q=80"},
	{ID: "14", Name: "Protein Shake", Calories: 120, ProteinG: 25, CarbsG: 3, FatG: 1, Unit: "1 scoop", GramsPerUnit: 30, Image: "https://images.unsplash.com/photo-1593095948071-474c5cc2989d?w=150&q=80"},
	{ID: "15", Name: "Sweet Potato", Calories: 112, ProteinG: 2, CarbsG: 26, FatG: 0.1, Unit: "1 medium", GramsPerUnit: 130, Image: "https://images.unsplash.com/photo-1596097635121-14b63b8a66cf?w=150&q=80"},
}

// Foods returns a copy of the built-in food catalog.
func Foods() []model.CatalogFood {
	out := make([]model.CatalogFood, len(builtinFoods))
	copy(out, builtinFoods)
	return out
}
