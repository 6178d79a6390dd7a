//-------------------------------------------------------------------------
//
// pgEdge Retail Dataset Generator
//
// Copyright (c) 2025 - 2026, pgEdge, Inc.
// This software is released under The PostgreSQL License
//
//-------------------------------------------------------------------------

package dims

// Fixed vocabularies for the sports-retail domain. Everything here is
// data, kept in deterministic slice order so builds are reproducible.

var (
	regions       = []string{"North", "Central", "South"}
	regionWeights = []float64{0.20, 0.55, 0.25}

	segments       = []string{"Consumer", "Corporate", "Home"}
	segmentWeights = []float64{0.70, 0.18, 0.12}

	activityLevels  = []string{"Low", "Medium", "High"}
	activityWeights = []float64{0.30, 0.50, 0.20}

	storeTypes       = []string{"Mall", "Street", "Outlet", "Dark Store"}
	storeTypeWeights = []float64{0.35, 0.35, 0.20, 0.10}
)

// categories lists product categories in catalog order; subCategories
// and brands key off them.
var categories = []string{"Running", "Tenis", "Padel", "Fitness"}

var subCategories = map[string][]string{
	"Running": {"Zapatillas Running", "Poleras", "Shorts", "Calcetines", "Relojes GPS", "Accesorios"},
	"Tenis":   {"Raquetas Tenis", "Cuerdas", "Overgrips", "Zapatillas Tenis", "Pelotas Tenis", "Mochilas"},
	"Padel":   {"Palas Padel", "Overgrips", "Pelotas Padel", "Zapatillas Padel", "Protectores", "Bolsos"},
	"Fitness": {"Mancuernas", "Bandas Elasticas", "Colchonetas", "Guantes", "Botellas", "Accesorios"},
}

var brands = map[string][]string{
	"Running": {"Nike", "Adidas", "ASICS", "New Balance", "Saucony", "Under Armour"},
	"Tenis":   {"Wilson", "Babolat", "Head", "Yonex", "Prince"},
	"Padel":   {"Bullpadel", "Nox", "Adidas", "Babolat", "Head", "StarVie"},
	"Fitness": {"Nike", "Adidas", "Reebok", "Under Armour", "Everlast", "Domyos"},
}

// priceRange maps sub-category to its [min, max] unit price in CLP.
var priceRange = map[string][2]float64{
	"Zapatillas Running": {65000, 160000},
	"Zapatillas Tenis":   {70000, 180000},
	"Zapatillas Padel":   {70000, 180000},
	"Raquetas Tenis":     {90000, 280000},
	"Palas Padel":        {90000, 320000},
	"Relojes GPS":        {120000, 450000},
	"Pelotas Tenis":      {7000, 18000},
	"Pelotas Padel":      {7000, 18000},
	"Cuerdas":            {9000, 25000},
	"Overgrips":          {4000, 12000},
	"Mochilas":           {25000, 90000},
	"Bolsos":             {25000, 110000},
	"Poleras":            {12000, 45000},
	"Shorts":             {12000, 45000},
	"Calcetines":         {4000, 15000},
	"Protectores":        {6000, 25000},
	"Accesorios":         {4000, 25000},
	"Mancuernas":         {15000, 120000},
	"Bandas Elasticas":   {4000, 18000},
	"Colchonetas":        {9000, 35000},
	"Guantes":            {8000, 28000},
	"Botellas":           {4000, 18000},
}

const (
	defaultPriceMin = 8000
	defaultPriceMax = 60000
)

// PriceRange returns the [min, max] unit price for a sub-category,
// falling back to a generic band for unknown entries.
func PriceRange(subCategory string) (float64, float64) {
	if r, ok := priceRange[subCategory]; ok {
		return r[0], r[1]
	}
	return defaultPriceMin, defaultPriceMax
}

// productSuffixes decorate generated product names.
var productSuffixes = []string{"Pro", "Elite", "Core", "Sport", "Max", "Lite"}

// topSellerCatalog is seeded ahead of the sampled catalog: a fixed set
// of products every run contains, with deterministic names.
var topSellerCatalog = []struct {
	name, category, subCategory, brand string
}{
	{"Nike Zapatillas Running Pegasus 41", "Running", "Zapatillas Running", "Nike"},
	{"Adidas Zapatillas Running Adizero 4", "Running", "Zapatillas Running", "Adidas"},
	{"ASICS Zapatillas Running Gel-Nimbus 26", "Running", "Zapatillas Running", "ASICS"},
	{"Wilson Pelotas Tenis Tour 3-pack", "Tenis", "Pelotas Tenis", "Wilson"},
	{"Babolat Overgrips VS Original x3", "Tenis", "Overgrips", "Babolat"},
	{"Head Pelotas Padel Pro S", "Padel", "Pelotas Padel", "Head"},
	{"Bullpadel Palas Padel Vertex 04", "Padel", "Palas Padel", "Bullpadel"},
	{"Nike Poleras Dri-FIT Run", "Running", "Poleras", "Nike"},
	{"Adidas Calcetines Cushioned x3", "Running", "Calcetines", "Adidas"},
	{"Reebok Bandas Elasticas Set 3", "Fitness", "Bandas Elasticas", "Reebok"},
}

// consumableSubCategories are bought in multiples; the line generator
// uses a wider quantity distribution for them.
var consumableSubCategories = map[string]bool{
	"Pelotas Tenis":    true,
	"Pelotas Padel":    true,
	"Overgrips":        true,
	"Calcetines":       true,
	"Bandas Elasticas": true,
}

// Consumable reports whether a sub-category is bought in multiples.
func Consumable(subCategory string) bool {
	return consumableSubCategories[subCategory]
}

// premiumBrands carry a price premium on top of the base range.
var premiumBrands = map[string]bool{
	"Nike":    true,
	"Adidas":  true,
	"ASICS":   true,
	"Wilson":  true,
	"Babolat": true,
}

// PremiumBrand reports whether a brand commands a price premium.
func PremiumBrand(brand string) bool {
	return premiumBrands[brand]
}

// geoCity is one row of the fixed LATAM store geography.
type geoCity struct {
	country     string
	adminRegion string
	city        string
	lat, lon    float64
	macroRegion string
}

var geoCities = []geoCity{
	{"Chile", "Metropolitana", "Santiago", -33.4489, -70.6693, "Central"},
	{"Chile", "Valparaíso", "Viña del Mar", -33.0245, -71.5518, "Central"},
	{"Chile", "Biobío", "Concepción", -36.8270, -73.0498, "South"},

	{"Argentina", "Buenos Aires", "Buenos Aires", -34.6037, -58.3816, "Central"},
	{"Argentina", "Córdoba", "Córdoba", -31.4201, -64.1888, "Central"},
	{"Argentina", "Santa Fe", "Rosario", -32.9587, -60.6930, "Central"},

	{"Peru", "Lima", "Lima", -12.0464, -77.0428, "Central"},
	{"Peru", "Arequipa", "Arequipa", -16.4090, -71.5375, "South"},

	{"Colombia", "Bogotá D.C.", "Bogotá", 4.7110, -74.0721, "North"},
	{"Colombia", "Antioquia", "Medellín", 6.2442, -75.5812, "North"},
	{"Colombia", "Valle del Cauca", "Cali", 3.4516, -76.5320, "North"},

	{"Mexico", "CDMX", "Ciudad de México", 19.4326, -99.1332, "North"},
	{"Mexico", "Jalisco", "Guadalajara", 20.6597, -103.3496, "North"},
	{"Mexico", "Nuevo León", "Monterrey", 25.6866, -100.3161, "North"},

	{"Brazil", "São Paulo", "São Paulo", -23.5505, -46.6333, "South"},
	{"Brazil", "Rio de Janeiro", "Rio de Janeiro", -22.9068, -43.1729, "South"},
	{"Brazil", "Minas Gerais", "Belo Horizonte", -19.9167, -43.9345, "South"},
}

var countryWeights = map[string]float64{
	"Chile":     0.28,
	"Argentina": 0.18,
	"Peru":      0.12,
	"Colombia":  0.14,
	"Mexico":    0.16,
	"Brazil":    0.12,
}

const defaultCountryWeight = 0.10
