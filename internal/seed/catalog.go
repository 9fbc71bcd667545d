package seed

import "github.com/joshua-takyi/localserve/internal/models"

// CatalogEntry is one provider in the fixed bootstrap catalog. Email,
// password, distance and ETA are filled in when the catalog is seeded.
type CatalogEntry struct {
	Name      string
	Service   string
	Rating    float64
	Reviews   int
	PriceFrom float64
	Budget    models.BudgetLevel
	Lat       float64
	Lng       float64
}

// Catalog is the fixed provider set inserted on a cold start: eight
// providers for each of six service categories, positioned around
// Bengaluru neighbourhoods.
var Catalog = []CatalogEntry{
	// Electricians
	{Name: "Ravi Kumar", Service: "Electrician", Rating: 4.8, Reviews: 120, PriceFrom: 350, Budget: models.BudgetLow, Lat: 12.9716, Lng: 77.5946},
	{Name: "PowerFix Pros", Service: "Electrician", Rating: 4.2, Reviews: 45, PriceFrom: 600, Budget: models.BudgetMedium, Lat: 12.9352, Lng: 77.6245},
	{Name: "Volt Masters", Service: "Electrician", Rating: 4.9, Reviews: 200, PriceFrom: 800, Budget: models.BudgetHigh, Lat: 12.9784, Lng: 77.6408},
	{Name: "Suresh Electric", Service: "Electrician", Rating: 3.9, Reviews: 12, PriceFrom: 250, Budget: models.BudgetLow, Lat: 13.0285, Lng: 77.5460},
	{Name: "Bright Sparks", Service: "Electrician", Rating: 4.5, Reviews: 88, PriceFrom: 450, Budget: models.BudgetMedium, Lat: 12.9279, Lng: 77.6271},
	{Name: "Current Care", Service: "Electrician", Rating: 4.7, Reviews: 150, PriceFrom: 300, Budget: models.BudgetLow, Lat: 12.9915, Lng: 77.5703},
	{Name: "Home Energy Solutions", Service: "Electrician", Rating: 4.1, Reviews: 30, PriceFrom: 1200, Budget: models.BudgetHigh, Lat: 12.9698, Lng: 77.7500},
	{Name: "Wire Works", Service: "Electrician", Rating: 4.3, Reviews: 55, PriceFrom: 500, Budget: models.BudgetMedium, Lat: 12.8452, Lng: 77.6602},

	// Plumbers
	{Name: "Anita Sharma", Service: "Plumber", Rating: 4.9, Reviews: 85, PriceFrom: 400, Budget: models.BudgetMedium, Lat: 12.9250, Lng: 77.5468},
	{Name: "Leak Stoppers", Service: "Plumber", Rating: 4.5, Reviews: 60, PriceFrom: 300, Budget: models.BudgetLow, Lat: 12.9592, Lng: 77.6974},
	{Name: "Quick Pipe Fix", Service: "Plumber", Rating: 4.0, Reviews: 22, PriceFrom: 450, Budget: models.BudgetMedium, Lat: 13.0358, Lng: 77.5970},
	{Name: "Flow Master", Service: "Plumber", Rating: 4.8, Reviews: 110, PriceFrom: 900, Budget: models.BudgetHigh, Lat: 12.9081, Lng: 77.6476},
	{Name: "Tap Tech", Service: "Plumber", Rating: 3.8, Reviews: 15, PriceFrom: 250, Budget: models.BudgetLow, Lat: 12.9719, Lng: 77.6412},
	{Name: "Water Works", Service: "Plumber", Rating: 4.6, Reviews: 95, PriceFrom: 550, Budget: models.BudgetMedium, Lat: 12.9345, Lng: 77.6101},
	{Name: "Drain Doctor", Service: "Plumber", Rating: 4.9, Reviews: 300, PriceFrom: 1500, Budget: models.BudgetHigh, Lat: 13.0068, Lng: 77.5813},
	{Name: "City Plumbers", Service: "Plumber", Rating: 4.2, Reviews: 40, PriceFrom: 350, Budget: models.BudgetLow, Lat: 12.8399, Lng: 77.6770},

	// Drivers
	{Name: "Vikas Singh", Service: "Driver", Rating: 4.7, Reviews: 60, PriceFrom: 250, Budget: models.BudgetLow, Lat: 12.9141, Lng: 77.6189},
	{Name: "Safe Drive", Service: "Driver", Rating: 4.6, Reviews: 150, PriceFrom: 500, Budget: models.BudgetMedium, Lat: 12.9165, Lng: 77.5929},
	{Name: "City Cabs", Service: "Driver", Rating: 4.1, Reviews: 30, PriceFrom: 800, Budget: models.BudgetHigh, Lat: 12.9600, Lng: 77.5600},
	{Name: "Go Pilot", Service: "Driver", Rating: 4.8, Reviews: 200, PriceFrom: 300, Budget: models.BudgetLow, Lat: 13.0100, Lng: 77.5500},
	{Name: "Road King", Service: "Driver", Rating: 4.3, Reviews: 45, PriceFrom: 600, Budget: models.BudgetMedium, Lat: 12.9500, Lng: 77.7000},
	{Name: "Smooth Ride", Service: "Driver", Rating: 4.9, Reviews: 12, PriceFrom: 1000, Budget: models.BudgetHigh, Lat: 12.9800, Lng: 77.6000},
	{Name: "Urban Drive", Service: "Driver", Rating: 4.4, Reviews: 78, PriceFrom: 400, Budget: models.BudgetMedium, Lat: 12.8900, Lng: 77.5700},
	{Name: "Trusty Wheels", Service: "Driver", Rating: 4.0, Reviews: 25, PriceFrom: 200, Budget: models.BudgetLow, Lat: 13.0500, Lng: 77.6000},

	// Carpenters
	{Name: "Meena Crafts", Service: "Carpenter", Rating: 4.5, Reviews: 15, PriceFrom: 500, Budget: models.BudgetHigh, Lat: 12.9850, Lng: 77.5300},
	{Name: "Wood Works", Service: "Carpenter", Rating: 4.3, Reviews: 40, PriceFrom: 350, Budget: models.BudgetMedium, Lat: 12.9400, Lng: 77.5600},
	{Name: "Timber Tech", Service: "Carpenter", Rating: 4.8, Reviews: 110, PriceFrom: 1200, Budget: models.BudgetHigh, Lat: 12.9200, Lng: 77.6600},
	{Name: "Furniture Fix", Service: "Carpenter", Rating: 4.1, Reviews: 20, PriceFrom: 250, Budget: models.BudgetLow, Lat: 12.9900, Lng: 77.6800},
	{Name: "Crafty Hands", Service: "Carpenter", Rating: 4.6, Reviews: 65, PriceFrom: 600, Budget: models.BudgetMedium, Lat: 12.9600, Lng: 77.6400},
	{Name: "Wood World", Service: "Carpenter", Rating: 3.9, Reviews: 10, PriceFrom: 200, Budget: models.BudgetLow, Lat: 12.8700, Lng: 77.5500},
	{Name: "Carve It", Service: "Carpenter", Rating: 4.7, Reviews: 90, PriceFrom: 800, Budget: models.BudgetMedium, Lat: 13.0800, Lng: 77.5800},
	{Name: "Ply Master", Service: "Carpenter", Rating: 4.4, Reviews: 35, PriceFrom: 450, Budget: models.BudgetMedium, Lat: 12.9300, Lng: 77.5200},

	// Painters
	{Name: "Color Home", Service: "Painter", Rating: 4.8, Reviews: 90, PriceFrom: 1200, Budget: models.BudgetMedium, Lat: 12.9100, Lng: 77.6000},
	{Name: "Royal Paints", Service: "Painter", Rating: 5.0, Reviews: 10, PriceFrom: 2500, Budget: models.BudgetHigh, Lat: 13.0200, Lng: 77.6300},
	{Name: "Wall Artistry", Service: "Painter", Rating: 4.2, Reviews: 50, PriceFrom: 800, Budget: models.BudgetLow, Lat: 12.9000, Lng: 77.6500},
	{Name: "Fresh Coat", Service: "Painter", Rating: 4.6, Reviews: 130, PriceFrom: 1500, Budget: models.BudgetMedium, Lat: 12.9500, Lng: 77.5900},
	{Name: "Bright Walls", Service: "Painter", Rating: 4.0, Reviews: 20, PriceFrom: 600, Budget: models.BudgetLow, Lat: 12.8800, Lng: 77.6200},
	{Name: "Color Clap", Service: "Painter", Rating: 4.9, Reviews: 200, PriceFrom: 3000, Budget: models.BudgetHigh, Lat: 12.9700, Lng: 77.7000},
	{Name: "Dream Walls", Service: "Painter", Rating: 4.4, Reviews: 75, PriceFrom: 1000, Budget: models.BudgetMedium, Lat: 13.0600, Lng: 77.5200},
	{Name: "Paint Pro", Service: "Painter", Rating: 4.5, Reviews: 60, PriceFrom: 1100, Budget: models.BudgetMedium, Lat: 12.9400, Lng: 77.7200},

	// Cleaners
	{Name: "Deep Clean Co", Service: "Cleaner", Rating: 4.4, Reviews: 110, PriceFrom: 600, Budget: models.BudgetLow, Lat: 12.9600, Lng: 77.6100},
	{Name: "Spotless Services", Service: "Cleaner", Rating: 4.9, Reviews: 230, PriceFrom: 900, Budget: models.BudgetMedium, Lat: 12.9900, Lng: 77.6000},
	{Name: "Shine On", Service: "Cleaner", Rating: 4.2, Reviews: 40, PriceFrom: 500, Budget: models.BudgetLow, Lat: 12.9300, Lng: 77.5700},
	{Name: "Dust Busters", Service: "Cleaner", Rating: 4.7, Reviews: 90, PriceFrom: 1500, Budget: models.BudgetHigh, Lat: 13.0400, Lng: 77.6200},
	{Name: "Home Glow", Service: "Cleaner", Rating: 4.5, Reviews: 150, PriceFrom: 1200, Budget: models.BudgetMedium, Lat: 12.9500, Lng: 77.5000},
	{Name: "Clean Sweep", Service: "Cleaner", Rating: 4.0, Reviews: 25, PriceFrom: 400, Budget: models.BudgetLow, Lat: 12.8600, Lng: 77.6600},
	{Name: "Sparkle Squad", Service: "Cleaner", Rating: 4.8, Reviews: 180, PriceFrom: 2000, Budget: models.BudgetHigh, Lat: 12.9200, Lng: 77.6800},
	{Name: "Tidy Up", Service: "Cleaner", Rating: 4.3, Reviews: 55, PriceFrom: 800, Budget: models.BudgetMedium, Lat: 13.0100, Lng: 77.5300},
}
