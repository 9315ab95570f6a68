package catalog

// Built-in tables used whenever the remote catalog cannot be reached. They
// cover the subset of states and vendors the application ships with.

var fallbackStates = []string{
	"Andhra Pradesh", "Karnataka", "Maharashtra", "Tamil Nadu", "Gujarat",
	"Rajasthan", "West Bengal", "Uttar Pradesh", "Telangana", "Kerala",
	"Punjab", "Haryana", "Delhi",
}

var fallbackCitiesByState = map[string][]string{
	"Maharashtra":    {"Mumbai", "Pune", "Nagpur"},
	"Karnataka":      {"Bengaluru", "Mysuru", "Mangaluru"},
	"Tamil Nadu":     {"Chennai", "Coimbatore", "Madurai"},
	"Gujarat":        {"Ahmedabad", "Surat", "Vadodara"},
	"Delhi":          {"Delhi"},
	"Andhra Pradesh": {"Visakhapatnam", "Vijayawada", "Guntur"},
	"Rajasthan":      {"Jaipur"},
	"West Bengal":    {"Kolkata", "Siliguri", "Durgapur"},
	"Uttar Pradesh":  {"Lucknow", "Kanpur", "Agra"},
	"Telangana":      {"Hyderabad", "Warangal"},
	"Kerala":         {"Thiruvananthapuram", "Kochi", "Kozhikode"},
	"Punjab":         {"Amritsar", "Ludhiana"},
	"Haryana":        {"Gurugram", "Faridabad"},
}

var fallbackVendors = []Vendor{
	{ID: "catering-1", Name: "Royal Feast Catering", Category: "Catering"},
	{ID: "catering-2", Name: "Spice Garden Caterers", Category: "Catering"},
	{ID: "photo-1", Name: "Moments Photography", Category: "Photography"},
	{ID: "photo-2", Name: "Candid Frames Studio", Category: "Photography"},
	{ID: "decor-1", Name: "Floral Dreams Decor", Category: "Decoration"},
	{ID: "decor-2", Name: "Elegant Events Decor", Category: "Decoration"},
	{ID: "music-1", Name: "Rhythm Live Band", Category: "Entertainment"},
	{ID: "music-2", Name: "DJ Nightpulse", Category: "Entertainment"},
	{ID: "beauty-1", Name: "Glow Bridal Studio", Category: "Beauty"},
	{ID: "security-1", Name: "SafeGuard Services", Category: "Security"},
}

// Organizers is the fixed list of full-service planning profiles offered as
// an alternative to picking individual vendors.
var Organizers = []Organizer{
	{ID: "1", Name: "Elite Event Organizers", Rating: 4.8, Experience: "10+ years"},
	{ID: "2", Name: "Premium Party Planners", Rating: 4.7, Experience: "8+ years"},
	{ID: "3", Name: "Royal Event Management", Rating: 4.9, Experience: "12+ years"},
	{ID: "4", Name: "Creative Celebrations", Rating: 4.6, Experience: "6+ years"},
}

// OrganizerByID resolves one of the fixed organizer profile ids.
func OrganizerByID(id string) (Organizer, bool) {
	for _, organizer := range Organizers {
		if organizer.ID == id {
			return organizer, true
		}
	}
	return Organizer{}, false
}
