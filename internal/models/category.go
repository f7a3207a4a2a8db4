package models

// Spending categories for parsed expense records
const (
	CategoryFoodDining     = "Food & Dining"
	CategoryGrocery        = "Grocery"
	CategoryHousingRent    = "Housing & Rent"
	CategoryTransport      = "Transport"
	CategoryTravel         = "Travel"
	CategoryShopping       = "Shopping"
	CategoryHealth         = "Health"
	CategoryPersonalCare   = "Personal Care"
	CategoryEducation      = "Education"
	CategoryInvestments    = "Investments"
	CategoryPets           = "Pets"
	CategoryEntertainment  = "Entertainment"
	CategoryGiftsDonations = "Gifts & Donations"
	CategoryOther          = "Other"
)

// CategoryKeywords binds a category label to its lowercase keyword triggers.
// Keyword order within a category and category order within the table are
// both part of the matching contract: keyword sets overlap and the first
// category whose keyword appears in the text wins.
type CategoryKeywords struct {
	Category string
	Keywords []string
}

// CategoryTable returns the ordered keyword table used for categorization.
// The table is built once at service construction and never mutated.
func CategoryTable() []CategoryKeywords {
	return []CategoryKeywords{
		{CategoryFoodDining, []string{
			"biryani", "pizza", "burger", "sandwich", "pasta", "noodles", "momo", "thali",
			"biriyani", "dosa", "idli", "pav bhaji", "maggi", "roll", "shawarma", "wrap",
			"ice cream", "cake", "pastry", "dessert", "coffee", "tea", "juice", "smoothie",
			"milkshake", "biryani house", "barbecue", "kebab", "tikka", "restaurant", "cafe",
			"canteen", "dining", "buffet", "meal", "zomato", "swiggy", "dominos", "pizza hut",
			"domino's", "mcdonald's", "mcdonald", "kfc", "subway", "burger king", "starbucks",
			"barista", "99 pancakes", "chicken tandoori", "hocco", "apple", "bikanervala",
			"haldiram", "cafe coffee day", "baskin robbins", "food",
		}},
		{CategoryGrocery, []string{
			"rice", "wheat", "dal", "pulses", "sugar", "salt", "milk", "bread", "butter",
			"oil", "tea powder", "coffee powder", "vegetables", "fruits", "tomato", "potato",
			"onion", "cabbage", "spinach", "coriander", "lemon", "masala", "atta", "besan",
			"poha", "suji", "jaggery", "eggs", "meat", "fish", "chicken", "mutton", "prawns",
			"spices", "detergent", "soap", "toothpaste", "grocery", "bigbasket", "dmart",
			"d mart", "reliance fresh", "more supermarket", "nature's basket", "spencer's",
			"jiomart", "kirana", "store",
		}},
		{CategoryHousingRent, []string{
			"rent", "maintenance", "electricity bill", "water bill", "gas bill", "broadband",
			"wifi", "internet", "cable", "dth", "landline", "house help", "maid", "cook",
			"sweeper", "garbage", "property tax", "repairs", "plumber", "electrician",
			"carpenter",
		}},
		{CategoryTransport, []string{
			"taxi", "cab", "auto", "bus", "train", "metro", "tram", "ferry", "fuel",
			"petrol", "diesel", "cng", "parking", "toll", "ticket", "pass", "travel card",
			"ola", "uber", "rapido", "blablacar", "redbus", "irctc", "transport",
		}},
		{CategoryTravel, []string{
			"flight", "airline", "airfare", "hotel", "resort", "stay", "booking", "trip",
			"tour", "vacation", "visa", "passport", "makemytrip", "goibibo", "cleartrip",
			"airbnb", "oyo", "luggage",
		}},
		{CategoryShopping, []string{
			"shirt", "jeans", "t-shirt", "tshirt", "trousers", "kurta", "saree", "dress",
			"shoes", "sandals", "chappal", "watch", "wallet", "handbag", "purse", "belt",
			"accessories", "jacket", "coat", "sweater", "hoodie", "spectacles", "sunglasses",
			"electronics", "phone", "laptop", "charger", "earphones", "headphones", "camera",
			"mall", "boutique", "apparel", "amazon", "flipkart", "myntra", "ajio", "meesho",
			"snapdeal", "shopclues", "tatacliq", "h&m", "zara", "nike", "adidas", "puma",
			"reebok", "lifestyle", "shopping", "clothes", "fabric", "bag", "backpack",
		}},
		{CategoryHealth, []string{
			"doctor", "hospital", "clinic", "pharmacy", "chemist", "medicine", "injection",
			"vaccine", "blood test", "sugar test", "x-ray", "scan", "ct scan", "mri",
			"consultation", "surgery", "therapy", "physiotherapy", "dentist", "dental",
			"ayurvedic", "homeopathy", "optician", "hearing aid", "apollo pharmacy",
			"medplus", "pharmeasy", "1mg", "netmeds", "practo", "medical",
		}},
		{CategoryPersonalCare, []string{
			"salon", "spa", "haircut", "hair wash", "shaving", "trimming", "beard",
			"hair color", "facial", "manicure", "pedicure", "beauty", "makeup", "wax",
			"threading", "perfume", "deodorant", "lotion", "shampoo", "conditioner",
			"body wash", "soap", "comb", "mirror", "towel", "grooming kit", "nykaa",
			"purplle", "wow skin", "beardo", "mcaffeine", "urban company", "jawed habib",
		}},
		{CategoryEducation, []string{
			"school fees", "tuition", "college fees", "udemy", "coursera", "online course",
			"textbooks", "exam fee", "books", "stationery", "pen", "pencil", "notebook",
			"printing", "photocopy", "school bag", "uniform", "course",
		}},
		{CategoryInvestments, []string{
			"sip", "mutual fund", "stocks", "shares", "equity", "trading", "demat",
			"zerodha", "groww", "upstox", "fixed deposit", "recurring deposit", "gold",
			"silver", "lic", "insurance premium", "ppf", "epf", "nps",
		}},
		{CategoryPets, []string{
			"pet food", "dog food", "cat food", "vet", "veterinary", "vaccination",
			"pedigree", "whiskas", "royal canin", "drools",
		}},
		{CategoryEntertainment, []string{
			"movie", "netflix", "spotify", "concert", "bookmyshow", "hotstar",
			"prime video", "sports match", "stadium", "theatre", "cricket", "football",
			"ipl", "ticket show", "game", "toy",
		}},
		{CategoryGiftsDonations, []string{
			"gift", "charity", "donation", "present", "shagun",
		}},
		{CategoryOther, []string{
			"miscellaneous",
		}},
	}
}

// AllCategories returns every valid category label in table order.
func AllCategories() []string {
	table := CategoryTable()
	categories := make([]string, 0, len(table))
	for _, entry := range table {
		categories = append(categories, entry.Category)
	}
	return categories
}

// IsValidCategory checks if a category label is part of the fixed enumeration.
func IsValidCategory(category string) bool {
	for _, valid := range AllCategories() {
		if category == valid {
			return true
		}
	}
	return false
}
