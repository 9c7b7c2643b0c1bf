package synth

var searchPhrases = []string{
	"python tutorial",
	"data science",
	"machine learning",
	"artificial intelligence",
	"web development",
	"cloud computing",
	"database design",
	"snowflake tutorial",
	"sql queries",
	"data analytics",
	"big data",
	"data warehouse",
	"business intelligence",
	"data visualization",
	"pandas dataframe",
	"numpy arrays",
	"deep learning",
	"neural networks",
	"natural language processing",
	"computer vision",
	"api development",
	"microservices",
	"docker containers",
	"kubernetes",
	"devops practices",
	"agile methodology",
	"project management",
	"software engineering",
	"code review",
	"unit testing",
	// hits that did not come from a search
	"",
	"",
	"",
}

var titles = []string{
	"Home Page",
	"Product Catalog",
	"About Us",
	"Contact Information",
	"User Dashboard",
	"Account Settings",
	"Blog Post - Tech News",
	"Tutorial: Getting Started",
	"Documentation",
	"FAQ - Frequently Asked Questions",
	"Search Results",
	"Shopping Cart",
	"Checkout Page",
	"Order Confirmation",
	"Customer Reviews",
	"Product Details",
	"Privacy Policy",
	"Terms of Service",
	"Help Center",
	"Support Portal",
	"News and Updates",
	"Community Forum",
	"Events Calendar",
	"Pricing Plans",
	"Features Overview",
	"Case Studies",
	"Testimonials",
	"Partners Page",
	"Careers",
	"Press Releases",
}

// 0 means no search engine, 1-5 are distinct engines.
var searchEngineIDs = []int{0, 1, 2, 3, 4, 5}

var resolutionWidths = []int{1920, 1366, 1440, 1536, 1280, 1024, 768, 2560, 3840}
