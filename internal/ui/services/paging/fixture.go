package paging

import "lotview/internal/domain"

// DemoCategories is the category tree served by the demo catalog
func DemoCategories() []domain.Category {
	return []domain.Category{
		{ID: 1, Name: "Electronics", Children: []domain.Category{
			{ID: 11, Name: "Phones"},
			{ID: 12, Name: "Computers", Children: []domain.Category{
				{ID: 121, Name: "Laptops"},
				{ID: 122, Name: "Desktops"},
			}},
			{ID: 13, Name: "Audio"},
		}},
		{ID: 2, Name: "Home", Children: []domain.Category{
			{ID: 21, Name: "Furniture"},
			{ID: 22, Name: "Lighting"},
		}},
		{ID: 3, Name: "Collectibles"},
	}
}

// DemoListings is the listing fixture served by the demo catalog
func DemoListings() []domain.Listing {
	return []domain.Listing{
		{ID: 1, Title: "Smartphone X 128GB", SellerLogin: "alice", SellerID: 1, CategoryID: 11, Price: 420, SaleType: "buynow", Condition: "new"},
		{ID: 2, Title: "Smartphone X case", SellerLogin: "bob", SellerID: 2, CategoryID: 11, Price: 15, SaleType: "buynow", Condition: "new"},
		{ID: 3, Title: "Old flip phone", SellerLogin: "carol", SellerID: 3, CategoryID: 11, Price: 25, SaleType: "auction", Condition: "used"},
		{ID: 4, Title: "Gaming laptop 15in", SellerLogin: "alice", SellerID: 1, CategoryID: 121, Price: 1350, SaleType: "auction", Condition: "used"},
		{ID: 5, Title: "Ultrabook 13in", SellerLogin: "dave", SellerID: 4, CategoryID: 121, Price: 899, SaleType: "buynow", Condition: "new"},
		{ID: 6, Title: "Office desktop tower", SellerLogin: "bob", SellerID: 2, CategoryID: 122, Price: 300, SaleType: "buynow", Condition: "used"},
		{ID: 7, Title: "Wireless headphones", SellerLogin: "carol", SellerID: 3, CategoryID: 13, Price: 79.9, SaleType: "buynow", Condition: "new"},
		{ID: 8, Title: "Vinyl turntable", SellerLogin: "erin", SellerID: 5, CategoryID: 13, Price: 150, SaleType: "auction", Condition: "used"},
		{ID: 9, Title: "Oak dining table", SellerLogin: "frank", SellerID: 6, CategoryID: 21, Price: 480, SaleType: "auction", Condition: "used"},
		{ID: 10, Title: "Desk lamp", SellerLogin: "alice", SellerID: 1, CategoryID: 22, Price: 19.5, SaleType: "buynow", Condition: "new"},
		{ID: 11, Title: "Floor lamp brass", SellerLogin: "erin", SellerID: 5, CategoryID: 22, Price: 65, SaleType: "auction", Condition: "used"},
		{ID: 12, Title: "Stamp album 1950s", SellerLogin: "grace", SellerID: 7, CategoryID: 3, Price: 210, SaleType: "auction", Condition: "used"},
		{ID: 13, Title: "Smartphone Y 64GB", SellerLogin: "dave", SellerID: 4, CategoryID: 11, Price: 199, SaleType: "auction", Condition: "used", Finished: true},
		{ID: 14, Title: "Laptop sleeve", SellerLogin: "bob", SellerID: 2, CategoryID: 121, Price: 12, SaleType: "buynow", Condition: "new", Finished: true},
		{ID: 15, Title: "Bookshelf pine", SellerLogin: "frank", SellerID: 6, CategoryID: 21, Price: 90, SaleType: "buynow", Condition: "used"},
		{ID: 16, Title: "Coin collection", SellerLogin: "grace", SellerID: 7, CategoryID: 3, Price: 560, SaleType: "auction", Condition: "used", Finished: true},
	}
}

// NewDemoCatalog returns a catalog over the demo fixture
func NewDemoCatalog(methodServer, objServer string) *MemoryCatalog {
	return NewMemoryCatalog(methodServer, objServer, DemoListings(), DemoCategories())
}
