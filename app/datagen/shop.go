package datagen

import "fmt"

// ShopItem is one store product.
type ShopItem struct {
	ProductID      string  `json:"product_id"`
	Name           string  `json:"name"`
	Price          float64 `json:"price"`
	Category       string  `json:"category"`
	Description    string  `json:"description"`
	ImageURL       string  `json:"image_url"`
	InventoryCount int     `json:"inventory_count"`
	Ratings        float64 `json:"ratings"`
	SoldCount      int     `json:"sold_count"`
}

var shopItemColumns = []Column{
	{Name: "product_id", Kind: KindString},
	{Name: "name", Kind: KindString},
	{Name: "price", Kind: KindFloat},
	{Name: "category", Kind: KindString},
	{Name: "description", Kind: KindString},
	{Name: "image_url", Kind: KindString},
	{Name: "inventory_count", Kind: KindInt},
	{Name: "ratings", Kind: KindFloat},
	{Name: "sold_count", Kind: KindInt},
}

func buildShopItems(seq *Sequence) []ShopItem {
	items := make([]ShopItem, NumShopItems)
	for i := range items {
		items[i] = ShopItem{
			ProductID:      fmt.Sprintf("PROD_%05d", i+1),
			Name:           fmt.Sprintf("%s %s", seq.Pick(productKinds), titleWord(seq.Word())),
			Price:          Round2(seq.FloatBetween(10, 200)),
			Category:       seq.Pick(productCategories),
			Description:    seq.Sentence(),
			ImageURL:       fmt.Sprintf("https://sportsphere.com/products/%d.png", i+1),
			InventoryCount: seq.IntBetween(0, 1000),
			Ratings:        Round1(seq.FloatBetween(1, 5)),
			SoldCount:      seq.IntBetween(0, 500),
		}
	}
	return items
}

func shopItemsTable(items []ShopItem) *Table {
	t := newTable(TableShopItems, shopItemColumns, len(items))
	for _, s := range items {
		t.appendRow(Row{
			s.ProductID, s.Name, s.Price, s.Category, s.Description,
			s.ImageURL, s.InventoryCount, s.Ratings, s.SoldCount,
		})
	}
	return t
}
