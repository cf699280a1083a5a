package seeder

type SeedConfig struct {
	Count    int        // Products to generate
	Batch    int        // Rows per insert statement and transaction
	RandSeed int64      // 0 seeds from the clock
	Truncate bool       // Clear tables before seeding
	Tables   TableNames // Target table names
}

type TableNames struct {
	Products string
	Images   string
	Variants string
}

// DefaultTableNames matches the clothing store schema.
func DefaultTableNames() TableNames {
	return TableNames{
		Products: "Products",
		Images:   "Product_Images",
		Variants: "Product_Variants",
	}
}

type TableInfo struct {
	Name         string
	PrimaryKey   string
	Columns      []string
	Dependencies []string
}

type Product struct {
	Name        string
	Category    string
	ImageURL    string
	Description string
}

type ProductImage struct {
	ProductID int64
	ImageURL  string
}

type ProductVariant struct {
	ProductID int64
	Size      string
	Color     string
	Stock     int
	Price     float64
}

var (
	productColumns = []string{"product_name", "category", "image_url", "description"}
	imageColumns   = []string{"product_id", "image_url"}
	variantColumns = []string{"product_id", "size", "color", "stock", "price"}
)

func (p Product) Row() []interface{} {
	return []interface{}{p.Name, p.Category, p.ImageURL, p.Description}
}

func (i ProductImage) Row() []interface{} {
	return []interface{}{i.ProductID, i.ImageURL}
}

func (v ProductVariant) Row() []interface{} {
	return []interface{}{v.ProductID, v.Size, v.Color, v.Stock, v.Price}
}

// Summary counts the rows written by one run.
type Summary struct {
	Products int
	Images   int
	Variants int
}

type rower interface {
	Row() []interface{}
}

func toRows[T rower](records []T) [][]interface{} {
	rows := make([][]interface{}, len(records))
	for i, r := range records {
		rows[i] = r.Row()
	}
	return rows
}
