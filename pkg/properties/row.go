package properties

// Row is one record of a properties table, tagged with the version of the
// file it was read from.
type Row struct {
	Version     Version
	ParentType  string
	Property    string
	Type        string
	Description string
}

// Key returns the (Parent Type, Property) pair identifying the property the
// row describes.
func (r Row) Key() Key {
	return Key{ParentType: r.ParentType, Property: r.Property}
}

// Key is the semantic identity of a property.
type Key struct {
	ParentType string
	Property   string
}

// Table holds all rows of one version's properties file, in file order.
type Table struct {
	Version Version
	Path    string
	Rows    []Row
}
