package properties

import "slices"

// Item is a property reconciled across versions. The field order is the
// key order of the generated data file; JSON and YAML use the same keys.
type Item struct {
	Versions    []Version `json:"versions" yaml:"versions"`
	ParentType  string    `json:"Parent Type" yaml:"Parent Type"`
	Property    string    `json:"Property" yaml:"Property"`
	Type        string    `json:"Type" yaml:"Type"`
	Description string    `json:"Description" yaml:"Description"`
}

// NewItem creates an item from a row, tagged with the row's version only.
func NewItem(row Row) *Item {
	return &Item{
		Versions:    []Version{row.Version},
		ParentType:  row.ParentType,
		Property:    row.Property,
		Type:        row.Type,
		Description: row.Description,
	}
}

// Key returns the (Parent Type, Property) pair of the item.
func (i *Item) Key() Key {
	return Key{ParentType: i.ParentType, Property: i.Property}
}

// Matches reports whether the row carries exactly the item's field values.
func (i *Item) Matches(row Row) bool {
	return i.ParentType == row.ParentType &&
		i.Property == row.Property &&
		i.Type == row.Type &&
		i.Description == row.Description
}

// HasVersion reports whether v is already recorded on the item.
func (i *Item) HasVersion(v Version) bool {
	return slices.Contains(i.Versions, v)
}

// AddVersion records v if it is not present yet and reports whether it was added.
func (i *Item) AddVersion(v Version) bool {
	if i.HasVersion(v) {
		return false
	}
	i.Versions = append(i.Versions, v)
	return true
}
