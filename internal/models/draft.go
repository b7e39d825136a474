package models

// Draft holds the unsent packing list of one supplier access token.
type Draft struct {
	BaseModel
	Token            string            `gorm:"type:varchar(255);not null;uniqueIndex" json:"token"`
	PurchaseName     string            `gorm:"type:varchar(255)" json:"purchase_name"`
	PickingName      string            `gorm:"type:varchar(255)" json:"picking_name"`
	CompanyName      string            `gorm:"type:varchar(255)" json:"company_name"`
	Header           Header            `gorm:"type:text;serializer:json" json:"header"`
	Products         []Product         `gorm:"type:text;serializer:json" json:"products"`
	Rows             []Row             `gorm:"type:text;serializer:json" json:"rows"`
	StagedContainers []StagedContainer `gorm:"type:text;serializer:json" json:"staged_containers"`
	NextID           int               `gorm:"not null;default:1" json:"next_id"`
}

func (d *Draft) FindProduct(id int) *Product {
	for i := range d.Products {
		if d.Products[i].ID == id {
			return &d.Products[i]
		}
	}
	return nil
}

func (d *Draft) FindRow(id int) *Row {
	for i := range d.Rows {
		if d.Rows[i].ID == id {
			return &d.Rows[i]
		}
	}
	return nil
}
