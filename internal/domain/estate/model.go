package estate

// Association pointers exist only so the schema carries real foreign key
// constraints. They are never preloaded and stay nil on every read.
// Deletes use the default NO ACTION rule: sqlite reports that as a plain
// foreign key failure, which the driver translates. RESTRICT would surface as
// an untranslated trigger constraint error.

type Owner struct {
	ID          int64  `gorm:"primaryKey"`
	FirstName   string `gorm:"not null"`
	LastName    string `gorm:"not null"`
	PhoneNumber string `gorm:"not null;uniqueIndex"`
}

func (Owner) TableName() string { return "owners" }

type City struct {
	ID   int64  `gorm:"primaryKey"`
	Name string `gorm:"not null;uniqueIndex"`
}

func (City) TableName() string { return "cities" }

type Address struct {
	ID            int64  `gorm:"primaryKey"`
	StreetAddress string `gorm:"not null"`
	PostalCode    string `gorm:"not null"`
	CityID        int64  `gorm:"not null;index"`

	City *City `gorm:"foreignKey:CityID;references:ID;constraint:OnUpdate:CASCADE"`
}

func (Address) TableName() string { return "addresses" }

// AddressDetail is an address joined with its city name.
type AddressDetail struct {
	ID            int64
	StreetAddress string
	PostalCode    string
	CityID        int64
	CityName      string
}

type Property struct {
	ID             int64   `gorm:"primaryKey"`
	OwnerID        int64   `gorm:"not null;index"`
	AddressID      int64   `gorm:"not null;uniqueIndex"`
	AreaSqm        float64 `gorm:"not null"`
	RegistryNumber string  `gorm:"not null;uniqueIndex"`

	Owner   *Owner   `gorm:"foreignKey:OwnerID;references:ID;constraint:OnUpdate:CASCADE"`
	Address *Address `gorm:"foreignKey:AddressID;references:ID;constraint:OnUpdate:CASCADE"`
}

func (Property) TableName() string { return "properties" }

type Agency struct {
	ID          int64  `gorm:"primaryKey"`
	Name        string `gorm:"not null"`
	CompanyCode string `gorm:"not null;uniqueIndex"`
}

func (Agency) TableName() string { return "agencies" }

type Listing struct {
	ID          int64 `gorm:"primaryKey"`
	PropertyID  int64 `gorm:"not null;index"`
	AgencyID    int64 `gorm:"not null;index"`
	SalePrice   *float64
	RentalPrice *float64

	Property *Property `gorm:"foreignKey:PropertyID;references:ID;constraint:OnUpdate:CASCADE"`
	Agency   *Agency   `gorm:"foreignKey:AgencyID;references:ID;constraint:OnUpdate:CASCADE"`
}

func (Listing) TableName() string { return "listings" }

// Models lists every table in dependency order.
func Models() []any {
	return []any{&Owner{}, &City{}, &Address{}, &Property{}, &Agency{}, &Listing{}}
}

type NewOwner struct {
	FirstName   string
	LastName    string
	PhoneNumber string
}

type NewProperty struct {
	OwnerID        int64
	StreetAddress  string
	PostalCode     string
	City           string
	AreaSqm        float64
	RegistryNumber string
}

type NewAgency struct {
	Name        string
	CompanyCode string
}

type NewListing struct {
	PropertyID  int64
	AgencyID    int64
	SalePrice   *float64
	RentalPrice *float64
}

// Patch types: a nil pointer or a blank string keeps the stored value.

type OwnerPatch struct {
	FirstName   *string
	LastName    *string
	PhoneNumber *string
}

type PropertyPatch struct {
	AreaSqm        *float64
	RegistryNumber *string
}

type AddressPatch struct {
	StreetAddress *string
	PostalCode    *string
	City          *string
}

type AgencyPatch struct {
	Name        *string
	CompanyCode *string
}

type CityPatch struct {
	Name *string
}

type ListingPatch struct {
	SalePrice        *float64
	RentalPrice      *float64
	ClearSalePrice   bool
	ClearRentalPrice bool
}
