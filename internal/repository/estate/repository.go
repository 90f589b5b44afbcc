package estate

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	estatedomain "real-estate-go/internal/domain/estate"
)

type GormRepository struct {
	db *gorm.DB
}

func NewGorm(db *gorm.DB) *GormRepository {
	return &GormRepository{db: db}
}

func (r *GormRepository) Transaction(ctx context.Context, fn func(estatedomain.Repository) error) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&GormRepository{db: tx})
	})
}

func (r *GormRepository) GetOwner(ctx context.Context, id int64) (*estatedomain.Owner, error) {
	var owner estatedomain.Owner
	if err := r.db.WithContext(ctx).First(&owner, id).Error; err != nil {
		return nil, translate(err, estatedomain.ErrOwnerNotFound, nil)
	}
	return &owner, nil
}

func (r *GormRepository) ListOwners(ctx context.Context) ([]estatedomain.Owner, error) {
	var owners []estatedomain.Owner
	if err := r.db.WithContext(ctx).Order("id asc").Find(&owners).Error; err != nil {
		return nil, err
	}
	return owners, nil
}

func (r *GormRepository) CreateOwner(ctx context.Context, owner *estatedomain.Owner) error {
	return translate(r.db.WithContext(ctx).Create(owner).Error, nil, estatedomain.ErrPhoneNumberTaken)
}

func (r *GormRepository) SaveOwner(ctx context.Context, owner *estatedomain.Owner) error {
	return translate(r.db.WithContext(ctx).Save(owner).Error, nil, estatedomain.ErrPhoneNumberTaken)
}

func (r *GormRepository) DeleteOwner(ctx context.Context, id int64) error {
	return translate(r.db.WithContext(ctx).Delete(&estatedomain.Owner{}, id).Error, nil, nil)
}

func (r *GormRepository) GetCity(ctx context.Context, id int64) (*estatedomain.City, error) {
	var city estatedomain.City
	if err := r.db.WithContext(ctx).First(&city, id).Error; err != nil {
		return nil, translate(err, estatedomain.ErrCityNotFound, nil)
	}
	return &city, nil
}

func (r *GormRepository) GetCityByName(ctx context.Context, name string) (*estatedomain.City, error) {
	var city estatedomain.City
	if err := r.db.WithContext(ctx).Where("name = ?", name).First(&city).Error; err != nil {
		return nil, translate(err, estatedomain.ErrCityNotFound, nil)
	}
	return &city, nil
}

func (r *GormRepository) ListCities(ctx context.Context) ([]estatedomain.City, error) {
	var cities []estatedomain.City
	if err := r.db.WithContext(ctx).Order("id asc").Find(&cities).Error; err != nil {
		return nil, err
	}
	return cities, nil
}

func (r *GormRepository) CreateCity(ctx context.Context, city *estatedomain.City) error {
	return translate(r.db.WithContext(ctx).Create(city).Error, nil, estatedomain.ErrCityNameTaken)
}

func (r *GormRepository) SaveCity(ctx context.Context, city *estatedomain.City) error {
	return translate(r.db.WithContext(ctx).Save(city).Error, nil, estatedomain.ErrCityNameTaken)
}

func (r *GormRepository) GetAddress(ctx context.Context, id int64) (*estatedomain.Address, error) {
	var address estatedomain.Address
	if err := r.db.WithContext(ctx).First(&address, id).Error; err != nil {
		return nil, translate(err, estatedomain.ErrAddressNotFound, nil)
	}
	return &address, nil
}

func (r *GormRepository) ListAddressDetails(ctx context.Context) ([]estatedomain.AddressDetail, error) {
	var rows []estatedomain.AddressDetail
	if err := r.db.WithContext(ctx).
		Table("addresses").
		Select("addresses.id, addresses.street_address, addresses.postal_code, addresses.city_id, cities.name AS city_name").
		Joins("join cities on cities.id = addresses.city_id").
		Order("addresses.id asc").
		Scan(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *GormRepository) CreateAddress(ctx context.Context, address *estatedomain.Address) error {
	return translate(r.db.WithContext(ctx).Create(address).Error, nil, nil)
}

func (r *GormRepository) SaveAddress(ctx context.Context, address *estatedomain.Address) error {
	return translate(r.db.WithContext(ctx).Save(address).Error, nil, nil)
}

func (r *GormRepository) DeleteAddress(ctx context.Context, id int64) error {
	return translate(r.db.WithContext(ctx).Delete(&estatedomain.Address{}, id).Error, nil, nil)
}

func (r *GormRepository) GetProperty(ctx context.Context, id int64) (*estatedomain.Property, error) {
	var property estatedomain.Property
	if err := r.db.WithContext(ctx).First(&property, id).Error; err != nil {
		return nil, translate(err, estatedomain.ErrPropertyNotFound, nil)
	}
	return &property, nil
}

func (r *GormRepository) ListProperties(ctx context.Context) ([]estatedomain.Property, error) {
	var properties []estatedomain.Property
	if err := r.db.WithContext(ctx).Order("id asc").Find(&properties).Error; err != nil {
		return nil, err
	}
	return properties, nil
}

func (r *GormRepository) ListPropertiesByOwner(ctx context.Context, ownerID int64) ([]estatedomain.Property, error) {
	var properties []estatedomain.Property
	if err := r.db.WithContext(ctx).
		Where("owner_id = ?", ownerID).
		Order("id asc").
		Find(&properties).Error; err != nil {
		return nil, err
	}
	return properties, nil
}

// Property creation always uses a fresh address, so a duplicate key can only
// be the registry number.
func (r *GormRepository) CreateProperty(ctx context.Context, property *estatedomain.Property) error {
	return translate(r.db.WithContext(ctx).Create(property).Error, nil, estatedomain.ErrRegistryNumberTaken)
}

func (r *GormRepository) SaveProperty(ctx context.Context, property *estatedomain.Property) error {
	return translate(r.db.WithContext(ctx).Save(property).Error, nil, estatedomain.ErrRegistryNumberTaken)
}

func (r *GormRepository) DeleteProperty(ctx context.Context, id int64) error {
	return translate(r.db.WithContext(ctx).Delete(&estatedomain.Property{}, id).Error, nil, nil)
}

func (r *GormRepository) GetAgency(ctx context.Context, id int64) (*estatedomain.Agency, error) {
	var agency estatedomain.Agency
	if err := r.db.WithContext(ctx).First(&agency, id).Error; err != nil {
		return nil, translate(err, estatedomain.ErrAgencyNotFound, nil)
	}
	return &agency, nil
}

func (r *GormRepository) GetAgencyByCode(ctx context.Context, code string) (*estatedomain.Agency, error) {
	var agency estatedomain.Agency
	if err := r.db.WithContext(ctx).Where("company_code = ?", code).First(&agency).Error; err != nil {
		return nil, translate(err, estatedomain.ErrAgencyNotFound, nil)
	}
	return &agency, nil
}

func (r *GormRepository) ListAgencies(ctx context.Context) ([]estatedomain.Agency, error) {
	var agencies []estatedomain.Agency
	if err := r.db.WithContext(ctx).Order("id asc").Find(&agencies).Error; err != nil {
		return nil, err
	}
	return agencies, nil
}

func (r *GormRepository) CreateAgency(ctx context.Context, agency *estatedomain.Agency) error {
	return translate(r.db.WithContext(ctx).Create(agency).Error, nil, estatedomain.ErrCompanyCodeTaken)
}

func (r *GormRepository) SaveAgency(ctx context.Context, agency *estatedomain.Agency) error {
	return translate(r.db.WithContext(ctx).Save(agency).Error, nil, estatedomain.ErrCompanyCodeTaken)
}

func (r *GormRepository) GetListing(ctx context.Context, id int64) (*estatedomain.Listing, error) {
	var listing estatedomain.Listing
	if err := r.db.WithContext(ctx).First(&listing, id).Error; err != nil {
		return nil, translate(err, estatedomain.ErrListingNotFound, nil)
	}
	return &listing, nil
}

func (r *GormRepository) ListListings(ctx context.Context) ([]estatedomain.Listing, error) {
	var listings []estatedomain.Listing
	if err := r.db.WithContext(ctx).Order("id asc").Find(&listings).Error; err != nil {
		return nil, err
	}
	return listings, nil
}

func (r *GormRepository) CreateListing(ctx context.Context, listing *estatedomain.Listing) error {
	return translate(r.db.WithContext(ctx).Create(listing).Error, nil, nil)
}

// SaveListing writes both price columns, so a cleared price is stored as NULL.
func (r *GormRepository) SaveListing(ctx context.Context, listing *estatedomain.Listing) error {
	return translate(r.db.WithContext(ctx).Save(listing).Error, nil, nil)
}

func (r *GormRepository) DeleteListing(ctx context.Context, id int64) error {
	return translate(r.db.WithContext(ctx).Delete(&estatedomain.Listing{}, id).Error, nil, nil)
}

func (r *GormRepository) DeleteListingsByProperty(ctx context.Context, propertyID int64) (int64, error) {
	result := r.db.WithContext(ctx).Where("property_id = ?", propertyID).Delete(&estatedomain.Listing{})
	if result.Error != nil {
		return 0, translate(result.Error, nil, nil)
	}
	return result.RowsAffected, nil
}

// translate maps gorm errors onto domain errors. A nil target leaves that
// class of error untouched.
func translate(err error, notFound, duplicate error) error {
	switch {
	case err == nil:
		return nil
	case notFound != nil && errors.Is(err, gorm.ErrRecordNotFound):
		return notFound
	case duplicate != nil && errors.Is(err, gorm.ErrDuplicatedKey):
		return duplicate
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return fmt.Errorf("%w: %v", estatedomain.ErrConstraintViolation, err)
	case errors.Is(err, gorm.ErrForeignKeyViolated):
		return fmt.Errorf("%w: %v", estatedomain.ErrReferentialIntegrity, err)
	}
	return err
}
