package reports

import (
	"context"
	"strings"

	"gorm.io/gorm"

	reportsdomain "real-estate-go/internal/domain/reports"
)

const propertyColumns = "properties.id AS property_id, properties.registry_number, properties.area_sqm, " +
	"addresses.street_address, addresses.postal_code, cities.name AS city"

const (
	joinAddresses = "join addresses on addresses.id = properties.address_id"
	joinCities    = "join cities on cities.id = addresses.city_id"
	joinListings  = "join listings on listings.property_id = properties.id"
)

// Grouping by every joined primary key keeps the non-aggregated columns
// valid on postgres as well as sqlite.
const groupByProperty = "properties.id, addresses.id, cities.id"

type GormRepository struct {
	db *gorm.DB
}

func NewGorm(db *gorm.DB) *GormRepository {
	return &GormRepository{db: db}
}

func (r *GormRepository) CityExists(ctx context.Context, name string) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).Table("cities").Where("name = ?", name).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *GormRepository) PropertiesInCity(ctx context.Context, city string) ([]reportsdomain.CityProperty, error) {
	var rows []reportsdomain.CityProperty
	if err := r.db.WithContext(ctx).
		Table("properties").
		Select(propertyColumns+", AVG(listings.sale_price) AS avg_sale_price, AVG(listings.rental_price) AS avg_rental_price").
		Joins(joinAddresses).
		Joins(joinCities).
		Joins(joinListings).
		Where("cities.name = ?", city).
		Group(groupByProperty).
		Order("properties.id asc").
		Scan(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *GormRepository) PropertyByRegistry(ctx context.Context, registry string) (*reportsdomain.PropertyInfo, error) {
	var row reportsdomain.PropertyInfo
	result := r.db.WithContext(ctx).
		Table("properties").
		Select(propertyColumns).
		Joins(joinAddresses).
		Joins(joinCities).
		Where("properties.registry_number = ?", registry).
		Limit(1).
		Scan(&row)
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, reportsdomain.ErrPropertyNotFound
	}
	return &row, nil
}

func (r *GormRepository) ListingsForProperty(ctx context.Context, propertyID int64) ([]reportsdomain.AgencyPrice, error) {
	var rows []reportsdomain.AgencyPrice
	if err := r.db.WithContext(ctx).
		Table("listings").
		Select("agencies.id AS agency_id, agencies.name AS agency_name, listings.sale_price, listings.rental_price").
		Joins("join agencies on agencies.id = listings.agency_id").
		Where("listings.property_id = ?", propertyID).
		Order("listings.id asc").
		Scan(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

// Search filters individual listings by the price bounds before taking the
// cheapest price per property.
func (r *GormRepository) Search(ctx context.Context, filter reportsdomain.SearchFilter) ([]reportsdomain.SearchResult, error) {
	where, args := buildSearchWhere(filter)

	var rows []reportsdomain.SearchResult
	if err := r.db.WithContext(ctx).
		Table("properties").
		Select(propertyColumns+", MIN(listings.sale_price) AS min_sale_price, MIN(listings.rental_price) AS min_rental_price").
		Joins(joinAddresses).
		Joins(joinCities).
		Joins(joinListings).
		Where(where, args...).
		Group(groupByProperty).
		Order("properties.id asc").
		Scan(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *GormRepository) AllProperties(ctx context.Context) ([]reportsdomain.PropertySummary, error) {
	var rows []reportsdomain.PropertySummary
	if err := r.db.WithContext(ctx).
		Table("properties").
		Select(propertyColumns+", MIN(listings.sale_price) AS min_sale_price, MIN(listings.rental_price) AS min_rental_price").
		Joins(joinAddresses).
		Joins(joinCities).
		Joins("left join listings on listings.property_id = properties.id").
		Group(groupByProperty).
		Order("properties.id asc").
		Scan(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *GormRepository) AgencyListings(ctx context.Context) ([]reportsdomain.AgencyListingRow, error) {
	var rows []reportsdomain.AgencyListingRow
	if err := r.db.WithContext(ctx).
		Table("agencies").
		Select("agencies.id AS agency_id, agencies.name AS agency_name, agencies.company_code, listings.id AS listing_id, " +
			propertyColumns + ", listings.sale_price, listings.rental_price").
		Joins("join listings on listings.agency_id = agencies.id").
		Joins("join properties on properties.id = listings.property_id").
		Joins(joinAddresses).
		Joins(joinCities).
		Order("agencies.id asc, listings.id asc").
		Scan(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *GormRepository) OwnerProperties(ctx context.Context) ([]reportsdomain.OwnerPropertyRow, error) {
	var rows []reportsdomain.OwnerPropertyRow
	if err := r.db.WithContext(ctx).
		Table("owners").
		Select("owners.id AS owner_id, owners.first_name, owners.last_name, owners.phone_number, " +
			"properties.registry_number, addresses.street_address, cities.name AS city, properties.area_sqm").
		Joins("join properties on properties.owner_id = owners.id").
		Joins(joinAddresses).
		Joins(joinCities).
		Order("owners.id asc, properties.id asc").
		Scan(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func buildSearchWhere(filter reportsdomain.SearchFilter) (string, []interface{}) {
	conditions := []string{"cities.name = ?"}
	args := []interface{}{filter.City}

	if filter.MinSale != nil {
		conditions = append(conditions, "listings.sale_price >= ?")
		args = append(args, *filter.MinSale)
	}
	if filter.MaxSale != nil {
		conditions = append(conditions, "listings.sale_price <= ?")
		args = append(args, *filter.MaxSale)
	}
	if filter.MinRental != nil {
		conditions = append(conditions, "listings.rental_price >= ?")
		args = append(args, *filter.MinRental)
	}
	if filter.MaxRental != nil {
		conditions = append(conditions, "listings.rental_price <= ?")
		args = append(args, *filter.MaxRental)
	}

	return strings.Join(conditions, " AND "), args
}
