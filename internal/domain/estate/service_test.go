package estate

import (
	"context"
	"errors"
	"fmt"
	"math"
	"sort"
	"testing"
)

type fakeEstateRepo struct {
	nextID     int64
	owners     map[int64]*Owner
	cities     map[int64]*City
	addresses  map[int64]*Address
	properties map[int64]*Property
	agencies   map[int64]*Agency
	listings   map[int64]*Listing
	ops        []string
}

func newFakeEstateRepo() *fakeEstateRepo {
	return &fakeEstateRepo{
		owners:     make(map[int64]*Owner),
		cities:     make(map[int64]*City),
		addresses:  make(map[int64]*Address),
		properties: make(map[int64]*Property),
		agencies:   make(map[int64]*Agency),
		listings:   make(map[int64]*Listing),
	}
}

func (r *fakeEstateRepo) id() int64 {
	r.nextID++
	return r.nextID
}

func (r *fakeEstateRepo) Transaction(ctx context.Context, fn func(Repository) error) error {
	return fn(r)
}

func (r *fakeEstateRepo) GetOwner(ctx context.Context, id int64) (*Owner, error) {
	owner, ok := r.owners[id]
	if !ok {
		return nil, ErrOwnerNotFound
	}
	copied := *owner
	return &copied, nil
}

func (r *fakeEstateRepo) ListOwners(ctx context.Context) ([]Owner, error) {
	result := make([]Owner, 0, len(r.owners))
	for _, owner := range r.owners {
		result = append(result, *owner)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result, nil
}

func (r *fakeEstateRepo) phoneTaken(phone string, except int64) bool {
	for id, owner := range r.owners {
		if id != except && owner.PhoneNumber == phone {
			return true
		}
	}
	return false
}

func (r *fakeEstateRepo) CreateOwner(ctx context.Context, owner *Owner) error {
	if r.phoneTaken(owner.PhoneNumber, 0) {
		return ErrPhoneNumberTaken
	}
	owner.ID = r.id()
	copied := *owner
	r.owners[owner.ID] = &copied
	return nil
}

func (r *fakeEstateRepo) SaveOwner(ctx context.Context, owner *Owner) error {
	if r.phoneTaken(owner.PhoneNumber, owner.ID) {
		return ErrPhoneNumberTaken
	}
	copied := *owner
	r.owners[owner.ID] = &copied
	return nil
}

func (r *fakeEstateRepo) DeleteOwner(ctx context.Context, id int64) error {
	r.ops = append(r.ops, fmt.Sprintf("owner:%d", id))
	delete(r.owners, id)
	return nil
}

func (r *fakeEstateRepo) GetCity(ctx context.Context, id int64) (*City, error) {
	city, ok := r.cities[id]
	if !ok {
		return nil, ErrCityNotFound
	}
	copied := *city
	return &copied, nil
}

func (r *fakeEstateRepo) GetCityByName(ctx context.Context, name string) (*City, error) {
	for _, city := range r.cities {
		if city.Name == name {
			copied := *city
			return &copied, nil
		}
	}
	return nil, ErrCityNotFound
}

func (r *fakeEstateRepo) ListCities(ctx context.Context) ([]City, error) {
	result := make([]City, 0, len(r.cities))
	for _, city := range r.cities {
		result = append(result, *city)
	}
	return result, nil
}

func (r *fakeEstateRepo) CreateCity(ctx context.Context, city *City) error {
	if _, err := r.GetCityByName(ctx, city.Name); err == nil {
		return ErrCityNameTaken
	}
	city.ID = r.id()
	copied := *city
	r.cities[city.ID] = &copied
	return nil
}

func (r *fakeEstateRepo) SaveCity(ctx context.Context, city *City) error {
	if existing, err := r.GetCityByName(ctx, city.Name); err == nil && existing.ID != city.ID {
		return ErrCityNameTaken
	}
	copied := *city
	r.cities[city.ID] = &copied
	return nil
}

func (r *fakeEstateRepo) GetAddress(ctx context.Context, id int64) (*Address, error) {
	address, ok := r.addresses[id]
	if !ok {
		return nil, ErrAddressNotFound
	}
	copied := *address
	return &copied, nil
}

func (r *fakeEstateRepo) ListAddressDetails(ctx context.Context) ([]AddressDetail, error) {
	result := make([]AddressDetail, 0, len(r.addresses))
	for _, address := range r.addresses {
		result = append(result, AddressDetail{
			ID:            address.ID,
			StreetAddress: address.StreetAddress,
			PostalCode:    address.PostalCode,
			CityID:        address.CityID,
			CityName:      r.cities[address.CityID].Name,
		})
	}
	return result, nil
}

func (r *fakeEstateRepo) CreateAddress(ctx context.Context, address *Address) error {
	address.ID = r.id()
	copied := *address
	r.addresses[address.ID] = &copied
	return nil
}

func (r *fakeEstateRepo) SaveAddress(ctx context.Context, address *Address) error {
	copied := *address
	r.addresses[address.ID] = &copied
	return nil
}

func (r *fakeEstateRepo) DeleteAddress(ctx context.Context, id int64) error {
	r.ops = append(r.ops, fmt.Sprintf("address:%d", id))
	delete(r.addresses, id)
	return nil
}

func (r *fakeEstateRepo) GetProperty(ctx context.Context, id int64) (*Property, error) {
	property, ok := r.properties[id]
	if !ok {
		return nil, ErrPropertyNotFound
	}
	copied := *property
	return &copied, nil
}

func (r *fakeEstateRepo) ListProperties(ctx context.Context) ([]Property, error) {
	result := make([]Property, 0, len(r.properties))
	for _, property := range r.properties {
		result = append(result, *property)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result, nil
}

func (r *fakeEstateRepo) ListPropertiesByOwner(ctx context.Context, ownerID int64) ([]Property, error) {
	all, _ := r.ListProperties(ctx)
	result := make([]Property, 0)
	for _, property := range all {
		if property.OwnerID == ownerID {
			result = append(result, property)
		}
	}
	return result, nil
}

func (r *fakeEstateRepo) registryTaken(registry string, except int64) bool {
	for id, property := range r.properties {
		if id != except && property.RegistryNumber == registry {
			return true
		}
	}
	return false
}

func (r *fakeEstateRepo) CreateProperty(ctx context.Context, property *Property) error {
	if r.registryTaken(property.RegistryNumber, 0) {
		return ErrRegistryNumberTaken
	}
	property.ID = r.id()
	copied := *property
	r.properties[property.ID] = &copied
	return nil
}

func (r *fakeEstateRepo) SaveProperty(ctx context.Context, property *Property) error {
	if r.registryTaken(property.RegistryNumber, property.ID) {
		return ErrRegistryNumberTaken
	}
	copied := *property
	r.properties[property.ID] = &copied
	return nil
}

func (r *fakeEstateRepo) DeleteProperty(ctx context.Context, id int64) error {
	r.ops = append(r.ops, fmt.Sprintf("property:%d", id))
	delete(r.properties, id)
	return nil
}

func (r *fakeEstateRepo) GetAgency(ctx context.Context, id int64) (*Agency, error) {
	agency, ok := r.agencies[id]
	if !ok {
		return nil, ErrAgencyNotFound
	}
	copied := *agency
	return &copied, nil
}

func (r *fakeEstateRepo) GetAgencyByCode(ctx context.Context, code string) (*Agency, error) {
	for _, agency := range r.agencies {
		if agency.CompanyCode == code {
			copied := *agency
			return &copied, nil
		}
	}
	return nil, ErrAgencyNotFound
}

func (r *fakeEstateRepo) ListAgencies(ctx context.Context) ([]Agency, error) {
	result := make([]Agency, 0, len(r.agencies))
	for _, agency := range r.agencies {
		result = append(result, *agency)
	}
	return result, nil
}

func (r *fakeEstateRepo) CreateAgency(ctx context.Context, agency *Agency) error {
	agency.ID = r.id()
	copied := *agency
	r.agencies[agency.ID] = &copied
	return nil
}

func (r *fakeEstateRepo) SaveAgency(ctx context.Context, agency *Agency) error {
	copied := *agency
	r.agencies[agency.ID] = &copied
	return nil
}

func (r *fakeEstateRepo) GetListing(ctx context.Context, id int64) (*Listing, error) {
	listing, ok := r.listings[id]
	if !ok {
		return nil, ErrListingNotFound
	}
	copied := *listing
	return &copied, nil
}

func (r *fakeEstateRepo) ListListings(ctx context.Context) ([]Listing, error) {
	result := make([]Listing, 0, len(r.listings))
	for _, listing := range r.listings {
		result = append(result, *listing)
	}
	return result, nil
}

func (r *fakeEstateRepo) CreateListing(ctx context.Context, listing *Listing) error {
	listing.ID = r.id()
	copied := *listing
	r.listings[listing.ID] = &copied
	return nil
}

func (r *fakeEstateRepo) SaveListing(ctx context.Context, listing *Listing) error {
	copied := *listing
	r.listings[listing.ID] = &copied
	return nil
}

func (r *fakeEstateRepo) DeleteListing(ctx context.Context, id int64) error {
	r.ops = append(r.ops, fmt.Sprintf("listing:%d", id))
	delete(r.listings, id)
	return nil
}

func (r *fakeEstateRepo) DeleteListingsByProperty(ctx context.Context, propertyID int64) (int64, error) {
	r.ops = append(r.ops, fmt.Sprintf("listings-of:%d", propertyID))
	var deleted int64
	for id, listing := range r.listings {
		if listing.PropertyID == propertyID {
			delete(r.listings, id)
			deleted++
		}
	}
	return deleted, nil
}

func price(value float64) *float64 {
	return &value
}

func text(value string) *string {
	return &value
}

func seedProperty(t *testing.T, svc *Service, ownerID int64, registry, city string) *Property {
	t.Helper()
	property, err := svc.AddProperty(context.Background(), NewProperty{
		OwnerID:        ownerID,
		StreetAddress:  "Main street " + registry,
		PostalCode:     "10001",
		City:           city,
		AreaSqm:        50,
		RegistryNumber: registry,
	})
	if err != nil {
		t.Fatalf("seed property: %v", err)
	}
	return property
}

func TestFindOrCreateCityIsIdempotent(t *testing.T) {
	repo := newFakeEstateRepo()
	svc := NewService(repo)

	first, err := svc.FindOrCreateCity(context.Background(), "Vilnius")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	for i := 0; i < 3; i++ {
		again, err := svc.FindOrCreateCity(context.Background(), "  Vilnius ")
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if again.ID != first.ID {
			t.Fatalf("expected city id %d, got %d", first.ID, again.ID)
		}
	}
	if len(repo.cities) != 1 {
		t.Fatalf("expected 1 city, got %d", len(repo.cities))
	}
}

func TestFindOrCreateCityRequiresName(t *testing.T) {
	svc := NewService(newFakeEstateRepo())
	_, err := svc.FindOrCreateCity(context.Background(), "   ")
	if !errors.Is(err, ErrValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestAddOwnerDuplicatePhone(t *testing.T) {
	repo := newFakeEstateRepo()
	svc := NewService(repo)

	if _, err := svc.AddOwner(context.Background(), NewOwner{FirstName: "Ona", LastName: "Jonaitė", PhoneNumber: "+370600"}); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	_, err := svc.AddOwner(context.Background(), NewOwner{FirstName: "Petras", LastName: "Petraitis", PhoneNumber: "+370600"})
	if !errors.Is(err, ErrConstraintViolation) {
		t.Fatalf("expected constraint violation, got %v", err)
	}
	if len(repo.owners) != 1 {
		t.Fatalf("expected owner table unchanged, got %d rows", len(repo.owners))
	}
}

func TestAddPropertyUnknownOwner(t *testing.T) {
	repo := newFakeEstateRepo()
	svc := NewService(repo)

	_, err := svc.AddProperty(context.Background(), NewProperty{OwnerID: 99, City: "Kaunas", RegistryNumber: "R-1"})
	if !errors.Is(err, ErrReferentialIntegrity) {
		t.Fatalf("expected referential integrity error, got %v", err)
	}
	if !errors.Is(err, ErrUnknownOwner) {
		t.Fatalf("expected ErrUnknownOwner, got %v", err)
	}
	if len(repo.cities) != 0 || len(repo.addresses) != 0 {
		t.Fatalf("expected no rows written")
	}
}

func TestAddPropertyRejectsNegativeArea(t *testing.T) {
	repo := newFakeEstateRepo()
	svc := NewService(repo)
	owner, _ := svc.AddOwner(context.Background(), NewOwner{PhoneNumber: "1"})

	_, err := svc.AddProperty(context.Background(), NewProperty{OwnerID: owner.ID, City: "Kaunas", AreaSqm: -1, RegistryNumber: "R-1"})
	if !errors.Is(err, ErrNegativeArea) {
		t.Fatalf("expected ErrNegativeArea, got %v", err)
	}
}

func TestAddPropertyRejectsNonFiniteArea(t *testing.T) {
	for _, area := range []float64{math.NaN(), math.Inf(1), math.Inf(-1)} {
		repo := newFakeEstateRepo()
		svc := NewService(repo)
		owner, _ := svc.AddOwner(context.Background(), NewOwner{PhoneNumber: "1"})

		_, err := svc.AddProperty(context.Background(), NewProperty{OwnerID: owner.ID, City: "Kaunas", AreaSqm: area, RegistryNumber: "R-1"})
		if !errors.Is(err, ErrInvalidArea) {
			t.Fatalf("area %v: expected ErrInvalidArea, got %v", area, err)
		}
		if !errors.Is(err, ErrValidation) {
			t.Fatalf("area %v: expected a validation error, got %v", area, err)
		}
		if len(repo.properties) != 0 || len(repo.addresses) != 0 {
			t.Fatalf("area %v: expected nothing stored", area)
		}
	}
}

func TestEditPropertyRejectsNaNArea(t *testing.T) {
	repo := newFakeEstateRepo()
	svc := NewService(repo)
	owner, _ := svc.AddOwner(context.Background(), NewOwner{PhoneNumber: "1"})
	property := seedProperty(t, svc, owner.ID, "R-1", "Kaunas")

	nan := math.NaN()
	_, err := svc.EditProperty(context.Background(), property.ID, PropertyPatch{AreaSqm: &nan})
	if !errors.Is(err, ErrInvalidArea) {
		t.Fatalf("expected ErrInvalidArea, got %v", err)
	}
	if repo.properties[property.ID].AreaSqm != 50 {
		t.Fatalf("expected area to stay 50, got %v", repo.properties[property.ID].AreaSqm)
	}
}

func TestAddPropertyCreatesAddressAndReusesCity(t *testing.T) {
	repo := newFakeEstateRepo()
	svc := NewService(repo)
	owner, _ := svc.AddOwner(context.Background(), NewOwner{PhoneNumber: "1"})

	first := seedProperty(t, svc, owner.ID, "R-1", "Kaunas")
	second := seedProperty(t, svc, owner.ID, "R-2", "Kaunas")

	if first.AddressID == second.AddressID {
		t.Fatalf("expected separate addresses")
	}
	if len(repo.cities) != 1 {
		t.Fatalf("expected city reused, got %d cities", len(repo.cities))
	}
}

func TestAddAgencyDuplicateCode(t *testing.T) {
	repo := newFakeEstateRepo()
	svc := NewService(repo)

	if _, err := svc.AddAgency(context.Background(), NewAgency{Name: "Ober", CompanyCode: "C-1"}); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	_, err := svc.AddAgency(context.Background(), NewAgency{Name: "Other", CompanyCode: "C-1"})
	if !errors.Is(err, ErrCompanyCodeTaken) {
		t.Fatalf("expected ErrCompanyCodeTaken, got %v", err)
	}
}

func TestAddListingRequiresPrice(t *testing.T) {
	svc := NewService(newFakeEstateRepo())
	_, err := svc.AddListing(context.Background(), NewListing{PropertyID: 1, AgencyID: 1})
	if !errors.Is(err, ErrListingPriceRequired) {
		t.Fatalf("expected ErrListingPriceRequired, got %v", err)
	}
}

func TestAddListingUnknownAgency(t *testing.T) {
	repo := newFakeEstateRepo()
	svc := NewService(repo)
	owner, _ := svc.AddOwner(context.Background(), NewOwner{PhoneNumber: "1"})
	property := seedProperty(t, svc, owner.ID, "R-1", "Kaunas")

	_, err := svc.AddListing(context.Background(), NewListing{PropertyID: property.ID, AgencyID: 404, SalePrice: price(1000)})
	if !errors.Is(err, ErrUnknownAgency) {
		t.Fatalf("expected ErrUnknownAgency, got %v", err)
	}
	if len(repo.listings) != 0 {
		t.Fatalf("expected no listing written")
	}
}

func TestEditOwnerKeepsBlankFields(t *testing.T) {
	repo := newFakeEstateRepo()
	svc := NewService(repo)
	owner, _ := svc.AddOwner(context.Background(), NewOwner{FirstName: "Ona", LastName: "Jonaitė", PhoneNumber: "1"})

	updated, err := svc.EditOwner(context.Background(), owner.ID, OwnerPatch{
		FirstName:   text(""),
		LastName:    text("Petraitė"),
		PhoneNumber: nil,
	})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if updated.FirstName != "Ona" {
		t.Fatalf("expected first name kept, got %q", updated.FirstName)
	}
	if updated.LastName != "Petraitė" {
		t.Fatalf("expected last name updated, got %q", updated.LastName)
	}
	if repo.owners[owner.ID].PhoneNumber != "1" {
		t.Fatalf("expected phone kept, got %q", repo.owners[owner.ID].PhoneNumber)
	}
}

func TestEditOwnerNotFound(t *testing.T) {
	svc := NewService(newFakeEstateRepo())
	_, err := svc.EditOwner(context.Background(), 7, OwnerPatch{FirstName: text("x")})
	if !errors.Is(err, ErrOwnerNotFound) {
		t.Fatalf("expected ErrOwnerNotFound, got %v", err)
	}
}

func TestEditAddressMovesToNewCity(t *testing.T) {
	repo := newFakeEstateRepo()
	svc := NewService(repo)
	owner, _ := svc.AddOwner(context.Background(), NewOwner{PhoneNumber: "1"})
	property := seedProperty(t, svc, owner.ID, "R-1", "Kaunas")

	updated, err := svc.EditAddress(context.Background(), property.AddressID, AddressPatch{City: text("Klaipėda")})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	city := repo.cities[updated.CityID]
	if city == nil || city.Name != "Klaipėda" {
		t.Fatalf("expected address moved to Klaipėda, got %+v", city)
	}
	if updated.StreetAddress != "Main street R-1" {
		t.Fatalf("expected street kept, got %q", updated.StreetAddress)
	}
	if len(repo.cities) != 2 {
		t.Fatalf("expected old city kept, got %d cities", len(repo.cities))
	}
}

func TestEditCityNameCollision(t *testing.T) {
	repo := newFakeEstateRepo()
	svc := NewService(repo)
	vilnius, _ := svc.FindOrCreateCity(context.Background(), "Vilnius")
	_, _ = svc.FindOrCreateCity(context.Background(), "Kaunas")

	_, err := svc.EditCity(context.Background(), vilnius.ID, CityPatch{Name: text("Kaunas")})
	if !errors.Is(err, ErrCityNameTaken) {
		t.Fatalf("expected ErrCityNameTaken, got %v", err)
	}
}

func TestEditListingPrices(t *testing.T) {
	repo := newFakeEstateRepo()
	svc := NewService(repo)
	owner, _ := svc.AddOwner(context.Background(), NewOwner{PhoneNumber: "1"})
	property := seedProperty(t, svc, owner.ID, "R-1", "Kaunas")
	agency, _ := svc.AddAgency(context.Background(), NewAgency{Name: "Ober", CompanyCode: "C-1"})
	listing, _ := svc.AddListing(context.Background(), NewListing{PropertyID: property.ID, AgencyID: agency.ID, SalePrice: price(1000)})

	updated, err := svc.EditListing(context.Background(), listing.ID, ListingPatch{RentalPrice: price(300)})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if updated.SalePrice == nil || *updated.SalePrice != 1000 {
		t.Fatalf("expected sale price kept, got %v", updated.SalePrice)
	}
	if updated.RentalPrice == nil || *updated.RentalPrice != 300 {
		t.Fatalf("expected rental price 300, got %v", updated.RentalPrice)
	}

	updated, err = svc.EditListing(context.Background(), listing.ID, ListingPatch{ClearSalePrice: true})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if updated.SalePrice != nil {
		t.Fatalf("expected sale price cleared, got %v", *updated.SalePrice)
	}

	_, err = svc.EditListing(context.Background(), listing.ID, ListingPatch{ClearRentalPrice: true})
	if !errors.Is(err, ErrListingPriceRequired) {
		t.Fatalf("expected ErrListingPriceRequired, got %v", err)
	}
	if repo.listings[listing.ID].RentalPrice == nil {
		t.Fatalf("expected stored rental price untouched after rejected edit")
	}
}

func TestRemoveOwnerCascades(t *testing.T) {
	repo := newFakeEstateRepo()
	svc := NewService(repo)
	owner, _ := svc.AddOwner(context.Background(), NewOwner{PhoneNumber: "1"})
	other, _ := svc.AddOwner(context.Background(), NewOwner{PhoneNumber: "2"})
	first := seedProperty(t, svc, owner.ID, "R-1", "Kaunas")
	second := seedProperty(t, svc, owner.ID, "R-2", "Vilnius")
	kept := seedProperty(t, svc, other.ID, "R-3", "Kaunas")
	agency, _ := svc.AddAgency(context.Background(), NewAgency{Name: "Ober", CompanyCode: "C-1"})
	for _, propertyID := range []int64{first.ID, first.ID, second.ID, kept.ID} {
		if _, err := svc.AddListing(context.Background(), NewListing{PropertyID: propertyID, AgencyID: agency.ID, RentalPrice: price(500)}); err != nil {
			t.Fatalf("seed listing: %v", err)
		}
	}
	repo.ops = nil

	removal, err := svc.RemoveOwner(context.Background(), owner.ID)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if removal != (Removal{Owners: 1, Properties: 2, Addresses: 2, Listings: 3}) {
		t.Fatalf("unexpected removal counts %+v", removal)
	}

	want := []string{
		fmt.Sprintf("listings-of:%d", first.ID),
		fmt.Sprintf("property:%d", first.ID),
		fmt.Sprintf("address:%d", first.AddressID),
		fmt.Sprintf("listings-of:%d", second.ID),
		fmt.Sprintf("property:%d", second.ID),
		fmt.Sprintf("address:%d", second.AddressID),
		fmt.Sprintf("owner:%d", owner.ID),
	}
	if fmt.Sprint(repo.ops) != fmt.Sprint(want) {
		t.Fatalf("expected delete order %v, got %v", want, repo.ops)
	}

	if len(repo.properties) != 1 || repo.properties[kept.ID] == nil {
		t.Fatalf("expected only the other owner's property left")
	}
	if len(repo.listings) != 1 || len(repo.addresses) != 1 {
		t.Fatalf("expected 1 listing and 1 address left, got %d and %d", len(repo.listings), len(repo.addresses))
	}
	if len(repo.cities) != 2 || len(repo.agencies) != 1 {
		t.Fatalf("expected cities and agencies untouched")
	}
}

func TestRemoveOwnerNotFoundMutatesNothing(t *testing.T) {
	repo := newFakeEstateRepo()
	svc := NewService(repo)

	_, err := svc.RemoveOwner(context.Background(), 5)
	if !errors.Is(err, ErrOwnerNotFound) {
		t.Fatalf("expected ErrOwnerNotFound, got %v", err)
	}
	if len(repo.ops) != 0 {
		t.Fatalf("expected no deletes, got %v", repo.ops)
	}
}

func TestRemovePropertyKeepsCity(t *testing.T) {
	repo := newFakeEstateRepo()
	svc := NewService(repo)
	owner, _ := svc.AddOwner(context.Background(), NewOwner{PhoneNumber: "1"})
	property := seedProperty(t, svc, owner.ID, "R-1", "Kaunas")

	removal, err := svc.RemoveProperty(context.Background(), property.ID)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if removal.Properties != 1 || removal.Addresses != 1 {
		t.Fatalf("unexpected removal counts %+v", removal)
	}
	if len(repo.cities) != 1 {
		t.Fatalf("expected city kept")
	}
	if repo.owners[owner.ID] == nil {
		t.Fatalf("expected owner kept")
	}
}

func TestRemoveListingNotFound(t *testing.T) {
	svc := NewService(newFakeEstateRepo())
	_, err := svc.RemoveListing(context.Background(), 1)
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}
