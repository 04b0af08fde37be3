package property

import (
	"testing"

	"stayhub/models"
)

type fakePropertyRepo struct {
	props map[string]*models.Property
}

func (r *fakePropertyRepo) GetByID(id string) (*models.Property, error) {
	if p, ok := r.props[id]; ok {
		cp := *p
		return &cp, nil
	}
	return nil, nil
}

func (r *fakePropertyRepo) Create(p *models.Property) error {
	r.props[p.ID] = p
	return nil
}

func (r *fakePropertyRepo) Update(p *models.Property) error {
	r.props[p.ID] = p
	return nil
}

func (r *fakePropertyRepo) Delete(id string) error {
	delete(r.props, id)
	return nil
}

func (r *fakePropertyRepo) Search(params models.PropertySearchParams) ([]models.Property, int64, error) {
	return nil, 0, nil
}

type fakeAvailabilityRepo struct {
	days    map[string][]models.AvailabilityDay // keyed by property id
	deleted []string
}

func (r *fakeAvailabilityRepo) GetRange(propertyID, start, end string) (map[string]models.AvailabilityDay, error) {
	return nil, nil
}

func (r *fakeAvailabilityRepo) BulkSet(propertyID string, days []models.AvailabilityDay) error {
	r.days[propertyID] = append(r.days[propertyID], days...)
	return nil
}

func (r *fakeAvailabilityRepo) DeleteForProperty(propertyID string) error {
	r.deleted = append(r.deleted, propertyID)
	delete(r.days, propertyID)
	return nil
}

type fakeUserRepo struct {
	users map[string]*models.User
}

func (r *fakeUserRepo) GetByID(id string) (*models.User, error) {
	if u, ok := r.users[id]; ok {
		cp := *u
		return &cp, nil
	}
	return nil, nil
}

func (r *fakeUserRepo) GetByEmail(email string) (*models.User, error) { return nil, nil }

func (r *fakeUserRepo) Create(u *models.User) error {
	r.users[u.ID] = u
	return nil
}

func (r *fakeUserRepo) Update(u *models.User) error {
	r.users[u.ID] = u
	return nil
}

func newTestService() (*DefaultPropertyService, *fakePropertyRepo, *fakeAvailabilityRepo, *fakeUserRepo) {
	props := &fakePropertyRepo{props: make(map[string]*models.Property)}
	avail := &fakeAvailabilityRepo{days: make(map[string][]models.AvailabilityDay)}
	users := &fakeUserRepo{users: map[string]*models.User{
		"host-1": {ID: "host-1", Email: "host@example.com"},
	}}
	svc := &DefaultPropertyService{Repo: props, Availability: avail, Users: users}
	return svc, props, avail, users
}

func validCreateInput() models.CreatePropertyInput {
	return models.CreatePropertyInput{
		Title:         "Sea view cottage",
		Description:   "Two bedrooms near the beach",
		PropertyType:  "cottage",
		RoomType:      "entire_place",
		Address:       "1 Shore Rd",
		City:          "Brighton",
		Country:       "UK",
		MaxGuests:     4,
		PricePerNight: 10000,
	}
}

func TestCreateAppliesDefaults(t *testing.T) {
	svc, _, _, users := newTestService()

	prop, err := svc.Create("host-1", validCreateInput())
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	if prop.ID == "" {
		t.Fatalf("expected generated id")
	}
	if prop.Currency != "USD" {
		t.Fatalf("expected default currency USD, got %s", prop.Currency)
	}
	if prop.MinNights != 1 || prop.MaxNights != 365 {
		t.Fatalf("expected default night bounds 1..365, got %d..%d", prop.MinNights, prop.MaxNights)
	}
	if prop.CheckInTime != "15:00" || prop.CheckOutTime != "11:00" {
		t.Fatalf("expected default check-in/out times, got %s/%s", prop.CheckInTime, prop.CheckOutTime)
	}
	if prop.IsPublished {
		t.Fatalf("new listings must start unpublished")
	}

	host, _ := users.GetByID("host-1")
	if !host.IsHost {
		t.Fatalf("creating a first listing should mark the account as host")
	}
}

func TestCreateRejectsUnknownEnums(t *testing.T) {
	svc, _, _, _ := newTestService()

	in := validCreateInput()
	in.PropertyType = "castle"
	if _, err := svc.Create("host-1", in); ErrCode(err) != CodeInvalidInput {
		t.Fatalf("expected invalidInput for unknown property type, got %v", err)
	}

	in = validCreateInput()
	in.RoomType = "dungeon"
	if _, err := svc.Create("host-1", in); ErrCode(err) != CodeInvalidInput {
		t.Fatalf("expected invalidInput for unknown room type, got %v", err)
	}

	in = validCreateInput()
	in.MinNights = 10
	in.MaxNights = 5
	if _, err := svc.Create("host-1", in); ErrCode(err) != CodeInvalidInput {
		t.Fatalf("expected invalidInput for inverted night bounds, got %v", err)
	}
}

func TestUpdateOwnership(t *testing.T) {
	svc, _, _, _ := newTestService()
	prop, err := svc.Create("host-1", validCreateInput())
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	title := "Renamed"
	if _, err := svc.Update(prop.ID, "host-2", models.UpdatePropertyInput{Title: &title}); ErrCode(err) != CodeForbidden {
		t.Fatalf("expected forbidden for non-owner, got %v", err)
	}
	if _, err := svc.Update("missing", "host-1", models.UpdatePropertyInput{Title: &title}); ErrCode(err) != CodeNotFound {
		t.Fatalf("expected notFound for missing property, got %v", err)
	}

	published := true
	updated, err := svc.Update(prop.ID, "host-1", models.UpdatePropertyInput{Title: &title, IsPublished: &published})
	if err != nil {
		t.Fatalf("Update failed: %v", err)
	}
	if updated.Title != "Renamed" || !updated.IsPublished {
		t.Fatalf("update not applied: %+v", updated)
	}

	badPrice := int64(0)
	if _, err := svc.Update(prop.ID, "host-1", models.UpdatePropertyInput{PricePerNight: &badPrice}); ErrCode(err) != CodeInvalidInput {
		t.Fatalf("expected invalidInput for non-positive price, got %v", err)
	}
}

func TestSetAvailabilityValidation(t *testing.T) {
	svc, _, avail, _ := newTestService()
	prop, err := svc.Create("host-1", validCreateInput())
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	err = svc.SetAvailability(prop.ID, "host-2", models.SetAvailabilityInput{
		Dates: []models.AvailabilityDayInput{{Date: "2026-03-01"}},
	})
	if ErrCode(err) != CodeForbidden {
		t.Fatalf("expected forbidden for non-owner, got %v", err)
	}

	err = svc.SetAvailability(prop.ID, "host-1", models.SetAvailabilityInput{
		Dates: []models.AvailabilityDayInput{{Date: "March 1st"}},
	})
	if ErrCode(err) != CodeInvalidInput {
		t.Fatalf("expected invalidInput for malformed date, got %v", err)
	}

	err = svc.SetAvailability(prop.ID, "host-1", models.SetAvailabilityInput{
		Dates: []models.AvailabilityDayInput{
			{Date: "2026-03-01"},
			{Date: "2026-03-01", IsAvailable: true},
		},
	})
	if ErrCode(err) != CodeInvalidInput {
		t.Fatalf("expected invalidInput for duplicate dates, got %v", err)
	}

	zero := int64(0)
	err = svc.SetAvailability(prop.ID, "host-1", models.SetAvailabilityInput{
		Dates: []models.AvailabilityDayInput{{Date: "2026-03-01", IsAvailable: true, CustomPrice: &zero}},
	})
	if ErrCode(err) != CodeInvalidInput {
		t.Fatalf("expected invalidInput for non-positive custom price, got %v", err)
	}

	price := int64(15000)
	err = svc.SetAvailability(prop.ID, "host-1", models.SetAvailabilityInput{
		Dates: []models.AvailabilityDayInput{
			{Date: "2026-03-01", IsAvailable: false, Note: "maintenance"},
			{Date: "2026-03-02", IsAvailable: true, CustomPrice: &price},
		},
	})
	if err != nil {
		t.Fatalf("SetAvailability failed: %v", err)
	}
	stored := avail.days[prop.ID]
	if len(stored) != 2 {
		t.Fatalf("expected 2 overrides stored, got %d", len(stored))
	}
	if stored[0].ID == "" || stored[1].ID == "" {
		t.Fatalf("expected generated override ids")
	}
	if stored[1].CustomPrice == nil || *stored[1].CustomPrice != 15000 {
		t.Fatalf("custom price not stored: %+v", stored[1])
	}
}

func TestDeleteRemovesOverrides(t *testing.T) {
	svc, props, avail, _ := newTestService()
	prop, err := svc.Create("host-1", validCreateInput())
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	if err := svc.Delete(prop.ID, "host-2"); ErrCode(err) != CodeForbidden {
		t.Fatalf("expected forbidden for non-owner, got %v", err)
	}
	if err := svc.Delete(prop.ID, "host-1"); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	if _, ok := props.props[prop.ID]; ok {
		t.Fatalf("property not deleted")
	}
	if len(avail.deleted) != 1 || avail.deleted[0] != prop.ID {
		t.Fatalf("expected availability overrides deleted for %s, got %v", prop.ID, avail.deleted)
	}
}
