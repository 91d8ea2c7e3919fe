package model

import (
	"errors"
	"testing"

	"github.com/go-playground/validator/v10"
)

func failedFields(t *testing.T, err error) map[string]string {
	t.Helper()
	fields := map[string]string{}
	if err == nil {
		return fields
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		t.Fatalf("expected validator errors, got %T: %v", err, err)
	}
	for _, e := range verrs {
		fields[e.Field()] = e.Tag()
	}
	return fields
}

func TestRegisterUserPayload_Validate(t *testing.T) {
	tests := []struct {
		name    string
		payload RegisterUserPayload
		want    map[string]string
	}{
		{
			name:    "valid",
			payload: RegisterUserPayload{Name: "Sue Luna", Email: "sue@example.com", Password: "password123"},
			want:    map[string]string{},
		},
		{
			name:    "missing everything",
			payload: RegisterUserPayload{},
			want:    map[string]string{"name": "required", "email": "required", "password": "required"},
		},
		{
			name:    "bad email and short password",
			payload: RegisterUserPayload{Name: "Sue", Email: "sue", Password: "short"},
			want:    map[string]string{"email": "email", "password": "min"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := failedFields(t, tt.payload.Validate())
			if len(got) != len(tt.want) {
				t.Fatalf("expected %v, got %v", tt.want, got)
			}
			for field, tag := range tt.want {
				if got[field] != tag {
					t.Errorf("field %s: expected %s, got %q", field, tag, got[field])
				}
			}
		})
	}
}

func TestSearchPropertiesPayload_Validate(t *testing.T) {
	if err := (&SearchPropertiesPayload{}).Validate(); err != nil {
		t.Errorf("empty search must be valid: %v", err)
	}

	got := failedFields(t, (&SearchPropertiesPayload{MinimumRating: 6, Limit: 500}).Validate())
	if got["minimum_rating"] != "max" || got["limit"] != "max" {
		t.Errorf("unexpected failures %v", got)
	}
}

func TestSearchPropertiesPayload_Options(t *testing.T) {
	p := &SearchPropertiesPayload{OwnerID: 2, City: "Vancouver", MinimumPricePerNight: 50, MaximumPricePerNight: 200, MinimumRating: 4, Limit: 3}
	want := PropertySearchOptions{OwnerID: 2, City: "Vancouver", MinimumPricePerNight: 50, MaximumPricePerNight: 200, MinimumRating: 4}
	if got := p.Options(); got != want {
		t.Errorf("expected %+v, got %+v", want, got)
	}
}

func TestCreatePropertyPayload(t *testing.T) {
	p := &CreatePropertyPayload{
		Title:             "Speed lamp",
		ThumbnailPhotoURL: "https://images.example.com/thumb.jpg",
		CoverPhotoURL:     "https://images.example.com/cover.jpg",
		CostPerNight:      93.5,
		Street:            "536 Namsub Highway",
		City:              "Sotboske",
		Province:          "Quebec",
		PostCode:          "28142",
		Country:           "Canada",
		NumberOfBedrooms:  2,
	}
	if err := p.Validate(); err != nil {
		t.Fatalf("expected valid payload: %v", err)
	}

	np := p.NewProperty(7)
	if np.OwnerID != 7 || np.Title != "Speed lamp" || np.NumberOfBedrooms != 2 {
		t.Errorf("unexpected repository input %+v", np)
	}
	if np.CostPerNightCents() != 9350 {
		t.Errorf("expected 9350 cents, got %d", np.CostPerNightCents())
	}

	p.CostPerNight = 0
	p.CoverPhotoURL = "not a url"
	got := failedFields(t, p.Validate())
	if got["cost_per_night"] != "required" || got["cover_photo_url"] != "url" {
		t.Errorf("unexpected failures %v", got)
	}
}

func TestCostPerNightCents_Rounds(t *testing.T) {
	tests := map[float64]int64{
		0.1:    10,
		19.99:  1999,
		100:    10000,
		0.005:  1,
		120.45: 12045,
	}
	for in, want := range tests {
		if got := (NewProperty{CostPerNight: in}).CostPerNightCents(); got != want {
			t.Errorf("CostPerNightCents(%v) = %d, want %d", in, got, want)
		}
	}
}

func TestListReviewsPayload_Validate(t *testing.T) {
	got := failedFields(t, (&ListReviewsPayload{}).Validate())
	if got["id"] != "required" {
		t.Errorf("expected property id to be required, got %v", got)
	}
	if err := (&ListReviewsPayload{PropertyID: 3}).Validate(); err != nil {
		t.Errorf("unexpected error %v", err)
	}
}
