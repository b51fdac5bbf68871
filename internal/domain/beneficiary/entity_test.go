package beneficiary

import (
	"testing"
	"time"
)

func TestFilter_Match(t *testing.T) {
	t.Parallel()

	b := Beneficiary{
		FullName:    "Asha Devi",
		PhoneNumber: "9876543210",
		CreatedAt:   time.Date(2025, 3, 14, 22, 30, 0, 0, time.UTC),
	}

	tests := []struct {
		name   string
		filter Filter
		expect bool
	}{
		{name: "zero filter matches", filter: Filter{}, expect: true},
		{name: "name is case insensitive", filter: Filter{Name: "asha"}, expect: true},
		{name: "name substring", filter: Filter{Name: "DEV"}, expect: true},
		{name: "name mismatch", filter: Filter{Name: "ravi"}, expect: false},
		{name: "phone substring", filter: Filter{Phone: "5432"}, expect: true},
		{name: "phone mismatch", filter: Filter{Phone: "000"}, expect: false},
		{name: "registration day", filter: Filter{RegisteredOn: "2025-03-14"}, expect: true},
		{name: "registration day mismatch", filter: Filter{RegisteredOn: "2025-03-15"}, expect: false},
		{name: "all fields", filter: Filter{Name: "asha", Phone: "98", RegisteredOn: "2025-03-14"}, expect: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := tt.filter.Match(b); got != tt.expect {
				t.Fatalf("expected %v, got %v", tt.expect, got)
			}
		})
	}
}

func TestFilter_ApplyKeepsOrder(t *testing.T) {
	items := []Beneficiary{
		{FullName: "Ravi Kumar", PhoneNumber: "111"},
		{FullName: "Asha Devi", PhoneNumber: "222"},
		{FullName: "Ravina Shah", PhoneNumber: "333"},
	}
	got := Filter{Name: "ravi"}.Apply(items)
	if len(got) != 2 {
		t.Fatalf("expected 2 items, got %d", len(got))
	}
	if got[0].FullName != "Ravi Kumar" || got[1].FullName != "Ravina Shah" {
		t.Fatalf("unexpected order: %v, %v", got[0].FullName, got[1].FullName)
	}
}
