package models

import "testing"

func TestBeerDescriptorComplete(t *testing.T) {
	full := BeerDescriptor{
		UntappdID: 4711,
		Name:      "Westvleteren 12",
		Brewery:   "Brouwerij Westvleteren",
		Style:     "Quadrupel",
		ABV:       10.2,
		LabelURL:  "https://example.com/label.png",
	}

	tests := []struct {
		name   string
		mutate func(*BeerDescriptor)
		want   bool
	}{
		{"all fields set", func(d *BeerDescriptor) {}, true},
		{"zero abv is still complete", func(d *BeerDescriptor) { d.ABV = 0 }, true},
		{"missing untappd id", func(d *BeerDescriptor) { d.UntappdID = 0 }, false},
		{"missing name", func(d *BeerDescriptor) { d.Name = "" }, false},
		{"missing brewery", func(d *BeerDescriptor) { d.Brewery = "" }, false},
		{"missing style", func(d *BeerDescriptor) { d.Style = "" }, false},
		{"missing label url", func(d *BeerDescriptor) { d.LabelURL = "" }, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := full
			tt.mutate(&d)
			if got := d.Complete(); got != tt.want {
				t.Errorf("Complete() = %v, want %v", got, tt.want)
			}
		})
	}
}
