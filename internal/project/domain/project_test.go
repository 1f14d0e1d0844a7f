package domain

import (
	"testing"
	"time"
)

func TestProject_Validate(t *testing.T) {
	start := time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC)
	before := start.AddDate(0, 0, -1)
	after := start.AddDate(0, 1, 0)

	tests := []struct {
		name    string
		p       Project
		wantErr bool
		status  Status
	}{
		{"defaults status", Project{Name: "Web", StartDate: &start}, false, StatusPending},
		{"keeps status", Project{Name: "Web", StartDate: &start, EndDate: &after, Status: StatusCompleted}, false, StatusCompleted},
		{"missing name", Project{StartDate: &start}, true, ""},
		{"missing start", Project{Name: "Web"}, true, ""},
		{"bad status", Project{Name: "Web", StartDate: &start, Status: "cerrado"}, true, "cerrado"},
		{"end before start", Project{Name: "Web", StartDate: &start, EndDate: &before}, true, StatusPending},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := tt.p
			err := p.Validate()
			if (err != nil) != tt.wantErr {
				t.Fatalf("Validate() err = %v, wantErr %v", err, tt.wantErr)
			}
			if p.Status != tt.status {
				t.Errorf("status = %q, want %q", p.Status, tt.status)
			}
		})
	}
}
