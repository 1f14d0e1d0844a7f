package repository

import (
	"database/sql"
	"testing"
	"time"

	"projectboard/internal/db/sqlc/gen"
	"projectboard/internal/project/domain"
)

func TestEscapeLike(t *testing.T) {
	tests := []struct{ in, want string }{
		{"ana", "ana"},
		{"100%", `100\%`},
		{"a_b", `a\_b`},
		{`c:\tmp`, `c:\\tmp`},
	}
	for _, tt := range tests {
		if got := escapeLike(tt.in); got != tt.want {
			t.Errorf("escapeLike(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestGenProyectoToDomain(t *testing.T) {
	start := time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)
	p := genProyectoToDomain(&gen.Proyecto{
		ID: 3, Nombre: "Web", Estado: "en_progreso",
		FechaInicio: sql.NullTime{Time: start, Valid: true},
		CreadoPor:   sql.NullInt64{Int64: 9, Valid: true},
	})
	if p.Status != domain.StatusInProgress || p.StartDate == nil || !p.StartDate.Equal(start) {
		t.Errorf("project = %+v", p)
	}
	if p.EndDate != nil || p.Description != "" {
		t.Errorf("unset columns mapped: %+v", p)
	}
	if p.CreatedBy == nil || *p.CreatedBy != 9 {
		t.Errorf("created by = %v", p.CreatedBy)
	}
	if genProyectoToDomain(nil) != nil {
		t.Error("nil row should map to nil")
	}
}
