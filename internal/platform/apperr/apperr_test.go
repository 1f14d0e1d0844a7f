package apperr

import (
	"errors"
	"fmt"
	"testing"
)

func TestKinds(t *testing.T) {
	tests := []struct {
		name string
		err  error
		kind error
	}{
		{"validation", Validation("El estado es requerido"), ErrValidation},
		{"not found", NotFound("Tarea no encontrada"), ErrNotFound},
		{"forbidden", Forbidden("No tienes acceso a este proyecto"), ErrForbidden},
		{"unauthenticated", Unauthenticated("No autorizado"), ErrUnauthenticated},
		{"persistence", Persistence("Error al actualizar la tarea", errors.New("conn reset")), ErrPersistence},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !errors.Is(tt.err, tt.kind) {
				t.Errorf("errors.Is(%v, %v) = false", tt.err, tt.kind)
			}
			wrapped := fmt.Errorf("service: %w", tt.err)
			if !errors.Is(wrapped, tt.kind) {
				t.Errorf("wrapped error lost kind %v", tt.kind)
			}
		})
	}
}

func TestPersistence_KeepsCauseOutOfMessage(t *testing.T) {
	cause := errors.New("pq: relation does not exist")
	err := Persistence("Error al crear la tarea", cause)
	if !errors.Is(err, cause) {
		t.Error("cause should be reachable with errors.Is")
	}
	if got := Message(err, "x"); got != "Error al crear la tarea" {
		t.Errorf("Message = %q", got)
	}
	if IsClassified(err) {
		t.Error("persistence errors are not caller-classified")
	}
}

func TestMessage_Fallback(t *testing.T) {
	if got := Message(errors.New("raw"), "Error del servidor"); got != "Error del servidor" {
		t.Errorf("Message = %q, want fallback", got)
	}
	if got := Message(fmt.Errorf("ctx: %w", NotFound("Proyecto no encontrado")), ""); got != "Proyecto no encontrado" {
		t.Errorf("Message = %q", got)
	}
}

func TestIsClassified(t *testing.T) {
	if !IsClassified(Validation("x")) || !IsClassified(Forbidden("x")) || !IsClassified(NotFound("x")) {
		t.Error("validation, forbidden and not found should be classified")
	}
	if IsClassified(errors.New("x")) {
		t.Error("plain errors should not be classified")
	}
}
