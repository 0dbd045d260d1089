package services

import (
	"net/http"
	"testing"
)

func TestAppErrorHTTPStatus(t *testing.T) {
	tests := []struct {
		err  *AppError
		want int
	}{
		{NewValidationError("faltan campos", "nombre"), http.StatusBadRequest},
		{NewDuplicateError("duplicada"), http.StatusBadRequest},
		{NewConflictError("solapamiento", 3), http.StatusConflict},
		{NewNotFoundError("reserva"), http.StatusNotFound},
		{NewInternalError("db down", nil), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		if got := tt.err.HTTPStatus(); got != tt.want {
			t.Errorf("%s: HTTPStatus = %d, want %d", tt.err.Code, got, tt.want)
		}
	}
}

func TestValidationErrorListsFields(t *testing.T) {
	err := NewValidationError("faltan campos requeridos", "nombre", "fecha_ingreso")
	if err.Message != "faltan campos requeridos: nombre, fecha_ingreso" {
		t.Errorf("message = %q", err.Message)
	}
	if len(err.Fields) != 2 {
		t.Errorf("fields = %v", err.Fields)
	}
}

func TestNotFoundErrorMessage(t *testing.T) {
	if msg := NewNotFoundError("habitación").Message; msg != "habitación no encontrada" {
		t.Errorf("message = %q", msg)
	}
}
