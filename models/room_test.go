package models

import (
	"reflect"
	"testing"
)

// Deletion is physical across the schema. A DeletedAt column would turn
// deletes into soft deletes, leaving the habitaciones.numero unique index
// entry alive so a deleted room's number could never be registered again.
func TestDeleteIsPhysical(t *testing.T) {
	for _, entity := range []interface{}{Room{}, Reservation{}, Staff{}, ImportLog{}} {
		typ := reflect.TypeOf(entity)
		if _, found := typ.FieldByName("DeletedAt"); found {
			t.Errorf("%s carries a DeletedAt field; deletes must be physical", typ.Name())
		}
		if _, found := typ.FieldByName("Model"); found {
			t.Errorf("%s embeds gorm.Model, which brings soft delete with it", typ.Name())
		}
	}
}
