package services

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"strconv"
	"strings"

	"hostal-backend/models"
	"hostal-backend/utils"

	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// headerSynonyms maps the column names seen across the front desk's
// spreadsheets to canonical keys. File parsing happens upstream; the rows
// arrive here as flat key/value maps.
var headerSynonyms = map[string]string{
	"Habitación":                "habitacion_numero",
	"Habitacion":                "habitacion_numero",
	"habitación":                "habitacion_numero",
	"Numero":                    "habitacion_numero",
	"Número":                    "habitacion_numero",
	"Tipo":                      "habitacion_tipo",
	"Piso":                      "habitacion_piso",
	"Check-In":                  "check_in",
	"Check In":                  "check_in",
	"Ingreso":                   "check_in",
	"Entrada":                   "check_in",
	"Check-Out":                 "check_out",
	"Check Out":                 "check_out",
	"Egreso":                    "check_out",
	"Salida":                    "check_out",
	"Nombre":                    "nombre",
	"Apellido":                  "apellido",
	"Personas":                  "personas",
	"Noches":                    "noches",
	"Precio por noche":          "precio_por_noche",
	"Monto total":               "monto_total",
	"Seña":                      "senia",
	"Senia":                     "senia",
	"Resto":                     "resto",
	"Cantidad\nde habitaciones": "cantidad_habitaciones",
	"Cantidad de habitaciones":  "cantidad_habitaciones",
	"Telefono":                  "telefono",
	"Teléfono":                  "telefono",
	"Celiacos":                  "celiacos",
	"Observasiones":             "observaciones",
	"Observaciones":             "observaciones",
	"Origen":                    "origen",
	"Encargado":                 "encargado",
}

var requiredImportFields = []string{
	"habitacion_numero",
	"nombre",
	"apellido",
	"check_in",
	"check_out",
	"monto_total",
	"senia",
	"origen",
}

// ImportSummary reports one batch with partial-success semantics: a failed
// row never aborts the batch or rolls back earlier rows.
type ImportSummary struct {
	Processed    int      `json:"processed"`
	Created      int      `json:"created"`
	Errors       int      `json:"errors"`
	RoomsCreated int      `json:"rooms_created"`
	ErrorDetails []string `json:"error_details"`
}

// ImportService inserts reservations from pre-parsed spreadsheet rows.
type ImportService struct {
	DB *gorm.DB
}

func NewImportService(db *gorm.DB) *ImportService {
	return &ImportService{DB: db}
}

// NormalizeRow resolves header synonyms to canonical keys. Keys already in
// canonical form pass through unchanged. Missing required fields reject the
// row with the full field list.
func NormalizeRow(row map[string]string) (map[string]string, error) {
	normalized := make(map[string]string, len(row))
	for k, v := range row {
		key := strings.TrimSpace(k)
		if canonical, ok := headerSynonyms[key]; ok {
			key = canonical
		}
		normalized[key] = v
	}

	var missing []string
	for _, field := range requiredImportFields {
		if strings.TrimSpace(normalized[field]) == "" {
			missing = append(missing, field)
		}
	}
	if len(missing) > 0 {
		return nil, NewValidationError("faltan columnas/valores requeridos", missing...)
	}
	return normalized, nil
}

// BuildReservation turns a normalized row into a reservation for the given
// room. Derived fields are left to the model; amounts accept both plain
// floats and the local "$1.234,56" notation.
func BuildReservation(normalized map[string]string, roomID uint) (*models.Reservation, error) {
	checkIn, err := utils.ParseDate(normalized["check_in"])
	if err != nil {
		return nil, NewValidationError(err.Error())
	}
	checkOut, err := utils.ParseDate(normalized["check_out"])
	if err != nil {
		return nil, NewValidationError(err.Error())
	}
	if !checkIn.Before(checkOut) {
		return nil, NewValidationError("fecha_ingreso debe ser anterior a fecha_egreso")
	}

	total, err := utils.ParseMoney(normalized["monto_total"])
	if err != nil {
		return nil, NewValidationError(err.Error())
	}
	deposit, err := utils.ParseMoney(normalized["senia"])
	if err != nil {
		return nil, NewValidationError(err.Error())
	}

	manager := strings.TrimSpace(normalized["encargado"])
	if manager == "" {
		manager = "Desconocido"
	}

	return &models.Reservation{
		RoomID:      roomID,
		Manager:     manager,
		FirstName:   strings.TrimSpace(normalized["nombre"]),
		LastName:    strings.TrimSpace(normalized["apellido"]),
		People:      intOrDefault(normalized["personas"], 1),
		CheckIn:     checkIn,
		CheckOut:    checkOut,
		TotalAmount: total,
		Deposit:     deposit,
		RoomsCount:  intOrDefault(normalized["cantidad_habitaciones"], 1),
		Phone:       strings.TrimSpace(normalized["telefono"]),
		GlutenFree:  utils.ParseBool(normalized["celiacos"]),
		Notes:       strings.TrimSpace(normalized["observaciones"]),
		Source:      strings.TrimSpace(normalized["origen"]),
	}, nil
}

// CheckAgainstExisting applies the two import gates against a room's stored
// reservations: exact duplicates (same guest, room and dates — the
// idempotence aid for re-runs) and overlapping stays.
func CheckAgainstExisting(candidate *models.Reservation, existing []models.Reservation, roomNumber string) error {
	for i := range existing {
		r := &existing[i]
		if r.FirstName == candidate.FirstName && r.LastName == candidate.LastName &&
			utils.SameDay(r.CheckIn, candidate.CheckIn) && utils.SameDay(r.CheckOut, candidate.CheckOut) {
			return NewDuplicateError(fmt.Sprintf("duplicada: %s %s en %s con mismas fechas",
				candidate.FirstName, candidate.LastName, roomNumber))
		}
	}
	if conflict := FindConflict(existing, candidate.CheckIn, candidate.CheckOut, 0); conflict != nil {
		return NewConflictError(fmt.Sprintf("solapamiento: ya existe una reserva en %s entre %s y %s",
			roomNumber,
			candidate.CheckIn.Format(utils.ISODate),
			candidate.CheckOut.Format(utils.ISODate)),
			conflict.ID)
	}
	return nil
}

// Import processes rows in order, each insert independently validated and
// atomically applied. The summary is also persisted to import_logs.
func (s *ImportService) Import(rows []map[string]string) (ImportSummary, error) {
	summary := processRows(rows, s.importRow)

	if err := s.saveLog(summary); err != nil {
		// The import itself succeeded; losing the log row is not fatal.
		log.Printf("⚠️  failed to persist import log: %v", err)
	}
	return summary, nil
}

// processRows runs the batch loop over an insert function: every row is
// counted, failures are recorded as "Nombre Apellido: cause" and never abort
// the batch.
func processRows(rows []map[string]string, insert func(map[string]string) (int, error)) ImportSummary {
	summary := ImportSummary{ErrorDetails: []string{}}

	for _, row := range rows {
		summary.Processed++
		roomsCreated, err := insert(row)
		summary.RoomsCreated += roomsCreated
		if err != nil {
			summary.Errors++
			summary.ErrorDetails = append(summary.ErrorDetails,
				fmt.Sprintf("%s %s: %v", rowField(row, "Nombre", "nombre"), rowField(row, "Apellido", "apellido"), err))
			continue
		}
		summary.Created++
	}
	return summary
}

// importRow handles one row in its own transaction. Returns how many rooms
// it had to create (0 or 1).
func (s *ImportService) importRow(row map[string]string) (int, error) {
	normalized, err := NormalizeRow(row)
	if err != nil {
		return 0, err
	}

	roomsCreated := 0
	err = s.DB.Transaction(func(tx *gorm.DB) error {
		number := strings.TrimSpace(normalized["habitacion_numero"])

		var room models.Room
		findErr := tx.Where("numero = ?", number).First(&room).Error
		switch {
		case errors.Is(findErr, gorm.ErrRecordNotFound):
			room = models.Room{
				Number:   number,
				Category: stringOrDefault(normalized["habitacion_tipo"], models.CategoryDouble),
				Floor:    stringOrDefault(normalized["habitacion_piso"], "planta baja"),
			}
			if err := tx.Create(&room).Error; err != nil {
				return NewInternalError("failed to create room", err)
			}
			roomsCreated = 1
		case findErr != nil:
			return NewInternalError("failed to load room", findErr)
		}

		candidate, err := BuildReservation(normalized, room.ID)
		if err != nil {
			return err
		}

		var existing []models.Reservation
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("nhabitacion_id = ?", room.ID).
			Find(&existing).Error; err != nil {
			return NewInternalError("failed to load reservations", err)
		}
		if err := CheckAgainstExisting(candidate, existing, room.Number); err != nil {
			return err
		}

		if err := tx.Create(candidate).Error; err != nil {
			return NewInternalError("failed to create reservation", err)
		}
		return nil
	})
	return roomsCreated, err
}

func (s *ImportService) saveLog(summary ImportSummary) error {
	details, err := json.Marshal(summary.ErrorDetails)
	if err != nil {
		return err
	}
	return s.DB.Create(&models.ImportLog{
		Processed:    summary.Processed,
		Created:      summary.Created,
		Errors:       summary.Errors,
		RoomsCreated: summary.RoomsCreated,
		ErrorDetails: datatypes.JSON(details),
	}).Error
}

// Logs returns past import batches, newest first.
func (s *ImportService) Logs() ([]models.ImportLog, error) {
	var out []models.ImportLog
	if err := s.DB.Order("id DESC").Find(&out).Error; err != nil {
		return nil, NewInternalError("failed to load import logs", err)
	}
	return out, nil
}

func intOrDefault(value string, def int) int {
	s := strings.TrimSpace(value)
	if s == "" {
		return def
	}
	n, err := strconv.Atoi(s)
	if err != nil || n < 1 {
		return def
	}
	return n
}

func stringOrDefault(value, def string) string {
	if s := strings.TrimSpace(value); s != "" {
		return s
	}
	return def
}

func rowField(row map[string]string, keys ...string) string {
	for _, k := range keys {
		if v := strings.TrimSpace(row[k]); v != "" {
			return v
		}
	}
	return "?"
}
