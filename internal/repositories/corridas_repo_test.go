package repositories

import (
	"testing"

	"despacho/internal/domain"

	"github.com/DATA-DOG/go-sqlmock"
)

func corridaRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{
		"id", "folio", "origen", "destino", "fecha_salida", "comision",
		"unidad_id", "numero", "placas", "capacidad", "turno_id",
	})
}

func pasajeroRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{
		"id", "folio", "nombre", "apellidos", "tarifa_tipo", "forma_pago",
		"asiento", "importe", "corrida_id", "created_at",
	})
}

func paqueteRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{
		"id", "folio", "remitente", "destinatario", "contenido",
		"importe", "por_cobrar", "corrida_id", "created_at",
	})
}

func TestCorridasListGroupsChildren(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery("FROM corridas").WillReturnRows(corridaRows().
		AddRow(1, "COR-1", "Tuxtla Gutiérrez", "Yajalón", "2026-03-10 08:00:00", 50, 3, "12", "ABC-123", 14, 2).
		AddRow(2, "COR-2", "Yajalón", "Tuxtla Gutiérrez", "2026-03-10 09:00:00", 40, 0, "", "", 0, 0))

	mock.ExpectQuery("FROM pasajeros").WillReturnRows(pasajeroRows().
		AddRow(10, "PAS-10", "María", "Gómez", "adulto", "pago_origen", 1, 150, 1, "2026-03-10 07:40:00").
		AddRow(11, "PAS-11", "Juan", "Pérez", "adulto", "pago_destino", 2, 150, 2, "2026-03-10 08:10:00"))

	mock.ExpectQuery("FROM paquetes").WillReturnRows(paqueteRows().
		AddRow(20, "PAQ-20", "Remitente", "Destinatario", "Caja", 80, 1, 1, "2026-03-10 07:00:00"))

	repo := CorridasRepository{DB: db}
	corridas, err := repo.List()
	if err != nil {
		t.Fatalf("List returned error: %v", err)
	}

	if len(corridas) != 2 {
		t.Fatalf("expected 2 corridas, got %d", len(corridas))
	}
	if corridas[0].Unidad.Capacidad != 14 {
		t.Fatalf("unidad not embedded: %+v", corridas[0].Unidad)
	}
	if len(corridas[0].Pasajeros) != 1 || corridas[0].Pasajeros[0].ID != 10 {
		t.Fatalf("pasajeros not grouped on corrida 1: %+v", corridas[0].Pasajeros)
	}
	if len(corridas[1].Pasajeros) != 1 || corridas[1].Pasajeros[0].ID != 11 {
		t.Fatalf("pasajeros not grouped on corrida 2: %+v", corridas[1].Pasajeros)
	}
	if len(corridas[0].Paquetes) != 1 || !corridas[0].Paquetes[0].PorCobrar {
		t.Fatalf("paquetes not grouped: %+v", corridas[0].Paquetes)
	}
	if len(corridas[1].Paquetes) != 0 {
		t.Fatalf("corrida 2 should have no paquetes: %+v", corridas[1].Paquetes)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestCorridasListEmpty(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery("FROM corridas").WillReturnRows(corridaRows())

	repo := CorridasRepository{DB: db}
	corridas, err := repo.List()
	if err != nil {
		t.Fatalf("List returned error: %v", err)
	}
	if corridas == nil || len(corridas) != 0 {
		t.Fatalf("expected empty non-nil slice, got %v", corridas)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestCorridasGetByIDNotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery("FROM corridas").WithArgs(int64(99)).WillReturnRows(corridaRows())

	repo := CorridasRepository{DB: db}
	_, err = repo.GetByID(99)
	if !domain.IsNotFound(err) {
		t.Fatalf("expected not-found error, got %v", err)
	}
}
