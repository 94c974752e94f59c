package repositories

import (
	"testing"

	"despacho/internal/domain"

	"github.com/DATA-DOG/go-sqlmock"
)

func TestPaqueteListPendientes(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery("FROM paquetes").WillReturnRows(paqueteRows().
		AddRow(5, "PAQ-5", "Remitente", "Destinatario", "Sobre", 45, 0, 0, "2026-03-10 10:00:00"))

	repo := PaqueteRepository{DB: db}
	pendientes, err := repo.ListPendientes()
	if err != nil {
		t.Fatalf("ListPendientes returned error: %v", err)
	}
	if len(pendientes) != 1 || !pendientes[0].Pendiente() {
		t.Fatalf("unexpected pendientes: %+v", pendientes)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestPaqueteAssignToCorrida(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery("FROM paquetes").WithArgs(int64(5)).WillReturnRows(paqueteRows().
		AddRow(5, "PAQ-5", "Remitente", "Destinatario", "Sobre", 45, 0, 0, "2026-03-10 10:00:00"))
	mock.ExpectExec("UPDATE paquetes").WithArgs(int64(7), int64(5)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	repo := PaqueteRepository{DB: db}
	if err := repo.AssignToCorrida(5, 7); err != nil {
		t.Fatalf("AssignToCorrida returned error: %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestPaqueteAssignAlreadyAssignedIsConflict(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery("FROM paquetes").WithArgs(int64(5)).WillReturnRows(paqueteRows().
		AddRow(5, "PAQ-5", "Remitente", "Destinatario", "Sobre", 45, 0, 3, "2026-03-10 10:00:00"))

	repo := PaqueteRepository{DB: db}
	err = repo.AssignToCorrida(5, 7)
	if !domain.IsConflict(err) {
		t.Fatalf("expected conflict error, got %v", err)
	}
}

func TestPaqueteAssignRaceLostIsConflict(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery("FROM paquetes").WithArgs(int64(5)).WillReturnRows(paqueteRows().
		AddRow(5, "PAQ-5", "Remitente", "Destinatario", "Sobre", 45, 0, 0, "2026-03-10 10:00:00"))
	// another request assigned it between the read and the update
	mock.ExpectExec("UPDATE paquetes").WithArgs(int64(7), int64(5)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	repo := PaqueteRepository{DB: db}
	err = repo.AssignToCorrida(5, 7)
	if !domain.IsConflict(err) {
		t.Fatalf("expected conflict error after lost race, got %v", err)
	}
}

func TestPaqueteGetByIDNotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery("FROM paquetes").WithArgs(int64(404)).WillReturnRows(paqueteRows())

	repo := PaqueteRepository{DB: db}
	_, err = repo.GetByID(404)
	if !domain.IsNotFound(err) {
		t.Fatalf("expected not-found error, got %v", err)
	}
}
