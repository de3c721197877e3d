package service

import (
	"errors"
	"testing"
	"time"

	"device-warranty-server/internal/domain"
)

func newRenovationFixture(t *testing.T) (*RenovationService, *mockRenovationRepo) {
	t.Helper()
	devices, _, _ := newDeviceFixture(t)
	if _, err := devices.RegisterAnonymous(&domain.DeviceCreateRequest{
		SerialNumber: "SN0050",
		PurchaseDate: domain.NewDate(2025, time.January, 15),
	}); err != nil {
		t.Fatalf("seed device: %v", err)
	}

	repo := newMockRenovationRepo()
	return NewRenovationService(repo, devices), repo
}

func TestRenovationCreate(t *testing.T) {
	s, repo := newRenovationFixture(t)

	renovation, err := s.Create(&domain.RenovationCreateRequest{
		DeviceSerial: "SN0050",
		Description:  "screen replacement",
		Date:         domain.NewDate(2025, time.June, 10),
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	if renovation.ID == 0 {
		t.Error("expected renovation to get an id")
	}
	if renovation.DeviceSerialNumber != "SN0050" {
		t.Errorf("device serial = %q, want SN0050", renovation.DeviceSerialNumber)
	}
	if _, ok := repo.renovations[renovation.ID]; !ok {
		t.Error("renovation not persisted")
	}
}

func TestRenovationCreateUnknownDevice(t *testing.T) {
	s, _ := newRenovationFixture(t)

	_, err := s.Create(&domain.RenovationCreateRequest{
		DeviceSerial: "SN9999",
		Description:  "screen replacement",
		Date:         domain.NewDate(2025, time.June, 10),
	})

	var svcErr *Error
	if !errors.As(err, &svcErr) || svcErr.Code != CodeNotFound {
		t.Fatalf("expected not-found, got %v", err)
	}
	if svcErr.Message != "Device not registered" {
		t.Errorf("unexpected message %q", svcErr.Message)
	}
}

func TestRenovationCreateMissingDate(t *testing.T) {
	s, _ := newRenovationFixture(t)

	_, err := s.Create(&domain.RenovationCreateRequest{
		DeviceSerial: "SN0050",
		Description:  "screen replacement",
	})

	var svcErr *Error
	if !errors.As(err, &svcErr) || svcErr.Code != CodeValidation {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestRenovationDelete(t *testing.T) {
	s, repo := newRenovationFixture(t)

	renovation, err := s.Create(&domain.RenovationCreateRequest{
		DeviceSerial: "SN0050",
		Description:  "screen replacement",
		Date:         domain.NewDate(2025, time.June, 10),
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	if err := s.Delete(renovation.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, ok := repo.renovations[renovation.ID]; ok {
		t.Error("renovation still present after delete")
	}

	err = s.Delete(renovation.ID)
	var svcErr *Error
	if !errors.As(err, &svcErr) || svcErr.Code != CodeNotFound {
		t.Fatalf("expected not-found on second delete, got %v", err)
	}
}
