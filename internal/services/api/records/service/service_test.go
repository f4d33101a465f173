package service_test

import (
	"context"
	"testing"

	perr "recordkeeper/internal/platform/errors"
	"recordkeeper/internal/services/api/records/domain"
)

func TestCreateAssignsID(t *testing.T) {
	m := newMemRepo()
	s := newSvc(m, fastCfg())

	got, err := s.Create(context.Background(), domain.RecordInput{
		Name:        "widget",
		Description: "a widget",
		Email:       "owner@example.com",
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if got.ID == 0 {
		t.Fatalf("expected assigned id, got zero")
	}
	if m.saveCalls != 1 {
		t.Fatalf("expected one save, got %d", m.saveCalls)
	}
}

func TestCreateRejectsInvalidEmail(t *testing.T) {
	m := newMemRepo()
	s := newSvc(m, fastCfg())

	_, err := s.Create(context.Background(), domain.RecordInput{
		Name:        "widget",
		Description: "a widget",
		Email:       "owner..dots@example.com",
	})
	if !perr.IsCode(err, perr.ErrorCodeValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
	e, _ := perr.As(err)
	if e.Field() != "email" {
		t.Fatalf("expected email field, got %q", e.Field())
	}
	if m.saveCalls != 0 {
		t.Fatalf("invalid input must not reach the store")
	}
}

func TestUpdateMissingRecord(t *testing.T) {
	m := newMemRepo()
	s := newSvc(m, fastCfg())

	_, err := s.Update(context.Background(), 9, domain.RecordInput{
		Name:        "widget",
		Description: "a widget",
		Email:       "owner@example.com",
	})
	if !perr.IsCode(err, perr.ErrorCodeNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
	if m.saveCalls != 0 {
		t.Fatalf("missing record must not be saved")
	}
}

func TestUpdateForcesPathID(t *testing.T) {
	m := newMemRepo(rec(5))
	s := newSvc(m, fastCfg())

	got, err := s.Update(context.Background(), 5, domain.RecordInput{
		Name:        "renamed",
		Description: "new desc",
		Email:       "owner@example.com",
	})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if got.ID != 5 || got.Name != "renamed" {
		t.Fatalf("unexpected result: %+v", got)
	}
	if m.recs[5].Name != "renamed" {
		t.Fatalf("row not rewritten: %+v", m.recs[5])
	}
}

func TestDelete(t *testing.T) {
	m := newMemRepo(rec(2))
	s := newSvc(m, fastCfg())

	if err := s.Delete(context.Background(), 2); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if err := s.Delete(context.Background(), 2); !perr.IsCode(err, perr.ErrorCodeNotFound) {
		t.Fatalf("expected not found on second delete, got %v", err)
	}
}

func TestListAndGetPassThrough(t *testing.T) {
	m := newMemRepo(rec(1), rec(2))
	s := newSvc(m, fastCfg())

	all, err := s.List(context.Background())
	if err != nil || len(all) != 2 {
		t.Fatalf("List = %v, %v", all, err)
	}
	got, err := s.Get(context.Background(), 2)
	if err != nil || got.ID != 2 {
		t.Fatalf("Get = %+v, %v", got, err)
	}
	if _, err := s.Get(context.Background(), 3); !perr.IsCode(err, perr.ErrorCodeNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}
