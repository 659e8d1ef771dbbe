package controllers_test

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"

	"banyadesk-backend/models"
)

func TestWeeklyUpsertNormalizesToOneRowPerWeek(t *testing.T) {
	r := setupRouter(t)
	boss := tokenFor(t, models.RoleBoss)

	// Tuesday of the week starting 2024-01-01.
	w := doJSON(t, r, http.MethodPost, "/api/weekly-data", boss,
		json.RawMessage(`{"date": "2024-01-02", "staffBonus": 100}`))
	if w.Code != http.StatusOK {
		t.Fatalf("first upsert: got %d, body %s", w.Code, w.Body.String())
	}
	var first models.WeeklyRecord
	decodeBody(t, w, &first)
	if first.Date != "2024-01-01" {
		t.Fatalf("week key: got %s, want 2024-01-01", first.Date)
	}

	// Thursday of the same week updates in place.
	w = doJSON(t, r, http.MethodPost, "/api/weekly-data", boss,
		json.RawMessage(`{"date": "2024-01-04", "staffBonus": 250}`))
	var second models.WeeklyRecord
	decodeBody(t, w, &second)
	if second.ID != first.ID {
		t.Fatalf("same week produced a second row: %d vs %d", second.ID, first.ID)
	}
	if second.StaffBonus != 250 {
		t.Fatalf("staffBonus after update: got %v, want 250", second.StaffBonus)
	}

	var all []models.WeeklyRecord
	w = doJSON(t, r, http.MethodGet, "/api/weekly-data", boss, nil)
	decodeBody(t, w, &all)
	if len(all) != 1 {
		t.Fatalf("stored weekly rows: got %d, want 1", len(all))
	}
}

func TestWeeklyUpsertStatusAssignment(t *testing.T) {
	r := setupRouter(t)
	boss := tokenFor(t, models.RoleBoss)

	w := doJSON(t, r, http.MethodPost, "/api/weekly-data", boss,
		json.RawMessage(`{"date": "2024-01-02", "staffBonus": 100}`))
	var record models.WeeklyRecord
	decodeBody(t, w, &record)
	if record.Status != models.StatusEdited {
		t.Fatalf("fresh week: status %q, want edited", record.Status)
	}

	w = doJSON(t, r, http.MethodPost, "/api/weekly-data", boss,
		json.RawMessage(`{"date": "2024-01-04", "staffBonus": 200}`))
	decodeBody(t, w, &record)
	if record.Status != models.StatusConfirmed {
		t.Fatalf("updated week: status %q, want confirmed", record.Status)
	}
}

func TestWeeklyVerifyValidatesStatus(t *testing.T) {
	r := setupRouter(t)
	boss := tokenFor(t, models.RoleBoss)

	w := doJSON(t, r, http.MethodPost, "/api/weekly-data", boss,
		json.RawMessage(`{"date": "2024-01-02", "staffBonus": 100}`))
	var record models.WeeklyRecord
	decodeBody(t, w, &record)
	path := fmt.Sprintf("/api/weekly-data/%d/verify", record.ID)

	// Arbitrary status strings do not pass the enum gate.
	w = doJSON(t, r, http.MethodPatch, path, boss, json.RawMessage(`{"status": "golden"}`))
	if w.Code != http.StatusBadRequest {
		t.Fatalf("bogus status: got %d, want 400", w.Code)
	}

	// Default is confirmed.
	w = doJSON(t, r, http.MethodPatch, path, boss, json.RawMessage(`{}`))
	if w.Code != http.StatusOK {
		t.Fatalf("verify: got %d, body %s", w.Code, w.Body.String())
	}
	decodeBody(t, w, &record)
	if record.Status != models.StatusConfirmed || !record.IsVerified {
		t.Fatalf("after verify: status %q verified %v", record.Status, record.IsVerified)
	}

	// Confirming a confirmed record is rejected.
	w = doJSON(t, r, http.MethodPatch, path, boss, json.RawMessage(`{}`))
	if w.Code != http.StatusBadRequest {
		t.Fatalf("double confirm: got %d, want 400", w.Code)
	}

	// Reopening to edited is allowed.
	w = doJSON(t, r, http.MethodPatch, path, boss, json.RawMessage(`{"status": "edited"}`))
	if w.Code != http.StatusOK {
		t.Fatalf("reopen: got %d", w.Code)
	}
	decodeBody(t, w, &record)
	if record.Status != models.StatusEdited || record.IsVerified {
		t.Fatalf("after reopen: status %q verified %v", record.Status, record.IsVerified)
	}
}

func TestWeeklyRoutesAreBossOnly(t *testing.T) {
	r := setupRouter(t)

	for _, role := range []string{models.RoleAdmin, models.RoleHead} {
		token := tokenFor(t, role)
		w := doJSON(t, r, http.MethodPost, "/api/weekly-data", token,
			json.RawMessage(`{"date": "2024-01-02"}`))
		if w.Code != http.StatusForbidden {
			t.Fatalf("%s on weekly-data: got %d, want 403", role, w.Code)
		}
	}

	boss := tokenFor(t, models.RoleBoss)
	w := doJSON(t, r, http.MethodPut, "/api/weekly-data/424242", boss,
		json.RawMessage(`{"staffBonus": 10}`))
	if w.Code != http.StatusNotFound {
		t.Fatalf("unknown weekly id: got %d, want 404", w.Code)
	}
}

func TestWeeklyListFiltersByWeekStart(t *testing.T) {
	r := setupRouter(t)
	boss := tokenFor(t, models.RoleBoss)

	doJSON(t, r, http.MethodPost, "/api/weekly-data", boss,
		json.RawMessage(`{"date": "2024-01-02", "staffBonus": 100}`))
	doJSON(t, r, http.MethodPost, "/api/weekly-data", boss,
		json.RawMessage(`{"date": "2024-01-10", "staffBonus": 60}`))

	// Any day of the week selects that week's row.
	var records []models.WeeklyRecord
	w := doJSON(t, r, http.MethodGet, "/api/weekly-data?weekStart=2024-01-03", boss, nil)
	decodeBody(t, w, &records)
	if len(records) != 1 || records[0].Date != "2024-01-01" {
		t.Fatalf("weekStart filter: got %+v", records)
	}
}
