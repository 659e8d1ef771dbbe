package controllers_test

import (
	"net/http"
	"testing"

	"banyadesk-backend/config"
	"banyadesk-backend/models"
	"banyadesk-backend/services"
)

func seedRecords(t *testing.T, records ...models.ClientRecord) {
	t.Helper()
	for i := range records {
		if err := config.DB.Create(&records[i]).Error; err != nil {
			t.Fatalf("seed record: %v", err)
		}
	}
}

func TestWeeklySummaryAcrossDays(t *testing.T) {
	r := setupRouter(t)
	boss := tokenFor(t, models.RoleBoss)

	seedRecords(t,
		models.ClientRecord{Date: "2024-01-01", AmountOfPeople: 5, Status: models.StatusEdited},
		models.ClientRecord{Date: "2024-01-03", AmountOfPeople: 7, Status: models.StatusEdited},
		// Outside the requested week.
		models.ClientRecord{Date: "2024-01-08", AmountOfPeople: 50, Status: models.StatusEdited},
	)

	w := doJSON(t, r, http.MethodGet, "/api/summary/weekly?weekStart=2024-01-01", boss, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("weekly summary: got %d, body %s", w.Code, w.Body.String())
	}

	var response struct {
		WeekStart  string                 `json:"weekStart"`
		Summary    services.PeriodSummary `json:"summary"`
		WeeklyData *models.WeeklyRecord   `json:"weeklyData"`
	}
	decodeBody(t, w, &response)

	if response.Summary.TotalVisitors != 12 {
		t.Fatalf("week total: got %d, want 12", response.Summary.TotalVisitors)
	}
	if response.Summary.Empty {
		t.Fatal("week with records reported empty")
	}
	if response.WeeklyData != nil {
		t.Fatalf("no boss record stored, got %+v", response.WeeklyData)
	}

	// Any weekday resolves to the same week.
	w = doJSON(t, r, http.MethodGet, "/api/summary/weekly?weekStart=2024-01-04", boss, nil)
	decodeBody(t, w, &response)
	if response.WeekStart != "2024-01-01" {
		t.Fatalf("normalized week start: got %s", response.WeekStart)
	}
	if response.Summary.TotalVisitors != 12 {
		t.Fatalf("week total via weekday: got %d, want 12", response.Summary.TotalVisitors)
	}
}

func TestDailySummaryCountsOnlyThatDay(t *testing.T) {
	r := setupRouter(t)
	admin := tokenFor(t, models.RoleAdmin)

	seedRecords(t,
		models.ClientRecord{Date: "2024-01-01", AmountOfPeople: 5, NewClients: 2, Status: models.StatusEdited},
		models.ClientRecord{Date: "2024-01-02", AmountOfPeople: 9, Status: models.StatusEdited},
	)

	var summary services.PeriodSummary
	w := doJSON(t, r, http.MethodGet, "/api/summary/daily?date=2024-01-01", admin, nil)
	decodeBody(t, w, &summary)

	if summary.TotalVisitors != 5 || summary.NewClients != 2 {
		t.Fatalf("day summary: %+v", summary)
	}
}

func TestEmptySummaryIsZeroValuedNotAnError(t *testing.T) {
	r := setupRouter(t)
	head := tokenFor(t, models.RoleHead)

	var summary services.PeriodSummary
	w := doJSON(t, r, http.MethodGet, "/api/summary/period?start=2030-01-01&end=2030-01-31", head, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("empty period: got %d, want 200", w.Code)
	}
	decodeBody(t, w, &summary)

	if !summary.Empty {
		t.Fatal("empty flag not set")
	}
	if summary.TotalVisitors != 0 {
		t.Fatalf("empty summary has visitors: %d", summary.TotalVisitors)
	}
}

func TestPeriodSummaryValidatesWindow(t *testing.T) {
	r := setupRouter(t)
	boss := tokenFor(t, models.RoleBoss)

	w := doJSON(t, r, http.MethodGet, "/api/summary/period?start=2024-02-01&end=2024-01-01", boss, nil)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("inverted window: got %d, want 400", w.Code)
	}

	w = doJSON(t, r, http.MethodGet, "/api/summary/period?start=2024-01-01", boss, nil)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("missing end: got %d, want 400", w.Code)
	}
}

func TestExportIsBossOnlyAndStreamsWorkbook(t *testing.T) {
	r := setupRouter(t)

	head := tokenFor(t, models.RoleHead)
	w := doJSON(t, r, http.MethodGet, "/api/reports/export?start=2024-01-01&end=2024-01-07", head, nil)
	if w.Code != http.StatusForbidden {
		t.Fatalf("head export: got %d, want 403", w.Code)
	}

	seedRecords(t, models.ClientRecord{Date: "2024-01-01", AmountOfPeople: 5, Status: models.StatusEdited})

	boss := tokenFor(t, models.RoleBoss)
	w = doJSON(t, r, http.MethodGet, "/api/reports/export?start=2024-01-01&end=2024-01-07", boss, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("export: got %d, body %s", w.Code, w.Body.String())
	}
	if ct := w.Header().Get("Content-Type"); ct != "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet" {
		t.Fatalf("content type: %s", ct)
	}
	if w.Body.Len() == 0 {
		t.Fatal("export body is empty")
	}
}

func TestSummaryRejectsBadDates(t *testing.T) {
	r := setupRouter(t)
	admin := tokenFor(t, models.RoleAdmin)

	for _, path := range []string{
		"/api/summary/daily",
		"/api/summary/daily?date=nonsense",
		"/api/summary/weekly",
		"/api/summary/weekly?weekStart=13-2024-01",
	} {
		w := doJSON(t, r, http.MethodGet, path, admin, nil)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("%s: got %d, want 400", path, w.Code)
		}
	}
}
