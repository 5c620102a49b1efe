package source

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/theirongolddev/larder/internal/model"
	"github.com/theirongolddev/larder/internal/store"
)

const sampleDump = `{
  "foodCatalog": [
    {"id": 1, "name": "Oatmeal", "servingSize": "1 cup", "calories": 150, "protein": 5, "carbs": 27, "fat": 3, "costPerServing": 0.35},
    {"id": "2", "name": "Banana", "calories": 105, "protein": 1.3, "carbs": 27, "fat": 0.4}
  ],
  "people": [
    {"id": "ana", "name": "Ana", "gender": "female", "age": "34", "weight": "62", "weightUnit": "kg", "height": 168, "heightUnit": "cm", "activityLevel": "LIGHT"}
  ],
  "expenses": "[{\"id\":\"e1\",\"date\":\"2024-03-02\",\"description\":\"Market\",\"amount\":\"23.40\"}]",
  "budget": {"monthly": 450},
  "meals": {
    "2024-03-02": {
      "ana": {
        "consumed": {"breakfast": [{"foodId": 1, "servings": "2", "timestamp": 1709366400000}], "lunch": "n/a"},
        "planned": {"dinner": [{"foodId": "2"}]}
      }
    }
  }
}`

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestParseDump_TolerantValues(t *testing.T) {
	res := ParseDump([]byte(sampleDump))
	if res.Err != nil {
		t.Fatalf("unexpected error: %v", res.Err)
	}
	if len(res.ParseErrors) != 0 {
		t.Fatalf("ParseErrors = %v, want none", res.ParseErrors)
	}

	d := res.Dump
	if len(d.FoodCatalog) != 2 || d.FoodCatalog[0].ID != "1" {
		t.Fatalf("FoodCatalog = %+v", d.FoodCatalog)
	}
	if len(d.People) != 1 || d.People[0].Age != 34 || d.People[0].Weight != 62 {
		t.Fatalf("People = %+v", d.People)
	}
	if len(d.Expenses) != 1 || d.Expenses[0].Amount != 23.4 {
		t.Fatalf("Expenses = %+v", d.Expenses)
	}
	if d.Budget == nil || d.Budget.Monthly != 450 {
		t.Fatalf("Budget = %+v", d.Budget)
	}

	pair := d.Meals["2024-03-02"]["ana"]
	breakfast := pair.Consumed[model.Breakfast]
	if len(breakfast) != 1 || breakfast[0].Servings != 2 || breakfast[0].FoodID != "1" {
		t.Fatalf("breakfast = %+v", breakfast)
	}
	wantTS := time.UnixMilli(1709366400000).UTC()
	if !breakfast[0].Timestamp.Equal(wantTS) {
		t.Fatalf("Timestamp = %v, want %v", breakfast[0].Timestamp, wantTS)
	}
	if len(pair.Consumed[model.Lunch]) != 0 {
		t.Fatalf("non-array lunch should be empty, got %+v", pair.Consumed[model.Lunch])
	}
	if pair.Planned.Count() != 1 {
		t.Fatalf("planned count = %d, want 1", pair.Planned.Count())
	}
	if d.MealDays() != 1 {
		t.Fatalf("MealDays = %d, want 1", d.MealDays())
	}
}

func TestParseDump_BadSectionKeepsOthers(t *testing.T) {
	res := ParseDump([]byte(`{
		"foodCatalog": {"not": "a list"},
		"people": [{"id": "ben"}],
		"budget": 300,
		"meals": {"yesterday": {}, "2024-03-01": {"ben": {"consumed": {"snacks": []}}}}
	}`))
	if res.Err != nil {
		t.Fatalf("unexpected error: %v", res.Err)
	}
	if len(res.ParseErrors) != 2 {
		t.Fatalf("ParseErrors = %v, want 2 (foodCatalog, bad date)", res.ParseErrors)
	}
	var se *SectionError
	if !errors.As(res.ParseErrors[0], &se) || se.Section != SectionFoodCatalog {
		t.Fatalf("first error = %v, want foodCatalog section error", res.ParseErrors[0])
	}
	if res.Dump.FoodCatalog != nil {
		t.Fatal("failed section should stay nil")
	}
	if len(res.Dump.People) != 1 || res.Dump.Budget.Monthly != 300 {
		t.Fatalf("dump = %+v", res.Dump)
	}
	if _, ok := res.Dump.Meals["2024-03-01"]; !ok {
		t.Fatal("valid date dropped")
	}
	if res.Dump.Expenses != nil {
		t.Fatal("absent section should stay nil")
	}
}

func TestParseDump_DropsInvalidExpenses(t *testing.T) {
	doc := `{"expenses": [
		{"id": "ok", "date": "2024-03-02", "amount": 40},
		{"id": "neg", "date": "2024-03-03", "amount": -100},
		{"id": "zero", "date": "2024-03-04", "amount": 0},
		{"id": "baddate", "date": "03/05/2024", "amount": 12}
	]}`
	res := ParseDump([]byte(doc))
	if res.Err != nil {
		t.Fatalf("unexpected error: %v", res.Err)
	}
	if len(res.Dump.Expenses) != 1 || res.Dump.Expenses[0].ID != "ok" {
		t.Fatalf("Expenses = %+v, want only ok", res.Dump.Expenses)
	}
	if len(res.ParseErrors) != 3 {
		t.Fatalf("ParseErrors = %v, want 3", res.ParseErrors)
	}
	for _, err := range res.ParseErrors {
		var se *SectionError
		if !errors.As(err, &se) || se.Section != SectionExpenses {
			t.Errorf("error %v is not an expenses SectionError", err)
		}
	}
}

func TestParseDump_NotAnObject(t *testing.T) {
	for _, doc := range []string{`[1,2]`, `nope`, ``} {
		if res := ParseDump([]byte(doc)); res.Err == nil {
			t.Fatalf("ParseDump(%q) should fail", doc)
		}
	}
}

func TestScanDir_NewestFirst(t *testing.T) {
	dir := t.TempDir()
	old := writeFile(t, dir, "old.json", `{}`)
	newer := writeFile(t, dir, "new.JSON", `{}`)
	writeFile(t, dir, "notes.txt", "skip")
	if err := os.Mkdir(filepath.Join(dir, "sub.json"), 0o750); err != nil {
		t.Fatal(err)
	}

	past := time.Now().Add(-time.Hour)
	if err := os.Chtimes(old, past, past); err != nil {
		t.Fatal(err)
	}

	files, err := ScanDir(dir)
	if err != nil {
		t.Fatalf("ScanDir: %v", err)
	}
	if len(files) != 2 || files[0].Path != newer || files[1].Path != old {
		t.Fatalf("files = %+v", files)
	}

	got, err := Resolve(dir)
	if err != nil || got != newer {
		t.Fatalf("Resolve(dir) = %q, %v; want %q", got, err, newer)
	}
	if got, _ := Resolve(old); got != old {
		t.Fatalf("Resolve(file) = %q, want %q", got, old)
	}
}

func TestScanDir_Missing(t *testing.T) {
	files, err := ScanDir(filepath.Join(t.TempDir(), "absent"))
	if err != nil || files != nil {
		t.Fatalf("ScanDir(missing) = %v, %v; want nil, nil", files, err)
	}
	if _, err := Resolve(t.TempDir()); err == nil {
		t.Fatal("Resolve of empty dir should fail")
	}
}

func TestApplyExportRoundTrip(t *testing.T) {
	s, err := store.OpenDir(t.TempDir())
	if err != nil {
		t.Fatalf("OpenDir: %v", err)
	}
	defer func() { _ = s.Close() }()

	path := writeFile(t, t.TempDir(), "dump.json", sampleDump)
	res := ReadDump(path)
	if res.Err != nil {
		t.Fatalf("ReadDump: %v", res.Err)
	}

	st, err := Apply(res.Dump, s)
	if err != nil {
		t.Fatalf("Apply: %v", err)
	}
	if st.Foods != 2 || st.People != 1 || st.Expenses != 1 || !st.Budget || st.MealSets != 2 {
		t.Fatalf("ApplyStats = %+v", st)
	}

	day, _ := s.DayMealSet("2024-03-02", "ana", model.Consumed)
	if day.Count() != 1 {
		t.Fatalf("stored consumed count = %d, want 1", day.Count())
	}

	exported, err := Export(s)
	if err != nil {
		t.Fatalf("Export: %v", err)
	}
	if len(exported.FoodCatalog) != 2 || exported.Budget.Monthly != 450 || exported.MealDays() != 1 {
		t.Fatalf("exported = %+v", exported)
	}

	var buf bytes.Buffer
	if err := EncodeDump(&buf, exported); err != nil {
		t.Fatalf("EncodeDump: %v", err)
	}
	again := ParseDump(buf.Bytes())
	if again.Err != nil || len(again.ParseErrors) != 0 {
		t.Fatalf("re-parse: %v %v", again.Err, again.ParseErrors)
	}
	if again.Dump.Meals["2024-03-02"]["ana"].Consumed[model.Breakfast][0].Servings != 2 {
		t.Fatal("servings lost in round trip")
	}
}

func TestWriteDump(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "out.json")
	d := Dump{Budget: &model.Budget{Monthly: 99}}
	if err := WriteDump(path, d); err != nil {
		t.Fatalf("WriteDump: %v", err)
	}
	res := ReadDump(path)
	if res.Err != nil || res.Dump.Budget == nil || res.Dump.Budget.Monthly != 99 {
		t.Fatalf("ReadDump = %+v", res)
	}
}
