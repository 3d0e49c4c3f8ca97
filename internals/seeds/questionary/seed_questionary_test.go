package questionary

import (
	"os"
	"path/filepath"
	"testing"

	"personavix_backend/internals/features/questionary/model"
	"personavix_backend/internals/testutil"
)

func TestSeedQuestionaryIsIdempotent(t *testing.T) {
	db := testutil.SetupTestDB(t)
	log := testutil.NewTestLogger()

	for i := 0; i < 2; i++ {
		if err := SeedQuestionaryFromJSON(db, log, "data_questionary.json"); err != nil {
			t.Fatalf("run %d: %v", i+1, err)
		}
	}

	var questions, characteristics int64
	db.Model(&model.QuestionModel{}).Count(&questions)
	db.Model(&model.DiscCharacteristicModel{}).Count(&characteristics)
	if questions != 10 || characteristics != 40 {
		t.Fatalf("got %d questions / %d characteristics, want 10 / 40", questions, characteristics)
	}
}

func TestSeedQuestionaryRejectsUnknownFactor(t *testing.T) {
	db := testutil.SetupTestDB(t)
	file := filepath.Join(t.TempDir(), "bad.json")
	body := `[{"pergunta":"Teste","caracteristicas":[{"caracteristica":"Calmo","fator":"Paciência"}]}]`
	if err := os.WriteFile(file, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}

	if err := SeedQuestionaryFromJSON(db, testutil.NewTestLogger(), file); err == nil {
		t.Fatal("expected error for unknown factor")
	}
	var n int64
	db.Model(&model.QuestionModel{}).Count(&n)
	if n != 0 {
		t.Fatalf("nothing should be inserted, got %d", n)
	}
}
