package export

import (
	"bytes"
	"os"
	"strings"
	"testing"
	"time"

	"plafond/internal/engine"
	"plafond/internal/session"
	"plafond/internal/store"
)

func samplePlan(t *testing.T) Plan {
	t.Helper()
	tr := session.New(store.NewMemory(), session.WithClock(func() time.Time {
		return time.Date(2026, time.September, 1, 12, 0, 0, 0, time.UTC)
	}))
	tr.SetEarnedCA(45000)
	tr.SetVATEnabled(true)
	if err := tr.SetVATRate(20); err != nil {
		t.Fatal(err)
	}
	tr.AddMission(500, 10, engine.MissionImpact(500, 10, true, 20))

	return Plan{
		State:       tr.State(),
		Snapshot:    tr.Snapshot(),
		GeneratedAt: time.Date(2026, time.September, 1, 12, 0, 0, 0, time.UTC),
	}
}

func TestFilenameEmbedsDate(t *testing.T) {
	at := time.Date(2026, time.September, 1, 9, 30, 0, 0, time.UTC)
	if got := Filename(at); got != "plafond-plan-2026-09-01.pdf" {
		t.Errorf("Filename = %q", got)
	}
}

func TestWriteProducesPDF(t *testing.T) {
	var buf bytes.Buffer
	if err := Write(&buf, samplePlan(t)); err != nil {
		t.Fatalf("Write: %v", err)
	}
	if buf.Len() == 0 {
		t.Fatal("empty output")
	}
	if !strings.HasPrefix(buf.String(), "%PDF") {
		t.Errorf("output does not start with %%PDF header")
	}
}

func TestSaveWritesFile(t *testing.T) {
	dir := t.TempDir()
	path, err := Save(dir, samplePlan(t))
	if err != nil {
		t.Fatalf("Save: %v", err)
	}
	if !strings.HasSuffix(path, "plafond-plan-2026-09-01.pdf") {
		t.Errorf("path = %q", path)
	}
	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("stat: %v", err)
	}
	if info.Size() == 0 {
		t.Fatal("saved report is empty")
	}
}

func TestFrenchDate(t *testing.T) {
	at := time.Date(2026, time.September, 1, 0, 0, 0, 0, time.UTC)
	if got := frenchDate(at); got != "1 Septembre 2026" {
		t.Errorf("frenchDate = %q", got)
	}
}
