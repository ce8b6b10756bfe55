// ABOUTME: Integration tests for flashdeck CLI commands.
// ABOUTME: Tests full workflow from creating a deck to removing it.

package test

import (
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"
)

var flashdeckBin string

func TestMain(m *testing.M) {
	// Build flashdeck binary
	cmd := exec.Command("go", "build", "-o", "bin/flashdeck", "./cmd/flashdeck")
	cmd.Dir = ".."
	if err := cmd.Run(); err != nil {
		panic(err)
	}

	wd, _ := os.Getwd()
	flashdeckBin = filepath.Join(wd, "..", "bin", "flashdeck")

	os.Exit(m.Run())
}

type testEnv struct {
	root    string
	decks   string
	storage string
	catalog string
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	root := t.TempDir()
	env := &testEnv{
		root:    root,
		decks:   filepath.Join(root, "decks"),
		storage: filepath.Join(root, "storage"),
		catalog: filepath.Join(root, "catalog.db"),
	}
	if err := os.MkdirAll(env.decks, 0755); err != nil {
		t.Fatal(err)
	}
	return env
}

func (e *testEnv) run(args ...string) (string, error) {
	allArgs := append([]string{"--catalog", e.catalog, "--storage", e.storage}, args...)
	cmd := exec.Command(flashdeckBin, allArgs...) //nolint:gosec // Running our own test binary is expected in integration tests
	cmd.Env = append(os.Environ(),
		"FLASHDECK_CONFIG_DIR="+filepath.Join(e.root, "config"),
		"XDG_DATA_HOME="+filepath.Join(e.root, "data"),
		"FLASHDECK_LOG_LEVEL=",
	)
	out, err := cmd.CombinedOutput()
	return string(out), err
}

func (e *testEnv) writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(e.root, name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func idPrefixFor(t *testing.T, listOutput, name string) string {
	t.Helper()
	for _, line := range strings.Split(listOutput, "\n") {
		if strings.Contains(line, name) {
			fields := strings.Fields(line)
			if len(fields) > 0 {
				return fields[0]
			}
		}
	}
	t.Fatalf("could not extract ID prefix for %q from:\n%s", name, listOutput)
	return ""
}

func TestNewListShowRemove(t *testing.T) {
	env := newTestEnv(t)
	image := env.writeFile(t, "cell.png", "not really a png")

	out, err := env.run("new", "Cell Biology", "-o", env.decks,
		"--side", "Basic unit of life?", "--side", "The cell",
		"--field", "cell", "--attach", image, "--rc", "2")
	if err != nil {
		t.Fatalf("new failed: %v\n%s", err, out)
	}
	if !strings.Contains(out, "Created deck") {
		t.Errorf("expected 'Created deck' in output: %s", out)
	}

	archivePath := filepath.Join(env.decks, "Cell_Biology.deck")
	if _, err := os.Stat(archivePath); err != nil {
		t.Fatalf("expected archive at %s: %v", archivePath, err)
	}

	out, err = env.run("list")
	if err != nil {
		t.Fatalf("list failed: %v\n%s", err, out)
	}
	idPrefix := idPrefixFor(t, out, "Cell Biology")

	out, err = env.run("show", idPrefix)
	if err != nil {
		t.Fatalf("show failed: %v\n%s", err, out)
	}
	if !strings.Contains(out, "The cell") {
		t.Errorf("expected card side in show: %s", out)
	}
	if !strings.Contains(out, "rc 2") {
		t.Errorf("expected attachment rc in show: %s", out)
	}

	entries, err := os.ReadDir(filepath.Join(env.storage, "storage"))
	if err != nil {
		t.Fatalf("expected storage directory after show: %v", err)
	}
	if len(entries) != 1 || !strings.HasSuffix(entries[0].Name(), ".png") {
		t.Errorf("expected one png in storage, got %v", entries)
	}

	out, err = env.run("rm", idPrefix, "--force", "--purge")
	if err != nil {
		t.Fatalf("rm failed: %v\n%s", err, out)
	}
	if !strings.Contains(out, "Removed") {
		t.Errorf("expected 'Removed' in output: %s", out)
	}
	if _, err := os.Stat(archivePath); !os.IsNotExist(err) {
		t.Errorf("expected archive to be purged, got %v", err)
	}
}

func TestCardAndAttach(t *testing.T) {
	env := newTestEnv(t)

	if out, err := env.run("new", "Genetics", "-o", env.decks); err != nil {
		t.Fatalf("new failed: %v\n%s", err, out)
	}
	archivePath := filepath.Join(env.decks, "Genetics.deck")

	out, err := env.run("card", archivePath, "--side", "DNA?", "--side", "Deoxyribonucleic acid")
	if err != nil {
		t.Fatalf("card failed: %v\n%s", err, out)
	}
	if !strings.Contains(out, "Added card 1") {
		t.Errorf("expected 'Added card 1' in output: %s", out)
	}

	doc := env.writeFile(t, "helix.txt", "double helix")
	out, err = env.run("attach", archivePath, doc)
	if err != nil {
		t.Fatalf("attach failed: %v\n%s", err, out)
	}
	if !strings.Contains(out, "Attached") {
		t.Errorf("expected 'Attached' in output: %s", out)
	}

	out, err = env.run("card", archivePath, "--side", "RNA?", "--side", "Ribonucleic acid")
	if err != nil {
		t.Fatalf("second card failed: %v\n%s", err, out)
	}

	out, err = env.run("show", archivePath)
	if err != nil {
		t.Fatalf("show failed: %v\n%s", err, out)
	}
	for _, want := range []string{"DNA?", "RNA?", ".txt"} {
		if !strings.Contains(out, want) {
			t.Errorf("expected %q in show output: %s", want, out)
		}
	}
	if strings.Contains(out, "closed") {
		t.Errorf("expected attachment bytes to survive re-saves: %s", out)
	}
}

func TestSearch(t *testing.T) {
	env := newTestEnv(t)

	_, _ = env.run("new", "Marine Biology", "-o", env.decks)
	_, _ = env.run("new", "Spanish Verbs", "-o", env.decks)

	out, _ := env.run("list", "--search", "marine")
	if !strings.Contains(out, "Marine Biology") {
		t.Errorf("expected 'Marine Biology' in search: %s", out)
	}
	if strings.Contains(out, "Spanish Verbs") {
		t.Errorf("did not expect 'Spanish Verbs' in search: %s", out)
	}
}

func TestVerifyDetectsModification(t *testing.T) {
	env := newTestEnv(t)

	if out, err := env.run("new", "History", "-o", env.decks); err != nil {
		t.Fatalf("new failed: %v\n%s", err, out)
	}
	archivePath := filepath.Join(env.decks, "History.deck")

	out, err := env.run("verify", archivePath)
	if err != nil {
		t.Fatalf("verify failed on untouched archive: %v\n%s", err, out)
	}
	if !strings.Contains(out, "matches") {
		t.Errorf("expected match in output: %s", out)
	}

	f, err := os.OpenFile(archivePath, os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		t.Fatal(err)
	}
	_, _ = f.WriteString("tampered")
	_ = f.Close()

	out, err = env.run("verify", archivePath)
	if err == nil {
		t.Fatalf("expected verify to fail on modified archive:\n%s", out)
	}

	if out, err := env.run("verify", archivePath, "--update"); err != nil {
		t.Fatalf("verify --update failed: %v\n%s", err, out)
	}
	if out, err := env.run("verify", archivePath); err != nil {
		t.Fatalf("verify after update failed: %v\n%s", err, out)
	}
}

func TestExportImport(t *testing.T) {
	env := newTestEnv(t)

	if out, err := env.run("new", "Latin", "-o", env.decks, "--side", "amare", "--side", "to love"); err != nil {
		t.Fatalf("new failed: %v\n%s", err, out)
	}
	exportPath := filepath.Join(env.root, "latin.yaml")

	out, err := env.run("export", filepath.Join(env.decks, "Latin.deck"), "-f", "yaml", "-o", exportPath)
	if err != nil {
		t.Fatalf("export failed: %v\n%s", err, out)
	}

	out, err = env.run("import", exportPath, "Latin Copy", "-o", env.decks)
	if err != nil {
		t.Fatalf("import failed: %v\n%s", err, out)
	}
	if !strings.Contains(out, "Imported 1 cards") {
		t.Errorf("expected import count in output: %s", out)
	}

	out, err = env.run("show", filepath.Join(env.decks, "Latin_Copy.deck"))
	if err != nil {
		t.Fatalf("show failed: %v\n%s", err, out)
	}
	if !strings.Contains(out, "to love") {
		t.Errorf("expected imported card in show: %s", out)
	}
}

func TestNewRefusesOverwrite(t *testing.T) {
	env := newTestEnv(t)

	if out, err := env.run("new", "Music", "-o", env.decks); err != nil {
		t.Fatalf("new failed: %v\n%s", err, out)
	}
	if out, err := env.run("new", "Music", "-o", env.decks); err == nil {
		t.Fatalf("expected second new to fail:\n%s", out)
	}
	if out, err := env.run("new", "Music", "-o", env.decks, "--force"); err != nil {
		t.Fatalf("new --force failed: %v\n%s", err, out)
	}
}

func TestImportRefusesOverwrite(t *testing.T) {
	env := newTestEnv(t)

	if out, err := env.run("new", "Bio", "-o", env.decks, "--side", "original"); err != nil {
		t.Fatalf("new failed: %v\n%s", err, out)
	}
	cards := env.writeFile(t, "cards.json", `{"cards": [{"fields": [], "sides": [{"data": "imported"}], "auto_rendering": false}]}`)
	archivePath := filepath.Join(env.decks, "Bio.deck")

	if out, err := env.run("import", cards, "Bio", "-o", env.decks); err == nil {
		t.Fatalf("expected import onto an existing archive to fail:\n%s", out)
	}
	out, err := env.run("show", archivePath)
	if err != nil {
		t.Fatalf("show failed: %v\n%s", err, out)
	}
	if !strings.Contains(out, "original") {
		t.Errorf("expected original deck to be untouched: %s", out)
	}

	if out, err := env.run("import", cards, "Bio", "-o", env.decks, "--force"); err != nil {
		t.Fatalf("import --force failed: %v\n%s", err, out)
	}
	out, err = env.run("list")
	if err != nil {
		t.Fatalf("list failed: %v\n%s", err, out)
	}
	if n := strings.Count(out, archivePath); n != 1 {
		t.Errorf("expected one catalog entry for %s, got %d:\n%s", archivePath, n, out)
	}
	out, err = env.run("show", archivePath)
	if err != nil {
		t.Fatalf("show failed: %v\n%s", err, out)
	}
	if !strings.Contains(out, "imported") {
		t.Errorf("expected imported deck after --force: %s", out)
	}
}
