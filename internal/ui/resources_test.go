package ui

import (
	"image"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"fyne.io/fyne/v2/test"
)

func writePNG(t *testing.T, path string) {
	t.Helper()

	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("create %s: %v", path, err)
	}
	defer f.Close()

	if err := png.Encode(f, image.NewRGBA(image.Rect(0, 0, 2, 2))); err != nil {
		t.Fatalf("encode png: %v", err)
	}
}

func TestCoverLoader(t *testing.T) {
	test.NewApp()

	dir := t.TempDir()
	writePNG(t, filepath.Join(dir, "cover_1.png"))
	loader := NewCoverLoader(dir)

	res := loader.Load("cover_1")
	if res.Name() == PlaceholderCover().Name() {
		t.Fatal("Expected cover_1 to load from the assets directory")
	}
	if len(res.Content()) == 0 {
		t.Error("Loaded cover should have content")
	}

	// Cached even after the file is gone
	if err := os.Remove(filepath.Join(dir, "cover_1.png")); err != nil {
		t.Fatal(err)
	}
	if loader.Load("cover_1") != res {
		t.Error("Expected cached cover resource")
	}
}

func TestCoverLoaderPlaceholder(t *testing.T) {
	test.NewApp()

	dir := t.TempDir()
	loader := NewCoverLoader(dir)

	for _, name := range []string{"", "cover_9"} {
		if loader.Load(name).Name() != PlaceholderCover().Name() {
			t.Errorf("Load(%q) should return the placeholder", name)
		}
	}
}
