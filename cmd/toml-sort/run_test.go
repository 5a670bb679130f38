package main

import (
	"os"
	"path/filepath"
	"slices"
	"testing"

	"github.com/toml-fmt/toml-sort/format"
	"github.com/toml-fmt/toml-sort/workspace"
)

func TestTransform(t *testing.T) {
	cfg := &MainConfig{}
	style := format.DefaultConfig()
	in := "[dependencies]\nb=\"1\"\na=\"2\"\n"
	want := "[dependencies]\na = \"2\"\nb = \"1\"\n"
	out, err := transform(cfg, []byte(in), &style)
	if err != nil {
		t.Fatal(err)
	}
	if string(out) != want {
		t.Errorf("got  %q\nwant %q", out, want)
	}
}

func TestTransformTableOrder(t *testing.T) {
	cfg := &MainConfig{}
	style := format.DefaultConfig()
	in := "[dev-dependencies]\nz = \"1\"\n\n[package]\nname = \"x\"\n\n[dependencies]\na = \"1\"\n"
	want := "[package]\nname = \"x\"\n\n[dependencies]\na = \"1\"\n[dev-dependencies]\nz = \"1\"\n"
	out, err := transform(cfg, []byte(in), &style)
	if err != nil {
		t.Fatal(err)
	}
	if string(out) != want {
		t.Errorf("got  %q\nwant %q", out, want)
	}
}

func TestTransformNoFormat(t *testing.T) {
	cfg := &MainConfig{NoFormat: true}
	style := format.DefaultConfig()
	style.TableOrder = nil
	in := "[dependencies]\nb=\"1\"\na=\"2\"\n"
	want := "[dependencies]\na=\"2\"\nb=\"1\"\n"
	out, err := transform(cfg, []byte(in), &style)
	if err != nil {
		t.Fatal(err)
	}
	if string(out) != want {
		t.Errorf("got  %q\nwant %q", out, want)
	}
}

func TestTransformIdempotent(t *testing.T) {
	cfg := &MainConfig{Grouped: true}
	style := format.DefaultConfig()
	in := "# manifest\n[package]\nname = \"demo\"\nversion = \"0.1.0\"\n\n[dependencies]\nserde = { version = \"1.0\", features = [\"derive\"] }\nanyhow = \"1\"\n\nclap = \"4\"\n"
	out1, err := transform(cfg, []byte(in), &style)
	if err != nil {
		t.Fatal(err)
	}
	out2, err := transform(cfg, out1, &style)
	if err != nil {
		t.Fatal(err)
	}
	if string(out1) != string(out2) {
		t.Errorf("not idempotent:\nfirst  %q\nsecond %q", out1, out2)
	}
}

func TestOrderList(t *testing.T) {
	style := format.DefaultConfig()
	cfg := &MainConfig{}
	if got := cfg.orderList(&style); !slices.Equal(got, style.TableOrder) {
		t.Errorf("default order = %v", got)
	}
	cfg.Order = "package, dependencies,,dev-dependencies "
	want := []string{"package", "dependencies", "dev-dependencies"}
	if got := cfg.orderList(&style); !slices.Equal(got, want) {
		t.Errorf("flag order = %v, want %v", got, want)
	}
}

func TestResolvePaths(t *testing.T) {
	root := t.TempDir()
	manifest := filepath.Join(root, workspace.ManifestName)
	if err := os.WriteFile(manifest, []byte("[package]\nname = \"x\"\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg := &MainConfig{}
	got, err := resolvePaths(cfg, []string{root})
	if err != nil {
		t.Fatal(err)
	}
	if !slices.Equal(got, []string{manifest}) {
		t.Errorf("dir arg: got %v, want %v", got, manifest)
	}

	got, err = resolvePaths(cfg, []string{manifest})
	if err != nil {
		t.Fatal(err)
	}
	if !slices.Equal(got, []string{manifest}) {
		t.Errorf("file arg: got %v", got)
	}

	if _, err := resolvePaths(cfg, []string{filepath.Join(root, "missing")}); err == nil {
		t.Error("missing path: expected error")
	}
}

func TestResolvePathsWorkspace(t *testing.T) {
	root := t.TempDir()
	manifest := filepath.Join(root, workspace.ManifestName)
	body := "[workspace]\nmembers = [\"member\"]\n"
	if err := os.WriteFile(manifest, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	memberDir := filepath.Join(root, "member")
	if err := os.MkdirAll(memberDir, 0o755); err != nil {
		t.Fatal(err)
	}
	member := filepath.Join(memberDir, workspace.ManifestName)
	if err := os.WriteFile(member, []byte("[package]\nname = \"m\"\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg := &MainConfig{Workspace: true}
	got, err := resolvePaths(cfg, []string{manifest})
	if err != nil {
		t.Fatal(err)
	}
	if !slices.Equal(got, []string{manifest, member}) {
		t.Errorf("got %v, want [%s %s]", got, manifest, member)
	}
}
