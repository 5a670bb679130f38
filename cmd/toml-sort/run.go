package main

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/fatih/color"
	"github.com/scott-cotton/cli"
	diffpatch "github.com/sergi/go-diff/diffmatchpatch"

	"github.com/toml-fmt/toml-sort/encode"
	"github.com/toml-fmt/toml-sort/format"
	"github.com/toml-fmt/toml-sort/parse"
	tomlsort "github.com/toml-fmt/toml-sort/sort"
	"github.com/toml-fmt/toml-sort/workspace"
)

func sortMain(cfg *MainConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Main.Parse(cc, args)
	if err != nil {
		return err
	}
	if cfg.Check && cfg.Write {
		return fmt.Errorf("%w: -check and -write are mutually exclusive", cli.ErrUsage)
	}
	cfg.setupColor()
	paths, err := resolvePaths(cfg, args)
	if err != nil {
		return err
	}

	dirty, errored := false, false
	for _, p := range paths {
		changed, err := processFile(cfg, cc, p)
		if err != nil {
			fmt.Fprintf(os.Stderr, "%s %v\n", color.RedString("error:"), err)
			errored = true
			continue
		}
		if changed {
			dirty = true
		}
	}
	if errored || (dirty && !cfg.Write) {
		if !cfg.Print {
			fmt.Fprintf(cc.Out, "%s manifests need sorting\n",
				color.New(color.FgHiRed, color.Bold).Sprint("Failure"))
		}
		os.Exit(1)
	}
	if !cfg.Print {
		fmt.Fprintf(cc.Out, "%s all manifests are sorted\n",
			color.New(color.FgHiGreen, color.Bold).Sprint("Success"))
	}
	return nil
}

// resolvePaths maps the positional arguments to manifest files.  A
// directory argument means its Cargo.toml; no arguments means the
// nearest manifest above the working directory.  With -workspace each
// manifest expands to all its member manifests.
func resolvePaths(cfg *MainConfig, args []string) ([]string, error) {
	var manifests []string
	if len(args) == 0 {
		m, err := workspace.Find(".")
		if err != nil {
			return nil, err
		}
		manifests = []string{m}
	}
	for _, a := range args {
		fi, err := os.Stat(a)
		if err != nil {
			return nil, err
		}
		if !fi.IsDir() {
			manifests = append(manifests, a)
			continue
		}
		m := filepath.Join(a, workspace.ManifestName)
		if _, err := os.Stat(m); err != nil {
			return nil, fmt.Errorf("%w: %s", workspace.ErrNoManifest, a)
		}
		manifests = append(manifests, m)
	}
	if !cfg.Workspace {
		return manifests, nil
	}
	var expanded []string
	seen := map[string]bool{}
	for _, m := range manifests {
		members, err := workspace.Manifests(m)
		if err != nil {
			return nil, err
		}
		for _, mm := range members {
			if !seen[mm] {
				seen[mm] = true
				expanded = append(expanded, mm)
			}
		}
	}
	return expanded, nil
}

func processFile(cfg *MainConfig, cc *cli.Context, path string) (bool, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return false, err
	}
	style, cerr := format.LoadConfig(filepath.Dir(path))
	if cerr != nil {
		fmt.Fprintf(os.Stderr, "%s %v, using defaults\n", color.YellowString("warning:"), cerr)
	}
	out, err := transform(cfg, src, &style)
	if err != nil {
		return false, fmt.Errorf("%s: %w", path, err)
	}
	changed := !bytes.Equal(out, src)
	switch {
	case cfg.Print:
		if _, err := cc.Out.Write(out); err != nil {
			return changed, err
		}
	case cfg.Write && changed:
		if err := os.WriteFile(path, out, 0644); err != nil {
			return changed, err
		}
		fmt.Fprintf(cc.Out, "%s %s\n", color.GreenString("fixed"), path)
	case changed:
		fmt.Fprintf(cc.Out, "%s %s\n", color.RedString("needs sorting"), path)
		if cfg.Check {
			printDiff(cc.Out, src, out)
		}
	default:
		fmt.Fprintf(cc.Out, "%s %s\n", color.GreenString("ok"), path)
	}
	return changed, nil
}

func transform(cfg *MainConfig, src []byte, style *format.Config) ([]byte, error) {
	doc, err := parse.Parse(src)
	if err != nil {
		return nil, err
	}
	if err := tomlsort.Sort(doc, tomlsort.Default, cfg.Grouped, cfg.orderList(style)); err != nil {
		return nil, err
	}
	if !cfg.NoFormat {
		format.Format(doc, style)
	}
	return []byte(encode.MustString(doc)), nil
}

// printDiff shows what would change, deletions red, insertions green.
func printDiff(w io.Writer, src, out []byte) {
	dmp := diffpatch.New()
	diffs := dmp.DiffMain(string(src), string(out), false)
	diffs = dmp.DiffCleanupSemantic(diffs)
	for _, d := range diffs {
		switch d.Type {
		case diffpatch.DiffDelete:
			fmt.Fprint(w, color.RedString("%s", d.Text))
		case diffpatch.DiffInsert:
			fmt.Fprint(w, color.GreenString("%s", d.Text))
		default:
			fmt.Fprint(w, d.Text)
		}
	}
	fmt.Fprintln(w)
}
