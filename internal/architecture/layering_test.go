package architecture_test

import (
	"fmt"
	"go/parser"
	"go/token"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// Two rules hold across internal/modules: a module reaches into another
// module only through that module's port/in or dto packages, and within
// a module the inner layers never import outward (domain knows nothing,
// service may not see usecases or adapters, usecases may not see
// adapters, adapter/in sees only port/in and dto).

var knownLayers = []string{
	"adapter/in", "adapter/out", "port/in", "port/out",
	"domain", "dto", "service", "usecase",
}

func TestModuleBoundaries(t *testing.T) {
	t.Parallel()
	for _, violation := range collectViolations(t) {
		t.Error(violation)
	}
}

func collectViolations(t *testing.T) []string {
	t.Helper()
	fset := token.NewFileSet()
	violations := []string{}
	root := filepath.Join("..", "modules")
	err := filepath.WalkDir(root, func(path string, d os.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if d.IsDir() || !strings.HasSuffix(path, ".go") || strings.HasSuffix(path, "_test.go") {
			return nil
		}
		module, layer := classify(filepath.ToSlash(path))
		if module == "" || layer == "" {
			return nil
		}
		file, parseErr := parser.ParseFile(fset, path, nil, parser.ImportsOnly)
		if parseErr != nil {
			return parseErr
		}
		for _, imp := range file.Imports {
			target := strings.Trim(imp.Path.Value, `"`)
			rest, ok := strings.CutPrefix(target, "worklog/internal/modules/")
			if !ok {
				continue
			}
			if reason := checkEdge(module, layer, rest); reason != "" {
				violations = append(violations, fmt.Sprintf("%s imports %s: %s", path, target, reason))
			}
		}
		return nil
	})
	if err != nil {
		t.Fatalf("walk modules: %v", err)
	}
	return violations
}

// classify extracts the module name and layer from a source file path
// under internal/modules. Files outside a known layer are skipped.
func classify(path string) (string, string) {
	segments := strings.Split(path, "/")
	for i, segment := range segments {
		if segment != "modules" || i+2 >= len(segments) {
			continue
		}
		pkg := strings.Join(segments[i+2:len(segments)-1], "/")
		return segments[i+1], layerOf(pkg)
	}
	return "", ""
}

func layerOf(pkg string) string {
	for _, layer := range knownLayers {
		if pkg == layer || strings.HasPrefix(pkg, layer+"/") {
			return layer
		}
	}
	return ""
}

// checkEdge judges one import edge. rest is the import path below
// internal/modules (e.g. "session/port/in"). An empty result means the
// edge is allowed.
func checkEdge(module, layer, rest string) string {
	targetModule, targetPkg, _ := strings.Cut(rest, "/")
	targetLayer := layerOf(targetPkg)

	if targetModule != module {
		if targetLayer != "port/in" && targetLayer != "dto" {
			return "cross-module access must go through port/in or dto"
		}
		return ""
	}

	switch layer {
	case "adapter/in":
		if targetLayer != "port/in" && targetLayer != "dto" {
			return "inbound adapters see only port/in and dto"
		}
	case "usecase":
		if strings.HasPrefix(targetLayer, "adapter/") {
			return "usecases may not depend on adapters"
		}
	case "service":
		if strings.HasPrefix(targetLayer, "adapter/") || targetLayer == "usecase" {
			return "services may not depend on adapters or usecases"
		}
	case "domain":
		if targetLayer != "domain" {
			return "domain depends on nothing outside domain"
		}
	}
	return ""
}
