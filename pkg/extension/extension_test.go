package extension

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func writeScript(t *testing.T, root, rel, body string) {
	t.Helper()
	p := filepath.Join(root, filepath.FromSlash(rel))
	if err := os.MkdirAll(filepath.Dir(p), 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(p, []byte(body), 0644); err != nil {
		t.Fatal(err)
	}
}

func TestDiscover(t *testing.T) {
	root := t.TempDir()
	for _, rel := range []string{
		"b-extension.js",
		"a_extension.js",
		"helper.js",
		"extension.min.js",
		"zz/editor-extension.js",
		"aa/deep/extension.js",
		"aa/inner-extension.js",
		"node_modules/pkg/extension.js",
		"aa/node_modules/other-extension.js",
	} {
		writeScript(t, root, rel, "module.exports = function () {}")
	}

	got, err := Discover(root)
	if err != nil {
		t.Fatal(err)
	}
	want := []string{
		"a_extension.js",
		"b-extension.js",
		"aa/inner-extension.js",
		"aa/deep/extension.js",
		"zz/editor-extension.js",
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Discover() = %v, want %v", got, want)
	}
}

func TestDiscoverMissingRoot(t *testing.T) {
	if _, err := Discover(filepath.Join(t.TempDir(), "Scripts")); err == nil {
		t.Fatal("expected error for missing root")
	}
}

func TestCombineRunsInOrderAndIsolates(t *testing.T) {
	var calls []string
	core, logs := observer.New(zapcore.WarnLevel)

	cleanup := Combine([]Cleanup{
		func() error { calls = append(calls, "first"); return nil },
		nil,
		func() error { calls = append(calls, "second"); return errors.New("boom") },
		func() error { calls = append(calls, "third"); panic("kaboom") },
		func() error { calls = append(calls, "fourth"); return nil },
	}, zap.New(core))

	cleanup()

	if !reflect.DeepEqual(calls, []string{"first", "second", "third", "fourth"}) {
		t.Fatalf("calls = %v", calls)
	}
	if logs.FilterMessage("extension cleanup failed").Len() != 2 {
		t.Fatalf("expected 2 logged failures, got %d", logs.Len())
	}
}

func TestRunner(t *testing.T) {
	root := t.TempDir()
	writeScript(t, root, "a-extension.js", `
module.exports = function () {
	console.log("hello a")
	return function () { console.log("bye a") }
}`)
	writeScript(t, root, "b-extension.js", `throw new Error("broken extension")`)
	writeScript(t, root, "c-extension.js", `module.exports = 42`)
	writeScript(t, root, "d-extension.js", `
module.exports = function () {
	return function () { throw new Error("cleanup failed") }
}`)
	writeScript(t, root, "tools/e-extension.js", `
const shared = require("./shared")
module.exports = function () {
	console.log("hello " + shared.name)
	return function () { console.log("bye " + shared.name) }
}`)
	writeScript(t, root, "tools/shared.js", `exports.name = "e"`)

	core, logs := observer.New(zapcore.InfoLevel)
	r := &Runner{Root: root, Logger: zap.New(core)}

	cleanup, err := r.Run()
	if err != nil {
		t.Fatal(err)
	}

	for _, msg := range []string{"hello a", "hello e"} {
		if logs.FilterMessage(msg).Len() != 1 {
			t.Fatalf("missing log %q", msg)
		}
	}
	if logs.FilterMessage("loading extension").Len() != 1 {
		t.Fatal("broken extension should be logged once")
	}
	if logs.FilterMessage("extension does not export a function").Len() != 1 {
		t.Fatal("non-function export should be logged")
	}
	if logs.FilterMessage("bye a").Len() != 0 {
		t.Fatal("cleanup ran early")
	}

	cleanup()

	for _, msg := range []string{"bye a", "bye e"} {
		if logs.FilterMessage(msg).Len() != 1 {
			t.Fatalf("missing log %q", msg)
		}
	}
	if logs.FilterMessage("extension cleanup failed").Len() != 1 {
		t.Fatal("failing cleanup should be logged and swallowed")
	}

	var order []string
	for _, e := range logs.All() {
		if e.Message == "bye a" || e.Message == "bye e" {
			order = append(order, e.Message)
		}
	}
	if !reflect.DeepEqual(order, []string{"bye a", "bye e"}) {
		t.Fatalf("cleanup order = %v", order)
	}
}

func TestRunnerMissingRoot(t *testing.T) {
	r := &Runner{Root: filepath.Join(t.TempDir(), "missing")}
	cleanup, err := r.Run()
	if err == nil {
		t.Fatal("expected error")
	}
	cleanup()
}
