// pkg/extension/runner.go
package extension

import (
	"path/filepath"
	"strings"

	"github.com/dop251/goja"
	"github.com/dop251/goja_nodejs/require"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// Runner loads every extension below Root into one JS runtime and collects
// the cleanup callbacks they return. A Runner is not safe for concurrent use.
type Runner struct {
	Root   string
	Logger *zap.Logger
}

// Run discovers and runs the extensions. Each extension module must export
// a function; if that function returns a function, it becomes a cleanup.
// A failing extension is logged and skipped. The returned callback runs all
// cleanups in discovery order.
func (r *Runner) Run() (func(), error) {
	logger := r.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	root, err := filepath.Abs(r.Root)
	if err != nil {
		return func() {}, errors.Wrap(err, "resolving scripts root")
	}

	names, err := Discover(root)
	if err != nil {
		return func() {}, err
	}

	vm := goja.New()
	registry := require.NewRegistry(require.WithGlobalFolders(root, filepath.Join(root, "node_modules")))
	req := registry.Enable(vm)
	enableConsole(vm, logger)

	cleanups := make([]Cleanup, 0, len(names))
	for _, name := range names {
		cleanups = append(cleanups, spawn(vm, req, root, name, logger))
	}

	logger.Info("extensions loaded", zap.Int("count", len(names)))
	return Combine(cleanups, logger), nil
}

// spawn runs one extension and returns its cleanup, or nil
func spawn(vm *goja.Runtime, req *require.RequireModule, root, name string, logger *zap.Logger) Cleanup {
	log := logger.With(zap.String("extension", name))

	exports, err := req.Require(filepath.ToSlash(filepath.Join(root, filepath.FromSlash(name))))
	if err != nil {
		log.Error("loading extension", zap.Error(err))
		return nil
	}

	entry, ok := goja.AssertFunction(exports)
	if !ok {
		log.Warn("extension does not export a function")
		return nil
	}

	ret, err := entry(goja.Undefined())
	if err != nil {
		log.Error("running extension", zap.Error(err))
		return nil
	}

	bye, ok := goja.AssertFunction(ret)
	if !ok {
		return nil
	}

	return func() error {
		_, err := bye(goja.Undefined())
		return errors.Wrapf(err, "cleaning up %s", name)
	}
}

// enableConsole installs a console object that writes to logger
func enableConsole(vm *goja.Runtime, logger *zap.Logger) {
	console := vm.NewObject()
	write := func(level func(string, ...zap.Field)) func(goja.FunctionCall) goja.Value {
		return func(call goja.FunctionCall) goja.Value {
			parts := make([]string, 0, len(call.Arguments))
			for _, arg := range call.Arguments {
				parts = append(parts, arg.String())
			}
			level(strings.Join(parts, " "), zap.String("source", "js"))
			return goja.Undefined()
		}
	}
	_ = console.Set("log", write(logger.Info))
	_ = console.Set("info", write(logger.Info))
	_ = console.Set("warn", write(logger.Warn))
	_ = console.Set("error", write(logger.Error))
	_ = vm.Set("console", console)
}
