package services

import (
	"os"
	"sync"

	"github.com/sysarch/reportgen/pkg/model"
)

// DefaultModel loads the architecture model once, by MODEL_NAME from the
// working path with MODEL_FILE as the explicit fallback path.
var DefaultModel = sync.OnceValues(func() (*model.Model, error) {
	name := os.Getenv("MODEL_NAME")
	if name == "" {
		name = "SystemModel"
	}
	return model.Load(name, os.Getenv("MODEL_FILE"))
})

// OutputDir is where report files are written.
func OutputDir() string {
	if dir := os.Getenv("OUTPUT_DIR"); dir != "" {
		return dir
	}
	return "."
}
