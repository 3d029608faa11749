package services

import (
	"os"
	"sync"

	"github.com/sysarch/reportgen/pkg/reqstore"
)

// DefaultRequirementStore opens the requirement database at
// REQUIREMENTS_DB (default requirements.json), empty when the file does
// not exist yet. An unreadable store is unrecoverable here; the panic is
// caught by the action's error guard.
var DefaultRequirementStore = sync.OnceValue(func() *reqstore.Store {
	path := os.Getenv("REQUIREMENTS_DB")
	if path == "" {
		path = "requirements.json"
	}
	s, err := reqstore.Open(path)
	if err != nil {
		panic("failed to open requirement store: " + err.Error())
	}
	return s
})
