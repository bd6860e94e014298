package e2e

import (
	"os"
	"path/filepath"

	"github.com/abelbrown/cupid/internal/owned"
	"github.com/abelbrown/cupid/internal/store"
)

// seedOwned writes ids into the owned slot of ~/.cupid/cupid.db under homeDir.
func seedOwned(homeDir string, ids ...int) error {
	dataDir := filepath.Join(homeDir, ".cupid")
	if err := os.MkdirAll(dataDir, 0755); err != nil {
		return err
	}
	st, err := store.Open(filepath.Join(dataDir, "cupid.db"))
	if err != nil {
		return err
	}
	defer st.Close()

	owned.NewAdapter(st, owned.DefaultKey).Save(ids)
	return nil
}

// readOwned returns the ids persisted under homeDir.
func readOwned(homeDir string) ([]int, error) {
	st, err := store.Open(filepath.Join(homeDir, ".cupid", "cupid.db"))
	if err != nil {
		return nil, err
	}
	defer st.Close()
	return owned.NewAdapter(st, owned.DefaultKey).Load(), nil
}
