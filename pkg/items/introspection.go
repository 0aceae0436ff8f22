package items

import (
	"github.com/aretw0/introspection"
)

// VaultState exposes a snapshot of a vault for observability.
type VaultState struct {
	Name         string `json:"name"`
	Path         string `json:"path"`
	DataPath     string `json:"data_path"`
	ActiveFolder string `json:"active_folder"`
	Folders      int    `json:"folders"`
	Notes        int    `json:"notes"`
	Aliases      int    `json:"aliases"`
}

// State implements introspection.Introspectable.
func (v *Vault) State() any {
	folders, notes := v.Count()
	active, _ := v.store.FolderPath()

	return VaultState{
		Name:         v.Name(),
		Path:         v.Location().String(),
		DataPath:     v.DataPath(),
		ActiveFolder: active,
		Folders:      folders,
		Notes:        notes,
		Aliases:      len(v.store.aliases),
	}
}

// ComponentType implements introspection.Component.
func (v *Vault) ComponentType() string {
	return "vault"
}

var _ introspection.Introspectable = (*Vault)(nil)
var _ introspection.Component = (*Vault)(nil)
