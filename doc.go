// Package jot organizes markdown notes into vaults.
//
// A vault is a plain directory. Its subdirectories are folders, its ".md"
// files are notes, and a hidden ".jot" directory holds the vault's sidecar
// record: the active folder, the vault location and a table of aliases.
// Nothing else is stored, so a vault can be edited with any tool and
// reloaded at any time.
//
// Features:
//
//   - **In-memory tree**: folders and notes are loaded recursively and kept
//     consistent with the filesystem across rename, move and delete.
//   - **Navigation**: an active folder that relative operations anchor at,
//     bounded by the vault root.
//   - **Persistence**: the sidecar record is rewritten atomically after
//     every change.
//   - **Watching**: pkg/watch reloads a vault when it changes on disk.
//
// Usage:
//
//	v, err := jot.CreateVault("/home/me/notes", logger)
//	work, err := v.AddFolder("work")
//	err = v.ChangeFolder("work")
//	err = work.Rename("job")
package jot
