// Package items implements the jot tree: vaults, folders and notes mirrored
// one-to-one onto a directory tree, plus the per-vault store that records the
// active folder and note aliases.
//
// Folders and vaults share the Item capability (create, load, relocate,
// rename, delete) and the Collection capability (list folders and notes).
// In memory, a tree is an arena of nodes addressed by index; a *Folder is a
// handle into that arena, and a *Vault is a root folder plus its VaultStore.
//
// Layout on disk:
//
//	vault/
//	├── .jot/
//	│   └── data        (VaultStore, YAML)
//	├── ideas.md
//	└── projects/
//	    └── jot.md
//
// Entries named ".jot" are never part of the tree at any level.
package items
