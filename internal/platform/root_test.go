package platform

import (
	"os"
	"path/filepath"
	"testing"
)

func TestFindRoot(t *testing.T) {
	// baseDir/
	//   vault/ (.jot)
	//     subdir/
	//       nested/
	//   empty/
	//   decoy/ (.jot is a file)

	baseDir := t.TempDir()
	vaultDir := filepath.Join(baseDir, "vault")
	subDir := filepath.Join(vaultDir, "subdir")
	nestedDir := filepath.Join(subDir, "nested")
	emptyDir := filepath.Join(baseDir, "empty")
	decoyDir := filepath.Join(baseDir, "decoy")

	for _, d := range []string{nestedDir, emptyDir, decoyDir} {
		if err := os.MkdirAll(d, 0755); err != nil {
			t.Fatal(err)
		}
	}
	if err := os.Mkdir(filepath.Join(vaultDir, ".jot"), 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(decoyDir, ".jot"), nil, 0644); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name      string
		startPath string
		wantRoot  string
		wantErr   bool
	}{
		{
			name:      "Start at Root",
			startPath: vaultDir,
			wantRoot:  vaultDir,
		},
		{
			name:      "Start in Subdir",
			startPath: subDir,
			wantRoot:  vaultDir,
		},
		{
			name:      "Start Nested Deeply",
			startPath: nestedDir,
			wantRoot:  vaultDir,
		},
		{
			name:      "No Root Found",
			startPath: emptyDir,
			wantErr:   true,
		},
		{
			name:      "Marker Must Be A Directory",
			startPath: decoyDir,
			wantErr:   true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := FindRoot(tt.startPath)
			if (err != nil) != tt.wantErr {
				t.Errorf("FindRoot() error = %v, wantErr %v", err, tt.wantErr)
				return
			}

			if got != "" && filepath.Clean(got) != filepath.Clean(tt.wantRoot) {
				t.Errorf("FindRoot() = %v, want %v", got, tt.wantRoot)
			}
		})
	}
}
