package domain

import "path/filepath"

const (
	// HomeEnvVar overrides the data directory when set.
	HomeEnvVar = "TASKER_HOME"

	// DataFileName is the name of the JSON catalog file.
	DataFileName = "data.json"

	// DatabaseFileName is the name of the SQLite catalog database.
	DatabaseFileName = "tasker.db"

	// ConfigFileName is the name of the settings file inside the data directory.
	ConfigFileName = "config.yaml"

	// DirPerm is the default permission for directories (rwxr-x---).
	DirPerm = 0o750

	// FilePerm is the default permission for files (rw-r--r--).
	FilePerm = 0o644
)

// DataDirFor returns the default data directory below the given home directory.
// It joins home, .local and tasker.
func DataDirFor(home string) string {
	return filepath.Join(home, ".local", "tasker")
}

// DataFilePath returns the path of the JSON catalog inside dataDir.
func DataFilePath(dataDir string) string {
	return filepath.Join(dataDir, DataFileName)
}

// DatabasePath returns the path of the SQLite catalog inside dataDir.
func DatabasePath(dataDir string) string {
	return filepath.Join(dataDir, DatabaseFileName)
}

// ConfigPath returns the path of the settings file inside dataDir.
func ConfigPath(dataDir string) string {
	return filepath.Join(dataDir, ConfigFileName)
}
