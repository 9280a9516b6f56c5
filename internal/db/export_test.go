package db

import "io/fs"

func MigrationFiles() fs.FS { return migrationFiles }
