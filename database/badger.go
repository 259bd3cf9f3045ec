package database

import (
	"github.com/dgraph-io/badger/v4"
	"github.com/gofiber/fiber/v2/log"
)

var SessionDB *badger.DB

// OpenSessionStore opens the on-disk session store at path.
func OpenSessionStore(path string) {
	db, err := badger.Open(badger.DefaultOptions(path).WithLogger(nil))
	if err != nil {
		log.Fatalf("failed to open session store at %s: %v", path, err)
	}
	SessionDB = db
	log.Infof("session store opened at %s", path)
}

func CloseSessionStore() {
	if SessionDB == nil {
		return
	}
	if err := SessionDB.Close(); err != nil {
		log.Errorf("failed to close session store: %v", err)
	}
}
