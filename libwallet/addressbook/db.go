package addressbook

import (
	"fmt"
	"os"
	"time"

	"github.com/asdine/storm"
	bolt "go.etcd.io/bbolt"

	"code.cryptopower.dev/group/ethcompose/libwallet/utils"
)

const (
	DbName = "addressbook.db"

	BookBucketName = "AddressBookInfo"
	KeyDbVersion   = "DbVersion"

	// BookDbVersion forces the saved entries to be dropped when the structure
	// of Entry changes. Increment it whenever Entry changes incompatibly.
	BookDbVersion uint32 = 1

	openTimeout = 2 * time.Second
)

// Book is the user's address book. Messages saved by the user take
// precedence over the fallback resolver.
type Book struct {
	db       *storm.DB
	fallback Resolver
	Close    func() error
}

// Open opens the existing storm db at `dbPath` and checks the database
// version for compatibility. If there is a version mismatch or the db does
// not exist at `dbPath`, a new db is created and the current db version number
// saved to the db. A nil fallback means only saved entries are resolved.
func Open(dbPath string, fallback Resolver) (*Book, error) {
	bookDB, err := openOrCreateDB(dbPath)
	if err != nil {
		return nil, err
	}

	bookDB, err = ensureBookDatabaseVersion(bookDB)
	if err != nil {
		bookDB.Close()
		return nil, err
	}

	// init bucket for saving/reading address book entries
	err = bookDB.Init(&Entry{})
	if err != nil {
		bookDB.Close()
		return nil, fmt.Errorf("error initializing address book bucket: %s", err.Error())
	}

	return &Book{
		db:       bookDB,
		fallback: fallback,
		Close:    bookDB.Close,
	}, nil
}

func openOrCreateDB(dbPath string) (*storm.DB, error) {
	var isNewDbFile bool

	// first check if db file exists at dbPath, if not we'll need to create it and set the db version
	if _, err := os.Stat(dbPath); err != nil {
		if os.IsNotExist(err) {
			isNewDbFile = true
		} else {
			return nil, fmt.Errorf("error checking address book database file: %s", err.Error())
		}
	}

	bookDB, err := storm.Open(dbPath, storm.BoltOptions(0600, &bolt.Options{Timeout: openTimeout}))
	if err != nil {
		switch err {
		case bolt.ErrTimeout:
			// timeout error occurs if storm fails to acquire a lock on the database file
			return nil, fmt.Errorf("%s: address book database is in use by another process", utils.ErrAddressBookInUse)
		default:
			return nil, fmt.Errorf("error opening address book database: %s", err.Error())
		}
	}

	if isNewDbFile {
		log.Infof("Created address book database at %s", dbPath)
		err = bookDB.Set(BookBucketName, KeyDbVersion, BookDbVersion)
		if err != nil {
			bookDB.Close()
			os.RemoveAll(dbPath)
			return nil, fmt.Errorf("error initializing address book db: %s", err.Error())
		}
	}

	return bookDB, nil
}

// ensureBookDatabaseVersion checks the version of the existing db against
// `BookDbVersion`. Saved entries are dropped when the versions differ.
func ensureBookDatabaseVersion(bookDB *storm.DB) (*storm.DB, error) {
	var currentDbVersion uint32
	err := bookDB.Get(BookBucketName, KeyDbVersion, &currentDbVersion)
	if err != nil && err != storm.ErrNotFound {
		return nil, fmt.Errorf("error checking address book database version: %s", err.Error())
	}

	if currentDbVersion != BookDbVersion {
		log.Warnf("Address book version %d is outdated, dropping saved entries", currentDbVersion)
		if err = bookDB.Drop(&Entry{}); err != nil && err != bolt.ErrBucketNotFound {
			return nil, fmt.Errorf("error deleting outdated address book entries: %s", err.Error())
		}

		if err = bookDB.Set(BookBucketName, KeyDbVersion, BookDbVersion); err != nil {
			return nil, fmt.Errorf("error updating address book db version: %s", err.Error())
		}
	}

	return bookDB, nil
}
