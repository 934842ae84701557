package addressbook

import (
	"time"

	"decred.org/dcrwallet/v2/errors"
	"github.com/asdine/storm"

	"code.cryptopower.dev/group/ethcompose/libwallet/addresshelper"
	"code.cryptopower.dev/group/ethcompose/libwallet/utils"
)

// Entry is an address saved by the user, optionally carrying a message shown
// whenever the address is used as a recipient.
type Entry struct {
	Address   string `storm:"id"`
	Label     string
	Message   AddressMessage
	CreatedAt int64 `storm:"index"`
}

// Save saves an entry to the database and overwrites any entry saved for the
// same address. The address is validated and stored lowercase.
func (book *Book) Save(entry *Entry) error {
	const op errors.Op = "addressbook.Save"

	if _, err := addresshelper.ParseAddress(entry.Address); err != nil {
		return errors.E(op, errors.Invalid, err)
	}
	if entry.Label == "" && entry.Message.Msg == "" {
		return errors.E(op, errors.Invalid, "entry needs a label or a message")
	}

	entry.Address = addresshelper.NormalizeAddress(entry.Address)
	if entry.Message.Severity == "" {
		entry.Message.Severity = SeverityInfo
	}

	var existing Entry
	err := book.db.One("Address", entry.Address, &existing)
	switch {
	case err == storm.ErrNotFound:
		if entry.CreatedAt == 0 {
			entry.CreatedAt = time.Now().Unix()
		}
	case err != nil:
		return errors.Errorf("error checking if address was already saved: %s", err.Error())
	default:
		entry.CreatedAt = existing.CreatedAt
		log.Debugf("Overwriting address book entry %s", entry.Address)
	}

	return book.db.Save(entry)
}

// Delete removes the entry saved for the address.
func (book *Book) Delete(address string) error {
	var entry Entry
	err := book.db.One("Address", addresshelper.NormalizeAddress(address), &entry)
	if err != nil {
		return utils.TranslateError(err)
	}
	return book.db.DeleteStruct(&entry)
}
