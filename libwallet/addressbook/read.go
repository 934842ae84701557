package addressbook

import (
	"github.com/asdine/storm"

	"code.cryptopower.dev/group/ethcompose/libwallet/addresshelper"
	"code.cryptopower.dev/group/ethcompose/libwallet/utils"
)

// Entry returns the entry saved for the address.
func (book *Book) Entry(address string) (*Entry, error) {
	var entry Entry
	err := book.db.One("Address", addresshelper.NormalizeAddress(address), &entry)
	if err != nil {
		return nil, utils.TranslateError(err)
	}
	return &entry, nil
}

// Entries returns every saved entry, oldest first.
func (book *Book) Entries() ([]Entry, error) {
	var entries []Entry
	err := book.db.Select().OrderBy("CreatedAt").Find(&entries)
	if err != nil && err != storm.ErrNotFound {
		return nil, err
	}
	return entries, nil
}

// AddressMessage implements Resolver. A saved entry without an explicit
// message resolves to its label.
func (book *Book) AddressMessage(address string) (*AddressMessage, bool) {
	var entry Entry
	err := book.db.One("Address", addresshelper.NormalizeAddress(address), &entry)
	switch {
	case err == nil:
		msg := entry.Message
		if msg.Msg == "" {
			msg.Msg = entry.Label
		}
		return &msg, true
	case err != storm.ErrNotFound:
		log.Errorf("Address book lookup for %s failed: %v", address, err)
	}

	if book.fallback == nil {
		return nil, false
	}
	return book.fallback.AddressMessage(address)
}
