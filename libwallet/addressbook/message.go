package addressbook

import "code.cryptopower.dev/group/ethcompose/libwallet/addresshelper"

// Severity tells the UI how prominently an address message is shown.
type Severity string

const (
	SeverityInfo    Severity = "info"
	SeverityWarning Severity = "warning"
	SeverityDanger  Severity = "danger"
)

// AddressMessage is an advisory annotation attached to a recipient address.
// GasLimit and Data, when set, are the values the address owner asks senders
// to use.
type AddressMessage struct {
	Msg      string
	Severity Severity
	GasLimit uint64
	Data     string
}

// Resolver looks up the advisory message of a raw address. Lookups are case
// insensitive; ok is false when nothing is known about the address.
type Resolver interface {
	AddressMessage(address string) (msg *AddressMessage, ok bool)
}

// Builtin is a static Resolver keyed by lowercase address.
type Builtin map[string]AddressMessage

// AddressMessage implements Resolver.
func (b Builtin) AddressMessage(address string) (*AddressMessage, bool) {
	msg, ok := b[addresshelper.NormalizeAddress(address)]
	if !ok {
		return nil, false
	}
	return &msg, true
}

// DefaultMessages are shipped with the app and apply on every network.
var DefaultMessages = Builtin{
	"0x0000000000000000000000000000000000000000": {
		Msg:      "This is the zero address. Ether or tokens sent to it can never be recovered.",
		Severity: SeverityDanger,
	},
	"0x000000000000000000000000000000000000dead": {
		Msg:      "This is a well known burn address. Ether or tokens sent to it can never be recovered.",
		Severity: SeverityDanger,
	},
}
