package plait

// Marshaller is anything that can be represented in binary.
//
// Marshal may validate the data before serializing it and unless you
// previously validated the struct, errors should be expected.
type Marshaller interface {
	Marshal() ([]byte, error)
}

// Persistent supports Marshal and Unmarshal.
//
// This is separated from Marshaller, as Unmarshal almost always requires
// a pointer, while functions that only need to serialize can accept
// non-pointers through the Marshaller interface.
type Persistent interface {
	Marshaller
	Unmarshal([]byte) error
}

// Msg is a request for the ledger to take an action (make a state
// transition). It is just the request, and must be validated by the
// Handlers. All authentication information is in the wrapping Tx.
type Msg interface {
	Persistent

	// Path returns the message path, used by the Router to locate the
	// proper Handler. Must be of the form [a-z0-9_/]+.
	Path() string

	// Validate performs stateless sanity checks on the message content.
	Validate() error
}

// Tx represents the data sent from the user to the chain. It includes the
// actual message, along with anything needed to pass through middleware,
// such as information to authenticate the sender.
type Tx interface {
	Persistent

	// GetMsg returns the action we wish to communicate.
	GetMsg() (Msg, error)
}

// TxDecoder can parse bytes into a Tx.
type TxDecoder func(txBytes []byte) (Tx, error)

// GetPath returns the path of the message, or (missing) if no message.
func GetPath(tx Tx) string {
	msg, err := tx.GetMsg()
	if err == nil && msg != nil {
		return msg.Path()
	}
	return "(missing)"
}
