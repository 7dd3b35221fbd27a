/*
Package errors implements custom error interfaces for the framework.

The idea is to reuse a small set of root errors, registered with unique
numeric codes, and wrap them with additional context at the place they
occur. Checking is done against the root error, so the whole chain of
wrapping is transparent to the caller:

	err := bucket.Save(db, obj)
	if errors.ErrNotFound.Is(err) {
	    ...
	}

Codes below 100 are reserved for contract modules, so that a module can
expose a stable public error taxonomy to its clients.
*/
package errors
