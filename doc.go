/*
Package plait defines the common interfaces that tie the framework
subpackages together, as well as implementations of the simpler pieces
where an interface would be more overhead than help.

A plait application is a set of contract modules living under x/, each
processing its own messages against a shared key-value store. The host
ledger serializes all calls, so every handler runs as a single
run-to-completion transaction. Savepoints (see the store package and
x/utils.Savepoint) guarantee that a failing call leaves no partial
writes behind.

Call metadata travels on a context.Context: the ledger sequence number
is set with WithHeight and read with GetHeight, and a structured logger
rides along via WithLogger/GetLogger. Extensions may enrich the context
with their own keys, for example to carry authentication conditions.
*/
package plait
