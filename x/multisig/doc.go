/*
Package multisig implements a shared wallet guarded by an m-of-n
approval policy.

The wallet is configured once with a set of signer addresses and an
approval threshold. Any signer can then propose an action, either a
token transfer or a replacement of the signer set itself. Other signers
approve or revoke their approval while the proposal is active. Once the
number of approvals reaches the threshold in force at that moment, any
signer can execute the proposal, which dispatches the action and
permanently marks the proposal as executed.

Proposals carry an expiration expressed as a ledger height. A proposal
whose expiration lies strictly below the current height can no longer
be approved, revoked, or executed, but it stays readable.

Every state transition happens within a single handler call and is
all-or-nothing: a failed precondition or a failed action dispatch
leaves the store untouched.
*/
package multisig
