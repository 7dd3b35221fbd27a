/*
Package plaittest provides mocks and helpers for testing handlers and
decorators: stub transactions and messages, counting handler doubles,
and authenticators with fixed or context-provided conditions.
*/
package plaittest
