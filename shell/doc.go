// Package shell is the imperative shell around the circulation engine: the
// console intake of catalog items and patrons, the login prompt, the menu
// session, and the rendering of entities and journal entries.
//
// It contains no business rules. Every command is parsed, handed to the Desk
// synchronously, and the outcome is printed. Input and output are injected as
// io.Reader/io.Writer so sessions can be scripted in tests.
//
// In Domain-Driven Design or Hexagonal Architecture terminology, this would be
// called the 'infrastructure' layer.
package shell
