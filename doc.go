// Package typeconv converts values of unknown or loosely typed origin, most
// commonly strings, into values that satisfy a declared type shape.
//
// A [TypeInfo] describes the declared type, possibly generic, unioned, or a
// record schema with required keys. [ConverterFor] resolves the descriptor
// against a registry of per-type strategies and returns the root of a
// [Converter] tree whose shape mirrors the descriptor's nesting.
// [Converter.Convert] walks the tree depth-first and either produces a fully
// typed value or a single human-readable error naming the item that failed.
//
// Callers can register their own conversions through [CustomConverters];
// custom converters take priority over the built-in strategies. The words
// recognized by the boolean converter come from a [languages.Languages]
// vocabulary, and calendar dates and durations are parsed by the [dates]
// package.
package typeconv
