// Package capture turns one optional regular-expression group into a typed
// value.
//
// A Match is a span of the input; a Cap is a Match that may be absent
// because its group did not participate. Converters implement the
// conversion contract: given a Cap, produce a value of their type.
// Built-in converters cover text (owned or borrowed), booleans derived from
// presence, characters, every integer and floating-point width, big
// integers, and the wrapping converters Optional, Pointer and Default.
//
// A converter fails only when the binding is wrong, never because the text
// "did not match": a required group that is absent, or text that does not
// lexically parse as the declared type, is reported as a *ContractError.
package capture
