// Package sanitizer cleans and formats user input around the validators.
//
// The helpers fall into two groups:
//
//   - Strings – whitespace normalisation, control-character removal and digit
//     extraction, composable with Apply and Compose.
//
//   - Format – canonical display masks for CPF, CNPJ, CEP and phone numbers,
//     plus masking of identifiers before they are written to logs.
//
// Formatters never repair input: when the digit count does not fit the
// target mask the original string is returned unchanged. Callers are expected
// to validate first (see package brdoc) and format afterwards.
//
//	clean := sanitizer.Compose(sanitizer.Trim, sanitizer.KeepDigits)
//	digits := clean(" 335.516.700-21 ") // "33551670021"
//	sanitizer.FormatCPF(digits)          // "335.516.700-21"
//	sanitizer.MaskCPF(digits)            // "***.***.***-21"
//
// None of the helpers returns an error and all of them are safe for
// concurrent use.
package sanitizer
