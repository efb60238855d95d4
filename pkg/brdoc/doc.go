// Package brdoc validates the two Brazilian taxpayer identifiers: the CPF
// (11 digits, issued to individuals) and the CNPJ (14 digits, issued to
// organizations).
//
// Every check follows the same three steps:
//
//  1. Normalize – the kind's separators are removed ("." and "-" for CPF,
//     ".", "-" and "/" for CNPJ). Nothing else is touched.
//  2. Guard – sequences made of a single repeated digit are rejected before
//     any arithmetic runs. They satisfy the checksum but are never issued.
//  3. Checksum – two verification digits are computed from weighted sums of
//     the leading digits and compared with the trailing two.
//
// The two checksum schemes are kept apart as named modes:
//
//   - ModeCPF:  (sum * 10) mod 11, where 10 maps to 0.
//   - ModeCNPJ: sum mod 11, where a remainder below 2 maps to 0 and any other
//     remainder r maps to 11 - r.
//
// # Usage
//
//	if !brdoc.ValidateCPF("335.516.700-21") {
//	    // reject
//	}
//
// Callers that need to explain a rejection use the diagnostic variant:
//
//	if err := brdoc.CheckCNPJ(input); err != nil {
//	    switch {
//	    case errors.Is(err, brdoc.ErrMalformedLength):
//	    case errors.Is(err, brdoc.ErrCheckDigitMismatch):
//	    }
//	    code := brdoc.Reason(err) // "check_digit_mismatch", ...
//	}
//
// # Concurrency
//
// All functions are pure. They read only their arguments and the package
// weight tables, so they are safe for concurrent use.
package brdoc
