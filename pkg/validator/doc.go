// Package validator provides declarative validation rules for Brazilian
// identifiers and common form fields.
//
// A Rule bundles a boolean Check with translation-friendly error metadata.
// Rules are evaluated with Apply, which aggregates failures into a
// ValidationErrors slice that satisfies the error interface, so a whole form
// can be reported in one error return.
//
// # Architecture
//
// Each source file groups a family of rules:
//
//   - document_rules.go – CPF, CNPJ and "either" tax id, backed by package
//     brdoc. The translation key names the rejection reason
//     ("validation.cpf.degenerate_sequence", ...).
//   - field_rules.go    – phone, CEP, RG, password, full name, date and e-mail,
//     backed by package fieldcheck.
//   - string_rules.go   – Required and MaxLen.
//
// There is no global state; the package is goroutine-safe.
//
// # Usage
//
//	err := validator.Apply(
//	    validator.Required("cpf", form.CPF),
//	    validator.ValidCPF("cpf", form.CPF),
//	    validator.ValidEmail("email", form.Email),
//	)
//	if verrs := validator.ExtractValidationErrors(err); verrs != nil {
//	    msgs := verrs.Messages(translator, "pt-BR")
//	}
//
// # Error Handling
//
// ValidationErrors matches ErrValidationFailed with errors.Is, and individual
// field errors can be inspected with Has, Get and Fields.
package validator
