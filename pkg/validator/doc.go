/*
Copyright © 2025 Plateforge Authors
SPDX-License-Identifier: Apache-2.0
*/

// Package validator decides whether a name-plate design is structurally
// sound, producing blocking error messages against the canonical constraint
// table.
//
// # Check Sequencing
//
// Validation runs in a fixed order so output is deterministic:
//
//  1. Required fields. A design missing any of text_line_1, text_line_2,
//     plate_length, plate_width, plate_thickness, or letter_depth gets one
//     error per missing field and validation stops there. Downstream checks
//     assume presence; they are never run against a partial design.
//  2. Range checks. Every constraint-table field present in the input is
//     checked once against its [min,max] bound (inclusive). Exactly one
//     message is produced per out-of-range field.
//  3. Text content. Both lines blank produces a single combined error;
//     a line over 50 characters produces a per-line error.
//  4. Relational checks. Letters cannot be deeper than the plate they are
//     embossed into, and text cannot exceed 80% of the plate width.
//
// # Result Structure
//
// Result contains IsValid, Errors, and Warnings. IsValid is true if and only
// if Errors is empty; warnings are a strictly advisory channel owned by the
// advisor package and never affect IsValid.
//
// # Error Handling
//
// A design field holding a value of the wrong type (text where a number is
// expected) fails the operation with a structured INVALID_INPUT error rather
// than a panic or a validation message.
//
// # Usage
//
//	v := validator.New()
//	result, err := v.Validate(cfg)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if !result.IsValid {
//	    for _, msg := range result.Errors {
//	        fmt.Println(msg)
//	    }
//	}
//
// Validation is pure over its input: no shared mutable state, no I/O. Each
// call is independent and safe to invoke concurrently.
package validator
