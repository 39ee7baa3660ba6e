// SPDX-License-Identifier: EPL-2.0

// Package header parses and serializes NIST SPHERE file headers.
//
// A SPHERE header is a fixed-size text block at the start of the file.
// It opens with the "NIST_1A" magic line, followed by an 8-byte line
// holding the total block size (canonically 1024), followed by one field
// per line:
//
//	database_id -s3 RM1
//	channel_count -i 1
//	sample_rate -i 16000
//
// Each field line is `name type value`. The type flag is -i for integers,
// -r for reals and -sN for a string of exactly N bytes. A line reading
// "end_head" terminates the field section, and the rest of the block is
// padding so the sample data begins at a known offset. Anything after a
// ";" on a field line is a comment and is discarded.
//
// # Parsing
//
// Read consumes a header directly from a stream and reports where the
// sample region starts:
//
//	fields, size, err := header.Read(file)
//	if err != nil {
//	    // Handle error
//	}
//	rate, _ := fields.Int("sample_rate")
//
// Parse does the same over an in-memory block.
//
// # Serializing
//
// Serialize emits a complete 1024-byte block, padding included:
//
//	fields := header.NewFields()
//	fields.SetInt("channel_count", 1)
//	fields.SetInt("sample_rate", 16000)
//	block, err := header.Serialize(fields)
//
// Fields keeps insertion order, so a parsed header serializes back with
// its fields in the original order. Unknown fields survive a parse and
// re-serialize round trip verbatim, which keeps vendor extensions intact.
//
// # Error Handling
//
// The package reports structural problems through sentinel errors such as
// ErrNoMagic, ErrBadHeaderSize, ErrMalformedField, ErrBadTypeFlag and
// ErrMissingEndHead; ErrHeaderOverflow signals that a field set does not
// fit its block on serialize. Match them with errors.Is.
package header
