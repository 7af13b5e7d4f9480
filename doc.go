/*
Package bytestr provides string-like operations on byte slices that
work without allocating or copying: a [View] is a mutable, non-owning
window onto a byte slice, in the spirit of C++'s [std::string_view].

Operations narrow or mutate in place rather than copy. [View.Trim]
returns a narrower view of the same storage; [View.ToUpper] and
[View.ToLower] fold ASCII letters where they lie; [View.ParseInt] and
[View.ParseFloat] read numbers straight out of the bytes. Because
views alias their storage, a write through one view is visible through
every view of the same bytes; callers that need isolation must copy
first, for instance via [View.String].

A [Buffer] adds a cursor to a window, which turns the parsers into a
stream tokenizer: [Buffer.NextInt] and [Buffer.NextFloat] skip
whatever non-numeric bytes precede the next number, consume the
number, and leave the cursor just past it, so that repeated calls read
a delimited list such as "-1.1, 2.5, .33, 5" one value at a time.

The numeric syntax is small: ASCII digits with an optional leading
minus sign, plus the decimal point for [View.ParseFloat] and
[Buffer.NextFloat]. There is no exponent notation, no locale handling,
and no overflow detection. Content is treated as opaque bytes, assumed
to be ASCII or UTF-8, and only ASCII Latin letters participate in case
folding. For anything richer, copy the bytes out and use [strconv]
instead.

Malformed numeric content is reported as a [*FormatError] and
out-of-bounds offsets as a [*RangeError]; both can be inspected with
[errors.As].

[std::string_view]: https://en.cppreference.com/w/cpp/string/basic_string_view
*/
package bytestr
