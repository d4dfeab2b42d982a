/*
Package texpix decodes GPU texture pixel data on the CPU: raw uncompressed
layouts, the BC1/BC3/BC4/BC5/BC6H/BC7 block-compressed families and two
fixed-palette indexed encodings.

A decoder is constructed from a borrowed byte buffer holding a texture's
full mip chain plus its dimensions; construction validates the buffer length
exactly. All queries are pure reads over the immutable buffer, so decoders
are safe for unsynchronized concurrent use, and bulk decode fans out over
independent blocks internally.
*/
package texpix
