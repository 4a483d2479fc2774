// Package codec converts raw key bytes to and from their text form.
//
// The decoded binary layout is prefix ++ payload ++ crc16, where the CRC
// covers prefix and payload and is stored little-endian. The whole buffer
// is base32 encoded without padding. Prefix values are chosen so that the
// first symbol of the text names the kind ('U' for a user public key) and
// seeds render as 'S' followed by the kind letter.
//
// Decoding is all-or-nothing: the checksum, prefix and payload length are
// all validated before any bytes are returned.
package codec
