// Package pkstream implements a compact, self-describing binary wire
// format for a graph database's client protocol. It is based heavily
// on MessagePack but the implementation is entirely independent: a
// single marker byte selects the type and, for small sizes, the
// length of the payload that follows.
//
// The package is organized leaves-first: Int64 is a portable 64-bit
// signed integer carrier independent of host integer width, Value is
// the tagged union the codec speaks, Structure is the inert
// signature+fields carrier used on both the pack and unpack paths, and
// Packer/Unpacker do the actual marker dispatch over a Buffer (or any
// type implementing ByteSink/ByteSource).
//
// pkstream never touches a network connection. The chunked transport
// that frames these bytes onto a socket, and any higher-level
// session/query logic that consumes decoded values, live above this
// package.
package pkstream
