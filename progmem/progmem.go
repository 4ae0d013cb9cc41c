/*
Package progmem provides read access to immutable byte arrays that live in
the program image rather than in working memory.

A Bytes value is a handle to such an array. It supports exactly one
operation, Fetch, which reads the byte at a given offset. The build
configuration selects how the read is performed:

  - By default, Fetch is an ordinary data load.
  - With the "progmem" build tag, Bytes keeps only the raw base pointer and
    Fetch walks it directly. On Harvard-architecture targets whose compiler
    places read-only globals in program memory (TinyGo on AVR does), the
    load compiles to a program-space read; on flat-memory targets the tag
    changes nothing observable.

Bytes does not know the length of the array it points to. Callers assert
that every fetched offset is in range; in the default mode a violation
surfaces as a runtime panic, under the progmem tag it is a wild read.
*/
package progmem
