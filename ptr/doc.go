// Package ptr provides functions to create on the fly pointer values
// for some built-in types. This might seem stupid but tests for
// pointer-valued model fields otherwise need a throw-away variable for
// every single literal just to take its address, and that clutters the
// code a lot.
package ptr
