// Package scaffold generates a new game project from embedded templates. It
// powers the "forge init" command, producing a forge.yaml, a reloadable game
// package, a driver package, starter shaders and an empty asset tree.
package scaffold
