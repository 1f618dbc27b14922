/*
Package application is a library for building executables around the
Merkle prefix tree.

Config

This module provides the AppConfig abstraction over the underlying
config encoding (currently TOML), a common config embedding the logger
settings, and the loader machinery shared by all executables.

Logger

This module implements a generic logging system that any executable in
this repository can use.

Encoding

This module reads tree entries files: the JSON-encoded records an
executable appends into a tree at startup.
*/
package application
