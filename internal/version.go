package internal

// Version is the current version of the merkle-prefix-tree library
// and its executables.
const Version = "0.1.0"
