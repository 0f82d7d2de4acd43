package platform

// Package platform contains OS-specific helpers: input discovery, directory
// creation, locating the application directory, and revealing folders in the
// system file manager.
