// Package prefsxml edits Android SharedPreferences XML files.
//
// A preferences file is a single <map> root holding one element per entry. This package
// loads such a file (or synthesizes an empty one when the file is missing, malformed, or
// rooted at something other than <map>), replaces string and boolean entries by name, and
// writes the document back with two-space indentation and a UTF-8 XML declaration.
//
// Storage backends live in the storage subpackage; the prefs-xml command in cmd/prefs-xml
// wraps the Editor for use from the shell.
package prefsxml
