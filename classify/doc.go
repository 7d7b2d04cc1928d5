// Package classify maps file names to sortdir categories.
//
// Classification happens in two steps. A Lookup infers a MIME-style content
// type from the file's extension, then an ordered list of Rules is evaluated
// against that type and the first match decides the Category. Unrecognized
// names fall through to Miscellaneous.
//
// Rule order matters: the document rule runs before the generic
// application rule so that PDF, YAML, CSV and Office Open XML files land in
// Documents rather than Applications.
package classify
